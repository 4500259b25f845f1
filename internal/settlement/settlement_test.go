package settlement_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/payment"
	"github.com/mmynk/pointwallet/internal/realtime"
	"github.com/mmynk/pointwallet/internal/settlement"
	"github.com/mmynk/pointwallet/internal/storage/sqlite"
	"github.com/mmynk/pointwallet/internal/testutil"
)

type fixture struct {
	env     *testutil.Env
	mgr     *settlement.Manager
	creator *models.User
	a, b    *models.User
	cs      auth.Session
	as, bs  auth.Session
	id      string
}

// newFixture creates the 3000 bill split between the creator, A (1000) and B (1000).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	env := testutil.New(t)
	f := &fixture{env: env, mgr: settlement.NewManager(env.Store, env.Payments, env.Logger)}
	f.creator, f.cs = env.User(t, "creator", 0)
	f.a, f.as = env.User(t, "a", 5000)
	f.b, f.bs = env.User(t, "b", 5000)

	id, err := f.mgr.CreateSettlement(context.Background(), f.cs, 3000, []settlement.Share{
		{UserID: f.a.ID, Amount: 1000},
		{UserID: f.b.ID, Amount: 1000},
	})
	require.NoError(t, err)
	f.id = id
	return f
}

func (f *fixture) settlement(t *testing.T) *models.Settlement {
	t.Helper()
	st, err := f.env.Store.GetSettlement(context.Background(), f.id)
	require.NoError(t, err)
	return st
}

func (f *fixture) chatStatus(t *testing.T) string {
	t.Helper()
	chat, err := f.env.Store.GetChat(context.Background(), f.settlement(t).ChatID)
	require.NoError(t, err)
	return chat.Status
}

func TestCreateSettlement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	st := f.settlement(t)
	assert.Equal(t, f.creator.ID, st.CreatorID)
	assert.Equal(t, f.creator.WalletAddress, st.CreatorAddress)
	assert.Equal(t, int64(3000), st.TotalAmount)
	require.Len(t, st.Participants, 2)
	assert.Equal(t, f.a.ID, st.Participants[0].UID)
	assert.Equal(t, f.b.ID, st.Participants[1].UID)
	for _, p := range st.Participants {
		assert.Equal(t, models.StatusPending, p.Status)
	}
	assert.Equal(t, settlement.Progress{PaidCount: 0, TotalCount: 2, Percent: 0}, settlement.ProgressOf(st))

	chat, err := f.env.Store.GetChat(ctx, st.ChatID)
	require.NoError(t, err)
	assert.Equal(t, models.ChatActive, chat.Status)
	assert.Equal(t, st.ID, chat.SettlementID)
	assert.ElementsMatch(t, []string{f.creator.ID, f.a.ID, f.b.ID}, chat.Participants)

	msgs, err := f.env.Store.ListMessages(ctx, chat.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.MessageSystem, msgs[0].Kind)

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name   string
			total  int64
			shares []settlement.Share
		}{
			{"zero total", 0, []settlement.Share{{UserID: f.a.ID, Amount: 1}}},
			{"negative share", 100, []settlement.Share{{UserID: f.a.ID, Amount: -1}}},
			{"duplicate participant", 100, []settlement.Share{{UserID: f.a.ID, Amount: 1}, {UserID: f.a.ID, Amount: 2}}},
			{"creator as participant", 100, []settlement.Share{{UserID: f.creator.ID, Amount: 1}}},
			{"no participants", 100, nil},
			{"unknown user", 100, []settlement.Share{{UserID: "ghost", Amount: 1}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.mgr.CreateSettlement(ctx, f.cs, tt.total, tt.shares)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			})
		}
	})
}

func TestEndToEndSplit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.mgr.PayShare(ctx, f.as, f.id)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Progress.Percent)
	assert.False(t, res.Completed)
	assert.Equal(t, models.ChatActive, f.chatStatus(t))

	entry, _ := res.Settlement.Participant(f.a.ID)
	assert.Equal(t, models.PaidViaOnChain, entry.PaidVia)
	assert.NotEmpty(t, entry.Signature)

	res, err = f.mgr.PayShare(ctx, f.bs, f.id)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Progress.Percent)
	assert.True(t, res.Completed)
	assert.Equal(t, models.ChatCompleted, f.chatStatus(t))

	assert.Equal(t, int64(2000), f.env.Balance(t, f.creator))
	assert.Equal(t, int64(4000), f.env.Balance(t, f.a))
	assert.Equal(t, int64(4000), f.env.Balance(t, f.b))
}

func TestConcurrentLastPayers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var chatCompletions atomic.Int32
	sub := f.env.Store.Subscribe(ctx, realtime.Query{Collection: realtime.CollectionChats, DocID: f.settlement(t).ChatID},
		func(c realtime.Change) {
			if chat, ok := c.Doc.(*models.Chat); ok && chat.Status == models.ChatCompleted {
				chatCompletions.Add(1)
			}
		})

	var completed atomic.Int32
	var g errgroup.Group
	for _, s := range []auth.Session{f.as, f.bs} {
		g.Go(func() error {
			res, err := f.mgr.PayShare(ctx, s, f.id)
			if err != nil {
				return err
			}
			if res.Completed {
				completed.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Eventually(t, func() bool { return chatCompletions.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
	sub.Unsubscribe()

	assert.Equal(t, int32(1), completed.Load(), "exactly one payer completes the settlement")
	assert.Equal(t, int32(1), chatCompletions.Load(), "chat completion is published once")
	assert.Equal(t, 100, settlement.ProgressOf(f.settlement(t)).Percent)
	assert.Equal(t, int64(2000), f.env.Balance(t, f.creator))
}

func TestNoDoubleCollection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.mgr.PayShare(ctx, f.as, f.id)
	require.NoError(t, err)

	t.Run("second PayShare moves no funds", func(t *testing.T) {
		_, err := f.mgr.PayShare(ctx, f.as, f.id)
		assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
		assert.Equal(t, int64(4000), f.env.Balance(t, f.a))
		assert.Equal(t, int64(1000), f.env.Balance(t, f.creator))
	})

	t.Run("second RecordPayment is a no-op", func(t *testing.T) {
		before, _ := f.settlement(t).Participant(f.a.ID)
		res, err := f.mgr.RecordPayment(ctx, f.id, f.a.ID, settlement.Proof{Signature: "other"})
		require.NoError(t, err)
		assert.False(t, res.Changed)
		after, _ := res.Settlement.Participant(f.a.ID)
		assert.Equal(t, before.Signature, after.Signature)
	})

	t.Run("concurrent duplicate PayShare transfers once", func(t *testing.T) {
		var g errgroup.Group
		var failures atomic.Int32
		for range 4 {
			g.Go(func() error {
				if _, err := f.mgr.PayShare(ctx, f.bs, f.id); err != nil {
					if !errors.Is(err, apperrors.ErrConcurrentModification) {
						return err
					}
					failures.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.Equal(t, int64(4000), f.env.Balance(t, f.b))
		assert.Equal(t, int64(2000), f.env.Balance(t, f.creator))

		logged, err := f.env.Store.GetTransferByPurpose(ctx, payment.SharePurpose(f.id, f.b.ID))
		require.NoError(t, err)
		assert.Equal(t, models.TransferConfirmed, logged.Status)
	})
}

func TestProgressMonotonic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	last := 0
	check := func(res *settlement.Result) {
		require.GreaterOrEqual(t, res.Progress.Percent, last)
		last = res.Progress.Percent
	}

	res, err := f.mgr.ManualMarkPaid(ctx, f.cs, f.id, f.a.ID)
	require.NoError(t, err)
	check(res)

	res, err = f.mgr.RecordPayment(ctx, f.id, f.a.ID, settlement.Proof{Signature: "late"})
	require.NoError(t, err)
	check(res)
	entry, _ := res.Settlement.Participant(f.a.ID)
	assert.Equal(t, models.StatusPaid, entry.Status)
	assert.Equal(t, models.PaidViaManual, entry.PaidVia, "a paid entry is never rewritten")

	res, err = f.mgr.ForceCompleteAll(ctx, f.cs, f.id, true)
	require.NoError(t, err)
	check(res)
	assert.Equal(t, 100, res.Progress.Percent)
}

func TestPermissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("participant cannot force complete", func(t *testing.T) {
		_, err := f.mgr.ForceCompleteAll(ctx, f.as, f.id, true)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, 0, settlement.ProgressOf(f.settlement(t)).PaidCount)
		assert.Equal(t, models.ChatActive, f.chatStatus(t))
	})

	t.Run("participant cannot mark others paid", func(t *testing.T) {
		_, err := f.mgr.ManualMarkPaid(ctx, f.as, f.id, f.b.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, 0, settlement.ProgressOf(f.settlement(t)).PaidCount)
	})

	t.Run("force complete requires confirmation", func(t *testing.T) {
		_, err := f.mgr.ForceCompleteAll(ctx, f.cs, f.id, false)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, models.ChatActive, f.chatStatus(t))
	})

	t.Run("outsider cannot view or pay", func(t *testing.T) {
		_, outsider := f.env.User(t, "outsider", 5000)
		_, err := f.mgr.Get(ctx, outsider, f.id)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		_, err = f.mgr.PayShare(ctx, outsider, f.id)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("unknown settlement", func(t *testing.T) {
		_, err := f.mgr.PayShare(ctx, f.as, "missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("creator completes everything", func(t *testing.T) {
		res, err := f.mgr.ForceCompleteAll(ctx, f.cs, f.id, true)
		require.NoError(t, err)
		assert.True(t, res.Completed)
		for _, p := range res.Settlement.Participants {
			assert.Equal(t, models.PaidViaBulk, p.PaidVia)
		}
		assert.Equal(t, models.ChatCompleted, f.chatStatus(t))

		res, err = f.mgr.ForceCompleteAll(ctx, f.cs, f.id, true)
		require.NoError(t, err)
		assert.False(t, res.Changed)
		assert.False(t, res.Completed)
	})
}

func TestPayShareInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	env := testutil.New(t)
	mgr := settlement.NewManager(env.Store, env.Payments, env.Logger)
	_, cs := env.User(t, "creator", 0)
	poor, ps := env.User(t, "poor", 100)

	id, err := mgr.CreateSettlement(ctx, cs, 1000, []settlement.Share{{UserID: poor.ID, Amount: 500}})
	require.NoError(t, err)

	_, err = mgr.PayShare(ctx, ps, id)
	assert.ErrorIs(t, err, apperrors.ErrTransferFailed)
	assert.Equal(t, apperrors.ReasonInsufficientFunds, apperrors.ReasonOf(err))

	st, err := env.Store.GetSettlement(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, st.Participants[0].Status)
}

func TestPayShareLostResponse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	exec, relay := f.env.LossyPayments()
	mgr := settlement.NewManager(f.env.Store, exec, f.env.Logger)

	relay.Lose.Store(true)
	_, err := mgr.PayShare(ctx, f.as, f.id)
	require.ErrorIs(t, err, apperrors.ErrNetworkTimeout)
	assert.True(t, apperrors.Retryable(err))
	entry, _ := f.settlement(t).Participant(f.a.ID)
	assert.Equal(t, models.StatusPending, entry.Status, "an unconfirmed transfer leaves the entry pending")

	relay.Lose.Store(false)
	res, err := mgr.PayShare(ctx, f.as, f.id)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	entry, _ = res.Settlement.Participant(f.a.ID)
	assert.Equal(t, models.StatusPaid, entry.Status)
	assert.Equal(t, models.PaidViaOnChain, entry.PaidVia)
	assert.NotEmpty(t, entry.Signature)
	assert.Equal(t, int64(1000), f.env.Balance(t, f.creator), "the retry must not pay twice")
	assert.Equal(t, int64(4000), f.env.Balance(t, f.a))
}

func TestPayShareWaivesZeroShare(t *testing.T) {
	ctx := context.Background()
	env := testutil.New(t)
	mgr := settlement.NewManager(env.Store, env.Payments, env.Logger)
	creator, cs := env.User(t, "creator", 0)
	guest, gs := env.User(t, "guest", 0)

	id, err := mgr.CreateSettlement(ctx, cs, 1000, []settlement.Share{{UserID: guest.ID, Amount: 0}})
	require.NoError(t, err)

	res, err := mgr.PayShare(ctx, gs, id)
	require.NoError(t, err)
	assert.True(t, res.Completed)
	entry, _ := res.Settlement.Participant(guest.ID)
	assert.Equal(t, models.StatusPaid, entry.Status)
	assert.Equal(t, models.PaidViaWaived, entry.PaidVia)
	assert.Empty(t, entry.Signature)
	assert.Equal(t, int64(0), env.Balance(t, creator))
}

// gatedPayer holds every transfer until release is closed.
type gatedPayer struct {
	settlement.Payer
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (p *gatedPayer) Transfer(ctx context.Context, purpose string, from *models.User, to string, amount int64) (string, error) {
	p.calls.Add(1)
	p.entered <- struct{}{}
	<-p.release
	return p.Payer.Transfer(ctx, purpose, from, to, amount)
}

func TestPayShareSurvivesCancelledCaller(t *testing.T) {
	f := newFixture(t)
	payer := &gatedPayer{Payer: f.env.Payments, entered: make(chan struct{}, 1), release: make(chan struct{})}
	mgr := settlement.NewManager(f.env.Store, payer, f.env.Logger)

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := mgr.PayShare(first, f.as, f.id)
		firstErr <- err
	}()
	<-payer.entered

	type outcome struct {
		res *settlement.Result
		err error
	}
	second := make(chan outcome, 1)
	go func() {
		res, err := mgr.PayShare(context.Background(), f.as, f.id)
		second <- outcome{res, err}
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	// Let the second caller join the running attempt before it finishes.
	time.Sleep(50 * time.Millisecond)
	close(payer.release)

	got := <-second
	require.NoError(t, got.err)
	assert.True(t, got.res.Changed)
	assert.Equal(t, int32(1), payer.calls.Load())
	assert.Equal(t, int64(1000), f.env.Balance(t, f.creator))
}

// stalledStore never answers settlement reads before the deadline.
type stalledStore struct {
	*sqlite.SQLiteStore
}

func (s stalledStore) GetSettlement(ctx context.Context, _ string) (*models.Settlement, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStoreTimeout(t *testing.T) {
	f := newFixture(t)
	mgr := settlement.NewManager(stalledStore{f.env.Store}, f.env.Payments, f.env.Logger,
		settlement.WithTimeout(50*time.Millisecond))

	_, err := mgr.ManualMarkPaid(context.Background(), f.cs, f.id, f.a.ID)
	require.ErrorIs(t, err, apperrors.ErrNetworkTimeout)
	assert.True(t, apperrors.Retryable(err))

	_, err = mgr.PayShare(context.Background(), f.as, f.id)
	assert.ErrorIs(t, err, apperrors.ErrNetworkTimeout)
}

func TestProgressOf(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     settlement.Progress
	}{
		{"no participants", nil, settlement.Progress{}},
		{"none paid", []string{"pending", "pending", "pending"}, settlement.Progress{TotalCount: 3}},
		{"one of three", []string{"paid", "pending", "pending"}, settlement.Progress{PaidCount: 1, TotalCount: 3, Percent: 33}},
		{"two of three", []string{"paid", "paid", "pending"}, settlement.Progress{PaidCount: 2, TotalCount: 3, Percent: 66}},
		{"all paid", []string{"paid", "paid"}, settlement.Progress{PaidCount: 2, TotalCount: 2, Percent: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &models.Settlement{}
			for _, s := range tt.statuses {
				st.Participants = append(st.Participants, models.Participant{Status: s})
			}
			assert.Equal(t, tt.want, settlement.ProgressOf(st))
		})
	}
}

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "30.00 P", settlement.FormatPoints(3000))
	assert.Equal(t, "0.05 P", settlement.FormatPoints(5))
	assert.Equal(t, "-1.50 P", settlement.FormatPoints(-150))
}
