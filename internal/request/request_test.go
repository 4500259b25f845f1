package request_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/request"
	"github.com/mmynk/pointwallet/internal/storage/sqlite"
	"github.com/mmynk/pointwallet/internal/testutil"
)

// countingPayer records how many transfers were attempted.
type countingPayer struct {
	next  request.Payer
	calls atomic.Int32
}

func (p *countingPayer) Transfer(ctx context.Context, purpose string, from *models.User, to string, amount int64) (string, error) {
	p.calls.Add(1)
	return p.next.Transfer(ctx, purpose, from, to, amount)
}

func setup(t *testing.T) (*testutil.Env, *request.Manager, *countingPayer) {
	t.Helper()
	env := testutil.New(t)
	payer := &countingPayer{next: env.Payments}
	return env, request.NewManager(env.Store, payer, env.Logger), payer
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()
	env, mgr, _ := setup(t)
	alice, as := env.User(t, "alice", 0)
	bob, _ := env.User(t, "bob", 0)

	id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
	require.NoError(t, err)

	r, err := env.Store.GetRequest(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, r.FromUID)
	assert.Equal(t, alice.WalletAddress, r.FromAddress)
	assert.Equal(t, bob.ID, r.ToUID)
	assert.Equal(t, "bob", r.ToName)
	assert.Equal(t, models.RequestPending, r.Status)

	tests := []struct {
		name   string
		to     string
		amount int64
	}{
		{"zero amount", bob.ID, 0},
		{"negative amount", bob.ID, -5},
		{"self request", alice.ID, 100},
		{"unknown recipient", "ghost", 100},
		{"missing recipient", "", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mgr.CreateRequest(ctx, as, tt.to, tt.amount)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestFulfillRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("partial payment is rejected before any transfer", func(t *testing.T) {
		env, mgr, payer := setup(t)
		_, as := env.User(t, "alice", 0)
		bob, bs := env.User(t, "bob", 1000)

		id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
		require.NoError(t, err)

		_, err = mgr.FulfillRequest(ctx, bs, id, 60)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, int32(0), payer.calls.Load())
		assert.Equal(t, int64(1000), env.Balance(t, bob))

		r, err := env.Store.GetRequest(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.RequestPending, r.Status)
	})

	t.Run("full payment completes the request", func(t *testing.T) {
		env, mgr, payer := setup(t)
		alice, as := env.User(t, "alice", 0)
		bob, bs := env.User(t, "bob", 1000)

		id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
		require.NoError(t, err)

		r, err := mgr.FulfillRequest(ctx, bs, id, 100)
		require.NoError(t, err)
		assert.Equal(t, models.RequestCompleted, r.Status)
		assert.Equal(t, int32(1), payer.calls.Load())
		assert.Equal(t, int64(100), env.Balance(t, alice))
		assert.Equal(t, int64(900), env.Balance(t, bob))

		_, err = mgr.FulfillRequest(ctx, bs, id, 100)
		assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
		assert.Equal(t, int32(1), payer.calls.Load())
	})

	t.Run("overpayment transfers the requested amount", func(t *testing.T) {
		env, mgr, _ := setup(t)
		alice, as := env.User(t, "alice", 0)
		bob, bs := env.User(t, "bob", 1000)

		id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
		require.NoError(t, err)
		_, err = mgr.FulfillRequest(ctx, bs, id, 150)
		require.NoError(t, err)
		assert.Equal(t, int64(100), env.Balance(t, alice))
	})

	t.Run("only the asked party can pay", func(t *testing.T) {
		env, mgr, payer := setup(t)
		_, as := env.User(t, "alice", 0)
		bob, _ := env.User(t, "bob", 1000)
		_, cs := env.User(t, "carol", 1000)

		id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
		require.NoError(t, err)

		_, err = mgr.FulfillRequest(ctx, cs, id, 100)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		_, err = mgr.FulfillRequest(ctx, as, id, 100)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, int32(0), payer.calls.Load())
	})

	t.Run("insufficient funds leaves the request pending", func(t *testing.T) {
		env, mgr, _ := setup(t)
		_, as := env.User(t, "alice", 0)
		bob, bs := env.User(t, "bob", 50)

		id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
		require.NoError(t, err)

		_, err = mgr.FulfillRequest(ctx, bs, id, 100)
		assert.ErrorIs(t, err, apperrors.ErrTransferFailed)
		assert.Equal(t, apperrors.ReasonInsufficientFunds, apperrors.ReasonOf(err))

		r, err := env.Store.GetRequest(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.RequestPending, r.Status)
	})

	t.Run("completed by requester during transfer", func(t *testing.T) {
		env := testutil.New(t)
		_, as := env.User(t, "alice", 0)
		bob, bs := env.User(t, "bob", 1000)

		var mgr *request.Manager
		racing := &racingPayer{next: env.Payments}
		mgr = request.NewManager(env.Store, racing, env.Logger)
		id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
		require.NoError(t, err)
		racing.before = func() {
			_, err := mgr.MarkComplete(ctx, as, id)
			require.NoError(t, err)
		}

		_, err = mgr.FulfillRequest(ctx, bs, id, 100)
		assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
	})
}

// racingPayer runs before right before the transfer.
type racingPayer struct {
	next   request.Payer
	before func()
}

func (p *racingPayer) Transfer(ctx context.Context, purpose string, from *models.User, to string, amount int64) (string, error) {
	if p.before != nil {
		p.before()
	}
	return p.next.Transfer(ctx, purpose, from, to, amount)
}

func TestRequestLifecycle(t *testing.T) {
	ctx := context.Background()
	env, mgr, _ := setup(t)
	_, as := env.User(t, "alice", 0)
	bob, bs := env.User(t, "bob", 0)

	id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
	require.NoError(t, err)

	incoming, err := mgr.ListIncoming(ctx, bs)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, id, incoming[0].ID)

	_, err = mgr.Archive(ctx, as, id)
	assert.ErrorIs(t, err, apperrors.ErrConcurrentModification, "pending requests cannot be archived")

	_, err = mgr.MarkComplete(ctx, bs, id)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	r, err := mgr.MarkComplete(ctx, as, id)
	require.NoError(t, err)
	assert.Equal(t, models.RequestCompleted, r.Status)

	incoming, err = mgr.ListIncoming(ctx, bs)
	require.NoError(t, err)
	assert.Empty(t, incoming)

	outgoing, err := mgr.ListOutgoing(ctx, as)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)

	r, err = mgr.Archive(ctx, as, id)
	require.NoError(t, err)
	assert.Equal(t, models.RequestArchived, r.Status)

	outgoing, err = mgr.ListOutgoing(ctx, as)
	require.NoError(t, err)
	assert.Empty(t, outgoing)

	_, err = mgr.MarkComplete(ctx, as, id)
	assert.ErrorIs(t, err, apperrors.ErrConcurrentModification, "archived is terminal")

	_, err = mgr.MarkComplete(ctx, as, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFulfillRequestLostResponse(t *testing.T) {
	ctx := context.Background()
	env := testutil.New(t)
	exec, relay := env.LossyPayments()
	mgr := request.NewManager(env.Store, exec, env.Logger)
	alice, as := env.User(t, "alice", 0)
	bob, bs := env.User(t, "bob", 1000)

	id, err := mgr.CreateRequest(ctx, as, bob.ID, 400)
	require.NoError(t, err)

	relay.Lose.Store(true)
	_, err = mgr.FulfillRequest(ctx, bs, id, 400)
	require.ErrorIs(t, err, apperrors.ErrNetworkTimeout)
	assert.True(t, apperrors.Retryable(err))
	r, err := env.Store.GetRequest(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, r.Status, "an unconfirmed transfer leaves the request pending")

	relay.Lose.Store(false)
	done, err := mgr.FulfillRequest(ctx, bs, id, 400)
	require.NoError(t, err)
	assert.Equal(t, models.RequestCompleted, done.Status)
	assert.Equal(t, int64(400), env.Balance(t, alice), "the retry must not pay twice")
	assert.Equal(t, int64(600), env.Balance(t, bob))
}

// stalledStore never answers request reads before the deadline.
type stalledStore struct {
	*sqlite.SQLiteStore
}

func (s stalledStore) GetRequest(ctx context.Context, _ string) (*models.Request, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStoreTimeout(t *testing.T) {
	ctx := context.Background()
	env, mgr, payer := setup(t)
	_, as := env.User(t, "alice", 0)
	bob, bs := env.User(t, "bob", 1000)
	id, err := mgr.CreateRequest(ctx, as, bob.ID, 100)
	require.NoError(t, err)

	stalled := request.NewManager(stalledStore{env.Store}, payer, env.Logger, request.WithTimeout(50*time.Millisecond))

	_, err = stalled.FulfillRequest(context.Background(), bs, id, 100)
	require.ErrorIs(t, err, apperrors.ErrNetworkTimeout)
	assert.True(t, apperrors.Retryable(err))
	assert.Zero(t, payer.calls.Load())

	_, err = stalled.Archive(context.Background(), as, id)
	assert.ErrorIs(t, err, apperrors.ErrNetworkTimeout)
}
