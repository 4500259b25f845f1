package wallet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/testutil"
	"github.com/mmynk/pointwallet/internal/wallet"
)

func newManager(env *testutil.Env) *wallet.Manager {
	return wallet.NewManager(wallet.Config{
		Store:     env.Store,
		Payer:     env.Payments,
		Ledger:    env.Ledger,
		Asset:     testutil.Asset,
		KRWPerUSD: 1300,
		Logger:    env.Logger,
	})
}

func TestFiatPrice(t *testing.T) {
	m := newManager(testutil.New(t))
	tests := []struct {
		name     string
		points   int64
		currency string
		want     int64
		wantErr  bool
	}{
		{"KRW whole points", 10_000, models.CurrencyKRW, 100, false},
		{"KRW fraction", 150, models.CurrencyKRW, 0, true},
		{"USD exact", 130_000, models.CurrencyUSD, 100, false},
		{"USD rounds half up", 650, models.CurrencyUSD, 1, false},
		{"USD rounds down", 649, models.CurrencyUSD, 0, true},
		{"USD rounding to cents", 1_000_000, models.CurrencyUSD, 769, false},
		{"unknown currency", 100, "EUR", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.FiatPrice(tt.points, tt.currency)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuyAndBalance(t *testing.T) {
	ctx := context.Background()
	env := testutil.New(t)
	m := newManager(env)
	_, s := env.User(t, "buyer", 0)

	bal, err := m.Balance(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, bal)

	p, err := m.Buy(ctx, s, 50_000, models.CurrencyKRW)
	require.NoError(t, err)
	assert.Equal(t, int64(500), p.FiatAmount)
	assert.NotEmpty(t, p.Signature)

	bal, err = m.Balance(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000), bal)

	purchases, err := m.Purchases(ctx, s)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, p.ID, purchases[0].ID)

	for _, amount := range []int64{0, -1, wallet.MaxPurchase + 1} {
		_, err := m.Buy(ctx, s, amount, models.CurrencyKRW)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestSend(t *testing.T) {
	ctx := context.Background()
	env := testutil.New(t)
	m := newManager(env)
	alice, as := env.User(t, "alice", 10_000)
	bob, _ := env.User(t, "bob", 0)
	carol, _ := env.User(t, "carol", 0)
	require.NoError(t, env.Store.AddFriend(ctx, alice.ID, bob.ID))

	tr, err := m.Send(ctx, as, bob.ID, 2_500)
	require.NoError(t, err)
	assert.Equal(t, models.TransferConfirmed, tr.Status)
	assert.Equal(t, int64(7_500), env.Balance(t, alice))
	assert.Equal(t, int64(2_500), env.Balance(t, bob))

	t.Run("only to friends", func(t *testing.T) {
		_, err := m.Send(ctx, as, carol.ID, 100)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := m.Send(ctx, as, bob.ID, 0)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		_, err := m.Send(ctx, as, bob.ID, 1_000_000)
		assert.ErrorIs(t, err, apperrors.ErrTransferFailed)
		assert.Equal(t, int64(7_500), env.Balance(t, alice))
	})

	t.Run("history lists both sides", func(t *testing.T) {
		history, err := m.History(ctx, as, 0)
		require.NoError(t, err)
		// the initial top-up, the send and the failed attempt
		require.Len(t, history, 3)

		statuses := map[string]int{}
		for _, h := range history {
			statuses[h.Status]++
		}
		assert.Equal(t, map[string]int{models.TransferConfirmed: 2, models.TransferFailed: 1}, statuses)
	})
}
