package payment

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/keystore"
	"github.com/mmynk/pointwallet/internal/ledger"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/relay"
	"github.com/mmynk/pointwallet/internal/storage/sqlite"
)

const asset = "POINT"

// lossyRelay submits the transaction but loses the response, as if the
// connection dropped after the ledger accepted it.
type lossyRelay struct {
	*relay.Relay
	lose bool
}

func (l *lossyRelay) CoSignAndSubmit(ctx context.Context, raw []byte) (string, error) {
	sig, err := l.Relay.CoSignAndSubmit(ctx, raw)
	if l.lose {
		return "", context.DeadlineExceeded
	}
	return sig, err
}

type env struct {
	store *sqlite.SQLiteStore
	mem   *ledger.Memory
	relay *lossyRelay
	exec  *Executor
	vault *keystore.Vault
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "pay.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	mem := ledger.NewMemory()
	treasury, err := keys.NewPrivateKey()
	require.NoError(t, err)
	r := &lossyRelay{Relay: relay.New(treasury, mem, asset, nil)}
	treasuryAcct, err := r.TreasuryAccount(context.Background())
	require.NoError(t, err)
	require.NoError(t, mem.Mint(treasuryAcct, 1_000_000))

	vault, err := keystore.NewVault("payment-test-master-key", store)
	require.NoError(t, err)

	exec := NewExecutor(Config{
		Transfers: store,
		Keys:      vault,
		Ledger:    mem,
		Relay:     r,
		Asset:     asset,
		Timeout:   2 * time.Second,
	})
	return &env{store: store, mem: mem, relay: r, exec: exec, vault: vault}
}

func (e *env) user(t *testing.T, studentID string, funds int64) *models.User {
	t.Helper()
	id := uuid.New().String()
	priv, sealed, err := e.vault.Generate(id)
	require.NoError(t, err)
	u := &models.User{ID: id, StudentID: studentID, Name: studentID, WalletAddress: priv.Address(),
		PasswordHash: "x", Role: models.RoleStudent, CreatedAt: models.Now()}
	require.NoError(t, e.store.CreateUser(context.Background(), u, sealed))
	if funds > 0 {
		_, err := e.exec.FromTreasury(context.Background(), PurchasePurpose(uuid.New().String()), u, funds)
		require.NoError(t, err)
	}
	return u
}

func (e *env) balance(t *testing.T, u *models.User) int64 {
	t.Helper()
	bal, err := e.mem.Balance(context.Background(), ledger.AccountAddress(u.WalletAddress, asset))
	require.NoError(t, err)
	return bal
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("moves funds and logs the transfer", func(t *testing.T) {
		e := newEnv(t)
		alice := e.user(t, "a", 5000)
		bob := e.user(t, "b", 0)

		sig, err := e.exec.Transfer(ctx, "send:1", alice, bob.WalletAddress, 1200)
		require.NoError(t, err)
		assert.Equal(t, int64(3800), e.balance(t, alice))
		assert.Equal(t, int64(1200), e.balance(t, bob))

		logged, err := e.store.GetTransferByPurpose(ctx, "send:1")
		require.NoError(t, err)
		assert.Equal(t, models.TransferConfirmed, logged.Status)
		assert.Equal(t, sig, logged.Signature)
	})

	t.Run("same purpose never pays twice", func(t *testing.T) {
		e := newEnv(t)
		alice := e.user(t, "a", 5000)
		bob := e.user(t, "b", 0)

		first, err := e.exec.Transfer(ctx, "share:s:a", alice, bob.WalletAddress, 1000)
		require.NoError(t, err)
		second, err := e.exec.Transfer(ctx, "share:s:a", alice, bob.WalletAddress, 1000)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, int64(1000), e.balance(t, bob))
	})

	t.Run("lost response is retryable and the retry reconciles", func(t *testing.T) {
		e := newEnv(t)
		alice := e.user(t, "a", 5000)
		bob := e.user(t, "b", 0)

		e.relay.lose = true
		_, err := e.exec.Transfer(ctx, "request:r1", alice, bob.WalletAddress, 700)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNetworkTimeout))
		assert.True(t, apperrors.Retryable(err))

		e.relay.lose = false
		sig, err := e.exec.Transfer(ctx, "request:r1", alice, bob.WalletAddress, 700)
		require.NoError(t, err)
		assert.NotEmpty(t, sig)
		assert.Equal(t, int64(700), e.balance(t, bob), "retry must not move funds again")
	})

	t.Run("insufficient funds is a classified failure", func(t *testing.T) {
		e := newEnv(t)
		alice := e.user(t, "a", 100)
		bob := e.user(t, "b", 0)

		_, err := e.exec.Transfer(ctx, "send:2", alice, bob.WalletAddress, 500)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrTransferFailed))
		assert.Equal(t, apperrors.ReasonInsufficientFunds, apperrors.ReasonOf(err))

		logged, err := e.store.GetTransferByPurpose(ctx, "send:2")
		require.NoError(t, err)
		assert.Equal(t, models.TransferFailed, logged.Status)
	})

	t.Run("input is validated before any remote call", func(t *testing.T) {
		e := newEnv(t)
		alice := e.user(t, "a", 0)

		_, err := e.exec.Transfer(ctx, "send:3", alice, "garbage", 10)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		_, err = e.exec.Transfer(ctx, "send:3", alice, alice.WalletAddress, 10)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		_, err = e.exec.Transfer(ctx, "send:3", alice, alice.WalletAddress, 0)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}
