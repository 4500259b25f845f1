// Package testutil assembles a complete backend on a temporary SQLite
// database and the in-process ledger for package tests.
package testutil

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/keystore"
	"github.com/mmynk/pointwallet/internal/ledger"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/payment"
	"github.com/mmynk/pointwallet/internal/relay"
	"github.com/mmynk/pointwallet/internal/storage/sqlite"
)

// Asset is the token used by test environments.
const Asset = "POINT"

// TreasurySupply is minted to the treasury of every environment.
const TreasurySupply int64 = 100_000_000

// Env is a wired backend for tests.
type Env struct {
	Store    *sqlite.SQLiteStore
	Ledger   *ledger.Memory
	Relay    *relay.Relay
	Vault    *keystore.Vault
	Payments *payment.Executor
	Auth     *auth.PasswordAuthenticator
	Logger   *slog.Logger
}

// New creates an Env that is torn down with t.
func New(t testing.TB) *Env {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "point.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.DiscardHandler)
	mem := ledger.NewMemory()
	treasury, err := keys.NewPrivateKey()
	require.NoError(t, err)
	r := relay.New(treasury, mem, Asset, logger)
	acct, err := r.TreasuryAccount(ctx)
	require.NoError(t, err)
	require.NoError(t, mem.Mint(acct, TreasurySupply))

	vault, err := keystore.NewVault("test-vault-master-key", store)
	require.NoError(t, err)

	e := &Env{
		Store:  store,
		Ledger: mem,
		Relay:  r,
		Vault:  vault,
		Auth:   auth.NewPasswordAuthenticator(store, vault, mem, Asset, nil),
		Logger: logger,
	}
	e.Payments = e.executor(r)
	return e
}

func (e *Env) executor(r payment.Relayer) *payment.Executor {
	return payment.NewExecutor(payment.Config{
		Transfers: e.Store,
		Keys:      e.Vault,
		Ledger:    e.Ledger,
		Relay:     r,
		Asset:     Asset,
		Timeout:   5 * time.Second,
		Logger:    e.Logger,
	})
}

// LossyRelay submits transactions but, while Lose is set, drops the response
// as if the connection failed after the ledger accepted the transfer.
type LossyRelay struct {
	*relay.Relay
	Lose atomic.Bool
}

func (l *LossyRelay) CoSignAndSubmit(ctx context.Context, raw []byte) (string, error) {
	sig, err := l.Relay.CoSignAndSubmit(ctx, raw)
	if l.Lose.Load() {
		return "", context.DeadlineExceeded
	}
	return sig, err
}

// LossyPayments returns an executor over the same store, keys and ledger
// whose relay can be told to lose responses.
func (e *Env) LossyPayments() (*payment.Executor, *LossyRelay) {
	l := &LossyRelay{Relay: e.Relay}
	return e.executor(l), l
}

// User registers a student named name and funds the wallet with funds
// from the treasury.
func (e *Env) User(t testing.TB, name string, funds int64) (*models.User, auth.Session) {
	t.Helper()
	ctx := context.Background()
	u, err := e.Auth.Register(ctx, auth.Registration{
		StudentID: name + "-" + uuid.New().String()[:8],
		Name:      name,
		Password:  "password123",
	})
	require.NoError(t, err)
	if funds > 0 {
		_, err := e.Payments.FromTreasury(ctx, payment.PurchasePurpose(uuid.New().String()), u, funds)
		require.NoError(t, err)
	}
	return u, auth.SessionFor(u)
}

// Balance returns the token balance of u.
func (e *Env) Balance(t testing.TB, u *models.User) int64 {
	t.Helper()
	bal, err := e.Ledger.Balance(context.Background(), ledger.AccountAddress(u.WalletAddress, Asset))
	require.NoError(t, err)
	return bal
}
