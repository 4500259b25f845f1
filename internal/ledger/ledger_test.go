package ledger

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asset = "POINT"

type wallet struct {
	key     *keys.PrivateKey
	account string
}

func newWallet(t *testing.T, svc Service) wallet {
	t.Helper()
	key, err := keys.NewPrivateKey()
	require.NoError(t, err)
	acct, err := svc.CreateOrGetAccount(context.Background(), key.Address(), asset)
	require.NoError(t, err)
	return wallet{key: key, account: acct}
}

// transfer builds, signs and submits a transfer paid for by feePayer.
func transfer(t *testing.T, svc Service, feePayer, from, to wallet, amount int64) (string, error) {
	t.Helper()
	ctx := context.Background()
	tx, err := svc.BuildTransfer(ctx, from.account, to.account, from.key.Address(), amount)
	require.NoError(t, err)
	tx.FeePayer = feePayer.key.Address()
	tx.Sign(from.key)
	tx.Sign(feePayer.key)
	raw, err := tx.Encode()
	require.NoError(t, err)
	return svc.Submit(ctx, raw)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	treasury := newWallet(t, mem)
	alice := newWallet(t, mem)
	bob := newWallet(t, mem)
	require.NoError(t, mem.Mint(treasury.account, 10_000))

	t.Run("account creation is idempotent", func(t *testing.T) {
		again, err := mem.CreateOrGetAccount(ctx, alice.key.Address(), asset)
		require.NoError(t, err)
		assert.Equal(t, alice.account, again)
	})

	t.Run("invalid owner address is rejected", func(t *testing.T) {
		_, err := mem.CreateOrGetAccount(ctx, "not-an-address", asset)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("signed transfer moves funds", func(t *testing.T) {
		sig, err := transfer(t, mem, treasury, treasury, alice, 3000)
		require.NoError(t, err)

		status, err := mem.Confirm(ctx, sig)
		require.NoError(t, err)
		assert.Equal(t, Confirmed, status)

		bal, _ := mem.Balance(ctx, alice.account)
		assert.Equal(t, int64(3000), bal)
	})

	t.Run("insufficient funds leaves balances untouched", func(t *testing.T) {
		_, err := transfer(t, mem, treasury, bob, alice, 1)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		bal, _ := mem.Balance(ctx, alice.account)
		assert.Equal(t, int64(3000), bal)
	})

	t.Run("missing fee payer signature is rejected", func(t *testing.T) {
		tx, err := mem.BuildTransfer(ctx, alice.account, bob.account, alice.key.Address(), 100)
		require.NoError(t, err)
		tx.FeePayer = treasury.key.Address()
		tx.Sign(alice.key)
		raw, _ := tx.Encode()

		_, err = mem.Submit(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("tampered transaction fails verification", func(t *testing.T) {
		tx, err := mem.BuildTransfer(ctx, alice.account, bob.account, alice.key.Address(), 100)
		require.NoError(t, err)
		tx.FeePayer = treasury.key.Address()
		tx.Sign(alice.key)
		tx.Sign(treasury.key)
		tx.Instructions[0].Amount = 2000
		raw, _ := tx.Encode()

		_, err = mem.Submit(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("signing for someone else's account is rejected", func(t *testing.T) {
		tx, err := mem.BuildTransfer(ctx, alice.account, bob.account, bob.key.Address(), 100)
		require.NoError(t, err)
		tx.FeePayer = treasury.key.Address()
		tx.Sign(bob.key)
		tx.Sign(treasury.key)
		raw, _ := tx.Encode()

		_, err = mem.Submit(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("resubmission does not apply twice", func(t *testing.T) {
		tx, err := mem.BuildTransfer(ctx, alice.account, bob.account, alice.key.Address(), 500)
		require.NoError(t, err)
		tx.FeePayer = treasury.key.Address()
		tx.Sign(alice.key)
		tx.Sign(treasury.key)
		raw, _ := tx.Encode()

		first, err := mem.Submit(ctx, raw)
		require.NoError(t, err)
		second, err := mem.Submit(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		bal, _ := mem.Balance(ctx, bob.account)
		assert.Equal(t, int64(500), bal)
	})

	t.Run("unknown signature", func(t *testing.T) {
		_, err := mem.Confirm(ctx, "deadbeef")
		assert.ErrorIs(t, err, ErrUnknownTransaction)
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		_, err := mem.BuildTransfer(ctx, alice.account, bob.account, alice.key.Address(), 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestRPCClient(t *testing.T) {
	mem := NewMemory()
	srv := httptest.NewServer(NewHandler(mem, nil))
	defer srv.Close()

	client, err := NewRPCClient(srv.URL, 5*time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	treasury := newWallet(t, client)
	alice := newWallet(t, client)
	require.NoError(t, mem.Mint(treasury.account, 1000))

	t.Run("transfer round trip", func(t *testing.T) {
		sig, err := transfer(t, client, treasury, treasury, alice, 400)
		require.NoError(t, err)

		status, err := client.Confirm(ctx, sig)
		require.NoError(t, err)
		assert.Equal(t, Confirmed, status)

		bal, err := client.Balance(ctx, alice.account)
		require.NoError(t, err)
		assert.Equal(t, int64(400), bal)
	})

	t.Run("ledger errors keep their identity over the wire", func(t *testing.T) {
		_, err := transfer(t, client, treasury, alice, treasury, 10_000)
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		_, err = client.Confirm(ctx, "missing")
		assert.ErrorIs(t, err, ErrUnknownTransaction)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := client.Call(ctx, "mint", alice.account, 1)
		var rpcErr *RPCError
		require.ErrorAs(t, err, &rpcErr)
		assert.Equal(t, codeMethodNotFound, rpcErr.Code)
	})

	t.Run("unreachable node is a network error", func(t *testing.T) {
		dead, err := NewRPCClient("http://127.0.0.1:1", time.Second)
		require.NoError(t, err)
		_, err = dead.Balance(ctx, alice.account)
		assert.ErrorIs(t, err, ErrNetwork)
	})

	t.Run("deadline is reported as context error", func(t *testing.T) {
		cctx, cancel := context.WithTimeout(ctx, time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)
		_, err := client.Balance(cctx, alice.account)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
