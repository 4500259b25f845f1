package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pointwallet/internal/ledger"
)

type fixture struct {
	mem      *ledger.Memory
	relay    *Relay
	user     *keys.PrivateKey
	userAcct string
	destAcct string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	mem := ledger.NewMemory()

	treasury, err := keys.NewPrivateKey()
	require.NoError(t, err)
	r := New(treasury, mem, "POINT", nil)
	treasuryAcct, err := r.TreasuryAccount(ctx)
	require.NoError(t, err)
	require.NoError(t, mem.Mint(treasuryAcct, 100_000))

	user, _ := keys.NewPrivateKey()
	dest, _ := keys.NewPrivateKey()
	userAcct, err := mem.CreateOrGetAccount(ctx, user.Address(), "POINT")
	require.NoError(t, err)
	destAcct, err := mem.CreateOrGetAccount(ctx, dest.Address(), "POINT")
	require.NoError(t, err)

	_, err = r.PayFromTreasury(ctx, userAcct, 1000)
	require.NoError(t, err)

	return &fixture{mem: mem, relay: r, user: user, userAcct: userAcct, destAcct: destAcct}
}

func (f *fixture) userTx(t *testing.T, amount int64) *ledger.Transaction {
	t.Helper()
	tx, err := f.mem.BuildTransfer(context.Background(), f.userAcct, f.destAcct, f.user.Address(), amount)
	require.NoError(t, err)
	tx.FeePayer = f.relay.FeePayer()
	tx.Sign(f.user)
	return tx
}

func TestCoSignAndSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("co-signs and confirms a user transfer", func(t *testing.T) {
		f := newFixture(t)
		raw, _ := f.userTx(t, 300).Encode()

		sig, err := f.relay.CoSignAndSubmit(ctx, raw)
		require.NoError(t, err)
		assert.NotEmpty(t, sig)

		bal, _ := f.mem.Balance(ctx, f.destAcct)
		assert.Equal(t, int64(300), bal)
	})

	t.Run("rejects a foreign fee payer", func(t *testing.T) {
		f := newFixture(t)
		tx := f.userTx(t, 10)
		tx.FeePayer = f.user.Address()
		tx.Sign(f.user)
		raw, _ := tx.Encode()

		_, err := f.relay.CoSignAndSubmit(ctx, raw)
		assert.ErrorIs(t, err, ErrWrongFeePayer)
	})

	t.Run("rejects unsigned user instruction", func(t *testing.T) {
		f := newFixture(t)
		tx := f.userTx(t, 10)
		tx.Signatures = nil
		raw, _ := tx.Encode()

		_, err := f.relay.CoSignAndSubmit(ctx, raw)
		assert.ErrorIs(t, err, ledger.ErrInvalidSignature)
	})

	t.Run("refuses to spend treasury funds for callers", func(t *testing.T) {
		f := newFixture(t)
		treasuryAcct, _ := f.relay.TreasuryAccount(ctx)
		tx, err := f.mem.BuildTransfer(ctx, treasuryAcct, f.destAcct, f.relay.FeePayer(), 10)
		require.NoError(t, err)
		tx.FeePayer = f.relay.FeePayer()
		raw, _ := tx.Encode()

		_, err = f.relay.CoSignAndSubmit(ctx, raw)
		assert.ErrorIs(t, err, ErrTreasuryInstruction)
	})

	t.Run("surfaces insufficient funds", func(t *testing.T) {
		f := newFixture(t)
		raw, _ := f.userTx(t, 5000).Encode()
		_, err := f.relay.CoSignAndSubmit(ctx, raw)
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})
}

func TestServeHTTP(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.relay)
	defer srv.Close()

	post := func(t *testing.T, tx *ledger.Transaction) (int, relayResponse) {
		t.Helper()
		raw, _ := tx.Encode()
		body, _ := json.Marshal(relayRequest{Transaction: raw})
		resp, err := http.Post(srv.URL, "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		var out relayResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp.StatusCode, out
	}

	t.Run("success returns the signature", func(t *testing.T) {
		code, out := post(t, f.userTx(t, 100))
		assert.Equal(t, http.StatusOK, code)
		assert.NotEmpty(t, out.Signature)
	})

	t.Run("insufficient funds maps to 402", func(t *testing.T) {
		code, out := post(t, f.userTx(t, 1_000_000))
		assert.Equal(t, http.StatusPaymentRequired, code)
		assert.NotEmpty(t, out.Error)
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		resp, err := http.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
