// Package relay holds the treasury key and co-signs user transactions as fee
// payer before submitting them to the ledger.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"

	"github.com/mmynk/pointwallet/internal/ledger"
)

var (
	// ErrWrongFeePayer is returned for transactions not naming the treasury as fee payer.
	ErrWrongFeePayer = errors.New("fee payer is not the treasury")
	// ErrTreasuryInstruction is returned when a caller tries to spend treasury funds.
	ErrTreasuryInstruction = errors.New("instruction spends treasury funds")
	// ErrTransactionFailed is returned when the ledger reports a failed execution.
	ErrTransactionFailed = errors.New("transaction failed on ledger")
)

const confirmInterval = 200 * time.Millisecond

// Relay co-signs and submits transactions with the treasury key.
type Relay struct {
	treasury *keys.PrivateKey
	ledger   ledger.Service
	asset    string
	logger   *slog.Logger
}

// New creates a Relay.
func New(treasury *keys.PrivateKey, l ledger.Service, asset string, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{treasury: treasury, ledger: l, asset: asset, logger: logger}
}

// FeePayer returns the treasury wallet address.
func (r *Relay) FeePayer() string {
	return r.treasury.Address()
}

// TreasuryAccount opens (or returns) the treasury token account.
func (r *Relay) TreasuryAccount(ctx context.Context) (string, error) {
	return r.ledger.CreateOrGetAccount(ctx, r.FeePayer(), r.asset)
}

// CoSignAndSubmit verifies a user-signed transaction, adds the fee payer
// signature, submits it and waits for confirmation.
func (r *Relay) CoSignAndSubmit(ctx context.Context, raw []byte) (string, error) {
	tx, err := ledger.DecodeTransaction(raw)
	if err != nil {
		return "", err
	}
	if tx.FeePayer != r.FeePayer() {
		return "", ErrWrongFeePayer
	}

	signed, err := tx.SignedBy()
	if err != nil {
		return "", err
	}
	for _, ins := range tx.Instructions {
		if ins.Owner == r.FeePayer() {
			return "", ErrTreasuryInstruction
		}
		if !signed[ins.Owner] {
			return "", fmt.Errorf("%w: missing signature of %s", ledger.ErrInvalidSignature, ins.Owner)
		}
	}

	return r.submit(ctx, tx)
}

// PayFromTreasury transfers amount from the treasury to destination. It is
// only reachable from trusted server code, never from the HTTP endpoint.
func (r *Relay) PayFromTreasury(ctx context.Context, destination string, amount int64) (string, error) {
	tx, err := r.TreasuryTransfer(ctx, destination, amount)
	if err != nil {
		return "", err
	}
	return r.SubmitTreasury(ctx, tx)
}

// TreasuryTransfer builds an unsigned treasury to destination transfer so that
// callers can log its hash before it is submitted.
func (r *Relay) TreasuryTransfer(ctx context.Context, destination string, amount int64) (*ledger.Transaction, error) {
	source, err := r.TreasuryAccount(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := r.ledger.BuildTransfer(ctx, source, destination, r.FeePayer(), amount)
	if err != nil {
		return nil, err
	}
	tx.FeePayer = r.FeePayer()
	return tx, nil
}

// SubmitTreasury signs and submits a transaction built by TreasuryTransfer.
func (r *Relay) SubmitTreasury(ctx context.Context, tx *ledger.Transaction) (string, error) {
	if tx.FeePayer != r.FeePayer() {
		return "", ErrWrongFeePayer
	}
	return r.submit(ctx, tx)
}

func (r *Relay) submit(ctx context.Context, tx *ledger.Transaction) (string, error) {
	tx.Sign(r.treasury)
	raw, err := tx.Encode()
	if err != nil {
		return "", err
	}

	sig, err := r.ledger.Submit(ctx, raw)
	if err != nil {
		return "", err
	}
	status, err := ledger.WaitConfirmed(ctx, r.ledger, sig, confirmInterval)
	if err != nil {
		return sig, err
	}
	if status == ledger.Failed {
		return sig, ErrTransactionFailed
	}
	r.logger.Debug("relayed transaction", "signature", sig, "instructions", len(tx.Instructions))
	return sig, nil
}

type relayRequest struct {
	Transaction []byte `json:"transaction"`
}

type relayResponse struct {
	Signature string `json:"signature,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ServeHTTP implements POST /api/relay. The body carries the base64 encoded
// user-signed transaction; the response carries the ledger signature.
func (r *Relay) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body relayRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 1<<20)).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, relayResponse{Error: "invalid request body"})
		return
	}

	sig, err := r.CoSignAndSubmit(req.Context(), body.Transaction)
	if err != nil {
		r.logger.Warn("relay failed", "error", err)
		writeJSON(w, statusFor(err), relayResponse{Signature: sig, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, relayResponse{Signature: sig})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrWrongFeePayer), errors.Is(err, ErrTreasuryInstruction):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ledger.ErrNetwork):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrTransactionFailed):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
