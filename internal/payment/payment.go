// Package payment runs ledger transfers on behalf of users.
//
// Every transfer is logged under a purpose key before it is submitted. If a
// call times out after submission, a retry with the same purpose confirms the
// logged transaction instead of sending the funds a second time.
package payment

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/ledger"
	"github.com/mmynk/pointwallet/internal/metrics"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/relay"
	"github.com/mmynk/pointwallet/internal/storage"
)

// Relayer is the trusted co-signing boundary.
type Relayer interface {
	FeePayer() string
	CoSignAndSubmit(ctx context.Context, raw []byte) (string, error)
	TreasuryTransfer(ctx context.Context, destination string, amount int64) (*ledger.Transaction, error)
	SubmitTreasury(ctx context.Context, tx *ledger.Transaction) (string, error)
}

// KeyOpener returns a user's wallet key.
type KeyOpener interface {
	Open(ctx context.Context, userID string) (*keys.PrivateKey, error)
}

// SharePurpose keys the payment of one settlement entry.
func SharePurpose(settlementID, uid string) string { return "share:" + settlementID + ":" + uid }

// RequestPurpose keys the fulfillment of a request.
func RequestPurpose(requestID string) string { return "request:" + requestID }

// SendPurpose keys a direct send. Sends are never retried under the same key.
func SendPurpose() string { return "send:" + uuid.New().String() }

// PurchasePurpose keys a treasury top-up.
func PurchasePurpose(purchaseID string) string { return "buy:" + purchaseID }

// Executor moves POINT between wallets.
type Executor struct {
	transfers storage.TransferStore
	vault     KeyOpener
	ledger    ledger.Service
	relay     Relayer
	asset     string
	timeout   time.Duration
	logger    *slog.Logger
}

// Config holds the collaborators of an Executor.
type Config struct {
	Transfers storage.TransferStore
	Keys      KeyOpener
	Ledger    ledger.Service
	Relay     Relayer
	Asset     string
	Timeout   time.Duration
	Logger    *slog.Logger
}

func NewExecutor(cfg Config) *Executor {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Executor{
		transfers: cfg.Transfers,
		vault:     cfg.Keys,
		ledger:    cfg.Ledger,
		relay:     cfg.Relay,
		asset:     cfg.Asset,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger,
	}
}

// Timeout is the bound applied to every remote call sequence.
func (e *Executor) Timeout() time.Duration { return e.timeout }

// Transfer sends amount from the user's wallet to toAddress and returns the
// confirmed ledger signature. Errors are classified with apperrors.
func (e *Executor) Transfer(ctx context.Context, purpose string, from *models.User, toAddress string, amount int64) (string, error) {
	const op = "payment.Transfer"
	if amount <= 0 {
		return "", apperrors.Validation(op, "amount must be positive")
	}
	if err := ledger.ValidateAddress(toAddress); err != nil {
		return "", apperrors.Validation(op, "invalid destination address %q", toAddress)
	}
	if toAddress == from.WalletAddress {
		return "", apperrors.Validation(op, "cannot transfer to your own wallet")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if sig, done, err := e.resume(ctx, op, purpose); done || err != nil {
		return sig, err
	}

	priv, err := e.vault.Open(ctx, from.ID)
	if err != nil {
		return "", apperrors.Wrap(op, err)
	}
	src, err := e.ledger.CreateOrGetAccount(ctx, from.WalletAddress, e.asset)
	if err != nil {
		return "", e.classify(op, err)
	}
	dst, err := e.ledger.CreateOrGetAccount(ctx, toAddress, e.asset)
	if err != nil {
		return "", e.classify(op, err)
	}
	tx, err := e.ledger.BuildTransfer(ctx, src, dst, from.WalletAddress, amount)
	if err != nil {
		return "", e.classify(op, err)
	}
	tx.FeePayer = e.relay.FeePayer()
	tx.Sign(priv)
	raw, err := tx.Encode()
	if err != nil {
		return "", apperrors.Internal(op, err)
	}

	return e.submit(ctx, op, purpose, tx, from.WalletAddress, toAddress, func(ctx context.Context) (string, error) {
		return e.relay.CoSignAndSubmit(ctx, raw)
	})
}

// FromTreasury credits amount to the user's wallet out of the treasury.
func (e *Executor) FromTreasury(ctx context.Context, purpose string, to *models.User, amount int64) (string, error) {
	const op = "payment.FromTreasury"
	if amount <= 0 {
		return "", apperrors.Validation(op, "amount must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if sig, done, err := e.resume(ctx, op, purpose); done || err != nil {
		return sig, err
	}

	dst, err := e.ledger.CreateOrGetAccount(ctx, to.WalletAddress, e.asset)
	if err != nil {
		return "", e.classify(op, err)
	}
	tx, err := e.relay.TreasuryTransfer(ctx, dst, amount)
	if err != nil {
		return "", e.classify(op, err)
	}
	return e.submit(ctx, op, purpose, tx, e.relay.FeePayer(), to.WalletAddress, func(ctx context.Context) (string, error) {
		return e.relay.SubmitTreasury(ctx, tx)
	})
}

// resume checks the transfer log for purpose. done is true when an earlier
// attempt already confirmed; a submitted attempt is re-confirmed on the ledger.
func (e *Executor) resume(ctx context.Context, op, purpose string) (sig string, done bool, err error) {
	prev, err := e.transfers.GetTransferByPurpose(ctx, purpose)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.Wrap(op, err)
	}

	switch prev.Status {
	case models.TransferConfirmed:
		return prev.Signature, true, nil
	case models.TransferFailed:
		return "", false, nil
	}

	status, err := e.ledger.Confirm(ctx, prev.Signature)
	switch {
	case errors.Is(err, ledger.ErrUnknownTransaction):
		// The earlier submit never reached the ledger.
		e.logger.Info("retrying unsubmitted transfer", "purpose", purpose)
		return "", false, nil
	case err != nil:
		return "", false, e.classify(op, err)
	}

	switch status {
	case ledger.Confirmed:
		prev.Status = models.TransferConfirmed
		if err := e.transfers.PutTransfer(ctx, prev); err != nil {
			return "", false, apperrors.Wrap(op, err)
		}
		return prev.Signature, true, nil
	case ledger.Failed:
		prev.Status = models.TransferFailed
		if err := e.transfers.PutTransfer(ctx, prev); err != nil {
			return "", false, apperrors.Wrap(op, err)
		}
		return "", false, nil
	default:
		return "", false, apperrors.Timeout(op, errors.New("earlier transfer still pending"))
	}
}

func (e *Executor) submit(ctx context.Context, op, purpose string, tx *ledger.Transaction, fromAddr, toAddr string,
	send func(context.Context) (string, error)) (string, error) {
	start := time.Now()
	kind := purposeKind(purpose)

	record := &models.Transfer{
		ID:          uuid.New().String(),
		Purpose:     purpose,
		Signature:   tx.Hash(),
		FromAddress: fromAddr,
		ToAddress:   toAddr,
		Amount:      totalAmount(tx),
		Status:      models.TransferSubmitted,
		CreatedAt:   models.Now(),
	}
	if err := e.transfers.PutTransfer(ctx, record); err != nil {
		return "", apperrors.Wrap(op, err)
	}

	sig, err := send(ctx)
	if err != nil {
		classified := e.classify(op, err)
		if apperrors.Retryable(classified) {
			metrics.RecordTransfer(kind, "timeout", time.Since(start))
			e.logger.Warn("transfer outcome unknown", "purpose", purpose, "signature", record.Signature, "error", err)
			return "", classified
		}
		record.Status = models.TransferFailed
		record.Error = err.Error()
		if perr := e.transfers.PutTransfer(context.WithoutCancel(ctx), record); perr != nil {
			e.logger.Error("failed to log failed transfer", "purpose", purpose, "error", perr)
		}
		metrics.RecordTransfer(kind, "failed", time.Since(start))
		return "", classified
	}

	record.Signature = sig
	record.Status = models.TransferConfirmed
	if err := e.transfers.PutTransfer(context.WithoutCancel(ctx), record); err != nil {
		e.logger.Error("failed to log confirmed transfer", "purpose", purpose, "signature", sig, "error", err)
	}
	metrics.RecordTransfer(kind, "confirmed", time.Since(start))
	return sig, nil
}

// classify maps ledger and relay failures onto the application taxonomy.
func (e *Executor) classify(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ledger.ErrNetwork):
		return apperrors.Timeout(op, err)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return apperrors.TransferFailed(op, apperrors.ReasonInsufficientFunds, err)
	case errors.Is(err, ledger.ErrInvalidSignature), errors.Is(err, relay.ErrWrongFeePayer):
		return apperrors.TransferFailed(op, apperrors.ReasonInvalidSignature, err)
	case errors.Is(err, relay.ErrTransactionFailed), errors.Is(err, relay.ErrTreasuryInstruction),
		errors.Is(err, ledger.ErrUnknownAccount), errors.Is(err, ledger.ErrInvalidAmount):
		return apperrors.TransferFailed(op, apperrors.ReasonRejected, err)
	case errors.Is(err, ledger.ErrInvalidAddress):
		return apperrors.Validation(op, "%v", err)
	default:
		return apperrors.Wrap(op, err)
	}
}

func purposeKind(purpose string) string {
	kind, _, _ := strings.Cut(purpose, ":")
	return kind
}

func totalAmount(tx *ledger.Transaction) int64 {
	var sum int64
	for _, ins := range tx.Instructions {
		sum += ins.Amount
	}
	return sum
}
