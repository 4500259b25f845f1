// Package ledger is the boundary to the token ledger that holds POINT balances.
//
// The backend treats the ledger as opaque: it opens token accounts, builds
// transfer instructions, submits signed transactions and waits for
// confirmation. Memory is an in-process ledger for development and tests;
// RPCClient talks to a ledger node over JSON-RPC.
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrNetwork            = errors.New("ledger network error")
	ErrUnknownTransaction = errors.New("unknown transaction")
	ErrUnknownAccount     = errors.New("unknown account")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidAddress     = errors.New("invalid wallet address")
)

// Status is the confirmation state of a submitted transaction.
type Status string

const (
	Confirmed Status = "confirmed"
	Failed    Status = "failed"
	Pending   Status = "pending"
)

// Service is the ledger boundary consumed by the backend.
type Service interface {
	// CreateOrGetAccount returns the token account of owner for asset,
	// opening it when needed. It is idempotent.
	CreateOrGetAccount(ctx context.Context, owner, asset string) (string, error)

	// BuildTransfer returns an unsigned transaction moving amount from the
	// source account, owned by owner, to the destination account.
	BuildTransfer(ctx context.Context, source, destination, owner string, amount int64) (*Transaction, error)

	// Submit broadcasts a fully signed transaction and returns its signature.
	Submit(ctx context.Context, raw []byte) (string, error)

	// Confirm reports the state of a submitted transaction.
	Confirm(ctx context.Context, signature string) (Status, error)

	// Balance returns the balance of a token account.
	Balance(ctx context.Context, account string) (int64, error)
}

// AccountAddress derives the token account of owner for asset.
func AccountAddress(owner, asset string) string {
	sum := sha256.Sum256([]byte(owner + "/" + asset))
	return "ta" + hex.EncodeToString(sum[:20])
}

// ValidateAddress checks that s is a well formed wallet address.
func ValidateAddress(s string) error {
	if _, err := address.StringToUint160(s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAddress, s)
	}
	return nil
}

// WaitConfirmed polls Confirm until the transaction leaves Pending or ctx is
// done. A Failed transaction is returned as a status, not an error.
func WaitConfirmed(ctx context.Context, svc Service, signature string, interval time.Duration) (Status, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		status, err := svc.Confirm(ctx, signature)
		if err != nil {
			return "", err
		}
		if status != Pending {
			return status, nil
		}
		select {
		case <-ctx.Done():
			return Pending, ctx.Err()
		case <-ticker.C:
		}
	}
}
