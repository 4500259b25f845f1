// Package treasury exposes aggregate statistics to administrators.
package treasury

import (
	"context"
	"time"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/ledger"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/storage"
)

// RecentTransfers is how many transfers Stats reports.
const RecentTransfers = 20

// Store is the persistence the manager needs.
type Store interface {
	TreasuryBalances(ctx context.Context) ([]models.TreasuryBalance, error)
	ListRecentTransfers(ctx context.Context, limit int) ([]*models.Transfer, error)
}

// AccountResolver returns the treasury token account.
type AccountResolver interface {
	FeePayer() string
	TreasuryAccount(ctx context.Context) (string, error)
}

// Stats is the admin dashboard.
type Stats struct {
	FiatBalances    []models.TreasuryBalance `json:"fiatBalances"`
	RecentTransfers []*models.Transfer       `json:"recentTransfers"`
	TreasuryAddress string                   `json:"treasuryAddress"`
	// PointBalance is the treasury's remaining POINT supply.
	PointBalance int64 `json:"pointBalance"`
}

// Manager implements the admin statistics.
type Manager struct {
	store    Store
	ledger   ledger.Service
	treasury AccountResolver
	timeout  time.Duration
}

// NewManager creates a treasury manager.
func NewManager(store Store, l ledger.Service, treasury AccountResolver, timeout time.Duration) *Manager {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Manager{store: store, ledger: l, treasury: treasury, timeout: timeout}
}

// Stats returns fiat balances, the treasury POINT balance and the most
// recent transfers. Only administrators may call it.
func (m *Manager) Stats(ctx context.Context, s auth.Session) (*Stats, error) {
	const op = "treasury.Stats"
	if !s.IsAdmin() {
		return nil, apperrors.PermissionDenied(op, "admin role required")
	}

	balances, err := m.store.TreasuryBalances(ctx)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	recent, err := m.store.ListRecentTransfers(ctx, RecentTransfers)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	acct, err := m.treasury.TreasuryAccount(ctx)
	if err != nil {
		return nil, apperrors.Wrap(op, err)
	}
	points, err := m.ledger.Balance(ctx, acct)
	if err != nil {
		return nil, apperrors.Wrap(op, err)
	}

	return &Stats{
		FiatBalances:    balances,
		RecentTransfers: recent,
		TreasuryAddress: m.treasury.FeePayer(),
		PointBalance:    points,
	}, nil
}
