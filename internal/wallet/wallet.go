// Package wallet implements the user facing wallet operations: balance,
// direct sends to friends, mocked fiat purchases and transfer history.
package wallet

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/ledger"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/payment"
	"github.com/mmynk/pointwallet/internal/storage"
)

// MaxPurchase caps a single mocked purchase, in minor units.
const MaxPurchase int64 = 100_000_000

// DefaultHistoryLimit is used when History is called without a limit.
const DefaultHistoryLimit = 50

// Store is the persistence the manager needs.
type Store interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListFriends(ctx context.Context, userID string) ([]*models.User, error)
	storage.TransferStore
	storage.TreasuryStore
}

// Payer moves funds between wallets and out of the treasury.
type Payer interface {
	Transfer(ctx context.Context, purpose string, from *models.User, toAddress string, amount int64) (string, error)
	FromTreasury(ctx context.Context, purpose string, to *models.User, amount int64) (string, error)
}

// Config holds the collaborators of a Manager.
type Config struct {
	Store     Store
	Payer     Payer
	Ledger    ledger.Service
	Asset     string
	KRWPerUSD int64
	Timeout   time.Duration
	Logger    *slog.Logger
}

// Manager implements the wallet operations.
type Manager struct {
	store     Store
	payer     Payer
	ledger    ledger.Service
	asset     string
	krwPerUSD int64
	timeout   time.Duration
	logger    *slog.Logger
}

// NewManager creates a wallet manager.
func NewManager(cfg Config) *Manager {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.KRWPerUSD == 0 {
		cfg.KRWPerUSD = 1300
	}
	return &Manager{
		store:     cfg.Store,
		payer:     cfg.Payer,
		ledger:    cfg.Ledger,
		asset:     cfg.Asset,
		krwPerUSD: cfg.KRWPerUSD,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger,
	}
}

// Balance returns the session user's POINT balance in minor units.
func (m *Manager) Balance(ctx context.Context, s auth.Session) (int64, error) {
	const op = "wallet.Balance"
	user, err := m.store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return 0, storage.Wrap(op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	bal, err := m.ledger.Balance(ctx, ledger.AccountAddress(user.WalletAddress, m.asset))
	switch {
	case errors.Is(err, ledger.ErrUnknownAccount):
		return 0, nil
	case errors.Is(err, ledger.ErrNetwork):
		return 0, apperrors.Timeout(op, err)
	case err != nil:
		return 0, apperrors.Wrap(op, err)
	}
	return bal, nil
}

// Send transfers amount from the session user to one of their friends.
func (m *Manager) Send(ctx context.Context, s auth.Session, toUID string, amount int64) (*models.Transfer, error) {
	const op = "wallet.Send"
	if amount <= 0 {
		return nil, apperrors.Validation(op, "amount must be positive")
	}
	if toUID == s.UserID {
		return nil, apperrors.Validation(op, "cannot send to yourself")
	}

	from, err := m.store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	friends, err := m.store.ListFriends(ctx, s.UserID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	var to *models.User
	for _, f := range friends {
		if f.ID == toUID {
			to = f
			break
		}
	}
	if to == nil {
		return nil, apperrors.PermissionDenied(op, "recipient is not in your friend list")
	}

	purpose := payment.SendPurpose()
	if _, err := m.payer.Transfer(ctx, purpose, from, to.WalletAddress, amount); err != nil {
		return nil, err
	}
	logged, err := m.store.GetTransferByPurpose(ctx, purpose)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	m.logger.Info("points sent", "from", from.ID, "to", to.ID, "amount", amount, "signature", logged.Signature)
	return logged, nil
}

// FiatPrice returns the fiat amount, in minor units of currency, charged for
// points. KRW is 1 won per whole point; USD is converted at the configured
// rate and rounded to the nearest cent.
func (m *Manager) FiatPrice(points int64, currency string) (int64, error) {
	const op = "wallet.FiatPrice"
	switch currency {
	case models.CurrencyKRW:
		if points%100 != 0 {
			return 0, apperrors.Validation(op, "KRW purchases must be whole points")
		}
		return points / 100, nil
	case models.CurrencyUSD:
		cents := (points + m.krwPerUSD/2) / m.krwPerUSD
		if cents == 0 {
			return 0, apperrors.Validation(op, "amount is below one cent")
		}
		return cents, nil
	default:
		return 0, apperrors.Validation(op, "unsupported currency %q", currency)
	}
}

// Buy credits points to the session user from the treasury against a mocked
// fiat payment, and adds the fiat amount to the treasury balance.
func (m *Manager) Buy(ctx context.Context, s auth.Session, points int64, currency string) (*models.Purchase, error) {
	const op = "wallet.Buy"
	if points <= 0 {
		return nil, apperrors.Validation(op, "amount must be positive")
	}
	if points > MaxPurchase {
		return nil, apperrors.Validation(op, "amount exceeds the purchase limit")
	}
	fiat, err := m.FiatPrice(points, currency)
	if err != nil {
		return nil, err
	}

	user, err := m.store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}

	p := &models.Purchase{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		Points:     points,
		Currency:   currency,
		FiatAmount: fiat,
	}
	sig, err := m.payer.FromTreasury(ctx, payment.PurchasePurpose(p.ID), user, points)
	if err != nil {
		return nil, err
	}
	p.Signature = sig
	p.CreatedAt = models.Now()
	if err := m.store.RecordPurchase(context.WithoutCancel(ctx), p); err != nil {
		m.logger.Error("points credited but purchase not recorded", "purchase_id", p.ID, "signature", sig, "error", err)
		return nil, storage.Wrap(op, err)
	}
	m.logger.Info("points purchased", "user_id", user.ID, "points", points, "currency", currency, "fiat", fiat)
	return p, nil
}

// History returns transfers from or to the session user's wallet, newest first.
func (m *Manager) History(ctx context.Context, s auth.Session, limit int) ([]*models.Transfer, error) {
	const op = "wallet.History"
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	user, err := m.store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	list, err := m.store.ListTransfersByAddress(ctx, user.WalletAddress, limit)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	return list, nil
}

// Purchases returns the session user's purchases, newest first.
func (m *Manager) Purchases(ctx context.Context, s auth.Session) ([]*models.Purchase, error) {
	list, err := m.store.ListPurchases(ctx, s.UserID)
	if err != nil {
		return nil, storage.Wrap("wallet.Purchases", err)
	}
	return list, nil
}
