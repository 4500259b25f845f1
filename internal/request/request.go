// Package request implements one-to-one payment requests.
//
// A request moves pending -> completed -> archived. Only the asked party
// fulfills it (by paying the full amount), and only the requester marks it
// complete by hand or archives it.
package request

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

// Store is the persistence the manager needs.
type Store interface {
	storage.RequestStore
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Payer moves funds between wallets and returns the confirmed signature.
type Payer interface {
	Transfer(ctx context.Context, purpose string, from *models.User, toAddress string, amount int64) (string, error)
}

// DefaultTimeout bounds each group of store calls unless WithTimeout
// overrides it.
const DefaultTimeout = 15 * time.Second

// Option configures a Manager.
type Option func(*Manager)

// WithTimeout bounds each group of store calls by d.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// Manager implements the request operations.
type Manager struct {
	store   Store
	payer   Payer
	logger  *slog.Logger
	timeout time.Duration
}

// NewManager creates a request manager.
func NewManager(store Store, payer Payer, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{store: store, payer: payer, logger: logger, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateRequest asks toUID to pay amount to the session user.
func (m *Manager) CreateRequest(ctx context.Context, s auth.Session, toUID string, amount int64) (string, error) {
	const op = "request.CreateRequest"
	if amount <= 0 {
		return "", apperrors.Validation(op, "amount must be positive")
	}
	if toUID == "" {
		return "", apperrors.Validation(op, "recipient is required")
	}
	if toUID == s.UserID {
		return "", apperrors.Validation(op, "cannot request money from yourself")
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	from, err := m.store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return "", storage.Wrap(op, err)
	}
	to, err := m.store.GetUserByID(ctx, toUID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", apperrors.Validation(op, "unknown recipient %s", toUID)
	}
	if err != nil {
		return "", storage.Wrap(op, err)
	}
	if err := ledger.ValidateAddress(from.WalletAddress); err != nil {
		return "", apperrors.Validation(op, "requester has no valid wallet address")
	}

	now := models.Now()
	r := &models.Request{
		ID:          uuid.New().String(),
		FromUID:     from.ID,
		FromName:    from.Name,
		FromAddress: from.WalletAddress,
		ToUID:       to.ID,
		ToName:      to.Name,
		ToAddress:   to.WalletAddress,
		Amount:      amount,
		Status:      models.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := m.store.CreateRequest(ctx, r); err != nil {
		return "", storage.Wrap(op, err)
	}
	m.logger.Info("request created", "request_id", r.ID, "from", r.FromUID, "to", r.ToUID, "amount", amount)
	return r.ID, nil
}

// FulfillRequest pays a pending request addressed to the session user.
// amount must cover the requested amount; partial payments are rejected
// before any transfer. The request is completed only after the transfer is
// confirmed.
func (m *Manager) FulfillRequest(ctx context.Context, s auth.Session, requestID string, amount int64) (*models.Request, error) {
	const op = "request.FulfillRequest"
	r, payer, err := m.loadFulfillment(ctx, op, s, requestID, amount)
	if err != nil {
		return nil, err
	}
	// The request amount is paid; an overpayment offer does not move more.
	sig, err := m.payer.Transfer(ctx, payment.RequestPurpose(r.ID), payer, r.FromAddress, r.Amount)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	updated, err := m.store.UpdateRequestStatus(ctx, r.ID, models.RequestPending, models.RequestCompleted)
	if errors.Is(err, storage.ErrConflict) {
		m.logger.Warn("request paid after it left pending", "request_id", r.ID, "signature", sig, "amount", r.Amount)
		return nil, apperrors.AlreadyHandled(op, "request was completed during the transfer")
	}
	if err != nil {
		m.logger.Error("request paid but not completed", "request_id", r.ID, "signature", sig, "error", err)
		return nil, storage.Wrap(op, err)
	}
	m.logger.Info("request fulfilled", "request_id", r.ID, "signature", sig)
	return updated, nil
}

func (m *Manager) loadFulfillment(ctx context.Context, op string, s auth.Session, requestID string, amount int64) (*models.Request, *models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	r, err := m.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, nil, storage.Wrap(op, err)
	}
	if r.FromUID == s.UserID {
		return nil, nil, apperrors.PermissionDenied(op, "cannot fulfill your own request")
	}
	if r.ToUID != s.UserID {
		return nil, nil, apperrors.PermissionDenied(op, "request is not addressed to you")
	}
	if r.Status != models.RequestPending {
		return nil, nil, apperrors.AlreadyHandled(op, "request is %s", r.Status)
	}
	if amount < r.Amount {
		return nil, nil, apperrors.Validation(op, "amount %d is less than the requested %d", amount, r.Amount)
	}
	payer, err := m.store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, nil, storage.Wrap(op, err)
	}
	return r, payer, nil
}

// MarkComplete lets the requester complete a pending request by hand, e.g.
// after being paid in cash.
func (m *Manager) MarkComplete(ctx context.Context, s auth.Session, requestID string) (*models.Request, error) {
	return m.transition(ctx, s, "request.MarkComplete", requestID, models.RequestPending, models.RequestCompleted)
}

// Archive hides a completed request from the requester's list.
func (m *Manager) Archive(ctx context.Context, s auth.Session, requestID string) (*models.Request, error) {
	return m.transition(ctx, s, "request.Archive", requestID, models.RequestCompleted, models.RequestArchived)
}

func (m *Manager) transition(ctx context.Context, s auth.Session, op, requestID, from, to string) (*models.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	r, err := m.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	if r.FromUID != s.UserID {
		return nil, apperrors.PermissionDenied(op, "only the requester can do this")
	}
	if r.Status != from {
		return nil, apperrors.AlreadyHandled(op, "request is %s, not %s", r.Status, from)
	}
	updated, err := m.store.UpdateRequestStatus(ctx, requestID, from, to)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	return updated, nil
}

// ListIncoming returns the pending requests addressed to the session user.
func (m *Manager) ListIncoming(ctx context.Context, s auth.Session) ([]*models.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	list, err := m.store.ListRequestsTo(ctx, s.UserID, models.RequestPending)
	if err != nil {
		return nil, storage.Wrap("request.ListIncoming", err)
	}
	return list, nil
}

// ListOutgoing returns the session user's requests that are not archived.
func (m *Manager) ListOutgoing(ctx context.Context, s auth.Session) ([]*models.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	list, err := m.store.ListRequestsFrom(ctx, s.UserID, false)
	if err != nil {
		return nil, storage.Wrap("request.ListOutgoing", err)
	}
	return list, nil
}
