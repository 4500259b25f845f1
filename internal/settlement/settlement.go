// Package settlement tracks split bills: who owes the creator what, who has
// paid, and when the bound chat is complete.
//
// Participant entries only ever move from pending to paid, through one of
// three paths: the participant's own confirmed transfer (PayShare), the
// creator's override for one entry (ManualMarkPaid) or the creator marking
// everything paid (ForceCompleteAll). Every path ends in the store's
// completion cascade, which completes the bound chat exactly once.
package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/calculator"
	"github.com/mmynk/pointwallet/internal/metrics"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/payment"
	"github.com/mmynk/pointwallet/internal/storage"
)

// Share is one friend's part of a new settlement.
type Share = calculator.Share

// Store is the persistence the manager needs.
type Store interface {
	storage.SettlementStore
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)
}

// Payer moves funds between wallets and returns the confirmed signature.
type Payer interface {
	Transfer(ctx context.Context, purpose string, from *models.User, toAddress string, amount int64) (string, error)
}

// Proof is the evidence of an on-chain share payment.
type Proof struct {
	Signature string
}

// Result is the state of a settlement after a payment operation.
type Result struct {
	Settlement *models.Settlement
	Progress   Progress
	// Changed is true when this call moved at least one entry to paid.
	Changed bool
	// Completed is true only for the call that completed the bound chat.
	Completed bool
}

// DefaultTimeout bounds the store calls of one operation unless WithTimeout
// overrides it.
const DefaultTimeout = 15 * time.Second

// Option configures a Manager.
type Option func(*Manager)

// WithTimeout bounds the store calls of each operation by d.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// Manager implements the settlement operations.
type Manager struct {
	store   Store
	payer   Payer
	logger  *slog.Logger
	timeout time.Duration

	// inflight collapses concurrent PayShare calls for the same entry.
	inflight singleflight.Group
}

// NewManager creates a settlement manager.
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

// CreateSettlement records a bill of total paid by the session user and owed
// in the given shares. It persists the settlement, its chat and an opening
// message in one write and returns the settlement ID.
func (m *Manager) CreateSettlement(ctx context.Context, s auth.Session, total int64, shares []Share) (string, error) {
	const op = "settlement.CreateSettlement"
	if err := calculator.ValidateShares(total, shares); err != nil {
		return "", apperrors.Validation(op, "%v", err)
	}

	ids := make([]string, 0, len(shares))
	for _, sh := range shares {
		if sh.UserID == s.UserID {
			return "", apperrors.Validation(op, "creator cannot owe a share")
		}
		ids = append(ids, sh.UserID)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	creator, err := m.store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return "", storage.Wrap(op, err)
	}
	users, err := m.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return "", storage.Wrap(op, err)
	}

	now := models.Now()
	st := &models.Settlement{
		ID:             uuid.New().String(),
		CreatorID:      creator.ID,
		CreatorName:    creator.Name,
		CreatorAddress: creator.WalletAddress,
		TotalAmount:    total,
		ChatID:         uuid.New().String(),
		CreatedAt:      now,
	}
	for _, sh := range shares {
		u, ok := users[sh.UserID]
		if !ok {
			return "", apperrors.Validation(op, "unknown participant %s", sh.UserID)
		}
		st.Participants = append(st.Participants, models.Participant{
			UID:     u.ID,
			Name:    u.Name,
			Address: u.WalletAddress,
			Amount:  sh.Amount,
			Status:  models.StatusPending,
		})
	}

	text := fmt.Sprintf("%s split a bill of %s among %d people", creator.Name, FormatPoints(total), len(shares)+1)
	chat := &models.Chat{
		ID:            st.ChatID,
		Title:         fmt.Sprintf("%s's split", creator.Name),
		Participants:  st.Members(),
		Status:        models.ChatActive,
		LastMessage:   text,
		LastMessageAt: now,
		LastSenderID:  creator.ID,
		ReadStatus:    map[string]int64{creator.ID: now},
		SettlementID:  st.ID,
		CreatedBy:     creator.ID,
		CreatedAt:     now,
	}
	opening := &models.Message{
		ID:         uuid.New().String(),
		ChatID:     chat.ID,
		SenderID:   creator.ID,
		SenderName: creator.Name,
		Text:       text,
		Kind:       models.MessageSystem,
		CreatedAt:  now,
	}

	if err := m.store.CreateSplit(ctx, st, chat, opening); err != nil {
		return "", storage.Wrap(op, err)
	}
	m.logger.Info("settlement created", "settlement_id", st.ID, "creator", creator.ID,
		"total", total, "participants", len(shares))
	return st.ID, nil
}

// Get returns a settlement visible to the session user.
func (m *Manager) Get(ctx context.Context, s auth.Session, settlementID string) (*models.Settlement, error) {
	const op = "settlement.Get"
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	st, err := m.store.GetSettlement(ctx, settlementID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	if st.CreatorID != s.UserID {
		if _, ok := st.Participant(s.UserID); !ok {
			return nil, apperrors.PermissionDenied(op, "not a member of settlement %s", settlementID)
		}
	}
	return st, nil
}

// ListForUser returns the settlements the session user created or owes in,
// newest first.
func (m *Manager) ListForUser(ctx context.Context, s auth.Session) ([]*models.Settlement, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	list, err := m.store.ListSettlementsForUser(ctx, s.UserID)
	if err != nil {
		return nil, storage.Wrap("settlement.ListForUser", err)
	}
	return list, nil
}

// RecordPayment marks payerUID's entry paid with an on-chain proof. It is a
// no-op for an entry that is already paid.
func (m *Manager) RecordPayment(ctx context.Context, settlementID, payerUID string, proof Proof) (*Result, error) {
	return m.mark(ctx, "settlement.RecordPayment", settlementID, []string{payerUID}, storage.Payment{
		Via:       models.PaidViaOnChain,
		Signature: proof.Signature,
		At:        models.Now(),
	})
}

// PayShare pays the session user's share to the creator and records it once
// the transfer is confirmed. Paying an entry that is already paid fails with
// ConcurrentModification and moves no funds.
//
// Concurrent calls for the same entry share one attempt. The attempt ignores
// the caller's cancellation; each caller stops waiting when its own context
// ends.
func (m *Manager) PayShare(ctx context.Context, s auth.Session, settlementID string) (*Result, error) {
	key := settlementID + "/" + s.UserID
	detached := context.WithoutCancel(ctx)
	ch := m.inflight.DoChan(key, func() (any, error) {
		return m.payShare(detached, s, settlementID)
	})
	select {
	case <-ctx.Done():
		return nil, apperrors.Wrap("settlement.PayShare", ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*Result), nil
	}
}

func (m *Manager) payShare(ctx context.Context, s auth.Session, settlementID string) (*Result, error) {
	const op = "settlement.PayShare"
	st, payer, err := m.loadPayer(ctx, op, s, settlementID)
	if err != nil {
		return nil, err
	}
	entry, _ := st.Participant(s.UserID)

	p := storage.Payment{Via: models.PaidViaWaived, At: models.Now()}
	if entry.Amount > 0 {
		sig, err := m.payer.Transfer(ctx, payment.SharePurpose(settlementID, s.UserID), payer, st.CreatorAddress, entry.Amount)
		if err != nil {
			return nil, err
		}
		p = storage.Payment{Via: models.PaidViaOnChain, Signature: sig, At: models.Now()}
	}

	res, err := m.mark(ctx, op, settlementID, []string{s.UserID}, p)
	if err != nil {
		m.logger.Error("share transferred but not recorded", "settlement_id", settlementID,
			"uid", s.UserID, "signature", p.Signature, "error", err)
		return nil, err
	}
	if !res.Changed {
		// The creator marked the entry paid while the transfer was running.
		m.logger.Warn("share transferred to an entry that was already paid", "settlement_id", settlementID,
			"uid", s.UserID, "signature", p.Signature, "amount", entry.Amount)
		return nil, apperrors.AlreadyHandled(op, "share was marked paid during the transfer")
	}
	return res, nil
}

// loadPayer returns the settlement and the paying user after checking that
// the session user still owes a share.
func (m *Manager) loadPayer(ctx context.Context, op string, s auth.Session, settlementID string) (*models.Settlement, *models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	st, err := m.store.GetSettlement(ctx, settlementID)
	if err != nil {
		return nil, nil, storage.Wrap(op, err)
	}
	entry, ok := st.Participant(s.UserID)
	if !ok {
		return nil, nil, apperrors.PermissionDenied(op, "not a participant of settlement %s", settlementID)
	}
	if entry.Status == models.StatusPaid {
		return nil, nil, apperrors.AlreadyHandled(op, "share already paid")
	}
	payer, err := m.store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, nil, storage.Wrap(op, err)
	}
	return st, payer, nil
}

// ManualMarkPaid lets the creator mark one entry paid without a transfer.
func (m *Manager) ManualMarkPaid(ctx context.Context, s auth.Session, settlementID, targetUID string) (*Result, error) {
	const op = "settlement.ManualMarkPaid"
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	st, err := m.store.GetSettlement(ctx, settlementID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	if st.CreatorID != s.UserID {
		return nil, apperrors.PermissionDenied(op, "only the creator can mark shares paid")
	}
	if _, ok := st.Participant(targetUID); !ok {
		return nil, apperrors.NotFound(op, "participant %s not in settlement", targetUID)
	}
	return m.mark(ctx, op, settlementID, []string{targetUID}, storage.Payment{
		Via: models.PaidViaManual,
		At:  models.Now(),
	})
}

// ForceCompleteAll lets the creator mark every pending entry paid and
// complete the chat. confirm must be set; callers ask the user first.
func (m *Manager) ForceCompleteAll(ctx context.Context, s auth.Session, settlementID string, confirm bool) (*Result, error) {
	const op = "settlement.ForceCompleteAll"
	if !confirm {
		return nil, apperrors.Validation(op, "completing every share requires confirmation")
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	st, err := m.store.GetSettlement(ctx, settlementID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	if st.CreatorID != s.UserID {
		return nil, apperrors.PermissionDenied(op, "only the creator can complete a settlement")
	}
	return m.mark(ctx, op, settlementID, nil, storage.Payment{
		Via: models.PaidViaBulk,
		At:  models.Now(),
	})
}

func (m *Manager) mark(ctx context.Context, op, settlementID string, uids []string, p storage.Payment) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	out, err := m.store.MarkParticipantsPaid(ctx, settlementID, uids, p)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	res := &Result{
		Settlement: out.Settlement,
		Progress:   ProgressOf(out.Settlement),
		Changed:    len(out.Updated) > 0,
		Completed:  out.ChatCompleted,
	}
	if res.Changed {
		m.logger.Info("settlement entries paid", "settlement_id", settlementID, "via", p.Via,
			"uids", out.Updated, "percent", res.Progress.Percent)
	}
	if res.Completed {
		metrics.SettlementCompleted()
		m.logger.Info("settlement completed", "settlement_id", settlementID, "chat_id", out.Settlement.ChatID)
	}
	return res, nil
}

// FormatPoints renders minor units as "12.34 P".
func FormatPoints(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d P", sign, amount/100, amount%100)
}
