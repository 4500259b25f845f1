// Package chat manages the conversations bound to settlements and the
// per-member unread state derived from read receipts.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/storage"
)

// MaxMessageLength bounds a message in characters.
const MaxMessageLength = 1000

// DefaultMessageLimit is used when Messages is called without a limit.
const DefaultMessageLimit = 50

// Filters accepted by List.
const (
	FilterAll       = ""
	FilterActive    = models.ChatActive
	FilterCompleted = models.ChatCompleted
)

// Summary is a chat as seen by one member.
type Summary struct {
	Chat   *models.Chat `json:"chat"`
	Unread bool         `json:"unread"`
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

// Manager implements the chat operations.
type Manager struct {
	store   storage.ChatStore
	logger  *slog.Logger
	timeout time.Duration
}

// NewManager creates a chat manager.
func NewManager(store storage.ChatStore, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{store: store, logger: logger, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) memberChat(ctx context.Context, op string, s auth.Session, chatID string) (*models.Chat, error) {
	c, err := m.store.GetChat(ctx, chatID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	if !c.HasMember(s.UserID) {
		return nil, apperrors.PermissionDenied(op, "not a member of chat %s", chatID)
	}
	return c, nil
}

// SendMessage posts text to a chat the session user belongs to. The chat
// summary and the sender's read receipt are updated in the same write.
func (m *Manager) SendMessage(ctx context.Context, s auth.Session, chatID, text string) (*models.Message, error) {
	const op = "chat.SendMessage"
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.Validation(op, "message is empty")
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return nil, apperrors.Validation(op, "message exceeds %d characters", MaxMessageLength)
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if _, err := m.memberChat(ctx, op, s, chatID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		ChatID:     chatID,
		SenderID:   s.UserID,
		SenderName: s.Name,
		Text:       text,
		Kind:       models.MessageText,
		CreatedAt:  models.Now(),
	}
	if _, err := m.store.AppendMessage(ctx, msg); err != nil {
		return nil, storage.Wrap(op, err)
	}
	return msg, nil
}

// MarkRead records that the session user has read the chat up to now.
func (m *Manager) MarkRead(ctx context.Context, s auth.Session, chatID string) error {
	const op = "chat.MarkRead"
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if _, err := m.memberChat(ctx, op, s, chatID); err != nil {
		return err
	}
	if err := m.store.MarkChatRead(ctx, chatID, s.UserID, models.Now()); err != nil {
		return storage.Wrap(op, err)
	}
	return nil
}

// Complete lets the chat's creator close it. It returns false when the chat
// was already completed.
func (m *Manager) Complete(ctx context.Context, s auth.Session, chatID string) (bool, error) {
	const op = "chat.Complete"
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	c, err := m.memberChat(ctx, op, s, chatID)
	if err != nil {
		return false, err
	}
	if c.CreatedBy != s.UserID {
		return false, apperrors.PermissionDenied(op, "only the creator can complete the chat")
	}
	changed, err := m.store.CompleteChat(ctx, chatID)
	if err != nil {
		return false, storage.Wrap(op, err)
	}
	if changed {
		m.logger.Info("chat completed", "chat_id", chatID, "by", s.UserID)
	}
	return changed, nil
}

// List returns the session user's chats matching filter, most recent
// activity first, each with its unread flag.
func (m *Manager) List(ctx context.Context, s auth.Session, filter string) ([]Summary, error) {
	const op = "chat.List"
	switch filter {
	case FilterAll, FilterActive, FilterCompleted:
	default:
		return nil, apperrors.Validation(op, "unknown filter %q", filter)
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	chats, err := m.store.ListChatsForUser(ctx, s.UserID, filter)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	out := make([]Summary, 0, len(chats))
	for _, c := range chats {
		out = append(out, Summary{Chat: c, Unread: IsUnread(c, s.UserID)})
	}
	return out, nil
}

// UnreadCount returns how many of the session user's chats are unread.
func (m *Manager) UnreadCount(ctx context.Context, s auth.Session) (int, error) {
	list, err := m.List(ctx, s, FilterAll)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range list {
		if c.Unread {
			n++
		}
	}
	return n, nil
}

// Messages returns up to limit most recent messages of a chat, oldest first.
func (m *Manager) Messages(ctx context.Context, s auth.Session, chatID string, limit int) ([]*models.Message, error) {
	const op = "chat.Messages"
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if _, err := m.memberChat(ctx, op, s, chatID); err != nil {
		return nil, err
	}
	msgs, err := m.store.ListMessages(ctx, chatID, limit)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	return msgs, nil
}
