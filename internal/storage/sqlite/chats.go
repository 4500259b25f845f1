package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/realtime"
)

func insertChat(ctx context.Context, tx *sql.Tx, chat *models.Chat) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO chats (id, title, status, last_message, last_message_at, last_sender_id, settlement_id, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		chat.ID, chat.Title, chat.Status, chat.LastMessage, chat.LastMessageAt,
		chat.LastSenderID, chat.SettlementID, chat.CreatedBy, chat.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat: %w", err)
	}

	for i, uid := range chat.Participants {
		var readAt any
		if at, ok := chat.ReadStatus[uid]; ok {
			readAt = at
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO chat_members (chat_id, user_id, position, read_at) VALUES (?, ?, ?, ?)`,
			chat.ID, uid, i, readAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert chat member: %w", err)
		}
	}
	return nil
}

func insertMessage(ctx context.Context, tx *sql.Tx, msg *models.Message) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO messages (id, chat_id, sender_id, sender_name, text, kind, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.ChatID, msg.SenderID, msg.SenderName, msg.Text, msg.Kind, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func loadChat(ctx context.Context, q querier, id string) (*models.Chat, error) {
	chat := &models.Chat{ReadStatus: make(map[string]int64)}
	err := q.QueryRowContext(ctx,
		`SELECT id, title, status, last_message, last_message_at, last_sender_id, settlement_id, created_by, created_at
		 FROM chats WHERE id = ?`, id,
	).Scan(&chat.ID, &chat.Title, &chat.Status, &chat.LastMessage, &chat.LastMessageAt,
		&chat.LastSenderID, &chat.SettlementID, &chat.CreatedBy, &chat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("chat", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT user_id, read_at FROM chat_members WHERE chat_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var uid string
		var readAt sql.NullInt64
		if err := rows.Scan(&uid, &readAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat member: %w", err)
		}
		chat.Participants = append(chat.Participants, uid)
		if readAt.Valid {
			chat.ReadStatus[uid] = readAt.Int64
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat members: %w", err)
	}
	return chat, nil
}

// CreateChat persists a chat without a settlement.
func (s *SQLiteStore) CreateChat(ctx context.Context, chat *models.Chat) error {
	return s.writeTx(ctx, func(tx *sql.Tx) error {
		return insertChat(ctx, tx, chat)
	}, func() {
		s.hub.Publish(chatChange(chat, realtime.Added))
	})
}

// GetChat retrieves a chat with its members and read receipts.
func (s *SQLiteStore) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	return loadChat(ctx, s.db, id)
}

// ListChatsForUser returns the user's chats by most recent activity.
func (s *SQLiteStore) ListChatsForUser(ctx context.Context, userID, status string) ([]*models.Chat, error) {
	query := `SELECT c.id FROM chats c JOIN chat_members m ON m.chat_id = c.id WHERE m.user_id = ?`
	args := []any{userID}
	if status != "" {
		query += ` AND c.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY MAX(c.last_message_at, c.created_at) DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	ids, err := collectIDs(rows)
	if err != nil {
		return nil, err
	}

	chats := make([]*models.Chat, 0, len(ids))
	for _, id := range ids {
		chat, err := loadChat(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, nil
}

// AppendMessage inserts msg, updates the chat summary and the sender's read
// receipt in one transaction.
func (s *SQLiteStore) AppendMessage(ctx context.Context, msg *models.Message) (*models.Chat, error) {
	var chat *models.Chat
	err := s.writeTx(ctx, func(tx *sql.Tx) error {
		if err := insertMessage(ctx, tx, msg); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE chats SET last_message = ?, last_message_at = ?, last_sender_id = ? WHERE id = ?`,
			msg.Text, msg.CreatedAt, msg.SenderID, msg.ChatID)
		if err != nil {
			return fmt.Errorf("failed to update chat: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return notFound("chat", msg.ChatID)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE chat_members SET read_at = MAX(COALESCE(read_at, 0), ?) WHERE chat_id = ? AND user_id = ?`,
			msg.CreatedAt, msg.ChatID, msg.SenderID); err != nil {
			return fmt.Errorf("failed to update read receipt: %w", err)
		}
		chat, err = loadChat(ctx, tx, msg.ChatID)
		return err
	}, func() {
		s.hub.Publish(
			messageChange(msg, chat.Participants),
			chatChange(chat, realtime.Modified),
		)
	})
	if err != nil {
		return nil, err
	}
	return chat, nil
}

// MarkChatRead advances the member's read receipt.
func (s *SQLiteStore) MarkChatRead(ctx context.Context, chatID, userID string, at int64) error {
	var chat *models.Chat
	return s.writeTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE chat_members SET read_at = MAX(COALESCE(read_at, 0), ?) WHERE chat_id = ? AND user_id = ?`,
			at, chatID, userID)
		if err != nil {
			return fmt.Errorf("failed to mark chat read: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return notFound("chat member", chatID+"/"+userID)
		}
		chat, err = loadChat(ctx, tx, chatID)
		return err
	}, func() {
		s.hub.Publish(chatChange(chat, realtime.Modified))
	})
}

// CompleteChat moves an active chat to completed.
func (s *SQLiteStore) CompleteChat(ctx context.Context, chatID string) (bool, error) {
	var chat *models.Chat
	err := s.writeTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE chats SET status = ? WHERE id = ? AND status = ?`,
			models.ChatCompleted, chatID, models.ChatActive)
		if err != nil {
			return fmt.Errorf("failed to complete chat: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			// Distinguish a missing chat from one that is already completed.
			_, err := loadChat(ctx, tx, chatID)
			return err
		}
		chat, err = loadChat(ctx, tx, chatID)
		return err
	}, func() {
		if chat != nil {
			s.hub.Publish(chatChange(chat, realtime.Modified))
		}
	})
	if err != nil {
		return false, err
	}
	return chat != nil, nil
}

// ListMessages returns up to limit most recent messages, oldest first.
func (s *SQLiteStore) ListMessages(ctx context.Context, chatID string, limit int) ([]*models.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, chat_id, sender_id, sender_name, text, kind, created_at FROM (
			SELECT rowid AS seq, * FROM messages WHERE chat_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?
		) ORDER BY created_at, seq`, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var msgs []*models.Message
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.SenderName, &m.Text, &m.Kind, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return msgs, nil
}

func chatChange(chat *models.Chat, kind realtime.ChangeKind) realtime.Change {
	return realtime.Change{
		Collection: realtime.CollectionChats,
		DocID:      chat.ID,
		Kind:       kind,
		Doc:        chat,
		Audience:   chat.Participants,
	}
}

// messageChange publishes a message under its chat's ID so that a chat can be
// followed with a single query.
func messageChange(msg *models.Message, audience []string) realtime.Change {
	return realtime.Change{
		Collection: realtime.CollectionMessages,
		DocID:      msg.ChatID,
		Kind:       realtime.Added,
		Doc:        msg,
		Audience:   audience,
	}
}
