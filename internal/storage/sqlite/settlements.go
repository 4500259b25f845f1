package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/realtime"
	"github.com/mmynk/pointwallet/internal/storage"
)

// CreateSplit persists a settlement together with its bound chat and the
// opening system message.
func (s *SQLiteStore) CreateSplit(ctx context.Context, st *models.Settlement, chat *models.Chat, opening *models.Message) error {
	return s.writeTx(ctx, func(tx *sql.Tx) error {
		if err := insertChat(ctx, tx, chat); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO settlements (id, creator_id, creator_name, creator_address, total_amount, chat_id, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			st.ID, st.CreatorID, st.CreatorName, st.CreatorAddress, st.TotalAmount, st.ChatID, st.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement: %w", err)
		}

		for i, p := range st.Participants {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO settlement_participants (settlement_id, position, uid, name, address, amount, status, role)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				st.ID, i, p.UID, p.Name, p.Address, p.Amount, p.Status, p.Role,
			)
			if isUniqueViolation(err) {
				return fmt.Errorf("duplicate participant %s: %w", p.UID, storage.ErrConflict)
			}
			if err != nil {
				return fmt.Errorf("failed to insert participant: %w", err)
			}
		}

		if opening != nil {
			if err := insertMessage(ctx, tx, opening); err != nil {
				return err
			}
		}
		return nil
	}, func() {
		changes := []realtime.Change{
			settlementChange(st, realtime.Added),
			chatChange(chat, realtime.Added),
		}
		if opening != nil {
			changes = append(changes, messageChange(opening, chat.Participants))
		}
		s.hub.Publish(changes...)
	})
}

// GetSettlement retrieves a settlement with its participants in order.
func (s *SQLiteStore) GetSettlement(ctx context.Context, id string) (*models.Settlement, error) {
	return loadSettlement(ctx, s.db, id)
}

func loadSettlement(ctx context.Context, q querier, id string) (*models.Settlement, error) {
	st := &models.Settlement{}
	err := q.QueryRowContext(ctx,
		`SELECT id, creator_id, creator_name, creator_address, total_amount, chat_id, created_at
		 FROM settlements WHERE id = ?`, id,
	).Scan(&st.ID, &st.CreatorID, &st.CreatorName, &st.CreatorAddress, &st.TotalAmount, &st.ChatID, &st.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("settlement", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT uid, name, address, amount, status, role, paid_via, signature, paid_at
		 FROM settlement_participants WHERE settlement_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.UID, &p.Name, &p.Address, &p.Amount, &p.Status, &p.Role,
			&p.PaidVia, &p.Signature, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		st.Participants = append(st.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return st, nil
}

// ListSettlementsForUser returns the settlements a user created or owes in.
func (s *SQLiteStore) ListSettlementsForUser(ctx context.Context, userID string) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM settlements WHERE creator_id = ?
		UNION
		SELECT settlement_id FROM settlement_participants WHERE uid = ?`,
		userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	ids, err := collectIDs(rows)
	if err != nil {
		return nil, err
	}

	settlements := make([]*models.Settlement, 0, len(ids))
	for _, id := range ids {
		st, err := loadSettlement(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, st)
	}
	sortNewestFirst(settlements, func(st *models.Settlement) int64 { return st.CreatedAt })
	return settlements, nil
}

// MarkParticipantsPaid moves entries from pending to paid and completes the
// bound chat when nothing is left pending. The entry updates, the re-count and
// the conditional chat update share one transaction, and the chat update only
// matches an active chat, so completion happens once no matter how many
// payers race.
func (s *SQLiteStore) MarkParticipantsPaid(ctx context.Context, settlementID string, uids []string, p storage.Payment) (*storage.PaymentOutcome, error) {
	outcome := &storage.PaymentOutcome{}
	var completed *models.Chat

	err := s.writeTx(ctx, func(tx *sql.Tx) error {
		var chatID string
		err := tx.QueryRowContext(ctx, `SELECT chat_id FROM settlements WHERE id = ?`, settlementID).Scan(&chatID)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("settlement", settlementID)
		}
		if err != nil {
			return fmt.Errorf("failed to get settlement: %w", err)
		}

		targets := uids
		if targets == nil {
			rows, err := tx.QueryContext(ctx,
				`SELECT uid FROM settlement_participants WHERE settlement_id = ? AND status = ? ORDER BY position`,
				settlementID, models.StatusPending)
			if err != nil {
				return fmt.Errorf("failed to list pending participants: %w", err)
			}
			if targets, err = collectIDs(rows); err != nil {
				return err
			}
		}

		for _, uid := range targets {
			res, err := tx.ExecContext(ctx,
				`UPDATE settlement_participants
				 SET status = ?, paid_via = ?, signature = ?, paid_at = ?
				 WHERE settlement_id = ? AND uid = ? AND status = ?`,
				models.StatusPaid, p.Via, p.Signature, p.At, settlementID, uid, models.StatusPending)
			if err != nil {
				return fmt.Errorf("failed to mark participant paid: %w", err)
			}
			if n, _ := res.RowsAffected(); n == 1 {
				outcome.Updated = append(outcome.Updated, uid)
				continue
			}

			var exists int
			err = tx.QueryRowContext(ctx,
				`SELECT 1 FROM settlement_participants WHERE settlement_id = ? AND uid = ?`,
				settlementID, uid).Scan(&exists)
			if errors.Is(err, sql.ErrNoRows) {
				return notFound("participant", uid)
			}
			if err != nil {
				return fmt.Errorf("failed to check participant: %w", err)
			}
		}

		var total, pending int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
			 FROM settlement_participants WHERE settlement_id = ?`,
			models.StatusPending, settlementID).Scan(&total, &pending); err != nil {
			return fmt.Errorf("failed to count pending participants: %w", err)
		}
		outcome.AllPaid = total > 0 && pending == 0

		if outcome.AllPaid && chatID != "" {
			res, err := tx.ExecContext(ctx,
				`UPDATE chats SET status = ? WHERE id = ? AND status = ?`,
				models.ChatCompleted, chatID, models.ChatActive)
			if err != nil {
				return fmt.Errorf("failed to complete chat: %w", err)
			}
			if n, _ := res.RowsAffected(); n == 1 {
				outcome.ChatCompleted = true
				if completed, err = loadChat(ctx, tx, chatID); err != nil {
					return err
				}
			}
		}

		outcome.Settlement, err = loadSettlement(ctx, tx, settlementID)
		return err
	}, func() {
		if len(outcome.Updated) > 0 {
			s.hub.Publish(settlementChange(outcome.Settlement, realtime.Modified))
		}
		if completed != nil {
			s.hub.Publish(chatChange(completed, realtime.Modified))
		}
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func settlementChange(st *models.Settlement, kind realtime.ChangeKind) realtime.Change {
	return realtime.Change{
		Collection: realtime.CollectionSettlements,
		DocID:      st.ID,
		Kind:       kind,
		Doc:        st,
		Audience:   st.Members(),
	}
}

func collectIDs(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ids: %w", err)
	}
	return ids, nil
}
