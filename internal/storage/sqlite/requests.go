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

const requestColumns = `id, from_uid, from_name, from_address, to_uid, to_name, to_address, amount, status, created_at, updated_at`

func scanRequest(row interface{ Scan(...any) error }) (*models.Request, error) {
	r := &models.Request{}
	err := row.Scan(&r.ID, &r.FromUID, &r.FromName, &r.FromAddress, &r.ToUID, &r.ToName,
		&r.ToAddress, &r.Amount, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// CreateRequest persists a new payment request.
func (s *SQLiteStore) CreateRequest(ctx context.Context, r *models.Request) error {
	return s.writeTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO requests (`+requestColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.FromUID, r.FromName, r.FromAddress, r.ToUID, r.ToName, r.ToAddress,
			r.Amount, r.Status, r.CreatedAt, r.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert request: %w", err)
		}
		return nil
	}, func() {
		s.hub.Publish(requestChange(r, realtime.Added))
	})
}

// GetRequest retrieves a request by ID.
func (s *SQLiteStore) GetRequest(ctx context.Context, id string) (*models.Request, error) {
	return loadRequest(ctx, s.db, id)
}

func loadRequest(ctx context.Context, q querier, id string) (*models.Request, error) {
	r, err := scanRequest(q.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("request", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return r, nil
}

// UpdateRequestStatus is a compare-and-set on the request status.
func (s *SQLiteStore) UpdateRequestStatus(ctx context.Context, id, from, to string) (*models.Request, error) {
	var updated *models.Request
	err := s.writeTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE requests SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
			to, models.Now(), id, from)
		if err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}
		current, err := loadRequest(ctx, tx, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("request %s is %s, not %s: %w", id, current.Status, from, storage.ErrConflict)
		}
		updated = current
		return nil
	}, func() {
		s.hub.Publish(requestChange(updated, realtime.Modified))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListRequestsTo returns requests addressed to userID, newest first.
func (s *SQLiteStore) ListRequestsTo(ctx context.Context, userID, status string) ([]*models.Request, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE to_uid = ? AND status = ? ORDER BY created_at DESC`,
		userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list incoming requests: %w", err)
	}
	return collectRequests(rows)
}

// ListRequestsFrom returns requests made by userID, newest first.
func (s *SQLiteStore) ListRequestsFrom(ctx context.Context, userID string, includeArchived bool) ([]*models.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE from_uid = ?`
	args := []any{userID}
	if !includeArchived {
		query += ` AND status <> ?`
		args = append(args, models.RequestArchived)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list outgoing requests: %w", err)
	}
	return collectRequests(rows)
}

func collectRequests(rows *sql.Rows) ([]*models.Request, error) {
	defer rows.Close()
	var reqs []*models.Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		reqs = append(reqs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate requests: %w", err)
	}
	return reqs, nil
}

func requestChange(r *models.Request, kind realtime.ChangeKind) realtime.Change {
	return realtime.Change{
		Collection: realtime.CollectionRequests,
		DocID:      r.ID,
		Kind:       kind,
		Doc:        r,
		Audience:   []string{r.FromUID, r.ToUID},
	}
}
