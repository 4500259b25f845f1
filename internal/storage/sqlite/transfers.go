package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/pointwallet/internal/models"
)

const transferColumns = `id, purpose, signature, from_address, to_address, amount, status, error, created_at`

func scanTransfer(row interface{ Scan(...any) error }) (*models.Transfer, error) {
	t := &models.Transfer{}
	err := row.Scan(&t.ID, &t.Purpose, &t.Signature, &t.FromAddress, &t.ToAddress,
		&t.Amount, &t.Status, &t.Error, &t.CreatedAt)
	return t, err
}

// PutTransfer inserts a transfer or replaces the one with the same purpose.
func (s *SQLiteStore) PutTransfer(ctx context.Context, t *models.Transfer) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transfers (`+transferColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(purpose) DO UPDATE SET
		     signature = excluded.signature,
		     from_address = excluded.from_address,
		     to_address = excluded.to_address,
		     amount = excluded.amount,
		     status = excluded.status,
		     error = excluded.error`,
		t.ID, t.Purpose, t.Signature, t.FromAddress, t.ToAddress, t.Amount, t.Status, t.Error, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put transfer: %w", err)
	}
	return nil
}

// GetTransferByPurpose retrieves the transfer logged for purpose.
func (s *SQLiteStore) GetTransferByPurpose(ctx context.Context, purpose string) (*models.Transfer, error) {
	t, err := scanTransfer(s.db.QueryRowContext(ctx,
		`SELECT `+transferColumns+` FROM transfers WHERE purpose = ?`, purpose))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("transfer", purpose)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return t, nil
}

// ListTransfersByAddress returns transfers touching address, newest first.
func (s *SQLiteStore) ListTransfersByAddress(ctx context.Context, address string, limit int) ([]*models.Transfer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+transferColumns+` FROM transfers
		 WHERE from_address = ? OR to_address = ?
		 ORDER BY created_at DESC LIMIT ?`, address, address, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return collectTransfers(rows)
}

// ListRecentTransfers returns the newest transfers across all users.
func (s *SQLiteStore) ListRecentTransfers(ctx context.Context, limit int) ([]*models.Transfer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+transferColumns+` FROM transfers ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return collectTransfers(rows)
}

func collectTransfers(rows *sql.Rows) ([]*models.Transfer, error) {
	defer rows.Close()
	var transfers []*models.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfers: %w", err)
	}
	return transfers, nil
}

// RecordPurchase stores a purchase and credits the treasury fiat balance.
func (s *SQLiteStore) RecordPurchase(ctx context.Context, p *models.Purchase) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO purchases (id, user_id, points, currency, fiat_amount, signature, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.UserID, p.Points, p.Currency, p.FiatAmount, p.Signature, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert purchase: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO treasury_balances (currency, amount) VALUES (?, ?)
			 ON CONFLICT(currency) DO UPDATE SET amount = amount + excluded.amount`,
			p.Currency, p.FiatAmount)
		if err != nil {
			return fmt.Errorf("failed to update treasury balance: %w", err)
		}
		return nil
	})
}

// TreasuryBalances returns the fiat totals per currency.
func (s *SQLiteStore) TreasuryBalances(ctx context.Context) ([]models.TreasuryBalance, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT currency, amount FROM treasury_balances ORDER BY currency`)
	if err != nil {
		return nil, fmt.Errorf("failed to list treasury balances: %w", err)
	}
	defer rows.Close()

	var balances []models.TreasuryBalance
	for rows.Next() {
		var b models.TreasuryBalance
		if err := rows.Scan(&b.Currency, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan treasury balance: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate treasury balances: %w", err)
	}
	return balances, nil
}

// ListPurchases returns the user's purchases, newest first.
func (s *SQLiteStore) ListPurchases(ctx context.Context, userID string) ([]*models.Purchase, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, points, currency, fiat_amount, signature, created_at
		 FROM purchases WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*models.Purchase
	for rows.Next() {
		p := &models.Purchase{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Points, &p.Currency, &p.FiatAmount, &p.Signature, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}
	return purchases, nil
}
