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

const userColumns = `id, student_id, name, department, wallet_address, password_hash, role, created_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.StudentID,
		&user.Name,
		&user.Department,
		&user.WalletAddress,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	return user, err
}

// CreateUser inserts a new user and its sealed wallet key.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User, secret *storage.SealedSecret) error {
	return s.writeTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			user.ID, user.StudentID, user.Name, user.Department,
			user.WalletAddress, user.PasswordHash, user.Role, user.CreatedAt,
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("student id %s already registered: %w", user.StudentID, storage.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		if secret == nil {
			return nil
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO wallet_secrets (user_id, salt, nonce, ciphertext) VALUES (?, ?, ?, ?)`,
			user.ID, secret.Salt, secret.Nonce, secret.Ciphertext,
		)
		if err != nil {
			return fmt.Errorf("failed to store wallet secret: %w", err)
		}
		return nil
	}, func() {
		s.hub.Publish(realtime.Change{
			Collection: realtime.CollectionUsers,
			DocID:      user.ID,
			Kind:       realtime.Added,
			Doc:        user,
			Audience:   []string{user.ID},
		})
	})
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserByStudentID retrieves a user by their student number.
func (s *SQLiteStore) GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE student_id = ?`, studentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("student", studentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by student ID: %w", err)
	}
	return user, nil
}

// GetUsersByIDs retrieves multiple users by their IDs.
// Users that don't exist are omitted from the result.
func (s *SQLiteStore) GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error) {
	users := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id IN (`+placeholders(len(ids))+`)`,
		toArgs(ids)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// GetWalletSecret returns the sealed key of a user.
func (s *SQLiteStore) GetWalletSecret(ctx context.Context, userID string) (*storage.SealedSecret, error) {
	secret := &storage.SealedSecret{}
	err := s.db.QueryRowContext(ctx,
		`SELECT salt, nonce, ciphertext FROM wallet_secrets WHERE user_id = ?`, userID,
	).Scan(&secret.Salt, &secret.Nonce, &secret.Ciphertext)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("wallet secret", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet secret: %w", err)
	}
	return secret, nil
}

// AddFriend appends friendID to the user's friend list.
func (s *SQLiteStore) AddFriend(ctx context.Context, userID, friendID string) error {
	return s.writeTx(ctx, func(tx *sql.Tx) error {
		var next int
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), -1) + 1 FROM friends WHERE user_id = ?`, userID,
		).Scan(&next); err != nil {
			return fmt.Errorf("failed to read friend position: %w", err)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO friends (user_id, friend_id, position) VALUES (?, ?, ?)`,
			userID, friendID, next,
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("friend %s already added: %w", friendID, storage.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("failed to add friend: %w", err)
		}
		return nil
	}, func() { s.publishFriends(userID) })
}

// RemoveFriend deletes friendID from the user's friend list.
func (s *SQLiteStore) RemoveFriend(ctx context.Context, userID, friendID string) error {
	return s.writeTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM friends WHERE user_id = ? AND friend_id = ?`, userID, friendID)
		if err != nil {
			return fmt.Errorf("failed to remove friend: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return notFound("friend", friendID)
		}
		return nil
	}, func() { s.publishFriends(userID) })
}

func (s *SQLiteStore) publishFriends(userID string) {
	s.hub.Publish(realtime.Change{
		Collection: realtime.CollectionUsers,
		DocID:      userID,
		Kind:       realtime.Modified,
		Audience:   []string{userID},
	})
}

// ListFriends returns the user's friends in insertion order.
func (s *SQLiteStore) ListFriends(ctx context.Context, userID string) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.student_id, u.name, u.department, u.wallet_address, u.password_hash, u.role, u.created_at
		FROM friends f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = ?
		ORDER BY f.position`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return collectUsers(rows)
}

// SuggestFriends returns friends of friends ranked by mutual friend count.
func (s *SQLiteStore) SuggestFriends(ctx context.Context, userID string, limit int) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.student_id, u.name, u.department, u.wallet_address, u.password_hash, u.role, u.created_at
		FROM friends mine
		JOIN friends theirs ON theirs.user_id = mine.friend_id
		JOIN users u ON u.id = theirs.friend_id
		WHERE mine.user_id = ?
		  AND theirs.friend_id <> ?
		  AND theirs.friend_id NOT IN (SELECT friend_id FROM friends WHERE user_id = ?)
		GROUP BY u.id
		ORDER BY COUNT(*) DESC, u.name
		LIMIT ?`, userID, userID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest friends: %w", err)
	}
	return collectUsers(rows)
}

// ListFriendships returns every friend edge.
func (s *SQLiteStore) ListFriendships(ctx context.Context) ([]storage.Friendship, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, friend_id FROM friends ORDER BY user_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	defer rows.Close()

	var edges []storage.Friendship
	for rows.Next() {
		var f storage.Friendship
		if err := rows.Scan(&f.UserID, &f.FriendID); err != nil {
			return nil, fmt.Errorf("failed to scan friendship: %w", err)
		}
		edges = append(edges, f)
	}
	return edges, rows.Err()
}

func collectUsers(rows *sql.Rows) ([]*models.User, error) {
	defer rows.Close()
	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
