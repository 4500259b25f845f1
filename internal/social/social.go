// Package social manages friend lists. Friends are added by student ID and
// stored per user, so a friendship is not required to be mutual.
package social

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/storage"
)

// DefaultSuggestLimit is used when Suggest is called without a limit.
const DefaultSuggestLimit = 10

// Manager implements the friend operations.
type Manager struct {
	users  storage.UserStore
	graph  Graph
	logger *slog.Logger

	// mirrorMu is held shared by friend edits and exclusively by Backfill,
	// so an edge removed mid-copy is not written back.
	mirrorMu sync.RWMutex
	// synced is set once the graph holds every stored edge. Until then
	// suggestions come from the store.
	synced atomic.Bool
}

// NewManager creates a social manager. A nil graph answers suggestions from
// the document store. A non-nil graph serves suggestions after Backfill.
func NewManager(users storage.UserStore, graph Graph, logger *slog.Logger) *Manager {
	m := &Manager{users: users, graph: graph, logger: logger}
	if graph == nil {
		m.graph = NewStoreGraph(users)
		m.synced.Store(true)
	}
	if logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// Backfill copies every stored friend edge into the graph and then switches
// suggestions over to it. Friend edits wait while it runs.
func (m *Manager) Backfill(ctx context.Context) error {
	const op = "social.Backfill"
	if m.synced.Load() {
		return nil
	}
	m.mirrorMu.Lock()
	defer m.mirrorMu.Unlock()

	edges, err := m.users.ListFriendships(ctx)
	if err != nil {
		return storage.Wrap(op, err)
	}
	for _, e := range edges {
		if err := m.graph.Link(ctx, e.UserID, e.FriendID); err != nil {
			return apperrors.Wrap(op, err)
		}
	}
	m.synced.Store(true)
	m.logger.Info("friend graph backfilled", "edges", len(edges))
	return nil
}

// Lookup finds a user by student ID.
func (m *Manager) Lookup(ctx context.Context, studentID string) (*models.User, error) {
	const op = "social.Lookup"
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, apperrors.Validation(op, "student ID is required")
	}
	u, err := m.users.GetUserByStudentID(ctx, studentID)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	return u, nil
}

// AddFriend appends the user with studentID to the session user's friends.
func (m *Manager) AddFriend(ctx context.Context, s auth.Session, studentID string) (*models.User, error) {
	const op = "social.AddFriend"
	friend, err := m.Lookup(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if friend.ID == s.UserID {
		return nil, apperrors.Validation(op, "cannot add yourself")
	}

	m.mirrorMu.RLock()
	defer m.mirrorMu.RUnlock()
	if err := m.users.AddFriend(ctx, s.UserID, friend.ID); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, apperrors.AlreadyHandled(op, "already friends with %s", friend.StudentID)
		}
		return nil, storage.Wrap(op, err)
	}
	if err := m.graph.Link(ctx, s.UserID, friend.ID); err != nil {
		m.logger.Warn("failed to mirror friend edge", "user_id", s.UserID, "friend_id", friend.ID, "error", err)
	}
	return friend, nil
}

// RemoveFriend drops friendID from the session user's friends.
func (m *Manager) RemoveFriend(ctx context.Context, s auth.Session, friendID string) error {
	const op = "social.RemoveFriend"
	m.mirrorMu.RLock()
	defer m.mirrorMu.RUnlock()
	if err := m.users.RemoveFriend(ctx, s.UserID, friendID); err != nil {
		return storage.Wrap(op, err)
	}
	if err := m.graph.Unlink(ctx, s.UserID, friendID); err != nil {
		m.logger.Warn("failed to remove mirrored friend edge", "user_id", s.UserID, "friend_id", friendID, "error", err)
	}
	return nil
}

// ListFriends returns the session user's friends in the order they were added.
func (m *Manager) ListFriends(ctx context.Context, s auth.Session) ([]*models.User, error) {
	friends, err := m.users.ListFriends(ctx, s.UserID)
	if err != nil {
		return nil, storage.Wrap("social.ListFriends", err)
	}
	return friends, nil
}

// Suggest returns friends of friends the session user has not added yet,
// most mutual friends first. A failing or not yet backfilled graph falls
// back to the store.
func (m *Manager) Suggest(ctx context.Context, s auth.Session, limit int) ([]*models.User, error) {
	const op = "social.Suggest"
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	if !m.synced.Load() {
		return m.suggestFromStore(ctx, op, s.UserID, limit)
	}
	ids, err := m.graph.Suggest(ctx, s.UserID, limit)
	if err != nil {
		m.logger.Warn("graph suggestions failed, using store", "user_id", s.UserID, "error", err)
		return m.suggestFromStore(ctx, op, s.UserID, limit)
	}

	found, err := m.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := found[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *Manager) suggestFromStore(ctx context.Context, op, userID string, limit int) ([]*models.User, error) {
	users, err := m.users.SuggestFriends(ctx, userID, limit)
	if err != nil {
		return nil, storage.Wrap(op, err)
	}
	return users, nil
}

// Close releases the graph connection.
func (m *Manager) Close(ctx context.Context) error {
	return m.graph.Close(ctx)
}
