package social_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/social"
	"github.com/mmynk/pointwallet/internal/testutil"
)

// memoryRunner records Cypher statements and replays canned read results.
type memoryRunner struct {
	mu      sync.Mutex
	writes  []map[string]any
	reads   [][]social.Record
	err     error
	readErr error
}

func (r *memoryRunner) ExecuteWrite(_ context.Context, _ string, params map[string]any) ([]social.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.writes = append(r.writes, params)
	return nil, nil
}

func (r *memoryRunner) ExecuteRead(context.Context, string, map[string]any) ([]social.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.readErr != nil {
		return nil, r.readErr
	}
	if len(r.reads) == 0 {
		return nil, nil
	}
	res := r.reads[0]
	r.reads = r.reads[1:]
	return res, nil
}

func (r *memoryRunner) Close(context.Context) error { return nil }

func ids(users []*models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestFriends(t *testing.T) {
	ctx := context.Background()
	env := testutil.New(t)
	mgr := social.NewManager(env.Store, nil, env.Logger)

	_, as := env.User(t, "alice", 0)
	bob, _ := env.User(t, "bob", 0)
	carol, _ := env.User(t, "carol", 0)

	added, err := mgr.AddFriend(ctx, as, bob.StudentID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, added.ID)
	_, err = mgr.AddFriend(ctx, as, carol.StudentID)
	require.NoError(t, err)

	friends, err := mgr.ListFriends(ctx, as)
	require.NoError(t, err)
	assert.Equal(t, []string{bob.ID, carol.ID}, ids(friends), "insertion order is kept")

	t.Run("duplicate", func(t *testing.T) {
		_, err := mgr.AddFriend(ctx, as, bob.StudentID)
		assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
	})

	t.Run("self", func(t *testing.T) {
		_, err := mgr.AddFriend(ctx, as, as.StudentID)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := mgr.AddFriend(ctx, as, "nobody")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, mgr.RemoveFriend(ctx, as, bob.ID))
		friends, err := mgr.ListFriends(ctx, as)
		require.NoError(t, err)
		assert.Equal(t, []string{carol.ID}, ids(friends))

		assert.ErrorIs(t, mgr.RemoveFriend(ctx, as, bob.ID), apperrors.ErrNotFound)
	})
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()
	env := testutil.New(t)

	_, as := env.User(t, "alice", 0)
	bob, bs := env.User(t, "bob", 0)
	carol, cs := env.User(t, "carol", 0)
	dave, _ := env.User(t, "dave", 0)
	erin, _ := env.User(t, "erin", 0)

	store := social.NewManager(env.Store, nil, env.Logger)
	_, err := store.AddFriend(ctx, as, bob.StudentID)
	require.NoError(t, err)
	_, err = store.AddFriend(ctx, as, carol.StudentID)
	require.NoError(t, err)
	_, err = store.AddFriend(ctx, bs, dave.StudentID)
	require.NoError(t, err)
	_, err = store.AddFriend(ctx, cs, dave.StudentID)
	require.NoError(t, err)
	_, err = store.AddFriend(ctx, cs, erin.StudentID)
	require.NoError(t, err)

	t.Run("store ranks by mutual friends", func(t *testing.T) {
		got, err := store.Suggest(ctx, as, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{dave.ID, erin.ID}, ids(got))
	})

	t.Run("cypher graph", func(t *testing.T) {
		runner := &memoryRunner{reads: [][]social.Record{{{"id": erin.ID, "mutual": int64(1)}}}}
		mgr := social.NewManager(env.Store, social.NewCypherGraph(runner), env.Logger)

		got, err := mgr.Suggest(ctx, as, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{dave.ID, erin.ID}, ids(got), "store answers until the graph is backfilled")
		assert.Len(t, runner.reads, 1)

		require.NoError(t, mgr.Backfill(ctx))
		assert.ElementsMatch(t, []map[string]any{
			{"user": as.UserID, "friend": bob.ID},
			{"user": as.UserID, "friend": carol.ID},
			{"user": bob.ID, "friend": dave.ID},
			{"user": carol.ID, "friend": dave.ID},
			{"user": carol.ID, "friend": erin.ID},
		}, runner.writes)

		_, err = mgr.AddFriend(ctx, bs, erin.StudentID)
		require.NoError(t, err)
		require.Len(t, runner.writes, 6)
		assert.Equal(t, map[string]any{"user": bob.ID, "friend": erin.ID}, runner.writes[5])

		got, err = mgr.Suggest(ctx, as, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{erin.ID}, ids(got))
	})

	t.Run("failed backfill keeps the store", func(t *testing.T) {
		runner := &memoryRunner{err: errors.New("connection refused")}
		mgr := social.NewManager(env.Store, social.NewCypherGraph(runner), env.Logger)

		assert.Error(t, mgr.Backfill(ctx))
		got, err := mgr.Suggest(ctx, as, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{dave.ID, erin.ID}, ids(got))
	})

	t.Run("failing graph falls back to the store", func(t *testing.T) {
		runner := &memoryRunner{readErr: errors.New("connection refused")}
		mgr := social.NewManager(env.Store, social.NewCypherGraph(runner), env.Logger)
		require.NoError(t, mgr.Backfill(ctx))

		got, err := mgr.Suggest(ctx, as, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{dave.ID, erin.ID}, ids(got))
	})
}
