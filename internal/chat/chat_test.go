package chat_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/chat"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/storage/sqlite"
	"github.com/mmynk/pointwallet/internal/testutil"
)

type fixture struct {
	env    *testutil.Env
	mgr    *chat.Manager
	as, bs auth.Session
	chatID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	env := testutil.New(t)
	a, as := env.User(t, "alice", 0)
	b, bs := env.User(t, "bob", 0)

	c := &models.Chat{
		ID:           uuid.New().String(),
		Title:        "dinner",
		Participants: []string{a.ID, b.ID},
		Status:       models.ChatActive,
		ReadStatus:   map[string]int64{},
		CreatedBy:    a.ID,
		CreatedAt:    models.Now(),
	}
	require.NoError(t, env.Store.CreateChat(context.Background(), c))
	return &fixture{env: env, mgr: chat.NewManager(env.Store, env.Logger), as: as, bs: bs, chatID: c.ID}
}

func (f *fixture) unread(t *testing.T, s auth.Session) bool {
	t.Helper()
	list, err := f.mgr.List(context.Background(), s, chat.FilterAll)
	require.NoError(t, err)
	require.Len(t, list, 1)
	return list[0].Unread
}

// tick keeps consecutive writes on distinct millisecond timestamps.
func tick() { time.Sleep(2 * time.Millisecond) }

func TestUnreadFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.False(t, f.unread(t, f.bs), "no messages yet")

	_, err := f.mgr.SendMessage(ctx, f.as, f.chatID, "pizza was 30.00 P")
	require.NoError(t, err)
	assert.False(t, f.unread(t, f.as), "sender is caught up")
	assert.True(t, f.unread(t, f.bs), "bob never opened the chat")

	n, err := f.mgr.UnreadCount(ctx, f.bs)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tick()
	require.NoError(t, f.mgr.MarkRead(ctx, f.bs, f.chatID))
	assert.False(t, f.unread(t, f.bs))

	tick()
	_, err = f.mgr.SendMessage(ctx, f.as, f.chatID, "please pay")
	require.NoError(t, err)
	assert.True(t, f.unread(t, f.bs), "new message after bob read")

	tick()
	_, err = f.mgr.SendMessage(ctx, f.bs, f.chatID, "on it")
	require.NoError(t, err)
	assert.False(t, f.unread(t, f.bs), "replying marks the chat read")
	assert.True(t, f.unread(t, f.as))

	msgs, err := f.mgr.Messages(ctx, f.as, f.chatID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "pizza was 30.00 P", msgs[0].Text)
	assert.Equal(t, "on it", msgs[2].Text)

	msgs, err = f.mgr.Messages(ctx, f.as, f.chatID, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "please pay", msgs[0].Text)
}

func TestMembership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, outsider := f.env.User(t, "mallory", 0)

	_, err := f.mgr.SendMessage(ctx, outsider, f.chatID, "hi")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, f.mgr.MarkRead(ctx, outsider, f.chatID), apperrors.ErrPermissionDenied)
	_, err = f.mgr.Messages(ctx, outsider, f.chatID, 10)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	_, err = f.mgr.SendMessage(ctx, f.as, "missing", "hi")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSendMessageValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, text := range []string{"", "   ", strings.Repeat("a", chat.MaxMessageLength+1)} {
		_, err := f.mgr.SendMessage(ctx, f.as, f.chatID, text)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.mgr.Complete(ctx, f.bs, f.chatID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	changed, err := f.mgr.Complete(ctx, f.as, f.chatID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.mgr.Complete(ctx, f.as, f.chatID)
	require.NoError(t, err)
	assert.False(t, changed, "completed is terminal")

	active, err := f.mgr.List(ctx, f.as, chat.FilterActive)
	require.NoError(t, err)
	assert.Empty(t, active)
	completed, err := f.mgr.List(ctx, f.as, chat.FilterCompleted)
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	_, err = f.mgr.List(ctx, f.as, "archived")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// stalledStore never answers chat reads before the deadline.
type stalledStore struct {
	*sqlite.SQLiteStore
}

func (s stalledStore) GetChat(ctx context.Context, _ string) (*models.Chat, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStoreTimeout(t *testing.T) {
	f := newFixture(t)
	mgr := chat.NewManager(stalledStore{f.env.Store}, f.env.Logger, chat.WithTimeout(50*time.Millisecond))

	_, err := mgr.SendMessage(context.Background(), f.as, f.chatID, "hello")
	require.ErrorIs(t, err, apperrors.ErrNetworkTimeout)
	assert.True(t, apperrors.Retryable(err))

	assert.ErrorIs(t, mgr.MarkRead(context.Background(), f.bs, f.chatID), apperrors.ErrNetworkTimeout)
}
