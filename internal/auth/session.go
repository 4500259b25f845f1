package auth

import (
	"context"

	"github.com/mmynk/pointwallet/internal/models"
)

// Session identifies the acting user. Managers receive it explicitly on every
// call; there is no ambient current user.
type Session struct {
	UserID        string
	StudentID     string
	Name          string
	Role          string
	WalletAddress string
}

// SessionFor builds the session of user.
func SessionFor(user *models.User) Session {
	return Session{
		UserID:        user.ID,
		StudentID:     user.StudentID,
		Name:          user.Name,
		Role:          user.Role,
		WalletAddress: user.WalletAddress,
	}
}

// IsAdmin reports whether the session holds the admin role.
func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

type sessionKey struct{}

// WithSession stores s in ctx. Only the RPC boundary does this; it then hands
// the session to managers as an argument.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored by WithSession.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
