package models

// Roles.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a registered student account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// StudentID is the campus student number, unique across users.
	// Friends are looked up by it.
	StudentID string `json:"studentId"`

	// Name is the display name.
	Name string `json:"name"`

	Department string `json:"department"`

	// WalletAddress is the public address of the custodial wallet.
	WalletAddress string `json:"walletAddress"`

	// PasswordHash is the bcrypt hash of the login password.
	PasswordHash string `json:"-"`

	// Role is RoleStudent or RoleAdmin.
	Role string `json:"role"`

	// Friends are user IDs in insertion order, without duplicates.
	// Only populated by calls that load the friend list.
	Friends []string `json:"friends,omitempty"`

	CreatedAt int64 `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
