package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid student ID or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrStudentIDExists    = errors.New("student ID already registered")
	ErrMissingProfile     = errors.New("student ID and name are required")
)

// UserStorage defines the user persistence the authenticator needs.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User, secret *storage.SealedSecret) error
	GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// WalletIssuer creates a sealed custodial key for a new user.
type WalletIssuer interface {
	Generate(userID string) (*keys.PrivateKey, *storage.SealedSecret, error)
}

// AccountOpener opens the token account of a new wallet.
type AccountOpener interface {
	CreateOrGetAccount(ctx context.Context, owner, asset string) (string, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage  UserStorage
	wallets  WalletIssuer
	accounts AccountOpener
	asset    string
	isAdmin  func(studentID string) bool
}

// NewPasswordAuthenticator creates a new password-based authenticator.
// isAdmin decides which student IDs receive the admin role; nil means none.
func NewPasswordAuthenticator(storage UserStorage, wallets WalletIssuer, accounts AccountOpener, asset string, isAdmin func(string) bool) *PasswordAuthenticator {
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	return &PasswordAuthenticator{
		storage:  storage,
		wallets:  wallets,
		accounts: accounts,
		asset:    asset,
		isAdmin:  isAdmin,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates the user, seals a fresh wallet key and opens its token
// account on the ledger.
func (a *PasswordAuthenticator) Register(ctx context.Context, reg Registration) (*models.User, error) {
	reg.StudentID = strings.TrimSpace(reg.StudentID)
	reg.Name = strings.TrimSpace(reg.Name)
	if reg.StudentID == "" || reg.Name == "" {
		return nil, ErrMissingProfile
	}
	if err := a.ValidateCredential(reg.Password); err != nil {
		return nil, err
	}

	if _, err := a.storage.GetUserByStudentID(ctx, reg.StudentID); err == nil {
		return nil, ErrStudentIDExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check student ID: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		StudentID:    reg.StudentID,
		Name:         reg.Name,
		Department:   strings.TrimSpace(reg.Department),
		PasswordHash: string(hashedPassword),
		Role:         models.RoleStudent,
		CreatedAt:    models.Now(),
	}
	if a.isAdmin(user.StudentID) {
		user.Role = models.RoleAdmin
	}

	priv, sealed, err := a.wallets.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	user.WalletAddress = priv.Address()

	// Open the account first so a ledger outage leaves no half-registered user.
	if _, err := a.accounts.CreateOrGetAccount(ctx, user.WalletAddress, a.asset); err != nil {
		return nil, fmt.Errorf("failed to open token account: %w", err)
	}

	if err := a.storage.CreateUser(ctx, user, sealed); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrStudentIDExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID, "student_id", user.StudentID, "role", user.Role)
	return user, nil
}

// Authenticate verifies the student ID and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, studentID, credential string) (*models.User, error) {
	user, err := a.storage.GetUserByStudentID(ctx, strings.TrimSpace(studentID))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
