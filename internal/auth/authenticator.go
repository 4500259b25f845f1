package auth

import (
	"context"

	"github.com/mmynk/pointwallet/internal/models"
)

// Registration holds the profile submitted at sign-up.
type Registration struct {
	StudentID  string
	Name       string
	Department string
	Password   string
}

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping the password flow for campus SSO or
// another identity provider without changing the service layer code.
type Authenticator interface {
	// Register creates a new account and its custodial wallet.
	Register(ctx context.Context, reg Registration) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, studentID, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
