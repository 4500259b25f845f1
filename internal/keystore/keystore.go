// Package keystore is the custody boundary for wallet private keys.
//
// Keys are sealed with AES-GCM under a key derived (argon2id) from the server
// master secret and a per-user salt, and stored in their own table. Nothing
// outside this package and the relay ever handles raw key material.
package keystore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"golang.org/x/crypto/argon2"

	"github.com/mmynk/pointwallet/internal/storage"
)

// ErrSealBroken is returned when a sealed key cannot be opened, e.g. after
// the master secret changed.
var ErrSealBroken = errors.New("sealed wallet key cannot be opened")

// SecretStore loads sealed keys.
type SecretStore interface {
	GetWalletSecret(ctx context.Context, userID string) (*storage.SealedSecret, error)
}

// Vault seals and opens custodial wallet keys.
type Vault struct {
	master  []byte
	secrets SecretStore
}

// NewVault creates a Vault. masterKey must not be empty.
func NewVault(masterKey string, secrets SecretStore) (*Vault, error) {
	if masterKey == "" {
		return nil, errors.New("vault master key is required")
	}
	return &Vault{master: []byte(masterKey), secrets: secrets}, nil
}

func deriveKey(master, salt []byte) []byte {
	return argon2.IDKey(master, salt, 1, 64*1024, 4, 32)
}

// Generate creates a new wallet key for userID and returns it with its seal.
func (v *Vault) Generate(userID string) (*keys.PrivateKey, *storage.SealedSecret, error) {
	priv, err := keys.NewPrivateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate wallet key: %w", err)
	}
	sealed, err := v.Seal(userID, priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, sealed, nil
}

// Seal encrypts priv for userID. The user ID is bound as associated data so a
// seal cannot be moved to another account.
func (v *Vault) Seal(userID string, priv *keys.PrivateKey) (*storage.SealedSecret, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce := make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	gcm, err := newGCM(deriveKey(v.master, salt))
	if err != nil {
		return nil, err
	}
	return &storage.SealedSecret{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, priv.Bytes(), []byte(userID)),
	}, nil
}

// Open loads and decrypts the wallet key of userID.
func (v *Vault) Open(ctx context.Context, userID string) (*keys.PrivateKey, error) {
	sealed, err := v.secrets.GetWalletSecret(ctx, userID)
	if err != nil {
		return nil, err
	}
	return v.Unseal(userID, sealed)
}

// Unseal decrypts a sealed key of userID.
func (v *Vault) Unseal(userID string, sealed *storage.SealedSecret) (*keys.PrivateKey, error) {
	gcm, err := newGCM(deriveKey(v.master, sealed.Salt))
	if err != nil {
		return nil, err
	}
	raw, err := gcm.Open(nil, sealed.Nonce, sealed.Ciphertext, []byte(userID))
	if err != nil {
		return nil, ErrSealBroken
	}
	priv, err := keys.NewPrivateKeyFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSealBroken, err)
	}
	return priv, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcm: %w", err)
	}
	return gcm, nil
}

// EncodeHex renders a key for configuration files and environment variables.
func EncodeHex(priv *keys.PrivateKey) string {
	return hex.EncodeToString(priv.Bytes())
}

// ParseHex decodes a key produced by EncodeHex.
func ParseHex(s string) (*keys.PrivateKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid key encoding: %w", err)
	}
	priv, err := keys.NewPrivateKeyFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	return priv, nil
}
