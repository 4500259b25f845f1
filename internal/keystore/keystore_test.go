package keystore

import (
	"context"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pointwallet/internal/storage"
)

type mapSecrets map[string]*storage.SealedSecret

func (m mapSecrets) GetWalletSecret(_ context.Context, userID string) (*storage.SealedSecret, error) {
	s, ok := m[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return s, nil
}

func TestVault(t *testing.T) {
	secrets := mapSecrets{}
	vault, err := NewVault("master-secret-for-tests", secrets)
	require.NoError(t, err)

	priv, sealed, err := vault.Generate("user-1")
	require.NoError(t, err)
	secrets["user-1"] = sealed

	t.Run("ciphertext does not contain the key", func(t *testing.T) {
		assert.NotContains(t, string(sealed.Ciphertext), string(priv.Bytes()))
	})

	t.Run("open returns the same key", func(t *testing.T) {
		opened, err := vault.Open(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, priv.Address(), opened.Address())
	})

	t.Run("seal is bound to the user", func(t *testing.T) {
		_, err := vault.Unseal("user-2", sealed)
		assert.ErrorIs(t, err, ErrSealBroken)
	})

	t.Run("wrong master secret cannot open", func(t *testing.T) {
		other, err := NewVault("another-master-secret", secrets)
		require.NoError(t, err)
		_, err = other.Open(context.Background(), "user-1")
		assert.ErrorIs(t, err, ErrSealBroken)
	})

	t.Run("missing secret surfaces the store error", func(t *testing.T) {
		_, err := vault.Open(context.Background(), "nobody")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("empty master key is rejected", func(t *testing.T) {
		_, err := NewVault("", secrets)
		assert.Error(t, err)
	})
}

func TestHexRoundTrip(t *testing.T) {
	priv, err := keys.NewPrivateKey()
	require.NoError(t, err)

	back, err := ParseHex(EncodeHex(priv))
	require.NoError(t, err)
	assert.Equal(t, priv.Address(), back.Address())

	_, err = ParseHex("zz")
	assert.Error(t, err)
	_, err = ParseHex("abcd")
	assert.Error(t, err)
}
