package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
)

func TestSignVerify(t *testing.T) {
	k, err := crypto.GenerateSigningKey()
	require.NoError(t, err)

	msg := []byte("signed and sealed")
	sig, err := crypto.Sign(k, msg)
	require.NoError(t, err)

	ok, err := crypto.Verify(k.Public, msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = crypto.Verify(k.Public, []byte("signed and sealeD"), sig)
	require.NoError(t, err)
	assert.False(t, ok, "modified message verified")

	other, err := crypto.GenerateSigningKey()
	require.NoError(t, err)
	ok, err = crypto.Verify(other.Public, msg, sig)
	require.NoError(t, err)
	assert.False(t, ok, "foreign key verified")
}

func TestSignVerify_InvalidKeys(t *testing.T) {
	_, err := crypto.Sign(domain.SigningKey{Private: []byte{1, 2, 3}}, []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidKey)

	_, err = crypto.Verify([]byte{1, 2, 3}, []byte("x"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}
