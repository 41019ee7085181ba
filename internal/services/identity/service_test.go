package identity

import (
	"crypto/ecdh"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptochat/internal/crypto"
	"cryptochat/internal/store"
)

const strongPass = "Correct-Horse-9"

func TestGenerateKeyPair(t *testing.T) {
	svc := New(ecdh.P521())

	kp, fp, err := svc.GenerateKeyPair()
	require.NoError(t, err)
	require.NotNil(t, kp.Private)
	assert.Equal(t, ecdh.P521(), kp.Public.Curve())
	assert.Equal(t, crypto.Fingerprint(kp.Public.Bytes()), fp)
	assert.Len(t, string(fp), 20)

	kp2, fp2, err := svc.GenerateKeyPair()
	require.NoError(t, err)
	assert.False(t, kp.Public.Equal(kp2.Public))
	assert.NotEqual(t, fp, fp2)
}

func TestSigningIdentity_RoundTrip(t *testing.T) {
	svc := New(ecdh.X25519(), WithSigningKeyStore(store.NewSigningKeyFileStore(t.TempDir())))

	key, fp, err := svc.GenerateSigningIdentity(strongPass)
	require.NoError(t, err)

	loaded, err := svc.LoadSigningIdentity(strongPass)
	require.NoError(t, err)
	assert.Equal(t, key.Public, loaded.Public)

	got, err := svc.FingerprintSigningIdentity(strongPass)
	require.NoError(t, err)
	assert.Equal(t, fp, got)
}

func TestSigningIdentity_WeakPassphrase(t *testing.T) {
	svc := New(ecdh.X25519(), WithSigningKeyStore(store.NewSigningKeyFileStore(t.TempDir())))
	_, _, err := svc.GenerateSigningIdentity("short")
	assert.ErrorIs(t, err, ErrWeakPassphrase)
}

func TestSigningIdentity_NoStore(t *testing.T) {
	svc := New(ecdh.X25519())
	_, _, err := svc.GenerateSigningIdentity(strongPass)
	assert.Error(t, err)
	_, err = svc.LoadSigningIdentity(strongPass)
	assert.Error(t, err)
}

func TestIsSecurePassphrase(t *testing.T) {
	cases := map[string]bool{
		"":                 false,
		"Ab1!":             false,
		"alllowercase12!":  false,
		"ALLUPPERCASE12!":  false,
		"NoDigitsHere!!":   false,
		"NoSymbols123abc":  false,
		strongPass:         true,
		"Tr0ub4dor&3xyzzy": true,
	}
	for pass, want := range cases {
		assert.Equal(t, want, isSecurePassphrase(pass), "passphrase %q", pass)
	}
}
