package crypto_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
)

func randomKey(t *testing.T) domain.SessionKey {
	t.Helper()
	var k domain.SessionKey
	_, err := rand.Read(k[:])
	require.NoError(t, err)
	return k
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := randomKey(t)
	for _, pt := range [][]byte{
		nil,
		[]byte(""),
		[]byte("hello"),
		bytes.Repeat([]byte{0xAB}, 4096),
	} {
		sealed, err := crypto.Seal(pt, key)
		require.NoError(t, err)
		assert.Len(t, sealed, len(pt)+crypto.Overhead)

		got, err := crypto.Open(sealed, key)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(pt, got), "round trip mismatch for %d bytes", len(pt))
	}
}

func TestSeal_FreshNonce(t *testing.T) {
	key := randomKey(t)
	a, err := crypto.Seal([]byte("same"), key)
	require.NoError(t, err)
	b, err := crypto.Seal([]byte("same"), key)
	require.NoError(t, err)
	assert.NotEqual(t, a[:12], b[:12], "nonce reused")
	assert.NotEqual(t, a, b)
}

func TestOpen_DetectsTampering(t *testing.T) {
	key := randomKey(t)
	sealed, err := crypto.Seal([]byte("attack at dawn"), key)
	require.NoError(t, err)

	for i := range sealed {
		for _, bit := range []byte{0x01, 0x80} {
			tampered := append([]byte(nil), sealed...)
			tampered[i] ^= bit
			_, err := crypto.Open(tampered, key)
			assert.ErrorIs(t, err, domain.ErrAuthentication, "flip at byte %d bit %#x accepted", i, bit)
		}
	}
}

func TestOpen_Truncated(t *testing.T) {
	key := randomKey(t)
	sealed, err := crypto.Seal([]byte("truncate me"), key)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 12, crypto.Overhead - 1, len(sealed) - 1} {
		_, err := crypto.Open(sealed[:n], key)
		assert.ErrorIs(t, err, domain.ErrAuthentication, "accepted %d-byte prefix", n)
	}
}

func TestOpen_WrongKey(t *testing.T) {
	k1, k2 := randomKey(t), randomKey(t)
	require.NotEqual(t, k1, k2)

	sealed, err := crypto.Seal([]byte("for k1 only"), k1)
	require.NoError(t, err)
	_, err = crypto.Open(sealed, k2)
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}
