package directory_test

import (
	"crypto/ecdh"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptochat/internal/crypto"
	"cryptochat/internal/directory"
	"cryptochat/internal/domain"
)

func newKey(t *testing.T) *ecdh.PublicKey {
	t.Helper()
	kp, err := crypto.GenerateKeyPair(ecdh.X25519())
	require.NoError(t, err)
	return kp.Public
}

func TestDirectory_LookupMiss(t *testing.T) {
	d := directory.New()

	pub, err := d.Lookup("nobody")
	assert.Nil(t, pub)
	assert.ErrorIs(t, err, domain.ErrUnknownIdentity)
}

func TestDirectory_RegisterLookup(t *testing.T) {
	d := directory.New()
	k := newKey(t)

	d.Register("alice", k)
	got, err := d.Lookup("alice")
	require.NoError(t, err)
	assert.True(t, k.Equal(got))
	assert.Equal(t, 1, d.Len())
}

func TestDirectory_RegisterOverwrites(t *testing.T) {
	d := directory.New()
	k1, k2 := newKey(t), newKey(t)

	d.Register("alice", k1)
	d.Register("alice", k2)

	got, err := d.Lookup("alice")
	require.NoError(t, err)
	assert.True(t, k2.Equal(got))
	assert.Equal(t, 1, d.Len())
}

func TestDirectory_Unregister(t *testing.T) {
	d := directory.New()
	d.Register("alice", newKey(t))

	d.Unregister("alice")
	_, err := d.Lookup("alice")
	assert.ErrorIs(t, err, domain.ErrUnknownIdentity)

	// Absent identities are a no-op.
	d.Unregister("alice")
	d.Unregister("never-registered")
	assert.Equal(t, 0, d.Len())
}

func TestDirectory_Identities(t *testing.T) {
	d := directory.New()
	for _, id := range []domain.Identity{"julia", "bob", "eve", "alice"} {
		d.Register(id, newKey(t))
	}
	assert.Equal(t, []domain.Identity{"alice", "bob", "eve", "julia"}, d.Identities())
}

func TestDirectory_ConcurrentAccess(t *testing.T) {
	d := directory.New()
	k := newKey(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := domain.Identity(fmt.Sprintf("p%d", i))
			for j := 0; j < 100; j++ {
				d.Register(id, k)
				_, _ = d.Lookup(id)
				d.Unregister(id)
			}
			d.Register(id, k)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, d.Len())
}
