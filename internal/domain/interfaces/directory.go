package interfaces

import (
	"crypto/ecdh"

	domaintypes "cryptochat/internal/domain/types"
)

// KeyDirectory maps identities to public keys. It is a lookup cache, not a
// source of truth for whether a participant is alive.
type KeyDirectory interface {
	// Register upserts the key for identity.
	Register(identity domaintypes.Identity, pub *ecdh.PublicKey)
	// Unregister removes identity; absent identities are a no-op.
	Unregister(identity domaintypes.Identity)
	// Lookup returns ErrUnknownIdentity for identities never registered.
	Lookup(identity domaintypes.Identity) (*ecdh.PublicKey, error)
}
