package types

import (
	"crypto/ecdh"
	"crypto/ed25519"
)

// KeyPair is a key-agreement key pair. The private half never leaves the
// participant that generated it.
type KeyPair struct {
	Private *ecdh.PrivateKey
	Public  *ecdh.PublicKey
}

// SessionKey is a derived 256-bit symmetric key.
type SessionKey [32]byte

// Slice returns the key as a []byte.
func (k *SessionKey) Slice() []byte { return k[:] }

// SigningKey is an Ed25519 signing key pair.
type SigningKey struct {
	Private ed25519.PrivateKey `json:"private"`
	Public  ed25519.PublicKey  `json:"public"`
}
