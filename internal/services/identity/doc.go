// Package identity issues key material for chat participants and manages the
// local long-term signing identity.
//
// Participants get an ephemeral key-agreement key pair on a configured curve.
// The signing identity is an Ed25519 key pair persisted via the
// domain.SigningKeyStore and protected by a passphrase that must pass a
// strength policy.
package identity
