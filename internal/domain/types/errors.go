package types

import "errors"

var (
	// ErrUnknownIdentity is returned when no public key or participant is
	// registered under an identity.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrAuthentication is returned when a ciphertext fails to open: it was
	// tampered with, truncated, or sealed under a different key.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrInvalidKey is returned for malformed or mismatched key material.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrIdentityTaken is returned when renaming onto an identity that
	// already belongs to a live participant.
	ErrIdentityTaken = errors.New("identity already in use")

	// ErrEmptyIdentity is returned for the empty identity string.
	ErrEmptyIdentity = errors.New("identity must not be empty")
)
