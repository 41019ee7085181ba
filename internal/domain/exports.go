package domain

import (
	interfaces "cryptochat/internal/domain/interfaces"
	types "cryptochat/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Identity    = types.Identity
	Fingerprint = types.Fingerprint
	KeyPair     = types.KeyPair
	SessionKey  = types.SessionKey
	SigningKey  = types.SigningKey
	Envelope    = types.Envelope
	Entry       = types.Entry
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyDirectory    = interfaces.KeyDirectory
	KeyGenerator    = interfaces.KeyGenerator
	SigningKeyStore = interfaces.SigningKeyStore
	Transport       = interfaces.Transport
	Handler         = interfaces.Handler
	Subscription    = interfaces.Subscription
)

// Sentinel errors re-exported from the types subpackage.
var (
	ErrUnknownIdentity = types.ErrUnknownIdentity
	ErrAuthentication  = types.ErrAuthentication
	ErrInvalidKey      = types.ErrInvalidKey
	ErrIdentityTaken   = types.ErrIdentityTaken
	ErrEmptyIdentity   = types.ErrEmptyIdentity
)
