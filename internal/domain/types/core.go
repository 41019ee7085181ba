package types

// Identity is the unique name a chat participant is known by. It is the
// lookup key for the key directory, the participant registry and the
// transport.
type Identity string

// String returns the string form of the identity.
func (i Identity) String() string { return string(i) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
