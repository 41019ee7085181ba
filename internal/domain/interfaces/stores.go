package interfaces

import domaintypes "cryptochat/internal/domain/types"

// SigningKeyStore persists your long-term signing identity, encrypted under a
// passphrase.
type SigningKeyStore interface {
	SaveSigningKey(passphrase string, key domaintypes.SigningKey) error
	LoadSigningKey(passphrase string) (domaintypes.SigningKey, error)
}
