package interfaces

import domaintypes "cryptochat/internal/domain/types"

// KeyGenerator produces key-agreement key pairs for new participants.
type KeyGenerator interface {
	GenerateKeyPair() (domaintypes.KeyPair, domaintypes.Fingerprint, error)
}
