package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"cryptochat/internal/domain"
)

// GenerateSigningKey returns a new Ed25519 signing key pair.
func GenerateSigningKey() (domain.SigningKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return domain.SigningKey{}, err
	}
	return domain.SigningKey{Private: priv, Public: pub}, nil
}

// Sign signs msg with the private half of k.
func Sign(k domain.SigningKey, msg []byte) ([]byte, error) {
	if len(k.Private) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf(
			"%w: ed25519 private key must be %d bytes, got %d",
			domain.ErrInvalidKey, ed25519.PrivateKeySize, len(k.Private),
		)
	}
	return ed25519.Sign(k.Private, msg), nil
}

// Verify checks sig over msg with pub. Malformed keys are an error; a bad
// signature is reported as false.
func Verify(pub ed25519.PublicKey, msg, sig []byte) (bool, error) {
	if len(pub) != ed25519.PublicKeySize {
		return false, fmt.Errorf(
			"%w: ed25519 public key must be %d bytes, got %d",
			domain.ErrInvalidKey, ed25519.PublicKeySize, len(pub),
		)
	}
	return ed25519.Verify(pub, msg, sig), nil
}
