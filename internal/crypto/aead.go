package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"cryptochat/internal/domain"
)

// Overhead is the number of bytes Seal adds to a plaintext.
const Overhead = chacha20poly1305.NonceSize + chacha20poly1305.Overhead

// Seal encrypts plaintext under key with ChaCha20-Poly1305 and returns
// nonce || ciphertext || tag. Every call draws a fresh random nonce.
func Seal(plaintext []byte, key domain.SessionKey) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKey, err)
	}
	out := make([]byte, chacha20poly1305.NonceSize, Overhead+len(plaintext))
	if _, err := rand.Read(out); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	return aead.Seal(out, out, plaintext, nil), nil
}

// Open reverses Seal. Tampered, truncated or foreign ciphertexts fail with
// domain.ErrAuthentication.
func Open(sealed []byte, key domain.SessionKey) ([]byte, error) {
	if len(sealed) < Overhead {
		return nil, fmt.Errorf(
			"%w: ciphertext too short (%d bytes)", domain.ErrAuthentication, len(sealed),
		)
	}
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKey, err)
	}
	nonce, ct := sealed[:chacha20poly1305.NonceSize], sealed[chacha20poly1305.NonceSize:]
	pt, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, domain.ErrAuthentication
	}
	return pt, nil
}
