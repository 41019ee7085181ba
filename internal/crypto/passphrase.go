package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"cryptochat/internal/domain"
	"cryptochat/internal/util/memzero"
)

const (
	KeyBytes  = 32
	SaltBytes = 16
)

// ErrEmptyPassphrase is returned when sealing with an empty passphrase.
var ErrEmptyPassphrase = errors.New("passphrase must not be empty")

// DeriveKEK derives a key-encryption key from a passphrase and salt using Argon2id.
func DeriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, KeyBytes)
}

// SealWithPassphrase encrypts plaintext under a key derived from passphrase.
// The result is salt || nonce || ciphertext || tag.
func SealWithPassphrase(passphrase string, plaintext []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	kek := DeriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	var key domain.SessionKey
	copy(key[:], kek)
	defer Wipe(&key)

	sealed, err := Seal(plaintext, key)
	if err != nil {
		return nil, err
	}
	return append(salt, sealed...), nil
}

// OpenWithPassphrase reverses SealWithPassphrase. A wrong passphrase fails
// with domain.ErrAuthentication.
func OpenWithPassphrase(passphrase string, blob []byte) ([]byte, error) {
	if len(blob) < SaltBytes+chacha20poly1305.NonceSize+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: sealed blob too short", domain.ErrAuthentication)
	}
	kek := DeriveKEK(passphrase, blob[:SaltBytes])
	defer memzero.Zero(kek)

	var key domain.SessionKey
	copy(key[:], kek)
	defer Wipe(&key)

	return Open(blob[SaltBytes:], key)
}
