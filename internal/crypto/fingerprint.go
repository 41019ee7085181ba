package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"cryptochat/internal/domain"
	"cryptochat/internal/util/memzero"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}

// KeyPreview renders the first bytes of key material for log fields.
func KeyPreview(b []byte) string {
	const n = 8
	if len(b) == 0 {
		return "nil"
	}
	if len(b) <= n {
		return fmt.Sprintf("%x", b)
	}
	return fmt.Sprintf("%x...", b[:n])
}

// Wipe zeroes a session key in place.
func Wipe(k *domain.SessionKey) { memzero.Zero(k[:]) }
