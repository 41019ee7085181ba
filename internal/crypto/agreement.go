package crypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"

	"cryptochat/internal/domain"
	"cryptochat/internal/util/memzero"
)

// SessionKeySize is the length of a derived session key in bytes.
const SessionKeySize = 32

// DefaultSalt is the HKDF salt used when none is configured.
var DefaultSalt = []byte("SALT")

// Curve names accepted by ParseCurve.
const (
	CurveP256   = "P-256"
	CurveP384   = "P-384"
	CurveP521   = "P-521"
	CurveX25519 = "X25519"
)

// DefaultCurve is the key-agreement curve used when none is configured.
const DefaultCurve = CurveP521

var curves = map[string]ecdh.Curve{
	CurveP256:   ecdh.P256(),
	CurveP384:   ecdh.P384(),
	CurveP521:   ecdh.P521(),
	CurveX25519: ecdh.X25519(),
}

// ParseCurve resolves a curve by name. Matching ignores case.
func ParseCurve(name string) (ecdh.Curve, error) {
	for n, c := range curves {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

// CurveNames lists the accepted curve names in a stable order.
func CurveNames() []string {
	return []string{CurveP256, CurveP384, CurveP521, CurveX25519}
}

// GenerateKeyPair returns a fresh key-agreement key pair on curve.
func GenerateKeyPair(curve ecdh.Curve) (domain.KeyPair, error) {
	priv, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("generate %s key: %w", curve, err)
	}
	return domain.KeyPair{Private: priv, Public: priv.PublicKey()}, nil
}

// DeriveSessionKey runs key agreement between priv and pub and stretches the
// shared secret with HKDF-SHA256 (salt, empty info) to a 32-byte key.
//
// Mismatched curves, nil keys and low-order points fail with
// domain.ErrInvalidKey.
func DeriveSessionKey(
	priv *ecdh.PrivateKey,
	pub *ecdh.PublicKey,
	salt []byte,
) (domain.SessionKey, error) {
	var key domain.SessionKey
	if priv == nil || pub == nil {
		return key, fmt.Errorf("%w: nil key", domain.ErrInvalidKey)
	}
	if priv.Curve() != pub.Curve() {
		return key, fmt.Errorf(
			"%w: curve mismatch (%s private, %s public)",
			domain.ErrInvalidKey, priv.Curve(), pub.Curve(),
		)
	}

	secret, err := priv.ECDH(pub)
	if err != nil {
		return key, fmt.Errorf("%w: %v", domain.ErrInvalidKey, err)
	}
	defer memzero.Zero(secret)

	r := hkdf.New(sha256.New, secret, salt, nil)
	if _, err := io.ReadFull(r, key[:]); err != nil {
		return domain.SessionKey{}, fmt.Errorf("hkdf expand: %w", err)
	}
	return key, nil
}
