package crypto

import (
	"crypto/ecdh"
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"

	"cryptochat/internal/domain"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// UnB64 decodes standard base64.
func UnB64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

// EncodeKey renders raw key bytes as base58 text.
func EncodeKey(b []byte) string { return base58.Encode(b) }

// DecodeKey parses base58 key text.
func DecodeKey(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKey, err)
	}
	return b, nil
}

// ParsePublicKey decodes base58 text into a public key on curve.
func ParsePublicKey(curve ecdh.Curve, s string) (*ecdh.PublicKey, error) {
	b, err := DecodeKey(s)
	if err != nil {
		return nil, err
	}
	pub, err := curve.NewPublicKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKey, err)
	}
	return pub, nil
}

// ParsePrivateKey decodes base58 text into a private key on curve.
func ParsePrivateKey(curve ecdh.Curve, s string) (*ecdh.PrivateKey, error) {
	b, err := DecodeKey(s)
	if err != nil {
		return nil, err
	}
	priv, err := curve.NewPrivateKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKey, err)
	}
	return priv, nil
}
