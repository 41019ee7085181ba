package identity

import (
	"crypto/ecdh"
	"fmt"
	"unicode"

	"github.com/sirupsen/logrus"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service generates participant key pairs and manages the signing identity.
type Service struct {
	curve  ecdh.Curve
	store  domain.SigningKeyStore
	logger *logrus.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for key events.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithSigningKeyStore sets the store backing the signing identity. Without
// one, the signing methods fail.
func WithSigningKeyStore(st domain.SigningKeyStore) Option {
	return func(s *Service) { s.store = st }
}

// New returns an identity service generating key pairs on curve.
func New(curve ecdh.Curve, opts ...Option) *Service {
	s := &Service{curve: curve, logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Curve reports the key-agreement curve in use.
func (s *Service) Curve() ecdh.Curve { return s.curve }

// GenerateKeyPair creates a fresh key-agreement key pair and returns it with
// a short fingerprint of the public key.
func (s *Service) GenerateKeyPair() (domain.KeyPair, domain.Fingerprint, error) {
	kp, err := crypto.GenerateKeyPair(s.curve)
	if err != nil {
		return domain.KeyPair{}, "", err
	}
	fp := crypto.Fingerprint(kp.Public.Bytes())
	s.logger.WithFields(logrus.Fields{
		"function":    "GenerateKeyPair",
		"package":     "identity",
		"curve":       fmt.Sprint(s.curve),
		"fingerprint": fp,
	}).Debug("Generated key pair")
	return kp, fp, nil
}

// GenerateSigningIdentity creates a new Ed25519 identity, saves it encrypted
// with the passphrase, and returns it plus a fingerprint of the public key.
func (s *Service) GenerateSigningIdentity(
	passphrase string,
) (domain.SigningKey, domain.Fingerprint, error) {
	if s.store == nil {
		return domain.SigningKey{}, "", errNoStore
	}
	if !isSecurePassphrase(passphrase) {
		return domain.SigningKey{}, "", ErrWeakPassphrase
	}

	key, err := crypto.GenerateSigningKey()
	if err != nil {
		return domain.SigningKey{}, "", err
	}
	if err := s.store.SaveSigningKey(passphrase, key); err != nil {
		return domain.SigningKey{}, "", err
	}

	fp := crypto.Fingerprint(key.Public)
	s.logger.WithFields(logrus.Fields{
		"function":    "GenerateSigningIdentity",
		"package":     "identity",
		"fingerprint": fp,
	}).Info("Created signing identity")
	return key, fp, nil
}

// LoadSigningIdentity decrypts and returns the local signing identity.
func (s *Service) LoadSigningIdentity(passphrase string) (domain.SigningKey, error) {
	if s.store == nil {
		return domain.SigningKey{}, errNoStore
	}
	return s.store.LoadSigningKey(passphrase)
}

// FingerprintSigningIdentity returns a short fingerprint of the stored signing key.
func (s *Service) FingerprintSigningIdentity(passphrase string) (domain.Fingerprint, error) {
	key, err := s.LoadSigningIdentity(passphrase)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(key.Public), nil
}

var errNoStore = fmt.Errorf("identity: no signing key store configured")

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len([]rune(passphrase)) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyGenerator.
var _ domain.KeyGenerator = (*Service)(nil)
