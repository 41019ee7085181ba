package directory

import (
	"crypto/ecdh"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
)

// Directory maps identities to public keys.
type Directory struct {
	mu      sync.RWMutex
	entries map[domain.Identity]*ecdh.PublicKey
	log     *logrus.Logger
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger sets the logger used for registration events.
func WithLogger(l *logrus.Logger) Option {
	return func(d *Directory) { d.log = l }
}

// New returns an empty Directory.
func New(opts ...Option) *Directory {
	d := &Directory{
		entries: make(map[domain.Identity]*ecdh.PublicKey),
		log:     logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Register upserts the public key for identity, replacing any previous entry.
func (d *Directory) Register(identity domain.Identity, pub *ecdh.PublicKey) {
	d.mu.Lock()
	_, replaced := d.entries[identity]
	d.entries[identity] = pub
	d.mu.Unlock()

	d.log.WithFields(logrus.Fields{
		"function":    "Register",
		"package":     "directory",
		"identity":    identity,
		"fingerprint": fingerprint(pub),
		"replaced":    replaced,
	}).Debug("Registered public key")
}

// Unregister removes identity. Removing an absent identity is a no-op.
func (d *Directory) Unregister(identity domain.Identity) {
	d.mu.Lock()
	_, ok := d.entries[identity]
	delete(d.entries, identity)
	d.mu.Unlock()

	if ok {
		d.log.WithFields(logrus.Fields{
			"function": "Unregister",
			"package":  "directory",
			"identity": identity,
		}).Debug("Unregistered public key")
	}
}

// Lookup returns the public key registered for identity.
func (d *Directory) Lookup(identity domain.Identity) (*ecdh.PublicKey, error) {
	d.mu.RLock()
	pub, ok := d.entries[identity]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownIdentity, identity)
	}
	return pub, nil
}

// Identities returns the registered identities in sorted order.
func (d *Directory) Identities() []domain.Identity {
	d.mu.RLock()
	out := make([]domain.Identity, 0, len(d.entries))
	for id := range d.entries {
		out = append(out, id)
	}
	d.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of registered identities.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

func fingerprint(pub *ecdh.PublicKey) domain.Fingerprint {
	if pub == nil {
		return ""
	}
	return crypto.Fingerprint(pub.Bytes())
}

// Compile-time assertion that Directory implements domain.KeyDirectory.
var _ domain.KeyDirectory = (*Directory)(nil)
