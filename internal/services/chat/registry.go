package chat

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
)

// Registry maps identities to live participants.
type Registry struct {
	dir    domain.KeyDirectory
	bus    domain.Transport
	keys   domain.KeyGenerator
	salt   []byte
	logger *logrus.Logger

	// createMu serialises get-or-create and rename so a participant only
	// becomes visible once its key is registered and its inbox is open.
	createMu sync.Mutex

	mu           sync.Mutex
	participants map[domain.Identity]*Participant
}

// Option configures a Registry.
type Option func(*Registry)

// WithSalt overrides the HKDF salt used for session keys.
func WithSalt(salt []byte) Option {
	return func(r *Registry) { r.salt = slices.Clone(salt) }
}

// WithLogger sets the logger for participant and session events.
func WithLogger(l *logrus.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry returns an empty registry wired to the given collaborators.
func NewRegistry(
	dir domain.KeyDirectory,
	bus domain.Transport,
	keys domain.KeyGenerator,
	opts ...Option,
) *Registry {
	r := &Registry{
		dir:          dir,
		bus:          bus,
		keys:         keys,
		salt:         slices.Clone(crypto.DefaultSalt),
		logger:       logrus.StandardLogger(),
		participants: make(map[domain.Identity]*Participant),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrCreate returns the participant for identity, creating it on first use.
//
// Repeated calls with the same identity return the same instance.
func (r *Registry) GetOrCreate(identity domain.Identity) (*Participant, error) {
	if identity == "" {
		return nil, domain.ErrEmptyIdentity
	}
	if p, ok := r.get(identity); ok {
		return p, nil
	}

	r.createMu.Lock()
	defer r.createMu.Unlock()

	if p, ok := r.get(identity); ok {
		return p, nil
	}

	kp, fp, err := r.keys.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("create participant %q: %w", identity, err)
	}
	p := &Participant{
		registry:    r,
		identity:    identity,
		keys:        kp,
		fingerprint: fp,
		sessions:    make(map[*Participant]*Session),
	}
	r.dir.Register(identity, kp.Public)
	p.sub = r.bus.Subscribe(identity, p.Receive)

	r.mu.Lock()
	r.participants[identity] = p
	r.mu.Unlock()

	r.logger.WithFields(logrus.Fields{
		"function":    "GetOrCreate",
		"package":     "chat",
		"identity":    identity,
		"fingerprint": fp,
	}).Info("Created participant")
	return p, nil
}

// Lookup returns an existing participant without creating one.
func (r *Registry) Lookup(identity domain.Identity) (*Participant, error) {
	if p, ok := r.get(identity); ok {
		return p, nil
	}
	return nil, fmt.Errorf("participant %q: %w", identity, domain.ErrUnknownIdentity)
}

// Roster get-or-creates each named participant, in order.
func (r *Registry) Roster(names ...domain.Identity) ([]*Participant, error) {
	out := make([]*Participant, 0, len(names))
	for _, name := range names {
		p, err := r.GetOrCreate(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Others returns every participant except those in exclude, ordered by identity.
func (r *Registry) Others(exclude ...*Participant) []*Participant {
	r.mu.Lock()
	out := make([]*Participant, 0, len(r.participants))
	for _, p := range r.participants {
		if !slices.Contains(exclude, p) {
			out = append(out, p)
		}
	}
	r.mu.Unlock()

	slices.SortFunc(out, func(a, b *Participant) int {
		return strings.Compare(string(a.Identity()), string(b.Identity()))
	})
	return out
}

// Identities lists the live identities in sorted order.
func (r *Registry) Identities() []domain.Identity {
	r.mu.Lock()
	out := make([]domain.Identity, 0, len(r.participants))
	for id := range r.participants {
		out = append(out, id)
	}
	r.mu.Unlock()
	slices.Sort(out)
	return out
}

// Len reports the number of live participants.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.participants)
}

func (r *Registry) get(identity domain.Identity) (*Participant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.participants[identity]
	return p, ok
}

// rename moves p from its current identity to next in every table.
func (r *Registry) rename(p *Participant, next domain.Identity) error {
	if next == "" {
		return domain.ErrEmptyIdentity
	}

	r.createMu.Lock()
	defer r.createMu.Unlock()

	prev := p.Identity()
	if prev == next {
		return nil
	}
	if _, taken := r.get(next); taken {
		return fmt.Errorf("rename %q to %q: %w", prev, next, domain.ErrIdentityTaken)
	}

	r.dir.Unregister(prev)
	r.dir.Register(next, p.keys.Public)

	sub := r.bus.Subscribe(next, p.Receive)
	old := p.setIdentity(next, sub)
	if old != nil {
		old.Cancel()
	}

	r.mu.Lock()
	delete(r.participants, prev)
	r.participants[next] = p
	r.mu.Unlock()

	r.logger.WithFields(logrus.Fields{
		"function": "Rename",
		"package":  "chat",
		"from":     prev,
		"to":       next,
	}).Info("Renamed participant")
	return nil
}
