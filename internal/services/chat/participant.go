package chat

import (
	"context"
	"crypto/ecdh"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
)

// Participant is a named chat endpoint holding a key-agreement key pair.
type Participant struct {
	registry    *Registry
	keys        domain.KeyPair
	fingerprint domain.Fingerprint

	mu       sync.RWMutex
	identity domain.Identity
	sub      domain.Subscription

	smu      sync.Mutex
	sessions map[*Participant]*Session
}

// Identity returns the participant's current identity.
func (p *Participant) Identity() domain.Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.identity
}

func (p *Participant) String() string { return string(p.Identity()) }

// PublicKey returns the participant's public key.
func (p *Participant) PublicKey() *ecdh.PublicKey { return p.keys.Public }

// Fingerprint returns a short fingerprint of the public key.
func (p *Participant) Fingerprint() domain.Fingerprint { return p.fingerprint }

// Rename moves the participant to a new identity. The public key is
// re-registered under next and the inbox under the old identity is closed.
//
// Renaming onto an identity held by another participant fails with
// domain.ErrIdentityTaken.
func (p *Participant) Rename(next domain.Identity) error {
	return p.registry.rename(p, next)
}

func (p *Participant) setIdentity(
	next domain.Identity,
	sub domain.Subscription,
) domain.Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()
	old := p.sub
	p.identity, p.sub = next, sub
	return old
}

// Chat returns the session between p and other, creating it on first use.
// The same instance is returned for every later call with the same
// counterpart, so history accumulates in one place.
func (p *Participant) Chat(other *Participant) *Session {
	p.smu.Lock()
	defer p.smu.Unlock()
	if s, ok := p.sessions[other]; ok {
		return s
	}
	s := &Session{owner: p, counterpart: other}
	p.sessions[other] = s
	return s
}

// Sessions returns the number of sessions the participant has opened.
func (p *Participant) Sessions() int {
	p.smu.Lock()
	defer p.smu.Unlock()
	return len(p.sessions)
}

// Receive handles an envelope addressed to p. It is the participant's
// transport handler.
//
// A sender the registry does not know is reported as
// domain.ErrUnknownIdentity. A ciphertext that fails to open is not an
// error here: it is recorded in the session history as a failed entry.
func (p *Participant) Receive(ctx context.Context, env domain.Envelope) error {
	sender, err := p.registry.Lookup(env.From)
	if err != nil {
		p.registry.logger.WithFields(logrus.Fields{
			"function": "Receive",
			"package":  "chat",
			"to":       env.To,
			"from":     env.From,
		}).Warn("Envelope from unknown sender")
		return fmt.Errorf("receive: %w", err)
	}
	return p.Chat(sender).receive(ctx, env)
}

// sessionKey derives the key shared between p and the holder of peer's
// published key.
func (p *Participant) sessionKey(peer domain.Identity) (domain.SessionKey, error) {
	pub, err := p.registry.dir.Lookup(peer)
	if err != nil {
		return domain.SessionKey{}, err
	}
	key, err := crypto.DeriveSessionKey(p.keys.Private, pub, p.registry.salt)
	if err != nil {
		p.registry.logger.WithFields(logrus.Fields{
			"function": "sessionKey",
			"package":  "chat",
			"peer":     peer,
			"peer_key": crypto.KeyPreview(pub.Bytes()),
			"error":    err.Error(),
		}).Warn("Key agreement rejected peer key")
		return domain.SessionKey{}, err
	}
	return key, nil
}
