package chat

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
)

// Session is the conversation between one participant and one counterpart,
// as seen by the owner.
type Session struct {
	owner       *Participant
	counterpart *Participant

	mu      sync.Mutex
	history []domain.Entry
}

// Owner returns the participant whose side of the conversation this is.
func (s *Session) Owner() *Participant { return s.owner }

// Counterpart returns the other participant.
func (s *Session) Counterpart() *Participant { return s.counterpart }

// Send encrypts text for the counterpart, publishes it and records it in the
// owner's history.
//
// Once the ciphertext has been handed to the transport the text is recorded
// even if publishing reports an error; there is no acknowledgement.
func (s *Session) Send(ctx context.Context, text string) error {
	from, to := s.owner.Identity(), s.counterpart.Identity()

	key, err := s.owner.sessionKey(to)
	if err != nil {
		return fmt.Errorf("send to %q: %w", to, err)
	}
	ct, err := crypto.Seal([]byte(text), key)
	crypto.Wipe(&key)
	if err != nil {
		return fmt.Errorf("send to %q: %w", to, err)
	}

	perr := s.owner.registry.bus.Publish(ctx, domain.Envelope{
		Ciphertext: ct,
		From:       from,
		To:         to,
	})
	s.append(domain.Entry{From: from, Text: text})

	s.owner.registry.logger.WithFields(logrus.Fields{
		"function": "Send",
		"package":  "chat",
		"from":     from,
		"to":       to,
		"bytes":    len(ct),
	}).Debug("Sent message")

	if perr != nil {
		return fmt.Errorf("send to %q: %w", to, perr)
	}
	return nil
}

// receive opens env and appends the result to the history.
func (s *Session) receive(_ context.Context, env domain.Envelope) error {
	key, err := s.owner.sessionKey(env.From)
	if err != nil {
		return fmt.Errorf("receive from %q: %w", env.From, err)
	}
	pt, err := crypto.Open(env.Ciphertext, key)
	crypto.Wipe(&key)
	if err != nil {
		s.owner.registry.logger.WithFields(logrus.Fields{
			"function": "receive",
			"package":  "chat",
			"from":     env.From,
			"to":       env.To,
			"error":    err.Error(),
		}).Warn("Failed to open message")
		s.append(domain.Entry{From: env.From, Err: err})
		return nil
	}
	s.append(domain.Entry{From: env.From, Text: string(pt)})
	return nil
}

func (s *Session) append(e domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, e)
}

// Messages returns a snapshot of the history, oldest first.
func (s *Session) Messages() []domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}
