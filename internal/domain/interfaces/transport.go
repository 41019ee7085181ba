package interfaces

import (
	"context"

	domaintypes "cryptochat/internal/domain/types"
)

// Handler consumes one envelope addressed to the identity it subscribed
// under. A returned error is a delivery failure; it is never reported back
// to the sender.
type Handler func(ctx context.Context, env domaintypes.Envelope) error

// Subscription is a live registration on a Transport.
type Subscription interface {
	Identity() domaintypes.Identity
	Cancel()
}

// Transport delivers envelopes to the handlers subscribed under the
// envelope's recipient. Envelopes with no subscriber are dropped.
type Transport interface {
	Subscribe(identity domaintypes.Identity, handler Handler) Subscription
	Publish(ctx context.Context, env domaintypes.Envelope) error
}
