package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
	"cryptochat/internal/services/chat"
)

// decryptionErrorText is shown in place of a message that failed to open.
const decryptionErrorText = "Decryption Error"

// demo [--from A --to B] [message...]: run a conversation over the in-process bus.
func demoCmd(c *cli) *cobra.Command {
	var (
		from, to string
		showWire bool
		tamper   bool
	)
	cmd := &cobra.Command{
		Use:   "demo [message...]",
		Short: "Exchange encrypted messages between the demo roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reg := c.wire.Registry

			cast, err := c.wire.Roster()
			if err != nil {
				return err
			}
			if len(cast) < 2 && (from == "" || to == "") {
				return fmt.Errorf("roster needs at least two participants")
			}
			fmt.Fprintf(out, "Curve: %s\n", c.wire.Config.Curve)
			for _, p := range cast {
				fmt.Fprintf(out, "  %-8s %s\n", p.Identity(), p.Fingerprint())
			}

			sender, recipient, err := pickPair(reg, cast, from, to)
			if err != nil {
				return err
			}

			var captured []byte
			tap := c.wire.Bus.Subscribe(recipient.Identity(), func(_ context.Context, env domain.Envelope) error {
				if showWire {
					fmt.Fprintf(out, "  wire %s -> %s: %s\n", env.From, env.To, crypto.B64(env.Ciphertext))
				}
				if env.From == sender.Identity() {
					captured = env.Ciphertext
				}
				return nil
			})
			defer tap.Cancel()

			if len(args) == 0 {
				args = []string{fmt.Sprintf("Hello %s!", recipient.Identity())}
			}
			ctx := cmd.Context()
			for _, text := range args {
				if err := sender.Chat(recipient).Send(ctx, text); err != nil {
					return err
				}
			}
			if err := recipient.Chat(sender).Send(ctx, fmt.Sprintf("Hi %s.", sender.Identity())); err != nil {
				return err
			}

			if tamper && captured != nil {
				if err := redeliverTampered(ctx, recipient, sender.Identity(), captured); err != nil {
					return err
				}
			}

			printHistory(out, sender.Chat(recipient))
			printHistory(out, recipient.Chat(sender))

			others := reg.Others(sender, recipient)
			names := make([]string, len(others))
			for i, p := range others {
				names[i] = string(p.Identity())
			}
			if len(names) > 0 {
				fmt.Fprintf(out, "Not in this chat: %s\n", strings.Join(names, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "sender identity (default: second roster entry)")
	cmd.Flags().StringVar(&to, "to", "", "recipient identity (default: first roster entry)")
	cmd.Flags().BoolVar(&showWire, "wire", false, "print ciphertext as it crosses the bus")
	cmd.Flags().BoolVar(&tamper, "tamper", false, "deliver one corrupted message to the recipient")
	return cmd
}

func pickPair(
	reg *chat.Registry,
	cast []*chat.Participant,
	from, to string,
) (*chat.Participant, *chat.Participant, error) {
	var sender, recipient *chat.Participant
	var err error
	if from == "" {
		sender = cast[1]
	} else if sender, err = reg.GetOrCreate(domain.Identity(from)); err != nil {
		return nil, nil, err
	}
	if to == "" {
		recipient = cast[0]
	} else if recipient, err = reg.GetOrCreate(domain.Identity(to)); err != nil {
		return nil, nil, err
	}
	return sender, recipient, nil
}

// redeliverTampered flips one bit of a captured ciphertext and hands it to
// recipient, as a corrupting network would.
func redeliverTampered(
	ctx context.Context,
	recipient *chat.Participant,
	from domain.Identity,
	ct []byte,
) error {
	bad := bytes.Clone(ct)
	bad[len(bad)/2] ^= 0x01
	return recipient.Receive(ctx, domain.Envelope{
		Ciphertext: bad,
		From:       from,
		To:         recipient.Identity(),
	})
}

func printHistory(out io.Writer, s *chat.Session) {
	fmt.Fprintf(out, "== %s's chat with %s\n", s.Owner().Identity(), s.Counterpart().Identity())
	for _, e := range s.Messages() {
		text := e.Text
		if e.Failed() {
			text = decryptionErrorText
		}
		fmt.Fprintf(out, "%s: %s\n", e.From, text)
	}
}
