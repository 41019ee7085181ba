package commands

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cryptochat/internal/crypto"
)

// sign: manage the stored Ed25519 identity and sign or verify messages.
func signCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Ed25519 signing identity, signatures and verification",
	}
	cmd.AddCommand(signKeygenCmd(c), signFingerprintCmd(c), signMessageCmd(c), signVerifyCmd())
	return cmd
}

func signKeygenCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Create the signing identity and store it encrypted under --home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			key, fp, err := c.wire.Identity.GenerateSigningIdentity(c.passphrase)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Signing identity created.\n")
			fmt.Fprintf(out, "Public:      %s\n", crypto.EncodeKey(key.Public))
			fmt.Fprintf(out, "Fingerprint: %s\n", fp)
			return nil
		},
	}
}

func signFingerprintCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the signing identity fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := c.wire.Identity.FingerprintSigningIdentity(c.passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}

func signMessageCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "message <text...>",
		Short: "Sign a message with the stored identity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := c.wire.Identity.LoadSigningIdentity(c.passphrase)
			if err != nil {
				return err
			}
			sig, err := crypto.Sign(key, []byte(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Public:    %s\n", crypto.EncodeKey(key.Public))
			fmt.Fprintf(out, "Signature: %s\n", crypto.B64(sig))
			return nil
		},
	}
}

func signVerifyCmd() *cobra.Command {
	var pubText, sigText string
	cmd := &cobra.Command{
		Use:   "verify <text...>",
		Short: "Verify a signature against a public key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := crypto.DecodeKey(pubText)
			if err != nil {
				return fmt.Errorf("--pub: %w", err)
			}
			sig, err := crypto.UnB64(sigText)
			if err != nil {
				return fmt.Errorf("--sig: %w", err)
			}
			ok, err := crypto.Verify(ed25519.PublicKey(pub), []byte(strings.Join(args, " ")), sig)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("signature is NOT valid")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid.")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubText, "pub", "", "signer public key (base58)")
	cmd.Flags().StringVar(&sigText, "sig", "", "signature (base64)")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
