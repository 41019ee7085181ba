package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"cryptochat/internal/crypto"
)

// keygen: print a fresh key-agreement key pair on the configured curve.
func keygenCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key-agreement key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, fp, err := c.wire.Identity.GenerateKeyPair()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Curve:       %s\n", c.wire.Config.Curve)
			fmt.Fprintf(out, "Private:     %s\n", crypto.EncodeKey(kp.Private.Bytes()))
			fmt.Fprintf(out, "Public:      %s\n", crypto.EncodeKey(kp.Public.Bytes()))
			fmt.Fprintf(out, "Fingerprint: %s\n", fp)
			return nil
		},
	}
}

// derive --private <b58> --public <b58>: print the session key both sides compute.
func deriveCmd(c *cli) *cobra.Command {
	var privText, pubText string
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the session key for a private key and a peer public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			curve := c.wire.Identity.Curve()
			priv, err := crypto.ParsePrivateKey(curve, privText)
			if err != nil {
				return fmt.Errorf("--private: %w", err)
			}
			pub, err := crypto.ParsePublicKey(curve, pubText)
			if err != nil {
				return fmt.Errorf("--public: %w", err)
			}
			key, err := crypto.DeriveSessionKey(priv, pub, []byte(c.wire.Config.Salt))
			if err != nil {
				return err
			}
			defer crypto.Wipe(&key)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key.Slice()))
			return nil
		},
	}
	cmd.Flags().StringVar(&privText, "private", "", "own private key (base58)")
	cmd.Flags().StringVar(&pubText, "public", "", "peer public key (base58)")
	_ = cmd.MarkFlagRequired("private")
	_ = cmd.MarkFlagRequired("public")
	return cmd
}
