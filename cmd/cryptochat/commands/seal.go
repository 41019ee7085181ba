package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cryptochat/internal/crypto"
)

// seal -p pass <text...>: encrypt text under a passphrase, printed as base64.
func sealCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "seal <text...>",
		Short: "Encrypt text with a passphrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := crypto.SealWithPassphrase(c.passphrase, []byte(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(blob))
			return nil
		},
	}
}

// open -p pass <b64>: reverse seal.
func openCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "open <base64>",
		Short: "Decrypt text sealed with a passphrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := crypto.UnB64(args[0])
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			pt, err := crypto.OpenWithPassphrase(c.passphrase, blob)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pt))
			return nil
		},
	}
}
