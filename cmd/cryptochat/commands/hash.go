package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cryptochat/internal/crypto"
)

// hash [--file path] [text...]: print every supported digest.
func hashCmd(_ *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Print SHA-2, SHA-1 and MD5 digests of text or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var digests []crypto.Digest
			switch {
			case file != "" && len(args) > 0:
				return fmt.Errorf("pass either --file or text, not both")
			case file != "":
				var err error
				if digests, err = crypto.HashFile(file); err != nil {
					return err
				}
			default:
				digests = crypto.HashAll([]byte(strings.Join(args, " ")))
			}

			out := cmd.OutOrStdout()
			for _, d := range digests {
				note := ""
				if d.Algorithm.Insecure() {
					note = "  (insecure)"
				}
				fmt.Fprintf(out, "%-8s %s%s\n", d.Algorithm, d.Hex, note)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "hash this file instead of the arguments")
	return cmd
}
