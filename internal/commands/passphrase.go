package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dogtopus/ccppg-ripper/internal/license"
)

// NewPassphraseCommand creates the command for recovering the master
// passphrase from a license file.
func NewPassphraseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase license",
		Short: "Recover the master passphrase from a license file",
		Long: `Recover and print the master passphrase stored in the license file.
The passphrase keys the per-object stream cipher and is normally only used
internally by the decrypt and encrypt commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := license.MasterPassphrase(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), passphrase)

			return nil
		},
	}

	return cmd
}
