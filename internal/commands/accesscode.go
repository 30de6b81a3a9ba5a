package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dogtopus/ccppg-ripper/internal/license"
)

// NewAccessCodeCommand creates the command for recovering the access code
// from a license file.
func NewAccessCodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "access-code license",
		Short: "Recover the access code from a license file",
		Long: `Recover and print the access code stored in the license file. This is
the code the viewer prompts for when a book is opened on a new machine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := license.AccessCode(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), code)

			return nil
		},
	}

	return cmd
}
