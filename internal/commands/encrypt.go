package commands

import (
	"github.com/spf13/cobra"

	"github.com/dogtopus/ccppg-ripper/internal/config"
	"github.com/dogtopus/ccppg-ripper/internal/logic"
)

// NewEncryptCommand creates the command for re-encrypting eBook object files.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [flags] [path...]",
		Short: "Re-encrypt eBook object files",
		Long: `Re-encrypt object files with the master passphrase from the license
file, producing files readable by the original viewer. Paths may be files or
directories, directories are walked recursively and filtered with the include
and exclude patterns.`,
		Aliases: []string{"enc", "e"},
		PreRunE: func(_ *cobra.Command, args []string) error {
			return unmarshal(cfg, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	return cmd
}
