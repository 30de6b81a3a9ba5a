package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dogtopus/ccppg-ripper/internal/config"
	"github.com/dogtopus/ccppg-ripper/internal/logic"
)

// unmarshal populates cfg from the bound flags and environment, records the
// positional file arguments, and validates the result.
func unmarshal(cfg *config.Config, args []string) error {
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Files = args
	if len(cfg.Files) == 0 {
		cfg.Files = []string{"."}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return nil
}

// NewDecryptCommand creates the command for decrypting eBook object files.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [flags] [path...]",
		Short: "Decrypt eBook object files",
		Long: `Decrypt eBook object files using the master passphrase recovered
from the license file. Paths may be files or directories, directories are
walked recursively and filtered with the include and exclude patterns.`,
		Aliases: []string{"dec", "d"},
		PreRunE: func(_ *cobra.Command, args []string) error {
			if err := unmarshal(cfg, args); err != nil {
				return err
			}

			cfg.Decrypt = true

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	return cmd
}
