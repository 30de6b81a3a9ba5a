package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dogtopus/ccppg-ripper/internal/config"
	"github.com/dogtopus/ccppg-ripper/internal/logic"
)

// NewCheckCommand creates the command for testing include and exclude
// patterns against the file tree without processing anything.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [path...]",
		Short: "Check include and exclude patterns against the file tree",
		Long: `Walk the given paths and report which files each include and exclude
pattern matches. No license is required and no files are touched.`,
		PreRunE: func(_ *cobra.Command, args []string) error {
			if err := viper.Unmarshal(cfg); err != nil {
				return fmt.Errorf("unmarshalling config: %w", err)
			}

			cfg.Files = args
			if len(cfg.Files) == 0 {
				cfg.Files = []string{"."}
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunCheck(cfg)
		},
	}

	return cmd
}
