package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dogtopus/ccppg-ripper/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "ccppg-ripper [flags] command [flags]",
		Short: "FlipViewer eBook decryption utility",
		Long: `A utility for working with downloaded FlipViewer eBooks.
Provides commands for decrypting object files, re-encrypting them, and
recovering the access code and master passphrase from a license file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix("ccppg_ripper")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()

			return viper.BindPFlags(cmd.Flags())
		},
	}

	root.PersistentFlags().StringP("license", "l", "", "Path to the book's license file")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("delete", "d", false, "Delete the original file after successful processing")
	root.PersistentFlags().Bool("dry-run", false, "Preview the file list without processing")
	root.PersistentFlags().Bool("stats", false, "Print a processing summary")
	root.PersistentFlags().Bool("preserve", false, "Preserve input file timestamps on output files")

	root.PersistentFlags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	root.PersistentFlags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.PersistentFlags().StringSlice("include", nil, "Include patterns for walked directories (find -path semantics)")
	root.PersistentFlags().StringSlice("exclude", nil, "Exclude patterns for walked directories (find -path semantics)")
	root.PersistentFlags().String("include-from", "", "JSONC file with include patterns")
	root.PersistentFlags().String("exclude-from", "", "JSONC file with exclude patterns")

	root.AddCommand(
		NewDecryptCommand(cfg),
		NewEncryptCommand(cfg),
		NewCheckCommand(cfg),
		NewAccessCodeCommand(),
		NewPassphraseCommand(),
	)

	return root
}
