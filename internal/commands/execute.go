package commands

import (
	"github.com/dogtopus/ccppg-ripper/internal/config"
)

// Execute builds the command tree and runs it, returning any error from the
// selected subcommand.
func Execute(version string) error {
	cfg := &config.Config{}

	return NewRootCommand(cfg, version).Execute()
}
