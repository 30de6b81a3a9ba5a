// Package config holds the runtime configuration for the ripper commands.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Suffixes controls the file name suffix handling for object processing.
type Suffixes struct {
	// Encrypt is appended to encrypted output files and stripped from
	// input files when decrypting.
	Encrypt string `mapstructure:"encrypt-ext"`

	// Decrypt is appended to decrypted output files after stripping the
	// encrypted suffix.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config is populated from flags and environment variables via viper.
type Config struct {
	// License is the path to the book's license file.
	License string `mapstructure:"license" validate:"required"`

	// Parallel is the number of concurrent object workers.
	Parallel int `mapstructure:"parallel" validate:"min=1"`

	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet"`

	// Delete removes input files after successful processing.
	Delete bool `mapstructure:"delete"`

	// Dry previews the work without touching any file.
	Dry bool `mapstructure:"dry-run"`

	// Stats prints a processing summary at the end.
	Stats bool `mapstructure:"stats"`

	// Preserve carries input timestamps over to output files.
	Preserve bool `mapstructure:"preserve"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Include/Exclude filter walked directories; files named explicitly
	// bypass filtering.
	Include     []string `mapstructure:"include"`
	Exclude     []string `mapstructure:"exclude"`
	IncludeFrom string   `mapstructure:"include-from"`
	ExcludeFrom string   `mapstructure:"exclude-from"`

	// Decrypt selects the processing direction.
	Decrypt bool

	// Files are the resolved positional arguments.
	Files []string `validate:"min=1"`
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
