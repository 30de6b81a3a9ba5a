// Package commands provides the command-line interface for the ripper.
//
// It implements commands for:
//   - decrypting and re-encrypting object files
//   - recovering the access code and master passphrase from a license
//   - validating include/exclude patterns
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
