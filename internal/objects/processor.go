package objects

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dogtopus/ccppg-ripper/internal/config"
	"github.com/dogtopus/ccppg-ripper/internal/fileutil"
	"github.com/dogtopus/ccppg-ripper/internal/fvcrypt"
)

// Processor handles the decryption and encryption of object files. Every
// file gets its own cipher session; the processor itself only carries the
// passphrase and the run configuration.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// passphrase is the book's master passphrase from the license file
	passphrase string

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a Processor for the given configuration and master
// passphrase.
func NewProcessor(cfg *config.Config, passphrase string) *Processor {
	return &Processor{
		cfg:        cfg,
		passphrase: passphrase,
		results:    make(chan Result, len(cfg.Files)),
	}
}

// ProcessFiles concurrently processes all files specified in the
// configuration. Returns the number of successfully processed files, the
// number of errors, and the total output size.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if !result.ok() {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
				}
			}

			if p.cfg.Delete && result.ok() {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		file := file

		group.Go(func() error {
			outPath := p.OutputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing objects: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile streams one object through the cipher into a temp file and
// atomically moves it into place.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	input, err := os.Open(filename) //nolint:gosec // paths come from the resolved file list
	if err != nil {
		return 0, fmt.Errorf("opening input: %w", err)
	}
	defer input.Close()

	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if p.cfg.Decrypt {
		err = fvcrypt.DecryptObjectStream(p.passphrase, input, tc.TmpFile)
	} else {
		err = fvcrypt.EncryptObjectStream(p.passphrase, input, tc.TmpFile)
	}

	if err != nil {
		return 0, err
	}

	const ownerReadWrite = 0o600

	perm := os.FileMode(ownerReadWrite)
	if tc.IsExec {
		perm |= 0o111
	}

	if err = tc.Commit(outPath, perm); err != nil {
		return 0, err
	}

	return fileutil.FinalizeOutput(outPath, p.cfg.Preserve, tc.SrcInfo.ModTime())
}

// OutputPath maps an input path to its output path using the configured
// suffixes.
func (p *Processor) OutputPath(filename string) string {
	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
