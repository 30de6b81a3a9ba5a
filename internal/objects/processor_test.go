package objects

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/dogtopus/ccppg-ripper/internal/config"
	"github.com/dogtopus/ccppg-ripper/internal/fvcrypt"
)

func testConfig(files ...string) *config.Config {
	return &config.Config{
		License:  "unused",
		Parallel: 2,
		Quiet:    true,
		Suffixes: config.Suffixes{Encrypt: ".enc"},
		Files:    files,
	}
}

func TestProcessFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// A mix of short (fully protected) and long (partially protected)
	// objects.
	originals := map[string][]byte{
		"page0001.swf": make([]byte, 100),
		"page0002.swf": make([]byte, fvcrypt.ProtectedPrefixSize+4096),
		"page0003.swf": make([]byte, fvcrypt.ProtectedPrefixSize),
	}

	var encryptIn []string

	for name, data := range originals {
		if _, err := rand.Read(data); err != nil {
			t.Fatal(err)
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatal(err)
		}

		encryptIn = append(encryptIn, path)
	}

	cfg := testConfig(encryptIn...)

	proc := NewProcessor(cfg, "master")

	processed, errored, _, err := proc.ProcessFiles()
	if err != nil {
		t.Fatal(err)
	}

	if processed != len(originals) || errored != 0 {
		t.Fatalf("processed=%d errored=%d", processed, errored)
	}

	var decryptIn []string

	for name, data := range originals {
		encPath := filepath.Join(dir, name+".enc")

		encData, err := os.ReadFile(encPath)
		if err != nil {
			t.Fatal(err)
		}

		if bytes.Equal(encData, data) {
			t.Errorf("%s: not encrypted", name)
		}

		decryptIn = append(decryptIn, encPath)
	}

	// Decrypt into a sibling suffix so the originals survive for
	// comparison.
	decCfg := testConfig(decryptIn...)
	decCfg.Decrypt = true
	decCfg.Suffixes.Decrypt = ".dec"

	decProc := NewProcessor(decCfg, "master")

	processed, errored, _, err = decProc.ProcessFiles()
	if err != nil {
		t.Fatal(err)
	}

	if processed != len(originals) || errored != 0 {
		t.Fatalf("processed=%d errored=%d", processed, errored)
	}

	for name, data := range originals {
		got, err := os.ReadFile(filepath.Join(dir, name+".dec"))
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(got, data) {
			t.Errorf("%s: round trip mismatch", name)
		}
	}
}

func TestProcessFilesMissingInput(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.swf"))

	proc := NewProcessor(cfg, "master")

	_, errored, _, err := proc.ProcessFiles()
	if err == nil {
		t.Error("missing input did not fail")
	}

	if errored != 1 {
		t.Errorf("errored = %d, want 1", errored)
	}
}

func TestProcessFilesDelete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "obj.swf")

	if err := os.WriteFile(path, []byte("object data"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(path)
	cfg.Delete = true

	proc := NewProcessor(cfg, "master")

	if _, _, _, err := proc.ProcessFiles(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("input file not deleted")
	}

	if _, err := os.Stat(path + ".enc"); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		decrypt bool
		in      string
		want    string
	}{
		{"encrypt appends suffix", false, "book/page.swf", "book/page.swf.enc"},
		{"decrypt strips suffix", true, "book/page.swf.enc", "book/page.swf"},
		{"decrypt leaves other names", true, "book/page.swf", "book/page.swf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(tt.in)
			cfg.Decrypt = tt.decrypt

			proc := NewProcessor(cfg, "master")

			if got := proc.OutputPath(tt.in); got != filepath.FromSlash(tt.want) {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
