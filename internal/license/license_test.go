package license

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dogtopus/ccppg-ripper/internal/fvcrypt"
)

// writeLicense builds a license file protecting the given passphrase and
// access code the way the original scheme does.
func writeLicense(t *testing.T, masterPassphrase, accessCode string) string {
	t.Helper()

	encryptedPassphrase, err := fvcrypt.EncryptOfflineLicensePassphrase(masterPassphrase)
	if err != nil {
		t.Fatal(err)
	}

	encryptedCode, err := fvcrypt.EncryptAccessCode(masterPassphrase, accessCode)
	if err != nil {
		t.Fatal(err)
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<package>
  <certificate>
    <security>
      <encryption content="%s"/>
      <password content="%s"/>
    </security>
  </certificate>
</package>
`, encryptedPassphrase, encryptedCode)

	path := filepath.Join(t.TempDir(), "license.xml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestMasterPassphrase(t *testing.T) {
	path := writeLicense(t, "book-master-passphrase", "0000")

	got, err := MasterPassphrase(path)
	if err != nil {
		t.Fatal(err)
	}

	if got != "book-master-passphrase" {
		t.Errorf("got %q, want %q", got, "book-master-passphrase")
	}
}

func TestAccessCode(t *testing.T) {
	path := writeLicense(t, "book-master-passphrase", "8666")

	got, err := AccessCode(path)
	if err != nil {
		t.Fatal(err)
	}

	if got != "8666" {
		t.Errorf("got %q, want %q", got, "8666")
	}
}

func TestMissingElements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "license.xml")
	if err := os.WriteFile(path, []byte(`<package><certificate/></package>`), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := MasterPassphrase(path); err == nil {
		t.Error("license without security elements accepted")
	}
}

func TestDuplicateEncryptionElements(t *testing.T) {
	content := `<package><certificate><security>
<encryption content="00"/><encryption content="00"/>
</security></certificate></package>`

	path := filepath.Join(t.TempDir(), "license.xml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := MasterPassphrase(path); err == nil {
		t.Error("license with duplicated encryption elements accepted")
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := MasterPassphrase(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Error("missing license file accepted")
	}
}
