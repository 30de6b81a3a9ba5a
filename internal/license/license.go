// Package license reads FlipViewer offline license files.
//
// A license is an XML document carrying, among other things, the encrypted
// per-book master passphrase (under a fixed scheme-wide passphrase) and the
// encrypted access code (under a passphrase chained off the master one).
package license

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/dogtopus/ccppg-ripper/internal/fvcrypt"
)

const (
	encryptionPath = "/package/certificate/security/encryption"
	passwordPath   = "/package/certificate/security/password"
)

var (
	// ErrMalformedLicense is returned when the expected security elements
	// are missing, duplicated, or empty.
	ErrMalformedLicense = errors.New("malformed license file")
)

// License is a parsed license document.
type License struct {
	doc *etree.Document
}

// Load parses the license file at path.
func Load(path string) (*License, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading license %q: %w", path, err)
	}

	return &License{doc: doc}, nil
}

// securityContent returns the content attribute of the single element at the
// given path.
func (l *License) securityContent(path string) (string, error) {
	elements := l.doc.FindElements(path)
	if len(elements) != 1 {
		return "", fmt.Errorf("%w: want exactly one %s element, found %d",
			ErrMalformedLicense, path, len(elements))
	}

	content := elements[0].SelectAttrValue("content", "")
	if content == "" {
		return "", fmt.Errorf("%w: %s element has no content attribute",
			ErrMalformedLicense, path)
	}

	return content, nil
}

// MasterPassphrase decrypts and returns the book's master passphrase from
// the encryption element.
func (l *License) MasterPassphrase() (string, error) {
	encrypted, err := l.securityContent(encryptionPath)
	if err != nil {
		return "", err
	}

	passphrase, err := fvcrypt.DecryptOfflineLicensePassphrase(encrypted)
	if err != nil {
		return "", fmt.Errorf("decrypting master passphrase: %w", err)
	}

	return passphrase, nil
}

// AccessCode decrypts and returns the book's access code from the password
// element. It needs the master passphrase first, since the access code is
// protected under a passphrase derived from it.
func (l *License) AccessCode() (string, error) {
	masterPassphrase, err := l.MasterPassphrase()
	if err != nil {
		return "", err
	}

	encrypted, err := l.securityContent(passwordPath)
	if err != nil {
		return "", err
	}

	accessCode, err := fvcrypt.DecryptAccessCode(masterPassphrase, encrypted)
	if err != nil {
		return "", fmt.Errorf("decrypting access code: %w", err)
	}

	return accessCode, nil
}

// MasterPassphrase is a convenience wrapper loading the license at path and
// returning its master passphrase.
func MasterPassphrase(path string) (string, error) {
	l, err := Load(path)
	if err != nil {
		return "", err
	}

	return l.MasterPassphrase()
}

// AccessCode is a convenience wrapper loading the license at path and
// returning its access code.
func AccessCode(path string) (string, error) {
	l, err := Load(path)
	if err != nil {
		return "", err
	}

	return l.AccessCode()
}
