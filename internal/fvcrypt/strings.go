package fvcrypt

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DecryptString unwraps hex-over-base64 string ciphertext and decrypts it as
// UTF-8 text on a fresh session. Hex input is accepted in either case.
func DecryptString(passphrase, wrapped string) (string, error) {
	b64Text, err := hex.DecodeString(wrapped)
	if err != nil {
		return "", fmt.Errorf("unwrapping hex layer: %w", err)
	}

	ct, err := base64.StdEncoding.DecodeString(string(b64Text))
	if err != nil {
		return "", fmt.Errorf("unwrapping base64 layer: %w", err)
	}

	session, err := NewSessionFromPassphrase(passphrase)
	if err != nil {
		return "", err
	}

	pt, err := session.DecryptAutoFinish(ct)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(pt) {
		return "", ErrInvalidKeyOrCiphertext
	}

	return string(pt), nil
}

// EncryptString encrypts UTF-8 text on a fresh session and wraps the result
// in base64, then upper-case hex over the base64 text itself.
func EncryptString(passphrase, text string) (string, error) {
	session, err := NewSessionFromPassphrase(passphrase)
	if err != nil {
		return "", err
	}

	ct, err := session.EncryptAutoFinish([]byte(text))
	if err != nil {
		return "", err
	}

	b64Text := base64.StdEncoding.EncodeToString(ct)

	return strings.ToUpper(hex.EncodeToString([]byte(b64Text))), nil
}

// DecryptOfflineLicensePassphrase recovers a book's master passphrase from
// the encrypted passphrase field of its license file. The field is protected
// under a fixed scheme-wide passphrase, not a book-specific one.
func DecryptOfflineLicensePassphrase(encryptedPassphrase string) (string, error) {
	return DecryptString(offlineLicensePassphrase, encryptedPassphrase)
}

// EncryptOfflineLicensePassphrase is the inverse of
// DecryptOfflineLicensePassphrase.
func EncryptOfflineLicensePassphrase(passphrase string) (string, error) {
	return EncryptString(offlineLicensePassphrase, passphrase)
}

// DecryptAccessCode decrypts the access code field using the passphrase
// chained off the master passphrase.
func DecryptAccessCode(masterPassphrase, encryptedAccessCode string) (string, error) {
	return DecryptString(DeriveAccessCodePassphrase(masterPassphrase), encryptedAccessCode)
}

// EncryptAccessCode is the inverse of DecryptAccessCode.
func EncryptAccessCode(masterPassphrase, accessCode string) (string, error) {
	return EncryptString(DeriveAccessCodePassphrase(masterPassphrase), accessCode)
}
