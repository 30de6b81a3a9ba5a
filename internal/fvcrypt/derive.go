package fvcrypt

import (
	"crypto/md5" //nolint:gosec // scheme compatibility, not security
	"encoding/hex"

	"github.com/dogtopus/ccppg-ripper/pkg/ripemd256"
	"github.com/dogtopus/ccppg-ripper/pkg/safersk128"
)

// Scheme-wide constants recovered from the deployed FlipViewer application.
// These are interoperability constants, not user secrets.
const (
	// offlineLicensePassphrase encrypts the passphrase field embedded in
	// every offline license file.
	offlineLicensePassphrase = "0b8b6a4650b148a1975331bc2da63f93"

	// passwordPassphraseSuffix is appended to the master passphrase before
	// the double hash that yields the access code passphrase.
	// Corresponding method: FVUtil.getMD5Value().
	passwordPassphraseSuffix = "885d813a749641888o2b414729bb0dcb"
)

// DeriveKey derives the 16-byte cipher key from a passphrase: the first half
// of its RIPEMD-256 digest.
func DeriveKey(passphrase string) [16]byte {
	sum := ripemd256.Sum256([]byte(passphrase))

	var key [16]byte

	copy(key[:], sum[:16])

	return key
}

// DeriveIV derives the 8-byte IV from a key by ECB-encrypting eight 0xFF
// bytes under it.
func DeriveIV(key [16]byte) [BlockSize]byte {
	// A 16-byte key cannot fail.
	block, err := safersk128.NewCipher(key[:])
	if err != nil {
		panic(err)
	}

	var iv [BlockSize]byte

	block.Encrypt(iv[:], []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})

	return iv
}

// DoubleHash hashes data twice over with MD5 (md5(data||data)) and returns
// the lower-case hex digest. The viewer uses this, not RIPEMD-256, to derive
// the access code passphrase; substituting any other digest silently breaks
// access code decryption.
func DoubleHash(data []byte) string {
	h := md5.New() //nolint:gosec // scheme compatibility
	h.Write(data)
	h.Write(data)

	return hex.EncodeToString(h.Sum(nil))
}

// DeriveAccessCodePassphrase derives the passphrase protecting the access
// code field from the license master passphrase.
func DeriveAccessCodePassphrase(masterPassphrase string) string {
	return DoubleHash([]byte(masterPassphrase + passwordPassphraseSuffix))
}
