package fvcrypt

import "errors"

var (
	// ErrInvalidLength is returned when block-mode input is not a multiple
	// of the cipher block size. Unaligned data must go through the
	// auto-finishing entry points instead.
	ErrInvalidLength = errors.New("block length is not a multiple of 8")

	// ErrDirectionConflict is returned when a session that has encrypted is
	// asked to decrypt, or vice versa.
	ErrDirectionConflict = errors.New("session direction already committed")

	// ErrInvalidKeyOrCiphertext is returned when a decrypted string is not
	// valid UTF-8. With no authentication in the scheme, this is the only
	// signal of a wrong passphrase or corrupted ciphertext.
	ErrInvalidKeyOrCiphertext = errors.New("decryption produced invalid UTF-8 (wrong key?)")
)
