package fvcrypt

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ProtectedPrefixSize is the number of leading bytes of an object stream
// that are encrypted. Everything past this offset is stored as plaintext.
const ProtectedPrefixSize = 8192

const copyBufferSize = 32 * 1024

//nolint:gochecknoglobals
var copyBufferPool = sync.Pool{
	New: func() any {
		return make([]byte, copyBufferSize)
	},
}

// DecryptObjectStream decrypts the protected prefix of an object stream from
// r into w and passes any remaining bytes through unchanged. Each call runs
// on a fresh session.
//
// A wrong passphrase is not detectable here; the output is simply garbage.
func DecryptObjectStream(passphrase string, r io.Reader, w io.Writer) error {
	return cryptObjectStream(passphrase, r, w, (*Session).DecryptAutoFinish)
}

// EncryptObjectStream is the inverse of DecryptObjectStream: it encrypts the
// leading ProtectedPrefixSize bytes and copies the remainder verbatim.
func EncryptObjectStream(passphrase string, r io.Reader, w io.Writer) error {
	return cryptObjectStream(passphrase, r, w, (*Session).EncryptAutoFinish)
}

func cryptObjectStream(
	passphrase string,
	r io.Reader,
	w io.Writer,
	finish func(*Session, []byte) ([]byte, error),
) error {
	session, err := NewSessionFromPassphrase(passphrase)
	if err != nil {
		return err
	}

	prefix := make([]byte, ProtectedPrefixSize)

	n, err := io.ReadFull(r, prefix)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("reading protected prefix: %w", err)
	}

	out, err := finish(session, prefix[:n])
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing protected prefix: %w", err)
	}

	if n < ProtectedPrefixSize {
		// Short object: fully protected, fully consumed.
		return nil
	}

	buf, _ := copyBufferPool.Get().([]byte)
	defer copyBufferPool.Put(buf) //nolint:staticcheck

	if _, err := io.CopyBuffer(w, r, buf); err != nil {
		return fmt.Errorf("copying plaintext remainder: %w", err)
	}

	return nil
}
