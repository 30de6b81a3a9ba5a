package fvcrypt

import (
	"crypto/cipher"
	"fmt"

	"github.com/dogtopus/ccppg-ripper/pkg/safersk128"
)

// BlockSize is the unit of the chained-feedback mode.
const BlockSize = safersk128.BlockSize

// direction tracks which way a session has been committed. A session starts
// unset and is locked in by its first block operation; mixing directions
// afterwards is a programming error.
type direction int

const (
	directionUnset direction = iota
	directionEncrypt
	directionDecrypt
)

// Session is one encryption or decryption task: a key, the mutable 8-byte
// feedback accumulator, and the committed direction. Sessions are cheap and
// single-use; create one per string or per object, and do not share one
// across goroutines.
type Session struct {
	block    cipher.Block
	feedback [BlockSize]byte
	dir      direction
}

// NewSession creates a session with an explicit key and IV.
func NewSession(key [16]byte, iv [BlockSize]byte) (*Session, error) {
	block, err := safersk128.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating block cipher: %w", err)
	}

	return &Session{block: block, feedback: iv}, nil
}

// NewSessionFromPassphrase derives key and IV from a passphrase and creates
// a session.
func NewSessionFromPassphrase(passphrase string) (*Session, error) {
	key := DeriveKey(passphrase)

	return NewSession(key, DeriveIV(key))
}

// EncryptBlocks encrypts block-aligned data and advances the feedback
// accumulator. Input length must be a multiple of 8; use EncryptAutoFinish
// for arbitrary lengths.
func (s *Session) EncryptBlocks(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, ErrInvalidLength
	}

	if s.dir == directionDecrypt {
		return nil, ErrDirectionConflict
	}

	s.dir = directionEncrypt

	out := make([]byte, len(data))

	var whitened [BlockSize]byte

	for off := 0; off < len(data); off += BlockSize {
		pt := data[off : off+BlockSize]
		ct := out[off : off+BlockSize]

		for i := range whitened {
			whitened[i] = pt[i] ^ s.feedback[i]
		}

		s.block.Encrypt(ct, whitened[:])

		// Not PCBC: the accumulator absorbs the ciphertext only, never
		// the plaintext. This is what the viewer actually does.
		for i := range s.feedback {
			s.feedback[i] ^= ct[i]
		}
	}

	return out, nil
}

// DecryptBlocks decrypts block-aligned data and advances the feedback
// accumulator. Input length must be a multiple of 8; use DecryptAutoFinish
// for arbitrary lengths.
func (s *Session) DecryptBlocks(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, ErrInvalidLength
	}

	if s.dir == directionEncrypt {
		return nil, ErrDirectionConflict
	}

	s.dir = directionDecrypt

	out := make([]byte, len(data))

	for off := 0; off < len(data); off += BlockSize {
		ct := data[off : off+BlockSize]
		pt := out[off : off+BlockSize]

		s.block.Decrypt(pt, ct)

		for i := range pt {
			pt[i] ^= s.feedback[i]
		}

		// Same accumulator rule as encryption: XOR in the block as it
		// appeared on the wire.
		for i := range s.feedback {
			s.feedback[i] ^= ct[i]
		}
	}

	return out, nil
}

// EncryptFinisher returns a one-shot CFB stream for the trailing sub-block
// tail, keyed on the session's current feedback. It does not touch session
// state.
func (s *Session) EncryptFinisher() cipher.Stream {
	return cipher.NewCFBEncrypter(s.block, s.feedback[:])
}

// DecryptFinisher is the decrypting counterpart of EncryptFinisher.
func (s *Session) DecryptFinisher() cipher.Stream {
	return cipher.NewCFBDecrypter(s.block, s.feedback[:])
}

// EncryptAutoFinish encrypts data of any length: the 8-byte-aligned prefix
// through the block mode, a 1-7 byte remainder through a finisher created
// after the prefix has advanced the feedback.
func (s *Session) EncryptAutoFinish(data []byte) ([]byte, error) {
	aligned := len(data) / BlockSize * BlockSize
	if aligned == len(data) {
		return s.EncryptBlocks(data)
	}

	out, err := s.EncryptBlocks(data[:aligned])
	if err != nil {
		return nil, err
	}

	tail := make([]byte, len(data)-aligned)
	s.EncryptFinisher().XORKeyStream(tail, data[aligned:])

	return append(out, tail...), nil
}

// DecryptAutoFinish decrypts data of any length, mirroring EncryptAutoFinish.
func (s *Session) DecryptAutoFinish(data []byte) ([]byte, error) {
	aligned := len(data) / BlockSize * BlockSize
	if aligned == len(data) {
		return s.DecryptBlocks(data)
	}

	out, err := s.DecryptBlocks(data[:aligned])
	if err != nil {
		return nil, err
	}

	tail := make([]byte, len(data)-aligned)
	s.DecryptFinisher().XORKeyStream(tail, data[aligned:])

	return append(out, tail...), nil
}
