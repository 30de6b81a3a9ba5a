// Package ripemd256 implements the RIPEMD-256 hash algorithm.
//
// RIPEMD-256 is the double-width variant of RIPEMD-128: two parallel
// four-word lines with a register swap after each of the four rounds.
// It offers no more preimage resistance than RIPEMD-128; it exists here
// because the FlipViewer protection scheme derives cipher keys from its
// 32-byte digests and nothing in the Go ecosystem ships it.
package ripemd256

import "hash"

// Size is the size of a RIPEMD-256 checksum in bytes.
const Size = 32

// BlockSize is the block size of RIPEMD-256 in bytes.
const BlockSize = 64

type digest struct {
	s   [8]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

func (d *digest) Reset() {
	d.s = [8]uint32{
		0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476,
		0x76543210, 0xfedcba98, 0x89abcdef, 0x01234567,
	}
	d.nx = 0
	d.len = 0
}

// New returns a new hash.Hash computing the RIPEMD-256 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()

	return d
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)

	if d.nx > 0 {
		n := len(p)
		if n > BlockSize-d.nx {
			n = BlockSize - d.nx
		}

		copy(d.x[d.nx:], p[:n])
		d.nx += n

		if d.nx == BlockSize {
			block(d, d.x[:])
			d.nx = 0
		}

		p = p[n:]
	}

	n := block(d, p)
	p = p[n:]

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return nn, nil
}

func (d *digest) Sum(in []byte) []byte {
	// Make a copy of d so that the caller can keep writing and summing.
	d0 := *d
	d = &d0

	// Padding: a 1 bit, zeros, and the bit length in little-endian.
	tc := d.len

	var tmp [64]byte

	tmp[0] = 0x80

	if tc%64 < 56 {
		d.Write(tmp[0 : 56-tc%64])
	} else {
		d.Write(tmp[0 : 64+56-tc%64])
	}

	tc <<= 3
	for i := uint(0); i < 8; i++ {
		tmp[i] = byte(tc >> (8 * i))
	}

	d.Write(tmp[0:8])

	var digest [Size]byte
	for i, s := range d.s {
		digest[i*4] = byte(s)
		digest[i*4+1] = byte(s >> 8)
		digest[i*4+2] = byte(s >> 16)
		digest[i*4+3] = byte(s >> 24)
	}

	return append(in, digest[:]...)
}

// Sum256 returns the RIPEMD-256 checksum of the data.
func Sum256(data []byte) [Size]byte {
	d := new(digest)
	d.Reset()
	d.Write(data)

	var out [Size]byte
	copy(out[:], d.Sum(nil))

	return out
}
