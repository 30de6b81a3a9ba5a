// Package safersk128 implements the SAFER SK-128 block cipher.
//
// SAFER SK-128 (Massey, 1995) is the strengthened-key-schedule variant of
// SAFER K-128 with a 64-bit block and a 128-bit key. The implementation is
// output-compatible with libmcrypt's "safer-sk128" and uses the default
// 10 rounds. It satisfies crypto/cipher.Block, so the stdlib block modes
// (ECB-style single block calls, CFB, ...) work on top of it.
package safersk128

import (
	"crypto/cipher"
	"strconv"
)

const (
	// BlockSize is the SAFER block size in bytes.
	BlockSize = 8
	// KeySize is the SK-128 key size in bytes.
	KeySize = 16

	rounds = 10

	// 1 rounds byte + 8 bytes for the initial subkey + 16 per round.
	scheduleSize = 1 + BlockSize*(1+2*rounds)
)

// KeySizeError records an attempt to use a key of invalid length.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "safersk128: invalid key size " + strconv.Itoa(int(k))
}

// expTab[i] = 45^i mod 257 (with 256 stored as 0); logTab is its inverse.
// 45 is a primitive root mod 257, so both are byte permutations.
var (
	expTab [256]byte
	logTab [256]byte
)

func init() {
	e := 1
	for i := range expTab {
		expTab[i] = byte(e)
		logTab[byte(e)] = byte(i)
		e = e * 45 % 257
	}
}

type saferCipher struct {
	schedule [scheduleSize]byte
}

// NewCipher creates and returns a new cipher.Block for the given 16-byte key.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	c := &saferCipher{}
	c.expandKey(key)

	return c, nil
}

func (c *saferCipher) BlockSize() int { return BlockSize }

func rol8(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}

// expandKey runs the strengthened (SK) key schedule over the two key halves.
func (c *saferCipher) expandKey(key []byte) {
	var ka, kb [BlockSize + 1]byte

	k := c.schedule[:]
	pos := 0
	k[pos] = rounds
	pos++

	for j := 0; j < BlockSize; j++ {
		ka[j] = rol8(key[j], 5)
		ka[BlockSize] ^= ka[j]

		kb[j] = key[BlockSize+j]
		kb[BlockSize] ^= kb[j]

		k[pos] = kb[j]
		pos++
	}

	for i := 1; i <= rounds; i++ {
		for j := 0; j < BlockSize+1; j++ {
			ka[j] = rol8(ka[j], 6)
			kb[j] = rol8(kb[j], 6)
		}

		for j := 0; j < BlockSize; j++ {
			k[pos] = ka[(j+2*i-1)%(BlockSize+1)] + expTab[expTab[18*i+j+1]]
			pos++
		}

		for j := 0; j < BlockSize; j++ {
			k[pos] = kb[(j+2*i)%(BlockSize+1)] + expTab[expTab[18*i+j+10]]
			pos++
		}
	}
}

// Encrypt encrypts the 8-byte block in src into dst. Dst and src may overlap.
func (c *saferCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("safersk128: input not full block")
	}

	a, b, cc, d := src[0], src[1], src[2], src[3]
	e, f, g, h := src[4], src[5], src[6], src[7]

	k := c.schedule[:]
	kp := 1

	for r := 0; r < rounds; r++ {
		// Key mixing, then the exp/log S-box layer with the second subkey.
		a ^= k[kp]
		b += k[kp+1]
		cc += k[kp+2]
		d ^= k[kp+3]
		e ^= k[kp+4]
		f += k[kp+5]
		g += k[kp+6]
		h ^= k[kp+7]

		a = expTab[a] + k[kp+8]
		b = logTab[b] ^ k[kp+9]
		cc = logTab[cc] ^ k[kp+10]
		d = expTab[d] + k[kp+11]
		e = expTab[e] + k[kp+12]
		f = logTab[f] ^ k[kp+13]
		g = logTab[g] ^ k[kp+14]
		h = expTab[h] + k[kp+15]

		kp += 16

		// Three layers of the pseudo-Hadamard transform with the
		// "Armenian shuffle" byte permutation between them.
		b += a
		a += b
		d += cc
		cc += d
		f += e
		e += f
		h += g
		g += h

		cc += a
		a += cc
		g += e
		e += g
		d += b
		b += d
		h += f
		f += h

		e += a
		a += e
		f += b
		b += f
		g += cc
		cc += g
		h += d
		d += h

		b, cc, d, e, f, g = e, b, f, cc, g, d
	}

	a ^= k[kp]
	b += k[kp+1]
	cc += k[kp+2]
	d ^= k[kp+3]
	e ^= k[kp+4]
	f += k[kp+5]
	g += k[kp+6]
	h ^= k[kp+7]

	dst[0], dst[1], dst[2], dst[3] = a, b, cc, d
	dst[4], dst[5], dst[6], dst[7] = e, f, g, h
}

// Decrypt decrypts the 8-byte block in src into dst. Dst and src may overlap.
func (c *saferCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("safersk128: input not full block")
	}

	a, b, cc, d := src[0], src[1], src[2], src[3]
	e, f, g, h := src[4], src[5], src[6], src[7]

	k := c.schedule[:]
	kp := BlockSize * (1 + 2*rounds)

	// Undo the output transform.
	h ^= k[kp]
	g -= k[kp-1]
	f -= k[kp-2]
	e ^= k[kp-3]
	d ^= k[kp-4]
	cc -= k[kp-5]
	b -= k[kp-6]
	a ^= k[kp-7]
	kp -= 7

	for r := 0; r < rounds; r++ {
		// Invert the PHT layers in reverse order, then the byte shuffle.
		a -= e
		e -= a
		b -= f
		f -= b
		cc -= g
		g -= cc
		d -= h
		h -= d

		a -= cc
		cc -= a
		e -= g
		g -= e
		b -= d
		d -= b
		f -= h
		h -= f

		a -= b
		b -= a
		cc -= d
		d -= cc
		e -= f
		f -= e
		g -= h
		h -= g

		b, cc, d, e, f, g = cc, e, g, b, d, f

		h -= k[kp-1]
		g ^= k[kp-2]
		f ^= k[kp-3]
		e -= k[kp-4]
		d -= k[kp-5]
		cc ^= k[kp-6]
		b ^= k[kp-7]
		a -= k[kp-8]

		h = logTab[h] ^ k[kp-9]
		g = expTab[g] - k[kp-10]
		f = expTab[f] - k[kp-11]
		e = logTab[e] ^ k[kp-12]
		d = logTab[d] ^ k[kp-13]
		cc = expTab[cc] - k[kp-14]
		b = expTab[b] - k[kp-15]
		a = logTab[a] ^ k[kp-16]

		kp -= 16
	}

	dst[0], dst[1], dst[2], dst[3] = a, b, cc, d
	dst[4], dst[5], dst[6], dst[7] = e, f, g, h
}
