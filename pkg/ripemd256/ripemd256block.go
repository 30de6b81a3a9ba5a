// RIPEMD-256 compression function, following the reference description in
// Dobbertin, Bosselaers and Preneel, "RIPEMD-160: A Strengthened Version of
// RIPEMD" (the 256-bit extension reuses the RIPEMD-128 round structure).

package ripemd256

import "math/bits"

// Message word order for the left and right lines, four rounds of sixteen.
var wordLeft = [64]uint{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
}

var wordRight = [64]uint{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
}

// Per-step left rotate amounts.
var rotLeft = [64]uint{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
}

var rotRight = [64]uint{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
}

var constLeft = [4]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc}

var constRight = [4]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000}

func block(md *digest, p []byte) int {
	n := 0

	var x [16]uint32

	for len(p) >= BlockSize {
		a, b, c, d := md.s[0], md.s[1], md.s[2], md.s[3]
		aa, bb, cc, dd := md.s[4], md.s[5], md.s[6], md.s[7]

		j := 0
		for i := 0; i < 16; i++ {
			x[i] = uint32(p[j]) | uint32(p[j+1])<<8 | uint32(p[j+2])<<16 | uint32(p[j+3])<<24
			j += 4
		}

		for i := 0; i < 64; i++ {
			round := i >> 4

			var f, ff uint32

			// Left line runs f1..f4; right line runs f4..f1.
			switch round {
			case 0:
				f = b ^ c ^ d
				ff = (bb & dd) | (cc &^ dd)
			case 1:
				f = (b & c) | (^b & d)
				ff = (bb | ^cc) ^ dd
			case 2:
				f = (b | ^c) ^ d
				ff = (bb & cc) | (^bb & dd)
			case 3:
				f = (b & d) | (c &^ d)
				ff = bb ^ cc ^ dd
			}

			alpha := bits.RotateLeft32(a+f+x[wordLeft[i]]+constLeft[round], int(rotLeft[i]))
			a, b, c, d = d, alpha, b, c

			alpha = bits.RotateLeft32(aa+ff+x[wordRight[i]]+constRight[round], int(rotRight[i]))
			aa, bb, cc, dd = dd, alpha, bb, cc

			// One register pair is exchanged between the lines at the
			// end of every round.
			switch i {
			case 15:
				a, aa = aa, a
			case 31:
				b, bb = bb, b
			case 47:
				c, cc = cc, c
			case 63:
				d, dd = dd, d
			}
		}

		md.s[0] += a
		md.s[1] += b
		md.s[2] += c
		md.s[3] += d
		md.s[4] += aa
		md.s[5] += bb
		md.s[6] += cc
		md.s[7] += dd

		p = p[BlockSize:]
		n += BlockSize
	}

	return n
}
