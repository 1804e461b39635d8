// sampler.go - Uniform rejection sampling of the public matrix.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// genMatrix deterministically generates matrix A (or its transpose) from a
// seed. Entries are polynomials that look uniformly random over Z_q,
// produced by rejection sampling pairs of 12-bit candidates out of each
// 3-byte group of a SHAKE-128 stream: a candidate is accepted iff it is
// less than q, and the stream is incrementally re-squeezed one block at a
// time on exhaustion.
func genMatrix(a []polyVec, seed []byte, transposed bool) {
	const (
		shake128Rate = 168 // xof.BlockSize() is not a constant.
		maxBlocks    = 4
	)
	var buf [shake128Rate * maxBlocks]byte

	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], seed)

	xof := sha3.NewShake128()

	for i, v := range a {
		for j, p := range v.vec {
			if transposed {
				extSeed[SymSize] = byte(i)
				extSeed[SymSize+1] = byte(j)
			} else {
				extSeed[SymSize] = byte(j)
				extSeed[SymSize+1] = byte(i)
			}

			xof.Write(extSeed[:])
			xof.Read(buf[:])

			ctr, pos, maxPos := 0, 0, len(buf)
			for ctr < kyberN {
				if maxPos-pos < 3 {
					xof.Read(buf[:shake128Rate])
					pos, maxPos = 0, shake128Rate
					continue
				}

				b0, b1, b2 := uint16(buf[pos]), uint16(buf[pos+1]), uint16(buf[pos+2])
				d1 := b0 | ((b1 & 0xf) << 8)
				d2 := (b1 >> 4) | (b2 << 4)
				pos += 3

				if d1 < kyberQ {
					p.coeffs[ctr] = int16(d1)
					ctr++
				}
				if ctr < kyberN && d2 < kyberQ {
					p.coeffs[ctr] = int16(d2)
					ctr++
				}
			}

			xof.Reset()
		}
	}
}
