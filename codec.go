// codec.go - Bit-packed serialization of polynomial coefficients.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// packBits packs a sequence of values, each holding d significant bits, into
// a byte slice, LSB-first within each byte and across the whole stream. d
// varies by component and parameter set (4, 5, 10, 11 for compressed
// ciphertext coefficients, 12 for the uncompressed coefficient encoding), so
// this replaces per-rate unrolled packing with a single audited routine.
func packBits(vals []uint16, d int) []byte {
	out := make([]byte, (len(vals)*d+7)/8)
	bitPos := 0
	for _, v := range vals {
		for b := 0; b < d; b++ {
			if v&(1<<uint(b)) != 0 {
				out[bitPos/8] |= 1 << uint(bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

// unpackBits is the inverse of packBits, reading count values of d bits each
// from data.
func unpackBits(data []byte, count, d int) []uint16 {
	vals := make([]uint16, count)
	bitPos := 0
	for i := 0; i < count; i++ {
		var v uint16
		for b := 0; b < d; b++ {
			byteIdx := bitPos / 8
			bitIdx := uint(bitPos % 8)
			if data[byteIdx]&(1<<bitIdx) != 0 {
				v |= 1 << uint(b)
			}
			bitPos++
		}
		vals[i] = v
	}
	return vals
}
