// ctcompare.go - Constant-time byte slice comparison.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// ctCompare reports whether a and b are equal, in constant time: it visits
// every byte of both slices via XOR-accumulate-OR, with no early return on
// a length mismatch and no branch on content. Returns 0 iff a and b are
// equal in both length and content, non-zero otherwise.
func ctCompare(a, b []byte) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	var v byte
	for i := 0; i < n; i++ {
		var x, y byte
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		v |= x ^ y
	}

	for l := uint64(len(a) ^ len(b)); l != 0; l >>= 8 {
		v |= byte(l)
	}

	return int(v)
}

// ctNonZeroMask folds v (known to fit in a byte, as ctCompare's result does)
// down to a single bit via an OR-shift tree, then negates it: the result is
// 0xff if v is non-zero and 0x00 if v is zero, computed with no branch on v.
func ctNonZeroMask(v int) byte {
	u := byte(v)
	u |= u >> 4
	u |= u >> 2
	u |= u >> 1
	u &= 1
	return -u
}

// ctSelect returns y if v is 0, and x if v is non-zero, without branching
// on v.
func ctSelect(v, x, y int) int {
	mask := int(int8(ctNonZeroMask(v)))
	return (x & mask) | (y &^ mask)
}

// ctCopy copies src into dst when v is non-zero, in constant time.
func ctCopy(v int, dst, src []byte) {
	mask := ctNonZeroMask(v)
	for i := range dst {
		dst[i] = (dst[i] &^ mask) | (src[i] & mask)
	}
}
