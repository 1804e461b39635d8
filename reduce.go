// reduce.go - Montgomery and Barrett reduction.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// qinvNeg is q^-1 mod 2^16, represented as a signed 16-bit two's
	// complement value (62209 unsigned).
	qinvNeg int16 = -3327
	rlog          = 16

	// montR is R = 2^16 mod q, the Montgomery constant.
	montR int16 = 2285

	// toMontMultiplier is R^2 mod q. Multiplying a standard-domain value
	// by this and reducing converts it into Montgomery form.
	toMontMultiplier int32 = 1353

	// barrettV is floor(2^26/q + 1/2), the Barrett reduction constant.
	barrettV int32 = 20159
)

// montgomeryReduce computes a 16-bit integer congruent to a * R^-1 mod q,
// for a 32-bit signed input a, where R = 2^16. The result lies in (-q, q).
func montgomeryReduce(a int32) int16 {
	u := int16(a) * qinvNeg
	t := int32(u) * kyberQ
	t = a - t
	return int16(t >> rlog)
}

// modQMulMont multiplies x and y and reduces the product via Montgomery
// reduction; x is expected in standard domain and y in Montgomery domain
// (or vice versa) so that the result is a standard-domain product mod q.
func modQMulMont(x, y int16) int16 {
	return montgomeryReduce(int32(x) * int32(y))
}

// toMont converts a standard-domain coefficient into Montgomery form,
// i.e. returns a value congruent to x * R mod q, in (-q, q).
func toMont(x int16) int16 {
	return montgomeryReduce(toMontMultiplier * int32(x))
}

// barrettReduce computes a 16-bit integer congruent to a mod q, for a
// 16-bit signed input a, with the result in (-q, q).
func barrettReduce(a int16) int16 {
	t := int16((barrettV*int32(a) + (1 << 25)) >> 26)
	return a - t*kyberQ
}

// conditionalSubtractQ brings a coefficient known to lie in (-q, q) into
// the canonical [0, q) range by adding q when the value is negative.
func conditionalSubtractQ(a int16) int16 {
	a += (a >> 15) & kyberQ
	return a
}
