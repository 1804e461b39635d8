// poly.go - Kyber polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// Elements of R_q = Z_q[X]/(X^n + 1). Represents polynomial coeffs[0] +
// X*coeffs[1] + X^2*coeffs[2] + ... + X^{n-1}*coeffs[n-1].
type poly struct {
	coeffs [kyberN]int16
}

// reduce brings every coefficient into (-q, q) via a Barrett reduction.
func (p *poly) reduce() {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(p.coeffs[i])
	}
}

// normalize brings every coefficient into the canonical [0, q) range.
// Callers must have already reduced (or otherwise bounded) the polynomial.
func (p *poly) normalize() {
	for i := range p.coeffs {
		p.coeffs[i] = conditionalSubtractQ(barrettReduce(p.coeffs[i]))
	}
}

// compress serializes a lossily-compressed polynomial at rate d bits per
// coefficient.
func (p *poly) compress(d int) []byte {
	p.normalize()
	vals := make([]uint16, kyberN)
	scale := uint32(1) << uint(d)
	for i, c := range p.coeffs {
		vals[i] = uint16((uint32(c)*scale + kyberQ/2) / kyberQ & (scale - 1))
	}
	return packBits(vals, d)
}

// decompress is the approximate inverse of compress at rate d bits.
func (p *poly) decompress(a []byte, d int) {
	vals := unpackBits(a, kyberN, d)
	scale := uint32(1) << uint(d)
	for i, v := range vals {
		p.coeffs[i] = int16((uint32(v)*kyberQ + scale/2) >> uint(d))
	}
}

// toBytes serializes a polynomial's coefficients, 12 bits each.
func (p *poly) toBytes() []byte {
	p.normalize()
	vals := make([]uint16, kyberN)
	for i, c := range p.coeffs {
		vals[i] = uint16(c)
	}
	return packBits(vals, 12)
}

// fromBytes is the inverse of toBytes.
func (p *poly) fromBytes(a []byte) {
	vals := unpackBits(a, kyberN, 12)
	for i, v := range vals {
		p.coeffs[i] = int16(v)
	}
}

// fromMsg converts a 32-byte message to a polynomial.
func (p *poly) fromMsg(msg []byte) {
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			mask := -int16((v >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & int16((kyberQ+1)/2)
		}
	}
}

// toMsg converts a polynomial to a 32-byte message.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			c := conditionalSubtractQ(barrettReduce(p.coeffs[8*i+j]))
			t := ((uint32(c) << 1) + kyberQ/2) / kyberQ & 1
			msg[i] |= byte(t << uint(j))
		}
	}
}

// getNoise samples a polynomial deterministically from a seed and a nonce,
// with coefficients distributed according to a centered binomial
// distribution with parameter eta, via a SHAKE-256 PRF.
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, seed...)
	extSeed = append(extSeed, nonce)

	buf := make([]byte, eta*kyberN/4)
	sha3.ShakeSum256(buf, extSeed)

	cbdRef(p, buf, eta)
}

// ntt computes the negacyclic NTT of a polynomial in place; input assumed in
// normal order, output in (incomplete) NTT-domain representation.
func (p *poly) ntt() {
	nttRef(&p.coeffs)
}

// invntt computes the inverse NTT of a polynomial in place.
func (p *poly) invntt() {
	invnttRef(&p.coeffs)
}

// add computes p = a + b, each coefficient reduced via Barrett.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(a.coeffs[i] + b.coeffs[i])
	}
}

// sub computes p = a - b, each coefficient reduced via Barrett.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(a.coeffs[i] - b.coeffs[i])
	}
}
