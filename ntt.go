// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// nttRef computes the (incomplete) negacyclic NTT of a polynomial in place,
// via 7 Cooley-Tukey butterfly layers (length 128 down to 2). Input is in
// normal order; output is 128 independent 2-coefficient blocks, each living
// in Z_q[X]/(X^2-zeta') for a block-specific zeta'.
func nttRef(p *[kyberN]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := nttZetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := modQMulMont(zeta, p[j+length])
				p[j+length] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// invnttRef computes the inverse of nttRef in place via 7 Gentleman-Sande
// butterfly layers (length 2 up to 128), followed by a final scaling pass.
func invnttRef(p *[kyberN]int16) {
	k := 0
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := nttZetasInv[k]
			k++
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = barrettReduce(t + p[j+length])
				p[j+length] = modQMulMont(zeta, t-p[j+length])
			}
		}
	}

	f := nttZetasInv[127]
	for j := range p {
		p[j] = modQMulMont(p[j], f)
	}
}

// baseMulPair computes the product of (a0 + a1*X) and (b0 + b1*X) modulo
// (X^2 - zeta) in the ring Z_q[X], returning the two coefficients of the
// result, unreduced beyond the Montgomery reduction each multiply performs.
func baseMulPair(a0, a1, b0, b1, zeta int16) (int16, int16) {
	r0 := modQMulMont(a0, b0) + modQMulMont(zeta, modQMulMont(a1, b1))
	r1 := modQMulMont(a0, b1) + modQMulMont(a1, b0)
	return r0, r1
}

// baseMul computes the pointwise product of two NTT-domain polynomials,
// one quadruple (4 coefficients = two degree-2 factor rings) at a time.
func baseMul(a, b *[kyberN]int16) (prod [kyberN]int16) {
	for i := 0; i < kyberN/4; i++ {
		zeta := nttZetas[64+i]

		r0, r1 := baseMulPair(a[4*i], a[4*i+1], b[4*i], b[4*i+1], zeta)
		prod[4*i], prod[4*i+1] = r0, r1

		r2, r3 := baseMulPair(a[4*i+2], a[4*i+3], b[4*i+2], b[4*i+3], -zeta)
		prod[4*i+2], prod[4*i+3] = r2, r3
	}
	return
}
