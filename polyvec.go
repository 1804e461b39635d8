// polyvec.go - Vector of Kyber polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

type polyVec struct {
	vec []*poly
}

func newPolyVec(k int) *polyVec {
	v := &polyVec{vec: make([]*poly, k)}
	for i := range v.vec {
		v.vec[i] = &poly{}
	}
	return v
}

// compress serializes a lossily-compressed vector of polynomials at rate d
// bits per coefficient, each element packed independently.
func (v *polyVec) compress(d int) []byte {
	elemSize := kyberN * d / 8
	r := make([]byte, len(v.vec)*elemSize)
	for i, p := range v.vec {
		copy(r[i*elemSize:], p.compress(d))
	}
	return r
}

// decompress is the approximate inverse of compress at rate d bits.
func (v *polyVec) decompress(a []byte, d int) {
	elemSize := kyberN * d / 8
	for i, p := range v.vec {
		p.decompress(a[i*elemSize:(i+1)*elemSize], d)
	}
}

// toBytes serializes a vector of polynomials, 12 bits per coefficient.
func (v *polyVec) toBytes() []byte {
	r := make([]byte, len(v.vec)*polyBytes)
	for i, p := range v.vec {
		copy(r[i*polyBytes:], p.toBytes())
	}
	return r
}

// fromBytes is the inverse of toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polyBytes : (i+1)*polyBytes])
	}
}

// ntt applies the forward NTT to every element of the vector.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every element of the vector.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// add computes v = a + b, element-wise.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// pointwiseAcc computes the NTT-domain dot product of a and b, accumulating
// into p. Every element of this module's NTT-domain values (sampled matrix
// rows, CBD-then-NTT'd secret/noise vectors, and the stored t-hat alike) is
// a standard-domain representation of its NTT coefficients, so a single
// Montgomery multiply between any two of them is off by a factor of R; the
// second operand (b) is corrected into Montgomery form before each term's
// base multiplication, a uniform convention applied at every call site
// instead of a one-off pre-conversion baked into any one vector's storage.
func (p *poly) pointwiseAcc(a, b *polyVec) {
	pointwiseAccRef(p, a, b)
}

func pointwiseAccRef(p *poly, a, b *polyVec) {
	var acc [kyberN]int16
	for i := range a.vec {
		var bMont poly
		for j, c := range b.vec[i].coeffs {
			bMont.coeffs[j] = toMont(c)
		}
		prod := baseMul(&a.vec[i].coeffs, &bMont.coeffs)
		for j := range acc {
			acc[j] += prod[j]
		}
	}
	for j := range acc {
		p.coeffs[j] = barrettReduce(acc[j])
	}
}

// compressedSize returns the compressed, serialized size in bytes at rate d.
func (v *polyVec) compressedSize(d int) int {
	return len(v.vec) * (kyberN * d / 8)
}
