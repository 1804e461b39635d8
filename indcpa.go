// indcpa.go - Kyber IND-CPA encryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// packPublicKey serializes the public key as the concatenation of the
// uncompressed (12-bit packed) t-hat vector and the public seed used to
// generate the matrix A. Unlike the round-1 scheme, t-hat is stored
// directly in NTT-domain form: there is no decompression loss and no
// invntt/ntt round trip between key generation and encryption.
func packPublicKey(r []byte, tHat *polyVec, seed []byte) {
	copy(r, tHat.toBytes())
	copy(r[tHat.toBytesSize():], seed[:SymSize])
}

// unpackPublicKey is the inverse of packPublicKey.
func unpackPublicKey(tHat *polyVec, seed, packedPk []byte) {
	off := tHat.toBytesSize()
	tHat.fromBytes(packedPk[:off])
	copy(seed, packedPk[off:off+SymSize])
}

// packCiphertext serializes the ciphertext as the concatenation of the
// compressed u vector (rate du) and the compressed v polynomial (rate dv).
func packCiphertext(r []byte, u *polyVec, v *poly, du, dv int) {
	uBytes := u.compress(du)
	copy(r, uBytes)
	copy(r[len(uBytes):], v.compress(dv))
}

// unpackCiphertext is the inverse of packCiphertext.
func unpackCiphertext(u *polyVec, v *poly, c []byte, du, dv int) {
	uSize := u.compressedSize(du)
	u.decompress(c[:uSize], du)
	v.decompress(c[uSize:], dv)
}

// packSecretKey serializes the secret key (the 12-bit packed s vector).
func packSecretKey(r []byte, sk *polyVec) {
	copy(r, sk.toBytes())
}

// unpackSecretKey is the inverse of packSecretKey.
func unpackSecretKey(sk *polyVec, packedSk []byte) {
	sk.fromBytes(packedSk)
}

func (v *polyVec) toBytesSize() int {
	return len(v.vec) * polyBytes
}

type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) toBytes() []byte {
	return pk.packed
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = sha3.Sum256(b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// indcpaKeyPair generates a public and private key for the CPA-secure
// public-key encryption scheme underlying Kyber.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	buf := make([]byte, SymSize+SymSize)
	if _, err := io.ReadFull(rng, buf[:SymSize]); err != nil {
		return nil, nil, err
	}

	sk := &indcpaSecretKey{
		packed: make([]byte, p.indcpaSecretKeySize),
	}
	pk := &indcpaPublicKey{
		packed: make([]byte, p.indcpaPublicKeySize),
	}

	h := sha3.New512()
	h.Write(buf[:SymSize])
	buf = buf[:0] // Reuse the backing store.
	buf = h.Sum(buf)
	publicSeed, noiseSeed := buf[:SymSize], buf[SymSize:]

	a := p.allocMatrix()
	genMatrix(a, publicSeed, false)

	var nonce byte
	skpv := p.allocPolyVec()
	for _, pv := range skpv.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}

	skpv.ntt()

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}

	e.ntt()

	// matrix-vector multiplication, t-hat = A-hat . s-hat + e-hat, kept in
	// NTT domain throughout (no invntt before storage).
	tHat := p.allocPolyVec()
	for i, pv := range tHat.vec {
		pv.pointwiseAcc(&skpv, &a[i])
	}
	tHat.add(&tHat, &e)

	packSecretKey(sk.packed, &skpv)
	packPublicKey(pk.packed, &tHat, publicSeed)
	pk.h = sha3.Sum256(pk.packed)

	return pk, sk, nil
}

// indcpaEncrypt is the encryption function of the CPA-secure public-key
// encryption scheme underlying Kyber.
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var k, v, epp poly
	var seed [SymSize]byte

	tHat := p.allocPolyVec()
	unpackPublicKey(&tHat, seed[:], pk.packed)

	k.fromMsg(m)

	at := p.allocMatrix()
	genMatrix(at, seed[:], true)

	var nonce byte
	sp := p.allocPolyVec()
	for _, pv := range sp.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}

	sp.ntt()

	ep := p.allocPolyVec()
	for _, pv := range ep.vec {
		pv.getNoise(coins, nonce, p.eta2)
		nonce++
	}

	// matrix-vector multiplication
	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.pointwiseAcc(&sp, &at[i])
	}

	bp.invntt()
	bp.add(&bp, &ep)

	v.pointwiseAcc(&sp, &tHat)
	v.invntt()

	epp.getNoise(coins, nonce, p.eta2) // Don't need to increment nonce.

	v.add(&v, &epp)
	v.add(&v, &k)

	packCiphertext(c, &bp, &v, p.du, p.dv)
}

// indcpaDecrypt is the decryption function of the CPA-secure public-key
// encryption scheme underlying Kyber.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	var v, mp poly

	skpv, bp := p.allocPolyVec(), p.allocPolyVec()
	unpackCiphertext(&bp, &v, c, p.du, p.dv)
	unpackSecretKey(&skpv, sk.packed)

	bp.ntt()

	mp.pointwiseAcc(&skpv, &bp)
	mp.invntt()

	mp.sub(&v, &mp)

	mp.toMsg(m)
}

func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, 0, p.k)
	for i := 0; i < p.k; i++ {
		m = append(m, p.allocPolyVec())
	}
	return m
}

func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, 0, p.k)
	for i := 0; i < p.k; i++ {
		vec = append(vec, new(poly))
	}

	return polyVec{vec}
}
