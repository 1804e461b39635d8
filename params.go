// params.go - Kyber parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	// zetaGen is ζ, the primitive 256th root of unity mod q used to build
	// the NTT zeta tables.
	zetaGen = 17

	// polyBytes is the size, in bytes, of a 12-bit packed polynomial.
	polyBytes = 384

	// invNTTScale is 128^-1 mod q, folded into nttZetasInv[127] below.
	invNTTScale = 3303
)

// nttZetas holds, at index k, the Montgomery-domain value of
// zetaGen^bitrev7(k) mod q. Index 0 is unused; the NTT's outer loop starts
// consuming the table at k=1, matching the layer/group enumeration below.
var nttZetas [128]int16

// nttZetasInv holds, at index k (0..126), the Montgomery-domain modular
// inverse of the nttZetas entry used by the matching (length, start) group
// of the forward NTT. nttZetasInv[127] is not a zeta at all: it is the
// final scaling constant folding together the accumulated factor of
// 128^-1 (one halving per butterfly layer) and the Montgomery R bookkeeping.
var nttZetasInv [128]int16

type nttGroup struct {
	length, start int
}

func forwardGroups() []nttGroup {
	groups := make([]nttGroup, 0, 127)
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			groups = append(groups, nttGroup{length, start})
		}
	}
	return groups
}

func inverseGroups() []nttGroup {
	groups := make([]nttGroup, 0, 127)
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			groups = append(groups, nttGroup{length, start})
		}
	}
	return groups
}

func bitrev7(x int) int {
	var r int
	for i := 0; i < 7; i++ {
		r |= ((x >> uint(i)) & 1) << uint(6-i)
	}
	return r
}

func modpow(base, exp, mod int) int {
	result := 1
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % mod
		}
		exp >>= 1
		base = (base * base) % mod
	}
	return result
}

func montgomeryOf(stdVal int) int16 {
	return int16((stdVal * int(montR)) % kyberQ)
}

func init() {
	var plain [128]int
	for i := 0; i < 128; i++ {
		plain[i] = modpow(zetaGen, bitrev7(i), kyberQ)
	}

	fwd := forwardGroups()
	posToI := make(map[nttGroup]int, len(fwd))
	for idx, g := range fwd {
		i := idx + 1
		posToI[g] = i
		nttZetas[i] = montgomeryOf(plain[i])
	}

	inv := inverseGroups()
	for k, g := range inv {
		i := posToI[g]
		invStd := modpow(plain[i], kyberQ-2, kyberQ)
		nttZetasInv[k] = montgomeryOf(invStd)
	}

	f := (int(montR) * invNTTScale) % kyberQ
	nttZetasInv[127] = int16(f)
}

var (
	// Kyber512 is the Kyber-512 parameter set, which aims to provide security
	// equivalent to AES-128.
	Kyber512 = newParameterSet("Kyber-512", 2, 3, 2, 10, 4)

	// Kyber768 is the Kyber-768 parameter set, which aims to provide security
	// equivalent to AES-192.
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 2, 10, 4)

	// Kyber1024 is the Kyber-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	Kyber1024 = newParameterSet("Kyber-1024", 4, 2, 2, 11, 5)
)

// ParameterSet is a Kyber parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyVecSize int

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank of a given ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.polyVecSize = k * polyBytes

	uSize := k * (kyberN * du / 8)
	vSize := kyberN * dv / 8

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = uSize + vSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize
	p.cipherTextSize = p.indcpaSize

	return &p
}
