// kem_vectors_test.go - Kyber KEM sanity vector tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// The full NIST KAT vectors for the three FIPS-203 parameter sets are
// gigantic and, like the round-1 reference's own KAT corpus, are not
// checked into this repository. Scenarios 2 and 3 below exercise
// determinism and implicit-rejection properties that hold regardless of
// whether a published reference value is on hand to compare against.
// Scenario 1 additionally wants a published-reference byte comparison; see
// loadZeroSeedKATPrefixes and DESIGN.md's "Known limitations" entry for why
// that comparison is skipped, rather than faked, in this checkout.

// zeroSeedKATFixture is the shape of the optional testdata fixture carrying
// the published FIPS-203 Kyber-768 all-zero-seed reference prefixes.
type zeroSeedKATFixture struct {
	PKPrefixHex string `json:"pk_prefix_hex"`
	SSPrefixHex string `json:"ss_prefix_hex"`
}

// loadZeroSeedKATPrefixes loads the 4-byte reference pk/ss prefixes for
// scenario 1 from testdata/kyber768_zero_seed_kat.json, mirroring the
// lazy-load-a-fixture-if-present discipline the teacher's own
// loadTestVectors/doTestKEMVectorsPick use for the full KAT corpus: prefer a
// vendored reference value when one exists, and report its absence instead
// of silently treating a missing file as a pass.
func loadZeroSeedKATPrefixes() (pkPrefix, ssPrefix []byte, ok bool) {
	f, err := os.Open(filepath.Join("testdata", "kyber768_zero_seed_kat.json"))
	if err != nil {
		return nil, nil, false
	}
	defer f.Close()

	var fixture zeroSeedKATFixture
	if err := json.NewDecoder(f).Decode(&fixture); err != nil {
		return nil, nil, false
	}

	pkPrefix, err = hex.DecodeString(fixture.PKPrefixHex)
	if err != nil {
		return nil, nil, false
	}
	ssPrefix, err = hex.DecodeString(fixture.SSPrefixHex)
	if err != nil {
		return nil, nil, false
	}

	return pkPrefix, ssPrefix, true
}

// TestKEMSanityVectorZeroSeed covers scenario 1: a K=3 key pair derived
// from an all-zero 64-byte randomness source (32 bytes for d, 32 for z)
// must be a deterministic function of that seed, and its pk/ss prefixes
// must match the published FIPS-203 reference when one is available.
func TestKEMSanityVectorZeroSeed(t *testing.T) {
	require := require.New(t)
	p := Kyber768

	zeroSeed := func() io.Reader { return bytes.NewReader(make([]byte, 2*SymSize)) }

	pk1, sk1, err := p.GenerateKeyPair(zeroSeed())
	require.NoError(err, "GenerateKeyPair() #1")
	pk2, sk2, err := p.GenerateKeyPair(zeroSeed())
	require.NoError(err, "GenerateKeyPair() #2")

	require.Equal(pk1.Bytes(), pk2.Bytes(), "pk must be a deterministic function of the seed")
	require.Equal(sk1.Bytes(), sk2.Bytes(), "sk must be a deterministic function of the seed")

	ct, ss, err := pk1.KEMEncrypt(bytes.NewReader(make([]byte, SymSize)))
	require.NoError(err, "KEMEncrypt()")
	require.Equal(ss, sk1.KEMDecrypt(ct), "round trip through the zero-seeded key pair")

	pkPrefix, ssPrefix, ok := loadZeroSeedKATPrefixes()
	if !ok {
		// No testdata/kyber768_zero_seed_kat.json in this checkout (none
		// shipped in the retrieval pack this module was built from, and
		// none can be generated here without running the Go toolchain or
		// an external NIST KAT generator). Record that the spec's
		// published-reference check did not run, rather than silently
		// passing on the weaker determinism assertions above alone.
		t.Skip("testdata/kyber768_zero_seed_kat.json not present: skipping comparison against the published FIPS-203 reference prefixes (see DESIGN.md)")
	}
	require.Equal(pkPrefix, pk1.Bytes()[:len(pkPrefix)], "pk prefix vs FIPS-203 reference")
	require.Equal(ssPrefix, ss[:len(ssPrefix)], "ss prefix vs FIPS-203 reference")
}

// TestKEMSanityVectorCorruptedCiphertext covers scenario 2: flipping the
// low bit of a ciphertext's first byte and decapsulating must yield a
// shared secret that differs from the one derived from the unmodified
// ciphertext, and that is itself a deterministic function of (ct', sk) via
// the implicit-rejection path (the private key's z substituted for the
// re-encryption check's pre-key on mismatch).
func TestKEMSanityVectorCorruptedCiphertext(t *testing.T) {
	require := require.New(t)
	p := Kyber512

	pk, sk, err := p.GenerateKeyPair(fixedRandomSourceFor(t.Name() + "-kp"))
	require.NoError(err, "GenerateKeyPair()")

	ct, ssCorrect, err := pk.KEMEncrypt(fixedRandomSourceFor(t.Name() + "-enc"))
	require.NoError(err, "KEMEncrypt()")

	ctCorrupt := append([]byte{}, ct...)
	ctCorrupt[0] ^= 0x01

	ssCorrupt1 := sk.KEMDecrypt(ctCorrupt)
	ssCorrupt2 := sk.KEMDecrypt(ctCorrupt)

	require.NotEqual(ssCorrect, ssCorrupt1, "corrupted ciphertext must not reproduce the correct secret")
	require.Equal(ssCorrupt1, ssCorrupt2, "implicit rejection must be deterministic in (ct', sk)")
}

// TestKEMSanityVectorReplayedRandomness covers scenario 3: encapsulating
// twice against the same public key, with the same randomness source
// content, must produce identical (ct, ss) pairs, confirming that neither
// the matrix sampler nor the CBD noise sampler draw on any hidden entropy
// beyond what KEMEncrypt reads from its rng argument.
func TestKEMSanityVectorReplayedRandomness(t *testing.T) {
	require := require.New(t)
	p := Kyber1024

	pk, _, err := p.GenerateKeyPair(fixedRandomSource())
	require.NoError(err, "GenerateKeyPair()")

	ct1, ss1, err := pk.KEMEncrypt(fixedRandomSource())
	require.NoError(err, "KEMEncrypt() #1")
	ct2, ss2, err := pk.KEMEncrypt(fixedRandomSource())
	require.NoError(err, "KEMEncrypt() #2")

	require.Equal(ct1, ct2, "ciphertext must be a deterministic function of (pk, coins)")
	require.Equal(ss1, ss2, "shared secret must be a deterministic function of (pk, coins)")
}

// fixedRandomSource returns a fresh reader over a fixed, non-trivial byte
// stream, long enough to serve as the randomness source for either
// GenerateKeyPair or KEMEncrypt.
func fixedRandomSource() io.Reader {
	seed := sha256.Sum256([]byte("kyber sanity vector replay seed"))
	var stream []byte
	for i := 0; i < 8; i++ {
		seed = sha256.Sum256(seed[:])
		stream = append(stream, seed[:]...)
	}
	return bytes.NewReader(stream)
}

// fixedRandomSourceFor returns a fresh, deterministic random source derived
// from label, for tests that don't care about the specific bytes drawn,
// only that distinctly-labeled calls draw independent coins.
func fixedRandomSourceFor(label string) io.Reader {
	seed := sha256.Sum256([]byte(label))
	var stream []byte
	for i := 0; i < 8; i++ {
		seed = sha256.Sum256(seed[:])
		stream = append(stream, seed[:]...)
	}
	return bytes.NewReader(stream)
}
