// doc.go - Kyber godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements ML-KEM (Module-Lattice-Based Key-Encapsulation
// Mechanism) as specified in FIPS 203, the NIST standardization of
// CRYSTALS-Kyber. Security rests on the hardness of the module learning-
// with-errors (LWE) problem.
//
// Three parameter sets are provided: Kyber512, Kyber768, and Kyber1024,
// targeting security equivalent to AES-128, AES-192, and AES-256
// respectively. GenerateKeyPair, PublicKey.KEMEncrypt, and
// PrivateKey.KEMDecrypt implement the IND-CCA2-secure KEM built from the
// underlying IND-CPA public-key encryption scheme via a Fujisaki-Okamoto
// style transform.
//
// Additionally, implementations of the Kyber.AKE and Kyber.UAKE
// authenticated key exchange protocols are included, built atop the KEM,
// for users that need mutually (or unilaterally) authenticated key
// agreement rather than bare encapsulation.
//
// For more information, see https://csrc.nist.gov/pubs/fips/203/final.
package kyber
