// Package bls implements BLS (Boneh-Lynn-Shacham) signatures over the
// BLS12-381 curve pair: single signatures, multi-signature aggregation, and
// (t, n)-threshold signing with Lagrange reconstruction.
//
// Public keys are points of G1 (48 bytes compressed), signatures points of G2
// (96 bytes compressed). Messages are hashed to G2 with the RFC 9380
// BLS12381G2_XMD:SHA-256_SSWU_RO suite under a caller-supplied domain
// separation tag; an empty tag is rejected, never defaulted.
//
// All operations are pure functions over immutable inputs and safe for
// concurrent use.
package bls
