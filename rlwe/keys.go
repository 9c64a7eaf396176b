package rlwe

import "github.com/MarzioHr/bfv-go/ring"

// SecretKey is a ternary polynomial s in R (spec.md §3). It never leaves
// the decryptor's process in the reference design; this type places no
// restriction on that, the caller is responsible for not exporting it
// carelessly.
type SecretKey struct {
	Value ring.Poly
}

// PublicKey is the pair (pk0, pk1) of R_Q polynomials satisfying
// pk0 + pk1*s ~= 0 (mod Q, mod x^n+1), up to the noise drawn during
// generation.
type PublicKey struct {
	Value [2]ring.Poly
}

// RelinearizationKey is the pair (rlk0, rlk1) of R_{QP} polynomials
// satisfying rlk0 + rlk1*s ~= P*s^2 (mod QP, mod x^n+1). It is bound to
// the secret key it was generated from; using it with ciphertexts from
// a different key is undefined (spec.md §3 invariants).
type RelinearizationKey struct {
	Value [2]ring.Poly
}

// Ciphertext is the pair (c0, c1) of R_Q polynomials a BFV encryption or
// homomorphic operation returns. A ciphertext is always returned at
// degree 1: any degree-2 intermediate produced during multiplication is
// relinearized before being handed back to the caller (spec.md §3).
type Ciphertext struct {
	Value [2]ring.Poly
}
