// Package rlwe implements the ring-LWE objects that are common to any
// scheme built over R_Q = Z_Q[x]/(x^n+1): secret/public/relinearization
// keys, key generation, ciphertexts, encryption and decryption. It knows
// nothing about a plaintext modulus or scaling factor — those are
// layered on top by package bfv.
package rlwe

import (
	"fmt"
	"math/big"

	"github.com/MarzioHr/bfv-go/ring"
)

// Parameters is the subset of spec.md's Params record that the generic
// ring-LWE layer needs: ring dimension, ciphertext modulus, the
// relinearization auxiliary modulus, and the two noise standard
// deviations. The plaintext modulus T lives one layer up, in
// bfv.Parameters.
type Parameters struct {
	N          int
	Q          *big.Int
	P          *big.Int
	Sigma      float64
	SigmaRelin float64
}

// Validate checks the §3 constraints this layer is responsible for: N a
// power of two >= 2, Q and P positive, and both standard deviations
// positive. It does not know about T, so it cannot check Q > T; that
// check is done by bfv.NewParameters.
func (p Parameters) Validate() error {
	if p.N < 2 || p.N&(p.N-1) != 0 {
		return fmt.Errorf("rlwe: N=%d is not a power of two >= 2", p.N)
	}
	if p.Q == nil || p.Q.Sign() <= 0 {
		return fmt.Errorf("rlwe: Q must be a positive integer")
	}
	if p.P == nil || p.P.Sign() <= 0 {
		return fmt.Errorf("rlwe: P must be a positive integer")
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("rlwe: sigma must be positive, got %v", p.Sigma)
	}
	if p.SigmaRelin <= 0 {
		return fmt.Errorf("rlwe: sigma' must be positive, got %v", p.SigmaRelin)
	}
	return nil
}

// QP returns Q*P, the relinearization-key modulus.
func (p Parameters) QP() *big.Int {
	return new(big.Int).Mul(p.Q, p.P)
}

// RingQ returns the R_Q ring ciphertexts and public keys live in.
func (p Parameters) RingQ() (*ring.Ring, error) {
	return ring.NewRing(p.N, p.Q)
}

// RingQP returns the R_{QP} ring the relinearization key lives in.
func (p Parameters) RingQP() (*ring.Ring, error) {
	return ring.NewRing(p.N, p.QP())
}
