// Package bfv implements the Brakerski-Fan-Vercauteren homomorphic
// encryption scheme over the negacyclic ring R = Z[x]/(x^n+1): key
// generation, encryption, decryption, and homomorphic evaluation of
// addition and multiplication with relinearization. It layers plaintext
// encoding and the Delta-scaling discipline on top of package rlwe's
// generic ring-LWE primitives.
package bfv

import (
	"math/big"

	"github.com/MarzioHr/bfv-go/ring"
	"github.com/MarzioHr/bfv-go/rlwe"
)

// Parameters is spec.md's Params record: the ring dimension, ciphertext
// modulus, plaintext modulus, relinearization auxiliary modulus, and the
// two noise standard deviations. A Parameters value is immutable once
// constructed by NewParameters.
type Parameters struct {
	n          int
	q          *big.Int
	t          *big.Int
	p          *big.Int
	sigma      float64
	sigmaRelin float64
}

// NewParameters validates its arguments against spec.md §3's
// constraints and returns an immutable Parameters value, or a
// *ParameterError describing the first violation found.
func NewParameters(n int, q, t, p *big.Int, sigma, sigmaRelin float64) (Parameters, error) {
	if n < 2 || n&(n-1) != 0 {
		return Parameters{}, newParameterError("N=%d is not a power of two >= 2", n)
	}
	if q == nil || q.Sign() <= 0 {
		return Parameters{}, newParameterError("Q must be a positive integer")
	}
	if t == nil || t.Sign() <= 0 {
		return Parameters{}, newParameterError("T must be a positive integer")
	}
	if q.Cmp(t) <= 0 {
		return Parameters{}, newParameterError("Q=%s must be strictly greater than T=%s", q, t)
	}
	if p == nil || p.Sign() <= 0 {
		return Parameters{}, newParameterError("P must be a positive integer")
	}
	if sigma <= 0 {
		return Parameters{}, newParameterError("sigma must be positive, got %v", sigma)
	}
	if sigmaRelin <= 0 {
		return Parameters{}, newParameterError("sigma' must be positive, got %v", sigmaRelin)
	}
	return Parameters{
		n:          n,
		q:          new(big.Int).Set(q),
		t:          new(big.Int).Set(t),
		p:          new(big.Int).Set(p),
		sigma:      sigma,
		sigmaRelin: sigmaRelin,
	}, nil
}

// N returns the ring dimension.
func (p Parameters) N() int { return p.n }

// Q returns the ciphertext coefficient modulus.
func (p Parameters) Q() *big.Int { return new(big.Int).Set(p.q) }

// T returns the plaintext coefficient modulus.
func (p Parameters) T() *big.Int { return new(big.Int).Set(p.t) }

// P returns the relinearization auxiliary modulus.
func (p Parameters) P() *big.Int { return new(big.Int).Set(p.p) }

// Sigma returns the standard deviation of the encryption error
// distribution.
func (p Parameters) Sigma() float64 { return p.sigma }

// SigmaRelin returns the standard deviation of the relinearization-key
// error distribution.
func (p Parameters) SigmaRelin() float64 { return p.sigmaRelin }

// Delta computes Delta = floor(Q/T), the scaling factor, by integer
// floor division. spec.md §3 requires this be recomputed with
// integer-floor division every time it is used, never cached as a
// floating-point value; Delta is cheap enough that this method does
// exactly that on every call.
func (p Parameters) Delta() *big.Int {
	return new(big.Int).Div(p.q, p.t)
}

// rlweParams projects the subset of Parameters the generic rlwe layer
// needs.
func (p Parameters) rlweParams() rlwe.Parameters {
	return rlwe.Parameters{N: p.n, Q: p.q, P: p.p, Sigma: p.sigma, SigmaRelin: p.sigmaRelin}
}

// RingQ returns the R_Q ring ciphertexts live in.
func (p Parameters) RingQ() (*ring.Ring, error) {
	return ring.NewRing(p.n, p.q)
}

// RingT returns the R_T ring plaintext polynomials live in.
func (p Parameters) RingT() (*ring.Ring, error) {
	return ring.NewRing(p.n, p.t)
}
