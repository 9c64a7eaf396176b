package rlwe

import (
	"fmt"

	"github.com/MarzioHr/bfv-go/ring"
	"github.com/MarzioHr/bfv-go/sampling"
)

// Encryptor encrypts an already-encoded value (a polynomial in R_Q,
// typically Delta*m for some plaintext m) under a public key. It knows
// nothing about T or Delta; package bfv computes those and hands this
// type the resulting polynomial.
type Encryptor struct {
	params Parameters
	prng   sampling.PRNG
	ringQ  *ring.Ring
}

// NewEncryptor constructs an Encryptor for params, drawing randomness
// from prng.
func NewEncryptor(params Parameters, prng sampling.PRNG) (*Encryptor, error) {
	ringQ, err := params.RingQ()
	if err != nil {
		return nil, err
	}
	return &Encryptor{params: params, prng: prng, ringQ: ringQ}, nil
}

// EncryptPublic encrypts value under pk (spec.md §4.4, steps 3-6):
//
//	u      <- Ternary(n)
//	e1, e2 <- Gaussian(n, sigma)
//	c0 <- ring_add(ring_add(ring_mul(pk0, u; Q), e1; Q), value; Q)
//	c1 <- ring_add(ring_mul(pk1, u; Q), e2; Q)
//
// Each call draws fresh randomness, so two encryptions of the same
// value are not bitwise equal (spec.md §4.4, ciphertext freshness).
func (e *Encryptor) EncryptPublic(pk *PublicKey, value ring.Poly) (*Ciphertext, error) {
	u, err := sampling.Ternary(e.prng, e.params.N)
	if err != nil {
		return nil, fmt.Errorf("rlwe: EncryptPublic: %w", err)
	}
	e1, err := sampling.Gaussian(e.prng, e.params.N, e.params.Sigma)
	if err != nil {
		return nil, fmt.Errorf("rlwe: EncryptPublic: %w", err)
	}
	e2, err := sampling.Gaussian(e.prng, e.params.N, e.params.Sigma)
	if err != nil {
		return nil, fmt.Errorf("rlwe: EncryptPublic: %w", err)
	}

	c0 := e.ringQ.MulCoeffsNew(pk.Value[0], u)
	e.ringQ.Add(c0, e1, c0)
	e.ringQ.Add(c0, value, c0)

	c1 := e.ringQ.MulCoeffsNew(pk.Value[1], u)
	e.ringQ.Add(c1, e2, c1)

	return &Ciphertext{Value: [2]ring.Poly{c0, c1}}, nil
}
