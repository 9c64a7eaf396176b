package rlwe

import (
	"fmt"

	"github.com/MarzioHr/bfv-go/ring"
	"github.com/MarzioHr/bfv-go/sampling"
)

// KeyGenerator produces a SecretKey, the PublicKey bound to it, and its
// RelinearizationKey (spec.md §4.3). It holds the rings derived from
// Parameters and the random source samplers draw from.
type KeyGenerator struct {
	params Parameters
	prng   sampling.PRNG
	ringQ  *ring.Ring
	ringQP *ring.Ring
}

// NewKeyGenerator constructs a KeyGenerator for params, drawing
// randomness from prng.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) (*KeyGenerator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	ringQ, err := params.RingQ()
	if err != nil {
		return nil, err
	}
	ringQP, err := params.RingQP()
	if err != nil {
		return nil, err
	}
	return &KeyGenerator{params: params, prng: prng, ringQ: ringQ, ringQP: ringQP}, nil
}

// GenSecretKey draws a fresh ternary secret key: step 1 of spec.md §4.3.
func (kg *KeyGenerator) GenSecretKey() (*SecretKey, error) {
	s, err := sampling.Ternary(kg.prng, kg.params.N)
	if err != nil {
		return nil, fmt.Errorf("rlwe: GenSecretKey: %w", err)
	}
	return &SecretKey{Value: s}, nil
}

// GenPublicKey generates the public key bound to sk (spec.md §4.3,
// steps 2-6):
//
//	a  <- Uniform(n, Q)
//	e  <- Gaussian(n, sigma)
//	pk0 <- ring_add(ring_mul(-a, s; Q), -e; Q)
//	pk1 <- a
func (kg *KeyGenerator) GenPublicKey(sk *SecretKey) (*PublicKey, error) {
	a, err := sampling.Uniform(kg.prng, kg.params.N, kg.params.Q)
	if err != nil {
		return nil, fmt.Errorf("rlwe: GenPublicKey: %w", err)
	}
	e, err := sampling.Gaussian(kg.prng, kg.params.N, kg.params.Sigma)
	if err != nil {
		return nil, fmt.Errorf("rlwe: GenPublicKey: %w", err)
	}

	negA := kg.ringQ.NegNew(a)
	pk0 := kg.ringQ.MulCoeffsNew(negA, sk.Value)
	negE := kg.ringQ.NegNew(e)
	kg.ringQ.Add(pk0, negE, pk0)

	return &PublicKey{Value: [2]ring.Poly{pk0, a}}, nil
}

// GenKeyPair is a convenience wrapper generating a secret key and the
// public key bound to it.
func (kg *KeyGenerator) GenKeyPair() (*SecretKey, *PublicKey, error) {
	sk, err := kg.GenSecretKey()
	if err != nil {
		return nil, nil, err
	}
	pk, err := kg.GenPublicKey(sk)
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}

// GenRelinearizationKey generates the variant-2, modulus-switching-based
// relinearization key bound to sk (spec.md §4.3):
//
//	a'   <- Uniform(n, QP)
//	e'   <- Gaussian(n, sigma')
//	mask <- P * (s*s)                         (bare multiply, no reduction)
//	rlk0 <- (ring_mul_unreduced(-a', s) + (-e' + mask)) mod QP
//	rlk1 <- a'
//
// The critical quirk (spec.md §4.3): s*s is computed before any modular
// reduction and scaled by P in the integers, so that the later
// scale-and-round quantization in the evaluator recovers the right
// multiple of s^2.
func (kg *KeyGenerator) GenRelinearizationKey(sk *SecretKey) (*RelinearizationKey, error) {
	aPrime, err := sampling.Uniform(kg.prng, kg.params.N, kg.params.QP())
	if err != nil {
		return nil, fmt.Errorf("rlwe: GenRelinearizationKey: %w", err)
	}
	ePrime, err := sampling.Gaussian(kg.prng, kg.params.N, kg.params.SigmaRelin)
	if err != nil {
		return nil, fmt.Errorf("rlwe: GenRelinearizationKey: %w", err)
	}

	sSquared := ring.MulUnreducedNew(sk.Value, sk.Value)
	mask := ring.ScaleUnreducedNew(sSquared, kg.params.P)

	negAPrime := ring.NegUnreducedNew(aPrime)
	term := ring.MulUnreducedNew(negAPrime, sk.Value)

	negEPrime := ring.NegUnreducedNew(ePrime)
	sum := ring.AddUnreducedNew(negEPrime, mask)
	ring.AddUnreduced(term, sum, term)

	rlk0 := kg.ringQP.ReduceNew(term)

	return &RelinearizationKey{Value: [2]ring.Poly{rlk0, aPrime}}, nil
}
