package bfv

import (
	"fmt"

	"github.com/MarzioHr/bfv-go/rlwe"
	"github.com/MarzioHr/bfv-go/sampling"
)

// KeyGenerator produces a SecretKey, its PublicKey, and its
// RelinearizationKey for a given Parameters (spec.md §6, keygen and
// rlk_gen). It is a thin wrapper over rlwe.KeyGenerator: BFV key
// generation does not touch T or Delta at all.
type KeyGenerator struct {
	inner *rlwe.KeyGenerator
}

// NewKeyGenerator constructs a KeyGenerator for params, drawing
// randomness from prng.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) (*KeyGenerator, error) {
	inner, err := rlwe.NewKeyGenerator(params.rlweParams(), prng)
	if err != nil {
		return nil, fmt.Errorf("bfv: NewKeyGenerator: %w", err)
	}
	return &KeyGenerator{inner: inner}, nil
}

// GenKeyPair generates a secret key and the public key bound to it
// (spec.md §4.3).
func (kg *KeyGenerator) GenKeyPair() (*SecretKey, *PublicKey, error) {
	sk, pk, err := kg.inner.GenKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("bfv: GenKeyPair: %w", err)
	}
	return sk, pk, nil
}

// GenRelinearizationKey generates the relinearization key bound to sk
// (spec.md §4.3, variant 2).
func (kg *KeyGenerator) GenRelinearizationKey(sk *SecretKey) (*RelinearizationKey, error) {
	rlk, err := kg.inner.GenRelinearizationKey(sk)
	if err != nil {
		return nil, fmt.Errorf("bfv: GenRelinearizationKey: %w", err)
	}
	return rlk, nil
}
