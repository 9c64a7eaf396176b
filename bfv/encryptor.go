package bfv

import (
	"fmt"
	"math/big"

	"github.com/MarzioHr/bfv-go/rlwe"
	"github.com/MarzioHr/bfv-go/sampling"
)

// Encryptor encrypts plaintext integers under a public key (spec.md §6,
// encrypt). It applies the Delta-scaling step itself and delegates the
// actual ring-LWE sampling and combination to rlwe.Encryptor.
type Encryptor struct {
	params  Parameters
	encoder *Encoder
	inner   *rlwe.Encryptor
}

// NewEncryptor constructs an Encryptor for params, drawing randomness
// from prng.
func NewEncryptor(params Parameters, prng sampling.PRNG) (*Encryptor, error) {
	inner, err := rlwe.NewEncryptor(params.rlweParams(), prng)
	if err != nil {
		return nil, fmt.Errorf("bfv: NewEncryptor: %w", err)
	}
	return &Encryptor{params: params, encoder: NewEncoder(params), inner: inner}, nil
}

// Encrypt encodes m and encrypts it under pk (spec.md §4.4). m must lie
// in [0, T); any other value is a *DomainError.
func (e *Encryptor) Encrypt(pk *PublicKey, m *big.Int) (*Ciphertext, error) {
	pt, err := e.encoder.Encode(m)
	if err != nil {
		return nil, err
	}
	return e.EncryptPlaintext(pk, pt)
}

// EncryptPlaintext encrypts an already-encoded Plaintext under pk: scale
// <- Delta * m~ (spec.md §4.4, step 2), then hands the scaled polynomial
// to the generic ring-LWE encryptor.
func (e *Encryptor) EncryptPlaintext(pk *PublicKey, pt *Plaintext) (*Ciphertext, error) {
	delta := e.params.Delta()
	scale := pt.Value.CopyNew()
	for _, c := range scale.Coeffs {
		c.Mul(c, delta)
	}

	ct, err := e.inner.EncryptPublic(pk, scale)
	if err != nil {
		return nil, fmt.Errorf("bfv: Encrypt: %w", err)
	}
	return ct, nil
}
