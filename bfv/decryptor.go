package bfv

import (
	"fmt"
	"math/big"

	"github.com/MarzioHr/bfv-go/ring"
	"github.com/MarzioHr/bfv-go/rlwe"
)

// Decryptor inverts Encryptor given the secret key (spec.md §6, decrypt).
type Decryptor struct {
	params Parameters
	inner  *rlwe.Decryptor
}

// NewDecryptor constructs a Decryptor for params.
func NewDecryptor(params Parameters) (*Decryptor, error) {
	inner, err := rlwe.NewDecryptor(params.rlweParams())
	if err != nil {
		return nil, fmt.Errorf("bfv: NewDecryptor: %w", err)
	}
	return &Decryptor{params: params, inner: inner}, nil
}

// Decrypt recovers the plaintext integer encrypted in ct under sk
// (spec.md §4.5):
//
//	scaled <- ring_add(ring_mul(c1, s; Q), c0; Q)
//	v'     <- round(T*scaled/Q) mod T, coefficient-wise
//	return v'[0]
//
// The remaining coefficients of v' are discarded, as spec.md §4.5
// allows. If noise has grown past Q/(2T) the returned value is
// corrupted silently — the core cannot detect this without side
// information (spec.md §7, CorruptedResult) and does not try to.
func (d *Decryptor) Decrypt(sk *SecretKey, ct *Ciphertext) (*big.Int, error) {
	if ct.Value[0].N() != d.params.n || ct.Value[1].N() != d.params.n {
		return nil, newDomainError("ciphertext has wrong coefficient count")
	}

	scaled := d.inner.Decrypt(sk, ct)
	recovered := ring.ScaleRound(scaled, d.params.t, d.params.q, d.params.t)
	return recovered.Coeffs[0], nil
}
