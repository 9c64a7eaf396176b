package bfv

import (
	"math/big"

	"github.com/MarzioHr/bfv-go/ring"
)

// Plaintext holds the encoded form of a single integer message:
// spec.md §3's "polynomial m + 0*x + ... + 0*x^(n-1) reduced modulo T".
// Only Value.Coeffs[0] is ever user-meaningful; every other coefficient
// is zero by construction and stays zero through every operation that
// touches a Plaintext.
type Plaintext struct {
	Value ring.Poly
}

// Encoder encodes integers into Plaintexts and decodes them back,
// against a fixed Parameters (so against a fixed T and N).
type Encoder struct {
	params Parameters
}

// NewEncoder constructs an Encoder for params.
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{params: params}
}

// Encode builds the Plaintext for m (spec.md §4.4, step 1). m must lie
// in [0, T); any other value is a *DomainError.
func (e *Encoder) Encode(m *big.Int) (*Plaintext, error) {
	if m == nil || m.Sign() < 0 || m.Cmp(e.params.t) >= 0 {
		return nil, newDomainError("plaintext %s is not in [0, %s)", m, e.params.t)
	}
	v := ring.NewPoly(e.params.n)
	v.Coeffs[0].Set(m)
	return &Plaintext{Value: v}, nil
}

// Decode reads back the integer a Plaintext encodes: Value.Coeffs[0].
// The remaining coefficients are never inspected; per spec.md §3 they
// are zero by construction.
func (e *Encoder) Decode(pt *Plaintext) *big.Int {
	return new(big.Int).Set(pt.Value.Coeffs[0])
}
