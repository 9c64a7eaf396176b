package ring

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"
)

// Poly is a length-N vector of coefficients of a polynomial in
// Z[x]/(x^n+1). Depending on which layer produced it, the coefficients
// are either canonical representatives in [0, M) ("reduced") or
// unbounded signed integers ("bare"). A zero-value Poly (nil Coeffs) is
// not usable; always obtain one from NewPoly or a Ring/sampler.
type Poly struct {
	Coeffs []*big.Int
}

// NewPoly allocates a degree-N polynomial with all coefficients set to
// zero.
func NewPoly(n int) Poly {
	c := make([]*big.Int, n)
	for i := range c {
		c[i] = new(big.Int)
	}
	return Poly{Coeffs: c}
}

// N returns the declared degree of p.
func (p Poly) N() int {
	return len(p.Coeffs)
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() Poly {
	out := NewPoly(p.N())
	for i, c := range p.Coeffs {
		out.Coeffs[i].Set(c)
	}
	return out
}

// Copy writes a deep copy of p into out. p and out must have the same N.
func (p Poly) Copy(out Poly) {
	if p.N() != out.N() {
		panic(fmt.Sprintf("ring: Copy: mismatched degree %d != %d", p.N(), out.N()))
	}
	for i, c := range p.Coeffs {
		out.Coeffs[i].Set(c)
	}
}

// Equal reports whether p and q have identical coefficients.
func (p Poly) Equal(q Poly) bool {
	if p.N() != q.N() {
		return false
	}
	return slices.EqualFunc(p.Coeffs, q.Coeffs, func(a, b *big.Int) bool {
		return a.Cmp(b) == 0
	})
}

// IsZero reports whether every coefficient of p is zero.
func (p Poly) IsZero() bool {
	for _, c := range p.Coeffs {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// String renders p as a comma-separated coefficient list, for test
// failure messages and debugging only.
func (p Poly) String() string {
	return fmt.Sprintf("%v", p.Coeffs)
}
