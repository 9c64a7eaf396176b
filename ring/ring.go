package ring

import (
	"fmt"
	"math/big"
)

// Ring is the quotient ring R_M = Z_M[x]/(x^n+1): polynomials of degree
// N with coefficients reduced both modulo x^n+1 (negacyclically) and
// modulo the coefficient modulus M. All "reduced" operations live on
// Ring; see bare.go for the unreduced layer used inside multiplication.
type Ring struct {
	n       int
	Modulus *big.Int
}

// NewRing constructs a Ring of degree n over modulus m. n must be a
// power of two greater than or equal to 2, and m must be positive.
func NewRing(n int, m *big.Int) (*Ring, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ring: degree %d is not a power of two >= 2", n)
	}
	if m == nil || m.Sign() <= 0 {
		return nil, fmt.Errorf("ring: modulus must be a positive integer")
	}
	return &Ring{n: n, Modulus: new(big.Int).Set(m)}, nil
}

// N returns the ring's polynomial degree.
func (r *Ring) N() int {
	return r.n
}

// NewPoly allocates a zero polynomial of the ring's degree.
func (r *Ring) NewPoly() Poly {
	return NewPoly(r.n)
}

// Reduce maps every coefficient of p to its canonical representative in
// [0, M), in place.
func (r *Ring) Reduce(p Poly) {
	for _, c := range p.Coeffs {
		c.Mod(c, r.Modulus)
	}
}

// ReduceNew returns a copy of p with coefficients reduced to [0, M).
func (r *Ring) ReduceNew(p Poly) Poly {
	out := p.CopyNew()
	r.Reduce(out)
	return out
}

// Add writes p1 + p2, reduced mod M, into out. p1, p2 and out must share
// the ring's degree.
func (r *Ring) Add(p1, p2, out Poly) {
	r.checkDegree(p1, p2, out)
	for i := range out.Coeffs {
		out.Coeffs[i].Add(p1.Coeffs[i], p2.Coeffs[i])
		out.Coeffs[i].Mod(out.Coeffs[i], r.Modulus)
	}
}

// AddNew returns p1 + p2 reduced mod M.
func (r *Ring) AddNew(p1, p2 Poly) Poly {
	out := r.NewPoly()
	r.Add(p1, p2, out)
	return out
}

// Sub writes p1 - p2, reduced mod M, into out.
func (r *Ring) Sub(p1, p2, out Poly) {
	r.checkDegree(p1, p2, out)
	for i := range out.Coeffs {
		out.Coeffs[i].Sub(p1.Coeffs[i], p2.Coeffs[i])
		out.Coeffs[i].Mod(out.Coeffs[i], r.Modulus)
	}
}

// SubNew returns p1 - p2 reduced mod M.
func (r *Ring) SubNew(p1, p2 Poly) Poly {
	out := r.NewPoly()
	r.Sub(p1, p2, out)
	return out
}

// Neg writes -p, reduced mod M (i.e. coefficient c maps to (M-c) mod M),
// into out.
func (r *Ring) Neg(p, out Poly) {
	r.checkDegree(p, p, out)
	for i := range out.Coeffs {
		out.Coeffs[i].Neg(p.Coeffs[i])
		out.Coeffs[i].Mod(out.Coeffs[i], r.Modulus)
	}
}

// NegNew returns -p reduced mod M.
func (r *Ring) NegNew(p Poly) Poly {
	out := r.NewPoly()
	r.Neg(p, out)
	return out
}

// MulCoeffs writes the negacyclic product p1*p2 mod (x^n+1), reduced mod
// M, into out. This is the "ring_mul" primitive of the specification:
// modular reduction is applied only once, after the full integer
// product, never partway through.
func (r *Ring) MulCoeffs(p1, p2, out Poly) {
	r.checkDegree(p1, p2, out)
	prod := negacyclicConvolve(r.n, p1.Coeffs, p2.Coeffs)
	for i := range out.Coeffs {
		out.Coeffs[i].Mod(prod[i], r.Modulus)
	}
}

// MulCoeffsNew returns the negacyclic product p1*p2 reduced mod M.
func (r *Ring) MulCoeffsNew(p1, p2 Poly) Poly {
	out := r.NewPoly()
	r.MulCoeffs(p1, p2, out)
	return out
}

// Equal reports whether p1 and p2 are identical after reduction mod M.
func (r *Ring) Equal(p1, p2 Poly) bool {
	return r.ReduceNew(p1).Equal(r.ReduceNew(p2))
}

// InRange reports whether every coefficient of p lies in [0, M), the
// invariant spec.md §3 requires of every R_M polynomial exposed by a
// primitive.
func (r *Ring) InRange(p Poly) bool {
	zero := big.NewInt(0)
	for _, c := range p.Coeffs {
		if c.Cmp(zero) < 0 || c.Cmp(r.Modulus) >= 0 {
			return false
		}
	}
	return true
}

func (r *Ring) checkDegree(polys ...Poly) {
	for _, p := range polys {
		if p.N() != r.n {
			panic(fmt.Sprintf("ring: expected degree %d, got %d", r.n, p.N()))
		}
	}
}
