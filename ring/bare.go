package ring

import "math/big"

// negacyclicConvolve computes the length-n coefficient vector of the
// product of two degree-(n-1) polynomials reduced modulo x^n+1, without
// any reduction modulo a coefficient modulus. Coefficients of the
// schoolbook product can reach magnitude n*M^2 for inputs bounded by M
// (spec.md §3), so this always operates on *big.Int and never on a
// fixed machine word.
func negacyclicConvolve(n int, a, b []*big.Int) []*big.Int {
	raw := make([]*big.Int, 2*n-1)
	for i := range raw {
		raw[i] = new(big.Int)
	}

	tmp := new(big.Int)
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			if bj.Sign() == 0 {
				continue
			}
			tmp.Mul(ai, bj)
			raw[i+j].Add(raw[i+j], tmp)
		}
	}

	folded := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		folded[i] = new(big.Int).Set(raw[i])
		if i+n <= 2*n-2 {
			folded[i].Sub(folded[i], raw[i+n])
		}
	}
	return folded
}

// AddUnreduced writes p1+p2 into out without any modular reduction:
// coefficients remain ordinary signed integers. p1, p2 and out must
// share a degree.
func AddUnreduced(p1, p2, out Poly) {
	for i := range out.Coeffs {
		out.Coeffs[i].Add(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// AddUnreducedNew returns p1+p2 with no modular reduction.
func AddUnreducedNew(p1, p2 Poly) Poly {
	out := NewPoly(p1.N())
	AddUnreduced(p1, p2, out)
	return out
}

// MulUnreduced writes the negacyclic product p1*p2, reduced modulo
// x^n+1 only, into out. Coefficients of out are left as unbounded
// signed integers: this is the "ring_mul_unreduced" primitive that the
// BFV multiplier relies on to keep the T/Q scale-and-round step exact
// (spec.md §4.1, "Rationale").
func MulUnreduced(p1, p2, out Poly) {
	n := out.N()
	prod := negacyclicConvolve(n, p1.Coeffs, p2.Coeffs)
	for i := 0; i < n; i++ {
		out.Coeffs[i].Set(prod[i])
	}
}

// MulUnreducedNew returns the negacyclic product of p1 and p2, reduced
// modulo x^n+1 only.
func MulUnreducedNew(p1, p2 Poly) Poly {
	out := NewPoly(p1.N())
	MulUnreduced(p1, p2, out)
	return out
}

// NegUnreduced writes -p into out with no modular reduction.
func NegUnreduced(p, out Poly) {
	for i := range out.Coeffs {
		out.Coeffs[i].Neg(p.Coeffs[i])
	}
}

// NegUnreducedNew returns -p with no modular reduction.
func NegUnreducedNew(p Poly) Poly {
	out := NewPoly(p.N())
	NegUnreduced(p, out)
	return out
}

// ScaleUnreducedNew returns p with every coefficient multiplied by the
// integer k, with no modular reduction. Used by relinearization-key
// generation to form P*(s*s) (spec.md §4.3) before it is combined with
// the rest of the unreduced sum.
func ScaleUnreducedNew(p Poly, k *big.Int) Poly {
	out := NewPoly(p.N())
	for i, c := range p.Coeffs {
		out.Coeffs[i].Mul(c, k)
	}
	return out
}
