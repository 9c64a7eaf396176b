package ring

import "math/big"

// RoundDiv returns round(a/b), the nearest integer to the exact rational
// a/b, breaking ties away from zero. It never uses floating point: the
// comparison that decides a tie is done on 2*|remainder| vs |b|.
//
// spec.md §9 requires the same tie-breaking rule at every rounding site
// (decryption scaling, multiplication scaling, and relinearization,
// twice) — RoundDiv is the single implementation all four call, so
// there is no risk of the rules drifting apart.
func RoundDiv(a, b *big.Int) *big.Int {
	if b.Sign() == 0 {
		panic("ring: RoundDiv: division by zero")
	}

	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() == 0 {
		return q
	}

	twiceR := new(big.Int).Abs(r)
	twiceR.Lsh(twiceR, 1)
	bAbs := new(big.Int).Abs(b)

	if twiceR.Cmp(bAbs) >= 0 {
		if (a.Sign() < 0) == (b.Sign() < 0) {
			q.Add(q, big.NewInt(1))
		} else {
			q.Sub(q, big.NewInt(1))
		}
	}
	return q
}

// ScaleRound computes, coefficient-wise, round(mul*c/div) mod modu for
// every coefficient c of p, and returns the result as a new Poly. This
// is the shared "scale, round, then finally reduce" primitive behind
// decryption (mul=T, div=Q, modu=T), multiplication's scale-and-round
// phase (mul=T, div=Q, modu=Q) and relinearization (mul=1, div=P,
// modu=Q). Order matters: multiplying by mul happens in the integers
// before dividing, never as a floating-point T/Q constant.
func ScaleRound(p Poly, mul, div, modu *big.Int) Poly {
	out := NewPoly(p.N())
	tmp := new(big.Int)
	for i, c := range p.Coeffs {
		tmp.Mul(c, mul)
		v := RoundDiv(tmp, div)
		v.Mod(v, modu)
		out.Coeffs[i] = v
	}
	return out
}
