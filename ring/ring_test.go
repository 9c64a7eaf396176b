package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func poly(n int, coeffs ...int64) Poly {
	p := NewPoly(n)
	for i, c := range coeffs {
		p.Coeffs[i].SetInt64(c)
	}
	return p
}

func TestNewRingRejectsBadDegree(t *testing.T) {
	_, err := NewRing(3, big.NewInt(17))
	require.Error(t, err)

	_, err = NewRing(4, big.NewInt(0))
	require.Error(t, err)
}

func TestAddReducesIntoRange(t *testing.T) {
	r, err := NewRing(4, big.NewInt(7))
	require.NoError(t, err)

	a := poly(4, 5, 6, 0, 3)
	b := poly(4, 4, 4, 0, 6)

	out := r.AddNew(a, b)
	require.True(t, r.InRange(out))
	require.Equal(t, []int64{2, 3, 0, 2}, toInt64s(out))
}

func TestNegMapsToCanonicalRange(t *testing.T) {
	r, err := NewRing(4, big.NewInt(7))
	require.NoError(t, err)

	a := poly(4, 0, 1, 3, 6)
	out := r.NegNew(a)
	require.True(t, r.InRange(out))
	require.Equal(t, []int64{0, 6, 4, 1}, toInt64s(out))
}

// Negacyclic fold: x^n = -1, so x^(n-1) * x = x^n = -1.
func TestMulCoeffsNegacyclicFold(t *testing.T) {
	r, err := NewRing(4, big.NewInt(1000))
	require.NoError(t, err)

	xPow3 := poly(4, 0, 0, 0, 1) // x^3
	x := poly(4, 0, 1, 0, 0)     // x

	out := r.MulCoeffsNew(xPow3, x)
	require.Equal(t, []int64{999, 0, 0, 0}, toInt64s(out)) // -1 mod 1000
}

func TestMulCoeffsAgainstUnreducedReference(t *testing.T) {
	r, err := NewRing(4, big.NewInt(65536))
	require.NoError(t, err)

	a := poly(4, 3, 5, 7, 11)
	b := poly(4, 2, 1, 4, 6)

	reduced := r.MulCoeffsNew(a, b)
	unreduced := MulUnreducedNew(a, b)

	for i := range reduced.Coeffs {
		want := new(big.Int).Mod(unreduced.Coeffs[i], r.Modulus)
		require.Equal(t, 0, reduced.Coeffs[i].Cmp(want))
	}
}

func TestMulCoeffsCommutative(t *testing.T) {
	r, err := NewRing(8, big.NewInt(1<<16))
	require.NoError(t, err)

	a := poly(8, 12, 99, 4, 0, 7, 3, 100, 2)
	b := poly(8, 4, 0, 55, 23, 1, 9, 2, 6)

	require.True(t, r.Equal(r.MulCoeffsNew(a, b), r.MulCoeffsNew(b, a)))
}

func TestLargeCoefficientsDoNotWrap(t *testing.T) {
	// n * Q^2 with Q ~ 2^54, n = 4096 needs ~120 bits; this is far
	// beyond a 64-bit accumulator, which is exactly why the arena is
	// built on math/big throughout (spec.md §3, §9).
	q := new(big.Int).Lsh(big.NewInt(1), 54)
	r, err := NewRing(4096, q)
	require.NoError(t, err)

	a := r.NewPoly()
	b := r.NewPoly()
	for i := range a.Coeffs {
		a.Coeffs[i].Sub(q, big.NewInt(1))
		b.Coeffs[i].Sub(q, big.NewInt(1))
	}

	out := r.MulCoeffsNew(a, b)
	require.True(t, r.InRange(out))
}

func TestPolyMarshalRoundtrip(t *testing.T) {
	p := poly(4, -5, 0, 123456789, 7)
	data, err := p.MarshalBinary()
	require.NoError(t, err)

	var got Poly
	require.NoError(t, got.UnmarshalBinary(data))
	require.True(t, p.Equal(got))
}

func toInt64s(p Poly) []int64 {
	out := make([]int64, p.N())
	for i, c := range p.Coeffs {
		out[i] = c.Int64()
	}
	return out
}
