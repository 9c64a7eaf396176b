package sampling

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/big"

	"github.com/MarzioHr/bfv-go/ring"
)

// Uniform draws a length-n polynomial with each coefficient independent
// and uniform over [0, m) (spec.md §4.2). It delegates the per-
// coefficient rejection sampling to crypto/rand's Int, which accepts
// any io.Reader — exactly what sampling.PRNG is.
func Uniform(prng PRNG, n int, m *big.Int) (ring.Poly, error) {
	if m == nil || m.Sign() <= 0 {
		return ring.Poly{}, fmt.Errorf("sampling: Uniform: modulus must be positive")
	}

	out := ring.NewPoly(n)
	for i := 0; i < n; i++ {
		v, err := cryptorand.Int(prng, m)
		if err != nil {
			return ring.Poly{}, fmt.Errorf("sampling: Uniform: %w", err)
		}
		out.Coeffs[i] = v
	}
	return out, nil
}
