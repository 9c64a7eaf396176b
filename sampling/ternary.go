package sampling

import (
	"fmt"

	"github.com/MarzioHr/bfv-go/ring"
)

// Ternary draws a length-n polynomial with each coefficient independent
// and uniform over {-1, 0, 1} (spec.md §4.2). Rejection sampling is used
// on a single random byte per coefficient to avoid the bias a plain
// "mod 3" would introduce (256 is not a multiple of 3): values 252-255
// are discarded and redrawn.
func Ternary(prng PRNG, n int) (ring.Poly, error) {
	out := ring.NewPoly(n)
	buf := make([]byte, 1)

	for i := 0; i < n; i++ {
		for {
			if _, err := prng.Read(buf); err != nil {
				return ring.Poly{}, fmt.Errorf("sampling: Ternary: %w", err)
			}
			if buf[0] >= 252 {
				continue
			}
			switch buf[0] % 3 {
			case 0:
				out.Coeffs[i].SetInt64(0)
			case 1:
				out.Coeffs[i].SetInt64(1)
			case 2:
				out.Coeffs[i].SetInt64(-1)
			}
			break
		}
	}
	return out, nil
}
