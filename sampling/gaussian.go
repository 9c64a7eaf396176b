package sampling

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/MarzioHr/bfv-go/ring"
)

// gaussianPrecision is the working precision, in bits, used for the
// entire Box-Muller transform below: drawing u1/u2, the log/sqrt of the
// radius, the angle reduction, the sine/cosine series, and the final
// sigma-scaling and rounding. The teacher's KYSampler builds a
// fixed-point binary-expansion matrix to keep the tail of the discrete
// Gaussian accurate at a chosen bit precision; here the same goal is
// reached by running Box-Muller itself at this precision end to end,
// rather than computing one transcendental at high precision and then
// immediately truncating it back down to float64.
const gaussianPrecision = 128

// piDigits carries pi to far more decimal digits than gaussianPrecision
// bits need (128 bits is a little under 39 decimal digits), so that
// parsing the constant is never the dominant source of error in the
// angle reduction below.
const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"

// piAt returns pi parsed at the given precision.
func piAt(prec uint) *big.Float {
	pi, _, err := big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)
	if err != nil {
		panic("sampling: failed to parse pi constant: " + err.Error())
	}
	return pi
}

// Gaussian draws a length-n polynomial with each coefficient sampled
// independently from a discrete Gaussian centered at 0 with standard
// deviation sigma (spec.md §4.2). Per spec, the reference discretizes
// by sampling a continuous normal (Box-Muller) and rounding to the
// nearest integer; that is exactly what this does, carried out entirely
// in arbitrary-precision arithmetic so the dependency on bigfloat's
// Log/Sqrt is not discarded the moment it is computed.
func Gaussian(prng PRNG, n int, sigma float64) (ring.Poly, error) {
	if sigma <= 0 {
		return ring.Poly{}, fmt.Errorf("sampling: Gaussian: sigma must be positive, got %v", sigma)
	}
	sigmaF := new(big.Float).SetPrec(gaussianPrecision).SetFloat64(sigma)
	two := big.NewFloat(2).SetPrec(gaussianPrecision)
	negTwo := big.NewFloat(-2).SetPrec(gaussianPrecision)

	out := ring.NewPoly(n)
	for i := 0; i < n; i += 2 {
		u1, err := randomOpenUnitBigFloat(prng, gaussianPrecision)
		if err != nil {
			return ring.Poly{}, fmt.Errorf("sampling: Gaussian: %w", err)
		}
		u2, err := randomOpenUnitBigFloat(prng, gaussianPrecision)
		if err != nil {
			return ring.Poly{}, fmt.Errorf("sampling: Gaussian: %w", err)
		}

		logU1 := bigfloat.Log(u1)
		r := bigfloat.Sqrt(new(big.Float).SetPrec(gaussianPrecision).Mul(negTwo, logU1))

		theta := new(big.Float).SetPrec(gaussianPrecision).Mul(two, piAt(gaussianPrecision))
		theta.Mul(theta, u2)
		theta = reduceAngle(theta)
		sinTheta, cosTheta := sinCos(theta)

		z0 := new(big.Float).SetPrec(gaussianPrecision).Mul(r, cosTheta)
		z0.Mul(z0, sigmaF)
		out.Coeffs[i].Set(roundBigFloatToInt(z0))

		if i+1 < n {
			z1 := new(big.Float).SetPrec(gaussianPrecision).Mul(r, sinTheta)
			z1.Mul(z1, sigmaF)
			out.Coeffs[i+1].Set(roundBigFloatToInt(z1))
		}
	}
	return out, nil
}

// reduceAngle folds theta into (-pi, pi], at theta's own precision, so
// the Taylor series in sinCos only ever has to converge on a small
// argument.
func reduceAngle(theta *big.Float) *big.Float {
	prec := theta.Prec()
	pi := piAt(prec)
	twoPi := new(big.Float).SetPrec(prec).Mul(pi, big.NewFloat(2))

	q := new(big.Float).SetPrec(prec).Quo(theta, twoPi)
	qInt, _ := q.Int(nil) // truncates toward zero
	qFloor := new(big.Float).SetPrec(prec).SetInt(qInt)
	if qFloor.Cmp(q) > 0 {
		qFloor.Sub(qFloor, big.NewFloat(1))
	}

	reduced := new(big.Float).SetPrec(prec).Mul(qFloor, twoPi)
	reduced.Sub(theta, reduced) // theta - floor(theta/2pi)*2pi, in [0, 2pi)

	if reduced.Cmp(pi) > 0 {
		reduced.Sub(reduced, twoPi)
	}
	return reduced
}

// sinCos returns (sin(theta), cos(theta)) via their Taylor series,
// evaluated at theta's own precision. theta must already be reduced to
// (-pi, pi] so the series converges well within the fixed term count
// below.
func sinCos(theta *big.Float) (sin, cos *big.Float) {
	prec := theta.Prec()
	negX2 := new(big.Float).SetPrec(prec).Mul(theta, theta)
	negX2.Neg(negX2)

	sinSum := new(big.Float).SetPrec(prec).Set(theta)
	cosSum := new(big.Float).SetPrec(prec).SetInt64(1)

	sinTerm := new(big.Float).SetPrec(prec).Set(theta)
	cosTerm := new(big.Float).SetPrec(prec).SetInt64(1)

	const terms = 40
	for k := 1; k <= terms; k++ {
		sinTerm.Mul(sinTerm, negX2)
		sinTerm.Quo(sinTerm, new(big.Float).SetPrec(prec).SetInt64(int64(2*k)*int64(2*k+1)))
		sinSum.Add(sinSum, sinTerm)

		cosTerm.Mul(cosTerm, negX2)
		cosTerm.Quo(cosTerm, new(big.Float).SetPrec(prec).SetInt64(int64(2*k-1)*int64(2*k)))
		cosSum.Add(cosSum, cosTerm)
	}

	return sinSum, cosSum
}

// roundBigFloatToInt rounds x to the nearest integer, ties away from
// zero, matching the standard library's math.Round convention that the
// original float64 implementation relied on.
func roundBigFloatToInt(x *big.Float) *big.Int {
	prec := x.Prec()
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	shifted := new(big.Float).SetPrec(prec)
	if x.Sign() >= 0 {
		shifted.Add(x, half)
	} else {
		shifted.Sub(x, half)
	}
	i, _ := shifted.Int(nil) // truncates toward zero
	return i
}

// randomOpenUnitBigFloat draws a uniform value in (0, 1) at prec bits of
// precision, suitable as the u1 operand of Box-Muller (log(0) would be
// -Inf).
func randomOpenUnitBigFloat(prng PRNG, prec uint) (*big.Float, error) {
	numBytes := int(prec+7) / 8
	buf := make([]byte, numBytes)
	for {
		if _, err := prng.Read(buf); err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Sign() == 0 {
			continue
		}
		denom := new(big.Int).Lsh(big.NewInt(1), uint(numBytes)*8)
		u := new(big.Float).SetPrec(prec).SetInt(v)
		u.Quo(u, new(big.Float).SetPrec(prec).SetInt(denom))
		return u, nil
	}
}
