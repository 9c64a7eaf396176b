package bfv

import (
	"fmt"
	"math/big"

	"github.com/MarzioHr/bfv-go/ring"
	"github.com/MarzioHr/bfv-go/rlwe"
)

// Evaluator implements eval_add and eval_mul (spec.md §6): ciphertext
// addition and multiplication-with-relinearization over a fixed
// Parameters.
type Evaluator struct {
	params Parameters
	ringQ  *ring.Ring
	inner  *rlwe.Evaluator
	one    *big.Int
}

// NewEvaluator constructs an Evaluator for params.
func NewEvaluator(params Parameters) (*Evaluator, error) {
	ringQ, err := params.RingQ()
	if err != nil {
		return nil, fmt.Errorf("bfv: NewEvaluator: %w", err)
	}
	inner, err := rlwe.NewEvaluator(params.rlweParams())
	if err != nil {
		return nil, fmt.Errorf("bfv: NewEvaluator: %w", err)
	}
	return &Evaluator{params: params, ringQ: ringQ, inner: inner, one: big.NewInt(1)}, nil
}

// Add returns eval_add(ct1, ct2) (spec.md §4.6). Ciphertext addition
// never needs relinearization: noise grows additively, and the result
// stays at degree 1.
func (ev *Evaluator) Add(ct1, ct2 *Ciphertext) (*Ciphertext, error) {
	if err := ev.checkDegree(ct1); err != nil {
		return nil, err
	}
	if err := ev.checkDegree(ct2); err != nil {
		return nil, err
	}
	return ev.inner.Add(ct1, ct2), nil
}

// Mul returns eval_mul(rlk, ct1, ct2) (spec.md §4.7): the scale-and-round
// tensor product followed by relinearization against rlk, so the result
// is handed back at degree 1 exactly like every other ciphertext.
//
// Phase 1 - scale-and-round the tensor product:
//
//	d0_raw <- ring_mul_unreduced(a0, b0)
//	d1_raw <- ring_mul_unreduced(a0, b1) + ring_mul_unreduced(a1, b0)
//	d2_raw <- ring_mul_unreduced(a1, b1)
//	dj     <- round(T*dj_raw/Q) mod Q, for j in {0,1,2}
//
// Phase 2 - relinearize, approximating d2*s^2 via the relinearization
// key:
//
//	r0 <- round(ring_mul_unreduced(d2, rlk0)/P) mod Q
//	r1 <- round(ring_mul_unreduced(d2, rlk1)/P) mod Q
//
// Phase 3 - assemble: c0 <- (d0+r0) mod Q, c1 <- (d1+r1) mod Q.
func (ev *Evaluator) Mul(rlk *RelinearizationKey, ct1, ct2 *Ciphertext) (*Ciphertext, error) {
	if err := ev.checkDegree(ct1); err != nil {
		return nil, err
	}
	if err := ev.checkDegree(ct2); err != nil {
		return nil, err
	}

	a0, a1 := ct1.Value[0], ct1.Value[1]
	b0, b1 := ct2.Value[0], ct2.Value[1]

	d0Raw := ring.MulUnreducedNew(a0, b0)

	d1RawLeft := ring.MulUnreducedNew(a0, b1)
	d1RawRight := ring.MulUnreducedNew(a1, b0)
	d1Raw := ring.AddUnreducedNew(d1RawLeft, d1RawRight)

	d2Raw := ring.MulUnreducedNew(a1, b1)

	t, q := ev.params.t, ev.params.q
	d0 := ring.ScaleRound(d0Raw, t, q, q)
	d1 := ring.ScaleRound(d1Raw, t, q, q)
	d2 := ring.ScaleRound(d2Raw, t, q, q)

	p := ev.params.p
	r0Raw := ring.MulUnreducedNew(d2, rlk.Value[0])
	r1Raw := ring.MulUnreducedNew(d2, rlk.Value[1])
	r0 := ring.ScaleRound(r0Raw, ev.one, p, q)
	r1 := ring.ScaleRound(r1Raw, ev.one, p, q)

	c0 := ev.ringQ.AddNew(d0, r0)
	c1 := ev.ringQ.AddNew(d1, r1)

	return &Ciphertext{Value: [2]ring.Poly{c0, c1}}, nil
}

func (ev *Evaluator) checkDegree(ct *Ciphertext) error {
	if ct.Value[0].N() != ev.params.n || ct.Value[1].N() != ev.params.n {
		return newDomainError("ciphertext has wrong coefficient count")
	}
	return nil
}
