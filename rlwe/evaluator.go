package rlwe

import "github.com/MarzioHr/bfv-go/ring"

// Evaluator implements the ciphertext operations that do not depend on
// the plaintext modulus: addition is plain coefficient-wise ring
// addition of both polynomials of the pair (spec.md §4.6). Multiplication
// needs the T/Q scale-and-round discipline and lives in package bfv.
type Evaluator struct {
	ringQ *ring.Ring
}

// NewEvaluator constructs an Evaluator for params.
func NewEvaluator(params Parameters) (*Evaluator, error) {
	ringQ, err := params.RingQ()
	if err != nil {
		return nil, err
	}
	return &Evaluator{ringQ: ringQ}, nil
}

// Add returns eval_add(ct1, ct2) = (ring_add(a0,b0;Q), ring_add(a1,b1;Q)).
func (ev *Evaluator) Add(ct1, ct2 *Ciphertext) *Ciphertext {
	c0 := ev.ringQ.AddNew(ct1.Value[0], ct2.Value[0])
	c1 := ev.ringQ.AddNew(ct1.Value[1], ct2.Value[1])
	return &Ciphertext{Value: [2]ring.Poly{c0, c1}}
}
