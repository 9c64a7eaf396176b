package rlwe

import "github.com/MarzioHr/bfv-go/ring"

// Decryptor inverts Encryptor given the secret key, up to T-rescaling —
// which, like encryption's Delta-scaling, is bfv's concern, not this
// layer's.
type Decryptor struct {
	ringQ *ring.Ring
}

// NewDecryptor constructs a Decryptor for params.
func NewDecryptor(params Parameters) (*Decryptor, error) {
	ringQ, err := params.RingQ()
	if err != nil {
		return nil, err
	}
	return &Decryptor{ringQ: ringQ}, nil
}

// Decrypt computes scaled = ring_add(ring_mul(c1, s; Q), c0; Q)
// (spec.md §4.5, step 1): the noisy Delta*m polynomial. The caller
// (bfv.Decryptor) rescales by T/Q and rounds to recover the plaintext
// integer.
func (d *Decryptor) Decrypt(sk *SecretKey, ct *Ciphertext) ring.Poly {
	scaled := d.ringQ.MulCoeffsNew(ct.Value[1], sk.Value)
	d.ringQ.Add(scaled, ct.Value[0], scaled)
	return scaled
}
