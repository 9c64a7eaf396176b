package rlwe

import (
	"encoding/binary"
	"fmt"

	"github.com/MarzioHr/bfv-go/ring"
)

// marshalPolys concatenates the length-prefixed binary encoding of each
// poly in order, so that unmarshalPolys can invert it without any
// ambiguity about how many polynomials follow.
func marshalPolys(polys ...ring.Poly) ([]byte, error) {
	var out []byte
	for _, p := range polys {
		data, err := p.MarshalBinary()
		if err != nil {
			return nil, err
		}
		lenBuf := make([]byte, 4)
		binary.LittleEndian.PutUint32(lenBuf, uint32(len(data)))
		out = append(out, lenBuf...)
		out = append(out, data...)
	}
	return out, nil
}

func unmarshalPolys(data []byte, count int) ([]ring.Poly, error) {
	polys := make([]ring.Poly, count)
	for i := 0; i < count; i++ {
		if len(data) < 4 {
			return nil, ring.NewSerializationError("rlwe: unmarshalPolys: truncated length prefix for poly %d", i)
		}
		length := int(binary.LittleEndian.Uint32(data[:4]))
		data = data[4:]
		if len(data) < length {
			return nil, ring.NewSerializationError("rlwe: unmarshalPolys: truncated poly %d", i)
		}
		var p ring.Poly
		if err := p.UnmarshalBinary(data[:length]); err != nil {
			return nil, fmt.Errorf("rlwe: unmarshalPolys: poly %d: %w", i, err)
		}
		polys[i] = p
		data = data[length:]
	}
	if len(data) != 0 {
		return nil, ring.NewSerializationError("rlwe: unmarshalPolys: %d trailing bytes", len(data))
	}
	return polys, nil
}

// checkPolysInRange returns a *ring.DomainError if any poly has a
// coefficient outside r's canonical range [0, Modulus).
func checkPolysInRange(r *ring.Ring, polys ...ring.Poly) error {
	for i, p := range polys {
		if !r.InRange(p) {
			return ring.NewDomainError("component %d has a coefficient outside [0, %s)", i, r.Modulus)
		}
	}
	return nil
}

// MarshalBinary encodes sk as its single polynomial.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	return marshalPolys(sk.Value)
}

// UnmarshalBinary decodes data produced by MarshalBinary into sk.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	polys, err := unmarshalPolys(data, 1)
	if err != nil {
		return err
	}
	sk.Value = polys[0]
	return nil
}

// MarshalBinary encodes pk as its pair of polynomials, in order.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return marshalPolys(pk.Value[0], pk.Value[1])
}

// UnmarshalBinary decodes data produced by MarshalBinary into pk.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	polys, err := unmarshalPolys(data, 2)
	if err != nil {
		return err
	}
	pk.Value[0], pk.Value[1] = polys[0], polys[1]
	return nil
}

// CheckRange reports a *ring.DomainError if pk's coefficients are not
// canonical elements of ringQ. Deserialization alone cannot tell a
// malformed-but-in-range key apart from a well-formed one; this is the
// separate check spec.md §7 requires before a decoded key is trusted.
func (pk *PublicKey) CheckRange(ringQ *ring.Ring) error {
	return checkPolysInRange(ringQ, pk.Value[0], pk.Value[1])
}

// MarshalBinary encodes rlk as its pair of polynomials, in order.
func (rlk *RelinearizationKey) MarshalBinary() ([]byte, error) {
	return marshalPolys(rlk.Value[0], rlk.Value[1])
}

// UnmarshalBinary decodes data produced by MarshalBinary into rlk.
func (rlk *RelinearizationKey) UnmarshalBinary(data []byte) error {
	polys, err := unmarshalPolys(data, 2)
	if err != nil {
		return err
	}
	rlk.Value[0], rlk.Value[1] = polys[0], polys[1]
	return nil
}

// CheckRange reports a *ring.DomainError if rlk's coefficients are not
// canonical elements of ringQP.
func (rlk *RelinearizationKey) CheckRange(ringQP *ring.Ring) error {
	return checkPolysInRange(ringQP, rlk.Value[0], rlk.Value[1])
}

// MarshalBinary encodes ct as its pair of polynomials, in order.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	return marshalPolys(ct.Value[0], ct.Value[1])
}

// UnmarshalBinary decodes data produced by MarshalBinary into ct.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	polys, err := unmarshalPolys(data, 2)
	if err != nil {
		return err
	}
	ct.Value[0], ct.Value[1] = polys[0], polys[1]
	return nil
}

// CheckRange reports a *ring.DomainError if ct's coefficients are not
// canonical elements of ringQ.
func (ct *Ciphertext) CheckRange(ringQ *ring.Ring) error {
	return checkPolysInRange(ringQ, ct.Value[0], ct.Value[1])
}
