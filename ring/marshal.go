package ring

import (
	"encoding/binary"
	"math/big"
)

// MarshalBinary encodes p as a canonical byte sequence: a little-endian
// uint32 coefficient count, followed by each coefficient as a one-byte
// sign (0 = zero, 1 = positive, 2 = negative), a little-endian uint32
// magnitude-byte-length, and the big-endian magnitude bytes themselves.
// Exact layout is implementation-defined (spec.md §6); the only
// contract is that UnmarshalBinary inverts it exactly.
func (p Poly) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(p.N()))

	for _, c := range p.Coeffs {
		var sign byte
		switch c.Sign() {
		case 0:
			sign = 0
		case 1:
			sign = 1
		default:
			sign = 2
		}
		mag := new(big.Int).Abs(c).Bytes()

		lenBuf := make([]byte, 4)
		binary.LittleEndian.PutUint32(lenBuf, uint32(len(mag)))

		buf = append(buf, sign)
		buf = append(buf, lenBuf...)
		buf = append(buf, mag...)
	}
	return buf, nil
}

// UnmarshalBinary decodes a byte sequence produced by MarshalBinary into
// p, replacing its coefficients.
func (p *Poly) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return NewSerializationError("UnmarshalBinary: truncated header")
	}
	n := int(binary.LittleEndian.Uint32(data[:4]))
	data = data[4:]

	coeffs := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		if len(data) < 5 {
			return NewSerializationError("UnmarshalBinary: truncated coefficient %d", i)
		}
		sign := data[0]
		length := int(binary.LittleEndian.Uint32(data[1:5]))
		data = data[5:]
		if len(data) < length {
			return NewSerializationError("UnmarshalBinary: truncated magnitude for coefficient %d", i)
		}
		mag := data[:length]
		data = data[length:]

		c := new(big.Int).SetBytes(mag)
		switch sign {
		case 0:
			c.SetInt64(0)
		case 2:
			c.Neg(c)
		case 1:
		default:
			return NewSerializationError("UnmarshalBinary: invalid sign byte %d for coefficient %d", sign, i)
		}
		coeffs[i] = c
	}

	if len(data) != 0 {
		return NewSerializationError("UnmarshalBinary: %d trailing bytes", len(data))
	}

	p.Coeffs = coeffs
	return nil
}
