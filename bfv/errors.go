package bfv

import (
	"fmt"

	"github.com/MarzioHr/bfv-go/ring"
)

// ParameterError reports that a Parameters value violates one of the
// constraints in spec.md §3: N not a power of two, T >= Q, or a
// non-positive modulus or standard deviation.
type ParameterError struct {
	msg string
}

func (e *ParameterError) Error() string { return "bfv: parameter error: " + e.msg }

func newParameterError(format string, args ...any) *ParameterError {
	return &ParameterError{msg: fmt.Sprintf(format, args...)}
}

// DomainError reports that a value passed to a primitive falls outside
// its declared domain: a plaintext integer outside [0, T), a key or
// ciphertext with the wrong coefficient count, a deserialized key or
// ciphertext whose coefficients fall outside its ring's canonical
// range, or a deserialized secret key with a non-ternary coefficient
// (spec.md §7). This is the same identity as ring.DomainError: the
// range check on decoded keys and ciphertexts happens down in package
// rlwe, where the ring actually lives, while the plaintext, coefficient
// count and ternary checks happen in this package, and aliasing keeps
// errors.As matching one type across that boundary without an extra
// wrap.
type DomainError = ring.DomainError

func newDomainError(format string, args ...any) *DomainError {
	return ring.NewDomainError(format, args...)
}

// SerializationError reports that a byte sequence could not be parsed
// into the expected shape (spec.md §7). Aliased to ring.SerializationError
// for the same reason as DomainError above: parse failures originate in
// package ring's Poly.UnmarshalBinary, or in rlwe's framing around it,
// long before a caller ever sees a bfv.Ciphertext or bfv.PublicKey.
type SerializationError = ring.SerializationError

// Note on CorruptedResult (spec.md §7): when accumulated noise exceeds
// Q/(2T), Decrypt still returns a value — there is no way to detect this
// from inside the core without side information, so no error type is
// raised for it. Callers that need integrity must wrap ciphertexts with
// their own authentication tag before handing them to a transport.
