package bfv

import (
	"fmt"

	"github.com/zeebo/blake3"
)

// marshalable is satisfied by every persistable type in this package
// (SecretKey, PublicKey, RelinearizationKey, Ciphertext all get
// MarshalBinary from package rlwe).
type marshalable interface {
	MarshalBinary() ([]byte, error)
}

// Checksum returns the blake3 digest of x's canonical serialization. It
// is not part of the cryptographic contract — the core does not
// authenticate anything (spec.md §7) — but it gives a cheap, stable
// fingerprint for determinism tests (spec.md §8 P6) and for a caller
// that wants to detect accidental corruption before handing a
// ciphertext to a transport.
func Checksum(x marshalable) ([32]byte, error) {
	data, err := x.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return blake3.Sum256(data), nil
}

// UnmarshalSecretKey decodes data into a SecretKey. A malformed byte
// sequence is a *SerializationError; a well-formed one whose
// coefficients are not all in {-1, 0, 1} is a *DomainError — a secret
// key is never reduced mod any modulus, so its domain is the ternary
// alphabet itself, not a ring range (spec.md §3, §7).
func UnmarshalSecretKey(data []byte) (*SecretKey, error) {
	var sk SecretKey
	if err := sk.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalSecretKey: %w", err)
	}
	for i, c := range sk.Value.Coeffs {
		if !c.IsInt64() || c.Int64() < -1 || c.Int64() > 1 {
			return nil, fmt.Errorf("bfv: UnmarshalSecretKey: %w", newDomainError("coefficient %d is not in {-1, 0, 1}", i))
		}
	}
	return &sk, nil
}

// UnmarshalPublicKey decodes data into a PublicKey under params. A
// malformed byte sequence is a *SerializationError; a well-formed one
// whose coefficients are not canonical elements of R_Q is a
// *DomainError (spec.md §7).
func UnmarshalPublicKey(params Parameters, data []byte) (*PublicKey, error) {
	var pk PublicKey
	if err := pk.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalPublicKey: %w", err)
	}
	ringQ, err := params.RingQ()
	if err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalPublicKey: %w", err)
	}
	if err := pk.CheckRange(ringQ); err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalPublicKey: %w", err)
	}
	return &pk, nil
}

// UnmarshalRelinearizationKey decodes data into a RelinearizationKey
// under params. A malformed byte sequence is a *SerializationError; a
// well-formed one whose coefficients are not canonical elements of
// R_QP is a *DomainError (spec.md §7).
func UnmarshalRelinearizationKey(params Parameters, data []byte) (*RelinearizationKey, error) {
	var rlk RelinearizationKey
	if err := rlk.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalRelinearizationKey: %w", err)
	}
	ringQP, err := params.rlweParams().RingQP()
	if err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalRelinearizationKey: %w", err)
	}
	if err := rlk.CheckRange(ringQP); err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalRelinearizationKey: %w", err)
	}
	return &rlk, nil
}

// UnmarshalCiphertext decodes data into a Ciphertext under params. A
// malformed byte sequence is a *SerializationError; a well-formed one
// whose coefficients are not canonical elements of R_Q is a
// *DomainError (spec.md §7).
func UnmarshalCiphertext(params Parameters, data []byte) (*Ciphertext, error) {
	var ct Ciphertext
	if err := ct.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalCiphertext: %w", err)
	}
	ringQ, err := params.RingQ()
	if err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalCiphertext: %w", err)
	}
	if err := ct.CheckRange(ringQ); err != nil {
		return nil, fmt.Errorf("bfv: UnmarshalCiphertext: %w", err)
	}
	return &ct, nil
}
