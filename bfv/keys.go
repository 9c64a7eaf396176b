package bfv

import "github.com/MarzioHr/bfv-go/rlwe"

// SecretKey, PublicKey, RelinearizationKey and Ciphertext are the
// ring-LWE objects defined in package rlwe; BFV adds plaintext encoding
// and Delta-scaling on top of them but does not need a different
// representation, so it reuses the rlwe types directly.
type (
	SecretKey          = rlwe.SecretKey
	PublicKey          = rlwe.PublicKey
	RelinearizationKey = rlwe.RelinearizationKey
	Ciphertext         = rlwe.Ciphertext
)
