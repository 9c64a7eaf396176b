// Package sampling provides the process-wide random source abstraction
// and the three coefficient-vector distributions BFV key generation and
// encryption draw from: ternary, uniform, and discrete Gaussian.
package sampling
