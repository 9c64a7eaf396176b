// Package ring implements polynomial arithmetic over the negacyclic ring
// R = Z[x]/(x^n+1), in plain coefficient representation (no NTT, no RNS
// limb splitting). It exposes two arithmetic layers over the same Poly
// type: "reduced" operations, which carry a Ring with a coefficient
// modulus M and return canonical representatives in [0, M), and "bare"
// operations, which only fold exponents modulo x^n+1 and leave
// coefficients as unbounded signed integers.
package ring
