package bfv

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarzioHr/bfv-go/sampling"
)

// toyParams is the "toy parameter set" of spec.md §8: n=4, Q=2^16,
// T=16, P=2^8, sigma=1, sigma'=2.
func toyParams(t *testing.T) Parameters {
	p, err := NewParameters(4, big.NewInt(1<<16), big.NewInt(16), big.NewInt(1<<8), 1, 2)
	require.NoError(t, err)
	return p
}

type testHarness struct {
	params    Parameters
	sk        *SecretKey
	pk        *PublicKey
	rlk       *RelinearizationKey
	encryptor *Encryptor
	decryptor *Decryptor
	evaluator *Evaluator
}

func newHarness(t *testing.T, params Parameters, seed string) *testHarness {
	prng, err := sampling.NewKeyedPRNG([]byte(seed))
	require.NoError(t, err)

	kg, err := NewKeyGenerator(params, prng)
	require.NoError(t, err)
	sk, pk, err := kg.GenKeyPair()
	require.NoError(t, err)
	rlk, err := kg.GenRelinearizationKey(sk)
	require.NoError(t, err)

	encryptor, err := NewEncryptor(params, prng)
	require.NoError(t, err)
	decryptor, err := NewDecryptor(params)
	require.NoError(t, err)
	evaluator, err := NewEvaluator(params)
	require.NoError(t, err)

	return &testHarness{
		params: params, sk: sk, pk: pk, rlk: rlk,
		encryptor: encryptor, decryptor: decryptor, evaluator: evaluator,
	}
}

func (h *testHarness) encrypt(t *testing.T, m int64) *Ciphertext {
	ct, err := h.encryptor.Encrypt(h.pk, big.NewInt(m))
	require.NoError(t, err)
	return ct
}

func (h *testHarness) decrypt(t *testing.T, ct *Ciphertext) int64 {
	m, err := h.decryptor.Decrypt(h.sk, ct)
	require.NoError(t, err)
	return m.Int64()
}

// Scenario 1: Encrypt/decrypt small.
func TestScenarioEncryptDecryptSmall(t *testing.T) {
	h := newHarness(t, toyParams(t), "scenario-1")

	for _, m := range []int64{2, 0, 15} { // m=2, m=0, m=T-1
		ct := h.encrypt(t, m)
		require.Equal(t, m, h.decrypt(t, ct))
	}
}

// Scenario 2: Add.
func TestScenarioAdd(t *testing.T) {
	h := newHarness(t, toyParams(t), "scenario-2")

	ct1 := h.encrypt(t, 6)
	ct2 := h.encrypt(t, 3)
	sum, err := h.evaluator.Add(ct1, ct2)
	require.NoError(t, err)
	require.Equal(t, int64(9), h.decrypt(t, sum))
}

// Scenario 3: Add wrap.
func TestScenarioAddWrap(t *testing.T) {
	h := newHarness(t, toyParams(t), "scenario-3")

	ct1 := h.encrypt(t, 15)
	ct2 := h.encrypt(t, 3)
	sum, err := h.evaluator.Add(ct1, ct2)
	require.NoError(t, err)
	require.Equal(t, int64(2), h.decrypt(t, sum)) // (15+3) mod 16
}

// Scenario 4: Multiply.
func TestScenarioMultiply(t *testing.T) {
	h := newHarness(t, toyParams(t), "scenario-4")

	ct1 := h.encrypt(t, 2)
	ct2 := h.encrypt(t, 3)
	prod, err := h.evaluator.Mul(h.rlk, ct1, ct2)
	require.NoError(t, err)
	require.Equal(t, int64(6), h.decrypt(t, prod))
}

// Scenario 5: Multiply wrap.
func TestScenarioMultiplyWrap(t *testing.T) {
	h := newHarness(t, toyParams(t), "scenario-5")

	ct1 := h.encrypt(t, 5)
	ct2 := h.encrypt(t, 4)
	prod, err := h.evaluator.Mul(h.rlk, ct1, ct2)
	require.NoError(t, err)
	require.Equal(t, int64(4), h.decrypt(t, prod)) // 20 mod 16
}

// Scenario 6: Chain add-then-mul.
func TestScenarioChainAddThenMul(t *testing.T) {
	h := newHarness(t, toyParams(t), "scenario-6")

	sum, err := h.evaluator.Add(h.encrypt(t, 1), h.encrypt(t, 2))
	require.NoError(t, err)
	prod, err := h.evaluator.Mul(h.rlk, sum, h.encrypt(t, 3))
	require.NoError(t, err)
	require.Equal(t, int64(9), h.decrypt(t, prod))
}

// P1: roundtrip for every m in [0, T).
func TestRoundtripAllPlaintexts(t *testing.T) {
	params := toyParams(t)
	h := newHarness(t, params, "roundtrip-all")

	tInt := params.T().Int64()
	for m := int64(0); m < tInt; m++ {
		ct := h.encrypt(t, m)
		require.Equal(t, m, h.decrypt(t, ct), "m=%d", m)
	}
}

// P4: ciphertext freshness - two encryptions of the same plaintext must
// not be bitwise equal.
func TestEncryptIsRandomized(t *testing.T) {
	h := newHarness(t, toyParams(t), "freshness")

	ct1 := h.encrypt(t, 7)
	ct2 := h.encrypt(t, 7)

	require.False(t, ct1.Value[0].Equal(ct2.Value[0]) && ct1.Value[1].Equal(ct2.Value[1]))
	require.Equal(t, int64(7), h.decrypt(t, ct1))
	require.Equal(t, int64(7), h.decrypt(t, ct2))
}

// P5: coefficient ranges for every exposed polynomial.
func TestCoefficientRangesHold(t *testing.T) {
	params := toyParams(t)
	h := newHarness(t, params, "ranges")

	ringQ, err := params.RingQ()
	require.NoError(t, err)
	ringQP, err := params.rlweParams().RingQP()
	require.NoError(t, err)

	require.True(t, ringQ.InRange(h.pk.Value[0]))
	require.True(t, ringQ.InRange(h.pk.Value[1]))
	require.True(t, ringQP.InRange(h.rlk.Value[0]))
	require.True(t, ringQP.InRange(h.rlk.Value[1]))

	ct := h.encrypt(t, 9)
	require.True(t, ringQ.InRange(ct.Value[0]))
	require.True(t, ringQ.InRange(ct.Value[1]))
}

// P6: determinism under a seeded RNG.
func TestDeterminismUnderSeededRNG(t *testing.T) {
	params := toyParams(t)

	run := func() *Ciphertext {
		prng, err := sampling.NewKeyedPRNG([]byte("determinism-seed"))
		require.NoError(t, err)
		kg, err := NewKeyGenerator(params, prng)
		require.NoError(t, err)
		_, pk, err := kg.GenKeyPair()
		require.NoError(t, err)
		enc, err := NewEncryptor(params, prng)
		require.NoError(t, err)
		ct, err := enc.Encrypt(pk, big.NewInt(5))
		require.NoError(t, err)
		return ct
	}

	ct1, ct2 := run(), run()
	sum1, err := Checksum(ct1)
	require.NoError(t, err)
	sum2, err := Checksum(ct2)
	require.NoError(t, err)
	require.Equal(t, sum1, sum2)
}

// Out-of-range plaintexts are rejected with a DomainError.
func TestEncryptRejectsOutOfRangePlaintext(t *testing.T) {
	h := newHarness(t, toyParams(t), "domain-error")

	_, err := h.encryptor.Encrypt(h.pk, big.NewInt(16))
	require.Error(t, err)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)

	_, err = h.encryptor.Encrypt(h.pk, big.NewInt(-1))
	require.Error(t, err)
	require.ErrorAs(t, err, &domainErr)
}

func TestNewParametersRejectsBadValues(t *testing.T) {
	_, err := NewParameters(3, big.NewInt(100), big.NewInt(10), big.NewInt(4), 1, 1)
	require.Error(t, err)
	var paramErr *ParameterError
	require.ErrorAs(t, err, &paramErr)

	_, err = NewParameters(4, big.NewInt(10), big.NewInt(100), big.NewInt(4), 1, 1)
	require.Error(t, err)
	require.ErrorAs(t, err, &paramErr)
}

// Truncated or otherwise malformed bytes surface as *SerializationError
// at every level of the marshal taxonomy (spec.md §7), not a bare error.
func TestUnmarshalRejectsMalformedBytes(t *testing.T) {
	params := toyParams(t)
	h := newHarness(t, params, "malformed-bytes")

	ct := h.encrypt(t, 3)
	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	var serErr *SerializationError

	_, err = UnmarshalCiphertext(params, data[:len(data)-1])
	require.Error(t, err)
	require.ErrorAs(t, err, &serErr)

	_, err = UnmarshalPublicKey(params, []byte{1, 2, 3})
	require.Error(t, err)
	require.ErrorAs(t, err, &serErr)

	_, err = UnmarshalRelinearizationKey(params, []byte{1, 2, 3})
	require.Error(t, err)
	require.ErrorAs(t, err, &serErr)

	_, err = UnmarshalSecretKey([]byte{1, 2, 3})
	require.Error(t, err)
	require.ErrorAs(t, err, &serErr)
}

// A well-formed ciphertext round-trips through UnmarshalCiphertext.
func TestUnmarshalCiphertextRoundtrips(t *testing.T) {
	params := toyParams(t)
	h := newHarness(t, params, "unmarshal-ciphertext")

	ct := h.encrypt(t, 7)
	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	got, err := UnmarshalCiphertext(params, data)
	require.NoError(t, err)
	require.True(t, ct.Value[0].Equal(got.Value[0]))
	require.True(t, ct.Value[1].Equal(got.Value[1]))
}

// A ciphertext byte sequence that parses cleanly but carries a
// coefficient outside [0, Q) is a *DomainError, not silently accepted
// (spec.md §7).
func TestUnmarshalCiphertextRejectsOutOfRangeCoefficient(t *testing.T) {
	params := toyParams(t)
	h := newHarness(t, params, "out-of-range-coeff")

	ct := h.encrypt(t, 1)
	ct.Value[0].Coeffs[0].Set(params.Q()) // exactly Q is outside [0, Q)
	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	_, err = UnmarshalCiphertext(params, data)
	require.Error(t, err)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

// A secret key byte sequence that parses cleanly but carries a
// non-ternary coefficient is a *DomainError.
func TestUnmarshalSecretKeyRejectsNonTernaryCoefficient(t *testing.T) {
	params := toyParams(t)
	h := newHarness(t, params, "non-ternary-sk")

	sk := SecretKey{Value: h.sk.Value.CopyNew()}
	sk.Value.Coeffs[0].SetInt64(2)
	data, err := sk.MarshalBinary()
	require.NoError(t, err)

	_, err = UnmarshalSecretKey(data)
	require.Error(t, err)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

// Public keys and relinearization keys round-trip through their typed
// unmarshal functions.
func TestUnmarshalKeysRoundtrip(t *testing.T) {
	params := toyParams(t)
	h := newHarness(t, params, "unmarshal-keys")

	pkData, err := h.pk.MarshalBinary()
	require.NoError(t, err)
	gotPk, err := UnmarshalPublicKey(params, pkData)
	require.NoError(t, err)
	require.True(t, h.pk.Value[0].Equal(gotPk.Value[0]))

	rlkData, err := h.rlk.MarshalBinary()
	require.NoError(t, err)
	gotRlk, err := UnmarshalRelinearizationKey(params, rlkData)
	require.NoError(t, err)
	require.True(t, h.rlk.Value[0].Equal(gotRlk.Value[0]))

	skData, err := h.sk.MarshalBinary()
	require.NoError(t, err)
	gotSk, err := UnmarshalSecretKey(skData)
	require.NoError(t, err)
	require.True(t, h.sk.Value.Equal(gotSk.Value))
}
