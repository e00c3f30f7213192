package schnorr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

func keyPair(t *testing.T, params *curves.Params) (*big.Int, curves.Point) {
	t.Helper()
	d, err := field.RandNonZero(nil, params.N)
	require.NoError(t, err)
	Q, err := curves.ScalarBaseMult(d, params)
	require.NoError(t, err)
	return d, Q
}

func TestSchnorrProof(t *testing.T) {
	for _, params := range []*curves.Params{curves.Secp256k1(), curves.Toy9739()} {
		d, Q := keyPair(t, params)

		proof, err := Prove(params, d, Q, nil)
		require.NoError(t, err)
		assert.True(t, proof.Verify(params, Q), params.Name)
	}
}

func TestSchnorrProofInvalid(t *testing.T) {
	params := curves.Secp256k1()
	d, Q := keyPair(t, params)
	_, other := keyPair(t, params)

	proof, err := Prove(params, d, Q, nil)
	require.NoError(t, err)

	assert.False(t, proof.Verify(params, other), "proof must not verify for another key")

	tampered := &Proof{R: proof.R, S: field.Add(proof.S, big.NewInt(1), params.N)}
	assert.False(t, tampered.Verify(params, Q), "tampered response")

	assert.False(t, (&Proof{R: proof.R, S: params.N}).Verify(params, Q), "response out of range")
	assert.False(t, (&Proof{R: curves.Identity(), S: proof.S}).Verify(params, Q), "identity commitment")
	assert.False(t, (*Proof)(nil).Verify(params, Q))
}

func TestProveRejectsBadSecret(t *testing.T) {
	params := curves.Toy9739()
	for _, d := range []*big.Int{nil, big.NewInt(0), params.N} {
		_, err := Prove(params, d, params.G, nil)
		assert.ErrorIs(t, err, ecerr.ErrInvalidScalar)
	}
}
