package sign

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

func TestSignatureVerifiesWithDecred(t *testing.T) {
	params := curves.Secp256k1()
	kp := testKey(t, params)

	for i := 0; i < 8; i++ {
		hash := sha256.Sum256([]byte{byte(i)})
		sig, err := Sign(params, kp.D, hash[:], nil)
		require.NoError(t, err)

		ok, err := VerifySecp256k1(params, kp.Q, hash[:], sig)
		require.NoError(t, err)
		assert.True(t, ok)

		der, err := sig.SerializeDER(params)
		require.NoError(t, err)
		parsed, err := ParseDER(params, der)
		require.NoError(t, err)
		assert.Equal(t, 0, parsed.R.Cmp(sig.R))
		lowS := new(big.Int).Sub(params.N, sig.S)
		assert.True(t, parsed.S.Cmp(sig.S) == 0 || parsed.S.Cmp(lowS) == 0)

		ok, err = Verify(params, kp.Q, hash[:], parsed)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerifyDecredSignature(t *testing.T) {
	params := curves.Secp256k1()
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	hash := sha256.Sum256([]byte("signed by decred"))

	dsig := ecdsa.Sign(priv, hash[:])
	sig, err := ParseDER(params, dsig.Serialize())
	require.NoError(t, err)

	Q := curves.PointFromSecp256k1(priv.PubKey())
	ok, err := Verify(params, Q, hash[:], sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDecredInteropRejectsOtherCurves(t *testing.T) {
	params := curves.Toy9739()
	sig := &Signature{R: big.NewInt(1), S: big.NewInt(2)}

	_, err := sig.SerializeDER(params)
	assert.ErrorIs(t, err, ecerr.ErrUnsupportedCurve)

	_, err = ParseDER(params, []byte{0x30})
	assert.ErrorIs(t, err, ecerr.ErrUnsupportedCurve)
}

func TestParseDERMalformed(t *testing.T) {
	_, err := ParseDER(curves.Secp256k1(), []byte{0x30, 0x01, 0x02})
	assert.ErrorIs(t, err, ecerr.ErrInvalidSignatureComponent)
}
