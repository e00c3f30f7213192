package sign

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/digest"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// repeatReader yields the same bytes forever.
type repeatReader []byte

func (r repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r[i%len(r)]
	}
	return len(p), nil
}

func testKey(t *testing.T, params *curves.Params) *keygen.KeyPair {
	t.Helper()
	kp, err := keygen.Generate(params, nil)
	require.NoError(t, err)
	return kp
}

func TestSignVerifySecp256k1(t *testing.T) {
	params := curves.Secp256k1()
	kp := testKey(t, params)
	hash := sha256.Sum256([]byte("hello weierstrass"))

	sig, err := Sign(params, kp.D, hash[:], nil, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	require.NoError(t, CheckSignature(params, sig))

	ok, err := Verify(params, kp.Q, hash[:], sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsTampering(t *testing.T) {
	params := curves.Secp256k1()
	kp := testKey(t, params)
	hash := sha256.Sum256([]byte("message"))

	sig, err := Sign(params, kp.D, hash[:], nil)
	require.NoError(t, err)

	t.Run("flipped digest bit", func(t *testing.T) {
		for _, bit := range []int{0, 7, 100, 255} {
			tampered := append([]byte(nil), hash[:]...)
			tampered[bit/8] ^= 1 << (bit % 8)
			ok, err := Verify(params, kp.Q, tampered, sig)
			require.NoError(t, err)
			assert.False(t, ok, "bit %d", bit)
		}
	})

	t.Run("flipped signature bit", func(t *testing.T) {
		raw := sig.Bytes(params)
		for _, bit := range []int{3, 260, 511} {
			tampered := append([]byte(nil), raw...)
			tampered[bit/8] ^= 1 << (bit % 8)
			bad, err := ParseSignature(params, tampered)
			require.NoError(t, err)
			if CheckSignature(params, bad) != nil {
				continue
			}
			ok, err := Verify(params, kp.Q, hash[:], bad)
			require.NoError(t, err)
			assert.False(t, ok, "bit %d", bit)
		}
	})

	t.Run("other key", func(t *testing.T) {
		other := testKey(t, params)
		ok, err := Verify(params, other.Q, hash[:], sig)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestVerifyRangeErrors(t *testing.T) {
	params := curves.Secp256k1()
	kp := testKey(t, params)
	hash := sha256.Sum256([]byte("range"))

	tests := []struct {
		name string
		sig  *Signature
	}{
		{"nil", nil},
		{"r zero", &Signature{R: big.NewInt(0), S: big.NewInt(1)}},
		{"s zero", &Signature{R: big.NewInt(1), S: big.NewInt(0)}},
		{"r equals n", &Signature{R: new(big.Int).Set(params.N), S: big.NewInt(1)}},
		{"s above n", &Signature{R: big.NewInt(1), S: new(big.Int).Add(params.N, big.NewInt(5))}},
		{"negative r", &Signature{R: big.NewInt(-1), S: big.NewInt(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Verify(params, kp.Q, hash[:], tt.sig)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ecerr.ErrInvalidSignatureComponent)
		})
	}
}

func TestVerifyInvalidPublicKey(t *testing.T) {
	params := curves.Secp256k1()
	hash := sha256.Sum256([]byte("pk"))
	sig := &Signature{R: big.NewInt(1), S: big.NewInt(1)}

	_, err := Verify(params, curves.Identity(), hash[:], sig)
	assert.ErrorIs(t, err, ecerr.ErrInvalidPublicKey)

	_, err = Verify(params, curves.NewPointInt64(1, 1), hash[:], sig)
	assert.ErrorIs(t, err, ecerr.ErrInvalidPublicKey)
}

func TestSignInvalidPrivateKey(t *testing.T) {
	params := curves.Secp256k1()
	hash := sha256.Sum256([]byte("d"))

	for _, d := range []*big.Int{nil, big.NewInt(0), big.NewInt(-3), params.N} {
		_, err := Sign(params, d, hash[:], nil)
		assert.ErrorIs(t, err, ecerr.ErrInvalidScalar)
	}
}

func TestSignToyCurve(t *testing.T) {
	params := curves.Toy9739()
	kp, err := keygen.FromPrivate(params, big.NewInt(1234))
	require.NoError(t, err)

	for _, msg := range []string{"a", "b", "toy curve message"} {
		sig, err := SignMessage(params, kp.D, digest.SHA1, []byte(msg), nil)
		require.NoError(t, err)

		ok, err := VerifyMessage(params, kp.Q, digest.SHA1, []byte(msg), sig)
		require.NoError(t, err)
		assert.True(t, ok, msg)
	}
}

func TestSignEveryToyKey(t *testing.T) {
	params := curves.Toy9739()
	n := params.N.Int64()

	// The toy order has 12 bits, so a 2-byte digest maps to its top 12
	// bits: e = 0 and e = 55 = 5*11 are multiples of factors of n.
	digests := [][]byte{{0x00, 0x00}, {0x03, 0x70}}
	h := sha256.Sum256([]byte("every toy key"))
	digests = append(digests, h[:])
	require.Equal(t, int64(55), digest.HashToInt(digests[1], params.N).Int64())

	signed := 0
	for d := int64(1); d < n; d++ {
		D := big.NewInt(d)
		if new(big.Int).GCD(nil, nil, D, params.N).Cmp(one) != 0 {
			_, err := Sign(params, D, digests[0], nil)
			require.ErrorIs(t, err, ecerr.ErrInvalidScalar, "d=%d", d)
			continue
		}

		Q, err := curves.ScalarBaseMult(D, params)
		require.NoError(t, err)
		for _, hash := range digests {
			sig, err := Sign(params, D, hash, nil)
			require.NoError(t, err, "d=%d hash=%x", d, hash)

			ok, err := Verify(params, Q, hash, sig)
			require.NoError(t, err, "d=%d hash=%x", d, hash)
			require.True(t, ok, "d=%d hash=%x", d, hash)
		}
		signed++
	}
	assert.Equal(t, 2320, signed)
}

func TestSignRedrawsNonInvertibleNonce(t *testing.T) {
	params := curves.Toy9739()
	require.Equal(t, int64(3245), params.N.Int64())
	kp, err := keygen.FromPrivate(params, big.NewInt(76))
	require.NoError(t, err)
	hash := sha256.Sum256([]byte("redraw"))

	// Two bytes {0x00, 0x04} make the nonce k = 5, which shares a factor
	// with n = 3245 and must be rejected.
	random := io.MultiReader(bytes.NewReader([]byte{0x00, 0x04}), rand.Reader)
	sig, err := Sign(params, kp.D, hash[:], random)
	require.NoError(t, err)

	ok, err := Verify(params, kp.Q, hash[:], sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSignRetryExhausted(t *testing.T) {
	params := curves.Toy9739()
	kp, err := keygen.FromPrivate(params, big.NewInt(76))
	require.NoError(t, err)
	hash := sha256.Sum256([]byte("exhaust"))

	_, err = Sign(params, kp.D, hash[:], repeatReader{0x00, 0x04}, WithMaxNonceAttempts(3))
	assert.ErrorIs(t, err, ecerr.ErrSigningRetryExhausted)
}

func TestSignatureBytesRoundTrip(t *testing.T) {
	params := curves.Secp256k1()
	sig := &Signature{R: big.NewInt(1), S: big.NewInt(0xabcdef)}
	raw := sig.Bytes(params)
	assert.Len(t, raw, 64)

	parsed, err := ParseSignature(params, raw)
	require.NoError(t, err)
	assert.True(t, sig.IsEqual(parsed))

	_, err = ParseSignature(params, raw[:63])
	assert.ErrorIs(t, err, ecerr.ErrInvalidSignatureComponent)
}
