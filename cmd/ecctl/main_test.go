package main

import (
	"bytes"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config.New())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func runYAML(t *testing.T, args ...string) map[string]interface{} {
	t.Helper()
	out, err := run(t, append(args, "-o", "yaml")...)
	require.NoError(t, err)
	rec := map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	return rec
}

func TestKeygenFromPrivate(t *testing.T) {
	rec := runYAML(t, "keygen", "--curve", "toy9739", "--private", "1")
	assert.Equal(t, "toy9739", rec["curve"])
	assert.Equal(t, "1", rec["private"])
	assert.Equal(t, "041f6d1b18", rec["public"])
	assert.Equal(t, "021f6d", rec["compressed"])
}

func TestKeygenProof(t *testing.T) {
	rec := runYAML(t, "keygen", "--prove")
	params := curves.Secp256k1()

	Q, err := params.ParsePoint(rec["public"].(string))
	require.NoError(t, err)
	R, err := params.ParsePoint(rec["proof_r"].(string))
	require.NoError(t, err)
	s, ok := new(big.Int).SetString(rec["proof_s"].(string), 16)
	require.True(t, ok)

	valid, err := keygen.VerifyPossession(params, Q, &schnorr.Proof{R: R, S: s})
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestKeygenRejectsOutOfRange(t *testing.T) {
	_, err := run(t, "keygen", "--curve", "toy9739", "--private", "cad")
	assert.ErrorIs(t, err, ecerr.ErrInvalidScalar)
}

func TestKeygenRejectsKeySharingFactorWithOrder(t *testing.T) {
	// 0x37 = 55 divides the toy group order 3245.
	_, err := run(t, "keygen", "--curve", "toy9739", "--private", "37")
	assert.ErrorIs(t, err, ecerr.ErrInvalidScalar)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, curve := range []string{"secp256k1", "toy9739"} {
		t.Run(curve, func(t *testing.T) {
			key := runYAML(t, "keygen", "--curve", curve)
			priv, pub := key["private"].(string), key["public"].(string)

			sig := runYAML(t, "sign", "--curve", curve, "--key", priv, "--message", "hello")
			if curve == "secp256k1" {
				assert.NotEmpty(t, sig["der"])
			} else {
				assert.NotContains(t, sig, "der")
			}

			out, err := run(t, "verify", "--curve", curve, "--pub", pub, "--message", "hello",
				"--signature", sig["signature"].(string))
			require.NoError(t, err)
			assert.Contains(t, out, "valid: true")

			out, err = run(t, "verify", "--curve", curve, "--pub", pub, "--message", "hello",
				"--r", sig["r"].(string), "--s", sig["s"].(string))
			require.NoError(t, err)
			assert.Contains(t, out, "valid: true")

			if curve == "toy9739" {
				// A forgery passes with probability about 1/n here.
				return
			}
			out, err = run(t, "verify", "--curve", curve, "--pub", pub, "--message", "goodbye",
				"--signature", sig["signature"].(string))
			assert.ErrorIs(t, err, errInvalidSignature)
			assert.Contains(t, out, "valid: false")
		})
	}
}

func TestSignMessageFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.txt")
	require.NoError(t, os.WriteFile(path, []byte("from a file"), 0o600))

	key := runYAML(t, "keygen")
	sig := runYAML(t, "sign", "--key", key["private"].(string), "--file", path, "--hash", "sha3-256")
	assert.Equal(t, "sha3-256", sig["hash"])

	_, err := run(t, "verify", "--pub", key["public"].(string), "--file", path, "--hash", "sha3-256",
		"--signature", sig["signature"].(string))
	require.NoError(t, err)
}

func TestSignRequiresMessage(t *testing.T) {
	_, err := run(t, "sign", "--key", "1")
	assert.EqualError(t, err, "one of --message or --file is required")

	_, err = run(t, "sign", "--key", "1", "--message", "a", "--file", "b")
	assert.Error(t, err)
}

func TestVerifyRejectsOutOfRangeSignature(t *testing.T) {
	key := runYAML(t, "keygen")
	_, err := run(t, "verify", "--pub", key["public"].(string), "--message", "m", "--r", "0", "--s", "1")
	assert.ErrorIs(t, err, ecerr.ErrInvalidSignatureComponent)
}

func TestEnumerate(t *testing.T) {
	out, err := run(t, "enumerate", "--curve", "toy9739", "--x", "8045", "--limit", "2", "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "points: 9735\n")
	assert.Contains(t, out, "order: 3245\n")
	assert.Contains(t, out, "cofactor: 3\n")
	assert.Contains(t, out, "roots: (6936, 2803)\n")
	assert.Contains(t, out, "table:\n")

	_, err = run(t, "enumerate", "--curve", "toy9739", "--x", "9739")
	assert.Error(t, err)
}

func TestEnumerateLargeCurve(t *testing.T) {
	_, err := run(t, "enumerate")
	assert.ErrorIs(t, err, ecerr.ErrUnsupportedCurve)
}

func TestOrbit(t *testing.T) {
	rec := runYAML(t, "orbit", "--curve", "toy9739", "--steps", "2")
	assert.Equal(t, "3245", rec["order"])
	assert.Equal(t, []interface{}{"(3450, 9714)", "(7108, 8720)"}, rec["points"])

	rec = runYAML(t, "orbit", "--steps", "1")
	assert.NotContains(t, rec, "order")
	assert.Len(t, rec["points"], 1)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("curve: toy9739\noutput: yaml\n"), 0o600))

	out, err := run(t, "--config", path, "keygen", "--private", "2")
	require.NoError(t, err)
	rec := map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "toy9739", rec["curve"])
	assert.Equal(t, "040d7a25f2", rec["public"])

	// Flags win over the file.
	out, err = run(t, "--config", path, "--output", "text", "keygen", "--private", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "public: 040d7a25f2\n")
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "--curve", "p256", "keygen")
	assert.ErrorIs(t, err, ecerr.ErrUnknownCurve)

	_, err = run(t, "--log-level", "loud", "keygen")
	assert.Error(t, err)
}
