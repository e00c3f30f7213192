// Package schnorr implements a non-interactive Schnorr proof of knowledge of
// a discrete logarithm: given Q, it proves knowledge of d with Q = d*G.
// Key generation attaches such a proof as a proof of possession.
package schnorr

import (
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/digest"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// Proof is a Schnorr proof of knowledge of d with Q = d*G.
type Proof struct {
	R curves.Point // Commitment R = k * G
	S *big.Int     // Response s = k + e * d mod n
}

// Prove generates a proof for the secret d and public key Q = d*G. The nonce
// is drawn from random, or crypto/rand.Reader when nil.
func Prove(params *curves.Params, d *big.Int, Q curves.Point, random io.Reader) (*Proof, error) {
	if d == nil || d.Sign() <= 0 || d.Cmp(params.N) >= 0 {
		return nil, ecerr.New(ecerr.ErrInvalidScalar, "schnorr: secret must be in [1, n-1]")
	}
	n := params.N

	// 1. Generate random nonce k
	k, err := field.RandNonZero(random, n)
	if err != nil {
		return nil, err
	}

	// 2. Compute R = k * G
	R, err := curves.ScalarBaseMult(k, params)
	if err != nil {
		return nil, err
	}

	// 3. Compute challenge e = H(G, Q, R)
	e, err := challenge(params, Q, R)
	if err != nil {
		return nil, err
	}

	// 4. Compute s = k + e * d mod n
	s := field.Add(k, field.Mul(e, d, n), n)

	return &Proof{R: R, S: s}, nil
}

// Verify checks the proof for public key Q.
func (p *Proof) Verify(params *curves.Params, Q curves.Point) bool {
	if p == nil || p.S == nil {
		return false
	}
	if p.S.Sign() < 0 || p.S.Cmp(params.N) >= 0 {
		return false
	}
	if p.R.IsIdentity() || !params.IsOnCurve(p.R) || Q.IsIdentity() || !params.IsOnCurve(Q) {
		return false
	}

	e, err := challenge(params, Q, p.R)
	if err != nil {
		return false
	}

	// s*G = R + e*Q
	lhs, err := curves.ScalarBaseMult(p.S, params)
	if err != nil {
		return false
	}
	eQ, err := curves.ScalarMult(e, Q, params)
	if err != nil {
		return false
	}
	rhs, err := curves.Add(p.R, eQ, params)
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// challenge computes H(G || Q || R) reduced modulo n, with every point in
// uncompressed SEC 1 form.
func challenge(params *curves.Params, Q, R curves.Point) (*big.Int, error) {
	h, err := digest.Default.New()
	if err != nil {
		return nil, err
	}
	for _, pt := range []curves.Point{params.G, Q, R} {
		if _, err := io.WriteString(h, params.EncodePoint(pt, false)); err != nil {
			return nil, fmt.Errorf("schnorr: %w", err)
		}
	}
	e := digest.HashToInt(h.Sum(nil), params.N)
	return field.Normalize(e, params.N), nil
}
