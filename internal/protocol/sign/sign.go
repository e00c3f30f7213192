// Package sign implements ECDSA signing and verification over a
// short-Weierstrass curve.
package sign

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/digest"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

var one = big.NewInt(1)

// Sign signs the message digest hash with the private key d, which must
// pass keygen.CheckPrivateKey.
//
// A fresh nonce k is drawn from [1, n-1] for every attempt using random
// (crypto/rand.Reader when nil). The nonce is redrawn when r == 0, s == 0,
// or k or s has no inverse modulo n (only possible for a composite n).
func Sign(params *curves.Params, d *big.Int, hash []byte, random io.Reader, opts ...Option) (*Signature, error) {
	o := newOptions(opts)
	if err := keygen.CheckPrivateKey(params, d); err != nil {
		return nil, err
	}

	n := params.N
	e := digest.HashToInt(hash, n)

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		k, err := field.RandNonZero(random, n)
		if err != nil {
			return nil, fmt.Errorf("sign: failed to draw nonce: %w", err)
		}

		kInv, err := field.ModInverse(k, n)
		if err != nil {
			if errors.Is(err, ecerr.ErrNoInverse) {
				o.logger.Debug("nonce not invertible, redrawing", zap.Int("attempt", attempt))
				continue
			}
			return nil, fmt.Errorf("sign: failed to invert nonce: %w", err)
		}

		R, err := curves.ScalarBaseMult(k, params)
		if err != nil {
			return nil, fmt.Errorf("sign: failed to compute k*G: %w", err)
		}
		if R.IsIdentity() {
			o.logger.Debug("k*G is the identity, redrawing", zap.Int("attempt", attempt))
			continue
		}

		// r = R.x mod n
		r := field.Normalize(R.X, n)
		if r.Sign() == 0 {
			o.logger.Debug("r is zero, redrawing", zap.Int("attempt", attempt))
			continue
		}

		// s = k^-1 * (e + r*d) mod n
		s := field.Mul(kInv, field.Add(e, field.Mul(r, d, n), n), n)
		if s.Sign() == 0 {
			o.logger.Debug("s is zero, redrawing", zap.Int("attempt", attempt))
			continue
		}
		if new(big.Int).GCD(nil, nil, s, n).Cmp(one) != 0 {
			o.logger.Debug("s not invertible, redrawing", zap.Int("attempt", attempt))
			continue
		}

		return &Signature{R: r, S: s}, nil
	}

	return nil, ecerr.New(ecerr.ErrSigningRetryExhausted,
		fmt.Sprintf("no valid signature after %d nonces", o.maxAttempts))
}

// SignMessage hashes msg with alg and signs the digest.
func SignMessage(params *curves.Params, d *big.Int, alg digest.Algorithm, msg []byte, random io.Reader, opts ...Option) (*Signature, error) {
	hash, err := alg.Sum(msg)
	if err != nil {
		return nil, err
	}
	return Sign(params, d, hash, random, opts...)
}
