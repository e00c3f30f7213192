// Package keygen generates ECDSA key pairs over a short-Weierstrass curve.
package keygen

import (
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// MaxKeyDraws bounds the number of candidates Generate draws before it
// gives up. Only a composite group order makes a redraw necessary.
const MaxKeyDraws = 64

// Generate draws a private key uniformly from the integers in [1, n-1]
// coprime to n using random (crypto/rand.Reader when nil) and derives the
// public key.
func Generate(params *curves.Params, random io.Reader) (*KeyPair, error) {
	for i := 0; i < MaxKeyDraws; i++ {
		d, err := field.RandNonZero(random, params.N)
		if err != nil {
			return nil, fmt.Errorf("keygen: failed to draw private key: %w", err)
		}
		if new(big.Int).GCD(nil, nil, d, params.N).Cmp(one) != 0 {
			continue
		}
		return FromPrivate(params, d)
	}
	return nil, ecerr.New(ecerr.ErrInvalidScalar,
		fmt.Sprintf("no private key coprime to n after %d draws", MaxKeyDraws))
}

// FromPrivate derives the key pair of an existing private key.
func FromPrivate(params *curves.Params, d *big.Int) (*KeyPair, error) {
	if err := CheckPrivateKey(params, d); err != nil {
		return nil, err
	}

	Q, err := curves.ScalarBaseMult(d, params)
	if err != nil {
		return nil, fmt.Errorf("keygen: failed to derive public key: %w", err)
	}
	// d in [1, n-1] and G of order n cannot give the identity
	if err := CheckPublicKey(params, Q); err != nil {
		return nil, err
	}

	return &KeyPair{
		D: new(big.Int).Set(d),
		Q: Q,
	}, nil
}
