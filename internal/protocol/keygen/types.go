package keygen

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

var one = big.NewInt(1)

// KeyPair is an ECDSA key pair: the private scalar D in [1, n-1] and the
// public point Q = D*G.
type KeyPair struct {
	D *big.Int
	Q curves.Point
}

// PublicKey returns a copy of Q.
func (kp *KeyPair) PublicKey() curves.Point {
	return curves.NewPoint(kp.Q.X, kp.Q.Y)
}

// Validate checks that D is in range, Q is a non-identity point on the curve
// and Q = D*G.
func (kp *KeyPair) Validate(params *curves.Params) error {
	if err := CheckPrivateKey(params, kp.D); err != nil {
		return err
	}
	if err := CheckPublicKey(params, kp.Q); err != nil {
		return err
	}
	Q, err := curves.ScalarBaseMult(kp.D, params)
	if err != nil {
		return err
	}
	if !Q.Equal(kp.Q) {
		return ecerr.New(ecerr.ErrInvalidPublicKey, "public key does not match private key")
	}
	return nil
}

// CheckPrivateKey checks that d is in [1, n-1] and coprime to n.
//
// For a prime n every d in range is coprime. For a composite n (the toy
// curve has n = 5*11*59) a key sharing a factor q with n cannot sign any
// digest e with q | e, since s = k^-1 * (e + r*d) is then a multiple of q
// for every nonce.
func CheckPrivateKey(params *curves.Params, d *big.Int) error {
	nMinus1 := new(big.Int).Sub(params.N, one)
	if !field.InRange(d, one, nMinus1) {
		return ecerr.New(ecerr.ErrInvalidScalar, "private key must be in [1, n-1]")
	}
	if new(big.Int).GCD(nil, nil, d, params.N).Cmp(one) != 0 {
		return ecerr.New(ecerr.ErrInvalidScalar,
			fmt.Sprintf("private key %s shares a factor with n = %s", d, params.N))
	}
	return nil
}

// CheckPublicKey checks that Q is a non-identity point on the curve.
func CheckPublicKey(params *curves.Params, Q curves.Point) error {
	if Q.IsIdentity() {
		return ecerr.New(ecerr.ErrInvalidPublicKey, "public key is the identity")
	}
	if !params.IsOnCurve(Q) {
		return ecerr.New(ecerr.ErrInvalidPublicKey, fmt.Sprintf("public key %s is not on curve %s", Q, params.Name))
	}
	return nil
}
