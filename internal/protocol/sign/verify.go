package sign

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/digest"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// Verify reports whether sig is a valid signature of the digest hash under
// the public key Q.
//
// An invalid signature yields false with a nil error. Errors are reserved for
// malformed input: r or s outside [1, n-1] (ecerr.ErrInvalidSignatureComponent)
// or a public key that is the identity or not on the curve
// (ecerr.ErrInvalidPublicKey).
func Verify(params *curves.Params, Q curves.Point, hash []byte, sig *Signature) (bool, error) {
	if err := CheckSignature(params, sig); err != nil {
		return false, err
	}
	if err := keygen.CheckPublicKey(params, Q); err != nil {
		return false, err
	}

	n := params.N
	e := digest.HashToInt(hash, n)

	w, err := field.ModInverse(sig.S, n)
	if err != nil {
		return false, nil
	}
	u1 := field.Mul(e, w, n)
	u2 := field.Mul(sig.R, w, n)

	// P = u1*G + u2*Q
	P, err := curves.LinearCombination(u1, params.G, u2, Q, params)
	if err != nil {
		return false, fmt.Errorf("sign: failed to compute u1*G + u2*Q: %w", err)
	}
	if P.IsIdentity() {
		return false, nil
	}

	return field.Normalize(P.X, n).Cmp(sig.R) == 0, nil
}

// VerifyMessage hashes msg with alg and verifies sig over the digest.
func VerifyMessage(params *curves.Params, Q curves.Point, alg digest.Algorithm, msg []byte, sig *Signature) (bool, error) {
	hash, err := alg.Sum(msg)
	if err != nil {
		return false, err
	}
	return Verify(params, Q, hash, sig)
}

// CheckSignature checks that r and s are in [1, n-1].
func CheckSignature(params *curves.Params, sig *Signature) error {
	if sig == nil {
		return ecerr.New(ecerr.ErrInvalidSignatureComponent, "signature is nil")
	}
	nMinus1 := new(big.Int).Sub(params.N, one)
	if !field.InRange(sig.R, one, nMinus1) {
		return ecerr.New(ecerr.ErrInvalidSignatureComponent, "r must be in [1, n-1]")
	}
	if !field.InRange(sig.S, one, nMinus1) {
		return ecerr.New(ecerr.ErrInvalidSignatureComponent, "s must be in [1, n-1]")
	}
	return nil
}
