package keygen

import (
	"io"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// ProvePossession returns a Schnorr proof that the holder of Q knows D.
func (kp *KeyPair) ProvePossession(params *curves.Params, random io.Reader) (*schnorr.Proof, error) {
	return schnorr.Prove(params, kp.D, kp.Q, random)
}

// VerifyPossession checks a proof produced by ProvePossession. It fails with
// ecerr.ErrInvalidPublicKey when Q is malformed and returns false when the
// proof does not hold.
func VerifyPossession(params *curves.Params, Q curves.Point, proof *schnorr.Proof) (bool, error) {
	if err := CheckPublicKey(params, Q); err != nil {
		return false, err
	}
	if proof == nil {
		return false, ecerr.New(ecerr.ErrInvalidPoint, "proof is nil")
	}
	return proof.Verify(params, Q), nil
}
