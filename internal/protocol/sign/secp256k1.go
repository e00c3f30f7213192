package sign

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// SerializeDER encodes a secp256k1 signature in DER. The encoding always
// carries the low-S form, so a signature with s > n/2 is serialized as
// (r, n-s), which verifies identically.
func (sig *Signature) SerializeDER(params *curves.Params) ([]byte, error) {
	dsig, err := toDecred(params, sig)
	if err != nil {
		return nil, err
	}
	return dsig.Serialize(), nil
}

// ParseDER decodes a DER-encoded secp256k1 signature.
func ParseDER(params *curves.Params, der []byte) (*Signature, error) {
	if !curves.IsSecp256k1(params) {
		return nil, ecerr.New(ecerr.ErrUnsupportedCurve, "DER signatures are only supported on secp256k1")
	}
	dsig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return nil, ecerr.Error{Err: ecerr.ErrInvalidSignatureComponent, Description: err.Error()}
	}
	r, s := dsig.R(), dsig.S()
	rb, sb := r.Bytes(), s.Bytes()
	return &Signature{
		R: new(big.Int).SetBytes(rb[:]),
		S: new(big.Int).SetBytes(sb[:]),
	}, nil
}

// VerifySecp256k1 verifies sig with the decred secp256k1 implementation. It
// accepts exactly the signatures Verify accepts and is used to check
// interoperability.
func VerifySecp256k1(params *curves.Params, Q curves.Point, hash []byte, sig *Signature) (bool, error) {
	if err := CheckSignature(params, sig); err != nil {
		return false, err
	}
	pub, err := curves.Secp256k1PublicKey(params, Q)
	if err != nil {
		return false, err
	}
	dsig, err := toDecred(params, sig)
	if err != nil {
		return false, err
	}
	return dsig.Verify(hash, pub), nil
}

func toDecred(params *curves.Params, sig *Signature) (*ecdsa.Signature, error) {
	if !curves.IsSecp256k1(params) {
		return nil, ecerr.New(ecerr.ErrUnsupportedCurve, "decred interop is only available on secp256k1")
	}
	if err := CheckSignature(params, sig); err != nil {
		return nil, err
	}
	var r, s secp256k1.ModNScalar
	r.SetByteSlice(sig.R.Bytes())
	s.SetByteSlice(sig.S.Bytes())
	return ecdsa.NewSignature(&r, &s), nil
}
