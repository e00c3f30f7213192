package curves

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// IsSecp256k1 reports whether params describe the secp256k1 curve.
func IsSecp256k1(params *Params) bool {
	ref := secp256k1.S256().Params()
	return params.P.Cmp(ref.P) == 0 &&
		params.N.Cmp(ref.N) == 0 &&
		params.A.Sign() == 0 &&
		params.B.Cmp(ref.B) == 0 &&
		!params.G.Inf &&
		params.G.X.Cmp(ref.Gx) == 0 &&
		params.G.Y.Cmp(ref.Gy) == 0
}

// Secp256k1PublicKey converts a point of the secp256k1 curve to a public key
// of the secp256k1 library, e.g. to serialize it in SEC 1 format.
func Secp256k1PublicKey(params *Params, Q Point) (*secp256k1.PublicKey, error) {
	if !IsSecp256k1(params) {
		return nil, ecerr.New(ecerr.ErrUnsupportedCurve,
			fmt.Sprintf("curve %q is not secp256k1", params.Name))
	}
	if Q.Inf || !params.IsOnCurve(Q) {
		return nil, ecerr.New(ecerr.ErrInvalidPublicKey, fmt.Sprintf("%s is not a valid public key", Q))
	}

	var fx, fy secp256k1.FieldVal
	fx.SetByteSlice(Q.X.Bytes())
	fy.SetByteSlice(Q.Y.Bytes())
	return secp256k1.NewPublicKey(&fx, &fy), nil
}

// PointFromSecp256k1 converts a public key of the secp256k1 library to a
// point.
func PointFromSecp256k1(pk *secp256k1.PublicKey) Point {
	return NewPoint(pk.X(), pk.Y())
}

// ParseSecp256k1PublicKey parses a SEC 1 encoded (compressed, uncompressed
// or hybrid) secp256k1 public key.
func ParseSecp256k1PublicKey(serialized []byte) (Point, error) {
	pk, err := secp256k1.ParsePubKey(serialized)
	if err != nil {
		return Point{}, ecerr.Error{Err: ecerr.ErrInvalidPublicKey, Description: err.Error()}
	}
	return PointFromSecp256k1(pk), nil
}
