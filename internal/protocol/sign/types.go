package sign

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// Signature is an ECDSA signature (r, s) with 1 <= r, s <= n-1. It is not
// modified after signing.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Bytes returns r || s, each left-padded to the byte length of the group
// order.
func (sig *Signature) Bytes(params *curves.Params) []byte {
	size := scalarSize(params)
	out := make([]byte, 2*size)
	sig.R.FillBytes(out[:size])
	sig.S.FillBytes(out[size:])
	return out
}

// IsEqual reports whether both signatures have the same r and s.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("(r: %x, s: %x)", sig.R, sig.S)
}

// ParseSignature parses the r || s encoding produced by Bytes. The range of
// r and s is checked by Verify, not here.
func ParseSignature(params *curves.Params, b []byte) (*Signature, error) {
	size := scalarSize(params)
	if len(b) != 2*size {
		return nil, ecerr.New(ecerr.ErrInvalidSignatureComponent,
			fmt.Sprintf("signature must be %d bytes, got %d", 2*size, len(b)))
	}
	return &Signature{
		R: new(big.Int).SetBytes(b[:size]),
		S: new(big.Int).SetBytes(b[size:]),
	}, nil
}

func scalarSize(params *curves.Params) int {
	return (params.N.BitLen() + 7) / 8
}
