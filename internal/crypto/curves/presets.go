package curves

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// SEC 2 secp256k1 domain parameters, in the notation of the standard.
const (
	secp256k1P = "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFC2F"
	secp256k1G = "04 79BE667E F9DCBBAC 55A06295 CE870B07 029BFCDB 2DCE28D9 59F2815B 16F81798 " +
		"483ADA77 26A3C465 5DA4FBFC 0E1108A8 FD17B448 A6855419 9C47D08F FB10D4B8"
	secp256k1N = "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE BAAEDCE6 AF48A03B BFD25E8C D0364141"
)

// Names of the built-in curves.
const (
	NameSecp256k1 = "secp256k1"
	NameToy9739   = "toy9739"
)

var (
	secp256k1Once   sync.Once
	secp256k1Params *Params

	toyOnce   sync.Once
	toyParams *Params
)

// Secp256k1 returns the secp256k1 parameters. The value is shared and must
// not be modified.
func Secp256k1() *Params {
	secp256k1Once.Do(func() {
		params, err := FromHex(NameSecp256k1, secp256k1P, big.NewInt(0), big.NewInt(7), secp256k1G, secp256k1N)
		if err != nil {
			panic(fmt.Sprintf("curves: invalid secp256k1 constants: %v", err))
		}
		secp256k1Params = params
	})
	return secp256k1Params
}

// Toy9739 returns the curve y^2 = x^3 + 497x + 1768 over F_9739 with base
// point (8045, 6936). Its group order is not published, so N is the order of
// the base point found by walking its subgroup. The curve has 9735 points,
// so G generates a subgroup of index 3 and H is 3, not 1. N is composite
// (5*11*59), which restricts private keys and nonces to values coprime to
// N. The value is shared and must not be modified.
func Toy9739() *Params {
	toyOnce.Do(func() {
		p := big.NewInt(9739)
		params := &Params{
			Name:    NameToy9739,
			P:       p,
			A:       big.NewInt(497),
			B:       big.NewInt(1768),
			G:       NewPointInt64(8045, 6936),
			H:       big.NewInt(3), // #E = 9735 = 3 * ord(G)
			BitSize: p.BitLen(),
		}
		n, err := OrderOf(params.G, params)
		if err != nil {
			panic(fmt.Sprintf("curves: invalid toy curve constants: %v", err))
		}
		params.N = n
		toyParams = params
	})
	return toyParams
}

// ByName returns a built-in curve.
func ByName(name string) (*Params, error) {
	switch strings.ToLower(name) {
	case NameSecp256k1:
		return Secp256k1(), nil
	case NameToy9739:
		return Toy9739(), nil
	default:
		return nil, ecerr.New(ecerr.ErrUnknownCurve, fmt.Sprintf("unknown curve %q", name))
	}
}
