package curves

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/crypto/residue"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Params holds the domain parameters of a short-Weierstrass curve
// y^2 = x^3 + ax + b over the prime field F_p.
//
// A Params value is built once and shared read-only by every operation.
// Every operation works in the subgroup generated by G and never reads H.
// H is the cofactor when it is known and 1 otherwise; points outside the
// subgroup are not rejected.
type Params struct {
	Name    string
	P       *big.Int // field prime
	A, B    *big.Int // curve coefficients
	G       Point    // base point
	N       *big.Int // order of G
	H       *big.Int // cofactor, 1 when unknown
	BitSize int      // bit length of P
}

// FromHex builds curve parameters from hex strings. Whitespace and an
// optional 0x prefix are ignored. The base point may be given as raw X||Y,
// as an uncompressed SEC 1 string (04||X||Y) or a compressed one (02/03||X).
//
// The returned parameters are validated: G must lie on the curve and n*G
// must be the identity. The cofactor is not computed, so H is set to 1.
func FromHex(name, pHex string, a, b *big.Int, gHex, nHex string) (*Params, error) {
	p, err := parseHexInt("p", pHex)
	if err != nil {
		return nil, err
	}
	n, err := parseHexInt("n", nHex)
	if err != nil {
		return nil, err
	}
	if p.Cmp(three) <= 0 || !p.ProbablyPrime(20) {
		return nil, ecerr.New(ecerr.ErrInvalidHex, fmt.Sprintf("p = %s is not a prime > 3", p))
	}

	params := &Params{
		Name:    name,
		P:       p,
		A:       field.Normalize(a, p),
		B:       field.Normalize(b, p),
		N:       n,
		H:       big.NewInt(1),
		BitSize: p.BitLen(),
	}

	params.G, err = params.ParsePoint(gHex)
	if err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate checks the invariants of the parameters: the curve is
// non-singular, G is a non-identity point on the curve and n*G is the
// identity.
func (c *Params) Validate() error {
	// 4a^3 + 27b^2 != 0 mod p
	a3 := field.Mul(field.Mul(c.A, c.A, c.P), c.A, c.P)
	b2 := field.Mul(c.B, c.B, c.P)
	disc := field.Add(field.Mul(big.NewInt(4), a3, c.P), field.Mul(big.NewInt(27), b2, c.P), c.P)
	if disc.Sign() == 0 {
		return ecerr.New(ecerr.ErrInvalidPoint, "curve is singular")
	}

	if c.G.IsIdentity() || !c.IsOnCurve(c.G) {
		return ecerr.New(ecerr.ErrInvalidPoint, fmt.Sprintf("base point %s is not on the curve", c.G))
	}

	if c.N == nil || c.N.Cmp(one) <= 0 {
		return ecerr.New(ecerr.ErrInvalidScalar, "group order must be greater than 1")
	}
	nG, err := ScalarMult(c.N, c.G, c)
	if err != nil {
		return err
	}
	if !nG.IsIdentity() {
		return ecerr.New(ecerr.ErrInvalidScalar, fmt.Sprintf("n = %s is not the order of G", c.N))
	}
	return nil
}

// Equation evaluates x^3 + ax + b mod p.
func (c *Params) Equation(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, c.A) // x^2 + a
	x3.Mul(x3, x)   // x^3 + ax
	x3.Add(x3, c.B) // x^3 + ax + b
	return field.Normalize(x3, c.P)
}

// IsOnCurve reports whether pt is the identity or an affine point with
// coordinates in [0, p) satisfying the curve equation.
func (c *Params) IsOnCurve(pt Point) bool {
	if pt.Inf {
		return true
	}
	if pt.X == nil || pt.Y == nil {
		return false
	}
	if pt.X.Sign() < 0 || pt.X.Cmp(c.P) >= 0 || pt.Y.Sign() < 0 || pt.Y.Cmp(c.P) >= 0 {
		return false
	}
	y2 := field.Mul(pt.Y, pt.Y, c.P)
	return y2.Cmp(c.Equation(pt.X)) == 0
}

// ByteSize returns the length in bytes of a serialized field element.
func (c *Params) ByteSize() int {
	return (c.BitSize + 7) / 8
}

// DecompressPoint recovers the affine point with the given x coordinate whose
// y coordinate has the requested parity.
func (c *Params) DecompressPoint(x *big.Int, odd bool) (Point, error) {
	if x.Sign() < 0 || x.Cmp(c.P) >= 0 {
		return Point{}, ecerr.New(ecerr.ErrInvalidPoint, fmt.Sprintf("x = %s is not a field element", x))
	}
	y, err := residue.SqrtMod(c.Equation(x), c.P)
	if err != nil {
		return Point{}, fmt.Errorf("curves: no point with x = %s: %w", x, err)
	}
	if (y.Bit(0) == 1) != odd {
		y = field.Neg(y, c.P)
	}
	return NewPoint(x, y), nil
}

func cleanHex(s string) string {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strings.ToLower(s)
}

func parseHexInt(label, s string) (*big.Int, error) {
	s = cleanHex(s)
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, ecerr.New(ecerr.ErrInvalidHex, fmt.Sprintf("cannot parse %s from %q", label, s))
	}
	return v, nil
}
