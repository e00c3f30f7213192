// Package field implements arithmetic modulo a prime on top of math/big.
//
// Every helper returns a freshly allocated canonical residue in [0, p), so
// results derived from a subtraction are never negative.
package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Normalize returns x reduced to [0, p).
func Normalize(x, p *big.Int) *big.Int {
	// Mod is Euclidean, so the result is in [0, |p|) even for negative x.
	return new(big.Int).Mod(x, p)
}

// Add returns a + b mod p.
func Add(a, b, p *big.Int) *big.Int {
	return Normalize(new(big.Int).Add(a, b), p)
}

// Sub returns a - b mod p.
func Sub(a, b, p *big.Int) *big.Int {
	return Normalize(new(big.Int).Sub(a, b), p)
}

// Mul returns a * b mod p.
func Mul(a, b, p *big.Int) *big.Int {
	return Normalize(new(big.Int).Mul(a, b), p)
}

// Neg returns -a mod p.
func Neg(a, p *big.Int) *big.Int {
	return Sub(zero, a, p)
}

// ModPow returns base^exp mod m. The exponent must be non-negative.
func ModPow(base, exp, m *big.Int) *big.Int {
	return Normalize(new(big.Int).Exp(Normalize(base, m), exp, m), m)
}

// ModInverse returns the unique x in [0, p) with a*x = 1 mod p. It fails with
// ecerr.ErrNoInverse when gcd(a, p) != 1, which includes a = 0 mod p.
func ModInverse(a, p *big.Int) (*big.Int, error) {
	r := Normalize(a, p)
	if r.Sign() == 0 {
		return nil, ecerr.New(ecerr.ErrNoInverse,
			fmt.Sprintf("0 has no inverse modulo %s", p))
	}
	if new(big.Int).GCD(nil, nil, r, p).Cmp(one) != 0 {
		return nil, ecerr.New(ecerr.ErrNoInverse,
			fmt.Sprintf("%s has no inverse modulo %s", r, p))
	}
	return new(big.Int).ModInverse(r, p), nil
}

// Div returns a * b^-1 mod p.
func Div(a, b, p *big.Int) (*big.Int, error) {
	inv, err := ModInverse(b, p)
	if err != nil {
		return nil, err
	}
	return Mul(a, inv, p), nil
}

// InRange reports whether lo <= x <= hi.
func InRange(x, lo, hi *big.Int) bool {
	return x != nil && x.Cmp(lo) >= 0 && x.Cmp(hi) <= 0
}
