// Package residue decides quadratic residuosity modulo an odd prime and
// computes modular square roots with the Tonelli-Shanks algorithm.
package residue

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

var one = big.NewInt(1)

// IsQuadraticResidue reports whether n is a square modulo the odd prime p
// using Euler's criterion: n = 0 mod p, or n^((p-1)/2) = 1 mod p.
func IsQuadraticResidue(n, p *big.Int) bool {
	r := field.Normalize(n, p)
	if r.Sign() == 0 {
		return true
	}
	e := new(big.Int).Sub(p, one)
	e.Rsh(e, 1)
	return field.ModPow(r, e, p).Cmp(one) == 0
}

// SqrtMod returns a square root of n modulo the odd prime p. The other root
// is p minus the returned value. It fails with ecerr.ErrNotQuadraticResidue
// when n is not a square.
func SqrtMod(n, p *big.Int) (*big.Int, error) {
	r := field.Normalize(n, p)
	if r.Sign() == 0 {
		return new(big.Int), nil
	}
	if !IsQuadraticResidue(r, p) {
		return nil, ecerr.New(ecerr.ErrNotQuadraticResidue,
			fmt.Sprintf("%s is not a quadratic residue modulo %s", r, p))
	}

	// p - 1 = q * 2^s with q odd
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// smallest non-residue z >= 2
	z := big.NewInt(2)
	for IsQuadraticResidue(z, p) {
		z.Add(z, one)
	}

	m := s
	c := field.ModPow(z, q, p)
	t := field.ModPow(r, q, p)
	e := new(big.Int).Add(q, one)
	e.Rsh(e, 1)
	root := field.ModPow(r, e, p)

	for t.Cmp(one) != 0 {
		// smallest i in [1, m) with t^(2^i) = 1
		i := 1
		t2 := field.Mul(t, t, p)
		for t2.Cmp(one) != 0 {
			i++
			if i >= m {
				return nil, ecerr.New(ecerr.ErrNotQuadraticResidue,
					fmt.Sprintf("%s has no square root modulo %s", r, p))
			}
			t2 = field.Mul(t2, t2, p)
		}

		// b = c^(2^(m-i-1)), the exponent is kept at full precision
		exp := new(big.Int).Lsh(one, uint(m-i-1))
		b := field.ModPow(c, exp, p)
		b2 := field.Mul(b, b, p)

		m = i
		c = b2
		t = field.Mul(t, b2, p)
		root = field.Mul(root, b, p)
	}
	return root, nil
}

// Roots returns both square roots of n modulo p, the one computed by SqrtMod
// first. For n = 0 mod p both roots are 0.
func Roots(n, p *big.Int) (*big.Int, *big.Int, error) {
	y, err := SqrtMod(n, p)
	if err != nil {
		return nil, nil, err
	}
	return y, field.Neg(y, p), nil
}

// Legendre returns the Legendre symbol (n/p): 0, 1 or -1.
func Legendre(n, p *big.Int) int {
	r := field.Normalize(n, p)
	if r.Sign() == 0 {
		return 0
	}
	if IsQuadraticResidue(r, p) {
		return 1
	}
	return -1
}
