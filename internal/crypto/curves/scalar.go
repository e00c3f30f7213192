package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// ScalarMult computes k*P with MSB-first double-and-add: the accumulator
// starts at P for the leading one bit, then every following bit doubles it
// and adds P when the bit is set.
//
// k is used as given; reducing it modulo the group order is up to the
// caller. k == 0 yields the identity. A nil or negative k fails with
// ecerr.ErrInvalidScalar.
func ScalarMult(k *big.Int, P Point, params *Params) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, ecerr.New(ecerr.ErrInvalidScalar, fmt.Sprintf("invalid scalar %v", k))
	}
	if k.Sign() == 0 || P.Inf {
		return Identity(), nil
	}

	acc := P
	var err error
	for i := k.BitLen() - 2; i >= 0; i-- {
		acc, err = Double(acc, params)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			acc, err = Add(acc, P, params)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return acc, nil
}

// ScalarBaseMult computes k*G.
func ScalarBaseMult(k *big.Int, params *Params) (Point, error) {
	return ScalarMult(k, params.G, params)
}

// LinearCombination computes u1*P + u2*Q in a single double-and-add pass
// (Shamir's trick), combining both terms through Add.
func LinearCombination(u1 *big.Int, P Point, u2 *big.Int, Q Point, params *Params) (Point, error) {
	if u1 == nil || u1.Sign() < 0 || u2 == nil || u2.Sign() < 0 {
		return Point{}, ecerr.New(ecerr.ErrInvalidScalar, fmt.Sprintf("invalid scalars %v, %v", u1, u2))
	}

	PQ, err := Add(P, Q, params)
	if err != nil {
		return Point{}, err
	}

	bits := u1.BitLen()
	if u2.BitLen() > bits {
		bits = u2.BitLen()
	}

	acc := Identity()
	for i := bits - 1; i >= 0; i-- {
		acc, err = Double(acc, params)
		if err != nil {
			return Point{}, err
		}

		var term Point
		switch b1, b2 := u1.Bit(i), u2.Bit(i); {
		case b1 == 1 && b2 == 1:
			term = PQ
		case b1 == 1:
			term = P
		case b2 == 1:
			term = Q
		default:
			continue
		}
		acc, err = Add(acc, term, params)
		if err != nil {
			return Point{}, err
		}
	}
	return acc, nil
}

// OrderOf returns the order of P by repeated addition. It is only meant for
// small curves: the walk is bounded by the Hasse bound p + 1 + 2*sqrt(p).
func OrderOf(P Point, params *Params) (*big.Int, error) {
	if P.Inf {
		return big.NewInt(1), nil
	}
	if !params.IsOnCurve(P) {
		return nil, ecerr.New(ecerr.ErrInvalidPoint, fmt.Sprintf("%s is not on the curve", P))
	}

	bound := new(big.Int).Sqrt(params.P)
	bound.Lsh(bound, 1)
	bound.Add(bound, params.P)
	bound.Add(bound, big.NewInt(2))

	order := big.NewInt(1)
	acc := P
	for !acc.Inf {
		if order.Cmp(bound) > 0 {
			return nil, ecerr.New(ecerr.ErrInvalidPoint,
				fmt.Sprintf("order of %s exceeds the Hasse bound %s", P, bound))
		}
		next, err := Add(acc, P, params)
		if err != nil {
			return nil, err
		}
		acc = next
		order.Add(order, one)
	}
	return order, nil
}
