package curves

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// Add returns P + Q.
//
// The identity and the negation case (P.x == Q.x, P.y == -Q.y) are handled
// before any slope is computed, so ecerr.ErrUndefinedSlope is only returned
// for inputs that are not on the curve.
func Add(P, Q Point, params *Params) (Point, error) {
	if P.Inf {
		return Q, nil
	}
	if Q.Inf {
		return P, nil
	}

	p := params.P
	x1, y1 := field.Normalize(P.X, p), field.Normalize(P.Y, p)
	x2, y2 := field.Normalize(Q.X, p), field.Normalize(Q.Y, p)

	var num, den *big.Int
	if x1.Cmp(x2) == 0 {
		if field.Add(y1, y2, p).Sign() == 0 {
			return Identity(), nil
		}
		if y1.Cmp(y2) == 0 {
			// tangent: (3x^2 + a) / 2y
			num = field.Add(field.Mul(three, field.Mul(x1, x1, p), p), params.A, p)
			den = field.Mul(two, y1, p)
		}
	}
	if num == nil {
		// chord: (y2 - y1) / (x2 - x1)
		num = field.Sub(y2, y1, p)
		den = field.Sub(x2, x1, p)
	}

	slope, err := field.Div(num, den, p)
	if err != nil {
		if errors.Is(err, ecerr.ErrNoInverse) {
			return Point{}, ecerr.New(ecerr.ErrUndefinedSlope,
				fmt.Sprintf("cannot add %s and %s: %v", P, Q, err))
		}
		return Point{}, err
	}

	// x3 = slope^2 - x1 - x2
	x3 := field.Sub(field.Sub(field.Mul(slope, slope, p), x1, p), x2, p)
	// y3 = slope * (x1 - x3) - y1
	y3 := field.Sub(field.Mul(slope, field.Sub(x1, x3, p), p), y1, p)

	return Point{X: x3, Y: y3}, nil
}

// Double returns 2P.
func Double(P Point, params *Params) (Point, error) {
	return Add(P, P, params)
}

// Neg returns -P.
func Neg(P Point, params *Params) Point {
	if P.Inf {
		return P
	}
	return Point{X: field.Normalize(P.X, params.P), Y: field.Neg(P.Y, params.P)}
}
