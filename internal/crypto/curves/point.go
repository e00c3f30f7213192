// Package curves implements the group law of short-Weierstrass curves in
// affine coordinates on top of math/big.
package curves

import (
	"fmt"
	"math/big"
)

// Point is either the identity (point at infinity) or an affine point
// (X, Y). X and Y are nil for the identity.
type Point struct {
	X, Y *big.Int
	Inf  bool
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{Inf: true}
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// NewPointInt64 is a convenience constructor for small curves.
func NewPointInt64(x, y int64) Point {
	return Point{X: big.NewInt(x), Y: big.NewInt(y)}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.Inf
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) String() string {
	if p.Inf {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}
