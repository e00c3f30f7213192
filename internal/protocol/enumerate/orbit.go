package enumerate

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// Orbit walks the cyclic subgroup generated by base. The first point emitted
// is 2*base and each following one adds base to the previous, so the i-th
// point is (i+2)*base. The identity is emitted when the walk reaches it and
// the walk continues from there.
func Orbit(params *curves.Params, base curves.Point, steps int) ([]curves.Point, error) {
	if base.IsIdentity() || !params.IsOnCurve(base) {
		return nil, ecerr.New(ecerr.ErrInvalidPoint, fmt.Sprintf("base point %s is not on the curve", base))
	}
	if steps <= 0 {
		return nil, nil
	}

	out := make([]curves.Point, 0, steps)
	acc, err := curves.Double(base, params)
	if err != nil {
		return nil, err
	}
	out = append(out, acc)
	for len(out) < steps {
		acc, err = curves.Add(acc, base, params)
		if err != nil {
			return nil, fmt.Errorf("enumerate: step %d: %w", len(out), err)
		}
		out = append(out, acc)
	}
	return out, nil
}

// SubgroupOrder returns the order of base, found by walking its orbit until
// the identity is reached.
func SubgroupOrder(params *curves.Params, base curves.Point) (*big.Int, error) {
	return curves.OrderOf(base, params)
}

// Cofactor returns #E / ord(base) using the point count of the table. It
// fails when the order does not divide the point count, which means the
// table and the base point belong to different curves.
func (t *PointTable) Cofactor(params *curves.Params, base curves.Point) (*big.Int, error) {
	order, err := SubgroupOrder(params, base)
	if err != nil {
		return nil, err
	}
	q, r := new(big.Int).QuoRem(t.Count(), order, new(big.Int))
	if r.Sign() != 0 {
		return nil, ecerr.New(ecerr.ErrInvalidPoint,
			fmt.Sprintf("order %s does not divide the point count %s", order, t.Count()))
	}
	return q, nil
}
