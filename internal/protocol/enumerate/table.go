// Package enumerate lists the points of small curves: a table of the
// y-roots for every x coordinate, and the cyclic subgroup generated by a
// base point.
package enumerate

import (
	"context"
	"fmt"
	"math/big"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/residue"
	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// MaxFieldSize is the largest prime for which a point table is built.
const MaxFieldSize = 1 << 24

// Roots holds the two square roots y and p-y of x^3 + ax + b. Both are 0 when
// the curve equation vanishes at x.
type Roots struct {
	Y    *big.Int
	NegY *big.Int
}

// PointTable maps every x in [0, p) to the roots of the curve equation at x,
// or nil when no point has that x coordinate. It is read-only once built.
type PointTable struct {
	entries []*Roots
}

// Option configures BuildPointTable.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers sets the number of goroutines scanning the field. The default
// is runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger used for progress output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// BuildPointTable evaluates the curve equation at every x in [0, p) and
// records both square roots whenever the value is a quadratic residue.
//
// The x range is split into contiguous chunks, one per worker; each worker
// fills only its own chunk of the table.
func BuildPointTable(ctx context.Context, params *curves.Params, opts ...Option) (*PointTable, error) {
	o := &options{workers: runtime.NumCPU(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	if params.P.Cmp(big.NewInt(MaxFieldSize)) > 0 {
		return nil, ecerr.New(ecerr.ErrUnsupportedCurve,
			fmt.Sprintf("field of curve %s is too large to enumerate", params.Name))
	}

	size := int(params.P.Int64())
	table := &PointTable{entries: make([]*Roots, size)}

	workers := o.workers
	if workers > size {
		workers = size
	}
	chunk := (size + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < size; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > size {
			hi = size
		}
		g.Go(func() error {
			return table.fill(ctx, params, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.Debug("point table built",
		zap.String("curve", params.Name),
		zap.Int("size", size),
		zap.Int("workers", workers),
		zap.String("points", table.Count().String()))
	return table, nil
}

func (t *PointTable) fill(ctx context.Context, params *curves.Params, lo, hi int) error {
	x := new(big.Int)
	for i := lo; i < hi; i++ {
		if (i-lo)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		x.SetInt64(int64(i))
		v := params.Equation(x)
		if !residue.IsQuadraticResidue(v, params.P) {
			continue
		}
		y, negY, err := residue.Roots(v, params.P)
		if err != nil {
			return fmt.Errorf("enumerate: x = %d: %w", i, err)
		}
		t.entries[i] = &Roots{Y: y, NegY: negY}
	}
	return nil
}

// Size returns p, the number of entries in the table.
func (t *PointTable) Size() int {
	return len(t.entries)
}

// Lookup returns the roots recorded for x, or nil when x is out of range or
// no point has that x coordinate.
func (t *PointTable) Lookup(x int64) *Roots {
	if x < 0 || x >= int64(len(t.entries)) {
		return nil
	}
	return t.entries[x]
}

// Count returns the number of points on the curve, the identity included.
func (t *PointTable) Count() *big.Int {
	var n int64 = 1
	for _, r := range t.entries {
		switch {
		case r == nil:
		case r.Y.Sign() == 0:
			n++
		default:
			n += 2
		}
	}
	return big.NewInt(n)
}

// Points returns every affine point in the table ordered by x, the smaller
// root first. The identity is not included.
func (t *PointTable) Points() []curves.Point {
	var pts []curves.Point
	for x, r := range t.entries {
		if r == nil {
			continue
		}
		bx := big.NewInt(int64(x))
		lo, hi := r.Y, r.NegY
		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}
		pts = append(pts, curves.NewPoint(bx, lo))
		if hi.Cmp(lo) != 0 {
			pts = append(pts, curves.NewPoint(bx, hi))
		}
	}
	return pts
}
