package sign

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
)

// BatchSignResult holds the result of a batch signing operation.
// Signatures[i] signs the i-th digest.
type BatchSignResult struct {
	Signatures []*Signature
}

// SignBatch signs every digest with d, one goroutine per digest. The
// number of goroutines running at once is bounded by WithWorkers.
//
// random is shared by every goroutine and must be safe for concurrent use;
// crypto/rand.Reader (the default when nil) is.
func SignBatch(ctx context.Context, params *curves.Params, d *big.Int, hashes [][]byte, random io.Reader, opts ...Option) (*BatchSignResult, error) {
	o := newOptions(opts)
	if len(hashes) == 0 {
		return &BatchSignResult{}, nil
	}

	sigs := make([]*Signature, len(hashes))
	g, ctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}

	for i, hash := range hashes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sig, err := Sign(params, d, hash, random, opts...)
			if err != nil {
				return fmt.Errorf("sign: message %d: %w", i, err)
			}
			sigs[i] = sig
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &BatchSignResult{Signatures: sigs}, nil
}

// VerifyBatch verifies sigs[i] against hashes[i] under Q. The returned slice
// holds one result per signature. The first malformed input aborts the batch.
func VerifyBatch(ctx context.Context, params *curves.Params, Q curves.Point, hashes [][]byte, sigs []*Signature, opts ...Option) ([]bool, error) {
	if len(hashes) != len(sigs) {
		return nil, fmt.Errorf("sign: %d digests but %d signatures", len(hashes), len(sigs))
	}
	o := newOptions(opts)

	results := make([]bool, len(sigs))
	g, ctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}

	for i := range sigs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := Verify(params, Q, hashes[i], sigs[i])
			if err != nil {
				return fmt.Errorf("sign: signature %d: %w", i, err)
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
