package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// RandNonZero draws a uniform integer from [1, n-1] using random, or
// crypto/rand.Reader when random is nil.
func RandNonZero(random io.Reader, n *big.Int) (*big.Int, error) {
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, ecerr.New(ecerr.ErrInvalidScalar, fmt.Sprintf("cannot draw a scalar below %v", n))
	}
	if random == nil {
		random = rand.Reader
	}
	k, err := rand.Int(random, new(big.Int).Sub(n, one))
	if err != nil {
		return nil, err
	}
	return k.Add(k, one), nil
}
