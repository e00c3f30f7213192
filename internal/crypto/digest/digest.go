// Package digest maps messages to integers for signing. It wraps the hash
// functions a caller may choose and the FIPS 186-4 reduction of a digest to
// the bit length of the group order.
package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"math/big"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// Algorithm names a hash function.
type Algorithm string

// Supported algorithms.
const (
	SHA1       Algorithm = "sha1"
	SHA256     Algorithm = "sha256"
	SHA3_256   Algorithm = "sha3-256"
	BLAKE2b256 Algorithm = "blake2b-256"
)

// Default is used when no algorithm is configured.
const Default = SHA256

// Algorithms lists the supported algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{SHA1, SHA256, SHA3_256, BLAKE2b256}
}

// Parse returns the algorithm with the given name, case-insensitively. An
// empty name selects Default.
func Parse(name string) (Algorithm, error) {
	if name == "" {
		return Default, nil
	}
	a := Algorithm(strings.ToLower(name))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}
	return "", ecerr.New(ecerr.ErrUnknownHash, fmt.Sprintf("unknown hash algorithm %q", name))
}

// New returns a new hash.Hash computing the algorithm.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case BLAKE2b256:
		return blake2b.New256(nil)
	default:
		return nil, ecerr.New(ecerr.ErrUnknownHash, fmt.Sprintf("unknown hash algorithm %q", string(a)))
	}
}

// Sum hashes msg.
func (a Algorithm) Sum(msg []byte) ([]byte, error) {
	h, err := a.New()
	if err != nil {
		return nil, err
	}
	h.Write(msg)
	return h.Sum(nil), nil
}

func (a Algorithm) String() string {
	return string(a)
}

// HashToInt converts a digest to an integer keeping its leftmost
// bitlen(n) bits. The result is not reduced modulo n.
func HashToInt(hash []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	excess := len(hash)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}
