package curves

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/smallyu/go-weierstrass/pkg/ecerr"
)

// EncodePoint returns the SEC 1 hex encoding of pt: 04||X||Y, or 02/03||X
// when compressed. The identity is encoded as "00".
func (c *Params) EncodePoint(pt Point, compressed bool) string {
	if pt.Inf {
		return "00"
	}
	size := c.ByteSize()
	if compressed {
		out := make([]byte, 1+size)
		out[0] = 0x02
		if pt.Y.Bit(0) == 1 {
			out[0] = 0x03
		}
		pt.X.FillBytes(out[1:])
		return hex.EncodeToString(out)
	}
	out := make([]byte, 1+2*size)
	out[0] = 0x04
	pt.X.FillBytes(out[1 : 1+size])
	pt.Y.FillBytes(out[1+size:])
	return hex.EncodeToString(out)
}

// ParsePoint decodes a point given as raw X||Y hex, as uncompressed SEC 1
// (04||X||Y) or as compressed SEC 1 (02/03||X). "00" decodes to the
// identity. Raw and uncompressed points are not checked against the curve
// equation.
func (c *Params) ParsePoint(s string) (Point, error) {
	s = cleanHex(s)
	if s == "00" {
		return Identity(), nil
	}
	size := 2 * c.ByteSize()

	switch {
	case len(s) == 2+2*size && strings.HasPrefix(s, "04"):
		s = s[2:]
	case len(s) == 2+size && (strings.HasPrefix(s, "02") || strings.HasPrefix(s, "03")):
		x, err := parseHexInt("x", s[2:])
		if err != nil {
			return Point{}, err
		}
		return c.DecompressPoint(x, s[:2] == "03")
	}

	if len(s) == 0 || len(s)%2 != 0 {
		return Point{}, ecerr.New(ecerr.ErrInvalidHex, fmt.Sprintf("malformed point encoding of length %d", len(s)))
	}
	x, err := parseHexInt("x", s[:len(s)/2])
	if err != nil {
		return Point{}, err
	}
	y, err := parseHexInt("y", s[len(s)/2:])
	if err != nil {
		return Point{}, err
	}
	return NewPoint(x, y), nil
}
