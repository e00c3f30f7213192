// Package ecerr defines the error kinds shared by the field, curve, residue
// and signature packages.
package ecerr

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNoInverse is returned when a modular inverse is requested for a value
	// that is not coprime to the modulus.
	ErrNoInverse = ErrorKind("ErrNoInverse")

	// ErrUndefinedSlope is returned by point addition when the chord or tangent
	// slope cannot be computed.
	ErrUndefinedSlope = ErrorKind("ErrUndefinedSlope")

	// ErrNotQuadraticResidue is returned when a square root is requested for a
	// quadratic non-residue.
	ErrNotQuadraticResidue = ErrorKind("ErrNotQuadraticResidue")

	// ErrInvalidScalar is returned when a scalar is nil, negative, or outside
	// the range required by the operation.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidPoint is returned when an affine point has coordinates outside
	// [0, p) or does not satisfy the curve equation.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInvalidPublicKey is returned when a public key is the identity or is
	// not on the curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidSignatureComponent is returned when r or s of a signature is
	// outside [1, n-1].
	ErrInvalidSignatureComponent = ErrorKind("ErrInvalidSignatureComponent")

	// ErrSigningRetryExhausted is returned when every nonce drawn during
	// signing produced r == 0 or s == 0.
	ErrSigningRetryExhausted = ErrorKind("ErrSigningRetryExhausted")

	// ErrInvalidHex is returned when curve parameters cannot be parsed.
	ErrInvalidHex = ErrorKind("ErrInvalidHex")

	// ErrUnknownCurve is returned when a curve preset name is not recognized.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")

	// ErrUnsupportedCurve is returned when an operation bound to a specific
	// curve is invoked with different parameters.
	ErrUnsupportedCurve = ErrorKind("ErrUnsupportedCurve")

	// ErrUnknownHash is returned when a digest algorithm name is not
	// recognized.
	ErrUnknownHash = ErrorKind("ErrUnknownHash")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve arithmetic or signatures. It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New creates an Error given a set of arguments.
func New(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
