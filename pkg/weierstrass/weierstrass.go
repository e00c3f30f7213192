// Package weierstrass is the public API for elliptic-curve arithmetic and
// ECDSA over short-Weierstrass curves y^2 = x^3 + ax + b mod p.
//
// Curve parameters are built once with FromHex or taken from a preset and
// passed read-only to every function:
//
//	params := weierstrass.Secp256k1()
//	kp, err := weierstrass.GenerateKeyPair(params, nil)
//	sig, err := weierstrass.SignMessage(params, kp.D, weierstrass.SHA256, msg, nil)
//	ok, err := weierstrass.VerifyMessage(params, kp.Q, weierstrass.SHA256, msg, sig)
//
// Every operation works in the subgroup generated by G. Params.H records
// the cofactor (3 for Toy9739, 1 for secp256k1 and for curves built with
// FromHex) and is never checked.
//
// Arithmetic is not constant time.
package weierstrass

import (
	"context"
	"io"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/digest"
	"github.com/smallyu/go-weierstrass/internal/crypto/residue"
	"github.com/smallyu/go-weierstrass/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-weierstrass/internal/protocol/enumerate"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
	"github.com/smallyu/go-weierstrass/internal/protocol/sign"
)

type (
	// Params holds the domain parameters of a curve.
	Params = curves.Params
	// Point is an affine curve point or the identity.
	Point = curves.Point
	// KeyPair is a private scalar and its public point.
	KeyPair = keygen.KeyPair
	// Signature is an ECDSA (r, s) pair.
	Signature = sign.Signature
	// PointTable maps x coordinates to their y roots.
	PointTable = enumerate.PointTable
	// Roots is one entry of a PointTable.
	Roots = enumerate.Roots
	// Algorithm names a message digest.
	Algorithm = digest.Algorithm
	// Proof is a Schnorr proof of possession of a private key.
	Proof = schnorr.Proof
	// SignOption configures Sign.
	SignOption = sign.Option
	// TableOption configures BuildPointTable.
	TableOption = enumerate.Option
)

// Digest algorithms.
const (
	SHA1       = digest.SHA1
	SHA256     = digest.SHA256
	SHA3_256   = digest.SHA3_256
	BLAKE2b256 = digest.BLAKE2b256
)

// FromHex builds validated curve parameters from hex strings.
func FromHex(name, pHex string, a, b *big.Int, gHex, nHex string) (*Params, error) {
	return curves.FromHex(name, pHex, a, b, gHex, nHex)
}

// Secp256k1 returns the SEC 2 secp256k1 parameters.
func Secp256k1() *Params { return curves.Secp256k1() }

// Toy9739 returns the toy curve y^2 = x^3 + 497x + 1768 over F_9739 with
// base point (8045, 6936).
func Toy9739() *Params { return curves.Toy9739() }

// CurveByName returns a preset curve.
func CurveByName(name string) (*Params, error) { return curves.ByName(name) }

// Identity returns the point at infinity.
func Identity() Point { return curves.Identity() }

// NewPoint returns the affine point (x, y).
func NewPoint(x, y *big.Int) Point { return curves.NewPoint(x, y) }

// Add returns P + Q.
func Add(P, Q Point, params *Params) (Point, error) { return curves.Add(P, Q, params) }

// ScalarMult returns k*P.
func ScalarMult(k *big.Int, P Point, params *Params) (Point, error) {
	return curves.ScalarMult(k, P, params)
}

// GenerateKeyPair draws a private key from the integers in [1, n-1] coprime
// to n using random, or crypto/rand.Reader when nil.
func GenerateKeyPair(params *Params, random io.Reader) (*KeyPair, error) {
	return keygen.Generate(params, random)
}

// ProvePossession returns a Schnorr proof that the holder of kp.Q knows
// kp.D.
func ProvePossession(params *Params, kp *KeyPair, random io.Reader) (*Proof, error) {
	return kp.ProvePossession(params, random)
}

// VerifyPossession checks a proof of possession for Q.
func VerifyPossession(params *Params, Q Point, proof *Proof) (bool, error) {
	return keygen.VerifyPossession(params, Q, proof)
}

// Sign signs a message digest with d.
func Sign(params *Params, d *big.Int, hash []byte, random io.Reader, opts ...SignOption) (*Signature, error) {
	return sign.Sign(params, d, hash, random, opts...)
}

// Verify reports whether sig signs hash under Q.
func Verify(params *Params, Q Point, hash []byte, sig *Signature) (bool, error) {
	return sign.Verify(params, Q, hash, sig)
}

// SignMessage hashes msg with alg and signs the digest.
func SignMessage(params *Params, d *big.Int, alg Algorithm, msg []byte, random io.Reader, opts ...SignOption) (*Signature, error) {
	return sign.SignMessage(params, d, alg, msg, random, opts...)
}

// VerifyMessage hashes msg with alg and verifies sig over the digest.
func VerifyMessage(params *Params, Q Point, alg Algorithm, msg []byte, sig *Signature) (bool, error) {
	return sign.VerifyMessage(params, Q, alg, msg, sig)
}

// SqrtMod returns a square root of n modulo the odd prime p.
func SqrtMod(n, p *big.Int) (*big.Int, error) { return residue.SqrtMod(n, p) }

// IsQuadraticResidue reports whether n is a square modulo p.
func IsQuadraticResidue(n, p *big.Int) bool { return residue.IsQuadraticResidue(n, p) }

// BuildPointTable enumerates the y roots of every x coordinate of a small
// curve.
func BuildPointTable(ctx context.Context, params *Params, opts ...TableOption) (*PointTable, error) {
	return enumerate.BuildPointTable(ctx, params, opts...)
}

// Orbit returns 2*base, 3*base, ... for steps points.
func Orbit(params *Params, base Point, steps int) ([]Point, error) {
	return enumerate.Orbit(params, base, steps)
}
