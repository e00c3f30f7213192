//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/digest"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
	"github.com/smallyu/go-weierstrass/internal/protocol/sign"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go Weierstrass WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECDSA", map[string]interface{}{
		"KeyGen": js.FuncOf(KeyGen),
		"Sign":   js.FuncOf(Sign),
		"Verify": js.FuncOf(Verify),
	})

	<-c
}

// KeyGen generates a key pair.
// Arguments:
// 0: curve name ("secp256k1" or "toy9739")
// Returns:
// JSON string {"private": hex, "public": SEC 1 hex} or an "error: ..." string
func KeyGen(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curve)"
	}
	params, err := curves.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	kp, err := keygen.Generate(params, nil)
	if err != nil {
		return fmt.Sprintf("error: key generation failed: %v", err)
	}

	// Scalars are returned as hex strings: JS numbers lose precision.
	return marshal(map[string]interface{}{
		"private": kp.D.Text(16),
		"public":  params.EncodePoint(kp.Q, false),
	})
}

// Sign signs a message.
// Arguments:
// 0: curve name
// 1: private key (hex)
// 2: message (string)
// 3: hash algorithm (optional, default sha256)
// Returns:
// JSON string {"r": hex, "s": hex, "signature": r||s hex} or an "error: ..." string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 && len(args) != 4 {
		return "error: expected 3 or 4 arguments (curve, privateKey, message[, hash])"
	}
	params, err := curves.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	d, ok := new(big.Int).SetString(args[1].String(), 16)
	if !ok {
		return "error: invalid private key hex"
	}
	alg, err := hashArg(args, 3)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := sign.SignMessage(params, d, alg, []byte(args[2].String()), nil)
	if err != nil {
		return fmt.Sprintf("error: signing failed: %v", err)
	}
	return marshal(map[string]interface{}{
		"r":         sig.R.Text(16),
		"s":         sig.S.Text(16),
		"signature": hex.EncodeToString(sig.Bytes(params)),
	})
}

// Verify verifies a signature.
// Arguments:
// 0: curve name
// 1: public key (SEC 1 hex)
// 2: message (string)
// 3: signature (r||s hex)
// 4: hash algorithm (optional, default sha256)
// Returns:
// bool, or an "error: ..." string for malformed input
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 && len(args) != 5 {
		return "error: expected 4 or 5 arguments (curve, publicKey, message, signature[, hash])"
	}
	params, err := curves.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	Q, err := params.ParsePoint(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid public key: %v", err)
	}
	raw, err := hex.DecodeString(args[3].String())
	if err != nil {
		return fmt.Sprintf("error: invalid signature hex: %v", err)
	}
	sig, err := sign.ParseSignature(params, raw)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	alg, err := hashArg(args, 4)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	valid, err := sign.VerifyMessage(params, Q, alg, []byte(args[2].String()), sig)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return valid
}

// Helpers

func hashArg(args []js.Value, i int) (digest.Algorithm, error) {
	if len(args) <= i {
		return digest.Default, nil
	}
	return digest.Parse(args[i].String())
}

func marshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: marshal result failed: %v", err)
	}
	return string(b)
}
