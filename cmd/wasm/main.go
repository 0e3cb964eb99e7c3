//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-bls-tss/pkg/bls"
)

// Global map of configured schemes, keyed by their domain separation tag.
// JS callers register a tag once and reference it by name afterwards.
var schemes = make(map[string]*bls.Scheme)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go BLS-TSS WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoBLS", map[string]interface{}{
		"NewScheme":           js.FuncOf(NewScheme),
		"KeyGen":              js.FuncOf(KeyGen),
		"Sign":                js.FuncOf(Sign),
		"Verify":              js.FuncOf(Verify),
		"AggregateSignatures": js.FuncOf(AggregateSignatures),
		"AggregateVerify":     js.FuncOf(AggregateVerify),
	})

	<-c
}

// NewScheme registers a scheme under its domain separation tag.
// Arguments:
// 0: domain separation tag (string)
// Returns:
// the tag on success, or an error string
func NewScheme(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (dst)"
	}
	dst := args[0].String()
	s, err := bls.NewScheme([]byte(dst))
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	schemes[dst] = s
	return dst
}

// KeyGen derives a key pair from hex-encoded input key material.
// Arguments:
// 0: IKM (hex string, at least 32 bytes once decoded)
// Returns:
// JSON {"secretKey": hex, "publicKey": hex} or an error string
func KeyGen(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (ikmHex)"
	}
	ikm, err := hex.DecodeString(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex ikm: %v", err)
	}

	sk, err := bls.KeyGen(ikm)
	if err != nil {
		return fmt.Sprintf("error: keygen failed: %v", err)
	}

	resp := map[string]interface{}{
		"secretKey": hex.EncodeToString(sk.Bytes()),
		"publicKey": hex.EncodeToString(sk.PublicKey().Bytes()),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Sign signs a message under a registered scheme.
// Arguments:
// 0: scheme tag (string, registered via NewScheme)
// 1: secret key (hex string)
// 2: message (hex string)
// Returns:
// signature (hex string) or an error string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (dst, skHex, msgHex)"
	}
	s, ok := schemes[args[0].String()]
	if !ok {
		return "error: scheme not registered"
	}

	skBytes, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex secret key: %v", err)
	}
	sk, err := bls.SecretKeyFromBytes(skBytes)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	msg, err := hex.DecodeString(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex message: %v", err)
	}

	sig, err := s.Sign(sk, msg)
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}
	return hex.EncodeToString(sig.Bytes())
}

// Verify checks a signature under a registered scheme.
// Arguments:
// 0: scheme tag (string)
// 1: public key (hex string)
// 2: message (hex string)
// 3: signature (hex string)
// Returns:
// bool, or an error string for malformed input
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (dst, pkHex, msgHex, sigHex)"
	}
	s, ok := schemes[args[0].String()]
	if !ok {
		return "error: scheme not registered"
	}

	pk, msg, sig, errStr := decodeVerifyArgs(args[1], args[2], args[3])
	if errStr != "" {
		return errStr
	}

	valid, err := s.Verify(pk, msg, sig)
	if err != nil {
		return fmt.Sprintf("error: verify failed: %v", err)
	}
	return valid
}

// AggregateSignatures combines hex-encoded signatures.
// Arguments:
// 0: JSON array of hex signatures
// Returns:
// aggregate signature (hex string) or an error string
func AggregateSignatures(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonSigs)"
	}

	var hexSigs []string
	if err := json.Unmarshal([]byte(args[0].String()), &hexSigs); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	sigs := make([]*bls.Signature, len(hexSigs))
	for i, h := range hexSigs {
		buf, err := hex.DecodeString(h)
		if err != nil {
			return fmt.Sprintf("error: invalid hex signature %d: %v", i, err)
		}
		sigs[i], err = bls.SignatureFromBytes(buf)
		if err != nil {
			return fmt.Sprintf("error: signature %d: %v", i, err)
		}
	}

	agg, err := bls.AggregateSignatures(sigs)
	if err != nil {
		return fmt.Sprintf("error: aggregate failed: %v", err)
	}
	return hex.EncodeToString(agg.Bytes())
}

// AggregateVerify checks an aggregate signature over per-signer messages.
// Arguments:
// 0: scheme tag (string)
// 1: JSON array of hex public keys
// 2: JSON array of hex messages (must be pairwise distinct)
// 3: aggregate signature (hex string)
// Returns:
// bool, or an error string for malformed input
func AggregateVerify(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (dst, jsonPks, jsonMsgs, sigHex)"
	}
	s, ok := schemes[args[0].String()]
	if !ok {
		return "error: scheme not registered"
	}

	var hexPks, hexMsgs []string
	if err := json.Unmarshal([]byte(args[1].String()), &hexPks); err != nil {
		return fmt.Sprintf("error: invalid pks json: %v", err)
	}
	if err := json.Unmarshal([]byte(args[2].String()), &hexMsgs); err != nil {
		return fmt.Sprintf("error: invalid msgs json: %v", err)
	}

	pks := make([]*bls.PublicKey, len(hexPks))
	for i, h := range hexPks {
		buf, err := hex.DecodeString(h)
		if err != nil {
			return fmt.Sprintf("error: invalid hex public key %d: %v", i, err)
		}
		pks[i], err = bls.PublicKeyFromBytes(buf)
		if err != nil {
			return fmt.Sprintf("error: public key %d: %v", i, err)
		}
	}
	msgs := make([][]byte, len(hexMsgs))
	for i, h := range hexMsgs {
		buf, err := hex.DecodeString(h)
		if err != nil {
			return fmt.Sprintf("error: invalid hex message %d: %v", i, err)
		}
		msgs[i] = buf
	}

	sigBytes, err := hex.DecodeString(args[3].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex signature: %v", err)
	}
	sig, err := bls.SignatureFromBytes(sigBytes)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	valid, err := s.AggregateVerify(pks, msgs, sig)
	if err != nil {
		return fmt.Sprintf("error: aggregate verify failed: %v", err)
	}
	return valid
}

// Helpers

func decodeVerifyArgs(pkArg, msgArg, sigArg js.Value) (*bls.PublicKey, []byte, *bls.Signature, string) {
	pkBytes, err := hex.DecodeString(pkArg.String())
	if err != nil {
		return nil, nil, nil, fmt.Sprintf("error: invalid hex public key: %v", err)
	}
	pk, err := bls.PublicKeyFromBytes(pkBytes)
	if err != nil {
		return nil, nil, nil, fmt.Sprintf("error: %v", err)
	}

	msg, err := hex.DecodeString(msgArg.String())
	if err != nil {
		return nil, nil, nil, fmt.Sprintf("error: invalid hex message: %v", err)
	}

	sigBytes, err := hex.DecodeString(sigArg.String())
	if err != nil {
		return nil, nil, nil, fmt.Sprintf("error: invalid hex signature: %v", err)
	}
	sig, err := bls.SignatureFromBytes(sigBytes)
	if err != nil {
		return nil, nil, nil, fmt.Sprintf("error: %v", err)
	}

	return pk, msg, sig, ""
}
