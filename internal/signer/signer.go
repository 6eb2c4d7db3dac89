// Package signer signs successful classification responses so clients can
// verify which deployment produced them. Signatures are recoverable
// secp256k1 over a Keccak-256 digest of the response body; the matching
// address travels in a response header next to the signature.
package signer

import (
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// Signer holds a secp256k1 key and its derived address.
type Signer struct {
	key  *ecdsa.PrivateKey
	addr string
}

// New creates a Signer from a hex-encoded private key (0x prefix optional).
func New(hexKey string) (*Signer, error) {
	hexKey = strings.TrimPrefix(hexKey, "0x")
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("signer: invalid hex key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("signer: key must be 32 bytes, got %d", len(raw))
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}
	return &Signer{
		key:  key,
		addr: crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}, nil
}

// Sign returns the base64 encoding of the 65-byte recoverable signature
// over Keccak256(payload).
func (s *Signer) Sign(payload []byte) (string, error) {
	sig, err := crypto.Sign(Digest(payload), s.key)
	if err != nil {
		return "", fmt.Errorf("signer: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Address returns the 0x-hex address derived from the signing key.
func (s *Signer) Address() string {
	return s.addr
}

// Digest returns the Keccak-256 digest that Sign operates on. Exposed so
// verifiers can recover the signer address from a response body.
func Digest(payload []byte) []byte {
	d := sha3.NewLegacyKeccak256()
	d.Write(payload)
	return d.Sum(nil)
}
