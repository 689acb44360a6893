package peercrypt

import (
	"encoding/hex"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt/internal/backend"
)

const (
	// PrivateKeySize is the byte length of a secp256k1 secret scalar.
	PrivateKeySize = 32

	// RawPublicKeySize is the uncompressed public-key encoding length:
	// the 0x04 header byte plus the 32-byte X and Y coordinates.
	RawPublicKeySize = 65

	// WirePublicKeySize is the headerless X || Y form exchanged over the wire.
	WirePublicKeySize = 64

	// RawSignatureSize is the recoverable-signature wire length:
	// R(32) || S(32) || V(1).
	RawSignatureSize = 65

	// SharedSecretSize is the ECDH output length, the shared point's X
	// coordinate.
	SharedSecretSize = 32

	// uncompressedHeader marks an uncompressed point encoding per SEC 1.
	uncompressedHeader = 0x04
)

// PrivateKey is a validated secp256k1 secret scalar. Values are plain data:
// copying is safe, and a key is only ever produced by generation or import,
// both of which validate the scalar range.
type PrivateKey [PrivateKeySize]byte

// Bytes returns a copy of the scalar bytes.
func (sk PrivateKey) Bytes() []byte {
	out := make([]byte, PrivateKeySize)
	copy(out, sk[:])
	return out
}

// Hex returns the lowercase hex encoding of the scalar.
func (sk PrivateKey) Hex() string {
	return hex.EncodeToString(sk[:])
}

// Zeroize overwrites the scalar in place. The key must not be used after.
func (sk *PrivateKey) Zeroize() {
	ZeroizeBytes(sk[:])
}

// PublicKey is an opaque curve-point handle. It is always derived from a
// valid PrivateKey or parsed from a valid wire encoding, so a non-zero
// PublicKey is on the curve by construction.
type PublicKey struct {
	point *backend.Point
}

// IsZero reports whether the key holds no point.
func (pk PublicKey) IsZero() bool {
	return pk.point == nil
}

// Equal reports whether both keys name the same curve point.
func (pk PublicKey) Equal(other PublicKey) bool {
	if pk.point == nil || other.point == nil {
		return pk.point == other.point
	}
	return pk.point.IsEqual(other.point)
}

// Signature is an opaque recoverable-signature handle, produced only by
// Sign or parsed from a valid wire encoding.
type Signature struct {
	sig *backend.RecoverableSignature
}

// RawPublicKey is the 65-byte uncompressed wire encoding of a public key.
type RawPublicKey [RawPublicKeySize]byte

// Bytes returns a copy of the encoding.
func (r RawPublicKey) Bytes() []byte {
	out := make([]byte, RawPublicKeySize)
	copy(out, r[:])
	return out
}

// Wire returns the headerless 64-byte X || Y form exchanged by the handshake.
func (r RawPublicKey) Wire() []byte {
	out := make([]byte, WirePublicKeySize)
	copy(out, r[1:])
	return out
}

// RawSignature is the 65-byte R || S || V wire encoding of a
// recoverable signature.
type RawSignature [RawSignatureSize]byte

// Bytes returns a copy of the encoding.
func (r RawSignature) Bytes() []byte {
	out := make([]byte, RawSignatureSize)
	copy(out, r[:])
	return out
}

// RecoveryID returns the recovery id stored in the final byte.
func (r RawSignature) RecoveryID() byte {
	return r[RawSignatureSize-1]
}

// SharedSecret is the 32-byte raw-coordinate ECDH output. It is consumed
// directly by the handshake and never round-tripped through serialization.
type SharedSecret [SharedSecretSize]byte

// Zeroize overwrites the secret in place.
func (ss *SharedSecret) Zeroize() {
	ZeroizeBytes(ss[:])
}

// KeyPair couples a private key with its derived public half. The public
// key always equals the derivation of the private key.
type KeyPair struct {
	Priv PrivateKey
	Pub  PublicKey
}
