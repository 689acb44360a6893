// Package backend is the boundary to the external secp256k1 curve library.
// Everything above this package works with opaque handles and byte slices;
// everything below is constant-time curve arithmetic provided by
// decred/dcrd/dcrec/secp256k1/v4. The public API package never imports the
// curve library directly, so swapping the backend touches only this file.
package backend

import (
	"errors"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Point is the opaque public-key handle handed out to the API layer. It
// aliases the curve library's point type so no conversion cost is paid at
// the boundary.
type Point = secp256k1.PublicKey

const (
	// SeckeySize is the byte length of a secp256k1 scalar.
	SeckeySize = 32

	// PubkeyUncompressedSize is the serialized uncompressed point length,
	// one header byte plus two 32-byte coordinates.
	PubkeyUncompressedSize = 65

	// PubkeyCompressedSize is the serialized compressed point length.
	PubkeyCompressedSize = 33

	// CompactSigSize is the recoverable-signature length in the curve
	// library's compact layout: recovery code, then r, then s.
	CompactSigSize = 65

	// compactSigMagicOffset is added to the recovery id in the curve
	// library's compact layout, a convention inherited from Bitcoin.
	compactSigMagicOffset = 27
)

var (
	// ErrInvalidSeckey reports a scalar outside (0, N).
	ErrInvalidSeckey = errors.New("backend: secret key outside curve order")

	// ErrInvalidPoint reports bytes that do not decode to a point on the
	// curve.
	ErrInvalidPoint = errors.New("backend: point not on curve")

	// ErrInvalidCompactSig reports a malformed compact signature: recovery
	// id outside 0-3, or r/s zero or not below the curve order.
	ErrInvalidCompactSig = errors.New("backend: malformed compact signature")

	// ErrRecoveryFailed reports that a well-formed signature does not
	// recover a valid public key for the given digest.
	ErrRecoveryFailed = errors.New("backend: public key recovery failed")

	// ErrPointAtInfinity reports a scalar multiplication that landed on the
	// point at infinity, which has no coordinates to share.
	ErrPointAtInfinity = errors.New("backend: result is the point at infinity")
)

// RecoverableSignature is the opaque recoverable-signature handle. It holds
// the curve library's compact layout so Recover can hand it straight back.
type RecoverableSignature struct {
	compact [CompactSigSize]byte
}

// SeckeyVerify reports whether key is a canonical 32-byte scalar in the
// range (0, N). It never calls further into the curve library on failure.
func SeckeyVerify(key []byte) bool {
	if len(key) != SeckeySize {
		return false
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(key)
	valid := !overflow && !s.IsZero()
	s.Zero()
	return valid
}

// PubkeyCreate derives the public point for a validated secret key.
func PubkeyCreate(key *[SeckeySize]byte) (*Point, error) {
	if !SeckeyVerify(key[:]) {
		return nil, ErrInvalidSeckey
	}
	priv := secp256k1.PrivKeyFromBytes(key[:])
	pub := priv.PubKey()
	priv.Zero()
	return pub, nil
}

// PubkeySerialize returns the uncompressed 65-byte encoding of a point.
func PubkeySerialize(pub *Point) []byte {
	return pub.SerializeUncompressed()
}

// PubkeyParse decodes a 65-byte uncompressed record, validating that the
// coordinates name a point on the curve.
func PubkeyParse(raw []byte) (*Point, error) {
	pub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return pub, nil
}

// SignRecoverable signs a digest with a validated secret key. The curve
// library derives the nonce deterministically per RFC 6979, so no entropy
// is consumed and equal inputs yield equal signatures.
func SignRecoverable(key *[SeckeySize]byte, digest []byte) (*RecoverableSignature, error) {
	if !SeckeyVerify(key[:]) {
		return nil, ErrInvalidSeckey
	}
	priv := secp256k1.PrivKeyFromBytes(key[:])
	compact := secpecdsa.SignCompact(priv, digest, false)
	priv.Zero()
	if len(compact) != CompactSigSize {
		return nil, ErrInvalidCompactSig
	}
	var sig RecoverableSignature
	copy(sig.compact[:], compact)
	return &sig, nil
}

// SerializeCompact splits a recoverable signature into its 64-byte (r, s)
// pair and the separately returned recovery id in 0-3.
func (sig *RecoverableSignature) SerializeCompact() (rs [64]byte, recid byte) {
	copy(rs[:], sig.compact[1:])
	return rs, sig.compact[0] - compactSigMagicOffset
}

// ParseCompact rebuilds a recoverable signature from a 64-byte (r, s) pair
// and a recovery id. The components are validated here so that a later
// Recover failure can only mean the cryptographic check itself failed.
func ParseCompact(rs []byte, recid byte) (*RecoverableSignature, error) {
	if len(rs) != 64 || recid > 3 {
		return nil, ErrInvalidCompactSig
	}
	var r, s secp256k1.ModNScalar
	rOverflow := r.SetByteSlice(rs[:32])
	sOverflow := s.SetByteSlice(rs[32:])
	bad := rOverflow || sOverflow || r.IsZero() || s.IsZero()
	r.Zero()
	s.Zero()
	if bad {
		return nil, ErrInvalidCompactSig
	}
	var sig RecoverableSignature
	sig.compact[0] = compactSigMagicOffset + recid
	copy(sig.compact[1:], rs)
	return &sig, nil
}

// Recover reconstructs the signing public key from a recoverable signature
// and the signed digest. The signature was validated at parse time, so any
// failure here is a genuine recovery failure rather than malformed input.
func Recover(sig *RecoverableSignature, digest []byte) (*Point, error) {
	pub, _, err := secpecdsa.RecoverCompact(sig.compact[:], digest)
	if err != nil {
		return nil, ErrRecoveryFailed
	}
	return pub, nil
}

// ECDHRaw multiplies the peer's point by the local secret scalar and
// returns the 33-byte compressed encoding of the shared point: one parity
// byte followed by the X coordinate. The caller decides what to keep; this
// layer never hashes the result.
func ECDHRaw(key *[SeckeySize]byte, pub *Point) ([]byte, error) {
	if !SeckeyVerify(key[:]) {
		return nil, ErrInvalidSeckey
	}
	priv := secp256k1.PrivKeyFromBytes(key[:])
	defer priv.Zero()

	var point, product secp256k1.JacobianPoint
	pub.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(&priv.Key, &point, &product)
	if product.Z.Normalize().IsZero() {
		return nil, ErrPointAtInfinity
	}
	product.ToAffine()
	shared := secp256k1.NewPublicKey(&product.X, &product.Y)
	return shared.SerializeCompressed(), nil
}
