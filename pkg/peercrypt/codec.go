package peercrypt

import (
	"github.com/peerwire/peercrypt-go/pkg/peercrypt/internal/backend"
)

// SerializePublicKey encodes a public key in the uncompressed 65-byte wire
// form. The backend is asked for uncompressed output unconditionally; a
// result of the wrong length or header byte means the curve library broke
// its contract and is reported as ErrFormat rather than papered over.
func (c *Context) SerializePublicKey(pk PublicKey) (RawPublicKey, error) {
	var raw RawPublicKey
	if pk.IsZero() {
		return raw, errorf("SerializePublicKey", ErrFormat, "zero public key")
	}
	enc := backend.PubkeySerialize(pk.point)
	if len(enc) != RawPublicKeySize {
		return raw, errorf("SerializePublicKey", ErrFormat,
			"curve library returned %d bytes, want %d", len(enc), RawPublicKeySize)
	}
	if enc[0] != uncompressedHeader {
		return raw, errorf("SerializePublicKey", ErrFormat,
			"curve library returned header %#02x, want %#02x", enc[0], uncompressedHeader)
	}
	copy(raw[:], enc)
	return raw, nil
}

// SerializeSignature encodes a recoverable signature in the 65-byte
// R || S || V wire form. The recovery id is returned separately by the
// backend and written into byte 64.
func (c *Context) SerializeSignature(sig Signature) (RawSignature, error) {
	var raw RawSignature
	if sig.sig == nil {
		return raw, errorf("SerializeSignature", ErrFormat, "zero signature")
	}
	rs, recid := sig.sig.SerializeCompact()
	copy(raw[:64], rs[:])
	raw[64] = recid
	return raw, nil
}

// ParsePublicKey decodes the headerless 64-byte X || Y coordinate pair
// exchanged over the wire. The view was bounds-checked at construction;
// here only the selected length is validated before the 0x04 header is
// prepended and the full record handed to the curve library, which rejects
// coordinates that are not a point on the curve.
func (c *Context) ParsePublicKey(v View) (PublicKey, error) {
	if v.Len() < WirePublicKeySize {
		return PublicKey{}, errorf("ParsePublicKey", ErrFormat,
			"need %d coordinate bytes, have %d", WirePublicKeySize, v.Len())
	}
	var record [RawPublicKeySize]byte
	record[0] = uncompressedHeader
	copy(record[1:], v.Bytes()[:WirePublicKeySize])

	point, err := backend.PubkeyParse(record[:])
	if err != nil {
		return PublicKey{}, errorf("ParsePublicKey", ErrCryptoLib, "%v", err)
	}
	return PublicKey{point: point}, nil
}

// ParsePrivateKey imports a secret scalar from hex. Surrounding whitespace
// and an optional 0x prefix are tolerated; at least 32 decoded bytes are
// required and only the first 32 are used. The scalar is validated against
// the curve order before a key is returned.
func (c *Context) ParsePrivateKey(hexKey string) (PrivateKey, error) {
	var sk PrivateKey
	decoded, err := decodeHex(hexKey)
	if err != nil {
		return sk, errorf("ParsePrivateKey", ErrFormat, "invalid hex: %v", err)
	}
	if len(decoded) < PrivateKeySize {
		return sk, errorf("ParsePrivateKey", ErrFormat,
			"need %d bytes, decoded %d", PrivateKeySize, len(decoded))
	}
	if !backend.SeckeyVerify(decoded[:PrivateKeySize]) {
		ZeroizeBytes(decoded)
		return sk, errorf("ParsePrivateKey", ErrFormat, "scalar outside curve order")
	}
	copy(sk[:], decoded[:PrivateKeySize])
	ZeroizeBytes(decoded)
	return sk, nil
}

// ParsePublicKeyHex decodes hex then parses the headerless coordinate pair.
func (c *Context) ParsePublicKeyHex(hexKey string) (PublicKey, error) {
	decoded, err := decodeHex(hexKey)
	if err != nil {
		return PublicKey{}, errorf("ParsePublicKeyHex", ErrFormat, "invalid hex: %v", err)
	}
	v, err := FullView(decoded)
	if err != nil {
		return PublicKey{}, err
	}
	return c.ParsePublicKey(v)
}

// DerivePublicKey computes the public half of a private key.
func (c *Context) DerivePublicKey(sk PrivateKey) (PublicKey, error) {
	scalar := [PrivateKeySize]byte(sk)
	point, err := backend.PubkeyCreate(&scalar)
	ZeroizeBytes(scalar[:])
	if err != nil {
		return PublicKey{}, errorf("DerivePublicKey", ErrCryptoLib, "%v", err)
	}
	return PublicKey{point: point}, nil
}
