package peercrypt

import (
	"github.com/peerwire/peercrypt-go/pkg/peercrypt/internal/backend"
)

// Sign produces a recoverable signature over a message digest. The digest
// window and its backing buffer must each hold at least the curve-order
// size of 32 bytes; shorter input is rejected before the curve library is
// ever called. Signing is deterministic: no caller entropy is involved, so
// the same key and digest always yield a byte-identical signature.
func (c *Context) Sign(sk PrivateKey, digest View) (Signature, error) {
	if digest.Len() < 32 || digest.BufLen() < 32 {
		return Signature{}, errorf("Sign", ErrInputBounds,
			"digest of %d bytes is too short to sign", digest.Len())
	}
	scalar := [PrivateKeySize]byte(sk)
	sig, err := backend.SignRecoverable(&scalar, digest.Bytes()[:32])
	ZeroizeBytes(scalar[:])
	if err != nil {
		return Signature{}, errorf("Sign", ErrCryptoLib, "%v", err)
	}
	return Signature{sig: sig}, nil
}

// SignDigest signs a digest held in its own buffer.
func (c *Context) SignDigest(sk PrivateKey, digest []byte) (Signature, error) {
	v, err := FullView(digest)
	if err != nil {
		return Signature{}, err
	}
	return c.Sign(sk, v)
}
