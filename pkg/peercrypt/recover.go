package peercrypt

import (
	"github.com/peerwire/peercrypt-go/pkg/peercrypt/internal/backend"
)

// Recover reconstructs the signer's public key from a 65-byte R || S || V
// signature and the digest it signed. Undersized input is rejected up front;
// a recovery id outside 0-3 or an out-of-range r or s is a malformed
// signature (ErrCryptoLib); bytes that parse cleanly but recover no valid
// point for this digest fail verification (ErrVerification). The three cases
// stay distinguishable so a peer sending garbage is reported differently
// from a peer whose well-formed signature simply does not check out.
func (c *Context) Recover(sig []byte, digest []byte) (PublicKey, error) {
	if len(sig) < RawSignatureSize {
		return PublicKey{}, errorf("Recover", ErrInputBounds,
			"incorrect signature size: %d bytes, need %d", len(sig), RawSignatureSize)
	}
	if len(digest) == 0 {
		return PublicKey{}, errorf("Recover", ErrInputBounds, "empty digest")
	}

	parsed, err := backend.ParseCompact(sig[:64], sig[64])
	if err != nil {
		return PublicKey{}, errorf("Recover", ErrCryptoLib, "%v", err)
	}
	point, err := backend.Recover(parsed, digest)
	if err != nil {
		return PublicKey{}, errorf("Recover", ErrVerification, "%v", err)
	}
	return PublicKey{point: point}, nil
}

// RecoverRaw recovers the signer from a wire-form RawSignature value.
func (c *Context) RecoverRaw(sig RawSignature, digest []byte) (PublicKey, error) {
	return c.Recover(sig[:], digest)
}
