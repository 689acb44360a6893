package peercrypt

import (
	"fmt"
	"io"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt/internal/backend"
)

// GenerateKey draws a fresh private key by rejection sampling: 32 random
// bytes are accepted only when the curve library confirms the scalar lies
// in (0, N). The rejection probability is about 2^-128, so the loop all but
// always finishes on the first draw, but a key is never returned without
// passing validation.
func (c *Context) GenerateKey() (PrivateKey, error) {
	var sk PrivateKey
	for {
		if _, err := io.ReadFull(c.rand, sk[:]); err != nil {
			return PrivateKey{}, &Error{Op: "GenerateKey",
				Err: fmt.Errorf("random source failed: %w", err)}
		}
		if backend.SeckeyVerify(sk[:]) {
			return sk, nil
		}
	}
}

// GenerateKeyPair generates a private key and derives its public half. The
// derivation can only fail if the curve library rejects a scalar it just
// validated, which is a broken dependency rather than bad input.
func (c *Context) GenerateKeyPair() (KeyPair, error) {
	sk, err := c.GenerateKey()
	if err != nil {
		return KeyPair{}, err
	}
	pk, err := c.DerivePublicKey(sk)
	if err != nil {
		sk.Zeroize()
		return KeyPair{}, errorf("GenerateKeyPair", ErrCryptoLib,
			"validated key rejected by derivation: %v", err)
	}
	return KeyPair{Priv: sk, Pub: pk}, nil
}
