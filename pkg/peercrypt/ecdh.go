package peercrypt

import (
	"github.com/peerwire/peercrypt-go/pkg/peercrypt/internal/backend"
)

// ECDH derives the shared secret between a local private key and a peer's
// public key. The backend returns the shared point in its 33-byte
// compressed form; the parity prefix is discarded and the remaining 32-byte
// X coordinate returned unmodified. The raw coordinate, not a hash of it,
// is what handshake peers expect on the wire, so no KDF is applied here.
func (c *Context) ECDH(sk PrivateKey, pk PublicKey) (SharedSecret, error) {
	var secret SharedSecret
	if pk.IsZero() {
		return secret, errorf("ECDH", ErrCryptoLib, "zero public key")
	}
	scalar := [PrivateKeySize]byte(sk)
	shared, err := backend.ECDHRaw(&scalar, pk.point)
	ZeroizeBytes(scalar[:])
	if err != nil {
		return secret, errorf("ECDH", ErrCryptoLib, "%v", err)
	}
	if len(shared) != SharedSecretSize+1 {
		return secret, errorf("ECDH", ErrFormat,
			"curve library returned %d bytes, want %d", len(shared), SharedSecretSize+1)
	}
	copy(secret[:], shared[1:])
	ZeroizeBytes(shared)
	return secret, nil
}
