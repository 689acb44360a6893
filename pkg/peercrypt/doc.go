// Package peercrypt supplies the secp256k1 primitives used to authenticate
// peers and derive shared secrets during a peer-to-peer handshake: key
// generation, recoverable ECDSA signing, signer recovery, raw-coordinate
// ECDH, and the exact binary layouts those values take on the wire. Curve
// arithmetic is delegated to a constant-time external library behind the
// internal backend package; this package owns serialization, bounds
// checking, and error classification.
package peercrypt
