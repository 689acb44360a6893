// Package commands wires the peercrypt-go CLI: key generation, public-key
// derivation, recoverable signing, signer recovery, and shared-secret
// derivation, all printing hex to stdout.
package commands
