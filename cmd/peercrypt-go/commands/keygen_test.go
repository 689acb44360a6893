package commands

import (
	"encoding/hex"
	"testing"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt"
)

// The address is rendered over the compressed key: compressing the
// generator's uncompressed encoding must yield its published compressed
// form (even Y, so prefix 0x02).
func TestCompressedForm(t *testing.T) {
	uncompressed := "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	compressed := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

	rawBytes, err := hex.DecodeString(uncompressed)
	if err != nil {
		t.Fatalf("bad hex in test: %v", err)
	}
	var raw peercrypt.RawPublicKey
	copy(raw[:], rawBytes)

	if got := hex.EncodeToString(compressedForm(raw)); got != compressed {
		t.Errorf("compressedForm() = %s, want %s", got, compressed)
	}
}

// Odd Y flips the parity prefix to 0x03.
func TestCompressedFormOddParity(t *testing.T) {
	var raw peercrypt.RawPublicKey
	raw[0] = 0x04
	raw[peercrypt.RawPublicKeySize-1] = 0x01

	if got := compressedForm(raw)[0]; got != 0x03 {
		t.Errorf("parity prefix = %#02x, want 0x03", got)
	}
}
