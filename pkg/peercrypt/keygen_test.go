package peercrypt_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt"
)

func TestGenerateKeyProducesImportableScalar(t *testing.T) {
	ctx := peercrypt.NewContext()

	sk, err := ctx.GenerateKey()
	require.NoError(t, err)

	// A generated key always survives the import path's validation.
	reimported, err := ctx.ParsePrivateKey(sk.Hex())
	require.NoError(t, err)
	require.Equal(t, sk, reimported)
}

// Candidates outside (0, N) must be redrawn: feed the generator the zero
// scalar, then the curve order, then a valid scalar, and require that only
// the valid one comes back.
func TestGenerateKeyRejectionSampling(t *testing.T) {
	order, err := hex.DecodeString(curveOrderHex)
	require.NoError(t, err)

	valid := bytes.Repeat([]byte{0x11}, 32)
	script := append(append(make([]byte, 32), order...), valid...)

	ctx := peercrypt.NewContext(peercrypt.WithRand(bytes.NewReader(script)))

	sk, err := ctx.GenerateKey()
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("11", 32), sk.Hex())
}

func TestGenerateKeyRandFailure(t *testing.T) {
	ctx := peercrypt.NewContext(peercrypt.WithRand(failingReader{}))

	_, err := ctx.GenerateKey()
	require.Error(t, err)
	require.Contains(t, err.Error(), "random source failed")
}

func TestGenerateKeyPairConsistent(t *testing.T) {
	ctx := peercrypt.NewContext()

	pair, err := ctx.GenerateKeyPair()
	require.NoError(t, err)

	derived, err := ctx.DerivePublicKey(pair.Priv)
	require.NoError(t, err)
	require.True(t, pair.Pub.Equal(derived))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}
