package peercrypt_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt"
)

func TestSignRecoverIdentity(t *testing.T) {
	ctx := peercrypt.NewContext()

	for i := 0; i < 8; i++ {
		pair, err := ctx.GenerateKeyPair()
		require.NoError(t, err)

		digest := bytes.Repeat([]byte{byte(i + 1)}, 32)
		sig, err := ctx.SignDigest(pair.Priv, digest)
		require.NoError(t, err)

		raw, err := ctx.SerializeSignature(sig)
		require.NoError(t, err)

		recovered, err := ctx.Recover(raw.Bytes(), digest)
		require.NoError(t, err)
		require.True(t, recovered.Equal(pair.Pub))
	}
}

func TestRecoverInputBounds(t *testing.T) {
	ctx := peercrypt.NewContext()
	digest := bytes.Repeat([]byte{0x01}, 32)

	t.Run("short signature", func(t *testing.T) {
		_, err := ctx.Recover(make([]byte, 64), digest)
		require.ErrorIs(t, err, peercrypt.ErrInputBounds)
	})

	t.Run("empty digest", func(t *testing.T) {
		_, err := ctx.Recover(make([]byte, 65), nil)
		require.ErrorIs(t, err, peercrypt.ErrInputBounds)
	})
}

func TestRecoverBadRecoveryID(t *testing.T) {
	ctx := peercrypt.NewContext()

	pair, err := ctx.GenerateKeyPair()
	require.NoError(t, err)
	digest := bytes.Repeat([]byte{0x44}, 32)

	sig, err := ctx.SignDigest(pair.Priv, digest)
	require.NoError(t, err)
	raw, err := ctx.SerializeSignature(sig)
	require.NoError(t, err)

	for _, recid := range []byte{4, 27, 0xff} {
		bad := raw.Bytes()
		bad[64] = recid
		_, err := ctx.Recover(bad, digest)
		require.ErrorIs(t, err, peercrypt.ErrCryptoLib, "recovery id %d", recid)
	}
}

func TestRecoverMalformedComponents(t *testing.T) {
	ctx := peercrypt.NewContext()
	digest := bytes.Repeat([]byte{0x55}, 32)

	t.Run("all zero signature", func(t *testing.T) {
		_, err := ctx.Recover(make([]byte, 65), digest)
		require.ErrorIs(t, err, peercrypt.ErrCryptoLib)
	})

	t.Run("r at curve order", func(t *testing.T) {
		order, err := hex.DecodeString(curveOrderHex)
		require.NoError(t, err)
		sig := make([]byte, 65)
		copy(sig[:32], order)
		sig[63] = 1 // s = 1
		_, err = ctx.Recover(sig, digest)
		require.ErrorIs(t, err, peercrypt.ErrCryptoLib)
	})
}

// A signature whose components are individually valid can still fail to
// recover any key: with recovery id 2 the X coordinate is r plus the group
// order, which for large r exceeds the field prime. That is a verification
// failure, not malformed input.
func TestRecoverWellFormedButUnrecoverable(t *testing.T) {
	ctx := peercrypt.NewContext()
	digest := bytes.Repeat([]byte{0x66}, 32)

	order, err := hex.DecodeString(curveOrderHex)
	require.NoError(t, err)

	sig := make([]byte, 65)
	copy(sig[:32], order)
	sig[31]-- // r = order - 1
	sig[63] = 1
	sig[64] = 2

	_, err = ctx.Recover(sig, digest)
	require.ErrorIs(t, err, peercrypt.ErrVerification)
	require.NotErrorIs(t, err, peercrypt.ErrCryptoLib)
}

func TestRecoverOversizedSliceUsesFirst65Bytes(t *testing.T) {
	ctx := peercrypt.NewContext()

	pair, err := ctx.GenerateKeyPair()
	require.NoError(t, err)
	digest := bytes.Repeat([]byte{0x77}, 32)

	sig, err := ctx.SignDigest(pair.Priv, digest)
	require.NoError(t, err)
	raw, err := ctx.SerializeSignature(sig)
	require.NoError(t, err)

	padded := append(raw.Bytes(), 0xde, 0xad)
	recovered, err := ctx.Recover(padded, digest)
	require.NoError(t, err)
	require.True(t, recovered.Equal(pair.Pub))
}
