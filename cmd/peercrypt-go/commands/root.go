package commands

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "peercrypt-go",
		Short:         "secp256k1 handshake-crypto toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(keygenCmd(), pubkeyCmd(), signCmd(), recoverCmd(), ecdhCmd())
	return root.Execute()
}

// decodeHexArg decodes a hex CLI argument, tolerating an optional 0x prefix.
func decodeHexArg(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	return hex.DecodeString(s)
}

// parsePublicKeyArg accepts either the 64-byte wire form or the full
// 65-byte uncompressed encoding with its 0x04 header.
func parsePublicKeyArg(ctx *peercrypt.Context, arg string) (peercrypt.PublicKey, error) {
	raw, err := decodeHexArg(arg)
	if err != nil {
		return peercrypt.PublicKey{}, err
	}
	if len(raw) == peercrypt.RawPublicKeySize && raw[0] == 0x04 {
		raw = raw[1:]
	}
	v, err := peercrypt.FullView(raw)
	if err != nil {
		return peercrypt.PublicKey{}, err
	}
	return ctx.ParsePublicKey(v)
}
