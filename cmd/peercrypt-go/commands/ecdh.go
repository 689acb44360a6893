package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt"
)

func ecdhCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ecdh <private-key-hex> <public-key-hex>",
		Short: "Derive the raw-coordinate shared secret with a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := peercrypt.NewContext()

			sk, err := ctx.ParsePrivateKey(args[0])
			if err != nil {
				return err
			}
			defer sk.Zeroize()

			pk, err := parsePublicKeyArg(ctx, args[1])
			if err != nil {
				return err
			}

			secret, err := ctx.ECDH(sk, pk)
			if err != nil {
				return err
			}
			defer secret.Zeroize()

			fmt.Println(hex.EncodeToString(secret[:]))
			return nil
		},
	}
}
