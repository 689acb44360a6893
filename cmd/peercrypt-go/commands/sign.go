package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <private-key-hex> <digest-hex>",
		Short: "Produce a recoverable signature over a 32-byte digest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := peercrypt.NewContext()

			sk, err := ctx.ParsePrivateKey(args[0])
			if err != nil {
				return err
			}
			defer sk.Zeroize()

			digest, err := decodeHexArg(args[1])
			if err != nil {
				return err
			}

			sig, err := ctx.SignDigest(sk, digest)
			if err != nil {
				return err
			}
			raw, err := ctx.SerializeSignature(sig)
			if err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(raw.Bytes()))
			return nil
		},
	}
}

func recoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover <signature-hex> <digest-hex>",
		Short: "Recover the signer's public key from a signature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := peercrypt.NewContext()

			sig, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			digest, err := decodeHexArg(args[1])
			if err != nil {
				return err
			}

			pk, err := ctx.Recover(sig, digest)
			if err != nil {
				return err
			}
			raw, err := ctx.SerializePublicKey(pk)
			if err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(raw.Bytes()))
			return nil
		},
	}
}
