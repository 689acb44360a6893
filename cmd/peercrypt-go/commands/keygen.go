package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"github.com/peerwire/peercrypt-go/pkg/peercrypt"
)

func keygenCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate secp256k1 key pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := peercrypt.NewContext()

			for i := 0; i < count; i++ {
				pair, err := ctx.GenerateKeyPair()
				if err != nil {
					return err
				}
				raw, err := ctx.SerializePublicKey(pair.Pub)
				if err != nil {
					return err
				}

				fmt.Printf("key pair %d:\n", i+1)
				fmt.Printf("  private: %s\n", pair.Priv.Hex())
				fmt.Printf("  public:  %s\n", hex.EncodeToString(raw.Bytes()))
				fmt.Printf("  address: %s\n", base58.Encode(compressedForm(raw)))
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of key pairs to generate")
	return cmd
}

// compressedForm rebuilds the 33-byte compressed encoding from the
// uncompressed one: a parity prefix derived from Y's low bit, then X.
// Addresses are rendered over the compressed key.
func compressedForm(raw peercrypt.RawPublicKey) []byte {
	out := make([]byte, 33)
	out[0] = 0x02 | raw[peercrypt.RawPublicKeySize-1]&1
	copy(out[1:], raw[1:33])
	return out
}

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <private-key-hex>",
		Short: "Derive the uncompressed public key of a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := peercrypt.NewContext()

			sk, err := ctx.ParsePrivateKey(args[0])
			if err != nil {
				return err
			}
			defer sk.Zeroize()

			pk, err := ctx.DerivePublicKey(sk)
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
