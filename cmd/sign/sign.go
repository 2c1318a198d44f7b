package sign

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/go-signer/internal/config"
	"github/chapool/go-signer/internal/util"
	"github/chapool/go-signer/internal/util/command"
	"github/chapool/go-signer/internal/wallet"
	"github/chapool/go-signer/internal/wallet/identity"
	"github/chapool/go-signer/internal/wallet/signer"
	"github/chapool/go-signer/internal/wallet/txsigner"
)

// New groups the signing subcommands.
func New() *cobra.Command {
	return command.NewSubcommandGroup("sign",
		newMessage(),
		newTransaction(),
		newDigest(),
	)
}

// newMessage signs a UTF-8 message with the identity key (EIP-191 personal
// message convention).
func newMessage() *cobra.Command {
	return &cobra.Command{
		Use:   "message <utf8-message>",
		Short: "Signs a message with the identity key",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			id := mustIdentity()

			signature, err := id.IdentitySigner().SignMessage(args[0])
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to sign message")
			}

			fmt.Println(signature)
		},
	}
}

// newTransaction signs an unsigned raw Ethereum transaction with the wallet
// key.
func newTransaction() *cobra.Command {
	return &cobra.Command{
		Use:   "transaction <unsigned-tx-hex>",
		Short: "Signs an unsigned RLP-encoded transaction with the wallet key",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			ctx := util.WithLogger(context.Background(),
				log.With().Str("component", "txsigner").Logger())
			id := mustIdentity()

			service, err := txsigner.NewService(id.WalletSigner())
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create transaction signer")
			}

			signed, err := service.SignTransaction(ctx, args[0])
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to sign transaction")
			}

			fmt.Println(signed)
		},
	}
}

// newDigest prints the Keccak-256 digest of a payload (hex if 0x-prefixed,
// UTF-8 otherwise).
func newDigest() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <payload>",
		Short: "Prints the Keccak-256 digest of a payload",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			payload := args[0]

			data := []byte(payload)
			if strings.HasPrefix(payload, "0x") {
				decoded, err := hex.DecodeString(strings.TrimPrefix(payload, "0x"))
				if err != nil {
					log.Fatal().Err(err).Msg("Payload is not valid hex")
				}
				data = decoded
			}

			fmt.Println(signer.Keccak256Hex(data))
		},
	}
}

func mustIdentity() *identity.Identity {
	ctx := context.Background()
	cfg := config.DefaultServiceConfigFromEnv()

	holder, err := wallet.BootstrapFromConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load identity")
	}

	return holder.MustCurrent()
}
