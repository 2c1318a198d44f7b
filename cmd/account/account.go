package account

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/go-signer/internal/config"
	"github/chapool/go-signer/internal/util/command"
	"github/chapool/go-signer/internal/wallet"
)

// New groups the account inspection subcommands.
func New() *cobra.Command {
	return command.NewSubcommandGroup("account",
		newAddress(),
	)
}

func newAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Prints the EIP-55 addresses of the wallet and identity keys",
		Run: func(_ *cobra.Command, _ []string) {
			ctx := context.Background()
			cfg := config.DefaultServiceConfigFromEnv()

			holder, err := wallet.BootstrapFromConfig(ctx, cfg)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to load identity")
			}

			id := holder.MustCurrent()
			fmt.Println("wallet address:  ", id.WalletAddress())
			fmt.Println("identity address:", id.IdentityAddress())
		},
	}
}
