package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/go-signer/internal/config"
	"github/chapool/go-signer/internal/util/command"
	"github/chapool/go-signer/internal/wallet"
	"github/chapool/go-signer/internal/wallet/keystore"
	"github/chapool/go-signer/internal/wallet/mnemonic"
)

const mnemonicFlag = "mnemonic"

// New groups the keystore setup subcommands.
func New() *cobra.Command {
	return command.NewSubcommandGroup("setup",
		newInit(),
		newImport(),
	)
}

// newInit creates the keystore (generating a fresh identity) or restores
// from an existing one.
func newInit() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Creates the keystore or restores the identity from an existing one",
		Run: func(_ *cobra.Command, _ []string) {
			ctx := context.Background()
			cfg := config.DefaultServiceConfigFromEnv()

			holder, err := wallet.BootstrapFromConfig(ctx, cfg)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize identity")
			}

			id := holder.MustCurrent()
			fmt.Println("wallet address:  ", id.WalletAddress())
			fmt.Println("identity address:", id.IdentityAddress())
		},
	}
}

// newImport creates the keystore from an explicitly provided mnemonic.
func newImport() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Creates the keystore from an existing BIP39 mnemonic",
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := context.Background()
			cfg := config.DefaultServiceConfigFromEnv()

			words, err := cmd.Flags().GetString(mnemonicFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to read mnemonic flag")
			}
			words = strings.TrimSpace(words)

			if !mnemonic.Validate(words) {
				log.Fatal().Msg("Provided mnemonic is not a valid BIP39 word list")
			}

			store, err := keystore.NewService(cfg.KeystorePath)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create keystore service")
			}

			password, err := wallet.ResolvePassword(cfg, false)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to resolve keystore password")
			}

			holder, err := wallet.ImportIdentity(ctx, store, password, words)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to import identity")
			}

			id := holder.MustCurrent()
			fmt.Println("wallet address:  ", id.WalletAddress())
			fmt.Println("identity address:", id.IdentityAddress())
		},
	}

	cmd.Flags().String(mnemonicFlag, "", "BIP39 mnemonic words, space separated")
	_ = cmd.MarkFlagRequired(mnemonicFlag)

	return cmd
}
