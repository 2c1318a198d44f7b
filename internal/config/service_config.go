// Package config resolves the service configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ModuleName is the name of this module, used for the CLI and default paths.
const ModuleName = "go-signer"

// Build arguments, set via -ldflags at build time.
var (
	ModuleVersion = "unknown"
	Commit        = "unknown"
	BuildDate     = "unknown"
)

// GetFormattedBuildArgs returns "ModuleVersion @ Commit (BuildDate)".
func GetFormattedBuildArgs() string {
	return ModuleVersion + " @ " + Commit + " (" + BuildDate + ")"
}

// Logger holds the logging configuration.
type Logger struct {
	Level              string `json:"level"`
	PrettyPrintConsole bool   `json:"pretty_print_console"`
}

// Service is the full service configuration.
type Service struct {
	// KeystorePath is where the encrypted mnemonic lives on disk.
	KeystorePath string `json:"keystore_path"`
	// KeystorePassword unlocks the keystore non-interactively; when empty
	// the CLI prompts. Never serialized.
	KeystorePassword string `json:"-"`
	Logger           Logger `json:"logger"`
}

// DefaultServiceConfigFromEnv returns the configuration resolved from
// GOSIGNER_* environment variables with sensible defaults.
func DefaultServiceConfigFromEnv() Service {
	v := viper.New()
	v.SetEnvPrefix("GOSIGNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("keystore_path", defaultKeystorePath())
	v.SetDefault("keystore_password", "")
	v.SetDefault("logger_level", "info")
	v.SetDefault("logger_pretty_print_console", true)

	return Service{
		KeystorePath:     v.GetString("keystore_path"),
		KeystorePassword: v.GetString("keystore_password"),
		Logger: Logger{
			Level:              v.GetString("logger_level"),
			PrettyPrintConsole: v.GetBool("logger_pretty_print_console"),
		},
	}
}

func defaultKeystorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory when no home is resolvable
		return "keystore.json"
	}
	return filepath.Join(home, "."+ModuleName, "keystore.json")
}
