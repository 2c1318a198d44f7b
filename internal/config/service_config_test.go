package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-signer/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(cfg, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	assert.NotEmpty(t, cfg.KeystorePath)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Logger.PrettyPrintConsole)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GOSIGNER_KEYSTORE_PATH", "/tmp/test-keystore.json")
	t.Setenv("GOSIGNER_LOGGER_LEVEL", "debug")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, "/tmp/test-keystore.json", cfg.KeystorePath)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

// The password must never travel through JSON serialization (env command
// output, logs).
func TestPasswordNotSerialized(t *testing.T) {
	t.Setenv("GOSIGNER_KEYSTORE_PASSWORD", "super secret")

	cfg := config.DefaultServiceConfigFromEnv()
	require.Equal(t, "super secret", cfg.KeystorePassword)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "super secret")
}
