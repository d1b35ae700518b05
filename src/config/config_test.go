package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"investing/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	settings := `
service:
  port: "8080"
  logLevel: "debug"
databases:
  sql:
    host: "localhost"
    port: "5432"
    username: "postgres"
    password: "postgres"
    database: "investing"
externalClients:
  marketData:
    baseUrl: "https://www.alphavantage.co/query"
    apiKey: "demo"
    timeoutSeconds: 5
    cacheTtlSeconds: 300
allocation:
  tiers:
    tier1:
      VOO: 1.0
    tier2:
      VOO: 0.70
      BND: 0.30
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "appsettings.yaml"), []byte(settings), 0o600))

	cfg, err := config.LoadConfig(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Service.Port)
	assert.Equal(t, "debug", cfg.Service.LogLevel)
	assert.Equal(t, "investing", cfg.Databases.SQL.Database)
	assert.Equal(t, "demo", cfg.ExternalClients.MarketData.APIKey)
	assert.Equal(t, 300, cfg.ExternalClients.MarketData.CacheTTLSeconds)
	assert.Equal(t, 1.0, cfg.Allocation.Tiers["tier1"]["VOO"])
	assert.Equal(t, 0.30, cfg.Allocation.Tiers["tier2"]["BND"])
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(t.TempDir(), "nope")
	require.Error(t, err)
}
