package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Allocation      AllocationConfig     `mapstructure:"allocation"`
}

type ServiceConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

// DSN returns the connection string, assembling one from the individual
// fields when none is configured explicitly.
func (c SQLConfig) DSN() string {
	if c.ConnectionString != "" {
		return c.ConnectionString
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.Username, c.Password, c.Database, c.Port)
}

type ExternalClientConfig struct {
	MarketData MarketDataConfig `mapstructure:"marketData"`
}

type MarketDataConfig struct {
	BaseURL         string `mapstructure:"baseUrl"`
	APIKey          string `mapstructure:"apiKey"`
	TimeoutSeconds  int    `mapstructure:"timeoutSeconds"`
	CacheTTLSeconds int    `mapstructure:"cacheTtlSeconds"`
}

// AllocationConfig is the source of truth for the base (balanced) weight
// maps per balance tier. Keys are "tier1".."tier4".
type AllocationConfig struct {
	Tiers map[string]map[string]float64 `mapstructure:"tiers"`
}

func LoadConfig(path string, env string) (*Config, error) {
	var cfg Config

	name := "appsettings"
	if env != "" {
		name = fmt.Sprintf("appsettings.%s", env)
	}

	viper.AddConfigPath(path)
	viper.SetConfigName(name)
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
