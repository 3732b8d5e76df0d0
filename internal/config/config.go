package config

import (
	"cardbot-server/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the card robot server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}
	Controller struct {
		Name    string `yaml:"name"`
		KeyHash string `yaml:"keyHash" envconfig:"key_hash"`
	}
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

// DefaultConfig returns the configuration before any file or
// environment overrides are applied
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.JWT.PublicKey = "jwt-public.pem"
	c.JWT.PrivateKey = "jwt-private.key"
	c.Controller.Name = "controller"
	c.Log.Level = "info"
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("CARDBOT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cardbot", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
