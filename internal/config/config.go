package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/paydesk/paydesk/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server  ServerConfig  `validate:"required"`
	Logging LoggingConfig `validate:"required"`
	Storage StorageConfig `validate:"required"`
	Receipt ReceiptConfig `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// StorageConfig selects and configures the persistence gateway backend.
type StorageConfig struct {
	Backend  types.StorageBackend `validate:"required,oneof=file postgres memory"`
	File     FileStorageConfig
	Postgres PostgresConfig
}

type FileStorageConfig struct {
	Path string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ReceiptConfig controls receipt number generation.
type ReceiptConfig struct {
	Prefix string              `validate:"required"`
	Scheme types.ReceiptScheme `validate:"required,oneof=legacy random"`
}

func NewConfig() (*Configuration, error) {
	// load .env if present, real env still wins
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/paydesk")

	v.SetEnvPrefix("PAYDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("storage.backend", string(types.StorageBackendFile))
	v.SetDefault("storage.file.path", "paydesk_payments.json")
	v.SetDefault("receipt.prefix", types.ReceiptPrefixDefault)
	v.SetDefault("receipt.scheme", string(types.ReceiptSchemeRandom))

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// GetDefaultConfig returns a default configuration for local development
// and tests. It keeps everything in memory.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Storage: StorageConfig{Backend: types.StorageBackendMemory},
		Receipt: ReceiptConfig{
			Prefix: types.ReceiptPrefixDefault,
			Scheme: types.ReceiptSchemeLegacy,
		},
	}
}
