package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	GraphQL GraphQLConfig `mapstructure:"graphql"`
	Dataset DatasetConfig `mapstructure:"dataset"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout     time.Duration `mapstructure:"idleTimeout"`
	RequestTimeout  time.Duration `mapstructure:"requestTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// GraphQLConfig controls the typed-query endpoint. MaxDepth of 0 leaves
// query depth unbounded.
type GraphQLConfig struct {
	Path           string `mapstructure:"path"`
	Playground     bool   `mapstructure:"playground"`
	MaxParallelism int    `mapstructure:"maxParallelism"`
	MaxDepth       int    `mapstructure:"maxDepth"`
}

// DatasetConfig points at an alternative YAML fixture. An empty path selects
// the fixture compiled into the binary.
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.readTimeout", 15*time.Second)
	viper.SetDefault("server.writeTimeout", 15*time.Second)
	viper.SetDefault("server.idleTimeout", 60*time.Second)
	viper.SetDefault("server.requestTimeout", 60*time.Second)
	viper.SetDefault("server.shutdownTimeout", 20*time.Second)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")
	viper.SetDefault("graphql.path", "/graphql")
	viper.SetDefault("graphql.playground", true)
	viper.SetDefault("graphql.maxParallelism", 10)
	viper.SetDefault("graphql.maxDepth", 0)
	viper.SetDefault("dataset.path", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
