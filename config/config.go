package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Issue store
	Store StoreConfig
	Mongo MongoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type StoreConfig struct {
	Driver string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/.
// Every key can be overridden from the environment with dots replaced by
// underscores (mongo.uri -> MONGO_URI); PORT is honoured as well.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Issue store
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Mongo.URI = v.GetString("mongo.uri")
	cfg.Mongo.Database = v.GetString("mongo.database")
	cfg.Mongo.Collection = v.GetString("mongo.collection")
	cfg.Mongo.Timeout = v.GetDuration("mongo.timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Store.Driver {
	case StoreDriverMongo:
		if cfg.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri (MONGO_URI) is required when store.driver is %q", StoreDriverMongo)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store.driver %q", cfg.Store.Driver)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 600)
	v.SetDefault("store.driver", StoreDriverMongo)
	v.SetDefault("mongo.database", "issue_tracker")
	v.SetDefault("mongo.collection", "issues")
	v.SetDefault("mongo.timeout", "10s")
}

// splitList flattens comma separated entries, since env values arrive as a
// single string.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
