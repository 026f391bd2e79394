package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "BOOTHTRACK"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App   AppConfig
	Mongo MongoConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Mongo.ensureDatabase(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BOOTHTRACK_APP_ENV" required:"true"`
	Port         string `envconfig:"BOOTHTRACK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BOOTHTRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BOOTHTRACK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type MongoConfig struct {
	// URI is the single connection-string variable; the target database name
	// is part of its path, e.g. mongodb://localhost:27017/boothtrack.
	URI      string `envconfig:"BOOTHTRACK_MONGODB_URI" required:"true"`
	Database string `envconfig:"BOOTHTRACK_MONGODB_DATABASE"`

	ConnectTimeout time.Duration `envconfig:"BOOTHTRACK_MONGODB_CONNECT_TIMEOUT" default:"10s"`
}

// ensureDatabase resolves the target database name, preferring the explicit
// override and falling back to the URI path.
func (m *MongoConfig) ensureDatabase() error {
	if m.Database != "" {
		return nil
	}

	parsed, err := url.Parse(m.URI)
	if err != nil {
		return fmt.Errorf("parsing mongodb uri: %w", err)
	}

	name := strings.Trim(parsed.EscapedPath(), "/")
	if name == "" {
		return fmt.Errorf("database name not found in %s_MONGODB_URI; include it in the connection string path (e.g. /boothtrack)", EnvPrefix)
	}
	m.Database = name
	return nil
}
