package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the runtime configuration of the API.
type Config struct {
	AppPort        string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	RabbitMQURL    string
	AllowedOrigins []string
	StaticDir      string
	SeedFile       string
	LogLevel       string
	LogFormat      string
	LoginRateLimit int
	Policy         Policy
}

// Policy toggles the access rules that differ between deployments.
type Policy struct {
	PublicCatalog      bool
	PublicUserList     bool
	OwnerOnlyDelete    bool
	OwnerOnlyFavorites bool
	RehashOnUpdate     bool
	ExposePasswordHash bool
}

// SetDefaults registers every key with its default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "movies.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "168h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080,http://localhost:1234")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOGIN_RATE_LIMIT", 20)
	v.SetDefault("PUBLIC_CATALOG", false)
	v.SetDefault("PUBLIC_USER_LIST", false)
	v.SetDefault("OWNER_ONLY_DELETE", true)
	v.SetDefault("OWNER_ONLY_FAVORITES", true)
	v.SetDefault("REHASH_ON_UPDATE", true)
	v.SetDefault("EXPOSE_PASSWORD_HASH", false)
}

// Load reads configuration from the environment and, when present, a
// config.yaml in the working directory. Environment variables win.
func Load() (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:        v.GetString("APP_PORT"),
		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		StaticDir:      v.GetString("STATIC_DIR"),
		SeedFile:       v.GetString("SEED_FILE"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		LoginRateLimit: v.GetInt("LOGIN_RATE_LIMIT"),
		Policy: Policy{
			PublicCatalog:      v.GetBool("PUBLIC_CATALOG"),
			PublicUserList:     v.GetBool("PUBLIC_USER_LIST"),
			OwnerOnlyDelete:    v.GetBool("OWNER_ONLY_DELETE"),
			OwnerOnlyFavorites: v.GetBool("OWNER_ONLY_FAVORITES"),
			RehashOnUpdate:     v.GetBool("REHASH_ON_UPDATE"),
			ExposePasswordHash: v.GetBool("EXPOSE_PASSWORD_HASH"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that have no usable default.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.DatabaseDriver {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
