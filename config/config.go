package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	AuthLocal    = "local"
	AuthFirebase = "firebase"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	App       AppConfig
}

type ServerConfig struct {
	Port      string
	ClientURL string
}

type StoreConfig struct {
	Driver        string
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
}

type RedisConfig struct {
	URL           string
	NotifyChannel string
}

type AuthConfig struct {
	Provider                string
	JWTSecret               string
	JWTExpiry               time.Duration
	FirebaseCredentialsPath string
}

type RateLimitConfig struct {
	ContactPerMinute int
	ContactBurst     int
	LoginPerMinute   int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ServiceName string
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not read .env: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if p := os.Getenv("CONFIG_FILE"); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", p, err)
		}
	}

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("CLIENT_URL", "http://localhost:3000")
	v.SetDefault("STORE_DRIVER", StoreMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "portfolio")
	v.SetDefault("CONTACT_NOTIFY_CHANNEL", "portfolio:contact")
	v.SetDefault("AUTH_PROVIDER", AuthLocal)
	v.SetDefault("JWT_EXPIRES_IN", "168h")
	v.SetDefault("CONTACT_RATE_PER_MINUTE", 5)
	v.SetDefault("CONTACT_RATE_BURST", 3)
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("SERVICE_NAME", "portfolio-api")
}

// FromViper maps an already populated viper instance onto Config.
func FromViper(v *viper.Viper) *Config {
	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRES_IN"))
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN %q, using 168h", v.GetString("JWT_EXPIRES_IN"))
		expiry = 7 * 24 * time.Hour
	}

	return &Config{
		Server: ServerConfig{
			Port:      v.GetString("PORT"),
			ClientURL: v.GetString("CLIENT_URL"),
		},
		Store: StoreConfig{
			Driver:        strings.ToLower(v.GetString("STORE_DRIVER")),
			MongoURI:      v.GetString("MONGODB_URI"),
			MongoDatabase: v.GetString("MONGODB_DATABASE"),
			PostgresDSN:   v.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL:           v.GetString("REDIS_URL"),
			NotifyChannel: v.GetString("CONTACT_NOTIFY_CHANNEL"),
		},
		Auth: AuthConfig{
			Provider:                strings.ToLower(v.GetString("AUTH_PROVIDER")),
			JWTSecret:               v.GetString("JWT_SECRET"),
			JWTExpiry:               expiry,
			FirebaseCredentialsPath: v.GetString("FIREBASE_CREDENTIALS_PATH"),
		},
		RateLimit: RateLimitConfig{
			ContactPerMinute: v.GetInt("CONTACT_RATE_PER_MINUTE"),
			ContactBurst:     v.GetInt("CONTACT_RATE_BURST"),
			LoginPerMinute:   v.GetInt("LOGIN_RATE_PER_MINUTE"),
		},
		App: AppConfig{
			Environment: v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			Version:     v.GetString("APP_VERSION"),
			ServiceName: v.GetString("SERVICE_NAME"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Driver {
	case StoreMongo:
		if c.Store.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_DRIVER=mongo")
		}
	case StorePostgres:
		if c.Store.PostgresDSN == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Auth.Provider {
	case AuthLocal:
		if c.Auth.JWTSecret == "" && c.App.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.Auth.JWTSecret == "" && c.Store.Driver != StoreMemory {
			return fmt.Errorf("JWT_SECRET is required when AUTH_PROVIDER=local and STORE_DRIVER=%s", c.Store.Driver)
		}
	case AuthFirebase:
		if c.Auth.FirebaseCredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required when AUTH_PROVIDER=firebase")
		}
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", c.Auth.Provider)
	}

	if c.RateLimit.ContactPerMinute <= 0 || c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}

	return nil
}
