package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// CORS profiles
const (
	CORSOpen   = "open"
	CORSStrict = "strict"
)

// DefaultStrictOrigins are the frontends allowed by the strict CORS profile
var DefaultStrictOrigins = []string{
	"http://localhost:5173",
	"https://veggie-mart-frontend.vercel.app",
}

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	CORS     CORSConfig
	Seed     SeedConfig
	Events   EventsConfig
	LogLevel string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

type ServerConfig struct {
	Port            string `validate:"required,numeric"`
	Host            string
	ReadTimeout     int `validate:"gt=0"`
	WriteTimeout    int `validate:"gt=0"`
	ShutdownTimeout int `validate:"gt=0"`
}

type StoreConfig struct {
	Driver         string `validate:"oneof=mongo memory"`
	MongoURI       string `validate:"required_if=Driver mongo"`
	MongoDatabase  string `validate:"required_if=Driver mongo"`
	ConnectTimeout int    `validate:"gt=0"`
}

type CORSConfig struct {
	Profile          string `validate:"oneof=open strict"`
	AllowedOrigins   []string
	AllowCredentials bool
}

type SeedConfig struct {
	Enabled      bool
	AdminAPIKeys []string // Keys accepted in the api_key header; empty means no key check
}

type EventsConfig struct {
	KafkaBrokers []string
	OrderTopic   string `validate:"required"`
}

var validate = validator.New()

// Load reads configuration from a .env file, if any, and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	profile := strings.ToLower(getEnv("CORS_PROFILE", CORSOpen))
	origins, credentials := corsDefaults(profile)

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
			MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDatabase:  getEnv("MONGO_DATABASE", "veggiemart"),
			ConnectTimeout: getEnvAsInt("MONGO_CONNECT_TIMEOUT", 10),
		},
		CORS: CORSConfig{
			Profile:          profile,
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", origins),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", credentials),
		},
		Seed: SeedConfig{
			Enabled:      getEnvAsBool("SEED_ENABLED", true),
			AdminAPIKeys: getEnvAsSlice("ADMIN_API_KEYS", nil),
		},
		Events: EventsConfig{
			KafkaBrokers: getEnvAsSlice("KAFKA_BROKERS", nil),
			OrderTopic:   getEnv("ORDER_EVENTS_TOPIC", "order-events"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	// Browsers reject a wildcard origin on credentialed requests
	if c.CORS.AllowCredentials {
		for _, o := range c.CORS.AllowedOrigins {
			if o == "*" {
				return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be combined with a wildcard origin")
			}
		}
	}

	return nil
}

// corsDefaults returns the origin list and credentials flag of a profile
func corsDefaults(profile string) ([]string, bool) {
	if profile == CORSStrict {
		return append([]string(nil), DefaultStrictOrigins...), true
	}
	return []string{"*"}, false
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
