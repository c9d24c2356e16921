package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config is the whole runtime configuration, read from the environment
type Config struct {
	Port     string
	LogLevel string
	DB       DBConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	Redis    RedisConfig
}

// DBConfig holds database connection parameters
type DBConfig struct {
	Driver    string
	Host      string
	Port      string
	User      string
	Password  string
	Name      string
	MongoURI  string
	MongoHost string
}

// AuthConfig holds token settings
type AuthConfig struct {
	Secret          string
	Expiration      time.Duration
	RequirePassword bool
}

// PaymentConfig holds processor credentials
type PaymentConfig struct {
	SecretKey string
	Currency  string
}

// RedisConfig enables the menu cache when Addr is set
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	MenuTTL  time.Duration
}

// Load reads .env (if any) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found or error loading, relying on environment variables")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		DB: DBConfig{
			Driver:    strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres)),
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "5432"),
			User:      os.Getenv("DB_USER"),
			Password:  os.Getenv("DB_PASS"),
			Name:      os.Getenv("DB_NAME"),
			MongoURI:  os.Getenv("MONGO_URI"),
			MongoHost: os.Getenv("MONGO_HOST"),
		},
		Auth: AuthConfig{
			Secret: os.Getenv("ACCESS_TOKEN_SECRET"),
		},
		Payment: PaymentConfig{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
			Currency:  getEnv("PAYMENT_CURRENCY", "usd"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	expHours, err := strconv.ParseInt(getEnv("JWT_EXPIRATION_HOURS", "1"), 10, 64)
	if err != nil || expHours <= 0 {
		log.Warningf("Invalid JWT_EXPIRATION_HOURS, defaulting to 1: %v", err)
		expHours = 1
	}
	cfg.Auth.Expiration = time.Duration(expHours) * time.Hour

	if v := os.Getenv("AUTH_REQUIRE_PASSWORD"); v != "" {
		cfg.Auth.RequirePassword, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_REQUIRE_PASSWORD %q: %w", v, err)
		}
	}

	cfg.Redis.DB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.Redis.MenuTTL, err = time.ParseDuration(getEnv("MENU_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid MENU_CACHE_TTL: %w", err)
	}

	if cfg.DB.Name == "" {
		cfg.DB.Name = "bistro"
		if cfg.DB.Driver == DriverMongo {
			cfg.DB.Name = "BistroDb"
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET not set in environment")
	}
	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.User == "" {
			return fmt.Errorf("database environment variables not set (DB_USER, DB_PASS)")
		}
	case DriverMongo:
		if c.DB.MongoURI == "" && (c.DB.User == "" || c.DB.MongoHost == "") {
			return fmt.Errorf("set MONGO_URI or DB_USER, DB_PASS and MONGO_HOST")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.DB.Driver)
	}
	return nil
}

// PostgresDSN builds the pgx connection string
func (c DBConfig) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// MongoConnectionURI returns MONGO_URI or the Atlas SRV URI built from credentials
func (c DBConfig) MongoConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", c.User, c.Password, c.MongoHost)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
