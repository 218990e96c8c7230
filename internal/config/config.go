package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

const (
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultDBName        = "assignment-6"
	defaultPort          = "5000"
	defaultExpiresIn     = time.Hour
	defaultAllowedOrigin = "https://health-hub-portal.web.app"
)

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

// Config holds everything the server needs before it accepts its first
// request. It is built once in main and passed down; nothing reads the
// environment after startup.
type Config struct {
	MongoURI      string
	DBName        string
	JWTSecret     string
	TokenExpiry   time.Duration
	Port          string
	AllowedOrigin string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		MongoURI:      getenv("MONGODB_URI"),
		DBName:        getenv("DB_NAME"),
		JWTSecret:     getenv("JWT_SECRET"),
		Port:          getenv("PORT"),
		AllowedOrigin: getenv("CORS_ORIGIN"),
		TokenExpiry:   defaultExpiresIn,
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = getenv("MONGO_URI")
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = defaultMongoURI
	}
	if cfg.DBName == "" {
		cfg.DBName = defaultDBName
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = defaultAllowedOrigin
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingSecret
	}

	if raw := getenv("EXPIRES_IN"); raw != "" {
		d, err := ParseExpiry(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.TokenExpiry = d
	}

	return cfg, nil
}

// ParseExpiry accepts a Go duration ("90m", "12h"), a day count ("7d") or a
// bare number of seconds ("3600").
func ParseExpiry(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)

	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("invalid EXPIRES_IN %q: must be positive", raw)
		}
		return time.Duration(secs) * time.Second, nil
	}

	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid EXPIRES_IN %q", raw)
		}
		return time.Duration(n * float64(24*time.Hour)), nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid EXPIRES_IN %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid EXPIRES_IN %q: must be positive", raw)
	}
	return d, nil
}
