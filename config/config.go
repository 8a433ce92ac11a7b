package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Auth providers accepted in AUTH_PROVIDER.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// MongoDB Atlas
	DBUser    string
	DBPass    string
	DBHost    string
	DBAppName string
	DBName    string

	StoreTimeout time.Duration

	AuthProvider string
	// FirebaseServiceKey is the base64-encoded service account JSON.
	FirebaseServiceKey string
	JWTSecret          string

	// AllowedOrigin is the single browser origin allowed by CORS.
	AllowedOrigin string
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the variables come from the system environment.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		DBUser:             os.Getenv("DB_USER"),
		DBPass:             os.Getenv("DB_PASS"),
		DBHost:             os.Getenv("DB_HOST"),
		DBAppName:          getEnv("DB_APP_NAME", "Cluster0"),
		DBName:             getEnv("DB_NAME", "actForBD"),
		AuthProvider:       strings.ToLower(getEnv("AUTH_PROVIDER", AuthProviderFirebase)),
		FirebaseServiceKey: os.Getenv("FB_SERVICE_KEY"),
		JWTSecret:          os.Getenv("AUTH_JWT_SECRET"),
		AllowedOrigin:      os.Getenv("CORS_ALLOWED_ORIGIN"),
	}

	timeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
	}
	cfg.StoreTimeout = timeout

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	required := map[string]string{
		"DB_USER":             c.DBUser,
		"DB_PASS":             c.DBPass,
		"DB_HOST":             c.DBHost,
		"CORS_ALLOWED_ORIGIN": c.AllowedOrigin,
	}
	switch c.AuthProvider {
	case AuthProviderFirebase:
		required["FB_SERVICE_KEY"] = c.FirebaseServiceKey
	case AuthProviderJWT:
		required["AUTH_JWT_SECRET"] = c.JWTSecret
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", c.AuthProvider)
	}
	for _, key := range []string{"DB_USER", "DB_PASS", "DB_HOST", "CORS_ALLOWED_ORIGIN", "FB_SERVICE_KEY", "AUTH_JWT_SECRET"} {
		if v, ok := required[key]; ok && v == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// MongoURI builds the Atlas SRV connection string. Credentials are escaped.
func (c *Config) MongoURI() string {
	u := url.URL{
		Scheme: "mongodb+srv",
		User:   url.UserPassword(c.DBUser, c.DBPass),
		Host:   c.DBHost,
		Path:   "/",
	}
	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	q.Set("appName", c.DBAppName)
	u.RawQuery = q.Encode()
	return u.String()
}

// AllowedOrigins returns the CORS allow list.
func (c *Config) AllowedOrigins() []string {
	return []string{c.AllowedOrigin}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
