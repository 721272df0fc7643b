// Package config holds the runtime settings shared by the worktime commands.
// Values come from flags, then the environment, then an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/worktime/internal/storage"
	"go.uber.org/zap"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Database struct {
	Driver string `help:"database driver" default:"sqlite" enum:"sqlite,postgres" env:"DB_DRIVER"`
	Path   string `help:"sqlite database file" default:"data/worktime.db" env:"DB_PATH"`
	URL    string `help:"postgres connection string" default:"" env:"DATABASE_URL"`
}

// DSN returns the file path for sqlite and the connection URL for postgres.
func (database Database) DSN() string {
	if database.Driver == "postgres" {
		return database.URL
	}
	return database.Path
}

type Logging struct {
	Level  string `help:"log level (debug, info, warn, error)" default:"info" env:"LOG_LEVEL"`
	Format string `help:"log encoding" default:"console" enum:"console,json" env:"LOG_FORMAT"`
}

type ArtifactStore struct {
	Kind        string `help:"where issued QR images are copied" default:"none" enum:"none,file,s3" env:"QR_STORE"`
	MediaRoot   string `help:"root directory of the file store" default:"media" env:"MEDIA_ROOT"`
	S3Bucket    string `help:"bucket of the s3 store" default:"" env:"S3_BUCKET"`
	S3Region    string `help:"region of the s3 store" default:"us-east-1" env:"S3_REGION"`
	S3Endpoint  string `help:"custom s3 endpoint, e.g. MinIO" default:"" env:"S3_ENDPOINT"`
	S3AccessKey string `help:"static s3 access key" default:"" env:"S3_ACCESS_KEY"`
	S3SecretKey string `help:"static s3 secret key" default:"" env:"S3_SECRET_KEY"`
}

func (store ArtifactStore) Settings() storage.Settings {
	return storage.Settings{
		Kind:      store.Kind,
		MediaRoot: store.MediaRoot,
		S3: storage.S3Settings{
			Bucket:    store.S3Bucket,
			Region:    store.S3Region,
			Endpoint:  store.S3Endpoint,
			AccessKey: store.S3AccessKey,
			SecretKey: store.S3SecretKey,
		},
	}
}

type Server struct {
	Port         string        `help:"HTTP listen port" default:"8080" env:"WORKTIME_LISTEN_PORT"`
	SecretKey    string        `help:"secret used to sign and seal session cookies" default:"" env:"SECRET_KEY"`
	TZ           string        `help:"timezone that defines attendance days" default:"UTC" env:"TZ"`
	SiteURL      string        `help:"public base URL embedded in QR codes" default:"http://localhost:8080/" env:"SITE_URL"`
	CookieSecure bool          `help:"mark session cookies Secure" default:"false" env:"COOKIE_SECURE"`
	SessionTTL   time.Duration `help:"session lifetime" default:"168h" env:"SESSION_TTL"`
}

// Validate normalizes the port and checks the secret key.
func (server *Server) Validate() error {
	port, err := ResolvePort(server.Port)
	if err != nil {
		return err
	}
	server.Port = port

	secret, err := ResolveSecretKey(server.SecretKey)
	if err != nil {
		return err
	}
	server.SecretKey = secret

	if server.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

func ResolveSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func ResolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("invalid port %q", raw)
	}
	return strconv.Itoa(value), nil
}

// LoadLocation falls back to UTC when the zone is unknown.
func LoadLocation(name string, logger *zap.Logger) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		if logger != nil {
			logger.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		}
		return time.UTC
	}
	return location
}

// LoadDotEnv reads variables from path without overriding the environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
