// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration.
type Config struct {
	GinMode          string   // gin mode, "release" unless GIN_MODE is set
	LogFormat        string   // "human", "json" or empty for the default of the gin mode
	APIURL           *url.URL // URL the API is reachable at from the outside
	Port             string
	DataDir          string
	Database         Database
	CORSAllowOrigins []string
	EnablePprof      bool
	PhoneRegion      string // region used to parse phone numbers without country code
	SeedDemoData     bool
}

// Database configures the PostgreSQL connection. If Host is empty,
// SQLite is used.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads the given dotenv files into the environment and then parses
// the environment. Variables that are already set are not overridden.
//
// Files that do not exist are ignored.
func Load(files ...string) (Config, error) {
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load %s: %w", file, err)
		}
	}

	return FromEnv()
}

// FromEnv parses the configuration from environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		GinMode:     get("GIN_MODE", "release"),
		LogFormat:   get("LOG_FORMAT", ""),
		Port:        get("PORT", "8080"),
		DataDir:     get("DATA_DIR", "data"),
		PhoneRegion: strings.ToUpper(get("PHONE_REGION", "US")),
		Database: Database{
			Host:     get("DB_HOST", ""),
			Port:     get("DB_PORT", "5432"),
			User:     get("DB_USER", ""),
			Password: get("DB_PASSWORD", ""),
			Name:     get("DB_NAME", "grantdesk"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
		CORSAllowOrigins: strings.Fields(get("CORS_ALLOW_ORIGINS", "")),
	}

	if cfg.LogFormat != "" && cfg.LogFormat != "human" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be 'human' or 'json', is %q", cfg.LogFormat)
	}

	apiURL, err := url.Parse(get("API_URL", "http://localhost:8080"))
	if err != nil {
		return Config{}, fmt.Errorf("API_URL is not a valid URL: %w", err)
	}
	apiURL.Path = strings.TrimSuffix(apiURL.Path, "/")
	cfg.APIURL = apiURL

	cfg.EnablePprof, err = getBool("ENABLE_PPROF")
	if err != nil {
		return Config{}, err
	}

	cfg.SeedDemoData, err = getBool("SEED_DEMO_DATA")
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// UsePostgres reports if PostgreSQL is configured as database.
func (c Config) UsePostgres() bool {
	return c.Database.Host != ""
}

// SqlitePath is the path of the SQLite database file.
func (c Config) SqlitePath() string {
	return filepath.Join(c.DataDir, "grantdesk.db")
}

// PostgresDSN is the connection string for PostgreSQL.
func (c Config) PostgresDSN() string {
	d := c.Database
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func get(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	return value
}

func getBool(key string) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, is %q", key, value)
	}

	return b, nil
}
