package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	ServerPort      string      `yaml:"server_port"`
	CORSOrigins     []string    `yaml:"cors_origins"`
	Store           StoreConfig `yaml:"store"`
	Log             LogConfig   `yaml:"log"`
	WhatsAppDataDir string      `yaml:"whatsapp_data_dir"`
	WeddingID       int64       `yaml:"wedding_id"`
}

// StoreConfig selects and locates the repository backend
type StoreConfig struct {
	Driver  string `yaml:"driver"`
	DSN     string `yaml:"dsn"`
	DataDir string `yaml:"data_dir"`
}

// LogConfig controls the zerolog output
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		ServerPort:      "2022",
		CORSOrigins:     []string{"http://localhost:5173"},
		Store:           StoreConfig{Driver: "sqlite", DataDir: "data"},
		Log:             LogConfig{Level: "info", Format: "console"},
		WhatsAppDataDir: "data",
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file named
// by CONFIG_FILE (if any), then environment variables.
func LoadConfig() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}
	cfg.Store.Driver = getEnv("STORE_DRIVER", cfg.Store.Driver)
	cfg.Store.DSN = getEnv("DATABASE_URL", cfg.Store.DSN)
	cfg.Store.DataDir = getEnv("DATA_DIR", cfg.Store.DataDir)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
	cfg.WhatsAppDataDir = getEnv("WHATSAPP_DATA_DIR", cfg.WhatsAppDataDir)
	if id := os.Getenv("WEDDING_ID"); id != "" {
		parsed, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid WEDDING_ID %q: %w", id, err)
		}
		cfg.WeddingID = parsed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks the store selection
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "file", "sqlite":
	case "postgres":
		if c.Store.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// StoreDSN returns the DSN to open, deriving a file location under
// DataDir when none is configured.
func (c *Config) StoreDSN() string {
	if c.Store.DSN != "" {
		return c.Store.DSN
	}
	switch c.Store.Driver {
	case "file":
		return filepath.Join(c.Store.DataDir, "wedding.json")
	case "sqlite":
		return fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(c.Store.DataDir, "wedding.db"))
	}
	return ""
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
