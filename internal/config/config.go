package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig represents the application configuration
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Board   BoardConfig   `yaml:"board"`
	Logging LoggingConfig `yaml:"logging"`
	Display DisplayConfig `yaml:"display"`
}

type ServerConfig struct {
	Host        string        `yaml:"host" validate:"required"`
	Port        int           `yaml:"port" validate:"min=1,max=65535"`
	SessionTTL  time.Duration `yaml:"session_ttl"`
	MaxSessions int           `yaml:"max_sessions" validate:"min=0"`
}

// AuthConfig protects the API endpoints. Prefer WEB_USERNAME/WEB_PASSWORD env vars.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type BoardConfig struct {
	MaxFileBytes int64  `yaml:"max_file_bytes" validate:"min=0"`
	Collation    string `yaml:"collation" validate:"required,bcp47_language_tag"`
}

type LoggingConfig struct {
	Level  string   `yaml:"level" validate:"oneof=trace debug info warn error"`
	Output []string `yaml:"output" validate:"dive,oneof=stdout console file"`
	File   string   `yaml:"file"`
}

type DisplayConfig struct {
	DefaultSort string `yaml:"default_sort" validate:"omitempty,oneof=title-az title-za time-newest time-oldest"`
	Banner      bool   `yaml:"banner"`
}

// Default returns the configuration used when no file is present
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:        "localhost",
			Port:        8080,
			SessionTTL:  2 * time.Hour,
			MaxSessions: 1000,
		},
		Board: BoardConfig{
			MaxFileBytes: 10 << 20,
			Collation:    "en",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"console"},
			File:   "logs/jobboard.log",
		},
		Display: DisplayConfig{
			Banner: true,
		},
	}
}

// Load reads defaults, then the YAML file, then .env and the environment.
// An empty path searches the usual locations; a missing file is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path == "" {
		path = findConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// .env is optional
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("JOBBOARD_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("JOBBOARD_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid JOBBOARD_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("JOBBOARD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WEB_USERNAME"); v != "" {
		cfg.Auth.Username = v
	}
	if v := os.Getenv("WEB_PASSWORD"); v != "" {
		cfg.Auth.Password = v
	}
	return nil
}

func findConfigPath() string {
	paths := []string{
		"jobboard.yaml",
		"config.yaml",
		"/etc/jobboard/config.yaml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return "jobboard.yaml"
}
