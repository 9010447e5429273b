package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type Config struct {
	AppName           string `yaml:"app_name" env:"APP_NAME" env-default:"marceneiro-pro"`
	AppVersion        string `yaml:"app_version" env:"APP_VERSION" env-default:"dev"`
	AppPort           string `yaml:"app_port" env:"APP_PORT" env-default:"8080"`
	LogLevel          string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	StorageDriver     string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"memory"`
	SQLiteName        string `yaml:"sqlite_name" env:"SQLITE_NAME" env-default:"marceneiro"`
	SeedEnabled       bool   `yaml:"seed_enabled" env:"SEED_ENABLED" env-default:"true"`
	SeedFile          string `yaml:"seed_file" env:"SEED_FILE"`
	TranslationFolder string `yaml:"translation_folder" env:"TRANSLATION_FOLDER" env-default:"pkg/translator/translation"`
	DefaultLanguage   string `yaml:"default_language" env:"DEFAULT_LANGUAGE" env-default:"pt"`
	TrustedProxiesRaw string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES"`
}

// LoadConfig reads .env if present, then the optional config file, then the
// environment. A missing config file falls back to the environment alone.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		return &cfg, cfg.validate()
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return nil, fmt.Errorf("read config %q: %w", configPath, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}
}

// TrustedProxies splits TRUSTED_PROXIES on commas, dropping blanks.
func (c *Config) TrustedProxies() []string {
	return parseTrustedProxies(c.TrustedProxiesRaw)
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
