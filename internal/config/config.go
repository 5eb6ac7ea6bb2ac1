package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level service configuration, corresponding to folio.yml.
type Config struct {
	Addr         string `yaml:"addr" koanf:"addr"`
	DataDir      string `yaml:"data_dir" koanf:"data_dir"`
	TemplatesDir string `yaml:"templates_dir" koanf:"templates_dir"`
	PublicDir    string `yaml:"public_dir" koanf:"public_dir"`
	BaseURL      string `yaml:"base_url" koanf:"base_url"`
	Dev          bool   `yaml:"dev" koanf:"dev"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		Addr:         ":8080",
		DataDir:      "data",
		TemplatesDir: "templates",
		PublicDir:    "public",
	}
}

// Load reads configuration from the given YAML file when it exists, then
// overlays environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// FOLIO_DATA_DIR -> data_dir, etc.
	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// PORT is honoured for container platforms that inject it.
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FOLIO_ADDR") == "" && !k.Exists("addr") {
		cfg.Addr = ":" + port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.TemplatesDir == "" {
		return fmt.Errorf("templates_dir is required")
	}
	if c.PublicDir == "" {
		return fmt.Errorf("public_dir is required")
	}
	return nil
}
