package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kerbaras/novels/pkg/sources"
)

// Config holds all reader configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Reader  ReaderConfig  `yaml:"reader"`
	Export  ExportConfig  `yaml:"export"`
}

// SourceConfig locates the static novel site.
type SourceConfig struct {
	Location    string `yaml:"location"` // http(s) base URL or local directory
	CatalogPath string `yaml:"catalog_path"`
	Timeout     string `yaml:"timeout"`
}

type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

type ReaderConfig struct {
	// Resume opens novels at their saved chapter instead of carrying the
	// current index over.
	Resume bool `yaml:"resume"`
}

type ExportConfig struct {
	OutputDir   string `yaml:"output_dir"`
	Language    string `yaml:"language"`
	Concurrency int    `yaml:"concurrency"`
}

// Dir is where config, database and logs live by default.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".novels"
	}
	return filepath.Join(home, ".novels")
}

func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Default() Config {
	dir := Dir()
	home, _ := os.UserHomeDir()
	return Config{
		Source: SourceConfig{
			Location:    ".",
			CatalogPath: sources.DefaultCatalogPath,
			Timeout:     "30s",
		},
		Storage: StorageConfig{DatabasePath: filepath.Join(dir, "novels.db")},
		Logging: LoggingConfig{Level: "info", File: filepath.Join(dir, "novels.log")},
		Export: ExportConfig{
			OutputDir:   filepath.Join(home, "Downloads"),
			Language:    "ja",
			Concurrency: 4,
		},
	}
}

// Load reads path (DefaultPath when empty) on top of the defaults, then
// applies .env and environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// .env is optional.
	_ = godotenv.Load()
	cfg.applyEnv()

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	getEnv := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	getEnv("NOVELS_SOURCE", &c.Source.Location)
	getEnv("NOVELS_CATALOG_PATH", &c.Source.CatalogPath)
	getEnv("NOVELS_DB", &c.Storage.DatabasePath)
	getEnv("NOVELS_LOG_LEVEL", &c.Logging.Level)
	getEnv("NOVELS_LOG_FILE", &c.Logging.File)
	getEnv("NOVELS_EXPORT_DIR", &c.Export.OutputDir)

	if v := os.Getenv("NOVELS_RESUME"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Reader.Resume = b
		}
	}
}

func (c *Config) Validate() error {
	if c.Source.Location == "" {
		return errors.New("source location is required")
	}
	if c.Storage.DatabasePath == "" {
		return errors.New("storage database_path is required")
	}
	if _, err := time.ParseDuration(c.Source.Timeout); err != nil {
		return fmt.Errorf("invalid source timeout %q: %w", c.Source.Timeout, err)
	}
	if c.Export.Concurrency < 1 {
		c.Export.Concurrency = 1
	}
	return nil
}

// SourceTimeout is the parsed Source.Timeout.
func (c *Config) SourceTimeout() time.Duration {
	d, err := time.ParseDuration(c.Source.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
