// Package config resolves factpage settings from defaults, an optional YAML
// file, a .env file and FACTPAGE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no explicit config path is given and it exists.
const DefaultFile = "factpage.yaml"

// DefaultSlug is rendered when the CLI receives no slug.
const DefaultSlug = "noco-gb40"

// Config holds every recognized setting.
type Config struct {
	DataDir     string        `yaml:"data_dir"`
	OutputDir   string        `yaml:"output_dir"`
	Renderer    string        `yaml:"renderer"`
	Template    string        `yaml:"template"`
	Preset      string        `yaml:"preset"`
	Theme       string        `yaml:"theme"`
	ThemeFile   string        `yaml:"theme_file"`
	Variant     string        `yaml:"variant"`
	Escape      string        `yaml:"escape"`
	Atomic      bool          `yaml:"atomic"`
	AllowHTTP   bool          `yaml:"allow_http"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	MetricsFile string        `yaml:"metrics_file"`
	DefaultSlug string        `yaml:"default_slug"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		DataDir:     "data",
		OutputDir:   "products",
		Renderer:    "page",
		Escape:      "raw",
		HTTPTimeout: 10 * time.Second,
		DefaultSlug: DefaultSlug,
	}
}

// Load resolves the configuration. An empty path reads DefaultFile when
// present; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	_ = godotenv.Load()

	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("FACTPAGE_DATA_DIR", &c.DataDir)
	str("FACTPAGE_OUTPUT_DIR", &c.OutputDir)
	str("FACTPAGE_RENDERER", &c.Renderer)
	str("FACTPAGE_TEMPLATE", &c.Template)
	str("FACTPAGE_PRESET", &c.Preset)
	str("FACTPAGE_THEME", &c.Theme)
	str("FACTPAGE_THEME_FILE", &c.ThemeFile)
	str("FACTPAGE_VARIANT", &c.Variant)
	str("FACTPAGE_ESCAPE", &c.Escape)
	str("FACTPAGE_METRICS_FILE", &c.MetricsFile)
	str("FACTPAGE_DEFAULT_SLUG", &c.DefaultSlug)

	for key, dst := range map[string]*bool{
		"FACTPAGE_ATOMIC":     &c.Atomic,
		"FACTPAGE_ALLOW_HTTP": &c.AllowHTTP,
	} {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = parsed
	}

	if v, ok := lookup("FACTPAGE_HTTP_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: FACTPAGE_HTTP_TIMEOUT: %w", err)
		}
		c.HTTPTimeout = parsed
	}
	return nil
}
