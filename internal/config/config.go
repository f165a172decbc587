// Package config loads docgen settings from YAML or TOML files with DOCGEN_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docgen/pkg/layout"
	"github.com/goliatone/go-docgen/pkg/pacing"
)

const (
	configPathEnv   = "DOCGEN_CONFIG"
	logLevelEnv     = "DOCGEN_LOG_LEVEL"
	logFormatEnv    = "DOCGEN_LOG_FORMAT"
	pacingModeEnv   = "DOCGEN_PACING"
	pageSizeEnv     = "DOCGEN_PAGE_SIZE"
	exactTOCEnv     = "DOCGEN_EXACT_TOC"
	outputDirEnv    = "DOCGEN_OUTPUT_DIR"
	outputFormatEnv = "DOCGEN_OUTPUT_FORMAT"
	serverAddrEnv   = "DOCGEN_SERVER_ADDR"
	themeNameEnv    = "DOCGEN_THEME"
)

// Pacing modes.
const (
	PacingNone        = "none"
	PacingInteractive = "interactive"
	PacingLimited     = "limited"
)

// Config holds every tunable of the CLI and HTTP server.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Pacing  PacingConfig  `yaml:"pacing" toml:"pacing"`
	Layout  LayoutConfig  `yaml:"layout" toml:"layout"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Theme   ThemeConfig   `yaml:"theme" toml:"theme"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// PacingConfig selects the pipeline pacing policy.
type PacingConfig struct {
	Mode          string  `yaml:"mode" toml:"mode"`
	RatePerSecond float64 `yaml:"ratePerSecond" toml:"ratePerSecond"`
	Burst         int     `yaml:"burst" toml:"burst"`
}

// LayoutConfig tunes the PDF layout.
type LayoutConfig struct {
	PageSize    string `yaml:"pageSize" toml:"pageSize"`
	ExactTOC    bool   `yaml:"exactToc" toml:"exactToc"`
	Compression bool   `yaml:"compression" toml:"compression"`
}

// OutputConfig sets CLI export defaults.
type OutputConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string `yaml:"addr" toml:"addr"`
	MaxBodyBytes int64  `yaml:"maxBodyBytes" toml:"maxBodyBytes"`
}

// ThemeConfig carries brand tokens for the renderers.
type ThemeConfig struct {
	Name    string            `yaml:"name" toml:"name"`
	Variant string            `yaml:"variant" toml:"variant"`
	Tokens  map[string]string `yaml:"tokens" toml:"tokens"`
	CSSVars map[string]string `yaml:"cssVars" toml:"cssVars"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Pacing:  PacingConfig{Mode: PacingNone, RatePerSecond: 10, Burst: 1},
		Layout:  LayoutConfig{PageSize: "a4", Compression: true},
		Output:  OutputConfig{Dir: ".", Format: "pdf"},
		Server:  ServerConfig{Addr: ":8080", MaxBodyBytes: 1 << 20},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path falls back to DOCGEN_CONFIG; a missing file yields defaults.
// The format follows the extension: .toml for TOML, YAML otherwise.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(configPathEnv)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := decode(path, raw, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(path string, raw []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(raw, cfg)
	default:
		err = yaml.Unmarshal(raw, cfg)
	}
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	overrides := map[string]*string{
		logLevelEnv:     &c.Logging.Level,
		logFormatEnv:    &c.Logging.Format,
		pacingModeEnv:   &c.Pacing.Mode,
		pageSizeEnv:     &c.Layout.PageSize,
		outputDirEnv:    &c.Output.Dir,
		outputFormatEnv: &c.Output.Format,
		serverAddrEnv:   &c.Server.Addr,
		themeNameEnv:    &c.Theme.Name,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(exactTOCEnv); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", exactTOCEnv, err)
		}
		c.Layout.ExactTOC = parsed
	}
	return nil
}

// Validate rejects unknown modes and page sizes.
func (c Config) Validate() error {
	switch c.Pacing.Mode {
	case "", PacingNone, PacingInteractive:
	case PacingLimited:
		if c.Pacing.RatePerSecond <= 0 {
			return errors.New("config: pacing.ratePerSecond must be positive")
		}
	default:
		return fmt.Errorf("config: unknown pacing mode %q", c.Pacing.Mode)
	}
	if _, err := c.Geometry(); err != nil {
		return err
	}
	return nil
}

// Geometry resolves the configured page size.
func (c Config) Geometry() (layout.Geometry, error) {
	switch strings.ToLower(strings.TrimSpace(c.Layout.PageSize)) {
	case "", "a4":
		return layout.A4(), nil
	case "letter":
		return layout.Letter(), nil
	default:
		return layout.Geometry{}, fmt.Errorf("config: unknown page size %q", c.Layout.PageSize)
	}
}

// PacingPolicy builds the configured policy.
func (c Config) PacingPolicy() pacing.Policy {
	switch c.Pacing.Mode {
	case PacingInteractive:
		return pacing.Interactive()
	case PacingLimited:
		return pacing.NewLimited(c.Pacing.RatePerSecond, c.Pacing.Burst)
	default:
		return pacing.None()
	}
}

// RendererConfig converts the theme section, or nil when nothing is set.
func (t ThemeConfig) RendererConfig() *theme.RendererConfig {
	if t.Name == "" && len(t.Tokens) == 0 && len(t.CSSVars) == 0 {
		return nil
	}
	cssVars := make(map[string]string, len(t.CSSVars)+len(t.Tokens))
	for key, value := range t.Tokens {
		cssVars["--"+key] = value
	}
	for key, value := range t.CSSVars {
		cssVars[key] = value
	}
	return &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		Tokens:  t.Tokens,
		CSSVars: cssVars,
	}
}
