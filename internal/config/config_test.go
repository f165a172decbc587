package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/layout"
	"github.com/goliatone/go-docgen/pkg/pacing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "docgen.yaml", `
logging:
  level: debug
  format: json
pacing:
  mode: limited
  ratePerSecond: 4
layout:
  pageSize: letter
  exactToc: true
theme:
  name: acme
  tokens:
    brand: "#123456"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.Output.Format != "pdf" || cfg.Server.Addr != ":8080" {
		t.Fatalf("defaults for unset sections were lost: %+v %+v", cfg.Output, cfg.Server)
	}
	if cfg.Pacing.Burst != 1 {
		t.Fatalf("burst default lost: %d", cfg.Pacing.Burst)
	}
	geometry, err := cfg.Geometry()
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	if geometry != layout.Letter() {
		t.Fatalf("expected letter geometry")
	}
	if _, ok := cfg.PacingPolicy().(*pacing.Limited); !ok {
		t.Fatalf("expected a limited pacing policy, got %T", cfg.PacingPolicy())
	}
	rc := cfg.Theme.RendererConfig()
	if rc == nil || rc.Tokens["brand"] != "#123456" || rc.CSSVars["--brand"] != "#123456" {
		t.Fatalf("theme not converted: %+v", rc)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "docgen.toml", `
[output]
dir = "out"
format = "html"

[server]
addr = "127.0.0.1:9000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := OutputConfig{Dir: "out", Format: "html"}
	if diff := cmp.Diff(want, cfg.Output); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Theme.RendererConfig() != nil {
		t.Fatalf("expected nil theme config when no theme is set")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "docgen.yaml", "output:\n  format: text\n")
	t.Setenv(outputFormatEnv, "json")
	t.Setenv(exactTOCEnv, "true")
	t.Setenv(pacingModeEnv, PacingInteractive)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Format != "json" || !cfg.Layout.ExactTOC || cfg.Pacing.Mode != PacingInteractive {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}

	t.Setenv(exactTOCEnv, "sometimes")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected invalid bool error")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"pacing.yaml": "pacing:\n  mode: turbo\n",
		"size.yaml":   "layout:\n  pageSize: a5\n",
		"rate.yaml":   "pacing:\n  mode: limited\n  ratePerSecond: 0\n",
		"broken.toml": "[output\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeFile(t, name, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
