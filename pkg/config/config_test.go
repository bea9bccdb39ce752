package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Percentile.Default != 50 {
		t.Errorf("Percentile.Default = %v, want 50", cfg.Percentile.Default)
	}
	if cfg.Input.WeightColumn != "" {
		t.Errorf("Input.WeightColumn = %q, want empty", cfg.Input.WeightColumn)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %s, want text", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should be true by default")
	}
	if cfg.Compute.Workers != 0 {
		t.Errorf("Compute.Workers = %d, want 0", cfg.Compute.Workers)
	}
}

func TestLoadTOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "wquant.toml")
	content := `
[percentile]
default = 90.0

[input]
weight_column = "count"

[output]
format = "json"
color = false

[compute]
workers = 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Percentile.Default != 90 {
		t.Errorf("Percentile.Default = %v, want 90", cfg.Percentile.Default)
	}
	if cfg.Input.WeightColumn != "count" {
		t.Errorf("Input.WeightColumn = %q, want count", cfg.Input.WeightColumn)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("Output.Color should be false")
	}
	if cfg.Compute.Workers != 4 {
		t.Errorf("Compute.Workers = %d, want 4", cfg.Compute.Workers)
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "wquant.yaml")
	content := `
percentile:
  default: 25
output:
  format: markdown
  color: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Percentile.Default != 25 {
		t.Errorf("Percentile.Default = %v, want 25", cfg.Percentile.Default)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Output.Format = %s, want markdown", cfg.Output.Format)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"percentile out of range", "[percentile]\ndefault = 150.0\n"},
		{"negative workers", "[compute]\nworkers = -1\n"},
		{"unknown format", "[output]\nformat = \"xml\"\n"},
	}

	for _, test := range tests {
		path := filepath.Join(tmpDir, "bad.toml")
		if err := os.WriteFile(path, []byte(test.content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load() should fail", test.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/wquant.toml"); err == nil {
		t.Error("Load() should fail for missing file")
	}
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg := LoadOrDefault()
	if cfg.Percentile.Default != 50 {
		t.Errorf("Percentile.Default = %v, want default 50", cfg.Percentile.Default)
	}
}
