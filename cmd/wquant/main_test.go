package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{0, "0"},
		{42.25, "42.25"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.input); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGenerateDefaultConfig(t *testing.T) {
	content, err := generateDefaultConfig()
	if err != nil {
		t.Fatalf("generateDefaultConfig() error: %v", err)
	}
	for _, want := range []string{"# Wquant CLI Configuration", "[Percentile]", "[Output]"} {
		if !strings.Contains(content, want) {
			t.Errorf("config missing %q:\n%s", want, content)
		}
	}
}

// TestPercentileCommand runs the percentile command end to end against
// a CSV fixture.
func TestPercentileCommand(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "data.csv")
	if err := os.WriteFile(csvPath, []byte("value,count\n1,0\n2,1\n3,1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(tmpDir, "out.json")

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
			&cli.IntFlag{Name: "workers"},
		},
		Commands: []*cli.Command{percentileCmd(), medianCmd(), summaryCmd()},
	}

	err := app.Run([]string{"wquant", "-f", "json", "-o", outPath, "percentile", "-p", "0", "-w", "count", csvPath})
	if err != nil {
		t.Fatalf("app.Run() error: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	// Leading zero-weight observation is skipped at percentile 0.
	if !strings.Contains(string(raw), "\"value\": 2") {
		t.Errorf("unexpected output:\n%s", raw)
	}
}

func TestSummaryCommand(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "data.csv")
	if err := os.WriteFile(csvPath, []byte("v\n1\n2\n3\n4\n5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(tmpDir, "out.json")

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
			&cli.IntFlag{Name: "workers"},
		},
		Commands: []*cli.Command{summaryCmd()},
	}

	err := app.Run([]string{"wquant", "-f", "json", "-o", outPath, "summary", csvPath})
	if err != nil {
		t.Fatalf("app.Run() error: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "\"p50\": 3") {
		t.Errorf("unexpected output:\n%s", raw)
	}
}
