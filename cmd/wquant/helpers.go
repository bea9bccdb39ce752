package main

import (
	"strconv"

	"github.com/panbanda/wquant/internal/dataio"
	"github.com/panbanda/wquant/pkg/config"
	"github.com/urfave/cli/v2"
)

// loadConfig loads the config named by the global -c flag, falling back
// to the standard search locations.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

// inputFlags are shared by the commands that read CSV tables.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "weights",
			Aliases: []string{"w"},
			Usage:   "Weight column name or 0-based index (absent = unit weights)",
		},
		&cli.StringSliceFlag{
			Name:  "columns",
			Usage: "Value columns to include, by name or 0-based index",
		},
		&cli.BoolFlag{
			Name:  "no-header",
			Usage: "Treat the first row as data",
		},
	}
}

// inputOptions builds CSV read options from flags and config.
func inputOptions(c *cli.Context, cfg *config.Config) dataio.Options {
	opts := dataio.Options{
		WeightColumn: cfg.Input.WeightColumn,
		Columns:      c.StringSlice("columns"),
		NoHeader:     cfg.Input.NoHeader || c.Bool("no-header"),
	}
	if c.IsSet("weights") {
		opts.WeightColumn = c.String("weights")
	}
	return opts
}

// workerCount resolves the worker count from the global flag or config.
func workerCount(c *cli.Context, cfg *config.Config) int {
	if c.IsSet("workers") {
		return c.Int("workers")
	}
	return cfg.Compute.Workers
}

// outputFormat resolves the output format from the global flag or config.
func outputFormat(c *cli.Context, cfg *config.Config) string {
	if c.IsSet("format") {
		return c.String("format")
	}
	return cfg.Output.Format
}

// formatFloat renders a value compactly, keeping integers unadorned.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
