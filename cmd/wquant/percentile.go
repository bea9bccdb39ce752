package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/panbanda/wquant/internal/dataio"
	"github.com/panbanda/wquant/internal/fileproc"
	"github.com/panbanda/wquant/internal/output"
	"github.com/panbanda/wquant/internal/progress"
	"github.com/panbanda/wquant/pkg/config"
	"github.com/panbanda/wquant/pkg/tensor"
	"github.com/panbanda/wquant/pkg/wquant"
)

func percentileCmd() *cli.Command {
	return &cli.Command{
		Name:      "percentile",
		Aliases:   []string{"pct"},
		Usage:     "Compute the lower weighted percentile of numeric CSV columns",
		ArgsUsage: "[file...]",
		Flags: append([]cli.Flag{
			&cli.Float64Flag{
				Name:    "percentile",
				Aliases: []string{"p"},
				Usage:   "Percentile in [0, 100] (defaults from config, 50)",
			},
		}, inputFlags()...),
		Action: runPercentileCmd,
	}
}

func medianCmd() *cli.Command {
	return &cli.Command{
		Name:      "median",
		Usage:     "Compute the lower weighted median of numeric CSV columns",
		ArgsUsage: "[file...]",
		Flags:     inputFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return computePercentiles(c, cfg, wquant.DefaultPercentile)
		},
	}
}

func runPercentileCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	pct := cfg.Percentile.Default
	if c.IsSet("percentile") {
		pct = c.Float64("percentile")
	}
	if pct < 0 || pct > 100 {
		return fmt.Errorf("percentile must be in [0, 100], got %v", pct)
	}
	return computePercentiles(c, cfg, pct)
}

// percentileResult is one column's computed percentile, for structured
// output.
type percentileResult struct {
	File       string  `json:"file,omitempty"`
	Column     string  `json:"column"`
	Percentile float64 `json:"percentile"`
	Value      float64 `json:"value"`
}

func computePercentiles(c *cli.Context, cfg *config.Config, pct float64) error {
	workers := workerCount(c, cfg)

	datasets, err := loadDatasets(c, inputOptions(c, cfg))
	if err != nil {
		return err
	}

	var results []percentileResult
	for _, ds := range datasets {
		res, err := wquant.Percentile(ds.Values, weightsArray(ds.Dataset), pct, wquant.WithWorkers(workers))
		if err != nil {
			if ds.Path != "" {
				return fmt.Errorf("%s: %w", ds.Path, err)
			}
			return err
		}
		for j, name := range ds.Names {
			results = append(results, percentileResult{
				File:       ds.Path,
				Column:     name,
				Percentile: pct,
				Value:      res.At(j),
			})
		}
	}

	formatter, err := output.NewFormatter(output.ParseFormat(outputFormat(c, cfg)), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	multi := len(datasets) > 1
	var rows [][]string
	for _, r := range results {
		row := []string{r.Column, formatFloat(r.Value)}
		if multi {
			row = append([]string{r.File}, row...)
		}
		rows = append(rows, row)
	}
	headers := []string{"Column", "Value"}
	if multi {
		headers = append([]string{"File"}, headers...)
	}

	table := output.NewTable(
		fmt.Sprintf("Weighted Percentile (p%s)", formatFloat(pct)),
		headers,
		rows,
		[]string{fmt.Sprintf("Columns: %d", len(results))},
		results,
	)
	return formatter.Output(table)
}

// namedDataset ties a parsed dataset to its source path. An empty path
// means stdin.
type namedDataset struct {
	Path string
	*dataio.Dataset
}

// loadDatasets reads the positional CSV files, or stdin when none are
// given. Multiple files are read in parallel; unreadable files are
// skipped with a warning.
func loadDatasets(c *cli.Context, opts dataio.Options) ([]namedDataset, error) {
	files := c.Args().Slice()
	switch len(files) {
	case 0:
		ds, err := dataio.Read(os.Stdin, opts)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []namedDataset{{Path: "", Dataset: ds}}, nil
	case 1:
		ds, err := dataio.ReadFile(files[0], opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", files[0], err)
		}
		return []namedDataset{{Path: files[0], Dataset: ds}}, nil
	}

	tracker := progress.NewTracker("Reading files...", len(files))
	parsed, errs := fileproc.Map(c.Context, files, func(path string) (*dataio.Dataset, error) {
		return dataio.ReadFile(path, opts)
	}, tracker.Tick)
	tracker.FinishSuccess()

	if errs != nil {
		for _, e := range errs.Errors {
			color.Yellow("Skipping %s: %v", e.Path, e.Err)
		}
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("no readable input files")
	}

	// Restore command-line order; the parallel map returns results in
	// completion order.
	byPath := make(map[string]*dataio.Dataset, len(parsed))
	for _, r := range parsed {
		byPath[r.Path] = r.Value
	}
	out := make([]namedDataset, 0, len(parsed))
	for _, path := range files {
		if ds, ok := byPath[path]; ok {
			out = append(out, namedDataset{Path: path, Dataset: ds})
		}
	}
	return out, nil
}

// weightsArray returns the dataset's weight column as an array, or unit
// weights when none was requested.
func weightsArray(ds *dataio.Dataset) *tensor.Array {
	if ds.Weights != nil {
		return tensor.FromSlice(ds.Weights)
	}
	ones := make([]float64, ds.Values.Rows())
	for i := range ones {
		ones[i] = 1
	}
	return tensor.FromSlice(ones)
}
