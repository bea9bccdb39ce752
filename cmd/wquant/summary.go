package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/panbanda/wquant/internal/output"
	"github.com/panbanda/wquant/pkg/wquant"
)

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Usage:     "Compute weighted summary statistics per numeric CSV column",
		ArgsUsage: "[file...]",
		Flags:     inputFlags(),
		Action:    runSummaryCmd,
	}
}

// summaryResult is one column's summary, for structured output.
type summaryResult struct {
	File   string `json:"file,omitempty"`
	Column string `json:"column"`
	wquant.ColumnSummary
}

func runSummaryCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	workers := workerCount(c, cfg)

	datasets, err := loadDatasets(c, inputOptions(c, cfg))
	if err != nil {
		return err
	}

	var results []summaryResult
	for _, ds := range datasets {
		summaries, err := wquant.Summarize(ds.Values, ds.Weights, wquant.WithWorkers(workers))
		if err != nil {
			if ds.Path != "" {
				return fmt.Errorf("%s: %w", ds.Path, err)
			}
			return err
		}
		for j, s := range summaries {
			results = append(results, summaryResult{
				File:          ds.Path,
				Column:        ds.Names[j],
				ColumnSummary: s,
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
		row := []string{
			r.Column,
			fmt.Sprintf("%d", r.Count),
			formatFloat(r.TotalWeight),
			fmt.Sprintf("%.4g", r.Mean),
			fmt.Sprintf("%.4g", r.StdDev),
			formatFloat(r.Min),
			formatFloat(r.P25),
			formatFloat(r.P50),
			formatFloat(r.P75),
			formatFloat(r.P90),
			formatFloat(r.Max),
		}
		if multi {
			row = append([]string{r.File}, row...)
		}
		rows = append(rows, row)
	}
	headers := []string{"Column", "Count", "Weight", "Mean", "StdDev", "Min", "P25", "P50", "P75", "P90", "Max"}
	if multi {
		headers = append([]string{"File"}, headers...)
	}

	table := output.NewTable(
		"Weighted Summary",
		headers,
		rows,
		[]string{fmt.Sprintf("Columns: %d", len(results))},
		results,
	)
	return formatter.Output(table)
}
