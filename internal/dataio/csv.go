// Package dataio reads CSV input into numeric column tables.
package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/panbanda/wquant/pkg/tensor"
)

// Options controls how a CSV table is interpreted.
type Options struct {
	// WeightColumn names the weight column, by header name or 0-based
	// index. Empty means no weight column (unit weights).
	WeightColumn string
	// Columns restricts the value columns, by header name or 0-based
	// index. Empty means all numeric columns.
	Columns []string
	// NoHeader treats the first row as data; columns are named col0..colN.
	NoHeader bool
}

// Dataset is a parsed numeric table.
type Dataset struct {
	// Names holds the value column names, matching Values column order.
	Names []string
	// Values is the N×C value table.
	Values *tensor.Array
	// Weights is the weight column, nil when none was requested.
	Weights []float64
}

// ReadFile reads a CSV file into a Dataset.
func ReadFile(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, opts)
}

// Read reads CSV data into a Dataset. Value columns where every cell
// parses as a number are kept; others are skipped. The weight column,
// when named, must be fully numeric.
func Read(r io.Reader, opts Options) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	var names []string
	if opts.NoHeader {
		names = make([]string, len(records[0]))
		for j := range names {
			names[j] = "col" + strconv.Itoa(j)
		}
	} else {
		names = records[0]
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no data rows")
	}

	weightIdx := -1
	if opts.WeightColumn != "" {
		weightIdx, err = resolveColumn(opts.WeightColumn, names)
		if err != nil {
			return nil, fmt.Errorf("weight column: %w", err)
		}
	}

	selected, err := selectColumns(opts.Columns, names, weightIdx)
	if err != nil {
		return nil, err
	}

	var (
		kept    []string
		columns [][]float64
	)
	for _, j := range selected {
		col, ok := parseColumn(records, j)
		if !ok {
			if len(opts.Columns) > 0 {
				return nil, fmt.Errorf("column %q is not numeric", names[j])
			}
			continue // auto-selection skips non-numeric columns
		}
		kept = append(kept, names[j])
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no numeric columns found")
	}

	values, err := tensor.FromColumns(columns)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{Names: kept, Values: values}

	if weightIdx >= 0 {
		w, ok := parseColumn(records, weightIdx)
		if !ok {
			return nil, fmt.Errorf("weight column %q is not numeric", names[weightIdx])
		}
		ds.Weights = w
	}
	return ds, nil
}

// resolveColumn maps a name or 0-based index to a column position.
func resolveColumn(ref string, names []string) (int, error) {
	for j, n := range names {
		if n == ref {
			return j, nil
		}
	}
	if idx, err := strconv.Atoi(ref); err == nil {
		if idx < 0 || idx >= len(names) {
			return 0, fmt.Errorf("index %d out of range (have %d columns)", idx, len(names))
		}
		return idx, nil
	}
	return 0, fmt.Errorf("no column named %q", ref)
}

// selectColumns resolves the requested value columns, or all columns
// except the weight column when none are requested.
func selectColumns(requested, names []string, weightIdx int) ([]int, error) {
	if len(requested) == 0 {
		all := make([]int, 0, len(names))
		for j := range names {
			if j != weightIdx {
				all = append(all, j)
			}
		}
		return all, nil
	}
	out := make([]int, 0, len(requested))
	for _, ref := range requested {
		j, err := resolveColumn(ref, names)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, nil
}

// parseColumn extracts column j as floats; ok is false when any cell
// fails to parse.
func parseColumn(records [][]string, j int) ([]float64, bool) {
	col := make([]float64, len(records))
	for i, row := range records {
		if j >= len(row) {
			return nil, false
		}
		v, err := strconv.ParseFloat(row[j], 64)
		if err != nil {
			return nil, false
		}
		col[i] = v
	}
	return col, true
}
