// Package wquant computes lower weighted percentiles of numeric
// columns: the first input value whose cumulative weight mass reaches
// the target fraction of the column's total mass. The result is always
// one of the input values, never interpolated.
package wquant

import (
	"math"

	"github.com/sourcegraph/conc/pool"

	"github.com/panbanda/wquant/pkg/tensor"
)

// DefaultPercentile is the percentile used when callers have no
// preference: the weighted median.
const DefaultPercentile = 50

// Option configures a percentile computation.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers evaluates columns on up to n goroutines. Columns are
// independent, so results are identical to the sequential path.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Percentile computes the lower weighted percentile of values at pct,
// a number in [0, 100].
//
// Rank-0 values are returned unchanged. Rank-1 values of length N are
// treated as a single column and the result is a rank-0 scalar. Rank-2
// N×C values are evaluated independently per column and the result is
// a rank-1 array of C entries in column order.
//
// Weights must have the same shape as values, or be a rank-1 array of
// length N, which is broadcast across all C columns. Any weight rank
// other than 1 or 2 fails with *tensor.ShapeError. Weights are expected
// non-negative; a zero weight excludes its observation except as an
// ordering position.
//
// Negative weights, percentiles outside [0, 100], shape mismatches
// beyond the documented broadcast, and NaN ordering are not validated
// and their behavior is undefined.
func Percentile(values, weights *tensor.Array, pct float64, opts ...Option) (*tensor.Array, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if values.Rank() == 0 {
		return tensor.Scalar(values.Item()), nil
	}
	vector := values.Rank() == 1
	vals := values.Reshape()

	rows, err := percentileRows(vals, weights, pct, o.workers)
	if err != nil {
		return nil, err
	}

	if vector {
		return tensor.Scalar(vals.At2(rows[0], 0)), nil
	}
	out := make([]float64, len(rows))
	for j, r := range rows {
		out[j] = vals.At2(r, j)
	}
	return tensor.FromSlice(out), nil
}

// Median computes the lower weighted median, Percentile at 50.
func Median(values, weights *tensor.Array, opts ...Option) (*tensor.Array, error) {
	return Percentile(values, weights, DefaultPercentile, opts...)
}

// percentileRows resolves, for each column of a rank-2 values array,
// the original row index holding the lower weighted percentile.
func percentileRows(vals, weights *tensor.Array, pct float64, workers int) ([]int, error) {
	n, c := vals.Rows(), vals.Cols()

	// Rank-1 weights of length N are tiled across all columns. This is
	// the only implicit broadcast.
	w := weights
	if w.Rank() == 1 && w.Rows() == n {
		w = tensor.Tile(w.Slice(), c)
	}

	perm := tensor.ArgSortColumnsN(vals, workers)
	sorted, err := reorderWeights(w, perm)
	if err != nil {
		return nil, err
	}
	cdf := tensor.CumSumColumns(sorted)

	rows := make([]int, c)
	resolve := func(j int) {
		target := pct / 100 * cdf.At2(n-1, j)
		if target == 0 {
			// A target of exactly zero would land on the first sorted
			// position even when it carries no weight. Nudging to the
			// next representable value skips a leading zero-weight run.
			target = math.Nextafter(target, target+1)
		}
		i := tensor.SearchColumn(cdf, j, target)
		// The search can land one past the last entry under float
		// edge effects.
		i = tensor.ClampIndex(i, 0, n-1)
		rows[j] = perm.At(i, j)
	}
	if workers > 1 && c > 1 {
		p := pool.New().WithMaxGoroutines(workers)
		for j := 0; j < c; j++ {
			p.Go(func() { resolve(j) })
		}
		p.Wait()
	} else {
		for j := 0; j < c; j++ {
			resolve(j)
		}
	}
	return rows, nil
}
