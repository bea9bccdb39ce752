package wquant

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/panbanda/wquant/pkg/tensor"
)

// ColumnSummary holds weighted summary statistics for one column.
type ColumnSummary struct {
	Count       int     `json:"count"`
	TotalWeight float64 `json:"total_weight"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"std_dev"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	P25         float64 `json:"p25"`
	P50         float64 `json:"p50"`
	P75         float64 `json:"p75"`
	P90         float64 `json:"p90"`
}

// Summarize computes weighted summary statistics per column. A nil
// weights slice means unit weights. The percentile entries are lower
// weighted percentiles, so each is a member of the column.
func Summarize(values *tensor.Array, weights []float64, opts ...Option) ([]ColumnSummary, error) {
	vals := values.Reshape()
	n, c := vals.Rows(), vals.Cols()
	if n == 0 {
		return nil, fmt.Errorf("no rows to summarize")
	}

	w := weights
	if w == nil {
		w = make([]float64, n)
		for i := range w {
			w[i] = 1
		}
	}
	if len(w) != n {
		return nil, fmt.Errorf("weights length %d does not match %d rows", len(w), n)
	}
	wArr := tensor.FromSlice(w)

	// vals is rank 2 here, so each quantile comes back as a rank-1
	// array with one entry per column.
	quantiles := make(map[int]*tensor.Array, 4)
	for _, p := range []int{25, 50, 75, 90} {
		q, err := Percentile(vals, wArr, float64(p), opts...)
		if err != nil {
			return nil, err
		}
		quantiles[p] = q
	}

	total := floats.Sum(w)
	out := make([]ColumnSummary, c)
	for j := 0; j < c; j++ {
		col := vals.Col(j)
		out[j] = ColumnSummary{
			Count:       n,
			TotalWeight: total,
			Mean:        stat.Mean(col, w),
			StdDev:      stat.StdDev(col, w),
			Min:         floats.Min(col),
			Max:         floats.Max(col),
			P25:         quantiles[25].At(j),
			P50:         quantiles[50].At(j),
			P75:         quantiles[75].At(j),
			P90:         quantiles[90].At(j),
		}
	}
	return out, nil
}
