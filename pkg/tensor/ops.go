package tensor

import (
	"sort"

	"github.com/sourcegraph/conc/pool"
)

// ArgSortColumns computes a stable ascending sort permutation for each
// column of a rank-2 array. Entry (i, j) of the result is the original
// row index of the value at sorted position i in column j. Stability
// makes tie ordering deterministic: equal values keep their original
// relative order. NaN placement follows the underlying sort and is not
// defined.
func ArgSortColumns(a *Array) *IndexMatrix {
	return ArgSortColumnsN(a, 1)
}

// ArgSortColumnsN is ArgSortColumns with up to workers columns sorted
// concurrently. Columns are independent, so the result is identical to
// the sequential version.
func ArgSortColumnsN(a *Array, workers int) *IndexMatrix {
	rows, cols := a.Rows(), a.Cols()
	perm := NewIndexMatrix(rows, cols)
	sortCol := func(j int) {
		col := a.Col(j)
		order := make([]int, rows)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(x, y int) bool {
			return col[order[x]] < col[order[y]]
		})
		for i, r := range order {
			perm.Set(i, j, r)
		}
	}
	if workers > 1 && cols > 1 {
		p := pool.New().WithMaxGoroutines(workers)
		for j := 0; j < cols; j++ {
			p.Go(func() { sortCol(j) })
		}
		p.Wait()
	} else {
		for j := 0; j < cols; j++ {
			sortCol(j)
		}
	}
	return perm
}

// CumSumColumns computes the running sum down each column of a rank-2
// array using Neumaier-compensated accumulation, so comparisons of
// large cumulative masses against fractional targets are not thrown off
// by float drift.
func CumSumColumns(a *Array) *Array {
	rows, cols := a.Rows(), a.Cols()
	out := New(rows, cols)
	for j := 0; j < cols; j++ {
		var sum, comp float64
		for i := 0; i < rows; i++ {
			v := a.At2(i, j)
			t := sum + v
			if abs(sum) >= abs(v) {
				comp += (sum - t) + v
			} else {
				comp += (v - t) + sum
			}
			sum = t
			out.Set2(i, j, sum+comp)
		}
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// SearchColumn returns the leftmost insertion point for target in
// column j of cum: the smallest i with cum[i, j] >= target. Returns
// cum.Rows() when every entry is below target.
func SearchColumn(cum *Array, j int, target float64) int {
	return sort.Search(cum.Rows(), func(i int) bool {
		return cum.At2(i, j) >= target
	})
}

// ClampIndex bounds i to [lo, hi].
func ClampIndex(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
