package wquant

import (
	"fmt"

	"github.com/panbanda/wquant/pkg/tensor"
)

// Of computes the lower weighted percentile of a slice, returning an
// element of the input. A single value is its own percentile for any
// weight and pct.
func Of[V tensor.Number](values []V, weights []float64, pct float64) (V, error) {
	var zero V
	if len(values) == 0 {
		return zero, fmt.Errorf("empty input")
	}
	if len(values) == 1 {
		return values[0], nil
	}
	rows, err := percentileRows(tensor.FromSlice(values).Reshape(), tensor.FromSlice(weights), pct, 0)
	if err != nil {
		return zero, err
	}
	return values[rows[0]], nil
}
