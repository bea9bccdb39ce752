package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgSortColumns(t *testing.T) {
	a, err := FromColumns([][]float64{
		{3, 1, 2},
		{10, 30, 20},
	})
	require.NoError(t, err)

	perm := ArgSortColumns(a)
	assert.Equal(t, []int{1, 2, 0}, column(perm, 0))
	assert.Equal(t, []int{0, 2, 1}, column(perm, 1))
}

func TestArgSortColumnsStable(t *testing.T) {
	// Equal values keep their original order.
	a := FromSlice([]float64{2, 1, 2, 1, 2}).Reshape()
	perm := ArgSortColumns(a)
	assert.Equal(t, []int{1, 3, 0, 2, 4}, column(perm, 0))
}

func TestArgSortColumnsParallelMatchesSequential(t *testing.T) {
	cols := make([][]float64, 8)
	for j := range cols {
		col := make([]float64, 64)
		for i := range col {
			col[i] = float64((i*13 + j*7) % 64)
		}
		cols[j] = col
	}
	a, err := FromColumns(cols)
	require.NoError(t, err)

	seq := ArgSortColumnsN(a, 1)
	par := ArgSortColumnsN(a, 4)
	for j := range cols {
		assert.Equal(t, column(seq, j), column(par, j), "column %d", j)
	}
}

func TestCumSumColumns(t *testing.T) {
	a, err := FromColumns([][]float64{{1, 2, 3}, {0, 0, 5}})
	require.NoError(t, err)

	cum := CumSumColumns(a)
	assert.Equal(t, []float64{1, 3, 6}, cum.Col(0))
	assert.Equal(t, []float64{0, 0, 5}, cum.Col(1))
}

func TestCumSumColumnsCompensated(t *testing.T) {
	// Many small weights after a large one lose mass under naive
	// accumulation; the compensated sum keeps the total exact enough to
	// compare against fractional targets.
	n := 10001
	col := make([]float64, n)
	col[0] = 1e16
	for i := 1; i < n; i++ {
		col[i] = 1
	}
	a, err := FromColumns([][]float64{col})
	require.NoError(t, err)

	cum := CumSumColumns(a)
	assert.Equal(t, 1e16+float64(n-1), cum.At2(n-1, 0))
}

func TestSearchColumn(t *testing.T) {
	cum, err := FromColumns([][]float64{{1, 2, 4, 7}})
	require.NoError(t, err)

	assert.Equal(t, 0, SearchColumn(cum, 0, 0.5))
	assert.Equal(t, 0, SearchColumn(cum, 0, 1))
	assert.Equal(t, 2, SearchColumn(cum, 0, 3))
	assert.Equal(t, 3, SearchColumn(cum, 0, 7))
	// Past the last entry.
	assert.Equal(t, 4, SearchColumn(cum, 0, 8))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, ClampIndex(-1, 0, 4))
	assert.Equal(t, 2, ClampIndex(2, 0, 4))
	assert.Equal(t, 4, ClampIndex(9, 0, 4))
}

func column(m *IndexMatrix, j int) []int {
	out := make([]int, m.Rows())
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}
