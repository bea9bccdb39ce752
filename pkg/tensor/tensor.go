// Package tensor provides the dense numeric containers used by the
// weighted-percentile engine: rank-0/1/2 float64 arrays, integer index
// matrices, and the column-wise primitives built on them.
package tensor

import "fmt"

// Number is the set of element types the package can ingest.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array is a dense row-major float64 array of rank 0, 1, or 2.
// Rank 0 holds a single scalar, rank 1 a vector of length N, rank 2 an
// N-row, C-column table.
type Array struct {
	shape []int
	data  []float64
}

// Scalar returns a rank-0 array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: nil, data: []float64{v}}
}

// FromSlice returns a rank-1 array copying vals.
func FromSlice[V Number](vals []V) *Array {
	data := make([]float64, len(vals))
	for i, v := range vals {
		data[i] = float64(v)
	}
	return &Array{shape: []int{len(vals)}, data: data}
}

// FromRows returns a rank-2 array from row slices. All rows must have
// the same length.
func FromRows[V Number](rows [][]V) (*Array, error) {
	if len(rows) == 0 {
		return &Array{shape: []int{0, 0}}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	return &Array{shape: []int{len(rows), cols}, data: data}, nil
}

// FromColumns returns a rank-2 array from column slices. All columns
// must have the same length.
func FromColumns(columns [][]float64) (*Array, error) {
	if len(columns) == 0 {
		return &Array{shape: []int{0, 0}}, nil
	}
	rows := len(columns[0])
	for j, col := range columns {
		if len(col) != rows {
			return nil, fmt.Errorf("column %d has %d rows, want %d", j, len(col), rows)
		}
	}
	a := New(rows, len(columns))
	for j, col := range columns {
		for i, v := range col {
			a.Set2(i, j, v)
		}
	}
	return a, nil
}

// New returns a zero-filled rank-2 array with the given dimensions.
func New(rows, cols int) *Array {
	return &Array{shape: []int{rows, cols}, data: make([]float64, rows*cols)}
}

// FromShape returns an array with an explicit shape over data. The
// product of the dimensions must equal len(data). Ranks above 2 can be
// constructed but are rejected by the operations that consume arrays.
func FromShape(shape []int, data []float64) (*Array, error) {
	size := 1
	for _, d := range shape {
		size *= d
	}
	if size != len(data) {
		return nil, fmt.Errorf("shape %v needs %d elements, got %d", shape, size, len(data))
	}
	s := make([]int, len(shape))
	copy(s, shape)
	d := make([]float64, len(data))
	copy(d, data)
	return &Array{shape: s, data: d}, nil
}

// Rank returns the number of dimensions (0, 1, or 2).
func (a *Array) Rank() int { return len(a.shape) }

// Rows returns the length along the first axis. For rank 0 it is 1.
func (a *Array) Rows() int {
	if len(a.shape) == 0 {
		return 1
	}
	return a.shape[0]
}

// Cols returns the length along the second axis. For rank 0 and 1 it is 1.
func (a *Array) Cols() int {
	if len(a.shape) < 2 {
		return 1
	}
	return a.shape[1]
}

// Item returns the scalar held by a rank-0 array.
func (a *Array) Item() float64 { return a.data[0] }

// At returns element i of a rank-1 array.
func (a *Array) At(i int) float64 { return a.data[i] }

// At2 returns element (i, j) of a rank-2 array.
func (a *Array) At2(i, j int) float64 { return a.data[i*a.shape[1]+j] }

// Set2 assigns element (i, j) of a rank-2 array.
func (a *Array) Set2(i, j int, v float64) { a.data[i*a.shape[1]+j] = v }

// Col returns a copy of column j of a rank-2 array.
func (a *Array) Col(j int) []float64 {
	out := make([]float64, a.shape[0])
	for i := range out {
		out[i] = a.At2(i, j)
	}
	return out
}

// Slice returns a copy of a rank-1 array's elements.
func (a *Array) Slice() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// Reshape returns an N×1 rank-2 view of a rank-1 array's data. Rank-2
// arrays are returned unchanged.
func (a *Array) Reshape() *Array {
	if len(a.shape) == 2 {
		return a
	}
	return &Array{shape: []int{len(a.data), 1}, data: a.data}
}

// Tile broadcasts a length-N vector across cols columns, producing an
// N×cols rank-2 array where every column repeats vec.
func Tile(vec []float64, cols int) *Array {
	a := New(len(vec), cols)
	for i, v := range vec {
		for j := 0; j < cols; j++ {
			a.Set2(i, j, v)
		}
	}
	return a
}

// ShapeError reports an array whose rank is outside the supported set.
type ShapeError struct {
	Op   string
	Rank int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: unsupported rank %d (only 1-D and 2-D arrays are allowed)", e.Op, e.Rank)
}

// IndexMatrix is a dense row-major matrix of integer indices, used for
// per-column sort permutations.
type IndexMatrix struct {
	rows, cols int
	idx        []int
}

// NewIndexMatrix returns a zero-filled rows×cols index matrix.
func NewIndexMatrix(rows, cols int) *IndexMatrix {
	return &IndexMatrix{rows: rows, cols: cols, idx: make([]int, rows*cols)}
}

// Rows returns the number of rows.
func (m *IndexMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *IndexMatrix) Cols() int { return m.cols }

// At returns index (i, j).
func (m *IndexMatrix) At(i, j int) int { return m.idx[i*m.cols+j] }

// Set assigns index (i, j).
func (m *IndexMatrix) Set(i, j, v int) { m.idx[i*m.cols+j] = v }
