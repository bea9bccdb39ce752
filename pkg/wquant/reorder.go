package wquant

import "github.com/panbanda/wquant/pkg/tensor"

// reorderWeights aligns weights to a per-column sort order so that
// position (i, j) of the result holds the weight of the value now at
// sorted position i in column j. Rank-1 weights index by row only:
// out[i,j] = w[perm[i,j]]. Rank-2 weights index per column:
// out[i,j] = w[perm[i,j], j]. Any other rank fails with ShapeError.
func reorderWeights(w *tensor.Array, perm *tensor.IndexMatrix) (*tensor.Array, error) {
	out := tensor.New(perm.Rows(), perm.Cols())
	switch w.Rank() {
	case 1:
		for j := 0; j < perm.Cols(); j++ {
			for i := 0; i < perm.Rows(); i++ {
				out.Set2(i, j, w.At(perm.At(i, j)))
			}
		}
	case 2:
		for j := 0; j < perm.Cols(); j++ {
			for i := 0; i < perm.Rows(); i++ {
				out.Set2(i, j, w.At2(perm.At(i, j), j))
			}
		}
	default:
		return nil, &tensor.ShapeError{Op: "reorder weights", Rank: w.Rank()}
	}
	return out, nil
}
