package sparse

import "gonum.org/v1/gonum/mat"

// Dense exports the binary structure as a gonum *mat.Dense with 1.0 at
// every stored position and 0.0 elsewhere, so instances can flow into
// numeric tooling. Degenerate shapes (zero rows or zero columns) have no
// dense form and return nil.
//
// Complexity: O(R×C) time and memory.
func (c *CSR) Dense(cols int) *mat.Dense {
	r := c.Rows()
	if r == 0 || cols == 0 {
		return nil
	}

	d := mat.NewDense(r, cols, nil)
	for i := 0; i < r; i++ {
		for k := c.RowPtr[i]; k < c.RowPtr[i+1]; k++ {
			d.Set(i, c.ColInd[k], 1)
		}
	}

	return d
}
