package dlx

import (
	"github.com/katalvlaran/dlx/sparse"
)

// NewMatrix links a binary CSR into a DLX matrix with cols columns. cols
// may exceed every column index present (padded instances); each padded
// column is then an empty column no row can cover.
//
// Every 1-entry becomes one node in a single contiguous arena; each row's
// nodes form a circular left-right list, and each node is appended to the
// bottom of its column in CSR order, so candidate rows are later visited
// in input order.
//
// Complexity: O(cols + NNZ) time and memory.
//
// Errors: ErrNilCSR, ErrBadRowPtr, ErrColumnRange, ErrColumnOrder.
func NewMatrix(c *sparse.CSR, cols int) (*Matrix, error) {
	// 1) Validate the CSR shape before allocating anything.
	if c == nil {
		return nil, ErrNilCSR
	}
	if err := validateCSR(c, cols); err != nil {
		return nil, err
	}
	nRows := c.Rows()
	nnz := c.NNZ()

	// 2) One allocation per arena; links are set below, never reallocated.
	m := &Matrix{
		cols:   make([]Node, cols),
		nodes:  make([]Node, nnz),
		rowOff: make([]int, nRows+1),
		nRows:  nRows,
		nCols:  cols,
		sol:    make([]SolutionRow, cols),
	}

	// 3) Header row: root and headers as one circular horizontal list,
	//    every header an empty circular column.
	m.initHeaders()

	// 4) Rows: circular left-right list per row, each node appended to the
	//    bottom of its column.
	for i := 0; i < nRows; i++ {
		lo, hi := c.RowPtr[i], c.RowPtr[i+1]
		m.rowOff[i] = lo
		span := hi - lo
		for k := lo; k < hi; k++ {
			nd := &m.nodes[k]
			nd.row = i
			nd.left = &m.nodes[lo+(k-lo+span-1)%span]
			nd.right = &m.nodes[lo+(k-lo+1)%span]
			appendToColumn(nd, &m.cols[c.ColInd[k]])
		}
	}
	m.rowOff[nRows] = nnz

	return m, nil
}

// validateCSR rejects row pointers that are empty, start elsewhere than 0,
// decrease, or disagree with the index array, and column indices that fall
// outside [0, cols) or are not strictly ascending within a row.
func validateCSR(c *sparse.CSR, cols int) error {
	if len(c.RowPtr) == 0 || c.RowPtr[0] != 0 {
		return ErrBadRowPtr
	}
	for i := 1; i < len(c.RowPtr); i++ {
		if c.RowPtr[i] < c.RowPtr[i-1] {
			return ErrBadRowPtr
		}
	}
	if c.RowPtr[len(c.RowPtr)-1] != len(c.ColInd) {
		return ErrBadRowPtr
	}
	for i := 0; i < c.Rows(); i++ {
		for k := c.RowPtr[i]; k < c.RowPtr[i+1]; k++ {
			if c.ColInd[k] < 0 || c.ColInd[k] >= cols {
				return ErrColumnRange
			}
			if k > c.RowPtr[i] && c.ColInd[k] <= c.ColInd[k-1] {
				return ErrColumnOrder
			}
		}
	}

	return nil
}

// initHeaders builds the circular header list root, h[0], …, h[C-1], root.
// Each header starts as an empty column: vertically self-linked, count 0,
// id defaulted to the column's build index (SetColumnIDs overrides).
func (m *Matrix) initHeaders() {
	r := &m.root
	r.row = -1
	if m.nCols == 0 {
		r.left = r
		r.right = r

		return
	}
	r.right = &m.cols[0]
	r.left = &m.cols[m.nCols-1]
	for i := range m.cols {
		h := &m.cols[i]
		h.row = -1
		h.up = h
		h.down = h
		h.col = h
		h.id = i
		if i == 0 {
			h.left = r
		} else {
			h.left = &m.cols[i-1]
		}
		if i == m.nCols-1 {
			h.right = r
		} else {
			h.right = &m.cols[i+1]
		}
	}
}

// appendToColumn inserts nd at the bottom of column h, keeping the column
// circular and bumping its live count.
func appendToColumn(nd, h *Node) {
	nd.col = h
	nd.down = h
	nd.up = h.up
	h.up.down = nd
	h.up = nd
	h.count++
}

// Dims returns the number of rows and columns of the built matrix.
func (m *Matrix) Dims() (rows, cols int) {
	return m.nRows, m.nCols
}

// RowNode returns the first node of row i, the handle used by ForceRow and
// UnselectRow. It returns nil for an out-of-range index or a row with no
// 1-entries.
func (m *Matrix) RowNode(i int) *Node {
	if i < 0 || i >= m.nRows {
		return nil
	}
	lo, hi := m.rowOff[i], m.rowOff[i+1]
	if lo == hi {
		return nil
	}

	return &m.nodes[lo]
}

// Empty reports whether no live columns remain. A fresh 0-column matrix is
// empty; this is how callers disambiguate the vacuous size-0 solution from
// "no solution found".
func (m *Matrix) Empty() bool {
	return m.root.right == &m.root
}

// SetColumnIDs assigns caller-chosen identities to the columns, replacing
// the build-index defaults. ids must have exactly one entry per column.
// The engine never writes ids afterwards; they are copied verbatim into
// solution records.
func (m *Matrix) SetColumnIDs(ids []int) error {
	if len(ids) != m.nCols {
		return ErrColumnIDsLength
	}
	for i := range m.cols {
		m.cols[i].id = ids[i]
	}

	return nil
}
