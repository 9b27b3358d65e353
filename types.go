// Package dlx defines the node and matrix types, sentinel errors, and
// search options for the Dancing Links engine.
package dlx

import (
	"context"
	"errors"
)

// Sentinel errors for builder and engine operations.
var (
	// ErrNilCSR indicates a nil *sparse.CSR was passed to NewMatrix.
	ErrNilCSR = errors.New("dlx: csr is nil")

	// ErrBadRowPtr indicates a CSR row-pointer array that is empty, does not
	// start at 0, is non-monotone, or disagrees with the index array length.
	ErrBadRowPtr = errors.New("dlx: malformed csr row pointers")

	// ErrColumnRange indicates a CSR column index outside [0, cols).
	ErrColumnRange = errors.New("dlx: column index out of range")

	// ErrColumnOrder indicates column indices not strictly ascending within a row.
	ErrColumnOrder = errors.New("dlx: column indices not ascending within row")

	// ErrColumnIDsLength indicates SetColumnIDs received a slice whose length
	// differs from the column count.
	ErrColumnIDsLength = errors.New("dlx: column id slice length mismatch")

	// ErrNilNode indicates a nil *Node was passed to a preselection call.
	ErrNilNode = errors.New("dlx: node is nil")

	// ErrAlreadyRemoved indicates ForceRow was called on a row already gone:
	// its node vertically excised, or its column already covered.
	ErrAlreadyRemoved = errors.New("dlx: row already removed")

	// ErrStillInMatrix indicates UnselectRow was called on a row that is
	// still fully live in the matrix.
	ErrStillInMatrix = errors.New("dlx: row still in matrix")

	// ErrBadSolutionCount indicates ExactCover received a nil or
	// non-positive skip counter.
	ErrBadSolutionCount = errors.New("dlx: solution count must be positive")
)

// Node is one cell of the toroidal structure: a 1-entry of the matrix, a
// column header, or the root. The four neighbour links are uniform across
// all three roles, which is what lets the unlink/relink primitives run
// without branching. count and id are meaningful only on headers; row only
// on data nodes.
type Node struct {
	left, right, up, down *Node

	// col is the owning column header; a header points to itself, and the
	// root holds nil.
	col *Node

	// row is the owning row index; -1 on headers and the root.
	row int

	// count is the number of live data nodes in this column (headers only).
	count int

	// id is the caller-assigned column identity (headers only). The engine
	// only ever copies it into solution records.
	id int
}

// Row returns the index of the input row this node belongs to, or -1 for
// headers, the root, and a nil node.
func (n *Node) Row() int {
	if n == nil {
		return -1
	}

	return n.row
}

// ColumnID returns the id of the column owning this node. Headers report
// their own id; a nil node reports -1.
func (n *Node) ColumnID() int {
	switch {
	case n == nil:
		return -1
	case n.col == nil:
		return n.id
	default:
		return n.col.id
	}
}

// Matrix is the DLX handle. It owns the root, the header arena, the data
// node arena (one node per 1-entry), and the row offset table; all are
// allocated once by NewMatrix and only their links change while solving.
type Matrix struct {
	root   Node
	cols   []Node
	nodes  []Node
	rowOff []int

	nRows, nCols int

	// sol is the depth-indexed scratch the search writes into; recursion
	// depth never exceeds nCols, and allocating it here keeps the search
	// itself off the heap (ExactCover only allocates the returned copy).
	sol []SolutionRow
}

// SolutionRow records one selected row of a returned solution: the chosen
// row's node, the id of the column that was branched on to select it, and
// the number of candidate rows that column had at the moment of branching.
type SolutionRow struct {
	Node      *Node
	PrimaryID int
	NChoices  int
}

// Option configures an ExactCover run.
type Option func(*SolveOptions)

// SolveOptions holds configurable parameters for the exact-cover search.
type SolveOptions struct {
	// Ctx allows cooperative cancellation; defaults to context.Background().
	// It is checked at each recursion entry; on cancellation the search
	// unwinds symmetrically and the matrix is fully restored.
	Ctx context.Context
}

// DefaultSolveOptions returns a SolveOptions with a background context.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{Ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *SolveOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
