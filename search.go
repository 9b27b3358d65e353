package dlx

import "context"

// ExactCover runs the recursive exact-cover search and returns the rows of
// the M-th solution, where M is the initial value of *pnsol (M ≥ 1). The
// counter is decremented at every leaf success; on return it holds
// M − (solutions found), so it reads 0 exactly when the M-th solution was
// reached. When fewer than M solutions exist the result is nil and the
// residual counter tells how many were missing.
//
// An empty matrix (no live columns) counts as one solution of size 0; it
// also yields a nil result, so callers disambiguate via *pnsol or Empty().
//
// The branch column is always a live column with the fewest candidate rows
// (leftmost on ties); candidate rows are tried in build order. After the
// call returns — found, exhausted, or cancelled — the matrix is restored
// to its exact prior state.
//
// Errors: ErrBadSolutionCount for a nil or non-positive counter; the
// context error when a WithContext cancellation fired. The search itself
// cannot fail.
func (m *Matrix) ExactCover(pnsol *int, opts ...Option) ([]SolutionRow, error) {
	// 1) Validate the skip counter; the contract below assumes *pnsol ≥ 1.
	if pnsol == nil || *pnsol <= 0 {
		return nil, ErrBadSolutionCount
	}

	// 2) Apply options.
	so := DefaultSolveOptions()
	for _, opt := range opts {
		opt(&so)
	}

	// 3) Search. The scratch solution buffer lives on the Matrix; depth
	//    never exceeds the column count.
	s := searcher{m: m, ctx: so.Ctx, pnsol: pnsol}
	n := s.search(0)
	if s.stopped {
		return nil, so.Ctx.Err()
	}
	// A residual counter means the M-th solution was never reached, even if
	// the last branch chain explored happened to contain an earlier one.
	if *pnsol != 0 || n == 0 {
		return nil, nil
	}

	// 4) Hand the caller an owned copy of the winning prefix.
	out := make([]SolutionRow, n)
	copy(out, m.sol[:n])

	return out, nil
}

// searcher carries the per-call search state.
type searcher struct {
	m       *Matrix
	ctx     context.Context
	pnsol   *int
	stopped bool
}

// search explores depth k and returns what the last candidate row tried
// returned: the size of a leaf success in that branch, or 0 (an earlier
// candidate's success is not carried over). Once *pnsol reaches 0 the loop
// stops right after the success, so the result is then the size of the
// M-th solution. Every cover on the way down is paired
// with an uncover on the way up, including the cancellation path, which is
// what keeps the restoration guarantee.
func (s *searcher) search(k int) int {
	// 1) Cooperative cancellation, checked at recursion entry only.
	if s.ctx.Err() != nil {
		s.stopped = true

		return 0
	}

	m := s.m
	root := &m.root

	// 2) Terminal success: no live columns remain.
	if root.right == root {
		*s.pnsol--

		return k
	}

	// 3) Branch column: minimum live count, leftmost wins ties. A count of
	//    0 simply makes the row loop below empty.
	col := m.chooseColumn()

	// 4) Cover it and snapshot the branch metadata: the column's id and its
	//    candidate count as it stood when branched on.
	m.cover(col)
	m.sol[k].PrimaryID = col.id
	m.sol[k].NChoices = col.count

	// 5) Try each candidate row in build order.
	var n int
	for i := col.down; i != col; i = i.down {
		m.coverOthers(i)
		n = s.search(k + 1)
		m.uncoverOthers(i)
		if n > 0 {
			m.sol[k].Node = i
		}
		if *s.pnsol == 0 || s.stopped {
			break
		}
	}

	// 6) Restore and report the last candidate's result (0 when it failed).
	m.uncover(col)

	return n
}

// chooseColumn returns the live header with the minimum candidate count,
// leftmost on ties. Must not be called on an empty matrix.
func (m *Matrix) chooseColumn() *Node {
	var best *Node
	for h := m.root.right; h != &m.root; h = h.right {
		if best == nil || h.count < best.count {
			best = h
		}
	}

	return best
}
