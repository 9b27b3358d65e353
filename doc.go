// Package dlx implements Knuth's Dancing Links technique for the Exact
// Cover problem: given a binary matrix, select rows so that every column
// holds a 1 in exactly one selected row.
//
// What:
//
//   - NewMatrix links a sparse.CSR into the toroidal quadruply-linked
//     structure: a root, one header per column, one node per 1-entry.
//   - ExactCover runs the recursive branch-and-prune search with the
//     min-count column heuristic and solution skipping: a skip counter of
//     M returns the M-th solution found.
//   - ForceRow / UnselectRow preselect rows before a search (sudoku givens
//     and similar), in strict LIFO pairs.
//
// Why:
//
//   - The unlink of a doubly linked list is self-inverse, so backtracking
//     is two pointer writes per node instead of any copying. The matrix is
//     restored exactly after every top-level call.
//   - All storage is allocated once by the builder; the search itself does
//     not touch the heap.
//
// Complexity:
//
//   - NewMatrix:  O(C + NNZ) time and memory.
//   - ExactCover: exponential worst case; recursion depth ≤ C, since every
//     level covers at least one column. O(1) extra memory per level.
//   - cover/uncover: O(nodes removed), exact inverses.
//
// Ordering is deterministic: the branch column is the live header with the
// fewest candidates, leftmost on ties; candidate rows are visited in CSR
// build order.
//
// Options:
//
//   - WithContext(ctx): cooperative cancellation, checked at each recursion
//     entry; on cancellation the search unwinds symmetrically (every cover
//     paired with its uncover) and returns the context error with the
//     matrix fully restored.
//
// Errors:
//
//   - ErrNilCSR, ErrBadRowPtr, ErrColumnRange, ErrColumnOrder: builder
//     input validation.
//   - ErrColumnIDsLength: SetColumnIDs arity mismatch.
//   - ErrAlreadyRemoved, ErrStillInMatrix, ErrNilNode: preselection misuse;
//     non-fatal, the matrix is never corrupted.
//   - ErrBadSolutionCount: ExactCover called with a nil or non-positive
//     skip counter.
//
// Interleaving ForceRow/UnselectRow with a running or partially consumed
// ExactCover is unsupported: preselect first, search, then unselect in
// reverse order.
package dlx
