// Package sparse loads textual 0/1 matrices into a binary compressed
// sparse row (CSR) representation, the sole bridge between external data
// and the DLX engine.
//
// What:
//
//   - CSR holds the non-zero structure of a binary matrix: RowPtr + ColInd,
//     no values array (every stored entry is an implicit 1).
//   - Read parses a stream over the alphabet {'0','1','\n'} into a CSR and
//     reports the matrix width (the widest row encountered).
//   - Render / WriteText emit the exact textual inverse of Read, padding
//     rows with trailing zeros to a requested width.
//   - Dense exports the structure as a gonum *mat.Dense for numeric work.
//
// Why:
//
//   - Exact-cover instances arrive as plain 0/1 grids; CSR keeps them
//     compact and row-ordered, which is precisely the order the DLX
//     builder consumes.
//   - The loader owns all staging memory, so a failed parse leaks nothing.
//
// Input format:
//
//   - Only '0', '1' and '\n' are permitted; any other byte is rejected.
//   - A newline terminates a row; trailing zeros of a row may be omitted.
//   - EOF without a preceding newline completes the final row; EOF right
//     after a newline adds no row. Empty input is the 0×0 matrix.
//   - Empty lines are valid all-zero rows.
//
// Complexity:
//
//   - Read:   O(bytes), Memory: O(NNZ + R) with ≈1.5× amortized growth.
//   - Render: O(R×C) time and output.
//   - Dense:  O(R×C) time and memory.
//
// Errors:
//
//   - ErrMemoryExhausted: a staging buffer could not grow (code -1).
//   - ErrMalformedInput: a byte outside {'0','1','\n'} was read (code -2).
//   - ErrIO: the underlying stream failed before EOF (code -3).
//
// Code maps any of the above (or nil) to the numeric return codes for thin
// command-line drivers.
package sparse
