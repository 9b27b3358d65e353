// Package sparse defines the binary CSR type, sentinel errors, and the
// numeric return codes surfaced to thin drivers.
package sparse

import "errors"

// Sentinel errors for loader operations. All are matched via errors.Is;
// ErrIO additionally wraps the underlying stream error.
var (
	// ErrMemoryExhausted indicates a staging buffer could not grow further.
	ErrMemoryExhausted = errors.New("sparse: memory exhausted")

	// ErrMalformedInput indicates a byte outside {'0','1','\n'} in the input.
	ErrMalformedInput = errors.New("sparse: malformed input")

	// ErrIO indicates the underlying stream reported an error other than EOF.
	ErrIO = errors.New("sparse: input/output error")
)

// Numeric return codes for thin CLI drivers (see Code).
const (
	// CodeSuccess reports a successful load.
	CodeSuccess = 0
	// CodeMemoryExhausted reports ErrMemoryExhausted.
	CodeMemoryExhausted = -1
	// CodeMalformedInput reports ErrMalformedInput.
	CodeMalformedInput = -2
	// CodeIO reports ErrIO or any other stream-level failure.
	CodeIO = -3
)

// Initial staging capacities used by Read. Any non-zero value is correct;
// these match the sizes the loader has always started from.
const (
	initialColIndCap = 512
	initialRowPtrCap = 256
)

// CSR is a binary compressed sparse row matrix: RowPtr[i] is the index in
// ColInd of the first entry of row i, RowPtr[len(RowPtr)-1] == len(ColInd),
// and ColInd holds the column of every 1-entry, ascending within each row.
// There is no values array. The column count is not part of the CSR; Read
// computes it and returns it alongside.
type CSR struct {
	RowPtr []int
	ColInd []int
}

// Rows returns the number of rows encoded by the CSR.
func (c *CSR) Rows() int {
	return len(c.RowPtr) - 1
}

// NNZ returns the number of stored 1-entries.
func (c *CSR) NNZ() int {
	return len(c.ColInd)
}

// Code maps a loader error to its numeric return code: nil reports
// CodeSuccess; the three sentinel kinds report their own codes; any other
// non-nil error is treated as a stream-level failure (CodeIO), since Read
// produces no other kind.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrMemoryExhausted):
		return CodeMemoryExhausted
	case errors.Is(err, ErrMalformedInput):
		return CodeMalformedInput
	default:
		return CodeIO
	}
}
