package sparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Read parses a textual 0/1 matrix from r into a CSR and returns it
// together with the column count (the width of the widest row).
//
// Contract:
//   - permitted bytes are exactly '0', '1' and '\n';
//   - '\n' terminates a row; trailing zeros of a row may be omitted;
//   - EOF not preceded by '\n' completes an implicit final row;
//   - EOF right after '\n' adds no row; empty input is the 0×0 matrix.
//
// Complexity: O(bytes) time, O(NNZ + R) memory.
//
// Errors: ErrMalformedInput on a foreign byte, ErrIO on a stream failure,
// ErrMemoryExhausted if a staging buffer cannot grow. On error the staging
// buffers are released and no CSR is returned.
func Read(r io.Reader) (*CSR, int, error) {
	br := bufio.NewReader(r)

	// 1) Staging buffers: column indices and row pointers, with the
	//    leading row pointer already in place.
	colInd := newIntBuffer(initialColIndCap)
	rowPtr := newIntBuffer(initialRowPtrCap)
	if err := rowPtr.append(0); err != nil {
		return nil, 0, err
	}

	// 2) Scan byte by byte, tracking the running column position, the
	//    widest row so far, and whether the last byte was a newline.
	var (
		col            int
		maxCols        int
		lastWasNewline = true
	)
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, 0, fmt.Errorf("%w: %w", ErrIO, err)
		}
		switch c {
		case '1':
			if err = colInd.append(col); err != nil {
				return nil, 0, err
			}
			col++
			lastWasNewline = false
		case '0':
			col++
			lastWasNewline = false
		case '\n':
			if err = rowPtr.append(colInd.length()); err != nil {
				return nil, 0, err
			}
			if col > maxCols {
				maxCols = col
			}
			col = 0
			lastWasNewline = true
		default:
			return nil, 0, fmt.Errorf("%w: byte 0x%02x", ErrMalformedInput, c)
		}
	}

	// 3) An unterminated final row is kept.
	if !lastWasNewline {
		if err := rowPtr.append(colInd.length()); err != nil {
			return nil, 0, err
		}
		if col > maxCols {
			maxCols = col
		}
	}

	// 4) Hand out right-sized slices.
	colInd.trimToFit()
	rowPtr.trimToFit()

	return &CSR{RowPtr: rowPtr.detach(), ColInd: colInd.detach()}, maxCols, nil
}
