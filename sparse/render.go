package sparse

import (
	"io"
	"strings"
)

// Render returns the textual form of the CSR padded with trailing zeros to
// cols columns, each row terminated by '\n'. It is the exact inverse of
// Read: re-reading the rendered text yields an equal CSR and the same
// column count (provided cols is at least the true width).
//
// Complexity: O(R×C) time and output.
func (c *CSR) Render(cols int) string {
	var sb strings.Builder
	sb.Grow((cols + 1) * c.Rows())
	c.render(&sb, cols)

	return sb.String()
}

// WriteText streams the Render form of the CSR to w.
func (c *CSR) WriteText(w io.Writer, cols int) error {
	var sb strings.Builder
	c.render(&sb, cols)
	_, err := io.WriteString(w, sb.String())

	return err
}

func (c *CSR) render(sb *strings.Builder, cols int) {
	line := make([]byte, cols+1)
	for i := 0; i < c.Rows(); i++ {
		for j := 0; j < cols; j++ {
			line[j] = '0'
		}
		line[cols] = '\n'
		for k := c.RowPtr[i]; k < c.RowPtr[i+1]; k++ {
			line[c.ColInd[k]] = '1'
		}
		sb.Write(line)
	}
}
