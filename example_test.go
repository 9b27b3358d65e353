package dlx_test

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/dlx"
	"github.com/katalvlaran/dlx/sparse"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ExactCover
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_ExactCover solves the 6×7 instance from Knuth's paper
// (columns A..G). The unique exact cover is rows 0, 3 and 4:
//
//	row 0: C E F
//	row 3: A D
//	row 4: B G
func ExampleMatrix_ExactCover() {
	const input = "0010110\n" +
		"1001001\n" +
		"0110010\n" +
		"1001000\n" +
		"0100001\n" +
		"0001101\n"

	csr, cols, err := sparse.Read(strings.NewReader(input))
	if err != nil {
		fmt.Println("read:", err)

		return
	}
	m, err := dlx.NewMatrix(csr, cols)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	nsol := 1
	sol, err := m.ExactCover(&nsol)
	if err != nil {
		fmt.Println("solve:", err)

		return
	}

	rows := make([]int, len(sol))
	for i, s := range sol {
		rows[i] = s.Node.Row()
	}
	sort.Ints(rows)
	fmt.Println("solution rows:", rows)
	fmt.Println("first branch: column", sol[0].PrimaryID, "with", sol[0].NChoices, "candidates")

	// Output:
	// solution rows: [0 3 4]
	// first branch: column 0 with 2 candidates
}

////////////////////////////////////////////////////////////////////////////////
// Example: ForceRow
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_ForceRow preselects a row (a "given", as in sudoku) and
// lets the search complete the cover, then unwinds the preselection.
func ExampleMatrix_ForceRow() {
	csr, cols, _ := sparse.Read(strings.NewReader(
		"0010110\n1001001\n0110010\n1001000\n0100001\n0001101\n"))
	m, _ := dlx.NewMatrix(csr, cols)

	given := m.RowNode(0) // row 0 covers columns C, E, F
	if err := m.ForceRow(given); err != nil {
		fmt.Println("force:", err)

		return
	}

	nsol := 1
	sol, _ := m.ExactCover(&nsol)
	rows := make([]int, len(sol))
	for i, s := range sol {
		rows[i] = s.Node.Row()
	}
	sort.Ints(rows)
	fmt.Println("completion rows:", rows)

	_ = m.UnselectRow(given)

	// Output:
	// completion rows: [3 4]
}
