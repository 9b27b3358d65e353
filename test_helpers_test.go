package dlx

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dlx/sparse"
)

// knuthClassic is the 6×7 instance from Knuth's dancing-links paper
// (columns A..G); its unique exact cover is rows {0, 3, 4}.
const knuthClassic = "0010110\n1001001\n0110010\n1001000\n0100001\n0001101\n"

// mustMatrix loads a textual 0/1 grid and links it, failing the test on
// any loader or builder error.
func mustMatrix(t *testing.T, text string) *Matrix {
	t.Helper()
	csr, cols, err := sparse.Read(strings.NewReader(text))
	require.NoError(t, err)
	m, err := NewMatrix(csr, cols)
	require.NoError(t, err)

	return m
}

// linkState captures every mutable field of one node.
type linkState struct {
	left, right, up, down, col *Node
	count                      int
}

// snapshot captures the full link state of the matrix: root, headers, and
// every data node. Two snapshots compare equal iff the structures are
// identical link for link and count for count.
func snapshot(m *Matrix) []linkState {
	all := make([]linkState, 0, 1+len(m.cols)+len(m.nodes))
	grab := func(n *Node) {
		all = append(all, linkState{n.left, n.right, n.up, n.down, n.col, n.count})
	}
	grab(&m.root)
	for i := range m.cols {
		grab(&m.cols[i])
	}
	for i := range m.nodes {
		grab(&m.nodes[i])
	}

	return all
}

// checkSymmetry asserts x.left.right == x, x.right.left == x and the
// vertical analogue for every node of a quiescent matrix (nothing excised).
func checkSymmetry(t *testing.T, m *Matrix) {
	t.Helper()
	check := func(n *Node, what string) {
		if n.left.right != n || n.right.left != n {
			t.Errorf("%s: horizontal symmetry broken", what)
		}
		if n != &m.root && (n.up.down != n || n.down.up != n) {
			t.Errorf("%s: vertical symmetry broken", what)
		}
	}
	check(&m.root, "root")
	for i := range m.cols {
		check(&m.cols[i], "header")
	}
	for i := range m.nodes {
		check(&m.nodes[i], "node")
	}
}

// checkCounts asserts every header's count equals the number of nodes
// reachable by walking its column downwards.
func checkCounts(t *testing.T, m *Matrix) {
	t.Helper()
	for i := range m.cols {
		h := &m.cols[i]
		live := 0
		for n := h.down; n != h; n = n.down {
			live++
		}
		if live != h.count {
			t.Errorf("column %d: count = %d, live nodes = %d", i, h.count, live)
		}
	}
}

// solutionRows extracts the sorted row indices of a solution.
func solutionRows(sol []SolutionRow) []int {
	rows := make([]int, len(sol))
	for i, s := range sol {
		rows[i] = s.Node.Row()
	}
	sort.Ints(rows)

	return rows
}

// columnCount returns the count of header i (test-only accessor).
func (m *Matrix) columnCount(i int) int {
	return m.cols[i].count
}
