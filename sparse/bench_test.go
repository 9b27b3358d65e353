package sparse_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/dlx/sparse"
)

// randomGrid builds a deterministic n×n 0/1 grid with the given density.
func randomGrid(n int, density float64, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	sb.Grow(n * (n + 1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < density {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// BenchmarkRead measures the byte-level scanner on a 500×500 grid at 10%
// density. Complexity: O(bytes).
func BenchmarkRead(b *testing.B) {
	in := randomGrid(500, 0.1, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := sparse.Read(strings.NewReader(in)); err != nil {
			b.Fatalf("Read failed: %v", err)
		}
	}
}

// BenchmarkRender measures the padded text emitter on the same instance.
func BenchmarkRender(b *testing.B) {
	csr, cols, err := sparse.Read(strings.NewReader(randomGrid(500, 0.1, 42)))
	if err != nil {
		b.Fatalf("setup Read failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = csr.Render(cols)
	}
}
