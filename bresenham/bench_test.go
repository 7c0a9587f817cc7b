package bresenham_test

import (
	"testing"

	"github.com/katalvlaran/lbptrace/bresenham"
)

// BenchmarkLine measures a long shallow segment.
func BenchmarkLine(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = bresenham.Line(0, 0, 1000, 373)
	}
}
