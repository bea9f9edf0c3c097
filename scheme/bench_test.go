package scheme_test

import (
	"testing"

	"github.com/katalvlaran/zigen/scheme"
)

func BenchmarkGenerate_Chain16(b *testing.B) {
	slices := chain(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = scheme.Generate(16, slices)
	}
}
