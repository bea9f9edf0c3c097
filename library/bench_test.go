package library_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/zigen/library"
)

func BenchmarkDecodeSnapshot(b *testing.B) {
	var buf bytes.Buffer
	if err := library.EncodeSnapshot(&buf, fixtureLibrary(b)); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := library.DecodeSnapshot(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	doc, err := library.Load("testdata/basic.json")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := doc.Compile(); err != nil {
			b.Fatal(err)
		}
	}
}
