package match_test

import (
	"fmt"

	"github.com/katalvlaran/zigen/internal/fixture"
	"github.com/katalvlaran/zigen/match"
)

// ExampleFindSlices finds the three ways 十 sits inside 丰: each of the
// three 横 together with the shared 竖.
func ExampleFindSlices() {
	target := match.NewSubject("丰", fixture.Glyph("丰"))
	root := match.NewSubject("十", fixture.Glyph("十"))

	slices, err := match.FindSlices(match.Degenerator{}, target, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range slices {
		fmt.Printf("%04b %v\n", uint64(s), s.Indices(4))
	}
	// Output:
	// 1001 [0 3]
	// 0101 [1 3]
	// 0011 [2 3]
}
