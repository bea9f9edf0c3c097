package decompose_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/zigen/decompose"
	"github.com/katalvlaran/zigen/internal/fixture"
)

// ExampleEngine_Decompose splits 王 into 一 and 土 once 土 is accepted.
func ExampleEngine_Decompose() {
	var roots []decompose.Root
	for _, name := range []string{"一", "丨", "十", "土", "士"} {
		r, err := decompose.CompileRoot(name, fixture.Strokes(name))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		roots = append(roots, r)
	}
	lib, _ := decompose.NewLibrary(roots...)
	engine, err := decompose.NewEngine(lib, decompose.Config{
		Required: []string{"一", "丨", "十"},
		Optional: []string{"土", "士"},
		Accepted: []string{"土"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := engine.Decompose(context.Background(), "王", fixture.Strokes("王"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	for _, s := range res.Slices {
		fmt.Println(s.Root, s.Indices)
	}
	// Output:
	// 王 = 一 土
	// 一 [0]
	// 土 [1 2 3]
}
