package curve_test

import (
	"fmt"

	"github.com/katalvlaran/zigen/curve"
)

func ExampleRenderStroke() {
	s := curve.Stroke{
		Feature:  "横折",
		Start:    p(20, 20),
		Commands: []curve.Command{curve.H(60), curve.V(60)},
	}
	for _, c := range curve.RenderStroke(s) {
		a, b := c.Start(), c.End()
		fmt.Printf("(%g,%g)-(%g,%g) %g\n", a.X, a.Y, b.X, b.Y, curve.Length(c))
	}
	// Output:
	// (20,20)-(80,20) 60
	// (80,20)-(80,80) 60
}
