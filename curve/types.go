package curve

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Sentinel errors for stroke validation.
var (
	// ErrUnknownCommand indicates a command kind other than h, v or c.
	ErrUnknownCommand = errors.New("curve: unknown drawing command")

	// ErrParamCount indicates a command carries the wrong number of parameters.
	ErrParamCount = errors.New("curve: wrong parameter count")

	// ErrUnknownFeature indicates a stroke feature outside the catalog.
	ErrUnknownFeature = errors.New("curve: unknown stroke feature")
)

// Point is a position in the authoring box.
type Point = vec.Vec2

// Kind selects the geometry of a drawing Command.
type Kind byte

const (
	// CmdHorizontal extends the current point by dx.
	CmdHorizontal Kind = 'h'

	// CmdVertical extends the current point by dy.
	CmdVertical Kind = 'v'

	// CmdCubic appends a cubic Bézier whose three control deltas are relative
	// to the current point.
	CmdCubic Kind = 'c'
)

// String returns the single letter used in glyph documents.
func (k Kind) String() string { return string(rune(k)) }

// paramCount is the number of parameters each Kind expects.
func (k Kind) paramCount() int {
	switch k {
	case CmdHorizontal, CmdVertical:
		return 1
	case CmdCubic:
		return 6
	default:
		return -1
	}
}

// Command is one immutable drawing step of a Stroke.
type Command struct {
	Kind   Kind
	Params []float64
}

// H returns a horizontal command.
func H(dx float64) Command { return Command{Kind: CmdHorizontal, Params: []float64{dx}} }

// V returns a vertical command.
func V(dy float64) Command { return Command{Kind: CmdVertical, Params: []float64{dy}} }

// C returns a cubic command with control deltas (x1,y1), (x2,y2), (x3,y3).
func C(x1, y1, x2, y2, x3, y3 float64) Command {
	return Command{Kind: CmdCubic, Params: []float64{x1, y1, x2, y2, x3, y3}}
}

// Validate reports whether the command is well-formed.
func (c Command) Validate() error {
	want := c.Kind.paramCount()
	if want < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Kind.String())
	}
	if len(c.Params) != want {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrParamCount, c.Kind, want, len(c.Params))
	}

	return nil
}

// Stroke is a single authored pen stroke. A Stroke owns its command list.
type Stroke struct {
	// Feature is the stroke type, one of the catalog names (横, 竖, 撇, ...).
	Feature string

	// Start is where the pen touches down.
	Start Point

	// Commands are applied in order starting from Start.
	Commands []Command
}

// Validate checks the feature name and every command of s.
func (s Stroke) Validate() error {
	if !ValidFeature(s.Feature) {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, s.Feature)
	}
	for i, c := range s.Commands {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("curve: command %d: %w", i, err)
		}
	}

	return nil
}

// Length is the arc length of the rendered stroke.
func (s Stroke) Length() float64 {
	var total float64
	for _, c := range RenderStroke(s) {
		total += Length(c)
	}

	return total
}
