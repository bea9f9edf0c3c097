package scheme

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/zigen/mask"
)

// tracer writes to trace with key 'zigen.scheme'
func tracer() tracing.Trace {
	return tracing.Select("zigen.scheme")
}

var (
	// ErrTooManyStrokes is mask.ErrTooManyStrokes.
	ErrTooManyStrokes = mask.ErrTooManyStrokes

	// ErrMaskRange is returned for an empty slice mask or one that names
	// strokes the glyph does not have.
	ErrMaskRange = errors.New("scheme: slice mask out of range")

	// ErrBudgetExceeded is returned when the node budget runs out.
	ErrBudgetExceeded = errors.New("scheme: node budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scheme: invalid option supplied")
)

// Scheme is a partition of a glyph's strokes into slices, in pen order of
// each slice's first stroke.
type Scheme []mask.Mask

// Valid reports whether s partitions the strokes of an n-stroke glyph.
func (s Scheme) Valid(n int) bool {
	var sum mask.Mask
	for _, m := range s {
		if m == 0 || sum&m != 0 {
			return false
		}
		sum |= m
	}

	return sum == mask.Full(n)
}

// Format renders s with one binary group per slice, e.g. "1000+0111".
func (s Scheme) Format(n int) string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = fmt.Sprintf("%0*b", n, uint64(m))
	}

	return strings.Join(parts, "+")
}

// Option configures Generate.
type Option func(*Options)

// Options holds the limits and hooks of one Generate call.
type Options struct {
	// Ctx allows cancellation; checked every 1024 nodes.
	Ctx context.Context

	// NodeBudget, if > 0, bounds the number of search nodes.
	NodeBudget int

	// MaxSchemes, if > 0, stops the search after that many schemes.
	MaxSchemes int

	// OnScheme is called for every recorded scheme.
	OnScheme func(Scheme)

	err error
}

// DefaultOptions returns background context, no limits and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnScheme: func(Scheme) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithNodeBudget bounds the search.
//
//	k > 0: abort with ErrBudgetExceeded after k nodes
//	k == 0: no limit
//	k < 0: invalid option → ErrOptionViolation
func WithNodeBudget(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: NodeBudget cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.NodeBudget = k
	}
}

// WithMaxSchemes stops the search once k schemes are recorded. The schemes
// found so far are returned without error. k == 0 means no limit.
func WithMaxSchemes(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxSchemes cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxSchemes = k
	}
}

// WithOnScheme registers a callback for each recorded scheme.
func WithOnScheme(fn func(Scheme)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnScheme = fn
		}
	}
}
