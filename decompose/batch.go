package decompose

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/zigen/curve"
)

// Item is one glyph of a batch.
type Item struct {
	Name    string
	Strokes []curve.Stroke
}

// BatchItem is the outcome for one glyph; exactly one of Result and Err is
// set.
type BatchItem struct {
	Name   string
	Result *Result
	Err    error
}

// Batch decomposes items with at most workers concurrent calls (workers < 1
// means one). Outcomes keep the order of items. Per-glyph errors land on
// their BatchItem; only cancellation of ctx aborts the batch and is
// returned.
func (e *Engine) Batch(ctx context.Context, items []Item, workers int) ([]BatchItem, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]BatchItem, len(items))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, it := range items {
		eg.Go(func() error {
			res, err := e.Decompose(gctx, it.Name, it.Strokes)
			out[i] = BatchItem{Name: it.Name, Result: res, Err: err}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			return nil
		})
	}
	err := eg.Wait()
	failed := 0
	for _, b := range out {
		if b.Err != nil {
			failed++
		}
	}
	tracer().Infof("batch: %d glyphs, %d failed", len(items), failed)

	return out, err
}
