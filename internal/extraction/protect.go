package extraction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
)

var errPageTimeout = errors.New("page extraction timed out")

// protectExtract runs a parser call that may hang or panic on malformed input.
func protectExtract[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				resChan <- result{zero, fmt.Errorf("parser panic: %v", r)}
			}
		}()
		v, err := fn()
		resChan <- result{v, err}
	}()

	var zero T
	select {
	case r := <-resChan:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-time.After(config.PageExtractTimeout):
		return zero, errPageTimeout
	}
}
