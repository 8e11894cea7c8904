// Package batch fans independent string jobs out to a bounded set of
// goroutines.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many jobs run at once.
type Pool struct {
	size int
}

// NewPool creates a pool running at most size jobs at a time.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{size: size}
}

// Map applies fn to every input and returns the results in input order.
// Respects context cancellation: once ctx is done no further jobs start and
// Map returns ctx.Err().
func (p *Pool) Map(ctx context.Context, inputs []string, fn func(string) string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, ctx.Err()
	}

	outputs := make([]string, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outputs[i] = fn(in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.size
}
