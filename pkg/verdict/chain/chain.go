package chain

import (
	"context"

	"github.com/verdict-io/verdict/pkg/verdict"
	"github.com/verdict-io/verdict/pkg/verdict/pipe"
)

// Chain wraps a Result with a context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result verdict.Result[T, E]
}

// Start creates a new chain from a Result
func Start[T, E any](ctx context.Context, result verdict.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[E any, T any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: verdict.Success[T, E](value),
	}
}

// Result returns the underlying Result
func (c *Chain[T, E]) Result() verdict.Result[T, E] {
	return c.result
}

// Then chains a function that returns a Result[U, E]
func Then[T, U, E any](c *Chain[T, E],
	onSuccess func(ctx context.Context, v T) verdict.Result[U, E]) *Chain[U, E] {

	return &Chain[U, E]{
		ctx: c.ctx,
		result: pipe.AndThen(c.result, func(v T) verdict.Result[U, E] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error), wrapping a non-nil
// error into the failure type
func ThenTry[T, U, E any](c *Chain[T, E],
	tryOnSuccess func(ctx context.Context, v T) (U, error),
	wrap func(err error) E) *Chain[U, E] {

	return &Chain[U, E]{
		ctx: c.ctx,
		result: pipe.Try(c.result, func(v T) (U, error) {
			return tryOnSuccess(c.ctx, v)
		}, wrap),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E],
	onSuccess func(ctx context.Context, v T) U) *Chain[U, E] {

	return &Chain[U, E]{
		ctx: c.ctx,
		result: pipe.Transform(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// MapError rewrites the failure value, changing the chain's failure type
func MapError[T, E, E2 any](c *Chain[T, E],
	onFailure func(ctx context.Context, e E) E2) *Chain[T, E2] {

	return &Chain[T, E2]{
		ctx: c.ctx,
		result: pipe.TransformError(c.result, func(e E) E2 {
			return onFailure(c.ctx, e)
		}),
	}
}

// Recover chains a failure handler that can restore the chain to success
func Recover[T, E, E2 any](c *Chain[T, E],
	onFailure func(ctx context.Context, e E) verdict.Result[T, E2]) *Chain[T, E2] {

	return &Chain[T, E2]{
		ctx: c.ctx,
		result: pipe.OrElse(c.result, func(e E) verdict.Result[T, E2] {
			return onFailure(c.ctx, e)
		}),
	}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(ctx context.Context, v T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: pipe.Tap(c.result, func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, E, U any](c *Chain[T, E],
	onSuccess func(ctx context.Context, v T) U,
	onFailure func(ctx context.Context, e E) U) U {

	return pipe.Finally(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(e E) U { return onFailure(c.ctx, e) })
}
