package stream

import (
	"context"

	"github.com/verdict-io/verdict/pkg/verdict"
)

// EmitHandlers observe the feeding of values into a stream.
type EmitHandlers[T any] struct {
	// OnStartFail runs when the context is already done before anything
	// was emitted.
	OnStartFail func(ctx context.Context, values []T)
	// OnEmit runs after each delivered value.
	OnEmit func(ctx context.Context, value T)
	// OnBreak runs with the values left unsent when the context ends the
	// feed early.
	OnBreak func(ctx context.Context, rest []T)
}

// ToChanValues feeds values into a channel that closes after the last one,
// or as soon as ctx is done.
func ToChanValues[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults feeds values as success Results into a channel that closes
// after the last one, or as soon as ctx is done.
func ToChanResults[E any, T any](ctx context.Context, values ...T) <-chan verdict.Result[T, E] {
	return ToChanResultsWith[E](ctx, EmitHandlers[T]{}, values...)
}

// ToChanResultsWith is ToChanResults with emit observation hooks.
func ToChanResultsWith[E any, T any](ctx context.Context, handlers EmitHandlers[T],
	values ...T) <-chan verdict.Result[T, E] {

	in := make(chan verdict.Result[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- verdict.Success[T, E](v):
				if handlers.OnEmit != nil {
					handlers.OnEmit(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// FromChanMany collects every value delivered on out until it closes or ctx
// is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// FromChanFirstOrDefault returns the first value delivered on out, or
// defaultV when out closes empty or ctx is done first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
