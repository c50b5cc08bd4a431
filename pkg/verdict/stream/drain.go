package stream

import (
	"context"
	"errors"

	"github.com/verdict-io/verdict/pkg/verdict"
)

// ErrHalted marks an input a halted stream never processed, for streams
// whose failure type is error.
var ErrHalted = errors.New("stream: halted before processing")

// DrainAsFailures builds an OnHalt handler that converts every input still
// readable at halt time into a failure produced by build. Inputs already in
// failure state pass through re-typed with their failure value intact. The
// drain option on ctx turns the handler into a no-op.
func DrainAsFailures[In, Out, E any](build func(ctx context.Context,
	in verdict.Result[In, E]) E) func(ctx context.Context,
	inputCh <-chan verdict.Result[In, E], outCh chan<- verdict.Result[Out, E]) {

	return func(ctx context.Context, inputCh <-chan verdict.Result[In, E],
		outCh chan<- verdict.Result[Out, E]) {

		if !IsDrainRemainingEnabled(ctx, true) {
			return
		}

		for in := range inputCh {
			outCh <- failedOut[In, Out](ctx, in, build)
		}
	}
}

// DrainOneAsFailure builds an OnUnprocessed handler that converts the single
// input a halting worker was holding into a failure produced by build.
func DrainOneAsFailure[In, Out, E any](build func(ctx context.Context,
	in verdict.Result[In, E]) E) func(ctx context.Context,
	in verdict.Result[In, E], outCh chan<- verdict.Result[Out, E]) {

	return func(ctx context.Context, in verdict.Result[In, E],
		outCh chan<- verdict.Result[Out, E]) {

		if !IsDrainRemainingEnabled(ctx, true) {
			return
		}

		outCh <- failedOut[In, Out](ctx, in, build)
	}
}

func failedOut[In, Out, E any](ctx context.Context, in verdict.Result[In, E],
	build func(ctx context.Context, in verdict.Result[In, E]) E) verdict.Result[Out, E] {

	if in.IsFailure() {
		return verdict.FailFrom[Out](in)
	}
	return verdict.Fail[Out](build(ctx, in))
}
