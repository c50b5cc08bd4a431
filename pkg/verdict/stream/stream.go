package stream

import (
	"context"
	"sync"

	"github.com/verdict-io/verdict/pkg/verdict"
	"github.com/verdict-io/verdict/pkg/verdict/pipe"
)

// Engine turns one input Result into a channel delivering its processed
// Result. The channel must deliver at most once and then close; closing
// without delivering marks the input abandoned and halts the worker.
type Engine[In, Out, E any] func(ctx context.Context,
	input verdict.Result[In, E]) <-chan verdict.Result[Out, E]

// DrainHandlers route the inputs a halting worker leaves behind. Each hook
// may deliver substitute Results on the out channel; collect that channel
// with a context that outlives the halt, or the drain itself blocks.
type DrainHandlers[In, Out, E any] struct {
	// OnHalt runs once per worker when it stops on a done context, with
	// whatever is still readable from the input channel.
	OnHalt func(ctx context.Context, inputCh <-chan verdict.Result[In, E],
		outCh chan<- verdict.Result[Out, E])
	// OnUnprocessed runs for an input picked up but never processed, either
	// because the context ended first or because the engine abandoned it.
	OnUnprocessed func(ctx context.Context, unprocessed verdict.Result[In, E],
		outCh chan<- verdict.Result[Out, E])
	// OnProcessed runs for an input whose processed Result could no longer
	// be delivered.
	OnProcessed func(ctx context.Context, in verdict.Result[In, E],
		processed verdict.Result[Out, E], outCh chan<- verdict.Result[Out, E])
}

func worker[In, Out, E any](ctx context.Context, inputCh <-chan verdict.Result[In, E],
	outCh chan<- verdict.Result[Out, E], engine Engine[In, Out, E],
	handlers DrainHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out verdict.Result[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnHalt != nil {
				handlers.OnHalt(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnUnprocessed != nil {
					handlers.OnUnprocessed(ctx, in, outCh)
				}
				if handlers.OnHalt != nil {
					handlers.OnHalt(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					// the engine abandoned the input, treat it like a halt
					if handlers.OnUnprocessed != nil {
						handlers.OnUnprocessed(ctx, in, outCh)
					}
					if handlers.OnHalt != nil {
						handlers.OnHalt(ctx, inputCh, outCh)
					}
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnProcessed != nil {
						handlers.OnProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnHalt != nil {
						handlers.OnHalt(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}

// Run fans engine out over workers without changing the value type. The
// returned channel closes when every worker has stopped.
func Run[T, E any](ctx context.Context, inputCh <-chan verdict.Result[T, E],
	engine Engine[T, T, E], workers int) <-chan verdict.Result[T, E] {
	return ThroughWith(ctx, inputCh, engine, DrainHandlers[T, T, E]{}, nil, workers)
}

// Through fans engine out over workers, changing the value type from In to
// Out. The returned channel closes when every worker has stopped.
func Through[In, Out, E any](ctx context.Context, inputCh <-chan verdict.Result[In, E],
	engine Engine[In, Out, E], workers int) <-chan verdict.Result[Out, E] {
	return ThroughWith(ctx, inputCh, engine, DrainHandlers[In, Out, E]{}, nil, workers)
}

// RunWith is Run with drain handlers and a per-delivery hook.
func RunWith[T, E any](ctx context.Context, inputCh <-chan verdict.Result[T, E],
	engine Engine[T, T, E], handlers DrainHandlers[T, T, E],
	onDelivered func(ctx context.Context, out verdict.Result[T, E]),
	workers int) <-chan verdict.Result[T, E] {
	return ThroughWith(ctx, inputCh, engine, handlers, onDelivered, workers)
}

// ThroughWith is Through with drain handlers and a per-delivery hook.
func ThroughWith[In, Out, E any](ctx context.Context, inputCh <-chan verdict.Result[In, E],
	engine Engine[In, Out, E], handlers DrainHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out verdict.Result[Out, E]),
	workers int) <-chan verdict.Result[Out, E] {

	out := make(chan verdict.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker(ctx, inputCh, out, engine, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Lift turns a step returning a Result into an Engine. Failure inputs pass
// through without invoking the step.
func Lift[In, Out, E any](step func(ctx context.Context, in In) verdict.Result[Out, E]) Engine[In, Out, E] {
	return func(ctx context.Context, input verdict.Result[In, E]) <-chan verdict.Result[Out, E] {
		// buffered so an abandoned engine result never blocks the sender
		out := make(chan verdict.Result[Out, E], 1)

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}
			out <- pipe.AndThen(input, func(v In) verdict.Result[Out, E] {
				return step(ctx, v)
			})
		}()

		return out
	}
}

// LiftTransform turns a plain value transformation into an Engine. Failure
// inputs pass through without invoking transform.
func LiftTransform[In, Out, E any](transform func(ctx context.Context, in In) Out) Engine[In, Out, E] {
	return func(ctx context.Context, input verdict.Result[In, E]) <-chan verdict.Result[Out, E] {
		out := make(chan verdict.Result[Out, E], 1)

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}
			out <- pipe.Transform(input, func(v In) Out {
				return transform(ctx, v)
			})
		}()

		return out
	}
}

// FinalizeHandlers collapse each Result into a plain value. Both hooks must
// be set.
type FinalizeHandlers[In, E, Out any] struct {
	OnSuccess func(ctx context.Context, v In) Out
	OnFailure func(ctx context.Context, e E) Out
}

// Finalize reads Results from inputCh and delivers the collapsed value of
// each. The returned channel closes when inputCh closes or ctx is done.
func Finalize[In, E, Out any](ctx context.Context, inputCh <-chan verdict.Result[In, E],
	handlers FinalizeHandlers[In, E, Out],
	onDelivered func(ctx context.Context, out Out)) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := pipe.Finally(in,
					func(v In) Out { return handlers.OnSuccess(ctx, v) },
					func(e E) Out { return handlers.OnFailure(ctx, e) })

				select {
				case <-ctx.Done():
					return
				case out <- res:
					if onDelivered != nil {
						onDelivered(ctx, res)
					}
				}
			}
		}
	}()

	return out
}
