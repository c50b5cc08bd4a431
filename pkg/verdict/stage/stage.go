package stage

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/verdict-io/verdict/pkg/verdict"
	"github.com/verdict-io/verdict/pkg/verdict/pipe"
)

// Func is a pipeline stage: a pure function from an input to a Result,
// aside from the external collaborators it reaches through ctx.
type Func[In, Out, E any] func(ctx context.Context, in In) verdict.Result[Out, E]

// Then sequences two stages. The second runs only on the first's success;
// a failure short-circuits and is the one observed at the end.
func Then[In, Mid, Out, E any](first Func[In, Mid, E],
	second Func[Mid, Out, E]) Func[In, Out, E] {

	return func(ctx context.Context, in In) verdict.Result[Out, E] {
		return pipe.AndThen(first(ctx, in), func(v Mid) verdict.Result[Out, E] {
			return second(ctx, v)
		})
	}
}

// Fallback runs primary and, when it fails, hands the original input and
// the failure value to alternative. A success passes through untouched.
func Fallback[In, Out, E any](primary Func[In, Out, E],
	alternative func(ctx context.Context, in In, e E) verdict.Result[Out, E]) Func[In, Out, E] {

	return func(ctx context.Context, in In) verdict.Result[Out, E] {
		return pipe.OrElse(primary(ctx, in), func(e E) verdict.Result[Out, E] {
			return alternative(ctx, in, e)
		})
	}
}

// Retry re-runs a failing stage up to attempts times in total and returns
// the first success or the last failure. Fewer than one attempt behaves as
// one. A done context stops further attempts.
func Retry[In, Out, E any](s Func[In, Out, E], attempts int) Func[In, Out, E] {
	return func(ctx context.Context, in In) verdict.Result[Out, E] {
		r := s(ctx, in)
		for i := 1; i < attempts; i++ {
			if r.IsSuccess() || ctx.Err() != nil {
				break
			}
			r = s(ctx, in)
		}
		return r
	}
}

// Throttled paces a stage behind limiter. The stage runs after a token is
// acquired; a wait error (done context, or a request beyond the limiter's
// burst) becomes a failure built by onWait.
func Throttled[In, Out, E any](s Func[In, Out, E], limiter *rate.Limiter,
	onWait func(err error) E) Func[In, Out, E] {

	return func(ctx context.Context, in In) verdict.Result[Out, E] {
		if err := limiter.Wait(ctx); err != nil {
			return verdict.Fail[Out](onWait(err))
		}
		return s(ctx, in)
	}
}
