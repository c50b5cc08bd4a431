package pipe

import (
	"github.com/verdict-io/verdict/pkg/verdict"
)

// AndThen invokes f with the success value of input and returns f's result
// unchanged. A failure input passes through without invoking f, carrying the
// same failure value and provenance.
func AndThen[In, Out, E any](input verdict.Result[In, E],
	f func(in In) verdict.Result[Out, E]) verdict.Result[Out, E] {

	if input.IsSuccess() {
		return f(input.Value())
	}
	return verdict.FailFrom[Out](input)
}

// OrElse invokes f with the failure value of input and returns f's result
// unchanged. A success input passes through without invoking f.
func OrElse[T, EIn, EOut any](input verdict.Result[T, EIn],
	f func(e EIn) verdict.Result[T, EOut]) verdict.Result[T, EOut] {

	if input.IsFailure() {
		return f(input.Err())
	}
	return verdict.SuccessFrom[EOut](input)
}

// Transform maps the success value of input through f. A failure input
// passes through with its failure value untouched.
func Transform[In, Out, E any](input verdict.Result[In, E],
	f func(in In) Out) verdict.Result[Out, E] {

	if input.IsSuccess() {
		return verdict.DeriveSuccess(input, f(input.Value()))
	}
	return verdict.FailFrom[Out](input)
}

// TransformError maps the failure value of input through f. A success input
// passes through with its value untouched.
func TransformError[T, EIn, EOut any](input verdict.Result[T, EIn],
	f func(e EIn) EOut) verdict.Result[T, EOut] {

	if input.IsFailure() {
		return verdict.DeriveFailure(input, f(input.Err()))
	}
	return verdict.SuccessFrom[EOut](input)
}

// Try invokes f with the success value of input and converts its
// (value, error) return into a Result, mapping a non-nil error through wrap
// into the typed failure value.
func Try[In, Out, E any](input verdict.Result[In, E],
	f func(in In) (Out, error),
	wrap func(err error) E) verdict.Result[Out, E] {

	if input.IsSuccess() {
		out, err := f(input.Value())
		if err != nil {
			return verdict.Fail[Out](wrap(err))
		}
		return verdict.Success[Out, E](out)
	}
	return verdict.FailFrom[Out](input)
}

// Validate keeps a success input when valid holds for its value, otherwise
// fails with the failure built by onInvalid. A failure input passes through.
func Validate[T, E any](input verdict.Result[T, E],
	valid func(in T) bool,
	onInvalid func(in T) E) verdict.Result[T, E] {

	if input.IsSuccess() && !valid(input.Value()) {
		return verdict.Fail[T](onInvalid(input.Value()))
	}
	return input
}

// Tap runs onSuccess for its side effect when input is a success and returns
// input unchanged.
func Tap[T, E any](input verdict.Result[T, E],
	onSuccess func(v T)) verdict.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

// TapError runs onFailure for its side effect when input is a failure and
// returns input unchanged.
func TapError[T, E any](input verdict.Result[T, E],
	onFailure func(e E)) verdict.Result[T, E] {

	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

// Finally collapses a Result into a plain value through one of the two
// handlers. Exactly one handler runs.
func Finally[T, E, Out any](input verdict.Result[T, E],
	onSuccess func(v T) Out,
	onFailure func(e E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}

// Collect folds results into a single Result carrying every success value in
// order. The first failure wins and passes through by identity; later
// results are not inspected.
func Collect[T, E any](results []verdict.Result[T, E]) verdict.Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return verdict.FailFrom[[]T](r)
		}
		values = append(values, r.Value())
	}
	return verdict.Success[[]T, E](values)
}
