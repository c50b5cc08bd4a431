// Package pipe contains single-value, synchronous combinators over
// Result[T, E]. These functions are the core building blocks for
// failure-aware pipelines without channels.
//
// Key operations:
// - AndThen: sequence into a function returning a new Result
// - OrElse: recover from a failure into a new Result
// - Transform/TransformError: map the value in the active slot
// - Try: call a function (Out, error) and convert the error to a failure
// - Validate: fail a success that does not satisfy a predicate
// - Tap/TapError: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Collect: gather many Results into one
package pipe
