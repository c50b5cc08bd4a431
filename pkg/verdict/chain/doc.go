// Package chain provides a fluent wrapper around Result[T, E] for building
// synchronous pipelines out of pipe primitives.
//
// A Chain carries a context.Context so steps that call blocking
// collaborators receive one; the chain itself adds no cancellation
// behavior. Type-changing steps are free functions because methods cannot
// introduce type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or a value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and wrap the error into the failure type
// - Map/MapError: transform the success or failure value
// - Recover: turn a failure back into a live chain
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
