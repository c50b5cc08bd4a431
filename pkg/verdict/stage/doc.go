// Package stage models context-aware pipeline steps and the connectors
// over them.
//
// A stage maps an input to a Result[Out, E] and receives a context for its
// external collaborators. Connectors compose stages without unwrapping
// control flow at each step.
//
// Key operations:
// - Then: sequence two stages, short-circuiting on failure
// - Fallback: route a failing stage's input and failure to an alternative
// - Retry: re-run a failing stage a bounded number of times
// - Throttled: pace a stage behind a rate limiter
package stage
