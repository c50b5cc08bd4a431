// Package stream runs Result pipelines over channels with worker fan-out.
//
// Inputs enter as a channel of Results, workers drive an Engine per input,
// and outputs leave on a merged channel that closes when every worker
// stops. Cancellation is observed between items; a halting worker can hand
// unprocessed inputs to drain handlers instead of dropping them silently.
//
// Key constructs:
// - ToChanResults/FromChanMany/FromChanFirstOrDefault: channel boundaries
// - Lift/LiftTransform: turn step functions into Engines
// - Run/Through: fan an Engine out over workers (same/changing value type)
// - RunWith/ThroughWith: the same with drain handlers and a delivery hook
// - DrainAsFailures/DrainOneAsFailure: convert undrained inputs to failures
// - Finalize: collapse a Result channel into plain values
// - WithWorkerOptions/WithDrainOptions: context-carried tuning
package stream
