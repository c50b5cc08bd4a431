package stream

import "context"

type OptionKey string

const (
	DrainOptionKey  OptionKey = "drain_options"
	WorkerOptionKey OptionKey = "worker_options"
)

type WorkerOptions struct {
	MaxCount int
}

type DrainOptions struct {
	DrainRemaining bool
}

// WithDrainOptions controls whether halted workers hand remaining inputs to
// their drain handlers.
func WithDrainOptions(ctx context.Context, drainRemaining bool) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{DrainRemaining: drainRemaining})
}

// WithWorkerOptions carries the worker fan-out width on the context.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

// GetWorkerMaxCount reads the fan-out width carried by ctx, falling back to
// defaultMaxWorkers.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

// IsDrainRemainingEnabled reads the drain flag carried by ctx, falling back
// to defaultDrainRemaining.
func IsDrainRemainingEnabled(ctx context.Context, defaultDrainRemaining bool) bool {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.DrainRemaining
	}
	return defaultDrainRemaining
}
