package verdict

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// FailureProvider is implemented by types that expose a typed failure value
type FailureProvider[E any] interface {
	// Err returns the failure value
	Err() E
}

// Outcome defines an interface for types that are exactly one of success
// or failure
type Outcome[T, E any] interface {
	ValueProvider[T]
	FailureProvider[E]
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ Outcome[int, error] = Result[int, error]{}
