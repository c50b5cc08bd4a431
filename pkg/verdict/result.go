// Package verdict provides a two-state Result[T, E] value for explicit
// success/failure composition. A Result is immutable and is, after
// construction, exactly one of: success carrying a T, or failure carrying
// an E. Accessing the inactive slot is a usage error and panics with a
// *ContractViolation.
package verdict

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of
// type E. The zero Result is neither and is only useful as a placeholder;
// Value and Err panic on it.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	fail      E
	succeeded bool
	failed    bool
}

// Success constructs a success Result carrying v.
func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		succeeded: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail constructs a failure Result carrying e.
func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		fail:      e,
		failed:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failure Result to a new success type, carrying the
// failure value, id and creation time over unchanged. The failure value in
// the returned Result is the same value held by from. Panics with
// InvalidStateAccess when from is not a failure.
func FailFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	if !from.failed {
		Violate(InvalidStateAccess, "verdict.FailFrom", "source result is not a failure")
	}
	return Result[Out, E]{
		fail:      from.fail,
		failed:    true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom re-types a success Result to a new failure type, carrying the
// success value, id and creation time over unchanged. Panics with
// InvalidStateAccess when from is not a success.
func SuccessFrom[EOut any, T, EIn any](from Result[T, EIn]) Result[T, EOut] {
	if !from.succeeded {
		Violate(InvalidStateAccess, "verdict.SuccessFrom", "source result is not a success")
	}
	return Result[T, EOut]{
		value:     from.value,
		succeeded: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// DeriveSuccess constructs a success Result carrying v while keeping the id
// and creation time of from, so a value transformation does not break the
// provenance of the result it derives from. Panics with InvalidStateAccess
// when from is not a success.
func DeriveSuccess[Out, In, E any](from Result[In, E], v Out) Result[Out, E] {
	if !from.succeeded {
		Violate(InvalidStateAccess, "verdict.DeriveSuccess", "source result is not a success")
	}
	return Result[Out, E]{
		value:     v,
		succeeded: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// DeriveFailure constructs a failure Result carrying e while keeping the id
// and creation time of from. Panics with InvalidStateAccess when from is not
// a failure.
func DeriveFailure[EOut any, T, EIn any](from Result[T, EIn], e EOut) Result[T, EOut] {
	if !from.failed {
		Violate(InvalidStateAccess, "verdict.DeriveFailure", "source result is not a failure")
	}
	return Result[T, EOut]{
		fail:      e,
		failed:    true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value. Panics with InvalidStateAccess when the
// Result is not a success.
func (r Result[T, E]) Value() T {
	if !r.succeeded {
		Violate(InvalidStateAccess, "verdict.Result.Value", "value access on a non-success result")
	}
	return r.value
}

// Err returns the failure value. Panics with InvalidStateAccess when the
// Result is not a failure.
func (r Result[T, E]) Err() E {
	if !r.failed {
		Violate(InvalidStateAccess, "verdict.Result.Err", "error access on a non-failure result")
	}
	return r.fail
}

// ValueOr returns the success value, or def when the Result is not a
// success.
func (r Result[T, E]) ValueOr(def T) T {
	if r.succeeded {
		return r.value
	}
	return def
}

func (r Result[T, E]) IsSuccess() bool {
	return r.succeeded
}

func (r Result[T, E]) IsFailure() bool {
	return r.failed
}

// IsZero reports whether r is the zero Result, which is neither success
// nor failure.
func (r Result[T, E]) IsZero() bool {
	return !r.succeeded && !r.failed
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}
