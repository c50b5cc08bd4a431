package fault

import (
	"fmt"
	"slices"
	"strings"

	"github.com/verdict-io/verdict/pkg/verdict"
)

// Handler consumes a fault variant and produces an R.
type Handler[R any] func(f Fault) R

// HandlerMap binds variant tags to handlers.
type HandlerMap[R any] map[Tag]Handler[R]

// On adapts a function over one concrete variant type into a Handler. A
// dispatcher only invokes a handler with the variant registered under its
// tag, so a failing assertion means the registration bound a tag to the
// wrong variant type; that misuse panics with InvalidStateAccess.
func On[V Fault, R any](fn func(v V) R) Handler[R] {
	return func(f Fault) R {
		v, ok := f.(V)
		if !ok {
			verdict.Violate(verdict.InvalidStateAccess, "fault.On",
				fmt.Sprintf("handler bound to %T received %T", v, f))
		}
		return fn(v)
	}
}

// CoverageError reports a handler registration that does not line up with
// its schema. Missing lists schema variants without a handler, Unknown
// lists handler tags outside the closed set.
type CoverageError struct {
	Missing []Tag
	Unknown []Tag
}

var _ error = (*CoverageError)(nil)

func (e *CoverageError) Error() string {
	switch {
	case len(e.Missing) > 0 && len(e.Unknown) > 0:
		return fmt.Sprintf("fault: handlers missing for [%s], registered for unknown tags [%s]",
			joinTags(e.Missing), joinTags(e.Unknown))
	case len(e.Missing) > 0:
		return fmt.Sprintf("fault: handlers missing for [%s]", joinTags(e.Missing))
	case len(e.Unknown) > 0:
		return fmt.Sprintf("fault: handlers registered for unknown tags [%s]", joinTags(e.Unknown))
	}
	return "fault: incomplete handler coverage"
}

func joinTags(tags []Tag) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = string(tag)
	}
	return strings.Join(parts, ", ")
}

// Dispatcher routes a union's active variant to exactly one handler.
// Coverage of the full schema is checked once, at construction.
type Dispatcher[R any] struct {
	schema   Schema
	handlers HandlerMap[R]
}

// NewDispatcher builds a dispatcher over schema. It fails with a
// *CoverageError when any schema variant lacks a handler or a handler names
// a tag outside the closed set; there is no fallback handler.
func NewDispatcher[R any](schema Schema, handlers HandlerMap[R]) (*Dispatcher[R], error) {
	if schema.Len() == 0 {
		return nil, ErrEmptySchema
	}

	var missing []Tag
	for _, tag := range schema.tags {
		if handlers[tag] == nil {
			missing = append(missing, tag)
		}
	}

	var unknown []Tag
	for tag := range handlers {
		if !schema.Contains(tag) {
			unknown = append(unknown, tag)
		}
	}
	// map iteration order is random; keep the report stable
	slices.Sort(unknown)

	if len(missing) > 0 || len(unknown) > 0 {
		return nil, &CoverageError{Missing: missing, Unknown: unknown}
	}

	own := make(HandlerMap[R], len(handlers))
	for tag, h := range handlers {
		own[tag] = h
	}
	return &Dispatcher[R]{schema: schema, handlers: own}, nil
}

// MustDispatcher is NewDispatcher for wiring code; it panics on incomplete
// coverage.
func MustDispatcher[R any](schema Schema, handlers HandlerMap[R]) *Dispatcher[R] {
	d, err := NewDispatcher(schema, handlers)
	if err != nil {
		panic(err)
	}
	return d
}

// Schema returns the closed set this dispatcher covers.
func (d *Dispatcher[R]) Schema() Schema {
	return d.schema
}

// Dispatch routes the active variant of u to its handler and returns the
// handler's result. Exactly one handler runs. Panics with
// CorruptedUnionState when u is valueless or its tag escaped the closed set.
func (d *Dispatcher[R]) Dispatch(u Union) R {
	if !u.Active() {
		verdict.Violate(verdict.CorruptedUnionState, "fault.Dispatcher.Dispatch", "no active variant")
	}

	tag := u.Tag()
	h, ok := d.handlers[tag]
	if !ok {
		verdict.Violate(verdict.CorruptedUnionState, "fault.Dispatcher.Dispatch",
			fmt.Sprintf("tag %q outside the closed set", tag))
	}
	return h(u.Variant())
}

// DispatchFailure routes the failure value of r through d. For a success r
// it returns the zero R and false without invoking any handler.
func DispatchFailure[T, R any](d *Dispatcher[R], r verdict.Result[T, Union]) (R, bool) {
	if !r.IsFailure() {
		var zero R
		return zero, false
	}
	return d.Dispatch(r.Err()), true
}
