package fault

import (
	"github.com/verdict-io/verdict/pkg/verdict"
)

// Tag is the stable discriminant of a fault variant.
type Tag string

// Fault is a structured error variant: an error carrying a stable tag plus
// its own contextual fields. Concrete variants are plain structs defined by
// the consuming domain.
type Fault interface {
	error
	Tag() Tag
}

// Union holds at most one active fault variant. The zero Union is valueless;
// it is only observed when a union was never constructed properly, and
// dispatching it is fatal.
type Union struct {
	fault Fault
}

var _ Fault = Union{}

// Wrap boxes f into a Union. Wrapping a Union returns it unchanged rather
// than nesting. A nil f, including a typed nil variant pointer, yields the
// valueless zero Union.
func Wrap(f Fault) Union {
	if u, ok := f.(Union); ok {
		return u
	}
	if verdict.IsNil(f) {
		return Union{}
	}
	return Union{fault: f}
}

// Active reports whether the union holds a variant.
func (u Union) Active() bool {
	return u.fault != nil
}

// Tag returns the active variant's tag. Panics with CorruptedUnionState
// when the union is valueless.
func (u Union) Tag() Tag {
	if u.fault == nil {
		verdict.Violate(verdict.CorruptedUnionState, "fault.Union.Tag", "no active variant")
	}
	return u.fault.Tag()
}

// Variant returns the active fault. Panics with CorruptedUnionState when
// the union is valueless.
func (u Union) Variant() Fault {
	if u.fault == nil {
		verdict.Violate(verdict.CorruptedUnionState, "fault.Union.Variant", "no active variant")
	}
	return u.fault
}

// Error renders the active variant's message. A valueless union renders a
// fixed marker instead of panicking so diagnostics can always print it.
func (u Union) Error() string {
	if u.fault == nil {
		return "fault: no active variant"
	}
	return u.fault.Error()
}

// Unwrap exposes the active variant to errors.Is and errors.As traversal.
func (u Union) Unwrap() error {
	if u.fault == nil {
		return nil
	}
	return u.fault
}
