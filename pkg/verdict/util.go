package verdict

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a typed nil pointer stored in
// a non-nil interface value.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// IsContextError reports whether err comes from context cancellation or an
// expired deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
