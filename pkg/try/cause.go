package try

import (
	"errors"
	"fmt"
	"reflect"
)

// Recovered is the cause held by a catch-all failure whose attempted
// operation panicked instead of returning an error.
type Recovered struct {
	// Value is the value the operation panicked with.
	Value any
}

func (r *Recovered) Error() string {
	return fmt.Sprintf("recovered panic: %v", r.Value)
}

// IsNil reports whether i is absent: nil itself, or a nil pointer.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Causes flattens err into its component errors: the result of
// Unwrap() []error when err is a joined error, a singleton slice
// otherwise, and an empty slice for an absent error.
func Causes(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinCauses merges two failure causes into one, flattening already
// joined causes. Suitable as the merge argument of Try.Or.
func JoinCauses(cause, altCause error) error {
	return errors.Join(append(Causes(cause), Causes(altCause)...)...)
}

// capture runs f, converting a panic into a *Recovered cause when
// catchAll is set. Selective callers let the panic unwind.
func capture(catchAll bool, f func() error) (err error) {
	if catchAll {
		defer func() {
			if r := recover(); r != nil {
				err = &Recovered{Value: r}
			}
		}()
	}
	return f()
}

// captureGet is capture for value-returning callbacks.
func captureGet[T any](catchAll bool, f func() (T, error)) (v T, err error) {
	if catchAll {
		defer func() {
			if r := recover(); r != nil {
				err = &Recovered{Value: r}
			}
		}()
	}
	return f()
}
