package try

import (
	"fmt"
	"reflect"
)

// Try is either a success holding a result of type T, or a failure
// holding a cause. Instances are immutable and are built by Success,
// Fail, Attempt or AttemptSafe, or derived through combinators.
//
// Each instance carries a capturing mode fixed at construction:
// selective instances (Success, Fail, Attempt) capture only declared
// failures, that is, non-nil errors returned by callbacks, and let
// panics unwind; catch-all instances (AttemptSafe, RunSafe) also
// recover panics into a *Recovered cause. Combinators preserve the
// mode of their receiver, and Equal never considers instances of
// different modes equal.
type Try[T any] struct {
	result    T
	cause     error
	isSuccess bool
	catchAll  bool
}

// Success returns a selective success holding r.
//
// Success panics if r is absent (a nil pointer or nil interface):
// a success must hold a result.
func Success[T any](r T) Try[T] {
	return success(r, false)
}

// Fail returns a selective failure holding cause. Panics on nil cause.
func Fail[T any](cause error) Try[T] {
	return fail[T](cause, false)
}

// Attempt invokes f and captures its outcome: a selective success
// holding the returned value, or a selective failure holding the
// returned error. A panic raised by f is a defect and unwinds
// unchanged.
func Attempt[T any](f func() (T, error)) Try[T] {
	v, err := f()
	if err != nil {
		return fail[T](err, false)
	}
	return success(v, false)
}

// AttemptSafe is Attempt in catch-all mode: a panic raised by f is
// recovered and becomes a failure with a *Recovered cause.
func AttemptSafe[T any](f func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = fail[T](&Recovered{Value: r}, true)
		}
	}()
	v, err := f()
	if err != nil {
		return fail[T](err, true)
	}
	return success(v, true)
}

func success[T any](r T, catchAll bool) Try[T] {
	if IsNil(r) {
		panic("try: success requires a present result")
	}
	return Try[T]{result: r, isSuccess: true, catchAll: catchAll}
}

func fail[T any](cause error, catchAll bool) Try[T] {
	if IsNil(cause) {
		panic("try: failure requires a cause")
	}
	return Try[T]{cause: cause, catchAll: catchAll}
}

// IsSuccess returns true iff this instance holds a result.
func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

// IsFailure returns true iff this instance holds a cause.
func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

// Result returns the held result, or the zero value on a failure.
func (t Try[T]) Result() T {
	return t.result
}

// Err returns the held cause, or nil on a success.
func (t Try[T]) Err() error {
	return t.cause
}

// Get returns the result on a success, or the cause on a failure.
func (t Try[T]) Get() (T, error) {
	return t.result, t.cause
}

// GetMapped returns the result on a success without invoking
// transform; on a failure it returns transform applied to the cause.
// The transform must not return nil.
func (t Try[T]) GetMapped(transform func(error) error) (T, error) {
	if t.isSuccess {
		return t.result, nil
	}
	var zero T
	return zero, transform(t.cause)
}

// OrMapCause returns the result on a success without invoking f; on a
// failure it returns the outcome of f applied to the cause, so f may
// recover with a substitute value or declare its own failure.
func (t Try[T]) OrMapCause(f func(error) (T, error)) (T, error) {
	if t.isSuccess {
		return t.result, nil
	}
	return f(t.cause)
}

// OrConsumeCause returns (result, true, nil) on a success without
// invoking consumer; on a failure it invokes consumer with the cause
// and returns the zero value, false, and the consumer's own error if
// any.
func (t Try[T]) OrConsumeCause(consumer func(error) error) (T, bool, error) {
	if t.isSuccess {
		return t.result, true, nil
	}
	var zero T
	return zero, false, consumer(t.cause)
}

// AndRun runs action iff this instance is a success. A declared
// failure of the action becomes the returned failure; otherwise this
// instance is returned unchanged.
func (t Try[T]) AndRun(action func() error) Try[T] {
	if !t.isSuccess {
		return t
	}
	if err := capture(t.catchAll, action); err != nil {
		return fail[T](err, t.catchAll)
	}
	return t
}

// AndConsume is AndRun with the success result passed to consumer.
func (t Try[T]) AndConsume(consumer func(T) error) Try[T] {
	return t.AndRun(func() error {
		return consumer(t.result)
	})
}

// Or returns this instance on a success. On a failure it attempts
// alt: if alt succeeds, its value is the returned success; if alt
// also fails, the returned failure holds merge applied to both causes
// in order. JoinCauses is a suitable merge.
func (t Try[T]) Or(alt func() (T, error), merge func(cause, altCause error) error) Try[T] {
	if t.isSuccess {
		return t
	}
	v, err := captureGet(t.catchAll, alt)
	if err == nil {
		return success(v, t.catchAll)
	}
	return fail[T](merge(t.cause, err), t.catchAll)
}

// Equal reports whether both instances have the same capturing mode
// and are both successes holding equal results, or both failures
// holding equal causes.
func (t Try[T]) Equal(o Try[T]) bool {
	if t.catchAll != o.catchAll || t.isSuccess != o.isSuccess {
		return false
	}
	if t.isSuccess {
		return reflect.DeepEqual(t.result, o.result)
	}
	return reflect.DeepEqual(t.cause, o.cause)
}

func (t Try[T]) String() string {
	if t.isSuccess {
		return fmt.Sprintf("Try{result=%v}", t.result)
	}
	return fmt.Sprintf("Try{cause=%v}", t.cause)
}
