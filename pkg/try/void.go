package try

import (
	"fmt"
	"reflect"
)

// Void is the value-less counterpart of Try: either a success with no
// payload, or a failure holding a cause. The capturing-mode rules of
// Try apply unchanged.
type Void struct {
	cause    error
	catchAll bool
}

// VoidSuccess returns a selective value-less success.
func VoidSuccess() Void {
	return Void{}
}

// VoidFail returns a selective value-less failure holding cause.
// Panics on nil cause.
func VoidFail(cause error) Void {
	return voidFail(cause, false)
}

// Run invokes f and captures its outcome: a success if f returns nil,
// a failure holding the returned error otherwise. A panic raised by f
// unwinds unchanged.
func Run(f func() error) Void {
	if err := f(); err != nil {
		return voidFail(err, false)
	}
	return Void{}
}

// RunSafe is Run in catch-all mode: a panic raised by f is recovered
// into a *Recovered cause.
func RunSafe(f func() error) Void {
	if err := capture(true, f); err != nil {
		return voidFail(err, true)
	}
	return Void{catchAll: true}
}

func voidFail(cause error, catchAll bool) Void {
	if IsNil(cause) {
		panic("try: failure requires a cause")
	}
	return Void{cause: cause, catchAll: catchAll}
}

// IsSuccess returns true iff this instance holds no cause.
func (v Void) IsSuccess() bool {
	return v.cause == nil
}

// IsFailure returns true iff this instance holds a cause.
func (v Void) IsFailure() bool {
	return v.cause != nil
}

// Err returns the held cause, or nil on a success.
func (v Void) Err() error {
	return v.cause
}

// Check returns the cause on a failure, nil on a success.
func (v Void) Check() error {
	return v.cause
}

// CheckMapped returns nil on a success; on a failure it returns
// transform applied to the cause. The transform must not return nil.
func (v Void) CheckMapped(transform func(error) error) error {
	if v.cause == nil {
		return nil
	}
	return transform(v.cause)
}

// IfFailed invokes consumer with the cause iff this instance is a
// failure, returning the consumer's own error; on a success it does
// nothing and returns nil.
func (v Void) IfFailed(consumer func(error) error) error {
	if v.cause == nil {
		return nil
	}
	return consumer(v.cause)
}

// AndRun runs runnable iff this instance is a success, capturing a
// declared failure of the runnable; on an existing failure the
// runnable is not run and this instance is returned.
func (v Void) AndRun(runnable func() error) Void {
	if v.cause != nil {
		return v
	}
	return v.rerun(runnable)
}

// Or runs runnable iff this instance is a failure, so a failed Void
// can be recovered by a second attempt; on a success the runnable is
// not run and this instance is returned.
func (v Void) Or(runnable func() error) Void {
	if v.cause == nil {
		return v
	}
	return v.rerun(runnable)
}

func (v Void) rerun(f func() error) Void {
	if err := capture(v.catchAll, f); err != nil {
		return voidFail(err, v.catchAll)
	}
	return Void{catchAll: v.catchAll}
}

// Equal reports whether both instances have the same capturing mode
// and are both successes, or both failures holding equal causes.
func (v Void) Equal(o Void) bool {
	if v.catchAll != o.catchAll {
		return false
	}
	return reflect.DeepEqual(v.cause, o.cause)
}

func (v Void) String() string {
	if v.cause == nil {
		return "TryVoid{success}"
	}
	return fmt.Sprintf("TryVoid{cause=%v}", v.cause)
}
