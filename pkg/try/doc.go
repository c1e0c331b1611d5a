// Package try provides explicit, inspectable results for fallible
// operations: a Try[T] holds either a computed value or the error
// that prevented it, and a Void is its value-less counterpart.
// Combinators compose fallible steps without losing the cause.
//
// Declared failures are non-nil errors returned by callbacks; panics
// are defects and unwind unchanged, except through the catch-all
// constructors (AttemptSafe, RunSafe) which recover them into a
// *Recovered cause. The two capturing modes form distinct families:
// Equal never equates instances across modes.
//
// Highlights:
// - Success/Fail/Attempt/AttemptSafe: construct Try[T]
// - VoidSuccess/VoidFail/Run/RunSafe: construct Void
// - Get/GetMapped/OrMapCause/OrConsumeCause: collapse to a value
// - AndRun/AndConsume/Or: success-chaining and failure recovery
// - Map/And/FlatMap/AndGet/MapVoid: type-changing composition
// - JoinCauses: merge two failure causes for Or
package try
