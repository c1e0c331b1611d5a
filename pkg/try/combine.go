package try

// Combinators that introduce a new type parameter live here as
// package-level functions, since Go methods cannot declare one.

// Map applies exactly one of the two transformations, determined by
// the state of t: onSuccess to the result, or onFailure to the cause.
// Either transformation may declare its own failure, which becomes
// the error of the Map call itself.
func Map[In, Out any](t Try[In], onSuccess func(In) (Out, error),
	onFailure func(error) (Out, error)) (Out, error) {

	if t.isSuccess {
		return onSuccess(t.result)
	}
	return onFailure(t.cause)
}

// And merges two successes through merge, left-biased: if t is a
// failure it is returned recast without inspecting o, and if only o
// is a failure, o's cause is returned recast to the output type. A
// declared failure of merge becomes the error of the And call itself.
func And[In, Other, Out any](t Try[In], o Try[Other],
	merge func(In, Other) (Out, error)) (Try[Out], error) {

	if !t.isSuccess {
		return fail[Out](t.cause, t.catchAll), nil
	}
	if !o.isSuccess {
		return fail[Out](o.cause, t.catchAll), nil
	}
	v, err := merge(t.result, o.result)
	if err != nil {
		return Try[Out]{}, err
	}
	return success(v, t.catchAll), nil
}

// FlatMap applies mapper to the result iff t is a success, capturing
// a declared failure of the mapper as the returned failure; a failure
// is returned recast without invoking mapper.
func FlatMap[In, Out any](t Try[In], mapper func(In) (Out, error)) Try[Out] {
	if !t.isSuccess {
		return fail[Out](t.cause, t.catchAll)
	}
	run := func() (Out, error) { return mapper(t.result) }
	if t.catchAll {
		return AttemptSafe(run)
	}
	return Attempt(run)
}

// AndGet promotes a value-less success into a Try by attempting
// supplier; on a failure the supplier is not invoked and the cause is
// recast.
func AndGet[Out any](v Void, supplier func() (Out, error)) Try[Out] {
	if v.cause != nil {
		return fail[Out](v.cause, v.catchAll)
	}
	if v.catchAll {
		return AttemptSafe(supplier)
	}
	return Attempt(supplier)
}

// MapVoid invokes exactly one of the two callbacks, determined by the
// state of v: onSuccess, or onFailure with the cause. Either callback
// may declare its own failure, which becomes the error of the MapVoid
// call itself.
func MapVoid[Out any](v Void, onSuccess func() (Out, error),
	onFailure func(error) (Out, error)) (Out, error) {

	if v.cause == nil {
		return onSuccess()
	}
	return onFailure(v.cause)
}
