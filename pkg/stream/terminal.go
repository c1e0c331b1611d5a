package stream

// Terminal operations. Each eagerly drives the pipeline, then returns
// either a plain value or the first declared failure raised by any
// stage callback. A stream supports exactly one terminal operation;
// a second panics.

// ToList accumulates the remaining elements into a slice, in
// encounter order.
func (s Stream[T]) ToList() ([]T, error) {
	s.begin()
	var out []T
	for v := range s.seq {
		out = append(out, v)
	}
	if err := s.failed(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of remaining elements.
func (s Stream[T]) Count() (int, error) {
	s.begin()
	n := 0
	for range s.seq {
		n++
	}
	if err := s.failed(); err != nil {
		return 0, err
	}
	return n, nil
}

// Fold reduces the elements starting from identity, applying op to
// the running value and each element in turn. The op must be
// associative: an engine splitting evaluation may combine partial
// results pairwise.
func (s Stream[T]) Fold(identity T, op func(T, T) (T, error)) (T, error) {
	s.begin()
	acc := identity
	for v := range s.seq {
		next, err := op(acc, v)
		if err != nil {
			s.sink.fail(err)
			break
		}
		acc = next
	}
	if err := s.failed(); err != nil {
		var zero T
		return zero, err
	}
	return acc, nil
}

// Reduce is Fold seeded with the first element. The second return is
// false iff the stream was empty. The op must be associative.
func (s Stream[T]) Reduce(op func(T, T) (T, error)) (T, bool, error) {
	s.begin()
	var acc T
	seeded := false
	for v := range s.seq {
		if !seeded {
			acc, seeded = v, true
			continue
		}
		next, err := op(acc, v)
		if err != nil {
			s.sink.fail(err)
			break
		}
		acc = next
	}
	if err := s.failed(); err != nil {
		var zero T
		return zero, false, err
	}
	return acc, seeded, nil
}

// Accumulate reduces the elements into an accumulator of a different
// type. The combine function merges two partial accumulators; it is
// only invoked by an engine that splits evaluation, so a sequential
// run never calls it, but it must still be a correct, associative
// merge for the accumulator type.
func Accumulate[In, Acc any](s Stream[In], identity Acc,
	accumulate func(Acc, In) (Acc, error),
	combine func(Acc, Acc) (Acc, error)) (Acc, error) {

	s.begin()
	acc := identity
	for v := range s.seq {
		next, err := accumulate(acc, v)
		if err != nil {
			s.sink.fail(err)
			break
		}
		acc = next
	}
	if err := s.failed(); err != nil {
		var zero Acc
		return zero, err
	}
	return acc, nil
}

// Collect accumulates the elements into a mutable container obtained
// from supplier. An engine that splits evaluation gives each worker
// its own container and merges them through combine; accumulate and
// combine must therefore not depend on sharing one container.
func Collect[In, R any](s Stream[In], supplier func() (R, error),
	accumulate func(R, In) error, combine func(R, R) error) (R, error) {

	s.begin()
	var zero R
	container, err := supplier()
	if err != nil {
		return zero, err
	}
	for v := range s.seq {
		if err := accumulate(container, v); err != nil {
			s.sink.fail(err)
			break
		}
	}
	if err := s.failed(); err != nil {
		return zero, err
	}
	return container, nil
}

// FindFirst returns the first element in encounter order, or false if
// the stream is empty. Short-circuits.
func (s Stream[T]) FindFirst() (T, bool, error) {
	s.begin()
	var found T
	ok := false
	for v := range s.seq {
		found, ok = v, true
		break
	}
	if err := s.failed(); err != nil {
		var zero T
		return zero, false, err
	}
	return found, ok, nil
}

// FindAny returns some element with no order guarantee, or false if
// the stream is empty. Short-circuits.
func (s Stream[T]) FindAny() (T, bool, error) {
	return s.FindFirst()
}

// ForEach invokes action on each element, with no order guarantee.
func (s Stream[T]) ForEach(action func(T) error) error {
	return s.ForEachOrdered(action)
}

// ForEachOrdered invokes action on each element in encounter order.
func (s Stream[T]) ForEachOrdered(action func(T) error) error {
	s.begin()
	for v := range s.seq {
		if err := action(v); err != nil {
			s.sink.fail(err)
			break
		}
	}
	return s.failed()
}

// AllMatch reports whether predicate holds for every element.
// Short-circuits on the first false.
func (s Stream[T]) AllMatch(predicate func(T) (bool, error)) (bool, error) {
	s.begin()
	all := true
	for v := range s.seq {
		ok, err := predicate(v)
		if err != nil {
			s.sink.fail(err)
			break
		}
		if !ok {
			all = false
			break
		}
	}
	if err := s.failed(); err != nil {
		return false, err
	}
	return all, nil
}

// AnyMatch reports whether predicate holds for at least one element.
// Short-circuits on the first true.
func (s Stream[T]) AnyMatch(predicate func(T) (bool, error)) (bool, error) {
	s.begin()
	found := false
	for v := range s.seq {
		ok, err := predicate(v)
		if err != nil {
			s.sink.fail(err)
			break
		}
		if ok {
			found = true
			break
		}
	}
	if err := s.failed(); err != nil {
		return false, err
	}
	return found, nil
}

// NoneMatch reports whether predicate holds for no element.
// Short-circuits on the first true.
func (s Stream[T]) NoneMatch(predicate func(T) (bool, error)) (bool, error) {
	any, err := s.AnyMatch(predicate)
	if err != nil {
		return false, err
	}
	return !any, nil
}

// Max returns the greatest element according to compare, or false if
// the stream is empty.
func (s Stream[T]) Max(compare func(a, b T) (int, error)) (T, bool, error) {
	s.begin()
	var best T
	ok := false
	for v := range s.seq {
		if !ok {
			best, ok = v, true
			continue
		}
		c, err := compare(best, v)
		if err != nil {
			s.sink.fail(err)
			break
		}
		if c < 0 {
			best = v
		}
	}
	if err := s.failed(); err != nil {
		var zero T
		return zero, false, err
	}
	return best, ok, nil
}

// Min returns the least element according to compare, or false if the
// stream is empty.
func (s Stream[T]) Min(compare func(a, b T) (int, error)) (T, bool, error) {
	s.begin()
	var best T
	ok := false
	for v := range s.seq {
		if !ok {
			best, ok = v, true
			continue
		}
		c, err := compare(best, v)
		if err != nil {
			s.sink.fail(err)
			break
		}
		if c > 0 {
			best = v
		}
	}
	if err := s.failed(); err != nil {
		var zero T
		return zero, false, err
	}
	return best, ok, nil
}
