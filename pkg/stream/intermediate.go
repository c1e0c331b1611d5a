package stream

import (
	"cmp"
	"slices"
)

// Intermediate operations. Each returns a new lazy Stream over the
// same pipeline; no callback runs until a terminal operation drives
// it. A declared failure of any callback stops the pipeline and
// surfaces from the terminal operation.

// Map transforms each element using mapper.
func Map[In, Out any](s Stream[In], mapper func(In) (Out, error)) Stream[Out] {
	return newStream(func(yield func(Out) bool) {
		for in := range s.seq {
			out, err := mapper(in)
			if err != nil {
				s.sink.fail(err)
				return
			}
			if !yield(out) {
				return
			}
		}
	}, s.sink)
}

// FlatMap transforms each element into a slice of output elements,
// emitted in order.
func FlatMap[In, Out any](s Stream[In], mapper func(In) ([]Out, error)) Stream[Out] {
	return newStream(func(yield func(Out) bool) {
		for in := range s.seq {
			outs, err := mapper(in)
			if err != nil {
				s.sink.fail(err)
				return
			}
			for _, out := range outs {
				if !yield(out) {
					return
				}
			}
		}
	}, s.sink)
}

// Distinct yields each value once, keeping the first occurrence.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return s.derive(func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for in := range s.seq {
			if _, dup := seen[in]; dup {
				continue
			}
			seen[in] = struct{}{}
			if !yield(in) {
				return
			}
		}
	})
}

// Sorted yields the elements in ascending natural order. The whole
// upstream is buffered when evaluation reaches this stage.
func Sorted[T cmp.Ordered](s Stream[T]) Stream[T] {
	return s.derive(func(yield func(T) bool) {
		buf := slices.Collect(s.seq)
		if s.sink.err != nil {
			return
		}
		slices.Sort(buf)
		for _, in := range buf {
			if !yield(in) {
				return
			}
		}
	})
}

// SortedBy is Sorted with an explicit comparator, which may itself
// declare a failure.
func (s Stream[T]) SortedBy(compare func(a, b T) (int, error)) Stream[T] {
	return s.derive(func(yield func(T) bool) {
		buf := slices.Collect(s.seq)
		if s.sink.err != nil {
			return
		}
		slices.SortFunc(buf, func(a, b T) int {
			if s.sink.err != nil {
				return 0
			}
			c, err := compare(a, b)
			if err != nil {
				s.sink.fail(err)
				return 0
			}
			return c
		})
		if s.sink.err != nil {
			return
		}
		for _, in := range buf {
			if !yield(in) {
				return
			}
		}
	})
}

// Filter yields only the elements for which predicate returns true.
func (s Stream[T]) Filter(predicate func(T) (bool, error)) Stream[T] {
	return s.derive(func(yield func(T) bool) {
		for in := range s.seq {
			keep, err := predicate(in)
			if err != nil {
				s.sink.fail(err)
				return
			}
			if keep && !yield(in) {
				return
			}
		}
	})
}

// DropWhile discards elements until predicate first returns false,
// then yields everything that remains.
func (s Stream[T]) DropWhile(predicate func(T) (bool, error)) Stream[T] {
	return s.derive(func(yield func(T) bool) {
		dropping := true
		for in := range s.seq {
			if dropping {
				drop, err := predicate(in)
				if err != nil {
					s.sink.fail(err)
					return
				}
				if drop {
					continue
				}
				dropping = false
			}
			if !yield(in) {
				return
			}
		}
	})
}

// TakeWhile yields elements until predicate first returns false.
func (s Stream[T]) TakeWhile(predicate func(T) (bool, error)) Stream[T] {
	return s.derive(func(yield func(T) bool) {
		for in := range s.seq {
			take, err := predicate(in)
			if err != nil {
				s.sink.fail(err)
				return
			}
			if !take {
				return
			}
			if !yield(in) {
				return
			}
		}
	})
}

// Limit yields at most n elements. Panics if n is negative.
func (s Stream[T]) Limit(n int) Stream[T] {
	if n < 0 {
		panic("stream.Limit: n must not be negative")
	}
	return s.derive(func(yield func(T) bool) {
		left := n
		if left == 0 {
			return
		}
		for in := range s.seq {
			if !yield(in) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	})
}

// Skip discards the first n elements. Panics if n is negative.
func (s Stream[T]) Skip(n int) Stream[T] {
	if n < 0 {
		panic("stream.Skip: n must not be negative")
	}
	return s.derive(func(yield func(T) bool) {
		left := n
		for in := range s.seq {
			if left > 0 {
				left--
				continue
			}
			if !yield(in) {
				return
			}
		}
	})
}

// Peek invokes action on each element as it flows past, unchanged.
func (s Stream[T]) Peek(action func(T) error) Stream[T] {
	return s.derive(func(yield func(T) bool) {
		for in := range s.seq {
			if err := action(in); err != nil {
				s.sink.fail(err)
				return
			}
			if !yield(in) {
				return
			}
		}
	})
}
