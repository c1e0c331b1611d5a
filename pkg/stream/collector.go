package stream

// Collector bundles the three pieces of a reusable accumulation
// recipe: New builds an empty accumulator, Add folds one element in,
// Finish converts the accumulator into the final value.
type Collector[In, Acc, Out any] struct {
	New    func() Acc
	Add    func(Acc, In) Acc
	Finish func(Acc) Out
}

// CollectWith drives the pipeline through the given collector.
func CollectWith[In, Acc, Out any](s Stream[In], c Collector[In, Acc, Out]) (Out, error) {
	s.begin()
	acc := c.New()
	for v := range s.seq {
		acc = c.Add(acc, v)
	}
	if err := s.failed(); err != nil {
		var zero Out
		return zero, err
	}
	return c.Finish(acc), nil
}

// GroupingBy returns a collector that groups elements by the given
// key, preserving encounter order within each group.
func GroupingBy[In any, K comparable](key func(In) K) Collector[In, map[K][]In, map[K][]In] {
	return Collector[In, map[K][]In, map[K][]In]{
		New: func() map[K][]In {
			return make(map[K][]In)
		},
		Add: func(acc map[K][]In, in In) map[K][]In {
			k := key(in)
			acc[k] = append(acc[k], in)
			return acc
		},
		Finish: func(acc map[K][]In) map[K][]In {
			return acc
		},
	}
}
