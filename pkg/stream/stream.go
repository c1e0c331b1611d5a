package stream

import (
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/oliviercailloux/trygo/pkg/stream/internal/seqx"
)

// sink is the failure slot shared by every stage of one pipeline.
// Wrapped callbacks record the first declared failure here and stop
// the yield chain; every terminal operation reads it back after the
// drive loop, so a failure always surfaces typed as error at the
// pipeline boundary and never as an opaque in-band value.
type sink struct {
	err      error
	consumed bool
}

func (s *sink) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Stream is a lazily evaluated sequence whose stage callbacks may
// declare failures through an error return. Intermediate operations
// return a new Stream without evaluating anything; exactly one
// terminal operation drives the pipeline and returns either a plain
// value or the first declared failure.
//
// A Stream owns its pipeline exclusively and is single-use: invoking
// a second terminal operation on any stream of the same pipeline
// panics.
type Stream[T any] struct {
	seq       iter.Seq[T]
	sink      *sink
	id        uuid.UUID
	createdAt time.Time
}

func newStream[T any](seq iter.Seq[T], s *sink) Stream[T] {
	return Stream[T]{
		seq:       seq,
		sink:      s,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Wrapping returns a stream over the given sequence. The sequence
// must not be iterated by anyone else afterwards.
func Wrapping[T any](seq iter.Seq[T]) Stream[T] {
	return newStream(seq, &sink{})
}

// From returns a stream over the items of the given slice, in order.
func From[T any](items []T) Stream[T] {
	return Wrapping(seqx.FromSlice(items))
}

// FromChan returns a stream over the values received from ch until it
// is closed.
func FromChan[T any](ch <-chan T) Stream[T] {
	return Wrapping(seqx.FromChan(ch))
}

// Generate returns an infinite, order-unspecified stream whose
// elements come from repeatedly invoking supplier. A declared failure
// of the supplier ends the stream and surfaces at the terminal
// operation. Combine with Limit or a short-circuiting terminal
// operation, or evaluation never completes.
func Generate[T any](supplier func() (T, error)) Stream[T] {
	s := &sink{}
	seq := func(yield func(T) bool) {
		for {
			v, err := supplier()
			if err != nil {
				s.fail(err)
				return
			}
			if !yield(v) {
				return
			}
		}
	}
	return newStream(seq, s)
}

// Id identifies this stage of the pipeline.
func (s Stream[T]) Id() uuid.UUID {
	return s.id
}

// CreatedAt time creation (UTC)
func (s Stream[T]) CreatedAt() time.Time {
	return s.createdAt
}

// derive builds the next stage over the same pipeline.
func (s Stream[T]) derive(seq iter.Seq[T]) Stream[T] {
	return newStream(seq, s.sink)
}

// begin marks the one permitted terminal evaluation.
func (s Stream[T]) begin() {
	if s.sink.consumed {
		panic("stream: already operated upon")
	}
	s.sink.consumed = true
}

// failed reports the first declared failure recorded while driving
// the pipeline.
func (s Stream[T]) failed() error {
	return s.sink.err
}
