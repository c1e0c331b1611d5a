// Package stream provides lazy sequence pipelines whose stage
// callbacks may declare failures, built over iter.Seq.
//
// A pipeline is a chain of intermediate operations ending in exactly
// one terminal operation. Intermediate operations are lazy: nothing
// runs until the terminal operation drives the pipeline. Every
// callback returns an error alongside its result; the first declared
// failure stops the pipeline and is returned by the terminal
// operation, so no failure is ever swallowed or converted into an
// in-band value. Panics in callbacks are defects and unwind
// unchanged.
//
// Highlights:
// - From/FromChan/Wrapping/Generate: create a Stream[T]
// - Map/FlatMap/Filter/Distinct/Sorted/SortedBy: transform lazily
// - DropWhile/TakeWhile/Limit/Skip/Peek: trim and observe lazily
// - ToList/Count/Fold/Reduce/Accumulate/Collect/CollectWith: drain
// - FindFirst/FindAny/AllMatch/AnyMatch/NoneMatch: short-circuit
// - ForEach/ForEachOrdered/Max/Min: consume every element
//
// A Stream is single-use: invoking a second terminal operation on any
// stage of the same pipeline panics. Generate produces an infinite
// stream; bound it with Limit or consume it with a short-circuiting
// terminal operation.
package stream
