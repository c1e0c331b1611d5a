// Package collect provides small collection helpers for fallible
// value production.
//
// Highlights:
// - ToMap: build an ordered mapping from keys and a possibly-failing
//   value function, short-circuiting on the first failure
// - OrderedMap: the read-only, insertion-ordered result
package collect
