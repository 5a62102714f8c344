// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chain provides persistent, lazily expanded singly linked lists.
//
// The core type [Chain] unifies three sequence representations behind one
// node type: an eager cons list, a list drawn on demand from an external
// [Producer], and a list computed on demand by a [Deferred] function that
// returns another chain. Nodes expand in place the first time they are
// needed and never change afterwards, so chains can share tails freely and
// can represent very large or infinite sequences.
//
// # Design Philosophy
//
// chain provides:
//   - Three primitives, [Chain.Force], [Chain.Head] and [Chain.Tail], on which
//     every other operation is built
//   - Exactly-once expansion: a producer value or a deferred computation is
//     consumed once per node, and the result is memoized in the node
//   - A trampolined forcing loop: recursive lazy definitions never consume
//     call stack proportional to how far the chain has been forced
//
// # Node States
//
// A node is in one of four states. Two are unexpanded (drawn from a
// producer, or computed by a deferred function) and two are expanded (the
// end of the sequence, or a value followed by a successor node). Forcing
// moves a node from an unexpanded state to an expanded one, in place, so
// every chain holding the node sees the same result. [Chain.IsExpanded] and
// [Chain.ExpandedDepth] inspect the states without forcing.
//
// # Construction
//
// Expanded:
//
//   - [Empty]: The shared empty chain of an element type
//   - [Cons], [Chain.Cons]: Prepend a value; O(1), never forces
//   - [Of]: Chain of the given values
//   - [Collect]: Chain of the values of an [iter.Seq], independent of it
//
// Unexpanded:
//
//   - [FromProducer]: Chain over a [Producer]
//   - [FromSlice]: Chain reading a slice on demand
//   - [FromSeq]: Chain over an [iter.Seq], advanced through [Pull]
//   - [FromChan]: Chain over a channel, ending when it closes or a
//     [context.Context] is done
//   - [Deferred]: Chain computed by a function returning a chain
//
// Producers:
//
//   - [Producer]: Pull-based source of values
//   - [ProducerFunc]: Function adapter
//   - [NoItems]: The canonical exhausted producer
//   - [Pull]: Producer over an [iter.Seq]
//   - [Lines]: Producer of the lines of an [io.Reader]
//
// # Access
//
//   - [Chain.Force]: Expand the front node; report non-emptiness
//   - [Chain.Head], [Chain.Tail]: First value and the rest (panic with [ErrEmpty])
//   - [Chain.Uncons]: Both at once, with an ok flag
//   - [Chain.At]: Value at a position, negative positions counting from the end
//   - [Chain.Take], [Chain.Drop]: Bounded prefix and suffix
//
// # Derived Operations
//
//   - [Chain.IsEmpty], [Chain.Len]
//   - [Chain.LenAtLeast], [Chain.LenMoreThan], [Chain.LenAtMost],
//     [Chain.LenLessThan]: Bounded length checks that force only what they need
//   - [Contains], [Chain.ContainsFunc]: Membership
//   - [Chain.Expand]: Force the whole chain
//   - [Chain.Concat], [Chain.ConcatProducer], [Chain.ConcatSeq]: Concatenation
//   - [Map], [Filter], [Zip], [ZipStrict]: Lazy transformations
//   - [Chain.All], [Chain.Slice], [Chain.Cursor]: Iteration
//
// Len, Expand, Slice, Concat and negative positions in At walk the whole
// chain and do not return on an infinite one. That is the caller's
// responsibility; nothing guards against it.
//
// # Recursive Definitions
//
// A deferred function may build its result from further deferred chains,
// including ones defined in terms of itself. The lazy sieve of
// Eratosthenes, for example:
//
//	var sieve func(c *chain.Chain[int]) *chain.Chain[int]
//	sieve = func(c *chain.Chain[int]) *chain.Chain[int] {
//		return chain.Deferred(func() *chain.Chain[int] {
//			p, rest, ok := c.Uncons()
//			if !ok {
//				return chain.Empty[int]()
//			}
//			return chain.Cons(p, sieve(chain.Filter(rest, func(n int) bool {
//				return n%p != 0
//			})))
//		})
//	}
//	primes := sieve(chain.FromSeq(naturalsFrom(2)))
//	primes.Take(5) // [2 3 5 7 11]
//
// A deferred function that needs the very node it is computing panics with
// [ErrCycle] rather than looping.
//
// # Concurrency
//
// Chains are not safe for concurrent use. Forcing is the only mutation, and
// after a node is forced it is read-only, but two goroutines forcing the same
// unexpanded node race. Guard shared chains with a mutex, or expand them
// with [Chain.Expand] before sharing.
package chain
