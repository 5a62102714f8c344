// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import (
	"iter"
	"slices"
	"sync"
)

// link is the state slot of a [Chain] node.
// States are told apart by type switches on the variant.
//
// The four variants are:
//   - *pendingProducer[T]: unexpanded, drawn from an external producer
//   - *deferred[T]: unexpanded, computed by a zero-argument function
//   - emptyLink: expanded, end of sequence
//   - *Chain[T]: expanded, the successor of a non-empty node
type link interface {
	link() // unexported marker method
}

// emptyLink marks an expanded node at the end of the sequence.
type emptyLink struct{}

func (emptyLink) link() {}

// pendingProducer marks an unexpanded node whose contents are drawn from src.
// Forcing hands it on to the new successor node, so one pendingProducer
// backs the whole unexpanded suffix of a producer-driven chain.
type pendingProducer[T any] struct {
	src Producer[T]
}

func (*pendingProducer[T]) link() {}

// next draws one value. The producer is released once it reports the end.
func (p *pendingProducer[T]) next() (T, bool) {
	if p.src == nil {
		var zero T
		return zero, false
	}
	v, ok := p.src.Next()
	if !ok {
		p.src = nil
	}
	return v, ok
}

// Chain is a node of a persistent, lazily expanded singly linked list.
// A *Chain[T] is both a node and the sequence that starts at it.
//
// A node is either unexpanded (its contents come from a [Producer] or a
// [Deferred] computation) or expanded (empty, or a head value followed by
// a successor node). Forcing moves a node from unexpanded to expanded
// exactly once, in place, so every chain that shares the node observes the
// same contents. Expanded nodes never change again.
//
// Chains are not safe for concurrent use: forcing mutates the node being
// forced, and two goroutines forcing the same unexpanded node race.
// Callers sharing a chain across goroutines must serialize access.
//
// The zero value is an empty chain.
type Chain[T any] struct {
	front T
	back  link
}

func (*Chain[T]) link() {}

// empties maps (*T)(nil) to the shared empty *Chain[T].
var empties sync.Map

// Empty returns the shared empty chain for element type T.
// Every construction path that knows its result is empty returns this value,
// so empty chains of the same type compare equal by identity.
func Empty[T any]() *Chain[T] {
	key := any((*T)(nil))
	if e, ok := empties.Load(key); ok {
		return e.(*Chain[T])
	}
	e, _ := empties.LoadOrStore(key, &Chain[T]{back: emptyLink{}})
	return e.(*Chain[T])
}

// Cons returns an expanded chain with v as its head and tail as its tail.
// Cons never forces tail. A nil tail is taken to be [Empty].
func Cons[T any](v T, tail *Chain[T]) *Chain[T] {
	if tail == nil {
		tail = Empty[T]()
	}
	return &Chain[T]{front: v, back: tail}
}

// Cons returns a new chain with v in front of c. c is shared, not copied.
func (c *Chain[T]) Cons(v T) *Chain[T] {
	return Cons(v, c)
}

// Deferred returns an unexpanded chain whose contents are the chain
// returned by f. f is called at most once, the first time the chain is
// forced, and its result is spliced into the node in place.
//
// Deferred computations may refer to themselves recursively; forcing runs
// them in a loop rather than on the call stack, so arbitrarily deep
// recursive definitions do not grow the stack.
func Deferred[T any](f func() *Chain[T]) *Chain[T] {
	if f == nil {
		panic("chain: nil deferred computation")
	}
	return &Chain[T]{back: &deferred[T]{f: f}}
}

// Of returns a fully expanded chain holding xs in order.
func Of[T any](xs ...T) *Chain[T] {
	c := Empty[T]()
	for i := len(xs) - 1; i >= 0; i-- {
		c = &Chain[T]{front: xs[i], back: c}
	}
	return c
}

// Collect returns a fully expanded chain holding the values of seq.
// The result does not depend on seq after Collect returns.
func Collect[T any](seq iter.Seq[T]) *Chain[T] {
	if seq == nil {
		return Empty[T]()
	}
	return Of(slices.Collect(seq)...)
}

// Head returns the first value of c, forcing c if needed.
// Head panics with [ErrEmpty] if c is empty.
func (c *Chain[T]) Head() T {
	if !c.Force() {
		panic(ErrEmpty)
	}
	return c.front
}

// Tail returns the chain after the first value, forcing c if needed.
// Repeated calls return the identical node.
// Tail panics with [ErrEmpty] if c is empty.
func (c *Chain[T]) Tail() *Chain[T] {
	if !c.Force() {
		panic(ErrEmpty)
	}
	return c.rest()
}

// Uncons forces c once and returns its head and tail.
// ok is false, and head and tail are zero, if c is empty.
func (c *Chain[T]) Uncons() (head T, tail *Chain[T], ok bool) {
	if !c.Force() {
		return head, nil, false
	}
	return c.front, c.rest(), true
}

// rest returns the successor of a node known to be expanded and non-empty.
func (c *Chain[T]) rest() *Chain[T] {
	return c.back.(*Chain[T])
}

// IsEmpty reports whether c is empty, forcing c if needed.
func (c *Chain[T]) IsEmpty() bool {
	return !c.Force()
}

// IsExpanded reports whether c is expanded. It never forces c.
func (c *Chain[T]) IsExpanded() bool {
	switch c.back.(type) {
	case *pendingProducer[T], *deferred[T]:
		return false
	default:
		return true
	}
}

// ExpandedDepth returns the number of expanded non-empty nodes at the front
// of c. It never forces c, and does not return on a cyclic chain.
func (c *Chain[T]) ExpandedDepth() int {
	n := 0
	for {
		next, ok := c.back.(*Chain[T])
		if !ok {
			return n
		}
		n++
		c = next
	}
}

// knownEmpty reports whether c is expanded and empty, without forcing.
func (c *Chain[T]) knownEmpty() bool {
	switch c.back.(type) {
	case emptyLink, nil:
		return true
	default:
		return false
	}
}
