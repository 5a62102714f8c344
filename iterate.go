// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import "iter"

// All returns an iterator over the values of c, forcing one node per value.
// Ranging over All again starts from the front of c and reuses the nodes
// already expanded.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c; n.Force(); n = n.rest() {
			if !yield(n.front) {
				return
			}
		}
	}
}

// Slice returns the values of c in a new slice, expanding all of c.
func (c *Chain[T]) Slice() []T {
	var out []T
	for n := c; n.Force(); n = n.rest() {
		out = append(out, n.front)
	}
	return out
}

// Cursor is a forward-only walk over a chain.
// It holds only its current position, so the nodes it has passed become
// collectable unless something else refers to them.
// A Cursor is itself a [Producer].
type Cursor[T any] struct {
	c *Chain[T]
}

// Cursor returns a [Cursor] positioned at the front of c.
func (c *Chain[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{c: c}
}

// Next returns the value at the cursor and advances past it.
func (it *Cursor[T]) Next() (T, bool) {
	v, rest, ok := it.c.Uncons()
	if !ok {
		return v, false
	}
	it.c = rest
	return v, true
}

// Rest returns the chain from the cursor onward.
func (it *Cursor[T]) Rest() *Chain[T] {
	return it.c
}
