// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import "math"

// Len returns the number of values in c, expanding all of c.
// Len does not return if c is infinite.
func (c *Chain[T]) Len() int {
	n := 0
	for ; c.Force(); c = c.rest() {
		n++
	}
	return n
}

// LenAtLeast reports whether c holds at least n values.
// It forces at most n nodes; LenAtLeast(0) forces nothing.
// It returns on infinite chains.
func (c *Chain[T]) LenAtLeast(n int) bool {
	for ; n > 0; n-- {
		if !c.Force() {
			return false
		}
		c = c.rest()
	}
	return true
}

// LenMoreThan reports whether c holds more than n values.
// It forces at most n+1 nodes.
func (c *Chain[T]) LenMoreThan(n int) bool {
	switch {
	case n < 0:
		return true
	case n == math.MaxInt:
		return false
	}
	return c.LenAtLeast(n + 1)
}

// LenAtMost reports whether c holds at most n values.
// It forces at most n+1 nodes.
func (c *Chain[T]) LenAtMost(n int) bool {
	return !c.LenMoreThan(n)
}

// LenLessThan reports whether c holds fewer than n values.
// It forces at most n nodes.
func (c *Chain[T]) LenLessThan(n int) bool {
	return !c.LenAtLeast(n)
}

// Contains reports whether x is a value of c.
// It expands c up to the first match; it does not return if c is infinite
// and x never occurs.
func Contains[T comparable](c *Chain[T], x T) bool {
	return c.ContainsFunc(func(v T) bool { return v == x })
}

// ContainsFunc reports whether some value of c satisfies f.
// It expands c up to the first match.
func (c *Chain[T]) ContainsFunc(f func(T) bool) bool {
	for ; c.Force(); c = c.rest() {
		if f(c.front) {
			return true
		}
	}
	return false
}

// Expand forces every node of c and returns c.
// Once expanded, c no longer depends on its producers: it can outlive
// them, and later changes to their sources are not seen.
// Expand does not return if c is infinite.
func (c *Chain[T]) Expand() *Chain[T] {
	for n := c; n.Force(); n = n.rest() {
	}
	return c
}
