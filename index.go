// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// At returns the value at position k, counting from 0.
// A negative k counts from the end, -1 being the last value; this expands
// the whole chain to learn its length.
// At returns an [*IndexError] carrying k if c has no such position.
func (c *Chain[T]) At(k int) (T, error) {
	var zero T
	i := k
	if i < 0 {
		i += c.Len()
		if i < 0 {
			return zero, &IndexError{Index: k}
		}
	}
	for ; i > 0; i-- {
		if !c.Force() {
			return zero, &IndexError{Index: k}
		}
		c = c.rest()
	}
	if !c.Force() {
		return zero, &IndexError{Index: k}
	}
	return c.front, nil
}

// Drop returns the chain after the first n values, forcing n nodes.
// Drop returns the shared empty chain if c holds fewer than n values.
func (c *Chain[T]) Drop(n int) *Chain[T] {
	for ; n > 0; n-- {
		if !c.Force() {
			return Empty[T]()
		}
		c = c.rest()
	}
	return c
}

// Take returns up to n values from the front of c, forcing at most n nodes.
func (c *Chain[T]) Take(n int) []T {
	var out []T
	for ; n > 0 && c.Force(); n-- {
		out = append(out, c.front)
		c = c.rest()
	}
	return out
}
