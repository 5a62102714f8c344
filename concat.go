// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import "iter"

// Concat returns a chain of the values of c followed by the chain b.
//
// c is fully expanded and its values are copied into new nodes in front of
// b; b itself is shared, not copied or forced, so the node after the last
// value of c in the result is b. Concat does not return if c is infinite.
// A nil b is taken to be [Empty].
func (c *Chain[T]) Concat(b *Chain[T]) *Chain[T] {
	if b == nil {
		b = Empty[T]()
	}
	var values []T
	for n := c; n.Force(); n = n.rest() {
		values = append(values, n.front)
	}
	for i := len(values) - 1; i >= 0; i-- {
		b = &Chain[T]{front: values[i], back: b}
	}
	return b
}

// ConcatProducer returns a chain of the values of c followed by the values
// of p. c is expanded as by [Chain.Concat]; p is not drawn from until the
// result is forced past the values of c.
func (c *Chain[T]) ConcatProducer(p Producer[T]) *Chain[T] {
	return c.Concat(FromProducer(p))
}

// ConcatSeq is like [Chain.ConcatProducer] for an [iter.Seq].
func (c *Chain[T]) ConcatSeq(seq iter.Seq[T]) *Chain[T] {
	return c.Concat(FromSeq(seq))
}
