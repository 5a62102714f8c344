// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// Transformations return new unexpanded chains driven by a producer that
// walks the input chains. Nothing is evaluated when they are called; each
// node of the result is computed when it is forced. Inputs are shared and
// may be walked independently by other holders.

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

type mapProducer[T, U any] struct {
	src Cursor[T]
	f   func(T) U
}

func (p *mapProducer[T, U]) Next() (U, bool) {
	v, ok := p.src.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return p.f(v), true
}

// Map returns a chain of f applied to each value of c.
func Map[T, U any](c *Chain[T], f func(T) U) *Chain[U] {
	if c.knownEmpty() {
		return Empty[U]()
	}
	return FromProducer[U](&mapProducer[T, U]{src: Cursor[T]{c: c}, f: f})
}

type filterProducer[T any] struct {
	src  Cursor[T]
	keep func(T) bool
}

func (p *filterProducer[T]) Next() (T, bool) {
	for {
		v, ok := p.src.Next()
		if !ok || p.keep(v) {
			return v, ok
		}
	}
}

// Filter returns a chain of the values of c for which keep returns true.
// Forcing a node of the result forces c up to the next kept value, which
// does not return if c is infinite and no further value is kept.
func Filter[T any](c *Chain[T], keep func(T) bool) *Chain[T] {
	if c.knownEmpty() {
		return Empty[T]()
	}
	return FromProducer[T](&filterProducer[T]{src: Cursor[T]{c: c}, keep: keep})
}

type zipProducer[A, B any] struct {
	a      Cursor[A]
	b      Cursor[B]
	strict bool
}

func (p *zipProducer[A, B]) Next() (Pair[A, B], bool) {
	var zero Pair[A, B]
	va, okA := p.a.Next()
	if !okA {
		if p.strict && p.b.c.Force() {
			panic(ErrUnequalLength)
		}
		return zero, false
	}
	vb, okB := p.b.Next()
	if !okB {
		if p.strict {
			panic(ErrUnequalLength)
		}
		return zero, false
	}
	return Pair[A, B]{Fst: va, Snd: vb}, true
}

// Zip returns a chain of pairs of the values of a and b in step.
// The result ends with the shorter input.
func Zip[A, B any](a *Chain[A], b *Chain[B]) *Chain[Pair[A, B]] {
	if a.knownEmpty() || b.knownEmpty() {
		return Empty[Pair[A, B]]()
	}
	return FromProducer[Pair[A, B]](&zipProducer[A, B]{a: Cursor[A]{c: a}, b: Cursor[B]{c: b}})
}

// ZipStrict is like [Zip] but requires a and b to have the same length.
// Forcing the node of the result at which one input ends before the other
// panics with [ErrUnequalLength].
func ZipStrict[A, B any](a *Chain[A], b *Chain[B]) *Chain[Pair[A, B]] {
	if a.knownEmpty() && b.knownEmpty() {
		return Empty[Pair[A, B]]()
	}
	return FromProducer[Pair[A, B]](&zipProducer[A, B]{a: Cursor[A]{c: a}, b: Cursor[B]{c: b}, strict: true})
}
