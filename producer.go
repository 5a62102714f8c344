// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import (
	"bufio"
	"context"
	"io"
	"iter"
	"runtime"
)

// Producer is an external, pull-based source of values.
// Next returns the next value and true, or the zero value and false once
// the source is exhausted. A chain calls Next at most once per value and
// never again after it has reported the end.
//
// Next may block; a chain forcing a node blocks exactly as long as Next
// does. Cancellation, if wanted, belongs in the producer (see [FromChan]).
type Producer[T any] interface {
	Next() (T, bool)
}

// ProducerFunc adapts an ordinary function to the [Producer] interface.
type ProducerFunc[T any] func() (T, bool)

// Next calls f.
func (f ProducerFunc[T]) Next() (T, bool) { return f() }

// noItems is the canonical exhausted producer.
type noItems[T any] struct{}

func (noItems[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// NoItems returns the canonical producer of no values.
// [FromProducer] recognizes it and returns [Empty] without allocating.
func NoItems[T any]() Producer[T] { return noItems[T]{} }

// FromProducer returns an unexpanded chain over the values of p.
// No value is drawn until the chain is forced. A nil p or [NoItems]
// yields the shared [Empty] chain.
func FromProducer[T any](p Producer[T]) *Chain[T] {
	switch p.(type) {
	case nil, noItems[T]:
		return Empty[T]()
	}
	return &Chain[T]{back: &pendingProducer[T]{src: p}}
}

// sliceProducer reads a slice by position, so writes to xs ahead of the
// chain's expansion are seen by the chain.
type sliceProducer[T any] struct {
	xs []T
	i  int
}

func (p *sliceProducer[T]) Next() (T, bool) {
	if p.i >= len(p.xs) {
		var zero T
		p.xs = nil
		return zero, false
	}
	v := p.xs[p.i]
	p.i++
	return v, true
}

// FromSlice returns an unexpanded chain over xs.
// The chain reads xs lazily; use [Of] for a chain independent of xs.
func FromSlice[T any](xs []T) *Chain[T] {
	if len(xs) == 0 {
		return Empty[T]()
	}
	return FromProducer[T](&sliceProducer[T]{xs: xs})
}

// pullProducer drives an [iter.Seq] through [iter.Pull].
type pullProducer[T any] struct {
	next func() (T, bool)
	stop func()
}

func (p *pullProducer[T]) Next() (T, bool) {
	if p.next == nil {
		var zero T
		return zero, false
	}
	v, ok := p.next()
	if !ok {
		p.stop()
		p.next, p.stop = nil, nil
	}
	return v, ok
}

// Pull returns a [Producer] over seq.
// The iteration state of seq is released when seq is exhausted, or
// otherwise once the producer becomes unreachable.
func Pull[T any](seq iter.Seq[T]) Producer[T] {
	next, stop := iter.Pull(seq)
	p := &pullProducer[T]{next: next, stop: stop}
	runtime.AddCleanup(p, func(stop func()) { stop() }, stop)
	return p
}

// FromSeq returns an unexpanded chain over the values of seq.
// seq may be infinite; it is advanced one value per forced node.
func FromSeq[T any](seq iter.Seq[T]) *Chain[T] {
	if seq == nil {
		return Empty[T]()
	}
	return FromProducer(Pull(seq))
}

// chanProducer receives from ch until it is closed or ctx is done.
type chanProducer[T any] struct {
	ctx context.Context
	ch  <-chan T
}

func (p *chanProducer[T]) Next() (T, bool) {
	var zero T
	if p.ctx.Err() != nil {
		return zero, false
	}
	select {
	case <-p.ctx.Done():
		return zero, false
	case v, ok := <-p.ch:
		return v, ok
	}
}

// FromChan returns an unexpanded chain over the values received from ch.
// The chain ends when ch is closed or ctx is done, whichever is first;
// check ctx.Err to tell the two apart. Forcing blocks while ch is empty.
func FromChan[T any](ctx context.Context, ch <-chan T) *Chain[T] {
	if ch == nil {
		return Empty[T]()
	}
	return FromProducer[T](&chanProducer[T]{ctx: ctx, ch: ch})
}

// LineProducer produces the lines of a reader, without line terminators.
// Like [bufio.Scanner], it reports the end of input and read errors the
// same way; call Err after the end to tell them apart.
type LineProducer struct {
	sc  *bufio.Scanner
	err error
}

// Lines returns a [LineProducer] reading r.
func Lines(r io.Reader) *LineProducer {
	return &LineProducer{sc: bufio.NewScanner(r)}
}

// Next returns the next line.
func (p *LineProducer) Next() (string, bool) {
	if p.sc == nil {
		return "", false
	}
	if p.sc.Scan() {
		return p.sc.Text(), true
	}
	p.err = p.sc.Err()
	p.sc = nil
	return "", false
}

// Err returns the first non-EOF error met while reading, if any.
func (p *LineProducer) Err() error { return p.err }
