// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// thunkStatus tracks the one-shot lifecycle of a deferred computation.
type thunkStatus uint8

const (
	thunkReady thunkStatus = iota
	thunkRunning
	thunkSpent
	thunkReturnedNil
	thunkPanicked
)

// deferred marks an unexpanded node whose contents are the chain returned
// by f. f is dropped before it runs, so it can never be invoked twice and
// whatever it captured becomes collectable once it returns.
//
// Once spent, a deferred forwards to its result: any other node still
// holding it takes its contents from result when forced.
type deferred[T any] struct {
	f      func() *Chain[T]
	result *Chain[T]
	status thunkStatus
}

func (*deferred[T]) link() {}

// run invokes the computation at most once and reports whether it did.
// A spent computation returns its earlier result. Any other state reports
// why the computation cannot be used.
func (d *deferred[T]) run() (r *Chain[T], fresh bool) {
	switch d.status {
	case thunkSpent:
		return d.result, false
	case thunkRunning:
		panic(ErrCycle)
	case thunkReturnedNil:
		panic(ErrMalformedDeferred)
	case thunkPanicked:
		panic(ErrFailedDeferred)
	}
	f := d.f
	d.f = nil
	d.status = thunkRunning
	defer func() {
		if d.status == thunkRunning {
			d.status = thunkPanicked
		}
	}()
	r = f()
	if r == nil {
		d.status = thunkReturnedNil
		panic(ErrMalformedDeferred)
	}
	d.status, d.result = thunkSpent, r
	return r, true
}

// Force expands c in place if it is not already expanded and reports
// whether c is non-empty. After Force returns, c never changes again;
// forcing an expanded node costs a single type switch.
//
// Force is the only operation that mutates a node. Panics from a producer
// or a deferred computation propagate to the caller and leave c
// unexpanded.
func (c *Chain[T]) Force() bool {
	switch c.back.(type) {
	case *Chain[T]:
		return true
	case emptyLink, nil:
		return false
	}
	return c.expand()
}

// expand is the trampoline behind Force. It walks from c along the results
// of deferred computations until it reaches a node it can expand directly,
// expands that node, and copies its contents into c. Nested deferred
// computations never nest calls.
//
// Only the current node is held while walking: c takes the contents of each
// node it passes, and a node passed on the way keeps its spent computation,
// which forwards to the rest of the walk. A long run of intermediate
// results therefore stays collectable during a single force.
//
// Following spent computations never runs user code, so a loop among them
// would never end. Brent's cycle detection over the spent computations
// visited since the last fresh run turns such a loop into ErrCycle.
func (c *Chain[T]) expand() (nonEmpty bool) {
	n := c
	defer func() {
		if n != c && !c.IsExpanded() {
			// failed part way: c defers to the node it had reached
			c.back = &deferred[T]{result: n, status: thunkSpent}
		}
	}()
	var seen *deferred[T]
	power, steps := 1, 0
loop:
	for {
		switch b := n.back.(type) {
		case *Chain[T], emptyLink, nil:
			break loop
		case *pendingProducer[T]:
			v, ok := b.next()
			if !ok {
				var zero T
				n.front, n.back = zero, emptyLink{}
			} else {
				n.front, n.back = v, &Chain[T]{back: b}
			}
			break loop
		case *deferred[T]:
			r, fresh := b.run()
			if fresh {
				seen, power, steps = nil, 1, 0
			} else {
				if b == seen {
					panic(ErrCycle)
				}
				if steps++; steps == power {
					seen, power, steps = b, power*2, 0
				}
			}
			n = r
			if n != c {
				c.front, c.back = n.front, n.back
			}
		default:
			panic("chain: unknown node state")
		}
	}
	if n != c {
		c.front, c.back = n.front, n.back
	}
	_, nonEmpty = c.back.(*Chain[T])
	return nonEmpty
}
