// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain_test

import (
	"errors"
	"iter"
	"testing"
)

// counter produces 0, 1, 2, ... and counts calls to Next.
// A negative limit means the sequence never ends.
type counter struct {
	next  int
	limit int
	calls int
}

func (c *counter) Next() (int, bool) {
	c.calls++
	if c.limit >= 0 && c.next >= c.limit {
		return 0, false
	}
	v := c.next
	c.next++
	return v, true
}

// naturalsFrom yields n, n+1, n+2, ... forever.
func naturalsFrom(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for ; ; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// mustPanicWith runs f and fails unless it panics with an error matching want.
func mustPanicWith(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic value = %v, want %v", r, want)
		}
	}()
	f()
}
