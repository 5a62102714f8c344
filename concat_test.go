// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"code.hybscloud.com/chain"
)

func TestConcat(t *testing.T) {
	a := chain.FromSlice([]int{1, 2})
	b := chain.Of(3, 4)
	r := a.Concat(b)

	if diff := cmp.Diff([]int{1, 2, 3, 4}, r.Slice()); diff != "" {
		t.Fatalf("Concat mismatch (-want +got):\n%s", diff)
	}
	if r.Drop(2) != b {
		t.Fatal("Concat copied its second operand")
	}
	if got := a.ExpandedDepth(); got != 2 || !a.Drop(2).IsExpanded() {
		t.Fatalf("first operand not fully expanded: depth %d", got)
	}
	if diff := cmp.Diff([]int{1, 2}, a.Slice()); diff != "" {
		t.Fatalf("Concat changed its first operand (-want +got):\n%s", diff)
	}
}

func TestConcatEmpty(t *testing.T) {
	b := chain.Of("x")
	if chain.Empty[string]().Concat(b) != b {
		t.Error("empty ++ b is not b")
	}
	if diff := cmp.Diff([]string{"x"}, b.Concat(nil).Slice()); diff != "" {
		t.Errorf("b ++ nil mismatch (-want +got):\n%s", diff)
	}
}

func TestConcatProducerIsLazy(t *testing.T) {
	p := &counter{limit: -1}
	r := chain.Of(-2, -1).ConcatProducer(p)
	if p.calls != 0 {
		t.Fatalf("ConcatProducer drew %d values up front", p.calls)
	}
	if r.Drop(2).IsExpanded() {
		t.Fatal("producer part expanded before it was needed")
	}
	if diff := cmp.Diff([]int{-2, -1, 0, 1}, r.Take(4)); diff != "" {
		t.Fatalf("Take(4) mismatch (-want +got):\n%s", diff)
	}
	if p.calls != 2 {
		t.Fatalf("producer called %d times, want 2", p.calls)
	}
}

func TestConcatSeq(t *testing.T) {
	r := chain.Of("a").ConcatSeq(slices.Values([]string{"b", "c"}))
	if diff := cmp.Diff([]string{"a", "b", "c"}, r.Slice()); diff != "" {
		t.Fatalf("ConcatSeq mismatch (-want +got):\n%s", diff)
	}
}

func TestConcatProperty(t *testing.T) {
	for n := range 6 {
		for m := range 6 {
			xs := make([]int, n)
			ys := make([]int, m)
			for i := range xs {
				xs[i] = i
			}
			for i := range ys {
				ys[i] = 100 + i
			}
			b := chain.Of(ys...)
			r := chain.FromSlice(xs).Concat(b)
			if diff := cmp.Diff(slices.Concat(xs, ys), r.Slice(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("len %d ++ len %d mismatch (-want +got):\n%s", n, m, diff)
			}
			if r.Drop(n) != b {
				t.Fatalf("len %d ++ len %d: tail after the first operand is not b", n, m)
			}
		}
	}
}
