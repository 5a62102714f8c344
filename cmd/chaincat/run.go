// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"code.hybscloud.com/chain"
)

// run walks the inputs as configured and writes the result to stdout.
func run(ctx context.Context, cfg Config, names []string, stdin io.Reader, stdout io.Writer) error {
	if cfg.Primes > 0 {
		for _, p := range primes().Take(cfg.Primes) {
			fmt.Fprintln(stdout, p)
		}
		return nil
	}
	if len(names) == 0 {
		names = []string{"-"}
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	in := openInputs(ctx, names, stdin)

	lines := in.lines
	if cfg.Uniq > 0 {
		var err error
		if lines, err = uniq(lines, cfg.Uniq); err != nil {
			return err
		}
	}
	if cfg.Grep != "" {
		lines = chain.Filter(lines, func(s string) bool {
			return strings.Contains(s, cfg.Grep)
		})
	}

	walkErr := walk(cfg, lines, stdout)
	logctx.Info(ctx, "walk done", zap.Int("expanded", in.lines.ExpandedDepth()))

	cancel()
	if err := parent.Err(); err != nil {
		// interrupted: readers blocked in a read are not waited for
		return err
	}
	if err := in.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return walkErr
}

func walk(cfg Config, lines *chain.Chain[string], w io.Writer) error {
	switch {
	case cfg.Count:
		fmt.Fprintln(w, lines.Len())
	case cfg.At != nil:
		line, err := lines.At(*cfg.At)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	case cfg.Lines > 0:
		printAll(w, slices.Values(lines.Take(cfg.Lines)))
	default:
		printAll(w, lines.All())
	}
	return nil
}

func printAll(w io.Writer, seq iter.Seq[string]) {
	for line := range seq {
		fmt.Fprintln(w, line)
	}
}

// uniq drops lines already seen among the last size distinct lines.
func uniq(c *chain.Chain[string], size int) (*chain.Chain[string], error) {
	seen, err := simplelru.NewLRU[string, struct{}](size, nil)
	if err != nil {
		return nil, err
	}
	return chain.Filter(c, func(s string) bool {
		dup := seen.Contains(s)
		seen.Add(s, struct{}{})
		return !dup
	}), nil
}

// primes is the lazy sieve of Eratosthenes.
func primes() *chain.Chain[int] {
	naturals := chain.FromProducer[int](chain.ProducerFunc[int](counterFrom(2)))
	return sieve(naturals)
}

func sieve(c *chain.Chain[int]) *chain.Chain[int] {
	return chain.Deferred(func() *chain.Chain[int] {
		p, rest, ok := c.Uncons()
		if !ok {
			return chain.Empty[int]()
		}
		return chain.Cons(p, sieve(chain.Filter(rest, func(n int) bool {
			return n%p != 0
		})))
	})
}

func counterFrom(n int) func() (int, bool) {
	return func() (int, bool) {
		n++
		return n - 1, true
	}
}
