// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/chain"
)

// bufferedLines is how far each reader may run ahead of the walk.
const bufferedLines = 64

// input is a running set of readers whose lines arrive in argument order.
type input struct {
	lines *chain.Chain[string]
	g     *errgroup.Group
}

// openInputs reads every named file concurrently ("-" is stdin) and returns
// their lines as a single chain. Lines are only received as the chain is
// forced; readers block once their buffer is full. Canceling ctx stops them.
func openInputs(ctx context.Context, names []string, stdin io.Reader) *input {
	g, ctx := errgroup.WithContext(ctx)
	perFile := make([]chan string, len(names))
	for i, name := range names {
		ch := make(chan string, bufferedLines)
		perFile[i] = ch
		g.Go(func() error {
			defer close(ch)
			return readFile(ctx, name, stdin, ch)
		})
	}

	out := make(chan string)
	g.Go(func() error {
		defer close(out)
		for _, ch := range perFile {
			for line := range ch {
				select {
				case out <- line:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		return nil
	})
	return &input{lines: chain.FromChan(ctx, out), g: g}
}

func readFile(ctx context.Context, name string, stdin io.Reader, ch chan<- string) error {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	lp := chain.Lines(r)
	n := 0
	for line, ok := lp.Next(); ok; line, ok = lp.Next() {
		select {
		case ch <- line:
			n++
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := lp.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	logctx.Debug(ctx, "input done", zap.String("name", name), zap.Int("lines", n))
	return nil
}

// Wait returns the first reader error.
func (in *input) Wait() error {
	return in.g.Wait()
}
