// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command chaincat prints lines of text files, pulling them lazily through a
// chain so that only the lines the request needs are read.
//
// Usage:
//
//	chaincat [flags] [file ...]
//
// With no files, or with "-", it reads standard input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func main() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Flags keeps command-line flags.
type Flags struct {
	Config, LogLevel, Grep string

	Lines, At, Uniq, Primes int

	Count, Help bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("chaincat", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Config, "config", "", "YAML file with default settings")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.Grep, "grep", "", "keep only lines containing the string")

	fs.IntVar(&f.Lines, "n", 0, "print at most this many lines; 0 prints all")
	fs.IntVar(&f.At, "at", 0, "print only the line at this index; negative counts from the end")
	fs.IntVar(&f.Uniq, "uniq", 0, "drop lines seen among the last N distinct lines")
	fs.IntVar(&f.Primes, "primes", 0, "print the first N primes and quit")

	fs.BoolVar(&f.Count, "count", false, "print the number of lines")
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: chaincat [flags] [file ...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses args, runs the walk and returns the exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f := &Flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(stderr, err)
		}
		usage(stderr, fs)
		return 2
	}
	if f.Help {
		usage(stdout, fs)
		return 0
	}

	cfg, err := resolveConfig(f, fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	ctx := logctx.NewContext(context.Background(), log)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logctx.Info(ctx, "start", zap.Strings("inputs", fs.Args()))
	if err := run(ctx, cfg, fs.Args(), stdin, stdout); err != nil {
		logctx.Error(ctx, "chaincat failed", zap.Error(err))
		return 1
	}
	logctx.Info(ctx, "stop")
	return 0
}

// resolveConfig loads the config file, if any, and applies the flags that
// were set explicitly on top of it.
func resolveConfig(f *Flags, fs *flag.FlagSet) (Config, error) {
	cfg := defaultConfig()
	if f.Config != "" {
		var err error
		if cfg, err = loadConfig(f.Config); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "log-level":
			cfg.LogLevel = f.LogLevel
		case "grep":
			cfg.Grep = f.Grep
		case "n":
			cfg.Lines = f.Lines
		case "at":
			at := f.At
			cfg.At = &at
		case "uniq":
			cfg.Uniq = f.Uniq
		case "primes":
			cfg.Primes = f.Primes
		case "count":
			cfg.Count = f.Count
		}
	})
	return cfg, cfg.validate()
}
