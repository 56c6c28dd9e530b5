/*
Command fingertree builds finger trees step by step and prints their structure.

	fingertree build 22            # append 1…22, print every intermediate tree
	fingertree build --front 30    # prepend 30…1 instead
	fingertree build --dump 100    # print the nesting structure of the final tree
	fingertree of 20               # bulk-build a tree from 1…20

The structure of a tree is printed in a compact notation: `<>` is the empty tree,
`single(x)` a tree with one value, and `tree(l,m,r)` a deep tree with digits l and r
(in brackets) and a middle tree m, holding 2-3 nodes (in parentheses).
*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	cli "github.com/urfave/cli/v2"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func main() {
	app := cli.NewApp()
	app.Name = "fingertree"
	app.Usage = "build persistent finger trees and show their structure"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "trace",
			Value:   "error",
			Usage:   "trace level (debug, info, error)",
			EnvVars: []string{"FINGERTREE_TRACE"},
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "do not colorize output",
		},
	}
	app.Before = setup
	app.Commands = []*cli.Command{
		buildCmd,
		ofCmd,
	}
	app.RunAndExitOnError()
}

func setup(cctx *cli.Context) error {
	if err := setupTracing(cctx.String("trace")); err != nil {
		return err
	}
	if cctx.Bool("no-color") {
		color.NoColor = true
	}
	return nil
}

// setupTracing installs a go-log tracer as the core tracer and routes the tracers
// of library packages (selected by key) to it.
func setupTracing(levelName string) error {
	level, err := traceLevel(levelName)
	if err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return gtrace.CoreTracer
	}))
	return nil
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	name := strings.ToLower(s)
	switch name {
	case "debug", "info", "error":
		return tracing.TraceLevelFromString(name), nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

var buildCmd = &cli.Command{
	Name:      "build",
	Usage:     "insert 1…N one by one and print every intermediate tree",
	ArgsUsage: "N",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "front",
			Usage: "prepend N…1 instead of appending 1…N",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the nesting structure of the final tree",
		},
	},
	Action: func(cctx *cli.Context) error {
		n, err := countArg(cctx)
		if err != nil {
			return err
		}
		T().Infof("building tree of %d values, front=%v", n, cctx.Bool("front"))
		tree := build(os.Stdout, n, cctx.Bool("front"))
		summarize(os.Stdout, tree, cctx.Bool("dump"))
		return nil
	},
}

var ofCmd = &cli.Command{
	Name:      "of",
	Usage:     "bulk-build a tree of 1…N and print it",
	ArgsUsage: "N",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the nesting structure of the tree",
		},
	},
	Action: func(cctx *cli.Context) error {
		n, err := countArg(cctx)
		if err != nil {
			return err
		}
		T().Infof("bulk-building tree of %d values", n)
		tree := bulk(os.Stdout, n)
		summarize(os.Stdout, tree, cctx.Bool("dump"))
		return nil
	},
}

func countArg(cctx *cli.Context) (int, error) {
	if cctx.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one argument N, got %d", cctx.NArg())
	}
	n, err := strconv.Atoi(cctx.Args().First())
	if err != nil || n < 0 {
		return 0, fmt.Errorf("N must be a non-negative integer, is %q", cctx.Args().First())
	}
	return n, nil
}
