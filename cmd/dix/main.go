package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"os/signal"

	"github.com/reusee/dix/cmds"
	"github.com/reusee/dix/debugs"
	"github.com/reusee/dix/dixconfigs"
	"github.com/reusee/dix/dixlang"
	"github.com/reusee/dix/logs"
	"github.com/reusee/dix/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	args  = cmds.Args()
	watch = cmds.Switch("-watch", "rerun the script when it changes")
	tap   = cmds.Switch("-tap", "open a starlark repl after the run")

	inline = cmds.Collect[string]("-e", "run source given on the command line, repeatable")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var exitCode int
	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		interpreter *dixlang.Interpreter,
		printStore dixconfigs.PrintStore,
		tapFunc debugs.Tap,
	) {
		run := func(ctx context.Context, src *dixlang.Source) error {
			ctx, _ = newSpan(ctx, "")
			store, err := interpreter.Run(ctx, src)
			if printStore {
				fmt.Print(store.String())
			}
			if *tap {
				tapFunc(ctx, src.Name, store, func(code string) error {
					_, err := interpreter.Exec(ctx, dixlang.NewSource("tap", code), store)
					return err
				})
			}
			return logs.WrapSpan(ctx, err)
		}

		switch {

		case len(*args) > 0 && *watch:
			if err := watchFile(ctx, logger, (*args)[0], run); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				exitCode = 1
			}

		case len(*args) > 0 || len(*inline) > 0:
			for src, err := range sources(*inline, *args) {
				if err == nil {
					err = run(ctx, src)
				}
				if err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
					exitCode = 1
					return
				}
			}

		case term.IsTerminal(int(os.Stdin.Fd())):
			runREPL(ctx, interpreter)

		default:
			content, err := io.ReadAll(os.Stdin)
			if err == nil {
				err = run(ctx, dixlang.NewSource("<stdin>", string(content)))
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				exitCode = 1
			}

		}
	})

	cancel()
	os.Exit(exitCode)
}

// sources yields inline sources first, then files in argument order.
func sources(inline []string, paths []string) iter.Seq2[*dixlang.Source, error] {
	return func(yield func(*dixlang.Source, error) bool) {
		for i, code := range inline {
			if !yield(dixlang.NewSource(fmt.Sprintf("-e#%d", i+1), code), nil) {
				return
			}
		}
		for _, path := range paths {
			if !yield(loadSource(path)) {
				return
			}
		}
	}
}

func loadSource(path string) (*dixlang.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	return dixlang.NewSource(path, string(content)), nil
}
