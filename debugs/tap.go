package debugs

import (
	"context"

	"github.com/reusee/dix/dixlang"
	"github.com/reusee/dix/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark repl over the variables of store. exec may be nil.
type Tap func(ctx context.Context, what string, store *dixlang.Store, exec func(src string) error)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, store *dixlang.Store, exec func(src string) error) {
		logger.InfoContext(ctx, "tap: "+what,
			"variables", store.Names(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, storeGlobals(store, exec))
	}
}
