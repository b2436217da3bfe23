package dixlang

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/reusee/dix/logs"
)

type Interpreter struct {
	Logger       logs.Logger
	Intrinsics   Intrinsics
	StrictLexing bool
	MaxSteps     int
}

func (i *Interpreter) Parse(src *Source) (*Block, error) {
	tokens := slices.Collect(src.Tokens())
	if i.StrictLexing {
		if err := CheckStrict(tokens); err != nil {
			return nil, err
		}
	}
	block, err := ParseBlock(tokens)
	if err != nil {
		return nil, err
	}
	block.Start = Pos{
		Source: src,
		Line:   1,
		Column: 1,
	}
	return block, nil
}

// Run executes src against a fresh store and returns the store.
func (i *Interpreter) Run(ctx context.Context, src *Source) (*Store, error) {
	store := NewStore()
	if _, err := i.Exec(ctx, src, store); err != nil {
		return store, err
	}
	return store, nil
}

// Exec executes src against store and returns the value of the last top-level statement.
// Nothing is executed if src does not parse.
func (i *Interpreter) Exec(ctx context.Context, src *Source, store *Store) (ret Value, err error) {
	logger := i.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	block, err := i.Parse(src)
	if err != nil {
		logger.ErrorContext(ctx, "parse failed",
			"source", src.displayName(),
			"error", err,
		)
		return Value{}, err
	}

	env := NewEnv(store, i.Intrinsics, logger)
	env.MaxSteps = i.MaxSteps

	t0 := time.Now()
	logger.InfoContext(ctx, "run",
		"source", src.displayName(),
		"statements", len(block.Statements),
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "run failed",
				"source", src.displayName(),
				"error", err,
			)
			return
		}
		logger.InfoContext(ctx, "run done",
			"source", src.displayName(),
			"steps", env.Steps(),
			"variables", store.Len(),
			"duration", time.Since(t0),
		)
	}()

	for _, stmt := range block.Statements {
		ret, err = Eval(ctx, stmt, env)
		if err != nil {
			return Value{}, err
		}
	}
	return ret, nil
}
