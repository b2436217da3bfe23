package dixlang

import (
	"context"
	"log/slog"
)

// Intrinsic is a host operation callable from scripts with zero or one argument.
type Intrinsic func(ctx context.Context, args []Value) (Value, error)

// Intrinsics is read-only during evaluation.
type Intrinsics map[string]Intrinsic

// Env is the evaluation context threaded through every Eval call.
type Env struct {
	Store      *Store
	Intrinsics Intrinsics
	Logger     *slog.Logger
	// MaxSteps limits executed statements and loop iterations. Zero means no limit.
	MaxSteps int

	steps int
}

func NewEnv(store *Store, intrinsics Intrinsics, logger *slog.Logger) *Env {
	if store == nil {
		store = NewStore()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Env{
		Store:      store,
		Intrinsics: intrinsics,
		Logger:     logger,
	}
}

func (e *Env) Steps() int {
	return e.steps
}

func (e *Env) step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.steps++
	if e.MaxSteps > 0 && e.steps > e.MaxSteps {
		return &StepLimitError{
			Limit: e.MaxSteps,
		}
	}
	return nil
}
