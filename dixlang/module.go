package dixlang

import (
	"github.com/reusee/dix/dixconfigs"
	"github.com/reusee/dix/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs dixconfigs.Module
}

func (Module) Interpreter(
	logger logs.Logger,
	intrinsics Intrinsics,
	strict dixconfigs.StrictLexing,
	maxSteps dixconfigs.MaxSteps,
) *Interpreter {
	return &Interpreter{
		Logger:       logger,
		Intrinsics:   intrinsics,
		StrictLexing: bool(strict),
		MaxSteps:     int(maxSteps),
	}
}
