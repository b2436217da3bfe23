package dixconfigs

import (
	"errors"

	"github.com/reusee/dix/cmds"
	"github.com/reusee/dix/configs"
	"github.com/reusee/dix/vars"
)

// StrictLexing rejects lexemes that are not words, strings or known symbols.
type StrictLexing bool

var strictFlag = cmds.Switch("-strict", "reject unrecognized lexemes")

func (Module) StrictLexing(
	loader configs.Loader,
) StrictLexing {
	if *strictFlag {
		return true
	}
	return StrictLexing(configs.First[bool](loader, "strict_lexing"))
}

// MaxSteps bounds executed statements and loop iterations. Zero is unlimited.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps", "limit executed statements and loop iterations")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}

// DelayScale multiplies the duration of the delay intrinsic.
type DelayScale float64

var delayScaleFlag = cmds.Var[float64]("-delay-scale", "scale the duration of delay")

func (Module) DelayScale(
	loader configs.Loader,
) DelayScale {
	if *delayScaleFlag != 0 {
		return DelayScale(*delayScaleFlag)
	}
	// an explicit zero in config disables delays
	var scale float64
	err := loader.AssignFirst("delay_scale", &scale)
	if errors.Is(err, configs.ErrValueNotFound) {
		return 1
	}
	if err != nil {
		panic(err)
	}
	return DelayScale(scale)
}

// PrintStore makes the command print all variables after a run.
type PrintStore bool

var printStoreFlag = cmds.Switch("-print-store", "print variables after each run")

func (Module) PrintStore(
	loader configs.Loader,
) PrintStore {
	if *printStoreFlag {
		return true
	}
	return PrintStore(configs.First[bool](loader, "print_store"))
}
