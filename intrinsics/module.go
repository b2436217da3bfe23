package intrinsics

import (
	"io"
	"os"

	"github.com/reusee/dix/dixconfigs"
	"github.com/reusee/dix/dixlang"
	"github.com/reusee/dix/logs"
	"github.com/reusee/dix/modes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs dixconfigs.Module
}

// Output receives what scripts print.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) Desktop(
	logger logs.Logger,
) Desktop {
	return NewVirtualDesktop(logger)
}

func (Module) Intrinsics(
	output Output,
	desktop Desktop,
	scale dixconfigs.DelayScale,
	mode modes.Mode,
) dixlang.Intrinsics {
	if mode == modes.ModeDevelopment {
		scale = 0
	}
	return New(Options{
		Output:     output,
		Desktop:    desktop,
		DelayScale: float64(scale),
	})
}
