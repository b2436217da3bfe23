package intrinsics

import (
	"log/slog"
	"strings"
)

// Desktop is the pointer and keyboard surface scripts automate.
type Desktop interface {
	Position() (x, y float64)
	MoveTo(x, y float64)
	Click()
	Type(text string)
}

// VirtualDesktop records automation in memory.
type VirtualDesktop struct {
	X, Y   float64
	Clicks int
	typed  strings.Builder
	logger *slog.Logger
}

var _ Desktop = new(VirtualDesktop)

func NewVirtualDesktop(logger *slog.Logger) *VirtualDesktop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &VirtualDesktop{
		logger: logger,
	}
}

func (v *VirtualDesktop) Position() (x, y float64) {
	return v.X, v.Y
}

func (v *VirtualDesktop) MoveTo(x, y float64) {
	v.X, v.Y = x, y
	v.logger.Debug("pointer move", "x", x, "y", y)
}

func (v *VirtualDesktop) Click() {
	v.Clicks++
	v.logger.Debug("pointer click", "x", v.X, "y", v.Y)
}

func (v *VirtualDesktop) Type(text string) {
	v.typed.WriteString(text)
	v.logger.Debug("keyboard type", "text", text)
}

func (v *VirtualDesktop) Typed() string {
	return v.typed.String()
}
