package intrinsics

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/reusee/dix/dixlang"
)

// Options configures New. A nil Output discards prints and a nil Desktop is a fresh VirtualDesktop.
type Options struct {
	Output  io.Writer
	Desktop Desktop
	// DelayScale multiplies delay durations. Zero skips delays.
	DelayScale float64
}

func New(opts Options) dixlang.Intrinsics {
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	desktop := opts.Desktop
	if desktop == nil {
		desktop = NewVirtualDesktop(nil)
	}
	return dixlang.Intrinsics{

		"print": func(ctx context.Context, args []dixlang.Value) (dixlang.Value, error) {
			if err := arity(args, 0, 1); err != nil {
				return dixlang.Value{}, err
			}
			var line string
			if len(args) > 0 {
				line = args[0].String()
			}
			if _, err := fmt.Fprintln(opts.Output, line); err != nil {
				return dixlang.Value{}, err
			}
			return dixlang.Value{}, nil
		},

		"delay": func(ctx context.Context, args []dixlang.Value) (dixlang.Value, error) {
			seconds, err := numberArg(args)
			if err != nil {
				return dixlang.Value{}, err
			}
			if seconds < 0 {
				return dixlang.Value{}, fmt.Errorf("negative delay: %v", seconds)
			}
			return dixlang.Value{}, sleep(ctx, time.Duration(seconds*opts.DelayScale*float64(time.Second)))
		},

		"getX": func(ctx context.Context, args []dixlang.Value) (dixlang.Value, error) {
			if err := arity(args, 0, 0); err != nil {
				return dixlang.Value{}, err
			}
			x, _ := desktop.Position()
			return dixlang.Num(x), nil
		},

		"getY": func(ctx context.Context, args []dixlang.Value) (dixlang.Value, error) {
			if err := arity(args, 0, 0); err != nil {
				return dixlang.Value{}, err
			}
			_, y := desktop.Position()
			return dixlang.Num(y), nil
		},

		"setX": func(ctx context.Context, args []dixlang.Value) (dixlang.Value, error) {
			x, err := numberArg(args)
			if err != nil {
				return dixlang.Value{}, err
			}
			_, y := desktop.Position()
			desktop.MoveTo(x, y)
			return dixlang.Value{}, nil
		},

		"setY": func(ctx context.Context, args []dixlang.Value) (dixlang.Value, error) {
			y, err := numberArg(args)
			if err != nil {
				return dixlang.Value{}, err
			}
			x, _ := desktop.Position()
			desktop.MoveTo(x, y)
			return dixlang.Value{}, nil
		},

		"click": func(ctx context.Context, args []dixlang.Value) (dixlang.Value, error) {
			if err := arity(args, 0, 0); err != nil {
				return dixlang.Value{}, err
			}
			desktop.Click()
			return dixlang.Value{}, nil
		},

		"type": func(ctx context.Context, args []dixlang.Value) (dixlang.Value, error) {
			if err := arity(args, 1, 1); err != nil {
				return dixlang.Value{}, err
			}
			text, ok := args[0].Str()
			if !ok {
				return dixlang.Value{}, fmt.Errorf("expecting str argument, got %s", args[0].Kind())
			}
			desktop.Type(text)
			return dixlang.Value{}, nil
		},
	}
}

func arity(args []dixlang.Value, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return fmt.Errorf("expecting %d arguments, got %d", lo, len(args))
		}
		return fmt.Errorf("expecting %d to %d arguments, got %d", lo, hi, len(args))
	}
	return nil
}

func numberArg(args []dixlang.Value) (float64, error) {
	if err := arity(args, 1, 1); err != nil {
		return 0, err
	}
	f, ok := args[0].Float()
	if !ok {
		return 0, fmt.Errorf("expecting num argument, got %s", args[0].Kind())
	}
	return f, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
