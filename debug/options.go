package debug

import (
	"fmt"

	"github.com/zaolin/devconsole/frame"
)

// Option is a functional option for configuring a Printer.
type Option func(*Printer) error

// WithParser replaces the regex frame parser built from the config.
func WithParser(p frame.Parser) Option {
	return func(pr *Printer) error {
		if p == nil {
			return fmt.Errorf("frame parser must not be nil")
		}
		pr.parser = p
		return nil
	}
}

// WithSource sets where frames are captured from. Default is the Go
// runtime call stack.
func WithSource(s frame.Source) Option {
	return func(pr *Printer) error {
		if s == nil {
			return fmt.Errorf("frame source must not be nil")
		}
		pr.source = s
		return nil
	}
}

// WithMode sets the function reporting the current mode.
// Default reads the mode environment variable on every call.
func WithMode(mode func() string) Option {
	return func(pr *Printer) error {
		if mode == nil {
			return fmt.Errorf("mode function must not be nil")
		}
		pr.mode = mode
		return nil
	}
}

// WithState sets the notice state. Default is DefaultState().
func WithState(s *State) Option {
	return func(pr *Printer) error {
		if s == nil {
			return fmt.Errorf("state must not be nil")
		}
		pr.state = s
		return nil
	}
}

// FixedMode returns a mode function that always reports mode.
func FixedMode(mode string) func() string {
	return func() string { return mode }
}
