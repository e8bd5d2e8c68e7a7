package main

import (
	"strings"

	"github.com/zaolin/devconsole/console"
	"github.com/zaolin/devconsole/debug"
)

// Run executes the print command
func (c *PrintCmd) Run(g *Globals) error {
	p, err := newPrinter(g, console.Stdout())
	if err != nil {
		return err
	}

	message := strings.Join(c.Message, " ")
	if c.Frame != "" {
		p.PrintFrame(c.Frame, message)
		return nil
	}
	p.Print(message, true)
	return nil
}

// Run executes the log command
func (c *LogCmd) Run(g *Globals) error {
	p, err := newPrinter(g, console.Stdout())
	if err != nil {
		return err
	}

	logger := debug.NewLogger(p, newLogger())

	args := make([]any, len(c.Args))
	for i, a := range c.Args {
		args[i] = a
	}

	switch c.Method {
	case debug.MethodWarn:
		logger.Warn(args...)
	case debug.MethodError:
		logger.Error(args...)
	case debug.MethodInfo:
		logger.Info(args...)
	case debug.MethodDebug:
		logger.Debug(args...)
	default:
		logger.Log(args...)
	}
	return nil
}

// Run executes the notice command
func (c *NoticeCmd) Run(g *Globals) error {
	debug.DefaultState().ShowNotice(console.Stdout())
	return nil
}
