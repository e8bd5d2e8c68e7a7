package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/zaolin/devconsole/config"
	"github.com/zaolin/devconsole/console"
	"github.com/zaolin/devconsole/debug"
	"github.com/zaolin/devconsole/internal/buildtags"
)

// newLogger returns the CLI's own diagnostic logger
func newLogger() *log.Logger {
	level := log.InfoLevel
	if buildtags.DebugEnabled {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "devconsole",
		Level:  level,
	})
}

// newPrinter loads the config and builds a printer on out
func newPrinter(g *Globals, out console.Console) (*debug.Printer, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	var opts []debug.Option
	if g.Mode != "" {
		opts = append(opts, debug.WithMode(debug.FixedMode(g.Mode)))
	}
	return debug.New(cfg, out, opts...)
}
