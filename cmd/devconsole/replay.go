package main

import (
	"github.com/zaolin/devconsole/console"
	"github.com/zaolin/devconsole/internal/replay"
	"github.com/zaolin/devconsole/internal/tui"
)

// Run executes the replay command
func (c *ReplayCmd) Run(g *Globals) error {
	logger := newLogger()

	entries, err := replay.Open(c.File, logger)
	if err != nil {
		return err
	}
	logger.Debug("replay loaded", "file", c.File, "entries", len(entries))

	if !c.View {
		p, err := newPrinter(g, console.Stdout())
		if err != nil {
			return err
		}
		replay.Play(p, entries)
		return nil
	}

	rec := console.NewRecorder()
	p, err := newPrinter(g, rec)
	if err != nil {
		return err
	}
	replay.Play(p, entries)
	for _, l := range rec.Loose() {
		logger.Info(l.Text())
	}
	return tui.Run(rec.Groups())
}
