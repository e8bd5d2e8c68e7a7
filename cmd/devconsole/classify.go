package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zaolin/devconsole/config"
	"github.com/zaolin/devconsole/frame"
)

var (
	kindStyle = lipgloss.NewStyle().Width(6)
	urlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Run executes the classify command
func (c *ClassifyCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	parser := frame.NewRegexParser(rules)

	for _, line := range c.Frames {
		cl := parser.Parse(line)
		prefix, file := cfg.Styles.Prefix.JS, cfg.Styles.File.JS
		if cl.Kind == frame.Component {
			prefix, file = cfg.Styles.Prefix.Vue, cfg.Styles.File.Vue
		}
		out := fmt.Sprintf("%s %s:%s",
			kindStyle.Inherit(prefix.Lipgloss()).Render(cl.Prefix),
			file.Lipgloss().Render(cl.FileName),
			cfg.Styles.Common.Line.Lipgloss().Render(cl.LineNumber))
		if cl.URL != "" {
			out += " " + urlStyle.Render(cl.URL)
		}
		fmt.Println(out)
	}
	return nil
}
