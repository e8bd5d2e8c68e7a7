package main

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/zaolin/devconsole/config"
)

// Run executes the config command
func (c *ConfigCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}
