package config

import (
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/zaolin/devconsole/frame"
	"github.com/zaolin/devconsole/internal/buildtags"
)

// Config holds the devconsole configuration table
type Config struct {
	Regex    Regex    `toml:"regex"`
	Defaults Defaults `toml:"defaults"`
	Styles   Styles   `toml:"styles"`
	Indent   Indent   `toml:"indent"`
	Labels   Labels   `toml:"labels"`

	SuppressedConsoleMethods []string `toml:"suppressed_console_methods"`
	EnvironmentModes         []string `toml:"environment_modes"`
	ModeEnv                  string   `toml:"mode_env"`
}

// Regex holds the frame patterns as source text
type Regex struct {
	StackTrace    string `toml:"stack_trace"`
	JSLineNumber  string `toml:"js_line_number"`
	VueLineNumber string `toml:"vue_line_number"`
	URL           string `toml:"url"`
}

// Defaults holds fallback values and kind prefixes
type Defaults struct {
	UnknownFile       string   `toml:"unknown_file"`
	UnknownLineNumber string   `toml:"unknown_line_number"`
	Prefixes          Prefixes `toml:"prefixes"`
}

type Prefixes struct {
	JS   string `toml:"js"`
	Vue  string `toml:"vue"`
	File string `toml:"file"`
}

// Style is a foreground color plus weight
type Style struct {
	Color string `toml:"color"`
	Bold  bool   `toml:"bold"`
}

// Lipgloss converts the style for rendering
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.Bold)
	if s.Color != "" {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	return st
}

// KindStyles holds one style per file kind; FILE frames use JS
type KindStyles struct {
	JS  Style `toml:"js"`
	Vue Style `toml:"vue"`
}

type CommonStyles struct {
	Line    Style `toml:"line"`
	Message Style `toml:"message"`
}

type Styles struct {
	File   KindStyles   `toml:"file"`
	Prefix KindStyles   `toml:"prefix"`
	Common CommonStyles `toml:"common"`
}

type Indent struct {
	Short string `toml:"short"`
	Long  string `toml:"long"`
}

type Labels struct {
	URL           string `toml:"url"`
	Type          string `toml:"type"`
	Content       string `toml:"content"`
	Debug         string `toml:"debug"`
	ObjectOrArray string `toml:"object_or_array"`
}

// Default returns the built-in configuration table
func Default() *Config {
	var (
		lightblue = Style{Color: "#ADD8E6", Bold: true}
		green     = Style{Color: "#008000", Bold: true}
	)
	return &Config{
		Regex: Regex{
			StackTrace:    `(?:file|http|https|/)([^/]+\.vue|[^/]+\.js|[^/]+\.go)`,
			JSLineNumber:  `.*:(\d+):(\d+)$`,
			VueLineNumber: `.*:(\d+):\d+\)`,
			URL:           `https?://[^\s]+`,
		},
		Defaults: Defaults{
			UnknownFile:       "Unknown file",
			UnknownLineNumber: "0000",
			Prefixes: Prefixes{
				JS:   "JS",
				Vue:  "VUE",
				File: "FILE",
			},
		},
		Styles: Styles{
			File:   KindStyles{JS: lightblue, Vue: green},
			Prefix: KindStyles{JS: lightblue, Vue: green},
			Common: CommonStyles{
				Line:    Style{Color: "#ADD8E6"},
				Message: Style{Color: "#FFFFFF"},
			},
		},
		Indent: Indent{
			Short: "\t\t",
			Long:  "\t\t\t",
		},
		Labels: Labels{
			URL:           "[URL]",
			Type:          "[TYPE]",
			Content:       "[CONTENT]",
			Debug:         "[DEBUG]",
			ObjectOrArray: "[OBJECT OR ARRAY]",
		},
		SuppressedConsoleMethods: []string{"log", "warn", "error", "info", "debug"},
		EnvironmentModes:         []string{"development"},
		ModeEnv:                  "DEVCONSOLE_MODE",
	}
}

// Load loads configuration from a TOML file over the defaults.
// If path is empty, returns the default config
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if _, err := cfg.Rules(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Rules compiles the frame patterns
func (c *Config) Rules() (frame.Rules, error) {
	compile := func(name, expr string) (*regexp.Regexp, error) {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile %s pattern: %w", name, err)
		}
		return re, nil
	}

	rules := frame.Rules{
		UnknownFile:     c.Defaults.UnknownFile,
		UnknownLine:     c.Defaults.UnknownLineNumber,
		ScriptPrefix:    c.Defaults.Prefixes.JS,
		ComponentPrefix: c.Defaults.Prefixes.Vue,
		FilePrefix:      c.Defaults.Prefixes.File,
	}

	var err error
	if rules.File, err = compile("stack_trace", c.Regex.StackTrace); err != nil {
		return frame.Rules{}, err
	}
	if rules.ScriptLine, err = compile("js_line_number", c.Regex.JSLineNumber); err != nil {
		return frame.Rules{}, err
	}
	if rules.ComponentLine, err = compile("vue_line_number", c.Regex.VueLineNumber); err != nil {
		return frame.Rules{}, err
	}
	if rules.URL, err = compile("url", c.Regex.URL); err != nil {
		return frame.Rules{}, err
	}

	// The file and line patterns need a capture group; FindStringSubmatch
	// would otherwise return a single-element match.
	for name, re := range map[string]*regexp.Regexp{
		"stack_trace":     rules.File,
		"js_line_number":  rules.ScriptLine,
		"vue_line_number": rules.ComponentLine,
	} {
		if re.NumSubexp() < 1 {
			return frame.Rules{}, fmt.Errorf("%s pattern has no capture group", name)
		}
	}

	return rules, nil
}

// Mode returns the current mode from the environment, or the build default
func (c *Config) Mode() string {
	if c.ModeEnv != "" {
		if mode := os.Getenv(c.ModeEnv); mode != "" {
			return mode
		}
	}
	return buildtags.DefaultMode
}

// IsActiveMode reports whether mode keeps the console in pass-through
func (c *Config) IsActiveMode(mode string) bool {
	return slices.Contains(c.EnvironmentModes, mode)
}

// Suppressed reports whether a console method is redirected outside active modes
func (c *Config) Suppressed(method string) bool {
	return slices.Contains(c.SuppressedConsoleMethods, method)
}
