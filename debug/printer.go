// Package debug prints collapsible, source-tagged debug groups and guards
// the standard console methods outside development mode.
package debug

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/zaolin/devconsole/config"
	"github.com/zaolin/devconsole/console"
	"github.com/zaolin/devconsole/frame"
)

// Printer formats debug groups for the call site of its caller
type Printer struct {
	cfg    *config.Config
	out    console.Console
	parser frame.Parser
	source frame.Source
	mode   func() string
	state  *State

	mu sync.Mutex
}

// New creates a printer writing to out
func New(cfg *config.Config, out console.Console, opts ...Option) (*Printer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if out == nil {
		return nil, fmt.Errorf("console must not be nil")
	}

	p := &Printer{
		cfg:    cfg,
		out:    out,
		source: frame.RuntimeSource{},
		mode:   cfg.Mode,
		state:  DefaultState(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.parser == nil {
		rules, err := cfg.Rules()
		if err != nil {
			return nil, err
		}
		p.parser = frame.NewRegexParser(rules)
	}

	return p, nil
}

var (
	defaultOnce    sync.Once
	defaultPrinter *Printer
)

// Default returns a printer on stdout using the built-in config
func Default() *Printer {
	defaultOnce.Do(func() {
		p, err := New(config.Default(), console.Stdout())
		if err != nil {
			// The built-in patterns always compile.
			panic(err)
		}
		defaultPrinter = p
	})
	return defaultPrinter
}

// Print writes a debug group for message tagged with the caller's
// source location. verbose is accepted for call compatibility; the group
// is always written in full.
func (p *Printer) Print(message any, verbose bool) {
	p.output(2, message)
}

// Debug is Print with verbose set
func (p *Printer) Debug(message any) {
	p.output(2, message)
}

// PrintFrame writes a debug group for message using an already captured
// frame line instead of the current call stack.
func (p *Printer) PrintFrame(frameText string, message any) {
	if !p.active() {
		p.state.ShowNotice(p.out)
		return
	}
	p.write(frameText, message)
}

// Config returns the configuration the printer was built with
func (p *Printer) Config() *config.Config {
	return p.cfg
}

// State returns the notice state
func (p *Printer) State() *State {
	return p.state
}

// Console returns the console the printer writes to
func (p *Printer) Console() console.Console {
	return p.out
}

func (p *Printer) active() bool {
	return p.cfg.IsActiveMode(p.mode())
}

// output captures the frame depth levels above itself and prints.
func (p *Printer) output(depth int, message any) {
	// The guard already decided at construction; the mode is checked again
	// here because the printer can be used without a guard.
	if !p.active() {
		p.state.ShowNotice(p.out)
		return
	}
	p.write(p.source.Frame(depth), message)
}

func (p *Printer) write(frameText string, message any) {
	c := p.parser.Parse(frameText)
	prefixStyle := p.prefixStyle(c.Kind)
	messageStyle := p.cfg.Styles.Common.Message.Lipgloss()
	labels, indent := p.cfg.Labels, p.cfg.Indent

	ok := isStringable(message)
	body := labels.ObjectOrArray
	if ok {
		body = fmt.Sprint(message)
	}
	title := fmt.Sprintf("%s [%s] [%s:%s]%s%s",
		labels.Debug, c.Prefix, c.FileName, c.LineNumber, indent.Short, body)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.out.GroupCollapsed(title)
	defer p.out.GroupEnd()

	if c.URL != "" {
		p.out.Styled(
			console.Segment{Text: labels.URL + indent.Long, Style: messageStyle},
			console.Segment{Text: c.URL, Style: prefixStyle},
		)
	}

	p.out.Styled(
		console.Segment{Text: labels.Type + indent.Long, Style: messageStyle},
		console.Segment{Text: typeName(message), Style: prefixStyle},
	)

	p.out.Styled(
		console.Segment{Text: labels.Content + indent.Short, Style: messageStyle},
		console.Segment{Text: body, Style: prefixStyle},
	)
	if !ok {
		p.out.Dir(message)
	}
}

// prefixStyle picks the component styles for component frames and the
// script styles for everything else.
func (p *Printer) prefixStyle(k frame.Kind) lipgloss.Style {
	if k == frame.Component {
		return p.cfg.Styles.Prefix.Vue.Lipgloss()
	}
	return p.cfg.Styles.Prefix.JS.Lipgloss()
}

// isStringable reports whether v prints as text without a structural dump
func isStringable(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return false
	}
	switch v.(type) {
	case string, fmt.Stringer, error:
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "Array"
	}
	return t.String()
}
