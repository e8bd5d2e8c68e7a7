// Package frame classifies call-stack frame lines by source file kind.
package frame

import "regexp"

// Kind is the coarse kind of source file a frame points at
type Kind int

const (
	Unknown Kind = iota
	Script
	Component
)

func (k Kind) String() string {
	switch k {
	case Script:
		return "script"
	case Component:
		return "component"
	default:
		return "unknown"
	}
}

// Classification is the result of parsing one frame line
type Classification struct {
	Kind       Kind
	Prefix     string
	FileName   string
	LineNumber string
	URL        string // empty when the frame carries no URL
}

// Parser turns a raw frame line into a Classification.
// Implementations must never fail; every miss degrades to a default.
type Parser interface {
	Parse(line string) Classification
}

// Rules holds the compiled patterns and fallbacks used by RegexParser
type Rules struct {
	File          *regexp.Regexp
	ScriptLine    *regexp.Regexp
	ComponentLine *regexp.Regexp
	URL           *regexp.Regexp

	UnknownFile string
	UnknownLine string

	ScriptPrefix    string
	ComponentPrefix string
	FilePrefix      string
}

// RegexParser classifies frames with ordered regular expressions
type RegexParser struct {
	rules Rules
}

// NewRegexParser creates a parser from compiled rules
func NewRegexParser(rules Rules) *RegexParser {
	return &RegexParser{rules: rules}
}

// Parse implements Parser
func (p *RegexParser) Parse(line string) Classification {
	c := Classification{
		FileName: p.fileName(line),
		URL:      p.url(line),
	}
	c.Kind, c.Prefix, c.LineNumber = p.lineInfo(line)
	return c
}

func (p *RegexParser) fileName(line string) string {
	if m := p.rules.File.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return p.rules.UnknownFile
}

// lineInfo tries the script pattern before the component pattern: the
// component pattern only differs by its trailing ")", so a line matching
// both is a script frame.
func (p *RegexParser) lineInfo(line string) (Kind, string, string) {
	if m := p.rules.ScriptLine.FindStringSubmatch(line); m != nil {
		return Script, p.rules.ScriptPrefix, m[1]
	}
	if m := p.rules.ComponentLine.FindStringSubmatch(line); m != nil {
		return Component, p.rules.ComponentPrefix, m[1]
	}
	return Unknown, p.rules.FilePrefix, p.rules.UnknownLine
}

func (p *RegexParser) url(line string) string {
	return p.rules.URL.FindString(line)
}
