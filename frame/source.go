package frame

import (
	"fmt"
	"runtime"
)

// Source produces the text of a call-stack frame.
// skip counts frames above the caller of Frame: 0 is the caller itself.
type Source interface {
	Frame(skip int) string
}

// RuntimeSource renders Go frames as "    at <file>:<line>:0".
// The function name is left out: its import path contains "/" and would
// be matched by the file pattern ahead of the real path. Go has no column
// information, so the column is always zero.
type RuntimeSource struct{}

// Frame implements Source
func (RuntimeSource) Frame(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("    at %s:%d:0", file, line)
}

// StaticSource always returns the same line
type StaticSource string

// Frame implements Source
func (s StaticSource) Frame(int) string {
	return string(s)
}
