package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Segment is one styled piece of a console line
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Console is the output surface the debug printer writes to
type Console interface {
	// Print writes a plain line
	Print(text string)
	// Styled writes one line made of styled segments
	Styled(segments ...Segment)
	// GroupCollapsed opens a titled group; following lines belong to it
	GroupCollapsed(title string)
	// GroupEnd closes the innermost group
	GroupEnd()
	// Dir writes a structural dump of v
	Dir(v any)
}

const groupIndent = "  "

// Terminal writes to an io.Writer, indenting the bodies of open groups
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	styled bool
	depth  int
}

// NewTerminal creates a console on w. Styles are rendered only when w
// is a terminal.
func NewTerminal(w io.Writer) *Terminal {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = isTerminal(f)
	}
	return &Terminal{w: w, styled: styled}
}

// Stdout returns a console on standard output
func Stdout() *Terminal {
	return NewTerminal(os.Stdout)
}

// Print implements Console
func (t *Terminal) Print(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeLines(text)
}

// Styled implements Console
func (t *Terminal) Styled(segments ...Segment) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeLines(Render(t.styled, segments...))
}

// GroupCollapsed implements Console
func (t *Terminal) GroupCollapsed(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeLines("▸ " + title)
	t.depth++
}

// GroupEnd implements Console
func (t *Terminal) GroupEnd() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.depth > 0 {
		t.depth--
	}
}

// Dir implements Console
func (t *Terminal) Dir(v any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeLines(Inspect(v))
}

func (t *Terminal) writeLines(text string) {
	prefix := strings.Repeat(groupIndent, t.depth)
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(t.w, "%s%s\n", prefix, line)
	}
}

// Render joins segments, applying their styles when styled is set
func Render(styled bool, segments ...Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if styled {
			b.WriteString(s.Style.Render(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Inspect renders v as YAML, falling back to Go syntax for values YAML
// cannot represent.
func Inspect(v any) (dump string) {
	defer func() {
		if r := recover(); r != nil {
			dump = fmt.Sprintf("%#v", v)
		}
	}()
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return strings.TrimSuffix(string(out), "\n")
}
