package console

import (
	"strings"
	"sync"
)

// Line is one recorded console line
type Line struct {
	Segments []Segment
}

// Text returns the line without styling
func (l Line) Text() string {
	return Render(false, l.Segments...)
}

// Group is a recorded collapsible group
type Group struct {
	Title string
	Lines []Line
}

// Recorder keeps console output in memory.
// Lines written outside a group are kept in Loose.
type Recorder struct {
	mu     sync.Mutex
	groups []Group
	loose  []Line
	depth  int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Print implements Console
func (r *Recorder) Print(text string) {
	r.add(Segment{Text: text})
}

// Styled implements Console
func (r *Recorder) Styled(segments ...Segment) {
	r.add(segments...)
}

// GroupCollapsed implements Console. Nested groups are flattened into
// the outermost one.
func (r *Recorder) GroupCollapsed(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.depth > 0 {
		r.appendLine(Line{Segments: []Segment{{Text: title}}})
	} else {
		r.groups = append(r.groups, Group{Title: title})
	}
	r.depth++
}

// GroupEnd implements Console
func (r *Recorder) GroupEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.depth > 0 {
		r.depth--
	}
}

// Dir implements Console
func (r *Recorder) Dir(v any) {
	r.add(Segment{Text: Inspect(v)})
}

// Groups returns a copy of the recorded groups
func (r *Recorder) Groups() []Group {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// Loose returns the lines written outside any group
func (r *Recorder) Loose() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.loose))
	copy(out, r.loose)
	return out
}

// String renders everything recorded as plain text, groups last
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	for _, l := range r.loose {
		b.WriteString(l.Text())
		b.WriteString("\n")
	}
	for _, g := range r.groups {
		b.WriteString(g.Title)
		b.WriteString("\n")
		for _, l := range g.Lines {
			b.WriteString(groupIndent)
			b.WriteString(l.Text())
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Recorder) add(segments ...Segment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendLine(Line{Segments: segments})
}

func (r *Recorder) appendLine(l Line) {
	if r.depth > 0 {
		g := &r.groups[len(r.groups)-1]
		g.Lines = append(g.Lines, l)
		return
	}
	r.loose = append(r.loose, l)
}
