package debug

import (
	"errors"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/zaolin/devconsole/config"
	"github.com/zaolin/devconsole/console"
	"github.com/zaolin/devconsole/frame"
)

const (
	scriptFrame    = "    at load (/app/src/api/foo.js:12:34"
	componentFrame = "    at setup (/app/src/components/Bar.vue:5:1)"
	urlFrame       = "    at fetchData https://example.com/path/app.js:3:9"
)

func newTestPrinter(t *testing.T, mode string, opts ...Option) (*Printer, *console.Recorder) {
	t.Helper()
	rec := console.NewRecorder()
	opts = append([]Option{WithMode(FixedMode(mode)), WithState(&State{})}, opts...)
	p, err := New(config.Default(), rec, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p, rec
}

func lineTexts(g console.Group) []string {
	out := make([]string, len(g.Lines))
	for i, l := range g.Lines {
		out[i] = l.Text()
	}
	return out
}

func TestPrintStringMessage(t *testing.T) {
	p, rec := newTestPrinter(t, "development", WithSource(frame.StaticSource(scriptFrame)))

	p.Print("hello world", true)

	groups := rec.Groups()
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	wantTitle := "[DEBUG] [JS] [foo.js:12]\t\thello world"
	if groups[0].Title != wantTitle {
		t.Fatalf("title = %q, want %q", groups[0].Title, wantTitle)
	}
	want := []string{
		"[TYPE]\t\t\tstring",
		"[CONTENT]\t\thello world",
	}
	got := lineTexts(groups[0])
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if p.State().NoticeShown() {
		t.Fatal("notice must not show in development")
	}
}

func TestPrintListMessageDumps(t *testing.T) {
	p, rec := newTestPrinter(t, "development", WithSource(frame.StaticSource(componentFrame)))

	p.Debug([]string{"a", "b"})

	g := rec.Groups()[0]
	if !strings.HasSuffix(g.Title, "[VUE] [Bar.vue:5]\t\t[OBJECT OR ARRAY]") {
		t.Fatalf("title = %q", g.Title)
	}
	got := lineTexts(g)
	want := []string{
		"[TYPE]\t\t\tArray",
		"[CONTENT]\t\t[OBJECT OR ARRAY]",
		"- a\n- b",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestPrintStructuredMessageDumps(t *testing.T) {
	p, rec := newTestPrinter(t, "development", WithSource(frame.StaticSource(scriptFrame)))

	p.Debug(map[string]int{"count": 3})

	g := rec.Groups()[0]
	if !strings.Contains(g.Title, "[OBJECT OR ARRAY]") {
		t.Fatalf("title = %q", g.Title)
	}
	got := lineTexts(g)
	if got[0] != "[TYPE]\t\t\tmap[string]int" {
		t.Fatalf("type line = %q", got[0])
	}
	if got[len(got)-1] != "count: 3" {
		t.Fatalf("dump = %q", got[len(got)-1])
	}
}

func TestPrintURLSection(t *testing.T) {
	p, rec := newTestPrinter(t, "development", WithSource(frame.StaticSource(urlFrame)))
	p.Debug("x")

	got := lineTexts(rec.Groups()[0])
	if got[0] != "[URL]\t\t\thttps://example.com/path/app.js:3:9" {
		t.Fatalf("url line = %q", got[0])
	}

	p, rec = newTestPrinter(t, "development", WithSource(frame.StaticSource(scriptFrame)))
	p.Debug("x")
	for _, l := range lineTexts(rec.Groups()[0]) {
		if strings.HasPrefix(l, "[URL]") {
			t.Fatalf("unexpected url line %q", l)
		}
	}
}

func TestPrintUnknownFrame(t *testing.T) {
	p, rec := newTestPrinter(t, "development", WithSource(frame.StaticSource("    at <anonymous>")))
	p.Debug(42)

	g := rec.Groups()[0]
	if g.Title != "[DEBUG] [FILE] [Unknown file:0000]\t\t42" {
		t.Fatalf("title = %q", g.Title)
	}
	if lineTexts(g)[0] != "[TYPE]\t\t\tint" {
		t.Fatalf("type line = %q", lineTexts(g)[0])
	}
}

func TestPrintCapturesCallSite(t *testing.T) {
	p, rec := newTestPrinter(t, "development")

	p.Print("here", true)
	_, _, next, _ := runtime.Caller(0)

	want := "[DEBUG] [JS] [printer_test.go:" + strconv.Itoa(next-1) + "]\t\there"
	if got := rec.Groups()[0].Title; got != want {
		t.Fatalf("title = %q, want %q", got, want)
	}
}

func TestPrintInactiveModeShowsNoticeOnce(t *testing.T) {
	p, rec := newTestPrinter(t, "production", WithSource(frame.StaticSource(scriptFrame)))

	for i := 0; i < 5; i++ {
		p.Debug("ignored")
		p.PrintFrame(scriptFrame, "ignored")
	}

	if len(rec.Groups()) != 0 {
		t.Fatalf("groups = %d, want none", len(rec.Groups()))
	}
	loose := rec.Loose()
	if len(loose) != 1 || loose[0].Text() != Notice {
		t.Fatalf("loose = %d lines, want the notice once", len(loose))
	}
	if !p.State().NoticeShown() {
		t.Fatal("NoticeShown() = false")
	}
}

func TestModeCheckedPerCall(t *testing.T) {
	mode := "production"
	p, rec := newTestPrinter(t, "", WithMode(func() string { return mode }),
		WithSource(frame.StaticSource(scriptFrame)))

	p.Debug("first")
	mode = "development"
	p.Debug("second")

	groups := rec.Groups()
	if len(groups) != 1 || !strings.HasSuffix(groups[0].Title, "second") {
		t.Fatalf("groups = %+v", groups)
	}
}

type stringer struct{}

func (stringer) String() string { return "stringer!" }

type names []string

func (n names) String() string { return strings.Join(n, ",") }

func TestIsStringable(t *testing.T) {
	var nilMap map[string]int
	cases := []struct {
		v    any
		want bool
	}{
		{"text", true},
		{3.5, true},
		{true, true},
		{stringer{}, true},
		{errors.New("boom"), true},
		{nil, false},
		{[]int{1}, false},
		{[2]int{1, 2}, false},
		{names{"a"}, false},
		{map[string]int{}, false},
		{nilMap, false},
		{struct{ A int }{1}, false},
		{&struct{ A int }{1}, false},
	}
	for _, tc := range cases {
		if got := isStringable(tc.v); got != tc.want {
			t.Errorf("isStringable(%#v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestTypeName(t *testing.T) {
	cases := map[string]any{
		"nil":            nil,
		"Array":          []any{1},
		"string":         "s",
		"float64":        1.0,
		"debug.stringer": stringer{},
	}
	for want, v := range cases {
		if got := typeName(v); got != want {
			t.Errorf("typeName(%#v) = %q, want %q", v, got, want)
		}
	}
	if got := typeName([3]int{}); got != "Array" {
		t.Errorf("typeName(array) = %q", got)
	}
}

func TestNewRejectsNilOptions(t *testing.T) {
	rec := console.NewRecorder()
	if _, err := New(nil, rec, WithSource(nil)); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := New(nil, nil); err == nil {
		t.Fatal("expected error for nil console")
	}
}
