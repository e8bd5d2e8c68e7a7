package debug

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Console method names understood by the guard
const (
	MethodLog   = "log"
	MethodWarn  = "warn"
	MethodError = "error"
	MethodInfo  = "info"
	MethodDebug = "debug"
)

// Logger is the standard console surface applications log through
type Logger interface {
	Log(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Info(args ...any)
	Debug(args ...any)
}

// NewLogger reads the mode once and picks the logger for the rest of the
// process. In an active mode base is returned unchanged in behavior.
// Otherwise the notice is shown and every suppressed method is redirected
// into the printer.
func NewLogger(p *Printer, base *log.Logger) Logger {
	pass := &passThrough{base: base}
	if p.active() {
		return pass
	}

	p.state.ShowNotice(p.out)
	return &redirect{printer: p, pass: pass}
}

// passThrough forwards to a charm logger, joining arguments the way
// fmt.Println does
type passThrough struct {
	base *log.Logger
}

func (l *passThrough) Log(args ...any)   { l.base.Print(join(args)) }
func (l *passThrough) Warn(args ...any)  { l.base.Warn(join(args)) }
func (l *passThrough) Error(args ...any) { l.base.Error(join(args)) }
func (l *passThrough) Info(args ...any)  { l.base.Info(join(args)) }
func (l *passThrough) Debug(args ...any) { l.base.Debug(join(args)) }

func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// redirect sends suppressed methods to the printer with all arguments
// collected into one []any
type redirect struct {
	printer *Printer
	pass    *passThrough
}

func (r *redirect) Log(args ...any) {
	if !r.suppress(MethodLog, args) {
		r.pass.Log(args...)
	}
}

func (r *redirect) Warn(args ...any) {
	if !r.suppress(MethodWarn, args) {
		r.pass.Warn(args...)
	}
}

func (r *redirect) Error(args ...any) {
	if !r.suppress(MethodError, args) {
		r.pass.Error(args...)
	}
}

func (r *redirect) Info(args ...any) {
	if !r.suppress(MethodInfo, args) {
		r.pass.Info(args...)
	}
}

func (r *redirect) Debug(args ...any) {
	if !r.suppress(MethodDebug, args) {
		r.pass.Debug(args...)
	}
}

// suppress prints args through the printer if method is suppressed.
// The frame captured is the caller of the Logger method.
func (r *redirect) suppress(method string, args []any) bool {
	if !r.printer.cfg.Suppressed(method) {
		return false
	}
	r.printer.state.ShowNotice(r.printer.out)
	if args == nil {
		args = []any{}
	}
	r.printer.output(3, args)
	return true
}
