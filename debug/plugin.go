package debug

// GlobalProperty is the name the plugin installs the entry point under
const GlobalProperty = "$debug"

// App is a host that exposes global properties to its components
type App interface {
	SetGlobalProperty(name string, value any)
}

// Func is the entry point signature installed on an App
type Func func(message any, verbose bool)

// Plugin attaches a printer to an App
type Plugin struct {
	Printer *Printer
}

// Install implements the host plugin hook
func (pl Plugin) Install(app App) {
	p := pl.Printer
	if p == nil {
		p = Default()
	}
	app.SetGlobalProperty(GlobalProperty, Func(func(message any, verbose bool) {
		p.output(2, message)
	}))
}

// Globals is a minimal App backed by a map
type Globals map[string]any

// SetGlobalProperty implements App
func (g Globals) SetGlobalProperty(name string, value any) {
	g[name] = value
}
