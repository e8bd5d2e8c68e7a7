package main

// Globals are flags shared by every command
type Globals struct {
	Config string `type:"path" help:"Path to TOML config file"`
	Mode   string `short:"m" help:"Override the current mode (default: $DEVCONSOLE_MODE or the build default)"`
}

// CLI defines the root command structure with subcommands
type CLI struct {
	Globals

	Classify ClassifyCmd `cmd:"" help:"Classify stack frame lines"`
	Print    PrintCmd    `cmd:"" help:"Print a debug group for a message"`
	Log      LogCmd      `cmd:"" help:"Log through the console guard"`
	Replay   ReplayCmd   `cmd:"" help:"Replay recorded frame/message pairs"`
	Notice   NoticeCmd   `cmd:"" help:"Show the production notice"`
	Dump     ConfigCmd   `cmd:"" name:"config" help:"Print the effective configuration as TOML"`
}

// ClassifyCmd classifies frame lines
type ClassifyCmd struct {
	Frames []string `arg:"" help:"Frame lines to classify"`
}

// PrintCmd prints a debug group for the call site of the command
type PrintCmd struct {
	Message []string `arg:"" help:"Message words; joined with spaces"`
	Frame   string   `short:"f" help:"Use this frame line instead of the captured call stack"`
}

// LogCmd sends arguments through a console method
type LogCmd struct {
	Method string   `short:"M" default:"log" enum:"log,warn,error,info,debug" help:"Console method"`
	Args   []string `arg:"" optional:"" help:"Arguments passed to the method"`
}

// ReplayCmd replays a JSON-lines file of {"frame", "message"} records
type ReplayCmd struct {
	File string `arg:"" type:"existingfile" help:"Replay file (.jsonl, optionally .gz, .zst or .xz)"`
	View bool   `short:"v" help:"Browse the groups in an interactive viewer"`
}

// NoticeCmd prints the notice
type NoticeCmd struct{}

// ConfigCmd dumps the effective configuration
type ConfigCmd struct{}
