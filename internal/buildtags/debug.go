//go:build debug

package buildtags

// DebugEnabled indicates whether the binary was built with the debug tag
const DebugEnabled = true

// DefaultMode is the mode used when no mode is set in the environment
const DefaultMode = "development"
