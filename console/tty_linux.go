package console

import (
	"os"

	"golang.org/x/sys/unix"
)

// isTerminal probes the terminal settings of f; only a tty has them
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}
