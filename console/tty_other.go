//go:build !linux

package console

import "os"

func isTerminal(f *os.File) bool {
	return false
}
