// Package replay feeds recorded frame/message pairs through a printer.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/zaolin/devconsole/debug"
	"github.com/zaolin/devconsole/internal/compress"
)

// Entry is one replay record
type Entry struct {
	Frame   string `json:"frame"`
	Message any    `json:"message"`
}

// maxLine bounds a single JSON line; replay messages can carry large dumps.
const maxLine = 4 << 20

// Decode reads JSON-lines entries from r. Blank lines are ignored and
// malformed lines are skipped with a warning.
func Decode(r io.Reader, logger *log.Logger) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			logger.Warn("skipping malformed replay line", "line", lineNo, "err", err)
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return entries, fmt.Errorf("read replay: %w", err)
	}
	return entries, nil
}

// Open reads a replay file, decompressing it by extension
func Open(path string, logger *log.Logger) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := compress.NewReader(f, compress.AlgorithmFor(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	return Decode(zr, logger)
}

// Play prints every entry through p
func Play(p *debug.Printer, entries []Entry) {
	for _, e := range entries {
		p.PrintFrame(e.Frame, e.Message)
	}
}
