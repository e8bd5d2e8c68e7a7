package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zaolin/devconsole/console"
)

const testFrame = "    at load (/app/src/foo.js:12:34"

func TestNewPrinterModeOverridesEnvironment(t *testing.T) {
	t.Setenv("DEVCONSOLE_MODE", "production")

	rec := console.NewRecorder()
	p, err := newPrinter(&Globals{Mode: "development"}, rec)
	if err != nil {
		t.Fatalf("newPrinter: %v", err)
	}
	p.PrintFrame(testFrame, "hi")

	groups := rec.Groups()
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if !strings.Contains(groups[0].Title, "[JS] [foo.js:12]") {
		t.Fatalf("title = %q", groups[0].Title)
	}
}

func TestNewPrinterWithoutModeUsesEnvironment(t *testing.T) {
	t.Setenv("DEVCONSOLE_MODE", "production")

	rec := console.NewRecorder()
	p, err := newPrinter(&Globals{}, rec)
	if err != nil {
		t.Fatalf("newPrinter: %v", err)
	}
	p.PrintFrame(testFrame, "hi")

	if len(rec.Groups()) != 0 {
		t.Fatal("production mode must not print debug groups")
	}
}

func TestNewPrinterModeWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devconsole.toml")
	if err := os.WriteFile(path, []byte(`environment_modes = ["staging"]`), 0644); err != nil {
		t.Fatal(err)
	}

	rec := console.NewRecorder()
	p, err := newPrinter(&Globals{Config: path, Mode: "staging"}, rec)
	if err != nil {
		t.Fatalf("newPrinter: %v", err)
	}
	p.PrintFrame(testFrame, "hi")
	if len(rec.Groups()) != 1 {
		t.Fatal("staging is active in this config")
	}

	rec = console.NewRecorder()
	p, err = newPrinter(&Globals{Config: path, Mode: "development"}, rec)
	if err != nil {
		t.Fatalf("newPrinter: %v", err)
	}
	p.PrintFrame(testFrame, "hi")
	if len(rec.Groups()) != 0 {
		t.Fatal("development is not active in this config")
	}
}

func TestNewPrinterBadConfig(t *testing.T) {
	_, err := newPrinter(&Globals{Config: filepath.Join(t.TempDir(), "missing.toml")}, console.NewRecorder())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}
