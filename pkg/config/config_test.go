package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-pulse/pulse/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("absent pulse.yaml must not be an error, got %v", err)
	}
	if cfg == nil || cfg.App.Name != "" {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadOptionalParsesToolkit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  name: demo
toolkit:
  shownClass: open
  hiddenClass: closed
  accessibility: true
  frameRate: 120
`)
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Name != "demo" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.Toolkit.ShownClass != "open" || cfg.Toolkit.HiddenClass != "closed" {
		t.Errorf("Toolkit classes = %+v", cfg.Toolkit)
	}
	if !cfg.Toolkit.Accessibility {
		t.Error("Accessibility should be true")
	}
	if got := cfg.Toolkit.Interval(); got != time.Second/120 {
		t.Errorf("Interval = %v, want %v", got, time.Second/120)
	}
}

func TestLoadOptionalMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "toolkit: [not a mapping")
	_, err := LoadOptional(dir)
	var pe *errors.PulseError
	if err == nil || !stderrors.As(err, &pe) || pe.Kind != errors.KindConfig {
		t.Fatalf("err = %v, want config-kind PulseError", err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/widgets/demo\n\ngo 1.24.0\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.ModulePath != "example.com/widgets/demo" {
		t.Errorf("ModulePath = %q", r.ModulePath)
	}
	if r.AppName != "demo" {
		t.Errorf("AppName = %q, want demo", r.AppName)
	}
	if r.Toolkit.ShownClass != "show" || r.Toolkit.HiddenClass != "hide" {
		t.Errorf("Toolkit defaults = %+v", r.Toolkit)
	}
	if r.Toolkit.DisplayProperty != "display" {
		t.Errorf("DisplayProperty = %q", r.Toolkit.DisplayProperty)
	}
}

func TestResolveMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/demo\n")
	writeFile(t, dir, FileName, `
app:
  name: CustomName
toolkit:
  shownClass: visible
`)
	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.AppName != "CustomName" {
		t.Errorf("AppName = %q", r.AppName)
	}
	if r.Toolkit.ShownClass != "visible" {
		t.Errorf("ShownClass = %q", r.Toolkit.ShownClass)
	}
	// Unset fields fall back to defaults.
	if r.Toolkit.HiddenClass != "hide" {
		t.Errorf("HiddenClass = %q, want hide", r.Toolkit.HiddenClass)
	}
}

func TestResolveMissingGoMod(t *testing.T) {
	_, err := Resolve(t.TempDir())
	var pe *errors.PulseError
	if err == nil || !stderrors.As(err, &pe) || pe.Kind != errors.KindConfig {
		t.Fatalf("err = %v, want config-kind PulseError", err)
	}
}

func TestDefaultInterval(t *testing.T) {
	if got := DefaultOptions().Interval(); got != time.Second/60 {
		t.Errorf("default Interval = %v, want 60Hz", got)
	}
}
