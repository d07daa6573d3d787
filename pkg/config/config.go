// Package config loads the optional pulse.yaml toolkit configuration and
// resolves defaults from the host project's go.mod.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-pulse/pulse/pkg/errors"
)

// FileName is the optional per-project configuration file.
const FileName = "pulse.yaml"

// Options configures scheduler construction defaults.
type Options struct {
	// ShownClass is the class Reveal adds and Conceal removes.
	ShownClass string `yaml:"shownClass,omitempty"`
	// HiddenClass is the class Conceal adds and Reveal removes.
	HiddenClass string `yaml:"hiddenClass,omitempty"`
	// DisplayProperty is the style property used to fully hide a target.
	DisplayProperty string `yaml:"displayProperty,omitempty"`
	// Accessibility turns the global aria support on at startup.
	Accessibility bool `yaml:"accessibility,omitempty"`
	// FrameRate is the driver stepping rate in frames per second; zero
	// means 60.
	FrameRate int `yaml:"frameRate,omitempty"`
}

// Interval returns the driver stepping interval implied by FrameRate.
func (o Options) Interval() time.Duration {
	if o.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(o.FrameRate)
}

// DefaultOptions returns the built-in scheduler defaults.
func DefaultOptions() Options {
	return Options{
		ShownClass:      "show",
		HiddenClass:     "hide",
		DisplayProperty: "display",
	}
}

// AppConfig contains host application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// Config represents the optional pulse.yaml configuration.
type Config struct {
	App     AppConfig `yaml:"app"`
	Toolkit Options   `yaml:"toolkit"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Toolkit    Options
}

// LoadOptional reads pulse.yaml if present. An absent file yields an empty
// configuration, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, &errors.PulseError{Op: "config.LoadOptional", Kind: errors.KindConfig, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.PulseError{Op: "config.LoadOptional", Kind: errors.KindConfig, Err: err}
	}

	return &cfg, nil
}

// Resolve loads pulse.yaml (if present) and resolves defaults, including
// the host module path from go.mod.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := hostModulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Toolkit:    cfg.Toolkit.withDefaults(),
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ShownClass == "" {
		o.ShownClass = def.ShownClass
	}
	if o.HiddenClass == "" {
		o.HiddenClass = def.HiddenClass
	}
	if o.DisplayProperty == "" {
		o.DisplayProperty = def.DisplayProperty
	}
	return o
}

func hostModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", &errors.PulseError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", &errors.PulseError{
			Op:   "config.Resolve",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("could not determine module path from go.mod"),
		}
	}
	if err := module.CheckPath(path); err != nil {
		return "", &errors.PulseError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "pulse_app"
	}
	return base
}
