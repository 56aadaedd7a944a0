// Package config parses trellis.toml layout configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/LISSConsulting/LISSTech.Trellis/internal/layout"
)

// FileName is the configuration file looked up by Load.
const FileName = "trellis.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// ErrNotFound is returned by Load when no trellis.toml exists in the working
// directory or any of its parents.
var ErrNotFound = errors.New("config: " + FileName + " not found")

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// borderNames lists the accepted theme.border values.
var borderNames = []string{"rounded", "normal", "thick", "double"}

// Config is the top-level trellis.toml configuration.
type Config struct {
	Window layout.Window `toml:"window"`
	Popup  layout.Popup  `toml:"popup"`
	Theme  ThemeConfig   `toml:"theme"`
	Log    LogConfig     `toml:"log"`
	Items  []layout.Item `toml:"items"`
}

// ThemeConfig controls the preview appearance.
type ThemeConfig struct {
	AccentColor string `toml:"accent_color"`
	Border      string `toml:"border"` // rounded, normal, thick or double
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Path  string `toml:"path"` // empty = logger default
	Debug bool   `toml:"debug"`
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together, including
// any error from linking the item list into a tree.
func (c *Config) Validate() error {
	var errs []error

	if c.Theme.AccentColor != "" && !hexColorRe.MatchString(c.Theme.AccentColor) {
		errs = append(errs, fmt.Errorf("theme.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}
	if c.Theme.Border != "" && !isBorderName(c.Theme.Border) {
		errs = append(errs, fmt.Errorf("theme.border must be one of %s", strings.Join(borderNames, ", ")))
	}

	missingID := false
	for i, it := range c.Items {
		if it.Identifier.Name == "" {
			errs = append(errs, fmt.Errorf("items[%d].identifier must be set", i))
			missingID = true
		}
	}
	if !missingID {
		if _, err := c.Tree(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Tree links the configured items into a layout tree.
func (c *Config) Tree() (*layout.ItemTree, error) {
	return layout.Build(c.Items)
}

func isBorderName(name string) bool {
	for _, b := range borderNames {
		if b == name {
			return true
		}
	}
	return false
}

// Defaults returns a Config with the stock layout: a search bar on top, a
// shortcuts column beside a tabbed result pane, and a gauge at the bottom.
func Defaults() Config {
	return Config{
		Window: layout.Window{
			Height: layout.AtLeast(24),
			Width:  layout.AtLeast(80),
		},
		Popup: layout.Popup{
			Height: layout.Relative(80),
			Width:  layout.Relative(80),
		},
		Theme: ThemeConfig{
			AccentColor: DefaultAccentColor,
			Border:      "rounded",
		},
		Items: DefaultItems(),
	}
}

// DefaultItems returns the stock item list. The first item is the root.
func DefaultItems() []layout.Item {
	c, g := layout.Container, layout.Gadget
	return []layout.Item{
		{
			Identifier: c("Root"),
			Size:       layout.Relative(100),
			Children:   []layout.Identifier{c("TopArea"), c("MidArea"), c("BottomArea")},
			Split:      layout.Vertical,
		},
		{Identifier: g("searchbar"), Size: layout.Fill()},
		{Identifier: g("shortcuts"), Size: layout.Relative(30)},
		{Identifier: g("panetab"), Size: layout.Absolute(3)},
		{Identifier: g("result_pane"), Size: layout.Fill()},
		{Identifier: g("gauge"), Size: layout.Absolute(3)},
		{
			Identifier: c("TopArea"),
			Size:       layout.Absolute(3),
			Children:   []layout.Identifier{g("searchbar")},
			Split:      layout.Horizontal,
		},
		{
			Identifier: c("MidArea"),
			Size:       layout.Relative(70),
			Children:   []layout.Identifier{g("shortcuts"), c("Central")},
			Split:      layout.Horizontal,
		},
		{
			Identifier: c("Central"),
			Size:       layout.Fill(),
			Children:   []layout.Identifier{g("panetab"), g("result_pane")},
			Split:      layout.Vertical,
		},
		{
			Identifier: c("BottomArea"),
			Size:       layout.AtLeast(3),
			Children:   []layout.Identifier{g("gauge")},
			Split:      layout.Vertical,
		},
	}
}

// Load reads trellis.toml from the given path. If path is empty, it walks up
// from the current working directory looking for trellis.toml. Returns an
// error if the file contains unknown keys (likely typos) or fails validation.
// A file without any [[items]] keeps the default layout.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	// Items are decoded into a fresh slice; decoding over the defaults would
	// let omitted keys inherit values from the default item at the same index.
	cfg.Items = nil
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	if !meta.IsDefined("items") {
		cfg.Items = DefaultItems()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for trellis.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched up from %s)", ErrNotFound, dir)
		}
		dir = parent
	}
}
