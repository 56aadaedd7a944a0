package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.Trellis/internal/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"window.height", cfg.Window.Height, layout.AtLeast(24)},
		{"window.width", cfg.Window.Width, layout.AtLeast(80)},
		{"popup.height", cfg.Popup.Height, layout.Relative(80)},
		{"popup.width", cfg.Popup.Width, layout.Relative(80)},
		{"theme.accent_color", cfg.Theme.AccentColor, DefaultAccentColor},
		{"theme.border", cfg.Theme.Border, "rounded"},
		{"log.path", cfg.Log.Path, ""},
		{"log.debug", cfg.Log.Debug, false},
		{"items", len(cfg.Items), 10},
		{"root", cfg.Items[0].Identifier, layout.Container("Root")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
[window]
height = "10l"
width = "40m"

[popup]
height = "12a"
width = "50%"

[theme]
accent_color = "#FF00AA"
border = "thick"

[log]
path = "/tmp/trellis-test.log"
debug = true

[[items]]
identifier = "Main"
split = "horizontal"
children = ["Left", "gauge"]

[[items]]
identifier = "Left"
size = "25%"

[[items]]
identifier = "gauge"
size = "0f"
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			got  any
			want any
		}{
			{"window.height", cfg.Window.Height, layout.AtLeast(10)},
			{"window.width", cfg.Window.Width, layout.AtMost(40)},
			{"popup.height", cfg.Popup.Height, layout.Absolute(12)},
			{"popup.width", cfg.Popup.Width, layout.Relative(50)},
			{"theme.accent_color", cfg.Theme.AccentColor, "#FF00AA"},
			{"theme.border", cfg.Theme.Border, "thick"},
			{"log.path", cfg.Log.Path, "/tmp/trellis-test.log"},
			{"log.debug", cfg.Log.Debug, true},
			{"items", len(cfg.Items), 3},
			{"root split", cfg.Items[0].Split, layout.Horizontal},
			{"root size", cfg.Items[0].Size, layout.Fill()},
			{"left size", cfg.Items[1].Size, layout.Relative(25)},
			{"gadget", cfg.Items[2].Identifier, layout.Gadget("gauge")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.got != tt.want {
					t.Errorf("got %v, want %v", tt.got, tt.want)
				}
			})
		}

		tree, err := cfg.Tree()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := tree.Lookup(layout.Gadget("Main->gauge")); !ok {
			t.Error("Main->gauge not linked")
		}
	})

	t.Run("partial config uses defaults", func(t *testing.T) {
		path := writeConfig(t, `
[theme]
border = "double"
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		if cfg.Theme.Border != "double" {
			t.Errorf("theme.border: got %q, want %q", cfg.Theme.Border, "double")
		}
		if cfg.Theme.AccentColor != DefaultAccentColor {
			t.Errorf("theme.accent_color: got %q, want %q (default)", cfg.Theme.AccentColor, DefaultAccentColor)
		}
		if cfg.Window.Width != layout.AtLeast(80) {
			t.Errorf("window.width: got %v, want 80l (default)", cfg.Window.Width)
		}
		if !reflect.DeepEqual(cfg.Items, DefaultItems()) {
			t.Error("items: want default layout when no [[items]] are given")
		}
	})

	t.Run("items replace the defaults wholesale", func(t *testing.T) {
		path := writeConfig(t, `
[[items]]
identifier = "Only"
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		want := []layout.Item{{Identifier: layout.Container("Only")}}
		if !reflect.DeepEqual(cfg.Items, want) {
			t.Errorf("items = %+v, want %+v", cfg.Items, want)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := Load("/nonexistent/trellis.toml")
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid toml returns error", func(t *testing.T) {
		path := writeConfig(t, "not valid [[[ toml")
		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := writeConfig(t, `
[theme]
acent_color = "#FFFFFF"
`)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		if !strings.Contains(err.Error(), "theme.acent_color") {
			t.Errorf("error %q does not name the unknown key", err)
		}
	})

	t.Run("malformed length names the literal", func(t *testing.T) {
		path := writeConfig(t, `
[window]
height = "24x"
`)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for malformed length")
		}
		if !strings.Contains(err.Error(), "24x") {
			t.Errorf("error %q does not name the literal", err)
		}
	})

	t.Run("bad split is rejected", func(t *testing.T) {
		path := writeConfig(t, `
[[items]]
identifier = "Root"
split = "Vertical"
`)

		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "invalid split") {
			t.Errorf("err = %v, want invalid split", err)
		}
	})

	t.Run("unlinkable items are rejected", func(t *testing.T) {
		path := writeConfig(t, `
[[items]]
identifier = "Root"
children = ["gauge"]
`)

		if _, err := Load(path); !errors.Is(err, layout.ErrMissingGadgetDefinition) {
			t.Errorf("err = %v, want ErrMissingGadgetDefinition", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty accent keeps lipgloss default", func(c *Config) { c.Theme.AccentColor = "" }, ""},
		{"bad accent", func(c *Config) { c.Theme.AccentColor = "purple" }, "theme.accent_color"},
		{"short accent", func(c *Config) { c.Theme.AccentColor = "#FFF" }, "theme.accent_color"},
		{"bad border", func(c *Config) { c.Theme.Border = "dotted" }, "theme.border"},
		{"no items", func(c *Config) { c.Items = nil }, "empty"},
		{"missing identifier", func(c *Config) { c.Items = []layout.Item{{}} }, "items[0].identifier"},
		{"duplicate item", func(c *Config) { c.Items = append(c.Items, c.Items[1]) }, "searchbar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		cfg := Defaults()
		cfg.Theme.AccentColor = "nope"
		cfg.Theme.Border = "nope"
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error")
		}
		for _, want := range []string{"theme.accent_color", "theme.border"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q missing %q", err, want)
			}
		}
	})
}

func TestLoadAutoDiscovery(t *testing.T) {
	t.Run("finds trellis.toml in parent directory", func(t *testing.T) {
		root := t.TempDir()
		child := filepath.Join(root, "sub", "dir")
		if err := os.MkdirAll(child, 0755); err != nil {
			t.Fatal(err)
		}

		content := `[theme]
border = "normal"
`
		if err := os.WriteFile(filepath.Join(root, FileName), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(child); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Theme.Border != "normal" {
			t.Errorf("theme.border: got %q, want %q", cfg.Theme.Border, "normal")
		}
	})

	t.Run("returns ErrNotFound when trellis.toml not found anywhere", func(t *testing.T) {
		dir := t.TempDir()
		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}

		_, err := Load("")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestInitFile(t *testing.T) {
	t.Run("creates trellis.toml", func(t *testing.T) {
		dir := t.TempDir()
		path, err := InitFile(dir)
		if err != nil {
			t.Fatal(err)
		}

		if filepath.Base(path) != FileName {
			t.Errorf("expected %s, got %s", FileName, filepath.Base(path))
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("generated file is not valid: %v", err)
		}
		if want := Defaults(); !reflect.DeepEqual(*cfg, want) {
			t.Errorf("generated config differs from defaults:\ngot  %+v\nwant %+v", *cfg, want)
		}
	})

	t.Run("refuses to overwrite existing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, FileName)
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := InitFile(dir); err == nil {
			t.Error("expected error when trellis.toml already exists")
		}
		content, _ := os.ReadFile(path)
		if string(content) != "existing" {
			t.Errorf("existing file was modified: %q", content)
		}
	})
}
