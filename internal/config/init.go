package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// InitFile writes a commented trellis.toml with the default layout into dir.
// It refuses to overwrite an existing file. Returns the path written.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists", path)
	}

	if err := os.WriteFile(path, []byte(initTemplate), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

// initTemplate decodes to the same configuration as Defaults.
const initTemplate = `# trellis layout configuration
#
# Sizes are written as <n><unit>:
#   a  absolute cells          l  at least n cells
#   %  percent of the parent   m  at most n cells
#   f  fill what is left (n is ignored, use 0f)

# Smallest terminal the layout is designed for.
[window]
height = "24l"
width = "80l"

# Inspector popup, centered in the terminal.
[popup]
height = "80%"
width = "80%"

[theme]
accent_color = "#7D56F4"
border = "rounded"       # rounded, normal, thick or double

[log]
path = ""                # empty = trellis-debug.log in the temp directory
debug = false

# The first item is the root. Gadgets (searchbar, shortcuts, panetab,
# result_pane, gauge) can be given a per-parent size with "Parent->gadget".

[[items]]
identifier = "Root"
size = "100%"
split = "vertical"
children = ["TopArea", "MidArea", "BottomArea"]

[[items]]
identifier = "searchbar"
size = "0f"

[[items]]
identifier = "shortcuts"
size = "30%"

[[items]]
identifier = "panetab"
size = "3a"

[[items]]
identifier = "result_pane"
size = "0f"

[[items]]
identifier = "gauge"
size = "3a"

[[items]]
identifier = "TopArea"
size = "3a"
split = "horizontal"
children = ["searchbar"]

[[items]]
identifier = "MidArea"
size = "70%"
split = "horizontal"
children = ["shortcuts", "Central"]

[[items]]
identifier = "Central"
size = "0f"
split = "vertical"
children = ["panetab", "result_pane"]

[[items]]
identifier = "BottomArea"
size = "3l"
split = "vertical"
children = ["gauge"]
`
