// Package prefs reads the viewer's presentation preferences from
// ~/.config/errlens/prefs.toml. The file is optional and never written.
package prefs

import (
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/errlens/internal/config"
)

// Prefs controls how lines are drawn, not which lines are shown.
type Prefs struct {
	Theme       string `toml:"theme"`
	LineNumbers bool   `toml:"line_numbers"`
}

const (
	defaultPrefsPath = "~/.config/errlens/prefs.toml"
	defaultTheme     = "Dracula"
)

// Default returns the preferences used when no file is present.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from path, or from the default location when path
// is blank. Any problem with the file yields Default: a broken prefs file
// must not keep the log from being shown.
func Load(path string) Prefs {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return Default()
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default()
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p
}
