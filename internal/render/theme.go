package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/errlens/internal/errlog"
)

// Theme defines the colors used to present a log.
type Theme struct {
	Name string

	Surface string
	Text    string
	Muted   string
	Faint   string
	Accent  string

	// Category colors
	Error      string
	Warning    string
	Notice     string
	Deprecated string
	Trace      string
}

// Styles contains pre-built Lipgloss styles for a theme.
type Styles struct {
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Datetime lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style

	categories map[errlog.Category]lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return Styles{
		Text:     fg(t.Text),
		Muted:    fg(t.Muted),
		Datetime: fg(t.Faint),
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Active:   fg(t.Accent).Bold(true),
		Inactive: fg(t.Faint).Strikethrough(true),

		categories: map[errlog.Category]lipgloss.Style{
			errlog.Error:            fg(t.Error),
			errlog.Warning:          fg(t.Warning),
			errlog.Notice:           fg(t.Notice),
			errlog.Deprecated:       fg(t.Deprecated),
			errlog.StackTraceTitle:  fg(t.Trace).Italic(true),
			errlog.StackTraceStep:   fg(t.Trace),
			errlog.StackTraceOrigin: fg(t.Trace).Italic(true),
			errlog.Other:            fg(t.Text),
		},
	}
}

// Category returns the base style for lines of category c.
func (s Styles) Category(c errlog.Category) lipgloss.Style {
	if st, ok := s.categories[c]; ok {
		return st
	}
	return s.Text
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Surface: "#282A36", // Background
		Text:    "#F8F8F2", // Foreground
		Muted:   "#6272A4", // Comment
		Faint:   "#6272A4", // Comment
		Accent:  "#BD93F9", // Purple

		Error:      "#FF5555", // Red
		Warning:    "#FFB86C", // Orange
		Notice:     "#8BE9FD", // Cyan
		Deprecated: "#FF79C6", // Pink
		Trace:      "#BFBFBF",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Surface: "#0f172a", // slate-900
		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400

		Error:      "#ef4444", // red-500
		Warning:    "#f59e0b", // amber-500
		Notice:     "#06b6d4", // cyan-500
		Deprecated: "#a78bfa", // violet-400
		Trace:      "#cbd5e1", // slate-300
	}
}
