package viewer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/errlens/internal/errlog"
	"github.com/five82/errlens/internal/render"
)

// SourceLoader reads the log being viewed.
type SourceLoader interface {
	Source(ctx context.Context) (errlog.Source, error)
}

// Options configure the viewer.
type Options struct {
	Context     context.Context
	Loader      SourceLoader
	Filters     errlog.Options
	ThemeName   string
	LineNumbers bool
	LogPath     string
}

type sourceLoadedMsg struct {
	src errlog.Source
	err error
}

// headerHeight is the number of rows above the viewport.
const headerHeight = 2

// Model is the bubbletea model for the log viewer.
type Model struct {
	ctx     context.Context
	loader  SourceLoader
	logPath string

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	themeName   string
	styles      render.Styles
	lineNumbers bool

	src     errlog.Source
	loaded  bool
	loadErr error
	opts    errlog.Options
	res     errlog.Result

	width, height int
	ready         bool
}

// New creates a viewer model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:         ctx,
		loader:      opts.Loader,
		logPath:     opts.LogPath,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		themeName:   render.GetTheme(opts.ThemeName).Name,
		styles:      render.GetTheme(opts.ThemeName).Styles(),
		lineNumbers: opts.LineNumbers,
		opts:        opts.Filters,
	}
}

// Init starts loading the log.
func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		if loader == nil {
			return sourceLoadedMsg{}
		}
		src, err := loader.Source(ctx)
		return sourceLoadedMsg{src: src, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 1)
			m.ready = true
		}
		m.resize()
		m.refreshContent()
		return m, nil

	case sourceLoadedMsg:
		m.src, m.loadErr, m.loaded = msg.src, msg.err, true
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Reload):
		return m.load(), true
	case key.Matches(msg, m.keys.CycleTheme):
		m.themeName = render.NextTheme(m.themeName)
		m.styles = render.GetTheme(m.themeName).Styles()
		m.refreshContent()
	case key.Matches(msg, m.keys.ToggleReverse):
		m.opts.ReverseOrder = !m.opts.ReverseOrder
		m.recompute()
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.ToggleDatetime):
		m.opts.ShowDatetime = !m.opts.ShowDatetime
		m.recompute()
	case key.Matches(msg, m.keys.ToggleOrphans):
		m.opts.ShowOrphans = !m.opts.ShowOrphans
		m.recompute()
	case key.Matches(msg, m.keys.ToggleNumbers):
		m.lineNumbers = !m.lineNumbers
		m.refreshContent()
	case key.Matches(msg, m.keys.ToggleCategory):
		cats := errlog.Categories()
		n := int(msg.String()[0] - '1')
		if n < 0 || n >= len(cats) {
			return nil, true
		}
		m.opts = m.opts.Toggle(cats[n])
		m.recompute()
	case key.Matches(msg, m.keys.EnableAll):
		all := errlog.AllEnabled()
		m.opts.Enabled = all.Enabled
		m.recompute()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	default:
		return nil, false
	}
	return nil, true
}

// resize fits the viewport between the header and the help footer.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerHeight-lipgloss.Height(m.renderFooter()), 1)
}

// recompute reruns the analysis for the current source and options.
func (m *Model) recompute() {
	m.res = errlog.Analyze(m.src, m.opts)
	m.refreshContent()
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	switch {
	case !m.loaded:
		return m.styles.Muted.Render("Loading…")
	case m.loadErr != nil:
		return m.styles.Category(errlog.Error).Render(fmt.Sprintf("Error: %v", m.loadErr))
	case !m.res.Available || len(m.res.Visible) == 0:
		return m.styles.Muted.Render(render.Summary(m.res))
	}
	r := render.TextRenderer{Styles: m.styles, LineNumbers: m.lineNumbers}
	return strings.Join(r.Lines(m.res), "\n")
}

// View renders the viewer.
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := "errlens"
	if m.logPath != "" {
		title += " · " + m.logPath
	}
	if m.loaded {
		title += " · " + render.Summary(m.res)
	}
	top := m.styles.Header.Width(m.width).Render(title)

	var chips []string
	for i, c := range errlog.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c)
		if !c.IsContinuation() {
			label += fmt.Sprintf(" (%d)", m.res.Counts.ByCategory[c])
		}
		style := m.styles.Inactive
		if m.opts.IsEnabled(c) {
			style = m.styles.Active
		}
		chips = append(chips, style.Render(label))
	}
	chips = append(chips, m.flag("newest first", m.opts.ReverseOrder),
		m.flag("datetime", m.opts.ShowDatetime),
		m.flag("orphans", m.opts.ShowOrphans))
	return top + "\n" + strings.Join(chips, "  ")
}

func (m Model) flag(label string, on bool) string {
	if on {
		return m.styles.Active.Render("[x] " + label)
	}
	return m.styles.Muted.Render("[ ] " + label)
}

func (m Model) renderFooter() string {
	return m.help.View(m.keys)
}

// Filters returns the options currently applied.
func (m Model) Filters() errlog.Options {
	return m.opts
}

// Result returns the latest analysis.
func (m Model) Result() errlog.Result {
	return m.res
}

// Run starts the interactive viewer and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
