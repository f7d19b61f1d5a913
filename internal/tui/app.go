// Package tui provides the interactive Bubble Tea dashboard for rockpile.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/rockpile/internal/console"
	"github.com/theirongolddev/rockpile/internal/settle"
	"github.com/theirongolddev/rockpile/internal/store"
	"github.com/theirongolddev/rockpile/internal/tui/components"
	"github.com/theirongolddev/rockpile/internal/tui/theme"
)

// HistoryReader lists recorded cycles. *store.History satisfies it.
type HistoryReader interface {
	Recent(limit int) ([]store.CycleSummary, error)
}

// HistoryLoadedMsg carries the result of a history refresh.
type HistoryLoadedMsg struct {
	Cycles []store.CycleSummary
	Err    error
}

// App is the root Bubble Tea model.
type App struct {
	// Fund state and actions
	session *console.Session
	out     *bytes.Buffer // session output, surfaced in the status bar
	history HistoryReader

	lastReport *settle.Report
	cycles     []store.CycleSummary
	historyErr error

	dirty       bool
	confirmQuit bool
	message     string

	// Per-tab tables
	members  table.Model
	expenses table.Model
	past     table.Model

	keys keyMap
	help help.Model

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
	historyLimit     = 24
)

const (
	tabOverview = iota
	tabMembers
	tabExpenses
	tabHistory
)

// NewApp creates the dashboard over s. The session's output is captured
// and shown in the status bar instead of being printed. history may be nil.
func NewApp(s *console.Session, history HistoryReader) App {
	out := &bytes.Buffer{}
	s.Out = out

	a := App{
		session:  s,
		out:      out,
		history:  history,
		members:  newTable(),
		expenses: newTable(),
		past:     newTable(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	a.rebuildTables()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadHistoryCmd(a.history),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.rebuildTables()
		return a, nil

	case HistoryLoadedMsg:
		a.cycles = msg.Cycles
		a.historyErr = msg.Err
		a.rebuildTables()
		return a, nil

	case tea.MouseMsg:
		if a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if t := a.focusedTable(); t != nil {
				t.MoveUp(1)
			}
		case tea.MouseButtonWheelDown:
			if t := a.focusedTable(); t != nil {
				t.MoveDown(1)
			}
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if key.Matches(msg, a.keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if key.Matches(msg, a.keys.Quit) {
		if a.dirty && !a.confirmQuit {
			a.confirmQuit = true
			a.message = "Unsaved changes: q again to quit, s to save"
			return a, nil
		}
		return a, tea.Quit
	}
	a.confirmQuit = false

	switch {
	case key.Matches(msg, a.keys.Cycle):
		r := a.session.RunCycle()
		a.out.Reset()
		a.lastReport = &r
		a.dirty = true
		a.message = "Cycle run: " + settle.TotalLine(r.Closing)
		a.rebuildTables()
		return a, loadHistoryCmd(a.history)

	case key.Matches(msg, a.keys.Save):
		if err := a.session.Save(); err == nil {
			a.dirty = false
		}
		a.message = a.takeOutput()
		return a, nil

	case key.Matches(msg, a.keys.Load):
		if err := a.session.Load(); err == nil {
			a.dirty = false
			a.lastReport = nil
		}
		a.message = a.takeOutput()
		a.rebuildTables()
		return a, nil

	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil

	case key.Matches(msg, a.keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	if k := msg.String(); len(k) == 1 {
		if tab := components.TabIdxByKey(rune(k[0])); tab >= 0 {
			a.activeTab = tab
			return a, nil
		}
	}

	// Remaining keys navigate the visible table.
	var cmd tea.Cmd
	switch a.activeTab {
	case tabMembers:
		a.members, cmd = a.members.Update(msg)
	case tabExpenses:
		a.expenses, cmd = a.expenses.Update(msg)
	case tabHistory:
		a.past, cmd = a.past.Update(msg)
	}
	return a, cmd
}

// takeOutput returns the last line the session printed and clears the buffer.
func (a *App) takeOutput() string {
	lines := strings.Split(strings.TrimSpace(a.out.String()), "\n")
	a.out.Reset()
	return strings.TrimSpace(lines[len(lines)-1])
}

func (a *App) focusedTable() *table.Model {
	switch a.activeTab {
	case tabMembers:
		return &a.members
	case tabExpenses:
		return &a.expenses
	case tabHistory:
		return &a.past
	}
	return nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	t := theme.Active
	msg := lipgloss.NewStyle().
		Foreground(t.Warning).
		Render(fmt.Sprintf("Terminal too narrow (%d cols). Need at least %d.", a.width, minTerminalWidth))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, "[c]ycle [s]ave [l]oad [?]help [q]uit",
		a.message, a.session.Path, a.dirty)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabMembers:
		content = a.renderMembersTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func loadHistoryCmd(h HistoryReader) tea.Cmd {
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		cycles, err := h.Recent(historyLimit)
		return HistoryLoadedMsg{Cycles: cycles, Err: err}
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if gap := w - lipgloss.Width(line); gap > 0 {
			lines[i] = line + style.Render(strings.Repeat(" ", gap))
		}
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths as RenderTabBar, with one separator column
// between tabs.
func (a App) tabAtX(x int) int {
	pos := 0
	for i := range components.Tabs {
		w := components.TabWidth(i, a.activeTab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}
