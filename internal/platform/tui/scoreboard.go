package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the summary sidebar
	summaryWidth       = 26  // Width of the summary sidebar
	maxRuns            = 100 // Max runs to load per view
)

// RunSource is the run history the scoreboard reads. *storage.Store
// implements it.
type RunSource interface {
	TopRuns(limit int) ([]storage.Run, error)
	RecentRuns(limit int) ([]storage.Run, error)
	Summary() (*storage.Summary, error)
}

// ScoreView selects which runs the scoreboard lists.
type ScoreView int

const (
	ViewTop ScoreView = iota
	ViewRecent
)

func (v ScoreView) String() string {
	if v == ViewRecent {
		return "Recent Runs"
	}
	return "Top Runs"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.SwitchView, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	source      RunSource
	view        ScoreView
	runs        []storage.Run
	summary     *storage.Summary
	loadErr     error
	styles      theme.Styles
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(source RunSource, themeIndex, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		source:      source,
		styles:      theme.Get(themeIndex).UI(),
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	dateW := 12
	avail := m.width - 8
	if m.showSidebar {
		avail -= summaryWidth + 4
	}
	// Fixed columns take 46 cells; the date column takes what is left.
	if avail-46 > dateW {
		dateW = min(avail-46, 18)
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 6},
		{Title: "Apples", Width: 6},
		{Title: "Combo", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Walls", Width: 5},
		{Title: "Cause", Width: 5},
		{Title: "Date", Width: dateW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = m.styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Padding(0, 1)
	s.Cell = m.styles.Cell.Padding(0, 1)
	s.Selected = m.styles.Select
	t.SetStyles(s)

	return t
}

// load reads the current view and the summary from the source.
func (m *ScoreboardModel) load() {
	m.runs, m.summary, m.loadErr = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	var err error
	if m.view == ViewRecent {
		m.runs, err = m.source.RecentRuns(maxRuns)
	} else {
		m.runs, err = m.source.TopRuns(maxRuns)
	}
	if err != nil {
		m.loadErr = err
	}
	if sum, err := m.source.Summary(); err == nil {
		m.summary = sum
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rank := fmt.Sprintf("#%d", i+1)
		if m.view == ViewRecent {
			rank = fmt.Sprint(r.ID)
		}
		rows[i] = table.Row{
			rank,
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Length),
			fmt.Sprint(r.Apples),
			fmt.Sprint(r.MaxCombo),
			formatDuration(r.Duration),
			r.WallMode,
			r.Cause,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchView):
			m.view = (m.view + 1) % 2
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(m.styles.Title.Render("ULTIMATE SNAKE - "+strings.ToUpper(m.view.String())), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Muted.GetForeground()).
		Padding(0, 1)

	content := box.Render(m.renderTableContent())
	if m.showSidebar {
		side := box.Width(summaryWidth).Render(m.renderSummary())
		content = lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", content)
	} else {
		content = m.renderSummaryLine() + "\n" + content
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil {
		return m.styles.Bad.Render("Could not load runs: " + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return m.styles.Muted.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderSummary() string {
	if m.summary == nil || m.summary.Runs == 0 {
		return m.styles.Muted.Render("No history")
	}
	s := m.summary
	lines := []struct{ label, value string }{
		{"Runs", fmt.Sprint(s.Runs)},
		{"Best", fmt.Sprint(s.BestScore)},
		{"Average", fmt.Sprintf("%.1f", s.AvgScore)},
		{"Longest", fmt.Sprint(s.MaxLength)},
		{"Best combo", fmt.Sprint(s.MaxCombo)},
		{"Apples", fmt.Sprint(s.Apples)},
		{"Played", formatDuration(s.TimePlayed)},
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Summary"))
	b.WriteString("\n\n")
	for _, l := range lines {
		pad := max(1, summaryWidth-4-len(l.label)-len(l.value))
		b.WriteString(m.styles.Muted.Render(l.label))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(m.styles.Cell.Render(l.value))
		b.WriteString("\n")
	}
	if !s.LastPlayed.IsZero() {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Last " + s.LastPlayed.Format("Jan 02 15:04")))
	}
	return b.String()
}

func (m ScoreboardModel) renderSummaryLine() string {
	if m.summary == nil || m.summary.Runs == 0 {
		return ""
	}
	return m.styles.Muted.Render(fmt.Sprintf("%d runs  best %d  avg %.1f  played %s",
		m.summary.Runs, m.summary.BestScore, m.summary.AvgScore, formatDuration(m.summary.TimePlayed)))
}

// IsQuitting returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// formatDuration renders a duration as m:ss, or h:mm:ss past an hour.
func formatDuration(d time.Duration) string {
	s := int(d.Round(time.Second).Seconds())
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source RunSource, themeIndex, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, themeIndex, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
