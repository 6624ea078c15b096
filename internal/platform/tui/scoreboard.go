package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

const (
	maxScores           = 50
	maxRuns             = 50
	minWidthSideBySide  = 100 // Below this the runs pane goes under the scores
	scoresPaneMinHeight = 3
)

// scorePane is which table has the keyboard.
type scorePane int

const (
	paneScores scorePane = iota
	paneRuns
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("57"))
	tabStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Mode key.Binding
	Pane key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Pane, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Mode, k.Pane}, {k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Mode: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "mode")),
		Pane: key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "scores/runs")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best scores and the latest runs of each mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	pane      scorePane
	store     *storage.Store
	scores    []storage.ScoreEntry
	runs      []storage.RunRecord
	runStats  *storage.RunStats
	gameStats *storage.GameStats
	scoreView table.Model
	runView   table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for every registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.layout()
	m.load()
	return m
}

// sideBySide reports whether both panes fit on one row.
func (m ScoreboardModel) sideBySide() bool {
	return m.width >= minWidthSideBySide
}

// layout rebuilds both tables for the current window size.
func (m *ScoreboardModel) layout() {
	rows := m.height - 12 // Title, tabs, borders, summary, help
	if !m.sideBySide() {
		rows /= 2
	}
	rows = max(rows, scoresPaneMinHeight)

	m.scoreView = newScoreTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Date", Width: 12},
	}, rows)
	m.runView = newScoreTable([]table.Column{
		{Title: "Outcome", Width: 9},
		{Title: "Score", Width: 7},
		{Title: "Lvls", Width: 4},
		{Title: "Hits", Width: 7},
		{Title: "Acc", Width: 4},
		{Title: "Streak", Width: 6},
		{Title: "Time", Width: 6},
	}, rows)
	m.focus()
	m.fillRows()
}

func newScoreTable(cols []table.Column, rows int) table.Model {
	t := table.New(table.WithColumns(cols), table.WithHeight(rows))
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// focus hands the keyboard to the active pane.
func (m *ScoreboardModel) focus() {
	if m.pane == paneScores {
		m.scoreView.Focus()
		m.runView.Blur()
	} else {
		m.runView.Focus()
		m.scoreView.Blur()
	}
}

// ModeID returns the mode being shown.
func (m ScoreboardModel) ModeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// load reads scores, runs and aggregates of the current mode.
func (m *ScoreboardModel) load() {
	m.scores, m.runs, m.runStats, m.gameStats = nil, nil, nil, nil
	if id := m.ModeID(); m.store != nil && id != "" {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if runs, err := m.store.RecentRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetRunStats(id); err == nil {
			m.runStats = stats
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.gameStats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	scoreRows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		scoreRows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level+1),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.scoreView.SetRows(scoreRows)
	m.scoreView.GotoTop()

	runRows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		runRows[i] = table.Row{
			r.Outcome,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.LevelsCleared),
			fmt.Sprintf("%d/%d", r.TilesHit, r.TilesHit+r.Misses),
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			fmt.Sprintf("%d", r.BestStreak),
			formatDuration(r.Duration),
		}
	}
	m.runView.SetRows(runRows)
	m.runView.GotoTop()
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			if len(m.modes) > 0 {
				step := 1
				if msg.String() == "shift+tab" {
					step = len(m.modes) - 1
				}
				m.mode = (m.mode + step) % len(m.modes)
				m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.Pane):
			m.pane = 1 - m.pane
			m.focus()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	if m.pane == paneScores {
		m.scoreView, cmd = m.scoreView.Update(msg)
	} else {
		m.runView, cmd = m.runView.Update(msg)
	}
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SCOREBOARD"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	scores := m.renderPane("Top scores", paneScores, m.scoreView, len(m.scores) == 0,
		"No scores yet. Clear a few tiles!")
	runs := m.renderPane("Recent runs", paneRuns, m.runView, len(m.runs) == 0,
		"No runs recorded.")
	if m.sideBySide() {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, scores, "  ", runs), m.width))
	} else {
		b.WriteString(centerText(scores, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(runs, m.width))
	}
	b.WriteString("\n")

	if summary := m.renderSummary(); summary != "" {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(summary), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.mode {
			tabs[i] = activeTabStyle.Render(mode.Title)
		} else {
			tabs[i] = tabStyle.Render(mode.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderPane(title string, pane scorePane, t table.Model, empty bool, emptyText string) string {
	style := paneStyle
	if m.pane == pane {
		style = focusedPaneStyle
	}
	body := t.View()
	if empty {
		body = dimStyle.Italic(true).Render(emptyText)
	}
	return style.Render(lipgloss.NewStyle().Bold(true).Render(title) + "\n" + body)
}

// renderSummary aggregates every run and score of the mode on one line.
func (m ScoreboardModel) renderSummary() string {
	var parts []string
	if rs := m.runStats; rs != nil && rs.Runs > 0 {
		parts = append(parts,
			fmt.Sprintf("Runs: %d", rs.Runs),
			completedStyle.Render(fmt.Sprintf("Completed: %d", rs.Completed)),
			fmt.Sprintf("Accuracy: %.0f%%", rs.Accuracy()*100),
			fmt.Sprintf("Best streak: %d", rs.BestStreak),
		)
	}
	if gs := m.gameStats; gs != nil && gs.GamesCount > 0 {
		parts = append(parts, fmt.Sprintf("Avg score: %.0f", gs.AvgScore))
	}
	return strings.Join(parts, "  |  ")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
