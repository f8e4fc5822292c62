package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cubes/internal/storage"
)

// maxRuns is how many runs the viewer loads.
const maxRuns = 100

// RunsKeyMap defines the key bindings for the run log viewer.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "close"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing the run log.
type RunsModel struct {
	gameID   string
	runs     []storage.Run
	best     *storage.Run
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel loads the newest runs of gameID from store.
func NewRunsModel(store *storage.Store, gameID string, width, height int) RunsModel {
	m := RunsModel{
		gameID: gameID,
		help:   help.New(),
		keys:   DefaultRunsKeyMap(),
		width:  width,
		height: height,
	}

	m.runs, m.loadErr = store.RecentRuns(gameID, maxRuns)
	if m.loadErr == nil {
		m.best, m.loadErr = store.BestRun(gameID)
	}

	m.table = m.createTable()
	m.table.SetRows(RunRows(m.runs))
	return m
}

// createTable creates the table sized to the current window.
func (m RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Top", Width: 4},
		{Title: "Merges", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Board", Width: 6},
		{Title: "End", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

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

// RunRows formats runs as table rows, newest first as given.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		end := "quit"
		if r.Stuck {
			end = "stuck"
		}
		board := "-"
		if r.BoardSize > 0 {
			board = fmt.Sprintf("%dx%d", r.BoardSize, r.BoardSize)
		}
		top := "-"
		if r.MaxLevel >= 0 {
			top = strconv.Itoa(r.MaxLevel)
		}
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			top,
			strconv.Itoa(r.Merges),
			strconv.Itoa(r.Moves),
			board,
			end,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the viewer.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the viewer.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RUNS - %s", m.gameID)))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.best != nil {
		b.WriteString(dim.Render(fmt.Sprintf("Best: level %d, %d merges in %d moves (run %d)",
			m.best.MaxLevel, m.best.Merges, m.best.Moves, m.best.ID)))
	}
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// tableContent renders the table, the load error or an empty message.
func (m RunsModel) tableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return empty.Render("Could not read the run log:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return empty.Render("No runs recorded yet.\nFinish a board to log one!")
	}
	return m.table.View()
}

// RunRunsViewer shows the run log of gameID until the user closes it.
func RunRunsViewer(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
