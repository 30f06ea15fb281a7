package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tapeworks/tickertape/internal/ticker"
	"github.com/tapeworks/tickertape/internal/ticker/pipeline"
	"github.com/tapeworks/tickertape/internal/ticker/view"
	"github.com/tapeworks/tickertape/tui/panels"
	"github.com/tapeworks/tickertape/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusBoard PanelFocus = 0
	FocusTape  PanelFocus = 1
)

// Model is the main TUI application model. It is the render sink: it
// consumes the pipeline's two display streams and owns the board and
// tape read models.
type Model struct {
	pipe *pipeline.Pipeline

	board *view.Board
	tape  *view.UpdateTape

	boardPanel *panels.BoardPanel
	tapePanel  *panels.TapePanel

	focusedPanel PanelFocus

	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model consuming from pipe.
func NewModel(pipe *pipeline.Pipeline, tapeSize int) *Model {
	return &Model{
		pipe:       pipe,
		board:      view.NewBoard(),
		tape:       view.NewUpdateTape(tapeSize),
		boardPanel: panels.NewBoardPanel(),
		tapePanel:  panels.NewTapePanel(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.boardPanel.Init(),
		m.tapePanel.Init(),
		m.listenCreated(),
		m.listenUpdated(),
		m.tickRefresh(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % 2
		case "f1":
			m.focusedPanel = FocusBoard
		case "f2":
			m.focusedPanel = FocusTape
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case quoteCreatedMsg:
		m.board.ApplyQuote(msg.quote)
		m.boardPanel.SetRows(m.board.Snapshot())
		cmds = append(cmds, m.listenCreated())

	case quoteUpdatedMsg:
		m.board.ApplyUpdate(msg.update)
		m.tape.Append(msg.update)
		m.boardPanel.SetRows(m.board.Snapshot())
		m.tapePanel.SetUpdates(m.tape.Last(m.tape.Count()))
		cmds = append(cmds, m.listenUpdated())

	case streamClosedMsg:
		m.statusMsg = "feed closed"

	case tickMsg:
		if skipped := m.pipe.Skipped(); skipped > 0 {
			m.statusMsg = fmt.Sprintf("skipped %d malformed", skipped)
		}
		cmds = append(cmds, m.tickRefresh())
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusBoard:
		m.boardPanel, cmd = m.boardPanel.Update(msg)
	case FocusTape:
		m.tapePanel, cmd = m.tapePanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Layout:
	// ┌────────────────────────┬───────────────┐
	// │      Ticker Board      │  Update Tape  │
	// ├────────────────────────┴───────────────┤
	// │               status bar               │
	// └────────────────────────────────────────┘

	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth
	panelHeight := m.height - 1

	m.boardPanel.SetFocus(m.focusedPanel == FocusBoard)
	m.tapePanel.SetFocus(m.focusedPanel == FocusTape)

	m.boardPanel.SetSize(leftWidth, panelHeight)
	m.tapePanel.SetSize(rightWidth, panelHeight)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.boardPanel.View(),
		m.tapePanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, row, m.renderStatusBar())
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("F1/F2") + styles.StatusBarDescStyle.Render(" panels"),
		styles.StatusBarKeyStyle.Render("Tab") + styles.StatusBarDescStyle.Render(" switch"),
		styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" select"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}

	helpStr := lipgloss.JoinHorizontal(lipgloss.Center, help[0], " │ ", help[1], " │ ", help[2], " │ ", help[3])

	status := ""
	if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}

func (m *Model) listenCreated() tea.Cmd {
	return func() tea.Msg {
		q, ok := <-m.pipe.Created()
		if !ok {
			return streamClosedMsg{}
		}
		return quoteCreatedMsg{quote: q}
	}
}

func (m *Model) listenUpdated() tea.Cmd {
	return func() tea.Msg {
		u, ok := <-m.pipe.Updated()
		if !ok {
			return streamClosedMsg{}
		}
		return quoteUpdatedMsg{update: u}
	}
}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

// quoteCreatedMsg is sent when the pipeline emits a new listing.
type quoteCreatedMsg struct {
	quote ticker.DisplayQuote
}

// quoteUpdatedMsg is sent when the pipeline emits a formatted update.
type quoteUpdatedMsg struct {
	update ticker.DisplayUpdate
}

// streamClosedMsg is sent when a pipeline stream closes.
type streamClosedMsg struct{}

// tickMsg is sent periodically to refresh status counters.
type tickMsg struct{}
