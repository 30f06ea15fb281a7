package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tapeworks/tickertape/internal/fn"
	"github.com/tapeworks/tickertape/internal/ticker"
	"github.com/tapeworks/tickertape/tui/styles"
)

// TapePanel displays the most recent quote updates, newest last.
type TapePanel struct {
	updates []ticker.DisplayUpdate
	focused bool
	width   int
	height  int
}

// NewTapePanel creates a new tape panel.
func NewTapePanel() *TapePanel {
	return &TapePanel{}
}

// Init initializes the panel.
func (p *TapePanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *TapePanel) Update(msg tea.Msg) (*TapePanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *TapePanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-8s %12s %10s", "Symbol", "Price", "Change")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	// Fit to the panel; newest entries win.
	visible := p.updates
	maxRows := p.height - 4
	if maxRows > 0 && len(visible) > maxRows {
		visible = visible[len(visible)-maxRows:]
	}

	lines := fn.Map(visible, func(u ticker.DisplayUpdate) string {
		price := "-"
		if u.Price != nil {
			price = *u.Price
		}
		change := "-"
		style := styles.ChangeFlatStyle
		if u.Change != nil {
			change = *u.Change
			style = changeStyle(change)
		}
		return fmt.Sprintf("%-8s %12s %s", u.Symbol, price, style.Render(fmt.Sprintf("%10s", change)))
	})
	content.WriteString(strings.Join(lines, "\n"))

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("🧾 Update Tape", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *TapePanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *TapePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetUpdates replaces the tape contents (oldest first).
func (p *TapePanel) SetUpdates(updates []ticker.DisplayUpdate) {
	p.updates = updates
}
