package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tapeworks/tickertape/internal/fn"
	"github.com/tapeworks/tickertape/internal/ticker"
	"github.com/tapeworks/tickertape/tui/styles"
)

// BoardPanel displays the current quote for every listed symbol.
type BoardPanel struct {
	rows          []ticker.DisplayQuote
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewBoardPanel creates a new board panel.
func NewBoardPanel() *BoardPanel {
	return &BoardPanel{}
}

// Init initializes the panel.
func (p *BoardPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *BoardPanel) Update(msg tea.Msg) (*BoardPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.rows)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *BoardPanel) View() string {
	var content strings.Builder

	nameWidth := fn.Reduce(p.rows, 8, func(w int, q ticker.DisplayQuote) int {
		if len(q.Name) > w {
			return len(q.Name)
		}
		return w
	})

	header := fmt.Sprintf("%-8s %-*s %12s %10s", "Symbol", nameWidth, "Name", "Price", "Change")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	lines := fn.Map(p.rows, func(q ticker.DisplayQuote) string {
		change := changeStyle(q.Change).Render(fmt.Sprintf("%10s", q.Change))
		return fmt.Sprintf("%-8s %-*s %12s %s", q.Symbol, nameWidth, q.Name, q.Price, change)
	})

	for i, line := range lines {
		style := styles.RowStyle
		if i == p.selectedIndex && p.focused {
			style = styles.SelectedRowStyle
		}
		content.WriteString(style.Render(line))
		if i < len(lines)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📈 Ticker Board", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *BoardPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *BoardPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetRows replaces the board rows.
func (p *BoardPanel) SetRows(rows []ticker.DisplayQuote) {
	p.rows = rows
	if p.selectedIndex >= len(rows) {
		p.selectedIndex = len(rows) - 1
	}
	if p.selectedIndex < 0 {
		p.selectedIndex = 0
	}
}

// SelectedSymbol returns the symbol of the selected row.
func (p *BoardPanel) SelectedSymbol() string {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.rows) {
		return p.rows[p.selectedIndex].Symbol
	}
	return ""
}

func changeStyle(change string) lipgloss.Style {
	switch {
	case strings.HasPrefix(change, "+"):
		return styles.ChangeUpStyle
	case strings.HasPrefix(change, "-"):
		return styles.ChangeDownStyle
	default:
		return styles.ChangeFlatStyle
	}
}
