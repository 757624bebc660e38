package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bakerspal/internal/adapters/tui/styles"
	"bakerspal/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchViewMsg{View: domain.ViewDashboard}
			}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Bakers Pal Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Track ingredients, recipes, sales, and who still owes you"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Views"))
	b.WriteString("\n")
	b.WriteString(helpLine("1-6", "Jump to a view"))
	b.WriteString(helpLine("tab / shift+tab", "Next / previous view"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Lists"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("a", "Add / record"))
	b.WriteString(helpLine("e", "Edit (recipes)"))
	b.WriteString(helpLine("p", "New price / mark paid"))
	b.WriteString(helpLine("d", "Delete"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("t", "Toggle light/dark theme"))
	b.WriteString(helpLine("g", "Business tips (dashboard)"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return b.String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
