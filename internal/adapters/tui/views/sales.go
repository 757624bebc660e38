package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bakerspal/internal/adapters/tui/styles"
	"bakerspal/internal/application/commands"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

type salesMode int

const (
	salesList salesMode = iota
	salesRecord
	salesConfirmDelete
)

// SalesKeyMap defines key bindings for the sales view
type SalesKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Record   key.Binding
	MarkPaid key.Binding
	Delete   key.Binding
}

var SalesKeys = SalesKeyMap{
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Record:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "record sale")),
	MarkPaid: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "mark paid")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
}

// SalesModel lists sales newest first and records new ones
type SalesModel struct {
	ViewState
	tracker *state.Tracker

	rows   []domain.Sale
	cursor int
	mode   salesMode

	form *InputForm
}

// NewSalesModel creates the sales view
func NewSalesModel(tracker *state.Tracker) *SalesModel {
	return &SalesModel{
		tracker: tracker,
		form: NewInputForm(
			NewInputField("Recipe", "Banana Bread", 64),
			NewInputField("Quantity", "2", 8),
			NewInputField("Price per unit (blank = selling price)", "", 16),
			NewInputField("Customer (needed for credit)", "", 64),
			NewInputField("Payment (paid/credit)", "paid", 8),
		),
	}
}

// Init loads the sale rows
func (m *SalesModel) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *SalesModel) reload() {
	rows := m.tracker.Sales()
	// Newest first for display.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Capturing reports whether the record form owns the keyboard
func (m *SalesModel) Capturing() bool {
	return m.mode == salesRecord
}

// Update handles messages for the sales view
func (m *SalesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.reload()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case salesRecord:
			return m.updateRecord(msg)
		case salesConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *SalesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, SalesKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, SalesKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, SalesKeys.Record):
		m.mode = salesRecord
		m.form.Reset()
		m.form.SetValue(4, string(domain.PaymentPaid))
		m.ClearMessage()
		return m, m.form.Init()
	case key.Matches(msg, SalesKeys.MarkPaid):
		if len(m.rows) > 0 {
			cmd := commands.NewMarkPaidCommand(m.tracker, m.rows[m.cursor].ID)
			result, err := cmd.Execute(context.Background())
			if err != nil {
				m.SetMessage(err.Error(), true)
			} else {
				m.SetMessage(result.Message, false)
			}
			m.reload()
		}
	case key.Matches(msg, SalesKeys.Delete):
		if len(m.rows) > 0 {
			m.mode = salesConfirmDelete
			m.ClearMessage()
		}
	}
	return m, nil
}

func (m *SalesModel) updateRecord(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.form.Keys.Cancel):
		m.mode = salesList
		return m, nil
	case key.Matches(msg, m.form.Keys.Submit):
		recipeID, err := m.resolveRecipe(m.form.Value(0))
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		status := domain.PaymentStatus(strings.ToLower(m.form.Value(4)))
		cmd := commands.NewRecordSaleCommand(m.tracker,
			recipeID,
			m.form.IntValue(1),
			m.form.FloatValue(2),
			m.form.Value(3),
			status,
		)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.mode = salesList
		m.SetMessage(result.Message, false)
		m.reload()
		return m, nil
	}
	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *SalesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		cmd := commands.NewDeleteSaleCommand(m.tracker, m.rows[m.cursor].ID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
		} else {
			m.SetMessage(result.Message, false)
		}
		m.mode = salesList
		m.reload()
	case "n", "esc":
		m.mode = salesList
	}
	return m, nil
}

// resolveRecipe accepts a recipe name (case-insensitive) or ID
func (m *SalesModel) resolveRecipe(nameOrID string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(nameOrID))
	if needle == "" {
		return "", fmt.Errorf("recipe is required")
	}
	for _, r := range m.tracker.Recipes() {
		if r.ID == nameOrID || strings.ToLower(r.Name) == needle {
			return r.ID, nil
		}
	}
	return "", fmt.Errorf("no recipe named %q", nameOrID)
}

// View renders the sales view
func (m *SalesModel) View() string {
	v := NewViewBuilder().
		Title("Sales").
		Message(m.Message, m.MessageErr)

	switch m.mode {
	case salesRecord:
		for i := range m.form.Fields {
			v.Line(m.form.RenderField(i))
		}
		v.BlankLine().Line(m.form.RenderHelp("record sale"))
		return v.String()

	case salesConfirmDelete:
		row := m.rows[m.cursor]
		v.Line(fmt.Sprintf("Delete this sale (%s)? %s to confirm, %s to cancel",
			Money(row.Total()), styles.HelpKey.Render("y"), styles.HelpKey.Render("n")))
		return v.String()
	}

	if len(m.rows) == 0 {
		v.Muted("No sales yet. Press a to record one.")
	}
	names := map[string]string{}
	for _, r := range m.tracker.Recipes() {
		names[r.ID] = r.Name
	}
	for i, row := range m.rows {
		name, ok := names[row.RecipeID]
		if !ok {
			name = "(deleted recipe)"
		}
		status := styles.Paid.Render("paid")
		if row.PaymentStatus == domain.PaymentCredit {
			status = styles.Credit.Render("credit")
			if row.Customer != "" {
				status += styles.MutedText.Render(" · " + row.Customer)
			}
		}
		line := fmt.Sprintf("%s  %2dx %-20s %10s  %s",
			saleDay(row.Date), row.Quantity, name, Money(row.Total()), status)
		if i == m.cursor {
			line = styles.Selected.Render(line)
		}
		v.Line(line)
	}

	v.BlankLine().Help(
		SalesKeys.Up, SalesKeys.Down,
		SalesKeys.Record, SalesKeys.MarkPaid, SalesKeys.Delete,
	)
	return v.String()
}

func saleDay(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return "??????"
	}
	return t.Local().Format("02 Jan")
}
