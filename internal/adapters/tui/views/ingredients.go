package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bakerspal/internal/adapters/tui/styles"
	"bakerspal/internal/application/commands"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

type ingredientsMode int

const (
	ingredientsList ingredientsMode = iota
	ingredientsAdd
	ingredientsPrice
	ingredientsConfirmDelete
)

// IngredientsKeyMap defines key bindings for the ingredients view
type IngredientsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Price  key.Binding
	Delete key.Binding
}

var IngredientsKeys = IngredientsKeyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Price:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "new price")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
}

// IngredientsModel lists ingredients and edits them in place
type IngredientsModel struct {
	ViewState
	tracker *state.Tracker

	rows   []domain.Ingredient
	cursor int
	mode   ingredientsMode

	addForm   *InputForm
	priceForm *InputForm
}

// NewIngredientsModel creates the ingredients view
func NewIngredientsModel(tracker *state.Tracker) *IngredientsModel {
	return &IngredientsModel{
		tracker: tracker,
		addForm: NewInputForm(
			NewInputField("Name", "Flour", 64),
			NewInputField("Price paid", "45000", 16),
			NewInputField("Quantity bought", "50", 16),
			NewInputField("Unit", "kg", 16),
		),
		priceForm: NewInputForm(
			NewInputField("New price", "48000", 16),
		),
	}
}

// Init loads the ingredient rows
func (m *IngredientsModel) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *IngredientsModel) reload() {
	m.rows = m.tracker.Ingredients()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Capturing reports whether a form owns the keyboard
func (m *IngredientsModel) Capturing() bool {
	return m.mode == ingredientsAdd || m.mode == ingredientsPrice
}

// Update handles messages for the ingredients view
func (m *IngredientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.reload()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case ingredientsAdd:
			return m.updateAdd(msg)
		case ingredientsPrice:
			return m.updatePrice(msg)
		case ingredientsConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *IngredientsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, IngredientsKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, IngredientsKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, IngredientsKeys.Add):
		m.mode = ingredientsAdd
		m.addForm.Reset()
		m.ClearMessage()
		return m, m.addForm.Init()
	case key.Matches(msg, IngredientsKeys.Price):
		if len(m.rows) > 0 {
			m.mode = ingredientsPrice
			m.priceForm.Reset()
			m.ClearMessage()
			return m, m.priceForm.Init()
		}
	case key.Matches(msg, IngredientsKeys.Delete):
		if len(m.rows) > 0 {
			m.mode = ingredientsConfirmDelete
			m.ClearMessage()
		}
	}
	return m, nil
}

func (m *IngredientsModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.addForm.Keys.Cancel):
		m.mode = ingredientsList
		return m, nil
	case key.Matches(msg, m.addForm.Keys.Submit):
		cmd := commands.NewAddIngredientCommand(m.tracker,
			m.addForm.Value(0),
			m.addForm.FloatValue(1),
			m.addForm.FloatValue(2),
			m.addForm.Value(3),
		)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.mode = ingredientsList
		m.SetMessage(result.Message, false)
		m.reload()
		return m, nil
	}
	_, cmd := m.addForm.Update(msg)
	return m, cmd
}

func (m *IngredientsModel) updatePrice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.priceForm.Keys.Cancel):
		m.mode = ingredientsList
		return m, nil
	case key.Matches(msg, m.priceForm.Keys.Submit):
		cmd := commands.NewUpdatePriceCommand(m.tracker, m.rows[m.cursor].ID, m.priceForm.FloatValue(0))
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.mode = ingredientsList
		m.SetMessage(result.Message, false)
		m.reload()
		return m, nil
	}
	_, cmd := m.priceForm.Update(msg)
	return m, cmd
}

func (m *IngredientsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		cmd := commands.NewDeleteIngredientCommand(m.tracker, m.rows[m.cursor].ID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
		} else {
			m.SetMessage(result.Message, false)
		}
		m.mode = ingredientsList
		m.reload()
	case "n", "esc":
		m.mode = ingredientsList
	}
	return m, nil
}

// View renders the ingredients view
func (m *IngredientsModel) View() string {
	v := NewViewBuilder().
		Title("Ingredients").
		Message(m.Message, m.MessageErr)

	switch m.mode {
	case ingredientsAdd:
		for i := range m.addForm.Fields {
			v.Line(m.addForm.RenderField(i))
		}
		v.BlankLine().Line(m.addForm.RenderHelp("add ingredient"))
		return v.String()

	case ingredientsPrice:
		row := m.rows[m.cursor]
		v.Line(fmt.Sprintf("%s is currently %s per %g %s", row.Name, Money(row.CurrentPrice()), row.Quantity, row.Unit))
		v.BlankLine().
			Line(m.priceForm.RenderField(0)).
			BlankLine().
			Line(m.priceForm.RenderHelp("record price"))
		return v.String()

	case ingredientsConfirmDelete:
		row := m.rows[m.cursor]
		v.Line(fmt.Sprintf("Delete %s? %s to confirm, %s to cancel",
			styles.ErrorMsg.Render(row.Name), styles.HelpKey.Render("y"), styles.HelpKey.Render("n")))
		return v.String()
	}

	if len(m.rows) == 0 {
		v.Muted("No ingredients yet. Press a to add one.")
	}
	for i, row := range m.rows {
		line := fmt.Sprintf("%-24s %10s per %g %s  (%d price changes)",
			row.Name, Money(row.CurrentPrice()), row.Quantity, row.Unit, len(row.PriceHistory))
		if i == m.cursor {
			line = styles.Selected.Render(line)
		}
		v.Line(line)
	}

	v.BlankLine().Help(
		IngredientsKeys.Up, IngredientsKeys.Down,
		IngredientsKeys.Add, IngredientsKeys.Price, IngredientsKeys.Delete,
	)
	return v.String()
}
