package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bakerspal/internal/adapters/tui/styles"
	"bakerspal/internal/application/commands"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

type recipesMode int

const (
	recipesList recipesMode = iota
	recipesEdit
	recipesConfirmDelete
)

// RecipesKeyMap defines key bindings for the recipes view
type RecipesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

var RecipesKeys = RecipesKeyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
}

// RecipesModel lists recipes with their cost breakdown and edits them.
// The ingredients field of the form takes "name:quantity" pairs separated
// by commas, resolved against the ingredient list by name.
type RecipesModel struct {
	ViewState
	tracker *state.Tracker

	rows    []domain.Recipe
	cursor  int
	mode    recipesMode
	editing string // recipe ID being edited, empty when creating

	form *InputForm
}

// NewRecipesModel creates the recipes view
func NewRecipesModel(tracker *state.Tracker) *RecipesModel {
	return &RecipesModel{
		tracker: tracker,
		form: NewInputForm(
			NewInputField("Name", "Banana Bread", 64),
			NewInputField("Selling price", "1500", 16),
			NewInputField("Ingredients (name:qty, ...)", "Flour:0.5, Sugar:0.2", 256),
		),
	}
}

// Init loads the recipe rows
func (m *RecipesModel) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *RecipesModel) reload() {
	m.rows = m.tracker.Recipes()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Capturing reports whether the edit form owns the keyboard
func (m *RecipesModel) Capturing() bool {
	return m.mode == recipesEdit
}

// Update handles messages for the recipes view
func (m *RecipesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.reload()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case recipesEdit:
			return m.updateEdit(msg)
		case recipesConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *RecipesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, RecipesKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, RecipesKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, RecipesKeys.Add):
		m.mode = recipesEdit
		m.editing = ""
		m.form.Reset()
		m.ClearMessage()
		return m, m.form.Init()
	case key.Matches(msg, RecipesKeys.Edit):
		if len(m.rows) > 0 {
			row := m.rows[m.cursor]
			m.mode = recipesEdit
			m.editing = row.ID
			m.form.Reset()
			m.form.SetValue(0, row.Name)
			m.form.SetValue(1, strconv.FormatFloat(row.SellingPrice, 'f', -1, 64))
			m.form.SetValue(2, m.formatRefs(row.Ingredients))
			m.ClearMessage()
			return m, m.form.Init()
		}
	case key.Matches(msg, RecipesKeys.Delete):
		if len(m.rows) > 0 {
			m.mode = recipesConfirmDelete
			m.ClearMessage()
		}
	}
	return m, nil
}

func (m *RecipesModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.form.Keys.Cancel):
		m.mode = recipesList
		return m, nil
	case key.Matches(msg, m.form.Keys.Submit):
		refs, err := m.parseRefs(m.form.Value(2))
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		cmd := commands.NewSaveRecipeCommand(m.tracker, m.editing, m.form.Value(0), m.form.FloatValue(1), refs)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.mode = recipesList
		m.SetMessage(result.Message, false)
		m.reload()
		return m, nil
	}
	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *RecipesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		cmd := commands.NewDeleteRecipeCommand(m.tracker, m.rows[m.cursor].ID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
		} else {
			m.SetMessage(result.Message, false)
		}
		m.mode = recipesList
		m.reload()
	case "n", "esc":
		m.mode = recipesList
	}
	return m, nil
}

// parseRefs resolves "name:quantity" pairs against the ingredient list
func (m *RecipesModel) parseRefs(raw string) ([]domain.RecipeIngredient, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	byName := map[string]string{}
	for _, ing := range m.tracker.Ingredients() {
		byName[strings.ToLower(ing.Name)] = ing.ID
	}

	var refs []domain.RecipeIngredient
	for _, part := range strings.Split(raw, ",") {
		name, qty, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("expected name:quantity, got %q", part)
		}
		id, found := byName[strings.ToLower(strings.TrimSpace(name))]
		if !found {
			return nil, fmt.Errorf("no ingredient named %q", strings.TrimSpace(name))
		}
		quantity, err := strconv.ParseFloat(strings.TrimSpace(qty), 64)
		if err != nil {
			return nil, fmt.Errorf("bad quantity in %q", part)
		}
		refs = append(refs, domain.RecipeIngredient{IngredientID: id, Quantity: quantity})
	}
	return refs, nil
}

// formatRefs is the inverse of parseRefs, for pre-filling the edit form
func (m *RecipesModel) formatRefs(refs []domain.RecipeIngredient) string {
	names := map[string]string{}
	for _, ing := range m.tracker.Ingredients() {
		names[ing.ID] = ing.Name
	}

	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		name, ok := names[ref.IngredientID]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%s", name, strconv.FormatFloat(ref.Quantity, 'f', -1, 64)))
	}
	return strings.Join(parts, ", ")
}

// View renders the recipes view
func (m *RecipesModel) View() string {
	v := NewViewBuilder().
		Title("Recipes").
		Message(m.Message, m.MessageErr)

	switch m.mode {
	case recipesEdit:
		for i := range m.form.Fields {
			v.Line(m.form.RenderField(i))
		}
		action := "create recipe"
		if m.editing != "" {
			action = "save recipe"
		}
		v.BlankLine().Line(m.form.RenderHelp(action))
		return v.String()

	case recipesConfirmDelete:
		row := m.rows[m.cursor]
		v.Line(fmt.Sprintf("Delete %s? %s to confirm, %s to cancel",
			styles.ErrorMsg.Render(row.Name), styles.HelpKey.Render("y"), styles.HelpKey.Render("n")))
		return v.String()
	}

	if len(m.rows) == 0 {
		v.Muted("No recipes yet. Press a to add one.")
	}
	ingredients := m.tracker.Ingredients()
	for i, row := range m.rows {
		cost := row.UnitCost(ingredients)
		profit := row.SellingPrice - cost
		line := fmt.Sprintf("%-24s sells %10s  costs %10s  profit %10s",
			row.Name, Money(row.SellingPrice), Money(cost), Money(profit))
		if i == m.cursor {
			line = styles.Selected.Render(line)
		}
		v.Line(line)
	}

	v.BlankLine().Help(
		RecipesKeys.Up, RecipesKeys.Down,
		RecipesKeys.Add, RecipesKeys.Edit, RecipesKeys.Delete,
	)
	return v.String()
}
