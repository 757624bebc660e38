package views

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bakerspal/internal/adapters/tui/styles"
	"bakerspal/internal/ports"
)

// suggestionMsg carries the assistant's answer back into the update loop
type suggestionMsg struct {
	text string
}

// AssistantModel is a one-shot prompt box over the recipe advisor
type AssistantModel struct {
	ViewState
	advisor ports.Advisor

	form    *InputForm
	focused bool
	answer  string
	loading bool
}

// NewAssistantModel creates the recipe assistant view
func NewAssistantModel(advisor ports.Advisor) *AssistantModel {
	return &AssistantModel{
		advisor: advisor,
		focused: true,
		form: NewInputForm(
			NewInputField("Ask for a recipe idea", "something with overripe bananas", 280),
		),
	}
}

// Init initializes the assistant view
func (m *AssistantModel) Init() tea.Cmd {
	return m.form.Init()
}

// Capturing reports whether the prompt box owns the keyboard
func (m *AssistantModel) Capturing() bool {
	return m.focused
}

// Update handles messages for the assistant view
func (m *AssistantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionMsg:
		m.answer = msg.text
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			switch msg.String() {
			case "a", "i", "enter":
				m.focused = true
				m.form.Fields[0].Input.Focus()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			m.focused = false
			m.form.Fields[0].Input.Blur()
			return m, nil
		case key.Matches(msg, m.form.Keys.Submit):
			if m.loading {
				return m, nil
			}
			prompt := m.form.Value(0)
			if prompt == "" {
				return m, nil
			}
			m.loading = true
			m.answer = ""
			return m, m.ask(prompt)
		}
		_, cmd := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *AssistantModel) ask(prompt string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return suggestionMsg{text: m.advisor.RecipeSuggestion(ctx, prompt)}
	}
}

// View renders the assistant view
func (m *AssistantModel) View() string {
	v := NewViewBuilder().
		Title("Recipe Assistant").
		Message(m.Message, m.MessageErr)

	if !m.advisor.IsAvailable() {
		v.Muted("Set GEMINI_API_KEY to enable the assistant.").BlankLine()
	}

	v.Line(m.form.RenderField(0)).BlankLine()

	if m.loading {
		v.Muted("Thinking...")
	} else if m.answer != "" {
		v.Line(styles.InputLabel.Render("Suggestion")).
			Line(wrap(m.answer, m.Width-4))
	}

	v.BlankLine()
	if m.focused {
		v.Line(m.form.RenderHelp("ask"))
	} else {
		v.Line(styles.HelpKey.Render("i") + " " + styles.HelpDesc.Render("type a question"))
	}
	return v.String()
}
