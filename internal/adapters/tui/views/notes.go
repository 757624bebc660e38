package views

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bakerspal/internal/adapters/tui/styles"
	"bakerspal/internal/application/commands"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

type notesMode int

const (
	notesList notesMode = iota
	notesAdd
	notesConfirmDelete
)

// NotesKeyMap defines key bindings for the notes view
type NotesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
}

var NotesKeys = NotesKeyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
}

// NotesModel lists notes newest first
type NotesModel struct {
	ViewState
	tracker *state.Tracker

	rows   []domain.Note
	cursor int
	mode   notesMode

	form *InputForm
}

// NewNotesModel creates the notes view
func NewNotesModel(tracker *state.Tracker) *NotesModel {
	return &NotesModel{
		tracker: tracker,
		form: NewInputForm(
			NewInputField("Note", "order 2 bags of flour before Friday", 280),
		),
	}
}

// Init loads the note rows
func (m *NotesModel) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *NotesModel) reload() {
	m.rows = m.tracker.Notes()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Capturing reports whether the add form owns the keyboard
func (m *NotesModel) Capturing() bool {
	return m.mode == notesAdd
}

// Update handles messages for the notes view
func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.reload()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case notesAdd:
			return m.updateAdd(msg)
		case notesConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *NotesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, NotesKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, NotesKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, NotesKeys.Add):
		m.mode = notesAdd
		m.form.Reset()
		m.ClearMessage()
		return m, m.form.Init()
	case key.Matches(msg, NotesKeys.Delete):
		if len(m.rows) > 0 {
			m.mode = notesConfirmDelete
			m.ClearMessage()
		}
	}
	return m, nil
}

func (m *NotesModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.form.Keys.Cancel):
		m.mode = notesList
		return m, nil
	case key.Matches(msg, m.form.Keys.Submit):
		cmd := commands.NewAddNoteCommand(m.tracker, m.form.Value(0))
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.mode = notesList
		m.SetMessage(result.Message, false)
		m.reload()
		return m, nil
	}
	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *NotesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		cmd := commands.NewDeleteNoteCommand(m.tracker, m.rows[m.cursor].ID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
		} else {
			m.SetMessage(result.Message, false)
		}
		m.mode = notesList
		m.reload()
	case "n", "esc":
		m.mode = notesList
	}
	return m, nil
}

// View renders the notes view
func (m *NotesModel) View() string {
	v := NewViewBuilder().
		Title("Notes").
		Message(m.Message, m.MessageErr)

	switch m.mode {
	case notesAdd:
		v.Line(m.form.RenderField(0)).
			BlankLine().
			Line(m.form.RenderHelp("add note"))
		return v.String()

	case notesConfirmDelete:
		v.Line(fmt.Sprintf("Delete this note? %s to confirm, %s to cancel",
			styles.HelpKey.Render("y"), styles.HelpKey.Render("n")))
		return v.String()
	}

	if len(m.rows) == 0 {
		v.Muted("No notes yet. Press a to jot one down.")
	}
	for i, row := range m.rows {
		line := fmt.Sprintf("%s  %s", styles.MutedText.Render(noteDay(row.Date)), row.Content)
		if i == m.cursor {
			line = styles.Selected.Render(fmt.Sprintf("%s  %s", noteDay(row.Date), row.Content))
		}
		v.Line(line)
	}

	v.BlankLine().Help(NotesKeys.Up, NotesKeys.Down, NotesKeys.Add, NotesKeys.Delete)
	return v.String()
}

func noteDay(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return "??????"
	}
	return t.Local().Format("02 Jan")
}
