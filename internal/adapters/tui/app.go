package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"bakerspal/internal/adapters/tui/styles"
	"bakerspal/internal/adapters/tui/views"
	"bakerspal/internal/domain"
	"bakerspal/internal/ports"
	"bakerspal/internal/state"
)

// view is the common surface of all tab models
type view interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// capturer is implemented by views that sometimes own the keyboard
// (an open form); global key handling steps aside while they do.
type capturer interface {
	Capturing() bool
}

// App is the main TUI application model
type App struct {
	tracker *state.Tracker

	active   domain.View
	showHelp bool
	theme    string

	tabs map[domain.View]view
	help *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application starting on the given view
func NewApp(tracker *state.Tracker, advisor ports.Advisor, start domain.View) *App {
	return &App{
		tracker: tracker,
		active:  start,
		theme:   tracker.Theme(),
		tabs: map[domain.View]view{
			domain.ViewDashboard:   views.NewDashboardModel(tracker, advisor),
			domain.ViewIngredients: views.NewIngredientsModel(tracker),
			domain.ViewRecipes:     views.NewRecipesModel(tracker),
			domain.ViewSales:       views.NewSalesModel(tracker),
			domain.ViewNotes:       views.NewNotesModel(tracker),
			domain.ViewAssistant:   views.NewAssistantModel(advisor),
		},
		help: views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	styles.Apply(a.theme)
	var cmds []tea.Cmd
	for _, tab := range a.tabs {
		if cmd := tab.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, tab := range a.tabs {
			tab.SetSize(msg.Width, msg.Height)
		}
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchViewMsg:
		a.showHelp = false
		a.active = msg.View
		return a, a.refreshActive()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.showHelp {
			_, cmd := a.help.Update(msg)
			return a, cmd
		}
		if !a.activeCapturing() {
			if handled, cmd := a.handleGlobalKey(msg); handled {
				return a, cmd
			}
		}
	}

	if a.showHelp {
		_, cmd := a.help.Update(msg)
		return a, cmd
	}
	_, cmd := a.tabs[a.active].Update(msg)
	return a, cmd
}

func (a *App) activeCapturing() bool {
	if c, ok := a.tabs[a.active].(capturer); ok {
		return c.Capturing()
	}
	return false
}

func (a *App) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "q":
		return true, tea.Quit
	case "?":
		a.showHelp = true
		return true, nil
	case "t":
		a.toggleTheme()
		return true, nil
	case "tab":
		a.cycle(1)
		return true, a.refreshActive()
	case "shift+tab":
		a.cycle(-1)
		return true, a.refreshActive()
	case "1", "2", "3", "4", "5", "6":
		a.active = domain.Views[int(msg.String()[0]-'1')]
		return true, a.refreshActive()
	}
	return false, nil
}

func (a *App) cycle(step int) {
	for i, v := range domain.Views {
		if v == a.active {
			a.active = domain.Views[(i+step+len(domain.Views))%len(domain.Views)]
			return
		}
	}
	a.active = domain.ViewDashboard
}

func (a *App) toggleTheme() {
	if a.theme == "dark" {
		a.theme = "light"
	} else {
		a.theme = "dark"
	}
	a.tracker.SetTheme(a.theme)
	styles.Apply(a.theme)
}

func (a *App) refreshActive() tea.Cmd {
	return func() tea.Msg {
		return views.RefreshMsg{}
	}
}

// View renders the current view under the tab bar
func (a *App) View() string {
	if a.showHelp {
		return styles.App.Render(a.help.View())
	}
	return styles.App.Render(a.renderTabs() + "\n\n" + a.tabs[a.active].View())
}

func (a *App) renderTabs() string {
	var out string
	for i, v := range domain.Views {
		label := tabLabel(v)
		if v == a.active {
			out += styles.TabActive.Render(label)
		} else {
			out += styles.TabInactive.Render(fmt.Sprintf("%d %s", i+1, label))
		}
	}
	return out
}

func tabLabel(v domain.View) string {
	switch v {
	case domain.ViewDashboard:
		return "Dashboard"
	case domain.ViewIngredients:
		return "Ingredients"
	case domain.ViewRecipes:
		return "Recipes"
	case domain.ViewSales:
		return "Sales"
	case domain.ViewNotes:
		return "Notes"
	case domain.ViewAssistant:
		return "Assistant"
	default:
		return string(v)
	}
}
