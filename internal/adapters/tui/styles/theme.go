package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors of one theme
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Text    lipgloss.Color
	Surface lipgloss.Color
}

// Light is the default warm bakery palette
var Light = Palette{
	Primary: lipgloss.Color("#D97706"), // Amber
	Accent:  lipgloss.Color("#059669"), // Green
	Muted:   lipgloss.Color("#6B7280"), // Gray
	Warning: lipgloss.Color("#F59E0B"),
	Danger:  lipgloss.Color("#DC2626"), // Red
	Text:    lipgloss.Color("#111827"),
	Surface: lipgloss.Color("#E5E7EB"),
}

// Dark lifts the same hues for dark terminals
var Dark = Palette{
	Primary: lipgloss.Color("#FBBF24"),
	Accent:  lipgloss.Color("#34D399"),
	Muted:   lipgloss.Color("#9CA3AF"),
	Warning: lipgloss.Color("#FBBF24"),
	Danger:  lipgloss.Color("#F87171"),
	Text:    lipgloss.Color("#F9FAFB"),
	Surface: lipgloss.Color("#374151"),
}

// Current is the active palette; Apply swaps it
var Current = Light

var (
	App lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Selected lipgloss.Style

	Card      lipgloss.Style
	CardLabel lipgloss.Style
	CardValue lipgloss.Style

	Bar lipgloss.Style

	InputLabel   lipgloss.Style
	InputField   lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	Success  lipgloss.Style
	ErrorMsg lipgloss.Style

	Paid   lipgloss.Style
	Credit lipgloss.Style

	MutedText lipgloss.Style
)

func init() {
	Apply("light")
}

// Apply activates the named theme ("light" or "dark") and rebuilds
// every exported style from its palette.
func Apply(theme string) {
	if theme == "dark" {
		Current = Dark
	} else {
		Current = Light
	}
	p := Current

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	Selected = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(p.Text).
		Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 2).
		MarginRight(1)

	CardLabel = lipgloss.NewStyle().
		Foreground(p.Muted)

	CardValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	Bar = lipgloss.NewStyle().
		Foreground(p.Accent)

	InputLabel = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	InputField = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	HelpSeparator = lipgloss.NewStyle().
		Foreground(p.Muted).
		SetString(" • ")

	Success = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Danger).
		Bold(true)

	Paid = lipgloss.NewStyle().
		Foreground(p.Accent)

	Credit = lipgloss.NewStyle().
		Foreground(p.Warning)

	MutedText = lipgloss.NewStyle().
		Foreground(p.Muted)
}
