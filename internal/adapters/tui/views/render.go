package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"bakerspal/internal/adapters/tui/styles"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// Money formats an amount with the naira sign used throughout the app
func Money(amount float64) string {
	return fmt.Sprintf("₦%.2f", amount)
}

// BarChart renders labelled horizontal bars scaled to the largest value.
// Returns the empty string when there is nothing to draw.
func BarChart(labels []string, values []float64, maxWidth int) string {
	if len(labels) == 0 || len(labels) != len(values) {
		return ""
	}
	var peak float64
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		return ""
	}
	if maxWidth < 10 {
		maxWidth = 10
	}

	var b strings.Builder
	for i, label := range labels {
		width := int(values[i] / peak * float64(maxWidth))
		if width < 1 && values[i] > 0 {
			width = 1
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			styles.MutedText.Render(fmt.Sprintf("%-7s", label)),
			styles.Bar.Render(strings.Repeat("█", width)),
			styles.MutedText.Render(Money(values[i])),
		)
	}
	return b.String()
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(styles.MutedText.Render(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string
func (v *ViewBuilder) String() string {
	return v.b.String()
}
