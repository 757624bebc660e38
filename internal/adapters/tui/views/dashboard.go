package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bakerspal/internal/adapters/tui/styles"
	"bakerspal/internal/domain"
	"bakerspal/internal/ports"
	"bakerspal/internal/state"
)

// DashboardKeyMap defines key bindings for the dashboard view
type DashboardKeyMap struct {
	Tips  key.Binding
	Share key.Binding
}

var DashboardKeys = DashboardKeyMap{
	Tips:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "get tips")),
	Share: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share token")),
}

// tipsMsg carries the advisor's answer back into the update loop
type tipsMsg struct {
	tips string
}

// DashboardModel shows the derived business numbers: stat cards, the
// 7-day revenue chart, profit margins per recipe, and the debtors list.
type DashboardModel struct {
	ViewState
	tracker *state.Tracker
	advisor ports.Advisor

	tips        string
	tipsLoading bool
	shareToken  string
}

// NewDashboardModel creates the dashboard view
func NewDashboardModel(tracker *state.Tracker, advisor ports.Advisor) *DashboardModel {
	return &DashboardModel{
		tracker: tracker,
		advisor: advisor,
	}
}

// Init initializes the dashboard
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tipsMsg:
		m.tips = msg.tips
		m.tipsLoading = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DashboardKeys.Tips):
			if !m.tipsLoading {
				m.tipsLoading = true
				return m, m.fetchTips()
			}
		case key.Matches(msg, DashboardKeys.Share):
			return m, m.share()
		}
	}
	return m, nil
}

// share encodes the state as a token and copies it to the clipboard.
// When the clipboard is unavailable the token is shown in the view so
// it can be copied by hand.
func (m *DashboardModel) share() tea.Cmd {
	token, err := m.tracker.Token()
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	if err := clipboard.WriteAll(token); err != nil {
		m.shareToken = token
		m.SetMessage("Clipboard unavailable; token shown below", false)
		return nil
	}
	m.shareToken = ""
	m.SetMessage("Share token copied to clipboard", false)
	return nil
}

func (m *DashboardModel) fetchTips() tea.Cmd {
	ingredients := m.tracker.Ingredients()
	sales := m.tracker.Sales()
	revenue := domain.TotalRevenue(sales)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return tipsMsg{tips: m.advisor.BusinessTips(ctx, ingredients, sales, revenue)}
	}
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	sales := m.tracker.Sales()
	recipes := m.tracker.Recipes()
	ingredients := m.tracker.Ingredients()

	v := NewViewBuilder().
		Title("Dashboard").
		Message(m.Message, m.MessageErr)

	var outstanding float64
	debtors := domain.DebtorBalances(sales)
	for _, d := range debtors {
		outstanding += d.Balance
	}

	v.Line(lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Revenue", Money(domain.TotalRevenue(sales))),
		statCard("Units sold", fmt.Sprintf("%d", domain.TotalUnits(sales))),
		statCard("Avg price", Money(domain.AverageSalePrice(sales))),
		statCard("Owed", Money(outstanding)),
	)).BlankLine()

	series := domain.DailySeries(sales, func(s domain.Sale) float64 { return s.Total() })
	if len(series) > 0 {
		labels := make([]string, len(series))
		values := make([]float64, len(series))
		for i, p := range series {
			labels[i] = p.Label
			values[i] = p.Value
		}
		v.Line(styles.InputLabel.Render("Revenue, last 7 days")).
			Raw(BarChart(labels, values, chartWidth(m.Width))).
			BlankLine()
	}

	margins := domain.ProfitMarginByRecipe(sales, recipes, ingredients)
	if len(margins) > 0 {
		v.Line(styles.InputLabel.Render("Profit margin by recipe"))
		for _, mg := range margins {
			v.Line(fmt.Sprintf("  %-24s %10s revenue  %6.1f%%", mg.Name, Money(mg.Revenue), mg.Margin))
		}
		v.BlankLine()
	}

	if len(debtors) > 0 {
		v.Line(styles.InputLabel.Render("Debtors"))
		for _, d := range debtors {
			v.Line(fmt.Sprintf("  %-24s owes %s", d.Customer, styles.Credit.Render(Money(d.Balance))))
		}
		v.BlankLine()
	}

	if m.shareToken != "" {
		v.Line(styles.InputLabel.Render("Share token")).
			Line(chunk(m.shareToken, m.Width-4)).
			BlankLine()
	}

	if m.tipsLoading {
		v.Muted("Asking for business tips...")
	} else if m.tips != "" {
		v.Line(styles.InputLabel.Render("Business tips")).
			Line(wrap(m.tips, m.Width-4)).
			BlankLine()
	}

	v.Help(DashboardKeys.Tips, DashboardKeys.Share)
	return v.String()
}

func statCard(label, value string) string {
	return styles.Card.Render(
		styles.CardLabel.Render(label) + "\n" + styles.CardValue.Render(value),
	)
}

func chartWidth(viewWidth int) int {
	w := viewWidth - 30
	if w < 10 {
		w = 30
	}
	return w
}

// chunk hard-splits unbroken text (a token) into width-sized lines
func chunk(text string, width int) string {
	if width < 20 {
		width = 72
	}
	var b strings.Builder
	for len(text) > width {
		b.WriteString(text[:width])
		b.WriteByte('\n')
		text = text[width:]
	}
	b.WriteString(text)
	return b.String()
}

// wrap breaks text at word boundaries to fit the given width
func wrap(text string, width int) string {
	if width < 20 {
		width = 72
	}
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		if line > 0 && line+len(word)+1 > width {
			b.WriteByte('\n')
			line = 0
		} else if line > 0 {
			b.WriteByte(' ')
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
