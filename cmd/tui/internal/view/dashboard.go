package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/totals"
)

// DashboardModel shows the wealth totals and this year's Zakat progress.
// It keeps one totals page for the life of the program, so trend arrows
// compare against the previous display.
type DashboardModel struct {
	CommonModel
	page *totals.Page

	view     *totals.View
	progress progress.Model
	loading  bool
	status   string
}

func NewDashboardModel(page *totals.Page) DashboardModel {
	return DashboardModel{
		page:     page,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Init displays from the cached snapshot when one exists.
func (m DashboardModel) Init() tea.Cmd {
	return m.displayCmd(true)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case totalsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = errorStatus("loading totals", msg.err)
			return m, nil
		}

		m.view = msg.view
		m.status = ""

		if msg.refreshed {
			m.status = "Rates refreshed"
		}

		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.refreshCmd()
		case "c":
			m.loading = true
			return m, m.displayCmd(false)
		}
	}

	return m, nil
}

func withArrow(s string, t totals.Trend) string {
	arrow := t.Arrow()
	switch t {
	case totals.TrendUp:
		arrow = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(arrow)
	case totals.TrendDown:
		arrow = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(arrow)
	}

	return s + " " + arrow
}

func (m DashboardModel) View() string {
	help := "Esc: back | r: refresh rates | c: recompute"

	if m.view == nil {
		body := "Loading totals..."
		if !m.loading && m.status != "" {
			body = ""
		}

		return screen("Dashboard", help, m.status, body)
	}

	s := m.view.Snapshot
	label := lipgloss.NewStyle().Width(22).Faint(true)
	row := func(name, value string) string {
		return label.Render(name) + value
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Total wealth") + "\n")
	b.WriteString(row("YER", withArrow(money.Format(s.TotalYER, money.YER), m.view.Trends.YER)) + "\n")
	b.WriteString(row("SAR", withArrow(money.Format(s.TotalSAR, money.SAR), m.view.Trends.SAR)) + "\n")
	b.WriteString(row("USD", withArrow(money.Format(s.TotalUSD, money.USD), m.view.Trends.USD)) + "\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Holdings") + "\n")
	b.WriteString(row("Cash in YER", money.Format(s.OrigYER, money.YER)) + "\n")
	b.WriteString(row("Cash in SAR", money.Format(s.OrigSAR, money.SAR)) + "\n")
	b.WriteString(row("Cash in USD", money.Format(s.OrigUSD, money.USD)) + "\n")
	b.WriteString(row("Gold", fmt.Sprintf("%s (%s)",
		money.Format(s.GoldGrams, money.GRAM), money.Format(s.GoldYER, money.YER))) + "\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Debts") + "\n")
	b.WriteString(row("Owed to me", money.Format(s.DebtsMine, money.YER)) + "\n")
	b.WriteString(row("Owed by me", money.Format(s.DebtsOwed, money.YER)) + "\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Zakat "+fmt.Sprint(time.Now().Year())) + "\n")
	b.WriteString(row("Due", money.Format(s.ZakatDue, money.YER)) + "\n")
	b.WriteString(row("Paid", money.Format(s.ZakatPaid, money.YER)) + "\n")
	b.WriteString(row("Remaining", money.Format(m.view.Remaining, money.YER)) + "\n")
	b.WriteString(m.progress.ViewAs(float64(m.view.PercentPaid)/100) +
		fmt.Sprintf(" %d%%", m.view.PercentPaid) + "\n")

	footer := ""
	if m.view.Cached {
		footer = "Showing cached totals"
	}

	if m.view.LastUpdate != nil {
		footer = strings.TrimSpace(footer + "  Rates updated " + m.view.LastUpdate.Local().Format("2006-01-02 15:04"))
	}

	if footer != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(footer))
	}

	return screen("Dashboard", help, m.status, b.String())
}

// Messages

type totalsMsg struct {
	view      *totals.View
	refreshed bool
	err       error
}

func (m DashboardModel) displayCmd(useCache bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		v, err := m.page.Display(ctx, useCache)
		if err != nil {
			return totalsMsg{err: err}
		}

		v.LastUpdate = m.page.LastUpdate(ctx)

		return totalsMsg{view: v}
	}
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		v, err := m.page.Refresh(ctx)

		return totalsMsg{view: v, refreshed: true, err: err}
	}
}
