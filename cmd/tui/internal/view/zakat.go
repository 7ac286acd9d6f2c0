package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/zakat"
)

type zakatState int

const (
	zakatStateBrowse zakatState = iota
	zakatStatePay
	zakatStatePin
	zakatStateConfirmDelete
)

// ZakatModel lists the payments of a year and manages its pinned base.
type ZakatModel struct {
	CommonModel
	assets *asset.Service
	zakat  *zakat.Service

	state    zakatState
	year     int
	table    table.Model
	payments []*asset.Asset
	base     decimal.Decimal
	form     *huh.Form

	loading bool
	err     error
	status  string

	formAmount  string
	formNote    string
	formConfirm *bool
}

func NewZakatModel(assets *asset.Service, zakatSvc *zakat.Service) ZakatModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 24},
		{Title: "Amount", Width: 18},
	}

	return ZakatModel{
		assets:  assets,
		zakat:   zakatSvc,
		year:    time.Now().Year(),
		table:   newTable(columns),
		loading: true,
	}
}

func (m ZakatModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ZakatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case zakatLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.payments = msg.payments
		m.base = msg.base
		m.refreshTable()

		return m, nil

	case zakatSavedMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = errorStatus("saving", msg.err)
		}

		m.state = zakatStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()
	}

	if m.state != zakatStateBrowse {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "[":
			m.year--
			return m, m.loadCmd()
		case "]":
			m.year++
			return m, m.loadCmd()
		case "p":
			return m.enterAmount(zakatStatePay)
		case "b":
			return m.enterAmount(zakatStatePin)
		case "c":
			if m.base.IsZero() {
				return m, nil
			}

			return m, m.clearBaseCmd()
		case "d":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.payments) {
				return m.enterConfirmDelete(m.payments[idx])
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ZakatModel) enterAmount(state zakatState) (tea.Model, tea.Cmd) {
	m.formAmount, m.formNote = "", ""
	if state == zakatStatePin && !m.base.IsZero() {
		m.formAmount = m.base.String()
	}

	amount := huh.NewInput().
		Key("amount").
		Title("Amount (YER)").
		Value(&m.formAmount).
		Validate(func(s string) error {
			_, err := money.ParsePositive(s)
			return err
		})

	group := huh.NewGroup(amount)

	if state == zakatStatePay {
		group = huh.NewGroup(amount,
			huh.NewInput().
				Key("name").
				Title("Name").
				Placeholder("Zakat "+strconv.Itoa(m.year)).
				Value(&m.formNote))
	}

	m.form = huh.NewForm(group).WithWidth(45).WithShowHelp(false)
	m.state = state
	m.table.Blur()

	return m, m.form.Init()
}

func (m ZakatModel) enterConfirmDelete(p *asset.Asset) (tea.Model, tea.Cmd) {
	m.formConfirm = new(false)
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete payment %q of %s?", p.Name, money.Format(p.Value, money.YER))).
			Value(m.formConfirm),
	)).WithWidth(45).WithShowHelp(false)
	m.state = zakatStateConfirmDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m ZakatModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = zakatStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case zakatStateConfirmDelete:
		idx := m.table.Cursor()
		if !*m.formConfirm || idx < 0 || idx >= len(m.payments) {
			m.state = zakatStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}

		return m, m.deleteCmd(m.payments[idx])
	case zakatStatePin:
		return m, m.pinCmd(m.form.GetString("amount"))
	}

	return m, m.payCmd(m.form.GetString("amount"), m.form.GetString("name"))
}

func (m *ZakatModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.payments))

	for _, p := range m.payments {
		rows = append(rows, table.Row{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			money.Format(p.Value, money.YER),
		})
	}

	m.table.SetRows(rows)
}

func (m ZakatModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading Zakat...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	paid := decimal.Zero
	for _, p := range m.payments {
		paid = paid.Add(p.Value)
	}

	base := lipgloss.NewStyle().Faint(true).Render("not pinned, follows live wealth")
	if !m.base.IsZero() {
		base = activeStyle(money.Format(m.base, money.YER)) +
			fmt.Sprintf(" (due %s)", money.Format(zakat.Due(m.base), money.YER))
	}

	header := fmt.Sprintf("Year: %s | Paid: %s | Base: %s",
		activeStyle(strconv.Itoa(m.year)), money.Format(paid, money.YER), base)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", tableBox(m.table))

	if m.form != nil {
		title := "Record payment"

		switch m.state {
		case zakatStatePin:
			title = fmt.Sprintf("Pin base for %d", m.year)
		case zakatStateConfirmDelete:
			title = "Delete payment"
		}

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel(title, m.form.View()))
	}

	help := "Esc: back | [/]: year | p: pay | b: pin base | c: clear base | d: delete"
	if m.form != nil {
		help = "Navigate form | Esc: cancel"
	}

	return screen("Zakat", help, m.status, content)
}

// Messages

type zakatLoadedMsg struct {
	payments []*asset.Asset
	base     decimal.Decimal
	err      error
}

func (m ZakatModel) loadCmd() tea.Cmd {
	year := m.year

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		payments, err := m.assets.ZakatPayments(ctx, year)
		if err != nil {
			return zakatLoadedMsg{err: err}
		}

		base, err := m.zakat.Base(ctx, year)

		return zakatLoadedMsg{payments: payments, base: base, err: err}
	}
}

type zakatSavedMsg struct {
	status string
	err    error
}

func (m ZakatModel) payCmd(rawAmount, name string) tea.Cmd {
	year := m.year

	return func() tea.Msg {
		value, err := money.ParsePositive(rawAmount)
		if err != nil {
			return zakatSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		p, err := m.assets.RecordZakatPayment(ctx, asset.ZakatPaymentParams{Year: year, Value: value, Name: name})
		if err != nil {
			return zakatSavedMsg{err: err}
		}

		return zakatSavedMsg{status: "Recorded " + money.Format(p.Value, money.YER)}
	}
}

func (m ZakatModel) pinCmd(rawAmount string) tea.Cmd {
	year := m.year

	return func() tea.Msg {
		value, err := money.ParsePositive(rawAmount)
		if err != nil {
			return zakatSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.zakat.SetBase(ctx, year, value); err != nil {
			return zakatSavedMsg{err: err}
		}

		return zakatSavedMsg{status: fmt.Sprintf("Pinned %s for %d", money.Format(value, money.YER), year)}
	}
}

func (m ZakatModel) clearBaseCmd() tea.Cmd {
	year := m.year

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.zakat.ClearBase(ctx, year); err != nil {
			return zakatSavedMsg{err: err}
		}

		return zakatSavedMsg{status: fmt.Sprintf("Cleared base for %d", year)}
	}
}

func (m ZakatModel) deleteCmd(p *asset.Asset) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.assets.Delete(ctx, p.ID); err != nil {
			return zakatSavedMsg{err: err}
		}

		return zakatSavedMsg{status: "Deleted " + p.Name}
	}
}
