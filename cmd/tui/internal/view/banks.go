package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

type banksState int

const (
	banksStateBrowse banksState = iota
	banksStateEdit
	banksStateConfirmDelete
)

var bankCurrencies = []money.Currency{money.YER, money.SAR, money.USD}

type BanksModel struct {
	CommonModel
	assets *asset.Service
	rates  *rate.Service

	state banksState
	table table.Model
	banks []*asset.BankSummary
	gold  *asset.GoldSummary
	form  *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	editing     *asset.BankSummary
	formName    string
	formValues  map[money.Currency]*string
	formConfirm *bool
}

func NewBanksModel(assets *asset.Service, rates *rate.Service) BanksModel {
	columns := []table.Column{
		{Title: "Bank", Width: 24},
		{Title: "YER", Width: 16},
		{Title: "SAR", Width: 14},
		{Title: "USD", Width: 14},
		{Title: "Total (YER)", Width: 18},
	}

	return BanksModel{
		assets:  assets,
		rates:   rates,
		table:   newTable(columns),
		loading: true,
	}
}

func (m BanksModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BanksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case banksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.banks = msg.banks
		m.gold = msg.gold
		m.refreshTable()

		return m, nil

	case banksSavedMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = errorStatus("saving bank", msg.err)
		}

		m.state = banksStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()
	}

	switch m.state {
	case banksStateEdit, banksStateConfirmDelete:
		return m.updateForm(msg)
	}

	return m.updateBrowse(msg)
}

func (m BanksModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.enterEdit(nil)
		case "e":
			if b := m.selected(); b != nil {
				return m.enterEdit(b)
			}

			return m, nil
		case "d":
			if b := m.selected(); b != nil {
				return m.enterConfirmDelete(b)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BanksModel) selected() *asset.BankSummary {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.banks) {
		return nil
	}

	return m.banks[idx]
}

func positiveOrEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	d, err := money.ParseAmount(s)
	if err != nil {
		return err
	}

	if d.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}

	return nil
}

func (m BanksModel) enterEdit(b *asset.BankSummary) (tea.Model, tea.Cmd) {
	m.editing = b
	m.formName = ""
	m.formValues = make(map[money.Currency]*string, len(bankCurrencies))

	for _, c := range bankCurrencies {
		m.formValues[c] = new("")
	}

	if b != nil {
		m.formName = b.Name
		for _, a := range b.Balances {
			if v := m.formValues[a.Currency()]; v != nil && *v == "" {
				*v = a.Value.String()
			}
		}
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Bank name").
			Value(&m.formName).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name cannot be empty")
				}
				return nil
			}),
	}

	for _, c := range bankCurrencies {
		fields = append(fields, huh.NewInput().
			Key(string(c)).
			Title("Balance in "+string(c)).
			Placeholder("0").
			Value(m.formValues[c]).
			Validate(positiveOrEmpty))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithWidth(45).WithShowHelp(false)
	m.state = banksStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m BanksModel) enterConfirmDelete(b *asset.BankSummary) (tea.Model, tea.Cmd) {
	m.editing = b
	m.formConfirm = new(false)
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %s and all its balances?", b.Name)).
			Value(m.formConfirm),
	)).WithWidth(45).WithShowHelp(false)
	m.state = banksStateConfirmDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m BanksModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = banksStateBrowse
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

	if m.state == banksStateConfirmDelete {
		if !*m.formConfirm {
			m.state = banksStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}

		return m, m.deleteCmd(m.editing.Name)
	}

	return m, m.saveCmd()
}

func (m BanksModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading banks...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := tableBox(m.table)

	if m.gold != nil {
		content += "\n" + fmt.Sprintf("Gold: %s = %s",
			money.Format(m.gold.Asset.Value, money.GRAM),
			activeStyle(money.Format(m.gold.TotalYER, money.YER)))
	}

	if m.form != nil {
		title := "New bank"
		if m.editing != nil {
			title = "Edit " + m.editing.Name
		}

		if m.state == banksStateConfirmDelete {
			title = "Delete bank"
		}

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel(title, m.form.View()))
	}

	help := "Esc: back | a: add | e: edit | d: delete"
	if m.form != nil {
		help = "Navigate form | Esc: cancel"
	}

	return screen("Banks", help, m.status, content)
}

func (m *BanksModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.banks))

	for _, b := range m.banks {
		sums := make(map[money.Currency]decimal.Decimal)
		for _, a := range b.Balances {
			sums[a.Currency()] = sums[a.Currency()].Add(a.Value)
		}

		rows = append(rows, table.Row{
			b.Name,
			money.Format(sums[money.YER], money.YER),
			money.Format(sums[money.SAR], money.SAR),
			money.Format(sums[money.USD], money.USD),
			money.Format(b.TotalYER, money.YER),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type banksLoadedMsg struct {
	banks []*asset.BankSummary
	gold  *asset.GoldSummary
	err   error
}

func (m BanksModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		banks, gold, err := m.assets.Banks(ctx, m.rates.Load(ctx))

		return banksLoadedMsg{banks: banks, gold: gold, err: err}
	}
}

type banksSavedMsg struct {
	status string
	err    error
}

func (m BanksModel) saveCmd() tea.Cmd {
	params := asset.SaveBankParams{Name: m.form.GetString("name")}

	// Each currency keeps the id of its existing balance so edits update in place.
	ids := make(map[money.Currency]int64)

	if m.editing != nil {
		for _, a := range m.editing.Balances {
			params.PreviousIDs = append(params.PreviousIDs, a.ID)
			if _, ok := ids[a.Currency()]; !ok {
				ids[a.Currency()] = a.ID
			}
		}
	}

	for _, c := range bankCurrencies {
		raw := strings.TrimSpace(m.form.GetString(string(c)))
		if raw == "" {
			continue
		}

		v, err := money.ParseAmount(raw)
		if err != nil {
			continue
		}

		params.Balances = append(params.Balances, asset.Balance{ID: ids[c], Currency: c, Value: v})
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.assets.SaveBank(ctx, params); err != nil {
			return banksSavedMsg{err: err}
		}

		return banksSavedMsg{status: "Saved " + strings.TrimSpace(params.Name)}
	}
}

func (m BanksModel) deleteCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.assets.DeleteBank(ctx, name); err != nil {
			return banksSavedMsg{err: err}
		}

		return banksSavedMsg{status: "Deleted " + name}
	}
}
