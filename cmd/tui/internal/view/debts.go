package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wallet/internal/debt"
	"github.com/MrJamesThe3rd/wallet/internal/money"
)

type debtsState int

const (
	debtsStateBrowse debtsState = iota
	debtsStateEdit
	debtsStateConfirmSettle
	debtsStateConfirmDelete
)

type DebtsModel struct {
	CommonModel
	debts *debt.Service

	state debtsState
	table table.Model
	items []*debt.Debt
	form  *huh.Form

	loading bool
	err     error
	status  string

	editing     *debt.Debt
	formName    string
	formValue   string
	formCur     string
	formType    string
	formNote    string
	formConfirm *bool
}

func NewDebtsModel(debts *debt.Service) DebtsModel {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Direction", Width: 12},
		{Title: "Amount", Width: 16},
		{Title: "Date", Width: 12},
		{Title: "Note", Width: 24},
	}

	return DebtsModel{
		debts:   debts,
		table:   newTable(columns),
		loading: true,
	}
}

func (m DebtsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DebtsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debtsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.items = msg.debts
		m.refreshTable()

		return m, nil

	case debtsSavedMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = errorStatus("saving debt", msg.err)
		}

		m.state = debtsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()
	}

	if m.state != debtsStateBrowse {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.enterEdit(nil)
		case "e":
			if d := m.selected(); d != nil {
				return m.enterEdit(d)
			}

			return m, nil
		case "s":
			if d := m.selected(); d != nil {
				return m.enterConfirm(d, debtsStateConfirmSettle)
			}

			return m, nil
		case "d":
			if d := m.selected(); d != nil {
				return m.enterConfirm(d, debtsStateConfirmDelete)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DebtsModel) selected() *debt.Debt {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}

	return m.items[idx]
}

func (m DebtsModel) enterEdit(d *debt.Debt) (tea.Model, tea.Cmd) {
	m.editing = d
	m.formName, m.formValue, m.formNote = "", "", ""
	m.formCur = string(money.YER)
	m.formType = string(debt.TypeOwedToMe)

	if d != nil {
		m.formName = d.Name
		m.formValue = d.Value.String()
		m.formCur = string(d.Currency)
		m.formType = string(d.Type)
		m.formNote = d.Note
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Key("value").
				Title("Amount").
				Value(&m.formValue).
				Validate(func(s string) error {
					_, err := money.ParsePositive(s)
					return err
				}),
			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(
					huh.NewOption("YER", string(money.YER)),
					huh.NewOption("SAR", string(money.SAR)),
					huh.NewOption("USD", string(money.USD)),
				).
				Value(&m.formCur),
			huh.NewSelect[string]().
				Key("type").
				Title("Direction").
				Options(
					huh.NewOption("Owed to me", string(debt.TypeOwedToMe)),
					huh.NewOption("Owed by me", string(debt.TypeOwedByMe)),
				).
				Value(&m.formType),
			huh.NewInput().
				Key("note").
				Title("Note").
				Value(&m.formNote),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = debtsStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m DebtsModel) enterConfirm(d *debt.Debt, state debtsState) (tea.Model, tea.Cmd) {
	title := fmt.Sprintf("Delete the debt with %s?", d.Name)
	if state == debtsStateConfirmSettle {
		title = fmt.Sprintf("Mark the debt with %s as settled?", d.Name)
	}

	m.editing = d
	m.formConfirm = new(false)
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(m.formConfirm),
	)).WithWidth(45).WithShowHelp(false)
	m.state = state
	m.table.Blur()

	return m, m.form.Init()
}

func (m DebtsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = debtsStateBrowse
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
	case debtsStateConfirmSettle, debtsStateConfirmDelete:
		if !*m.formConfirm {
			m.state = debtsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}

		return m, m.removeCmd(m.editing, m.state == debtsStateConfirmSettle)
	}

	return m, m.saveCmd()
}

func directionLabel(t debt.Type) string {
	if t == debt.TypeOwedByMe {
		return "I owe"
	}

	return "Owed to me"
}

func (m *DebtsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))

	for _, d := range m.items {
		rows = append(rows, table.Row{
			d.Name,
			directionLabel(d.Type),
			money.Format(d.Value, d.Currency),
			FormatDate(d.Timestamp),
			d.Note,
		})
	}

	m.table.SetRows(rows)
}

func (m DebtsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading debts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := tableBox(m.table)

	if m.form != nil {
		title := "New debt"

		switch {
		case m.state == debtsStateConfirmSettle:
			title = "Settle debt"
		case m.state == debtsStateConfirmDelete:
			title = "Delete debt"
		case m.editing != nil:
			title = "Edit debt"
		}

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel(title, m.form.View()))
	}

	help := "Esc: back | a: add | e: edit | s: settle | d: delete"
	if m.form != nil {
		help = "Navigate form | Esc: cancel"
	}

	return screen("Debts", help, m.status, content)
}

// Messages

type debtsLoadedMsg struct {
	debts []*debt.Debt
	err   error
}

func (m DebtsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		debts, err := m.debts.List(ctx)

		return debtsLoadedMsg{debts: debts, err: err}
	}
}

type debtsSavedMsg struct {
	status string
	err    error
}

func (m DebtsModel) saveCmd() tea.Cmd {
	value, err := money.ParsePositive(m.form.GetString("value"))
	if err != nil {
		return func() tea.Msg { return debtsSavedMsg{err: err} }
	}

	params := debt.Params{
		Name:     m.form.GetString("name"),
		Value:    value,
		Currency: money.Currency(m.form.GetString("currency")),
		Type:     debt.Type(m.form.GetString("type")),
		Note:     m.form.GetString("note"),
	}
	editing := m.editing

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editing != nil {
			if _, err := m.debts.Update(ctx, editing.ID, params); err != nil {
				return debtsSavedMsg{err: err}
			}

			return debtsSavedMsg{status: "Updated " + params.Name}
		}

		if _, err := m.debts.Create(ctx, params); err != nil {
			return debtsSavedMsg{err: err}
		}

		return debtsSavedMsg{status: "Added " + params.Name}
	}
}

func (m DebtsModel) removeCmd(d *debt.Debt, settle bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if settle {
			if err := m.debts.Settle(ctx, d.ID); err != nil {
				return debtsSavedMsg{err: err}
			}

			return debtsSavedMsg{status: "Settled " + d.Name}
		}

		if err := m.debts.Delete(ctx, d.ID); err != nil {
			return debtsSavedMsg{err: err}
		}

		return debtsSavedMsg{status: "Deleted " + d.Name}
	}
}
