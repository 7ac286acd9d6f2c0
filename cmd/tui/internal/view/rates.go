package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

// RatesModel edits the three conversion rates. Saving stamps the last update.
type RatesModel struct {
	CommonModel
	rates *rate.Service

	set     rate.Set
	form    *huh.Form
	loading bool
	status  string

	usd  string
	sar  string
	gold string
}

func NewRatesModel(rates *rate.Service) RatesModel {
	return RatesModel{rates: rates, loading: true}
}

func (m RatesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func validatePositive(s string) error {
	_, err := money.ParsePositive(s)
	return err
}

func (m RatesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ratesLoadedMsg:
		m.loading = false
		m.set = msg.set

		if msg.saved {
			m.status = "Rates saved"
		}

		return m.buildForm()

	case ratesErrMsg:
		m.status = errorStatus("saving rates", msg.err)
		return m.buildForm()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		usd, sar, gold := m.form.GetString("usd"), m.form.GetString("sar"), m.form.GetString("gold")
		m.form = nil

		return m, m.saveCmd(usd, sar, gold)
	}

	return m, cmd
}

func (m RatesModel) buildForm() (tea.Model, tea.Cmd) {
	m.usd = m.set.USDToYER.String()
	m.sar = m.set.SARToYER.String()
	m.gold = m.set.GoldPerGramYER.String()

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("usd").
				Title("1 USD in YER").
				Value(&m.usd).
				Validate(validatePositive),
			huh.NewInput().
				Key("sar").
				Title("1 SAR in YER").
				Value(&m.sar).
				Validate(validatePositive),
			huh.NewInput().
				Key("gold").
				Title("1 gram of 24k gold in YER").
				Value(&m.gold).
				Validate(validatePositive),
		),
	).WithWidth(45).WithShowHelp(false)

	return m, m.form.Init()
}

func (m RatesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading rates...")
	}

	label := lipgloss.NewStyle().Width(22).Faint(true)

	var b strings.Builder

	b.WriteString(label.Render("USD") + money.Format(m.set.USDToYER, money.YER) + "\n")
	b.WriteString(label.Render("SAR") + money.Format(m.set.SARToYER, money.YER) + "\n")
	b.WriteString(label.Render("Gold 24k / g") + money.Format(m.set.GoldPerGramYER, money.YER) + "\n")
	b.WriteString(label.Render("Gold 21k / g") + money.Format(asset.GoldPrice21(m.set), money.YER) + "\n\n")

	updated := "never"
	if m.set.LastUpdate != nil {
		updated = m.set.LastUpdate.Local().Format("2006-01-02 15:04")
	}

	b.WriteString(label.Render("Last update") + activeStyle(updated))

	content := b.String()
	if m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel("Edit rates", m.form.View()))
	}

	return screen("Rates", "Enter: save | Esc: back", m.status, content)
}

// Messages

type ratesLoadedMsg struct {
	set   rate.Set
	saved bool
}

type ratesErrMsg struct {
	err error
}

func (m RatesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return ratesLoadedMsg{set: m.rates.Load(ctx)}
	}
}

func (m RatesModel) saveCmd(rawUSD, rawSAR, rawGold string) tea.Cmd {
	return func() tea.Msg {
		usd, err := money.ParsePositive(rawUSD)
		if err != nil {
			return ratesErrMsg{err: fmt.Errorf("USD: %w", err)}
		}

		sar, err := money.ParsePositive(rawSAR)
		if err != nil {
			return ratesErrMsg{err: fmt.Errorf("SAR: %w", err)}
		}

		gold, err := money.ParsePositive(rawGold)
		if err != nil {
			return ratesErrMsg{err: fmt.Errorf("gold: %w", err)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		set, err := m.rates.Save(ctx, usd, sar, gold)
		if err != nil {
			return ratesErrMsg{err: err}
		}

		return ratesLoadedMsg{set: set, saved: true}
	}
}
