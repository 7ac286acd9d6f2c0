package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/preference"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

// GoldModel edits the single gold holding. Grams of 21k gold are stored as
// their 24k equivalent. The last saved inputs are kept in the preferences
// file and refill the form on the next visit.
type GoldModel struct {
	CommonModel
	assets *asset.Service
	rates  *rate.Service
	prefs  *preference.Store

	set     rate.Set
	gold    *asset.GoldSummary
	last    preference.Preferences
	form    *huh.Form
	loading bool
	status  string

	grams24 string
	grams21 string
}

func NewGoldModel(assets *asset.Service, rates *rate.Service, prefs *preference.Store) GoldModel {
	return GoldModel{
		assets:  assets,
		rates:   rates,
		prefs:   prefs,
		loading: true,
	}
}

func (m GoldModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m GoldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goldLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = errorStatus("loading gold", msg.err)
		}

		m.set = msg.set
		m.gold = msg.gold
		m.last = msg.last

		return m.buildForm()

	case goldSavedMsg:
		if msg.err != nil {
			m.status = errorStatus("saving gold", msg.err)
			return m.buildForm()
		}

		m.status = "Saved " + money.Format(msg.grams, money.GRAM) + " of 24k gold"
		if msg.prefsErr != nil {
			m.status += " | " + errorStatus("remembering inputs", msg.prefsErr)
		}

		m.loading = true

		return m, m.loadCmd()

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
		g24, g21 := m.form.GetString("grams24"), m.form.GetString("grams21")
		m.form = nil

		return m, m.saveCmd(g24, g21)
	}

	return m, cmd
}

func gramsOrEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	d, err := money.ParseAmount(s)
	if err != nil {
		return err
	}

	if d.IsNegative() {
		return fmt.Errorf("weight cannot be negative")
	}

	return nil
}

func (m GoldModel) buildForm() (tea.Model, tea.Cmd) {
	m.grams24, m.grams21 = goldInputs(m.last, m.gold)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("grams24").
				Title("24k grams").
				Value(&m.grams24).
				Validate(gramsOrEmpty),
			huh.NewInput().
				Key("grams21").
				Title("21k grams").
				Description("Converted to 24k at 21/24").
				Value(&m.grams21).
				Validate(gramsOrEmpty),
		),
	).WithWidth(45).WithShowHelp(false)

	return m, m.form.Init()
}

func (m GoldModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading gold...")
	}

	label := lipgloss.NewStyle().Width(22).Faint(true)

	var b strings.Builder

	b.WriteString(label.Render("24k per gram") + money.Format(m.set.GoldPerGramYER, money.YER) + "\n")
	b.WriteString(label.Render("21k per gram") + money.Format(asset.GoldPrice21(m.set), money.YER) + "\n\n")

	if m.gold != nil {
		b.WriteString(label.Render("Holding") + activeStyle(money.Format(m.gold.Asset.Value, money.GRAM)) + "\n")
		b.WriteString(label.Render("Value") + money.Format(m.gold.TotalYER, money.YER) + "\n")
		b.WriteString(label.Render("") + money.Format(m.gold.TotalSAR, money.SAR) + "\n")
		b.WriteString(label.Render("") + money.Format(m.gold.TotalUSD, money.USD) + "\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("No gold recorded") + "\n")
	}

	content := b.String()
	if m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel("Gold holding", m.form.View()))
	}

	return screen("Gold", "Enter: save | Esc: back", m.status, content)
}

// goldInputs picks the form's starting values: the last saved inputs, or the
// holding's 24k weight when none were saved.
func goldInputs(last preference.Preferences, gold *asset.GoldSummary) (string, string) {
	if last.GoldGrams24 != "" || last.GoldGrams21 != "" {
		return last.GoldGrams24, last.GoldGrams21
	}

	if gold != nil {
		return gold.Asset.Value.String(), ""
	}

	return "", ""
}

// Messages

type goldLoadedMsg struct {
	set  rate.Set
	gold *asset.GoldSummary
	last preference.Preferences
	err  error
}

func (m GoldModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		set := m.rates.Load(ctx)
		_, gold, err := m.assets.Banks(ctx, set)

		// Unreadable preferences fall back to the holding's weight.
		last, _ := m.prefs.Load()

		return goldLoadedMsg{set: set, gold: gold, last: last, err: err}
	}
}

type goldSavedMsg struct {
	grams    decimal.Decimal
	prefsErr error
	err      error
}

func parseGrams(s string) decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero
	}

	d, err := money.ParseAmount(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}

func (m GoldModel) saveCmd(raw24, raw21 string) tea.Cmd {
	g24, g21 := parseGrams(raw24), parseGrams(raw21)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		gold, err := m.assets.SaveGold(ctx, g24, g21)
		if err != nil {
			return goldSavedMsg{err: err}
		}

		_, err = m.prefs.Update(func(p *preference.Preferences) {
			p.GoldGrams24 = strings.TrimSpace(raw24)
			p.GoldGrams21 = strings.TrimSpace(raw21)
		})

		return goldSavedMsg{grams: gold.Value, prefsErr: err}
	}
}
