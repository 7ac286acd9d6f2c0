package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/wallet/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/wallet/internal/asset"
	assetStore "github.com/MrJamesThe3rd/wallet/internal/asset/store"
	"github.com/MrJamesThe3rd/wallet/internal/backup"
	backupStore "github.com/MrJamesThe3rd/wallet/internal/backup/store"
	"github.com/MrJamesThe3rd/wallet/internal/config"
	"github.com/MrJamesThe3rd/wallet/internal/database"
	"github.com/MrJamesThe3rd/wallet/internal/debt"
	debtStore "github.com/MrJamesThe3rd/wallet/internal/debt/store"
	"github.com/MrJamesThe3rd/wallet/internal/preference"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
	rateStore "github.com/MrJamesThe3rd/wallet/internal/rate/store"
	"github.com/MrJamesThe3rd/wallet/internal/session"
	"github.com/MrJamesThe3rd/wallet/internal/totals"
	"github.com/MrJamesThe3rd/wallet/internal/zakat"
	zakatStore "github.com/MrJamesThe3rd/wallet/internal/zakat/store"
)

// The terminal is a single long-lived page.
const tuiSession = "tui"

type model struct {
	assetService  *asset.Service
	debtService   *debt.Service
	rateService   *rate.Service
	zakatService  *zakat.Service
	backupService *backup.Service
	prefs         *preference.Store

	currentView View

	dashboardView view.DashboardModel
	banksView     view.BanksModel
	goldView      view.GoldModel
	debtsView     view.DebtsModel
	zakatView     view.ZakatModel
	ratesView     view.RatesModel
	settingsView  view.SettingsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewBanks     View = 2
	ViewGold      View = 3
	ViewDebts     View = 4
	ViewZakat     View = 5
	ViewRates     View = 6
	ViewSettings  View = 7
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	prefs := preference.NewStore(cfg.Preferences.Path)
	if p, err := prefs.Load(); err == nil {
		view.ApplyTheme(p.Theme)
	}

	defaults := rate.NewSet(cfg.Rates.USDToYER, cfg.Rates.SARToYER, cfg.Rates.GoldPerGramYER)

	var (
		assetSvc  = asset.NewService(assetStore.New(db))
		debtSvc   = debt.NewService(debtStore.New(db))
		rateSvc   = rate.NewService(rateStore.New(db), defaults)
		zakatSvc  = zakat.NewService(zakatStore.New(db))
		backupSvc = backup.NewService(backupStore.New(db), prefs, cfg.Backup.Interval)
	)

	if _, err := backupSvc.RunAuto(ctx); err != nil {
		slog.Warn("automatic backup failed", "error", err)
	}

	slots := session.New[string, totals.Slots](cfg.Session.TTL)
	totalsSvc := totals.NewService(assetSvc, debtSvc, zakatSvc, rateSvc, slots)

	return model{
		assetService:  assetSvc,
		debtService:   debtSvc,
		rateService:   rateSvc,
		zakatService:  zakatSvc,
		backupService: backupSvc,
		prefs:         prefs,
		currentView:   ViewMenu,
		dashboardView: view.NewDashboardModel(totalsSvc.Open(tuiSession)),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewBanks
				m.banksView = view.NewBanksModel(m.assetService, m.rateService)

				return m, m.banksView.Init()
			case "3":
				m.currentView = ViewGold
				m.goldView = view.NewGoldModel(m.assetService, m.rateService, m.prefs)

				return m, m.goldView.Init()
			case "4":
				m.currentView = ViewDebts
				m.debtsView = view.NewDebtsModel(m.debtService)

				return m, m.debtsView.Init()
			case "5":
				m.currentView = ViewZakat
				m.zakatView = view.NewZakatModel(m.assetService, m.zakatService)

				return m, m.zakatView.Init()
			case "6":
				m.currentView = ViewRates
				m.ratesView = view.NewRatesModel(m.rateService)

				return m, m.ratesView.Init()
			case "7":
				m.currentView = ViewSettings
				m.settingsView = view.NewSettingsModel(m.prefs, m.backupService)

				return m, m.settingsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewBanks:
		var newModel tea.Model
		newModel, cmd = m.banksView.Update(msg)
		m.banksView = newModel.(view.BanksModel)
	case ViewGold:
		var newModel tea.Model
		newModel, cmd = m.goldView.Update(msg)
		m.goldView = newModel.(view.GoldModel)
	case ViewDebts:
		var newModel tea.Model
		newModel, cmd = m.debtsView.Update(msg)
		m.debtsView = newModel.(view.DebtsModel)
	case ViewZakat:
		var newModel tea.Model
		newModel, cmd = m.zakatView.Update(msg)
		m.zakatView = newModel.(view.ZakatModel)
	case ViewRates:
		var newModel tea.Model
		newModel, cmd = m.ratesView.Update(msg)
		m.ratesView = newModel.(view.RatesModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			lipgloss.NewStyle().Bold(true).Foreground(view.Accent).Render("Wallet") + "\n\n" +
				"1. Dashboard\n" +
				"2. Banks\n" +
				"3. Gold\n" +
				"4. Debts\n" +
				"5. Zakat\n" +
				"6. Rates\n" +
				"7. Settings\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewBanks:
		return m.banksView.View()
	case ViewGold:
		return m.goldView.View()
	case ViewDebts:
		return m.debtsView.View()
	case ViewZakat:
		return m.zakatView.View()
	case ViewRates:
		return m.ratesView.View()
	case ViewSettings:
		return m.settingsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
