package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	assetStore "github.com/MrJamesThe3rd/wallet/internal/asset/store"
	"github.com/MrJamesThe3rd/wallet/internal/backup"
	backupStore "github.com/MrJamesThe3rd/wallet/internal/backup/store"
	"github.com/MrJamesThe3rd/wallet/internal/config"
	"github.com/MrJamesThe3rd/wallet/internal/database"
	"github.com/MrJamesThe3rd/wallet/internal/debt"
	debtStore "github.com/MrJamesThe3rd/wallet/internal/debt/store"
	walletHttp "github.com/MrJamesThe3rd/wallet/internal/http"
	assetHandler "github.com/MrJamesThe3rd/wallet/internal/http/asset"
	backupHandler "github.com/MrJamesThe3rd/wallet/internal/http/backup"
	debtHandler "github.com/MrJamesThe3rd/wallet/internal/http/debt"
	preferenceHandler "github.com/MrJamesThe3rd/wallet/internal/http/preference"
	rateHandler "github.com/MrJamesThe3rd/wallet/internal/http/rate"
	totalsHandler "github.com/MrJamesThe3rd/wallet/internal/http/totals"
	zakatHandler "github.com/MrJamesThe3rd/wallet/internal/http/zakat"
	"github.com/MrJamesThe3rd/wallet/internal/preference"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
	rateStore "github.com/MrJamesThe3rd/wallet/internal/rate/store"
	"github.com/MrJamesThe3rd/wallet/internal/session"
	"github.com/MrJamesThe3rd/wallet/internal/totals"
	"github.com/MrJamesThe3rd/wallet/internal/zakat"
	zakatStore "github.com/MrJamesThe3rd/wallet/internal/zakat/store"
)

const maintenanceInterval = 10 * time.Minute

func main() {
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
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	defaults := rate.NewSet(cfg.Rates.USDToYER, cfg.Rates.SARToYER, cfg.Rates.GoldPerGramYER)
	prefs := preference.NewStore(cfg.Preferences.Path)
	slots := session.New[string, totals.Slots](cfg.Session.TTL)

	var (
		assetService  = asset.NewService(assetStore.New(db))
		debtService   = debt.NewService(debtStore.New(db))
		rateService   = rate.NewService(rateStore.New(db), defaults)
		zakatService  = zakat.NewService(zakatStore.New(db))
		backupService = backup.NewService(backupStore.New(db), prefs, cfg.Backup.Interval)
		totalsService = totals.NewService(assetService, debtService, zakatService, rateService, slots)
	)

	handlers := walletHttp.Handlers{
		Assets:      assetHandler.NewHandler(assetService, rateService),
		Zakat:       zakatHandler.NewHandler(assetService, zakatService),
		Debts:       debtHandler.NewHandler(debtService),
		Rates:       rateHandler.NewHandler(rateService),
		Totals:      totalsHandler.NewHandler(totalsService),
		Backup:      backupHandler.NewHandler(backupService),
		Preferences: preferenceHandler.NewHandler(prefs, backupService),
	}

	router := walletHttp.New(walletHttp.Options{
		AuthSecret:     []byte(cfg.Auth.Secret),
		AllowedOrigins: cfg.CORS.Origins,
	}, handlers)

	go runMaintenance(ctx, backupService, slots)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "port", srv.Addr, "auth", cfg.Auth.Secret != "")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// runMaintenance takes automatic backups when due and drops expired totals
// sessions until ctx is done.
func runMaintenance(ctx context.Context, backups *backup.Service, slots *session.Store[string, totals.Slots]) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	for {
		if _, err := backups.RunAuto(ctx); err != nil {
			slog.Warn("automatic backup failed", "error", err)
		}

		slots.DeleteExpired()
		slog.Debug("totals sessions swept", "active", slots.Len())

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
