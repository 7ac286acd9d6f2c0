package main

import (
	"context"
	"database/sql"
	"fmt"

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

type app struct {
	db      *sql.DB
	totals  *totals.Service
	backups *backup.Service
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating: %w", err)
	}

	defaults := rate.NewSet(cfg.Rates.USDToYER, cfg.Rates.SARToYER, cfg.Rates.GoldPerGramYER)

	var (
		assetSvc = asset.NewService(assetStore.New(db))
		debtSvc  = debt.NewService(debtStore.New(db))
		rateSvc  = rate.NewService(rateStore.New(db), defaults)
		zakatSvc = zakat.NewService(zakatStore.New(db))
		prefs    = preference.NewStore(cfg.Preferences.Path)
	)

	return &app{
		db: db,
		totals: totals.NewService(assetSvc, debtSvc, zakatSvc, rateSvc,
			session.New[string, totals.Slots](cfg.Session.TTL)),
		backups: backup.NewService(backupStore.New(db), prefs, cfg.Backup.Interval),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
