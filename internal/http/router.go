package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/wallet/internal/http/asset"
	"github.com/MrJamesThe3rd/wallet/internal/http/auth"
	"github.com/MrJamesThe3rd/wallet/internal/http/backup"
	"github.com/MrJamesThe3rd/wallet/internal/http/debt"
	"github.com/MrJamesThe3rd/wallet/internal/http/preference"
	"github.com/MrJamesThe3rd/wallet/internal/http/rate"
	"github.com/MrJamesThe3rd/wallet/internal/http/sessionid"
	"github.com/MrJamesThe3rd/wallet/internal/http/totals"
	"github.com/MrJamesThe3rd/wallet/internal/http/zakat"
)

type Options struct {
	AuthSecret     []byte
	AllowedOrigins []string
}

type Handlers struct {
	Assets      *asset.Handler
	Zakat       *zakat.Handler
	Debts       *debt.Handler
	Rates       *rate.Handler
	Totals      *totals.Handler
	Backup      *backup.Handler
	Preferences *preference.Handler
}

func New(opts Options, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.AuthSecret))
		r.Use(sessionid.Middleware)

		r.Route("/assets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Assets.Routes(r)
		})

		r.Route("/zakat", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Zakat.Routes(r)
		})

		r.Route("/debts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Debts.Routes(r)
		})

		r.Route("/rates", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Rates.Routes(r)
		})

		r.Route("/totals", h.Totals.Routes)
		r.Route("/backup", h.Backup.Routes)

		r.Route("/preferences", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Preferences.Routes(r)
		})
	})

	return router
}
