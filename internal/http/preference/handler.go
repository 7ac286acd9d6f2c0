package preference

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wallet/internal/backup"
	"github.com/MrJamesThe3rd/wallet/internal/preference"
)

type Handler struct {
	store   *preference.Store
	backups *backup.Service
}

func NewHandler(store *preference.Store, backups *backup.Service) *Handler {
	return &Handler{store: store, backups: backups}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.save)
}

type preferencesDTO struct {
	Theme      preference.Theme `json:"theme"`
	AutoBackup bool             `json:"auto_backup"`
}

func (h *Handler) get(w http.ResponseWriter, _ *http.Request) {
	p, err := h.store.Load()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(preferencesDTO{Theme: p.Theme, AutoBackup: p.AutoBackup}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req preferencesDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Theme == "" {
		req.Theme = preference.ThemeDark
	}

	_, err := h.store.Update(func(p *preference.Preferences) {
		p.Theme = req.Theme
		p.AutoBackup = req.AutoBackup
	})
	if err != nil {
		if errors.Is(err, preference.ErrInvalidTheme) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	// Switching automatic backups on takes one straight away if it is due.
	if req.AutoBackup {
		if _, err := h.backups.RunAuto(r.Context()); err != nil {
			slog.Warn("automatic backup failed", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(req); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
