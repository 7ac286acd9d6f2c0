package backup

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wallet/internal/backup"
)

type Handler struct {
	svc *backup.Service
	now func() time.Time
}

func NewHandler(svc *backup.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
	r.Post("/", h.restore)
	r.Delete("/data", h.wipe)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Export(r.Context())
	if err != nil {
		slog.Error("failed to export backup", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+backup.Filename(h.now())+`"`)

	if err := backup.Encode(w, doc); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type restoreResponse struct {
	Assets    int `json:"assets"`
	Debts     int `json:"debts"`
	Rates     int `json:"rates"`
	ZakatBase int `json:"zakat_base"`
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	doc, err := h.svc.Import(r.Context(), file)
	if err != nil {
		if errors.Is(err, backup.ErrInvalidDocument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to import backup", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := restoreResponse{
		Assets:    len(doc.Assets),
		Debts:     len(doc.Debts),
		Rates:     len(doc.Rates),
		ZakatBase: len(doc.ZakatBase),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) wipe(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Wipe(r.Context()); err != nil {
		slog.Error("failed to wipe data", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
