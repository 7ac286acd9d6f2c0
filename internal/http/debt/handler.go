package debt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/debt"
	"github.com/MrJamesThe3rd/wallet/internal/money"
)

type Handler struct {
	svc *debt.Service
}

func NewHandler(svc *debt.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/settle", h.settle)
}

type debtResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Currency  money.Currency  `json:"currency"`
	Type      debt.Type       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Note      string          `json:"note,omitempty"`
}

func toResponse(d *debt.Debt) debtResponse {
	return debtResponse{
		ID:        d.ID,
		Name:      d.Name,
		Value:     d.Value,
		Currency:  d.Currency,
		Type:      d.Type,
		Timestamp: d.Timestamp,
		Note:      d.Note,
	}
}

type debtRequest struct {
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Currency money.Currency  `json:"currency"`
	Type     debt.Type       `json:"type"`
	Note     string          `json:"note,omitempty"`
}

func (req debtRequest) params() debt.Params {
	return debt.Params{
		Name:     req.Name,
		Value:    req.Value,
		Currency: req.Currency,
		Type:     req.Type,
		Note:     req.Note,
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeError maps service errors onto status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, debt.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, debt.ErrNotFound):
		http.Error(w, "debt not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req debtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	debts, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]debtResponse, len(debts))
	for i, d := range debts {
		resp[i] = toResponse(d)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req debtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Settle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
