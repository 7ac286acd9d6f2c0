package zakat

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/zakat"
)

type Handler struct {
	assets *asset.Service
	bases  *zakat.Service
	now    func() time.Time
}

func NewHandler(assets *asset.Service, bases *zakat.Service) *Handler {
	return &Handler{assets: assets, bases: bases, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/payments", h.listPayments)
	r.Post("/payments", h.recordPayment)
	r.Delete("/payments/{id}", h.deletePayment)
	r.Get("/bases", h.listBases)
	r.Put("/bases/{year}", h.setBase)
	r.Delete("/bases/{year}", h.clearBase)
}

type paymentResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Year  int             `json:"zakat_year"`
}

func toPaymentResponse(a *asset.Asset) paymentResponse {
	return paymentResponse{
		ID:    a.ID,
		Name:  a.Name,
		Value: a.Value,
		Year:  a.ZakatYear(),
	}
}

// year reads the year query parameter, defaulting to the current year.
func (h *Handler) year(r *http.Request) (int, error) {
	s := r.URL.Query().Get("year")
	if s == "" {
		return h.now().Year(), nil
	}

	return strconv.Atoi(s)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	year, err := h.year(r)
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	payments, err := h.assets.ZakatPayments(r.Context(), year)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toPaymentResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type recordPaymentRequest struct {
	Year  int             `json:"zakat_year"`
	Value decimal.Decimal `json:"value"`
	Name  string          `json:"name,omitempty"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Year == 0 {
		req.Year = h.now().Year()
	}

	payment, err := h.assets.RecordZakatPayment(r.Context(), asset.ZakatPaymentParams{
		Year:  req.Year,
		Value: req.Value,
		Name:  req.Name,
	})
	if err != nil {
		if errors.Is(err, asset.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toPaymentResponse(payment)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.assets.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "payment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if _, ok := a.Kind.(asset.ZakatPayment); !ok {
		http.Error(w, "payment not found", http.StatusNotFound)
		return
	}

	if err := h.assets.Delete(r.Context(), id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type baseResponse struct {
	Year     int             `json:"year"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
	Due      decimal.Decimal `json:"due"`
}

func toBaseResponse(b *zakat.Base) baseResponse {
	return baseResponse{
		Year:     b.Year,
		Value:    b.Value,
		Currency: string(b.Currency),
		Due:      zakat.Due(b.Value),
	}
}

func (h *Handler) listBases(w http.ResponseWriter, r *http.Request) {
	bases, err := h.bases.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]baseResponse, len(bases))
	for i, b := range bases {
		resp[i] = toBaseResponse(b)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setBaseRequest struct {
	Value decimal.Decimal `json:"value"`
}

func (h *Handler) setBase(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	var req setBaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	base, err := h.bases.SetBase(r.Context(), year, req.Value)
	if err != nil {
		if errors.Is(err, zakat.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBaseResponse(base)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) clearBase(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	if err := h.bases.ClearBase(r.Context(), year); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
