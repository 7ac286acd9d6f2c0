package rate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

type Handler struct {
	svc *rate.Service
}

func NewHandler(svc *rate.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.save)
}

type ratesResponse struct {
	USDToYER       decimal.Decimal `json:"usd_to_yer"`
	SARToYER       decimal.Decimal `json:"sar_to_yer"`
	GoldPerGramYER decimal.Decimal `json:"gold_per_gram_yer"`
	Gold21PerGram  decimal.Decimal `json:"gold21_per_gram_yer"`
	LastUpdate     *time.Time      `json:"last_update,omitempty"`
}

func toResponse(s rate.Set) ratesResponse {
	return ratesResponse{
		USDToYER:       s.USDToYER,
		SARToYER:       s.SARToYER,
		GoldPerGramYER: s.GoldPerGramYER,
		Gold21PerGram:  asset.GoldPrice21(s),
		LastUpdate:     s.LastUpdate,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(h.svc.Load(r.Context()))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveRatesRequest struct {
	USDToYER       decimal.Decimal `json:"usd_to_yer"`
	SARToYER       decimal.Decimal `json:"sar_to_yer"`
	GoldPerGramYER decimal.Decimal `json:"gold_per_gram_yer"`
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req saveRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	set, err := h.svc.Save(r.Context(), req.USDToYER, req.SARToYER, req.GoldPerGramYER)
	if err != nil {
		if errors.Is(err, rate.ErrInvalidRate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(set)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
