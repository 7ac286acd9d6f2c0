package asset

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

type Handler struct {
	svc   *asset.Service
	rates *rate.Service
}

func NewHandler(svc *asset.Service, rates *rate.Service) *Handler {
	return &Handler{svc: svc, rates: rates}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/banks", h.listBanks)
	r.Post("/banks", h.saveBank)
	r.Delete("/banks/{name}", h.deleteBank)
	r.Get("/gold", h.getGold)
	r.Put("/gold", h.saveGold)
}

func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, gold, err := h.svc.Banks(r.Context(), h.rates.Load(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBanksResponse(banks, gold)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type balanceRequest struct {
	ID       int64           `json:"id,omitempty"`
	Currency money.Currency  `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}

type saveBankRequest struct {
	Name        string           `json:"name"`
	PreviousIDs []int64          `json:"previous_ids,omitempty"`
	Balances    []balanceRequest `json:"balances"`
}

func (h *Handler) saveBank(w http.ResponseWriter, r *http.Request) {
	var req saveBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := asset.SaveBankParams{
		Name:        req.Name,
		PreviousIDs: req.PreviousIDs,
		Balances:    make([]asset.Balance, len(req.Balances)),
	}

	for i, b := range req.Balances {
		params.Balances[i] = asset.Balance{ID: b.ID, Currency: b.Currency, Value: b.Value}
	}

	saved, err := h.svc.SaveBank(r.Context(), params)
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

	if err := json.NewEncoder(w).Encode(toAssetResponseList(saved)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteBank(r.Context(), chi.URLParam(r, "name")); err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "bank not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getGold(w http.ResponseWriter, r *http.Request) {
	rates := h.rates.Load(r.Context())

	gold, err := h.svc.Gold(r.Context())
	if err != nil && !errors.Is(err, asset.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toGoldResponse(gold, rates)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveGoldRequest struct {
	Grams24 decimal.Decimal `json:"grams_24k"`
	Grams21 decimal.Decimal `json:"grams_21k"`
}

func (h *Handler) saveGold(w http.ResponseWriter, r *http.Request) {
	var req saveGoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	gold, err := h.svc.SaveGold(r.Context(), req.Grams24, req.Grams21)
	if err != nil {
		if errors.Is(err, asset.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toGoldResponse(gold, h.rates.Load(r.Context()))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
