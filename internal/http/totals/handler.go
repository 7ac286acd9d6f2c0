package totals

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/http/sessionid"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/totals"
)

type Handler struct {
	svc *totals.Service
}

func NewHandler(svc *totals.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.display)
	r.Post("/refresh", h.refresh)
}

type trendsResponse struct {
	YER totals.Trend `json:"yer"`
	SAR totals.Trend `json:"sar"`
	USD totals.Trend `json:"usd"`
}

type zakatResponse struct {
	Due         decimal.Decimal `json:"due"`
	Paid        decimal.Decimal `json:"paid"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentPaid int64           `json:"percent_paid"`
}

type totalsResponse struct {
	TotalYER   decimal.Decimal   `json:"total_yer"`
	TotalSAR   decimal.Decimal   `json:"total_sar"`
	TotalUSD   decimal.Decimal   `json:"total_usd"`
	OrigYER    decimal.Decimal   `json:"orig_yer"`
	OrigSAR    decimal.Decimal   `json:"orig_sar"`
	OrigUSD    decimal.Decimal   `json:"orig_usd"`
	GoldYER    decimal.Decimal   `json:"gold_yer"`
	GoldGrams  decimal.Decimal   `json:"gold_grams"`
	DebtsMine  decimal.Decimal   `json:"debts_owed_to_me"`
	DebtsOwed  decimal.Decimal   `json:"debts_owed_by_me"`
	Zakat      zakatResponse     `json:"zakat"`
	Trends     trendsResponse    `json:"trends"`
	Display    map[string]string `json:"display"`
	Cached     bool              `json:"cached"`
	LastUpdate *time.Time        `json:"last_update,omitempty"`
}

func toResponse(v *totals.View) totalsResponse {
	s := v.Snapshot

	return totalsResponse{
		TotalYER:  s.TotalYER,
		TotalSAR:  s.TotalSAR,
		TotalUSD:  s.TotalUSD,
		OrigYER:   s.OrigYER,
		OrigSAR:   s.OrigSAR,
		OrigUSD:   s.OrigUSD,
		GoldYER:   s.GoldYER,
		GoldGrams: s.GoldGrams,
		DebtsMine: s.DebtsMine,
		DebtsOwed: s.DebtsOwed,
		Zakat: zakatResponse{
			Due:         s.ZakatDue,
			Paid:        s.ZakatPaid,
			Remaining:   v.Remaining,
			PercentPaid: v.PercentPaid,
		},
		Trends: trendsResponse{
			YER: v.Trends.YER,
			SAR: v.Trends.SAR,
			USD: v.Trends.USD,
		},
		Display: map[string]string{
			"total_yer":       money.Format(s.TotalYER, money.YER) + v.Trends.YER.Arrow(),
			"total_sar":       money.Format(s.TotalSAR, money.SAR) + v.Trends.SAR.Arrow(),
			"total_usd":       money.Format(s.TotalUSD, money.USD) + v.Trends.USD.Arrow(),
			"gold_grams":      money.Format(s.GoldGrams, money.GRAM),
			"zakat_due":       money.Format(s.ZakatDue, money.YER),
			"zakat_paid":      money.Format(s.ZakatPaid, money.YER),
			"zakat_remaining": money.Format(v.Remaining, money.YER),
		},
		Cached:     v.Cached,
		LastUpdate: v.LastUpdate,
	}
}

// display serves the totals panel. Each request is a fresh page load for
// the session: cache=false forces a recompute, anything else allows the
// session's cached snapshot.
func (h *Handler) display(w http.ResponseWriter, r *http.Request) {
	useCache := true

	if s := r.URL.Query().Get("cache"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "invalid cache flag", http.StatusBadRequest)
			return
		}

		useCache = v
	}

	view, err := h.svc.Open(sessionid.FromContext(r.Context())).Display(r.Context(), useCache)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view.LastUpdate = h.svc.LastUpdate(r.Context())

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(view)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Open(sessionid.FromContext(r.Context())).Refresh(r.Context())
	if err != nil {
		slog.Error("failed to refresh totals", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(view)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
