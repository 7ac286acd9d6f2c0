package asset

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

type assetResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Currency  money.Currency  `json:"currency"`
	Type      asset.Type      `json:"type"`
	ZakatYear int             `json:"zakat_year,omitempty"`
}

func toAssetResponse(a *asset.Asset) assetResponse {
	return assetResponse{
		ID:        a.ID,
		Name:      a.Name,
		Value:     a.Value,
		Currency:  a.Currency(),
		Type:      a.Kind.Type(),
		ZakatYear: a.ZakatYear(),
	}
}

func toAssetResponseList(assets []*asset.Asset) []assetResponse {
	resp := make([]assetResponse, len(assets))
	for i, a := range assets {
		resp[i] = toAssetResponse(a)
	}

	return resp
}

type bankResponse struct {
	Name     string          `json:"name"`
	Balances []assetResponse `json:"balances"`
	TotalYER decimal.Decimal `json:"total_yer"`
}

type goldResponse struct {
	ID       int64           `json:"id,omitempty"`
	Grams    decimal.Decimal `json:"grams"`
	Price24K decimal.Decimal `json:"price_24k"`
	Price21K decimal.Decimal `json:"price_21k"`
	TotalYER decimal.Decimal `json:"total_yer"`
	TotalSAR decimal.Decimal `json:"total_sar"`
	TotalUSD decimal.Decimal `json:"total_usd"`
}

type banksResponse struct {
	Banks []bankResponse `json:"banks"`
	Gold  *goldResponse  `json:"gold,omitempty"`
}

func toBanksResponse(banks []*asset.BankSummary, gold *asset.GoldSummary) banksResponse {
	resp := banksResponse{Banks: make([]bankResponse, len(banks))}

	for i, b := range banks {
		resp.Banks[i] = bankResponse{
			Name:     b.Name,
			Balances: toAssetResponseList(b.Balances),
			TotalYER: b.TotalYER,
		}
	}

	if gold != nil {
		resp.Gold = &goldResponse{
			ID:       gold.Asset.ID,
			Grams:    gold.Asset.Value,
			TotalYER: gold.TotalYER,
			TotalSAR: gold.TotalSAR,
			TotalUSD: gold.TotalUSD,
		}
	}

	return resp
}

// toGoldResponse values gold at rates. A nil asset reports zero grams.
func toGoldResponse(gold *asset.Asset, rates rate.Set) goldResponse {
	resp := goldResponse{
		Price24K: rates.GoldPerGramYER,
		Price21K: asset.GoldPrice21(rates),
	}

	if gold == nil {
		return resp
	}

	yer := rates.ConvertGold(gold.Value)

	resp.ID = gold.ID
	resp.Grams = gold.Value
	resp.TotalYER = yer
	resp.TotalSAR = rates.FromYER(yer, money.SAR)
	resp.TotalUSD = rates.FromYER(yer, money.USD)

	return resp
}
