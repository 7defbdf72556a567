package dto

import "github.com/shopspring/decimal"

// Percentages are human percentage points: 5.0 means 5%.

type AtualizarConfiguracoesRequest struct {
	ImpostoPct decimal.Decimal `json:"imposto_pct" validate:"min=0,max=100"`
	DespesaPct decimal.Decimal `json:"despesa_pct" validate:"min=0,max=100"`
}

type ConfiguracoesResponse struct {
	ImpostoPct decimal.Decimal `json:"imposto_pct"`
	DespesaPct decimal.Decimal `json:"despesa_pct"`
}
