package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the landing-page summary: catalog size, net stock on
// hand, and gross revenue/commission across all imported sales.
type DashboardResponse struct {
	TotalProdutos int64           `json:"total_produtos"`
	EstoqueTotal  float64         `json:"estoque_total"`
	ReceitaTotal  decimal.Decimal `json:"receita_total"`
	ComissaoTotal decimal.Decimal `json:"comissao_total"`
}
