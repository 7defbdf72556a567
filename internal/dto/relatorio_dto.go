package dto

import "github.com/shopspring/decimal"

// LinhaRelatorio is one consolidated profitability row (one per SKU/titulo
// group). All money fields are decimal; Quantidade follows the float stock
// representation.
type LinhaRelatorio struct {
	SKU           string          `json:"sku"`
	Titulo        string          `json:"titulo"`
	Quantidade    float64         `json:"quantidade"`
	Receita       decimal.Decimal `json:"receita"`
	Comissao      decimal.Decimal `json:"comissao"`
	Imposto       decimal.Decimal `json:"imposto"`
	Despesa       decimal.Decimal `json:"despesa"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	CustoTotal    decimal.Decimal `json:"custo_total"`
	Lucro         decimal.Decimal `json:"lucro"`
	PrecoMedio    decimal.Decimal `json:"preco_medio"`
}

// TotaisRelatorio is the elementwise sum of every report line. It must equal
// the same figures computed from the raw unaggregated vendas rows.
type TotaisRelatorio struct {
	Quantidade float64         `json:"quantidade"`
	Receita    decimal.Decimal `json:"receita"`
	Comissao   decimal.Decimal `json:"comissao"`
	Imposto    decimal.Decimal `json:"imposto"`
	Despesa    decimal.Decimal `json:"despesa"`
	CustoTotal decimal.Decimal `json:"custo_total"`
	Lucro      decimal.Decimal `json:"lucro"`
}

type RelatorioResponse struct {
	Linhas     []LinhaRelatorio `json:"linhas"`
	Totais     TotaisRelatorio  `json:"totais"`
	ImpostoPct decimal.Decimal  `json:"imposto_pct"`
	DespesaPct decimal.Decimal  `json:"despesa_pct"`
}
