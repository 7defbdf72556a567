package dto

import "github.com/shopspring/decimal"

// LinhaVenda is one decoded import row, produced by the spreadsheet codec
// after schema checking. CamposComFallback counts the numeric cells of this
// row that were unparseable and defaulted to zero (lenient-input policy).
type LinhaVenda struct {
	SKU               string
	Titulo            string
	Quantidade        float64
	Receita           decimal.Decimal
	Comissao          decimal.Decimal
	PrecoMedio        decimal.Decimal
	CamposComFallback int
}

// ResultadoImportacao summarizes one spreadsheet import run. LinhasIgnoradas
// counts rows skipped for empty SKU or non-positive quantity; CamposComFallback
// counts numeric cells that could not be parsed and were defaulted to zero so
// the caller can surface data-quality issues instead of absorbing them.
type ResultadoImportacao struct {
	LinhasImportadas  int `json:"linhas_importadas"`
	LinhasIgnoradas   int `json:"linhas_ignoradas"`
	ProdutosCriados   int `json:"produtos_criados"`
	CamposComFallback int `json:"campos_com_fallback"`
}
