package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	SKU           string          `json:"sku"            validate:"required,min=1,max=64"`
	Titulo        string          `json:"titulo"         validate:"max=200"`
	Estoque       float64         `json:"estoque"`
	CustoUnitario decimal.Decimal `json:"custo_unitario" validate:"min=0"`
}

// AtualizarProdutoRequest is a full-record update; estoque changes made here
// go through the adjustment path so the movement log stays consistent.
type AtualizarProdutoRequest struct {
	SKU           string          `json:"sku"            validate:"required,min=1,max=64"`
	Titulo        string          `json:"titulo"         validate:"max=200"`
	Estoque       float64         `json:"estoque"`
	CustoUnitario decimal.Decimal `json:"custo_unitario" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID            uint            `json:"id"`
	SKU           string          `json:"sku"`
	Titulo        string          `json:"titulo"`
	Estoque       float64         `json:"estoque"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
}

type ProdutoListResponse struct {
	Data  []ProdutoResponse `json:"data"`
	Total int64             `json:"total"`
}
