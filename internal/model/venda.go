package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda is one consolidated sale line as imported from the marketplace
// spreadsheet. Rows are append-only: never updated or deleted by normal flow,
// and several rows may share a SKU (one per import batch/line). The SKU is a
// loose reference — the product may have been created by the same import, or
// may have been deleted afterwards.
type Venda struct {
	ID         uint            `gorm:"primaryKey"`
	SKU        string          `gorm:"column:sku;index;not null"`
	Titulo     string          // title snapshot at import time
	Quantidade float64         `gorm:"not null"`
	Receita    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Comissao   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PrecoMedio decimal.Decimal `gorm:"column:preco_medio;type:decimal(14,2);not null"`
	CreatedAt  time.Time
}

func (Venda) TableName() string { return "vendas" }
