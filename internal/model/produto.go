package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto is the catalog record; SKU is the business key. Estoque is float64
// because fractional stock (kg, meters) is allowed, and it must always equal
// the stock at creation plus the signed sum of the product's movement log.
type Produto struct {
	ID            uint            `gorm:"primaryKey"`
	SKU           string          `gorm:"column:sku;uniqueIndex;not null"`
	Titulo        string          `gorm:"index"`
	Estoque       float64         `gorm:"not null;default:0"`
	CustoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Produto) TableName() string { return "produtos" }
