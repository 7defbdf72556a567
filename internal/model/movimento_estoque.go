package model

import "time"

// Movement kinds. For entrada and saida Quantidade stores the positive
// magnitude and the tipo carries the sign; for ajuste Quantidade stores the
// signed difference applied (new − previous), not the absolute target.
const (
	MovEntrada = "entrada"
	MovSaida   = "saida"
	MovAjuste  = "ajuste"
)

// MovimentoEstoque is one append-only ledger entry changing a product's
// stock. Rows are never updated or deleted, even when the referenced product
// is removed.
type MovimentoEstoque struct {
	ID         uint      `gorm:"primaryKey"`
	SKU        string    `gorm:"column:sku;index;not null"`
	Data       time.Time `gorm:"column:data;not null"`
	Tipo       string    `gorm:"not null"` // entrada | saida | ajuste
	Quantidade float64   `gorm:"not null"`
	Obs        string
	CreatedAt  time.Time
}

func (MovimentoEstoque) TableName() string { return "estoque_mov" }

// Delta returns the signed stock effect of the movement: +q for entrada,
// −q for saida, and the stored (already signed) quantity for ajuste.
func (m *MovimentoEstoque) Delta() float64 {
	if m.Tipo == MovSaida {
		return -m.Quantidade
	}
	return m.Quantidade
}
