package repository

import (
	"context"

	"github.com/oliveirafjdo-web/MetriFy/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendaRepository gives access to the append-only sales table. There is no
// update or delete: rows are only ever inserted (inside import transactions)
// and read back in full by the consolidator.
type VendaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venda) error
	ListAll(ctx context.Context) ([]model.Venda, error)
	Totais(ctx context.Context) (receita, comissao decimal.Decimal, err error)
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return tx.Create(v).Error
}

func (r *vendaRepo) ListAll(ctx context.Context) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).Order("id ASC").Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) Totais(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var out struct {
		Receita  decimal.Decimal
		Comissao decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("COALESCE(SUM(receita), 0) AS receita, COALESCE(SUM(comissao), 0) AS comissao").
		Scan(&out).Error
	return out.Receita, out.Comissao, err
}
