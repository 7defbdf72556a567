package repository

import (
	"context"

	"github.com/oliveirafjdo-web/MetriFy/internal/model"

	"gorm.io/gorm"
)

// MovimentoRepository persists the append-only stock ledger. Writes always
// happen inside the same transaction that touches produtos.estoque, so only
// a Tx insert is exposed.
type MovimentoRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error
	ListRecentes(ctx context.Context, limit int) ([]model.MovimentoEstoque, error)
	ListBySKU(ctx context.Context, sku string) ([]model.MovimentoEstoque, error)
}

type movimentoRepo struct{ db *gorm.DB }

func NewMovimentoRepository(db *gorm.DB) MovimentoRepository { return &movimentoRepo{db: db} }

func (r *movimentoRepo) CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentoRepo) ListRecentes(ctx context.Context, limit int) ([]model.MovimentoEstoque, error) {
	var movs []model.MovimentoEstoque
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&movs).Error
	return movs, err
}

func (r *movimentoRepo) ListBySKU(ctx context.Context, sku string) ([]model.MovimentoEstoque, error) {
	var movs []model.MovimentoEstoque
	err := r.db.WithContext(ctx).Where("sku = ?", sku).Order("id ASC").Find(&movs).Error
	return movs, err
}
