package repository

import (
	"context"

	"github.com/oliveirafjdo-web/MetriFy/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uint) (*model.Produto, error)
	FindBySKU(ctx context.Context, sku string) (*model.Produto, error)
	List(ctx context.Context) ([]model.Produto, int64, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uint) error

	// Dashboard aggregates
	CountAndStock(ctx context.Context) (int64, float64, error)

	// CustosPorSKU returns the unit-cost map consumed by the consolidator.
	CustosPorSKU(ctx context.Context) (map[string]decimal.Decimal, error)

	// Used inside transactions — callers must pass the tx instance
	FindBySKUTx(tx *gorm.DB, sku string) (*model.Produto, error)
	CreateTx(tx *gorm.DB, p *model.Produto) error
	UpdateTituloTx(tx *gorm.DB, sku, titulo string) error
	SetEstoqueTx(tx *gorm.DB, sku string, novo float64) error
	AjustarEstoqueTx(tx *gorm.DB, sku string, delta float64) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) FindBySKU(ctx context.Context, sku string) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("titulo ASC").Find(&produtos).Error
	return produtos, total, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete is a hard delete. Movement and sale history rows keep referencing
// the SKU as orphans — reads stay orphan-tolerant.
func (r *produtoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, id).Error
}

func (r *produtoRepo) CountAndStock(ctx context.Context) (int64, float64, error) {
	var out struct {
		Total   int64
		Estoque float64
	}
	err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Select("COUNT(*) AS total, COALESCE(SUM(estoque), 0) AS estoque").
		Scan(&out).Error
	return out.Total, out.Estoque, err
}

func (r *produtoRepo) CustosPorSKU(ctx context.Context) (map[string]decimal.Decimal, error) {
	var rows []struct {
		SKU           string
		CustoUnitario decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Select("sku", "custo_unitario").Scan(&rows).Error; err != nil {
		return nil, err
	}
	custos := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		custos[row.SKU] = row.CustoUnitario
	}
	return custos, nil
}

func (r *produtoRepo) FindBySKUTx(tx *gorm.DB, sku string) (*model.Produto, error) {
	var p model.Produto
	err := tx.Where("sku = ?", sku).First(&p).Error
	return &p, err
}

func (r *produtoRepo) CreateTx(tx *gorm.DB, p *model.Produto) error {
	return tx.Create(p).Error
}

func (r *produtoRepo) UpdateTituloTx(tx *gorm.DB, sku, titulo string) error {
	return tx.Model(&model.Produto{}).Where("sku = ?", sku).
		Update("titulo", titulo).Error
}

func (r *produtoRepo) SetEstoqueTx(tx *gorm.DB, sku string, novo float64) error {
	return tx.Model(&model.Produto{}).Where("sku = ?", sku).
		Update("estoque", novo).Error
}

func (r *produtoRepo) AjustarEstoqueTx(tx *gorm.DB, sku string, delta float64) error {
	return tx.Model(&model.Produto{}).Where("sku = ?", sku).
		Update("estoque", gorm.Expr("estoque + ?", delta)).Error
}

func (r *produtoRepo) DB() *gorm.DB { return r.db }
