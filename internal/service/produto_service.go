package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"
	"github.com/oliveirafjdo-web/MetriFy/internal/dto"
	"github.com/oliveirafjdo-web/MetriFy/internal/model"
	"github.com/oliveirafjdo-web/MetriFy/internal/repository"

	"gorm.io/gorm"
)

// ProdutoService is the manual catalog CRUD surface. Stock edits made here go
// through the adjustment path — an edited estoque writes an ajuste ledger row
// so the movement log stays consistent with the stored quantity.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) (*dto.ProdutoListResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, id uint) error
}

type produtoService struct {
	repo          repository.ProdutoRepository
	movimentoRepo repository.MovimentoRepository
}

func NewProdutoService(repo repository.ProdutoRepository, movimentoRepo repository.MovimentoRepository) ProdutoService {
	return &produtoService{repo: repo, movimentoRepo: movimentoRepo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if req.SKU == "" {
		return nil, apierror.Validation("SKU é obrigatório")
	}
	if req.CustoUnitario.IsNegative() {
		return nil, apierror.Validation("Custo unitário não pode ser negativo")
	}

	if _, err := s.repo.FindBySKU(ctx, req.SKU); err == nil {
		return nil, apierror.Conflict("SKU já existe, ajuste o produto existente")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Storage(err)
	}

	p := &model.Produto{
		SKU:           req.SKU,
		Titulo:        req.Titulo,
		Estoque:       req.Estoque,
		CustoUnitario: req.CustoUnitario,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Storage(err)
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context) (*dto.ProdutoListResponse, error) {
	produtos, total, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	data := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		data = append(data, *produtoToResponse(&produtos[i]))
	}
	return &dto.ProdutoListResponse{Data: data, Total: total}, nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Produto não encontrado")
	}
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	if req.CustoUnitario.IsNegative() {
		return nil, apierror.Validation("Custo unitário não pode ser negativo")
	}

	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Produto não encontrado")
	}
	if err != nil {
		return nil, apierror.Storage(err)
	}

	if req.SKU != p.SKU {
		if outro, err := s.repo.FindBySKU(ctx, req.SKU); err == nil && outro.ID != id {
			return nil, apierror.Conflict("Já existe outro produto com esse SKU")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Storage(err)
		}
	}

	diff := req.Estoque - p.Estoque

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p.SKU = req.SKU
		p.Titulo = req.Titulo
		p.CustoUnitario = req.CustoUnitario
		p.Estoque = req.Estoque
		if tx == nil {
			return s.repo.Update(ctx, p)
		}
		if err := tx.Save(p).Error; err != nil {
			return err
		}

		if math.Abs(diff) >= AjusteTolerancia {
			// manual stock edit is an adjustment, keeping the ledger honest
			mov := &model.MovimentoEstoque{
				SKU:        p.SKU,
				Data:       time.Now(),
				Tipo:       model.MovAjuste,
				Quantidade: diff,
				Obs:        "Edição manual do produto",
			}
			return s.movimentoRepo.CreateTx(tx, mov)
		}
		return nil
	})
	if txErr != nil {
		return nil, apierror.Storage(txErr)
	}
	return produtoToResponse(p), nil
}

// Excluir is an unconditional hard delete. Movement and sale history is kept
// as orphaned references; reads elsewhere tolerate missing products.
func (s *produtoService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound("Produto não encontrado")
	} else if err != nil {
		return apierror.Storage(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Storage(err)
	}
	return nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Titulo:        p.Titulo,
		Estoque:       p.Estoque,
		CustoUnitario: p.CustoUnitario,
	}
}
