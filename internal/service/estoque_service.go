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

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AjusteTolerancia is the dead band for absolute adjustments: a target within
// this distance of the current stock is treated as "already there" and writes
// no ledger row.
const AjusteTolerancia = 1e-4

// EstoqueService is the inventory ledger. Every mutation keeps the invariant
// that a product's stock equals its stock at creation plus the signed sum of
// its movement-log entries, and every multi-write operation runs inside a
// single transaction.
type EstoqueService interface {
	// CriarOuObterProduto is an idempotent upsert keyed by SKU. An existing
	// record is left untouched except for a title refresh when a different
	// non-empty titulo is supplied. Returns the record and whether it was
	// created by this call.
	CriarOuObterProduto(ctx context.Context, sku, titulo string, estoqueInicial float64, custo decimal.Decimal) (*model.Produto, bool, error)

	// RegistrarMovimento applies one entrada/saida/ajuste to a product and
	// appends the matching ledger row atomically.
	RegistrarMovimento(ctx context.Context, req dto.RegistrarMovimentoRequest) (*dto.RegistrarMovimentoResponse, error)

	// AplicarLinhaVenda is the composite import operation: upsert product,
	// insert sale row, decrement stock, append saida movement — all or
	// nothing per line. Lines with an empty SKU or non-positive quantity are
	// skipped silently (ignorada=true, no error).
	AplicarLinhaVenda(ctx context.Context, l dto.LinhaVenda, data time.Time) (criouProduto, ignorada bool, err error)

	ListarMovimentos(ctx context.Context, sku string, limit int) ([]dto.MovimentoResponse, error)
}

type estoqueService struct {
	produtoRepo   repository.ProdutoRepository
	vendaRepo     repository.VendaRepository
	movimentoRepo repository.MovimentoRepository
}

func NewEstoqueService(
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
	movimentoRepo repository.MovimentoRepository,
) EstoqueService {
	return &estoqueService{
		produtoRepo:   produtoRepo,
		vendaRepo:     vendaRepo,
		movimentoRepo: movimentoRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *estoqueService) CriarOuObterProduto(ctx context.Context, sku, titulo string, estoqueInicial float64, custo decimal.Decimal) (*model.Produto, bool, error) {
	var produto *model.Produto
	var criado bool

	txErr := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		existente, err := s.produtoRepo.FindBySKUTx(tx, sku)
		if err == nil {
			if titulo != "" && titulo != existente.Titulo {
				if err := s.produtoRepo.UpdateTituloTx(tx, sku, titulo); err != nil {
					return err
				}
				existente.Titulo = titulo
			}
			produto = existente
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		novo := &model.Produto{
			SKU:           sku,
			Titulo:        titulo,
			Estoque:       estoqueInicial,
			CustoUnitario: custo,
		}
		if err := s.produtoRepo.CreateTx(tx, novo); err != nil {
			return err
		}
		produto = novo
		criado = true
		return nil
	})
	if txErr != nil {
		return nil, false, apierror.Storage(txErr)
	}
	return produto, criado, nil
}

func (s *estoqueService) RegistrarMovimento(ctx context.Context, req dto.RegistrarMovimentoRequest) (*dto.RegistrarMovimentoResponse, error) {
	data, err := parseDataMovimento(req.Data)
	if err != nil {
		return nil, err
	}

	var resp dto.RegistrarMovimentoResponse
	txErr := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		produto, err := s.produtoRepo.FindBySKUTx(tx, req.SKU)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("SKU não encontrado")
		}
		if err != nil {
			return apierror.Storage(err)
		}

		switch req.Tipo {
		case model.MovEntrada, model.MovSaida:
			if req.Quantidade <= 0 {
				return apierror.Validation("Quantidade deve ser maior que zero")
			}
			novo := produto.Estoque + req.Quantidade
			if req.Tipo == model.MovSaida {
				// no stock floor: outbound may drive the quantity negative
				novo = produto.Estoque - req.Quantidade
			}
			if err := s.produtoRepo.SetEstoqueTx(tx, req.SKU, novo); err != nil {
				return apierror.Storage(err)
			}
			mov := &model.MovimentoEstoque{
				SKU:        req.SKU,
				Data:       data,
				Tipo:       req.Tipo,
				Quantidade: req.Quantidade,
				Obs:        req.Obs,
			}
			if err := s.movimentoRepo.CreateTx(tx, mov); err != nil {
				return apierror.Storage(err)
			}
			resp = dto.RegistrarMovimentoResponse{SKU: req.SKU, EstoqueNovo: novo}
			return nil

		case model.MovAjuste:
			if req.NovaQtd == nil {
				return apierror.Validation("Informe a nova quantidade para ajuste")
			}
			diff := *req.NovaQtd - produto.Estoque
			if math.Abs(diff) < AjusteTolerancia {
				// target already met — report it, write nothing
				resp = dto.RegistrarMovimentoResponse{
					SKU:         req.SKU,
					EstoqueNovo: produto.Estoque,
					SemEfeito:   true,
					Mensagem:    "Estoque já está na quantidade informada",
				}
				return nil
			}
			if err := s.produtoRepo.SetEstoqueTx(tx, req.SKU, *req.NovaQtd); err != nil {
				return apierror.Storage(err)
			}
			mov := &model.MovimentoEstoque{
				SKU:        req.SKU,
				Data:       data,
				Tipo:       model.MovAjuste,
				Quantidade: diff, // signed difference, not the absolute target
				Obs:        req.Obs,
			}
			if err := s.movimentoRepo.CreateTx(tx, mov); err != nil {
				return apierror.Storage(err)
			}
			resp = dto.RegistrarMovimentoResponse{SKU: req.SKU, EstoqueNovo: *req.NovaQtd}
			return nil

		default:
			return apierror.Validation("Tipo de movimentação inválido")
		}
	})
	if txErr != nil {
		var de *apierror.DomainError
		if errors.As(txErr, &de) {
			return nil, de
		}
		return nil, apierror.Storage(txErr)
	}
	return &resp, nil
}

func (s *estoqueService) AplicarLinhaVenda(ctx context.Context, l dto.LinhaVenda, data time.Time) (bool, bool, error) {
	if l.SKU == "" || l.Quantidade <= 0 {
		return false, true, nil
	}

	var criou bool
	txErr := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		_, err := s.produtoRepo.FindBySKUTx(tx, l.SKU)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			novo := &model.Produto{SKU: l.SKU, Titulo: l.Titulo, Estoque: 0, CustoUnitario: decimal.Zero}
			if err := s.produtoRepo.CreateTx(tx, novo); err != nil {
				return err
			}
			criou = true
		case err != nil:
			return err
		default:
			if l.Titulo != "" {
				if err := s.produtoRepo.UpdateTituloTx(tx, l.SKU, l.Titulo); err != nil {
					return err
				}
			}
		}

		venda := &model.Venda{
			SKU:        l.SKU,
			Titulo:     l.Titulo,
			Quantidade: l.Quantidade,
			Receita:    l.Receita,
			Comissao:   l.Comissao,
			PrecoMedio: l.PrecoMedio,
		}
		if err := s.vendaRepo.CreateTx(tx, venda); err != nil {
			return err
		}

		if err := s.produtoRepo.AjustarEstoqueTx(tx, l.SKU, -l.Quantidade); err != nil {
			return err
		}

		mov := &model.MovimentoEstoque{
			SKU:        l.SKU,
			Data:       data,
			Tipo:       model.MovSaida,
			Quantidade: l.Quantidade,
			Obs:        "Venda importada",
		}
		return s.movimentoRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return false, false, apierror.Storage(txErr)
	}
	return criou, false, nil
}

func (s *estoqueService) ListarMovimentos(ctx context.Context, sku string, limit int) ([]dto.MovimentoResponse, error) {
	if limit < 1 {
		limit = 50
	}

	var movs []model.MovimentoEstoque
	var err error
	if sku != "" {
		movs, err = s.movimentoRepo.ListBySKU(ctx, sku)
	} else {
		movs, err = s.movimentoRepo.ListRecentes(ctx, limit)
	}
	if err != nil {
		return nil, apierror.Storage(err)
	}

	out := make([]dto.MovimentoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimentoResponse{
			ID:         m.ID,
			SKU:        m.SKU,
			Data:       m.Data.Format("2006-01-02"),
			Tipo:       m.Tipo,
			Quantidade: m.Quantidade,
			Obs:        m.Obs,
		})
	}
	return out, nil
}

// parseDataMovimento accepts an optional YYYY-MM-DD and defaults to today.
func parseDataMovimento(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, apierror.Validation("Data inválida, use o formato AAAA-MM-DD")
	}
	return t, nil
}
