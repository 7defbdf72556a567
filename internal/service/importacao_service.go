package service

import (
	"context"
	"io"
	"time"

	"github.com/oliveirafjdo-web/MetriFy/internal/dto"
	"github.com/oliveirafjdo-web/MetriFy/internal/infra"

	"github.com/rs/zerolog/log"
)

// ImportacaoService drives the bulk sales import: decode the uploaded sheet
// (schema-checked upfront — a missing required column rejects the whole file
// before any write), then feed each line to the inventory ledger. Lines are
// processed sequentially, each inside its own transaction, so a failure
// partway never leaves a half-applied line behind.
type ImportacaoService interface {
	ImportarPlanilha(ctx context.Context, r io.Reader) (*dto.ResultadoImportacao, error)
}

type importacaoService struct {
	estoque EstoqueService
}

func NewImportacaoService(estoque EstoqueService) ImportacaoService {
	return &importacaoService{estoque: estoque}
}

func (s *importacaoService) ImportarPlanilha(ctx context.Context, r io.Reader) (*dto.ResultadoImportacao, error) {
	linhas, err := infra.LerVendas(r)
	if err != nil {
		return nil, err
	}

	data := time.Now()
	resultado := &dto.ResultadoImportacao{}
	for _, l := range linhas {
		if l.CamposComFallback > 0 {
			// lenient-input policy: defaulted cells are visible, not silent
			log.Warn().
				Str("sku", l.SKU).
				Int("campos", l.CamposComFallback).
				Msg("linha importada com valores numéricos ilegíveis zerados")
			resultado.CamposComFallback += l.CamposComFallback
		}

		criou, ignorada, err := s.estoque.AplicarLinhaVenda(ctx, l, data)
		if err != nil {
			return nil, err
		}
		if ignorada {
			resultado.LinhasIgnoradas++
			continue
		}
		resultado.LinhasImportadas++
		if criou {
			resultado.ProdutosCriados++
		}
	}

	log.Info().
		Int("importadas", resultado.LinhasImportadas).
		Int("ignoradas", resultado.LinhasIgnoradas).
		Int("produtos_criados", resultado.ProdutosCriados).
		Msg("importação concluída")
	return resultado, nil
}
