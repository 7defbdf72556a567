package service

import (
	"context"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"
	"github.com/oliveirafjdo-web/MetriFy/internal/dto"
	"github.com/oliveirafjdo-web/MetriFy/internal/model"
	"github.com/oliveirafjdo-web/MetriFy/internal/repository"
)

// ConfiguracoesService exposes the settings singleton (tax and expense
// percentage points). The record is created at init and only updated after.
type ConfiguracoesService interface {
	Obter(ctx context.Context) (*dto.ConfiguracoesResponse, error)
	Atualizar(ctx context.Context, req dto.AtualizarConfiguracoesRequest) (*dto.ConfiguracoesResponse, error)
}

type configuracoesService struct {
	repo repository.SettingsRepository
}

func NewConfiguracoesService(repo repository.SettingsRepository) ConfiguracoesService {
	return &configuracoesService{repo: repo}
}

func (s *configuracoesService) Obter(ctx context.Context) (*dto.ConfiguracoesResponse, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return &dto.ConfiguracoesResponse{ImpostoPct: cfg.ImpostoPct, DespesaPct: cfg.DespesaPct}, nil
}

func (s *configuracoesService) Atualizar(ctx context.Context, req dto.AtualizarConfiguracoesRequest) (*dto.ConfiguracoesResponse, error) {
	if req.ImpostoPct.IsNegative() || req.DespesaPct.IsNegative() {
		return nil, apierror.Validation("Percentuais não podem ser negativos")
	}
	cfg := &model.Settings{ImpostoPct: req.ImpostoPct, DespesaPct: req.DespesaPct}
	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, apierror.Storage(err)
	}
	return &dto.ConfiguracoesResponse{ImpostoPct: cfg.ImpostoPct, DespesaPct: cfg.DespesaPct}, nil
}
