package service

import (
	"context"
	"testing"

	"github.com/oliveirafjdo-web/MetriFy/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguracoesDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := NewConfiguracoesService(env.settingsRepo)

	cfg, err := svc.Obter(context.Background())
	require.NoError(t, err)
	assertDec(t, "5", cfg.ImpostoPct, "impostoPct")
	assertDec(t, "3.5", cfg.DespesaPct, "despesaPct")
}

func TestConfiguracoesAtualizar(t *testing.T) {
	env := newTestEnv(t)
	svc := NewConfiguracoesService(env.settingsRepo)
	ctx := context.Background()

	_, err := svc.Atualizar(ctx, dto.AtualizarConfiguracoesRequest{
		ImpostoPct: dec("12"), DespesaPct: dec("1.25"),
	})
	require.NoError(t, err)

	cfg, err := svc.Obter(ctx)
	require.NoError(t, err)
	assertDec(t, "12", cfg.ImpostoPct, "impostoPct")
	assertDec(t, "1.25", cfg.DespesaPct, "despesaPct")
}

func TestConfiguracoesZeroDesligaDeducoes(t *testing.T) {
	env := newTestEnv(t)
	svc := NewConfiguracoesService(env.settingsRepo)
	ctx := context.Background()

	_, err := svc.Atualizar(ctx, dto.AtualizarConfiguracoesRequest{
		ImpostoPct: dec("0"), DespesaPct: dec("0"),
	})
	require.NoError(t, err)

	cfg, err := svc.Obter(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.ImpostoPct.IsZero())
	assert.True(t, cfg.DespesaPct.IsZero())
}
