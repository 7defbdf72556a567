package service

import (
	"context"
	"testing"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"
	"github.com/oliveirafjdo-web/MetriFy/internal/dto"
	"github.com/oliveirafjdo-web/MetriFy/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProdutoService(env *testEnv) ProdutoService {
	return NewProdutoService(env.produtoRepo, env.movimentoRepo)
}

func TestCriarProduto(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)

	p, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		SKU: "SKU-1", Titulo: "Caneca", Estoque: 10, CustoUnitario: dec("2.5"),
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "SKU-1", p.SKU)
	assert.Equal(t, 10.0, p.Estoque)
}

func TestCriarProdutoSKUDuplicado(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)
	ctx := context.Background()

	_, err := svc.Criar(ctx, dto.CriarProdutoRequest{SKU: "SKU-1", Titulo: "Caneca"})
	require.NoError(t, err)

	_, err = svc.Criar(ctx, dto.CriarProdutoRequest{SKU: "SKU-1", Titulo: "Outra Caneca"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestCriarProdutoSKUVazio(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)

	_, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{SKU: ""})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestObterPorIDInexistente(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)

	_, err := svc.ObterPorID(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestAtualizarProdutoEdicaoDeEstoqueGeraAjuste(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)
	ctx := context.Background()

	p, err := svc.Criar(ctx, dto.CriarProdutoRequest{
		SKU: "SKU-1", Titulo: "Caneca", Estoque: 10, CustoUnitario: dec("2"),
	})
	require.NoError(t, err)

	atualizado, err := svc.Atualizar(ctx, p.ID, dto.AtualizarProdutoRequest{
		SKU: "SKU-1", Titulo: "Caneca", Estoque: 7, CustoUnitario: dec("2"),
	})
	require.NoError(t, err)
	assert.Equal(t, 7.0, atualizado.Estoque)

	movs, err := env.movimentoRepo.ListBySKU(ctx, "SKU-1")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovAjuste, movs[0].Tipo)
	assert.Equal(t, -3.0, movs[0].Quantidade)
	assert.Equal(t, "Edição manual do produto", movs[0].Obs)
}

func TestAtualizarProdutoSemMudancaDeEstoque(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)
	ctx := context.Background()

	p, err := svc.Criar(ctx, dto.CriarProdutoRequest{
		SKU: "SKU-1", Titulo: "Caneca", Estoque: 10, CustoUnitario: dec("2"),
	})
	require.NoError(t, err)

	atualizado, err := svc.Atualizar(ctx, p.ID, dto.AtualizarProdutoRequest{
		SKU: "SKU-1", Titulo: "Caneca Grande", Estoque: 10, CustoUnitario: dec("3"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Caneca Grande", atualizado.Titulo)
	assert.True(t, atualizado.CustoUnitario.Equal(dec("3")))

	// no ajuste row when the quantity did not move
	movs, err := env.movimentoRepo.ListBySKU(ctx, "SKU-1")
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestAtualizarProdutoSKUConflitante(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)
	ctx := context.Background()

	_, err := svc.Criar(ctx, dto.CriarProdutoRequest{SKU: "SKU-1", Titulo: "Caneca"})
	require.NoError(t, err)
	p2, err := svc.Criar(ctx, dto.CriarProdutoRequest{SKU: "SKU-2", Titulo: "Camiseta"})
	require.NoError(t, err)

	_, err = svc.Atualizar(ctx, p2.ID, dto.AtualizarProdutoRequest{SKU: "SKU-1", Titulo: "Camiseta"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestExcluirProdutoMantemHistorico(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)
	ctx := context.Background()

	p, err := svc.Criar(ctx, dto.CriarProdutoRequest{SKU: "SKU-1", Titulo: "Caneca", Estoque: 10})
	require.NoError(t, err)

	_, err = env.estoque.RegistrarMovimento(ctx, dto.RegistrarMovimentoRequest{
		SKU: "SKU-1", Tipo: model.MovSaida, Quantidade: 2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Excluir(ctx, p.ID))

	_, err = svc.ObterPorID(ctx, p.ID)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))

	// history outlives the product
	movs, err := env.movimentoRepo.ListBySKU(ctx, "SKU-1")
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}

func TestExcluirProdutoInexistente(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)

	err := svc.Excluir(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestListarProdutosOrdemDeTitulo(t *testing.T) {
	env := newTestEnv(t)
	svc := newProdutoService(env)
	ctx := context.Background()

	for _, p := range []dto.CriarProdutoRequest{
		{SKU: "C", Titulo: "Zebra"},
		{SKU: "A", Titulo: "Abajur"},
		{SKU: "B", Titulo: "Mesa"},
	} {
		_, err := svc.Criar(ctx, p)
		require.NoError(t, err)
	}

	lista, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), lista.Total)
	require.Len(t, lista.Data, 3)
	assert.Equal(t, "Abajur", lista.Data[0].Titulo)
	assert.Equal(t, "Zebra", lista.Data[2].Titulo)
}
