package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func planilhaVendas(t *testing.T, header []interface{}, rows ...[]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellRef, &row))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestImportarPlanilha(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustProduto(t, "SKU-1", 10, dec("2"))

	r := planilhaVendas(t,
		[]interface{}{"SKU", "Titulo", "Quantidade", "Receita", "Comissao", "PrecoMedio"},
		[]interface{}{"SKU-1", "Caneca", 4, 160, 16, 40},
		[]interface{}{"SKU-NOVO", "Camiseta", 2, 100, 10, 50},
		[]interface{}{"", "Sem SKU", 3, 90, 9, 30},
		[]interface{}{"SKU-1", "Caneca", 0, 50, 5, 0},
	)

	svc := NewImportacaoService(env.estoque)
	res, err := svc.ImportarPlanilha(ctx, r)
	require.NoError(t, err)

	assert.Equal(t, 2, res.LinhasImportadas)
	assert.Equal(t, 2, res.LinhasIgnoradas)
	assert.Equal(t, 1, res.ProdutosCriados)
	assert.Equal(t, 0, res.CamposComFallback)

	// one sale row per imported line, in file order
	vendas, err := env.vendaRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, vendas, 2)
	assert.Equal(t, "SKU-1", vendas[0].SKU)
	assert.Equal(t, "SKU-NOVO", vendas[1].SKU)

	assert.Equal(t, 6.0, env.estoqueAtual(t, "SKU-1"))
	assert.Equal(t, -2.0, env.estoqueAtual(t, "SKU-NOVO"))
}

func TestImportarPlanilhaColunaFaltando(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	r := planilhaVendas(t,
		[]interface{}{"SKU", "Titulo", "Quantidade", "Comissao"},
		[]interface{}{"SKU-1", "Caneca", 4, 16},
	)

	svc := NewImportacaoService(env.estoque)
	_, err := svc.ImportarPlanilha(ctx, r)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	// rejected before any write
	vendas, err := env.vendaRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, vendas)
	_, err = env.produtoRepo.FindBySKU(ctx, "SKU-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestImportarPlanilhaContaFallbacks(t *testing.T) {
	env := newTestEnv(t)

	r := planilhaVendas(t,
		[]interface{}{"SKU", "Titulo", "Quantidade", "Receita", "Comissao"},
		[]interface{}{"SKU-1", "Caneca", 4, "inválido", 16},
	)

	svc := NewImportacaoService(env.estoque)
	res, err := svc.ImportarPlanilha(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, 1, res.LinhasImportadas)
	assert.Equal(t, 1, res.CamposComFallback)

	vendas, err := env.vendaRepo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, vendas, 1)
	assert.True(t, vendas[0].Receita.IsZero())
}
