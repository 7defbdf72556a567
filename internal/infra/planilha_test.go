package infra

import (
	"bytes"
	"testing"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"
	"github.com/oliveirafjdo-web/MetriFy/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildSheet writes an xlsx with the given header and rows into memory.
func buildSheet(t *testing.T, header []interface{}, rows ...[]interface{}) *bytes.Reader {
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

func headerVendas() []interface{} {
	return []interface{}{"SKU", "Titulo", "Quantidade", "Receita", "Comissao", "PrecoMedio"}
}

func TestLerVendas(t *testing.T) {
	r := buildSheet(t, headerVendas(),
		[]interface{}{"SKU-1", "Caneca", 5, 100.5, 10, 20.1},
		[]interface{}{"SKU-2", "Camiseta", 2, 80, 8, 40},
	)

	linhas, err := LerVendas(r)
	require.NoError(t, err)
	require.Len(t, linhas, 2)

	assert.Equal(t, "SKU-1", linhas[0].SKU)
	assert.Equal(t, "Caneca", linhas[0].Titulo)
	assert.Equal(t, 5.0, linhas[0].Quantidade)
	assert.True(t, linhas[0].Receita.Equal(decimal.NewFromFloat(100.5)))
	assert.True(t, linhas[0].Comissao.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 0, linhas[0].CamposComFallback)
}

func TestLerVendasColunaObrigatoriaAusente(t *testing.T) {
	// no Receita column
	r := buildSheet(t, []interface{}{"SKU", "Titulo", "Quantidade", "Comissao"},
		[]interface{}{"SKU-1", "Caneca", 5, 10},
	)

	linhas, err := LerVendas(r)
	require.Error(t, err)
	assert.Nil(t, linhas)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "Receita")
}

func TestLerVendasCabecalhoCaseSensitive(t *testing.T) {
	r := buildSheet(t, []interface{}{"sku", "Titulo", "Quantidade", "Receita", "Comissao"},
		[]interface{}{"SKU-1", "Caneca", 5, 100, 10},
	)

	_, err := LerVendas(r)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestLerVendasColunasForaDeOrdem(t *testing.T) {
	r := buildSheet(t, []interface{}{"Receita", "SKU", "Comissao", "Quantidade", "Titulo"},
		[]interface{}{250, "SKU-9", 25, 10, "Boné"},
	)

	linhas, err := LerVendas(r)
	require.NoError(t, err)
	require.Len(t, linhas, 1)
	assert.Equal(t, "SKU-9", linhas[0].SKU)
	assert.Equal(t, 10.0, linhas[0].Quantidade)
	assert.True(t, linhas[0].Receita.Equal(decimal.NewFromInt(250)))
	// PrecoMedio absent: defaults to zero without counting a fallback
	assert.True(t, linhas[0].PrecoMedio.IsZero())
	assert.Equal(t, 0, linhas[0].CamposComFallback)
}

func TestLerVendasSeparadorVirgula(t *testing.T) {
	r := buildSheet(t, headerVendas(),
		[]interface{}{"SKU-1", "Caneca", "2,5", "100,75", "10,5", ""},
	)

	linhas, err := LerVendas(r)
	require.NoError(t, err)
	require.Len(t, linhas, 1)
	assert.Equal(t, 2.5, linhas[0].Quantidade)
	assert.True(t, linhas[0].Receita.Equal(decimal.RequireFromString("100.75")))
	assert.Equal(t, 0, linhas[0].CamposComFallback)
}

func TestLerVendasValorIlegivel(t *testing.T) {
	r := buildSheet(t, headerVendas(),
		[]interface{}{"SKU-1", "Caneca", "abc", "R$ 100", 10, ""},
	)

	linhas, err := LerVendas(r)
	require.NoError(t, err)
	require.Len(t, linhas, 1)
	// unparseable cells fall back to zero but are counted
	assert.Equal(t, 0.0, linhas[0].Quantidade)
	assert.True(t, linhas[0].Receita.IsZero())
	assert.Equal(t, 2, linhas[0].CamposComFallback)
}

func TestLerVendasPlanilhaCorrompida(t *testing.T) {
	_, err := LerVendas(bytes.NewReader([]byte("isto não é um xlsx")))
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestEscreverTemplateCompativelComImportacao(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EscreverTemplate(&buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Template"}, f.GetSheetList())
	rows, err := f.GetRows("Template")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ColunasTemplate(), rows[0])

	// an empty template must pass the importer's header check
	linhas, err := LerVendas(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, linhas)
}

func TestEscreverRelatorio(t *testing.T) {
	rel := &dto.RelatorioResponse{
		Linhas: []dto.LinhaRelatorio{
			{
				SKU:           "SKU-1",
				Titulo:        "Caneca",
				Quantidade:    50,
				Receita:       decimal.NewFromInt(1000),
				Comissao:      decimal.NewFromInt(100),
				Imposto:       decimal.NewFromInt(50),
				Despesa:       decimal.RequireFromString("31.5"),
				CustoUnitario: decimal.NewFromInt(2),
				CustoTotal:    decimal.NewFromInt(100),
				Lucro:         decimal.RequireFromString("718.5"),
				PrecoMedio:    decimal.NewFromInt(20),
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, EscreverRelatorio(&buf, rel))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("RelatorioLucro")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ColunasRelatorio(), rows[0])
	assert.Equal(t, "SKU-1", rows[1][0])
	assert.Equal(t, "718.5", rows[1][9])
}
