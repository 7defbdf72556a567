package infra

// planilha.go — xlsx codec for the bulk-import and report-export flows,
// built on excelize. Three operations:
//   - LerVendas: decode an uploaded sheet into typed sale lines, rejecting
//     the whole file upfront when a required column is missing
//   - EscreverTemplate: empty sheet carrying exactly the import headers
//   - EscreverRelatorio: the consolidated profit report
//
// Numeric cells follow the lenient-input policy: comma decimal separators
// are normalized before parsing and unparseable values fall back to zero,
// but every fallback is counted on the decoded line so callers can surface
// data-quality problems instead of absorbing them silently.

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"
	"github.com/oliveirafjdo-web/MetriFy/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Import column names are case-sensitive by contract.
const (
	ColSKU        = "SKU"
	ColTitulo     = "Titulo"
	ColQuantidade = "Quantidade"
	ColReceita    = "Receita"
	ColComissao   = "Comissao"
	ColPrecoMedio = "PrecoMedio"
)

// ColunasTemplate is the full import header set, in template order. The
// first five are required; PrecoMedio is optional and defaults to zero.
func ColunasTemplate() []string {
	return []string{ColSKU, ColTitulo, ColQuantidade, ColReceita, ColComissao, ColPrecoMedio}
}

// ColunasRelatorio is the fixed header row of the report export.
func ColunasRelatorio() []string {
	return []string{
		"SKU", "Titulo", "Quantidade", "Receita", "Comissao", "Imposto",
		"Despesas", "CustoUnitario", "CustoTotal", "Lucro", "PrecoMedioVenda",
	}
}

// LerVendas decodes the first sheet of an xlsx stream. A missing required
// column rejects the whole batch with a validation error before any line is
// produced; individual row filtering (empty SKU, non-positive quantity) is
// the ledger's concern, not the codec's.
func LerVendas(r io.Reader) ([]dto.LinhaVenda, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apierror.Validation("Não foi possível ler a planilha: " + err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apierror.Validation("Planilha sem abas")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apierror.Validation("Não foi possível ler a aba: " + err.Error())
	}
	if len(rows) == 0 {
		return nil, apierror.Validation("Planilha vazia")
	}

	// Resolve columns by header name (exact, case-sensitive); order is free.
	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range []string{ColSKU, ColTitulo, ColQuantidade, ColReceita, ColComissao} {
		if _, ok := idx[col]; !ok {
			return nil, apierror.Validation(
				fmt.Sprintf("Planilha inválida: coluna obrigatória %q ausente. Use o template gerado pelo sistema.", col))
		}
	}

	linhas := make([]dto.LinhaVenda, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var l dto.LinhaVenda
		l.SKU = strings.TrimSpace(cell(row, idx[ColSKU]))
		l.Titulo = strings.TrimSpace(cell(row, idx[ColTitulo]))

		var fb bool
		l.Quantidade, fb = parseFloatFlex(cell(row, idx[ColQuantidade]))
		l.CamposComFallback += boolToInt(fb)
		l.Receita, fb = parseDecimalFlex(cell(row, idx[ColReceita]))
		l.CamposComFallback += boolToInt(fb)
		l.Comissao, fb = parseDecimalFlex(cell(row, idx[ColComissao]))
		l.CamposComFallback += boolToInt(fb)

		if i, ok := idx[ColPrecoMedio]; ok {
			l.PrecoMedio, fb = parseDecimalFlex(cell(row, i))
			l.CamposComFallback += boolToInt(fb)
		} else {
			l.PrecoMedio = decimal.Zero
		}

		linhas = append(linhas, l)
	}
	return linhas, nil
}

// EscreverTemplate writes the empty import template: header row only, in a
// sheet named Template, so a report round-trip stays compatible with import.
func EscreverTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Template"
	f.SetSheetName("Sheet1", sheet)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{
		ColSKU, ColTitulo, ColQuantidade, ColReceita, ColComissao, ColPrecoMedio,
	}); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

// EscreverRelatorio writes the consolidated profit report, one row per
// report line in report order (lucro descending).
func EscreverRelatorio(w io.Writer, rel *dto.RelatorioResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "RelatorioLucro"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, 0, len(ColunasRelatorio()))
	for _, h := range ColunasRelatorio() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, l := range rel.Linhas {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			l.SKU,
			l.Titulo,
			l.Quantidade,
			l.Receita.InexactFloat64(),
			l.Comissao.InexactFloat64(),
			l.Imposto.InexactFloat64(),
			l.Despesa.InexactFloat64(),
			l.CustoUnitario.InexactFloat64(),
			l.CustoTotal.InexactFloat64(),
			l.Lucro.InexactFloat64(),
			l.PrecoMedio.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseFloatFlex applies the lenient numeric policy: comma separators are
// normalized, empty cells are zero (missing data, not a fallback), and
// unparseable text becomes zero with the fallback flag set.
func parseFloatFlex(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true
	}
	return v, false
}

func parseDecimalFlex(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, true
	}
	return v, false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
