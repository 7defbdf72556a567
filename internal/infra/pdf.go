package infra

// pdf.go — printable rendition of the consolidated profit report using
// go-pdf/fpdf. A4 landscape, one table row per consolidated SKU plus a bold
// totals row; the same numbers as the xlsx export, laid out for printing.

import (
	"fmt"
	"io"
	"time"

	"github.com/oliveirafjdo-web/MetriFy/internal/dto"

	"github.com/go-pdf/fpdf"
)

// EscreverRelatorioPDF renders rel into w. Column set mirrors the xlsx
// export minus CustoUnitario (kept out to fit the page width).
func EscreverRelatorioPDF(w io.Writer, rel *dto.RelatorioResponse) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "MetriFy", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	subtitle := fmt.Sprintf("Relatório de lucro consolidado — imposto %s%%, despesas %s%% — %s",
		rel.ImpostoPct.String(), rel.DespesaPct.String(), time.Now().Format("02/01/2006"))
	pdf.CellFormat(contentW, 6, subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Table header ─────────────────────────────────────────────────────────
	type col struct {
		title string
		width float64
		align string
	}
	cols := []col{
		{"SKU", 0.11, "L"},
		{"Título", 0.23, "L"},
		{"Qtd", 0.06, "R"},
		{"Receita", 0.10, "R"},
		{"Comissão", 0.10, "R"},
		{"Imposto", 0.09, "R"},
		{"Despesas", 0.09, "R"},
		{"Custo total", 0.10, "R"},
		{"Lucro", 0.12, "R"},
	}

	pdf.SetFont("Helvetica", "B", 8)
	for i, c := range cols {
		last := 0
		if i == len(cols)-1 {
			last = 1
		}
		pdf.CellFormat(contentW*c.width, 6, c.title, "B", last, c.align, false, 0, "")
	}

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, l := range rel.Linhas {
		titulo := l.Titulo
		if len(titulo) > 42 {
			titulo = titulo[:41] + "…"
		}
		values := []string{
			l.SKU,
			titulo,
			fmt.Sprintf("%.2f", l.Quantidade),
			l.Receita.StringFixed(2),
			l.Comissao.StringFixed(2),
			l.Imposto.StringFixed(2),
			l.Despesa.StringFixed(2),
			l.CustoTotal.StringFixed(2),
			l.Lucro.StringFixed(2),
		}
		for i, c := range cols {
			last := 0
			if i == len(cols)-1 {
				last = 1
			}
			pdf.CellFormat(contentW*c.width, 5, values[i], "", last, c.align, false, 0, "")
		}
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.Ln(1)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 8)
	totals := []string{
		"TOTAIS",
		"",
		fmt.Sprintf("%.2f", rel.Totais.Quantidade),
		rel.Totais.Receita.StringFixed(2),
		rel.Totais.Comissao.StringFixed(2),
		rel.Totais.Imposto.StringFixed(2),
		rel.Totais.Despesa.StringFixed(2),
		rel.Totais.CustoTotal.StringFixed(2),
		rel.Totais.Lucro.StringFixed(2),
	}
	for i, c := range cols {
		last := 0
		if i == len(cols)-1 {
			last = 1
		}
		pdf.CellFormat(contentW*c.width, 6, totals[i], "", last, c.align, false, 0, "")
	}

	return pdf.Output(w)
}
