package handler

import (
	"net/http"

	"github.com/oliveirafjdo-web/MetriFy/internal/infra"
	"github.com/oliveirafjdo-web/MetriFy/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatorioHandler struct{ svc service.ConsolidacaoService }

func NewRelatorioHandler(svc service.ConsolidacaoService) *RelatorioHandler {
	return &RelatorioHandler{svc: svc}
}

func (h *RelatorioHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Relatorio(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RelatorioHandler) ExportarXLSX(c *gin.Context) {
	rel, err := h.svc.Relatorio(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="relatorio_lucro_metrify.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := infra.EscreverRelatorio(c.Writer, rel); err != nil {
		_ = c.Error(err)
	}
}

func (h *RelatorioHandler) ExportarPDF(c *gin.Context) {
	rel, err := h.svc.Relatorio(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="relatorio_lucro_metrify.pdf"`)
	c.Header("Content-Type", "application/pdf")
	if err := infra.EscreverRelatorioPDF(c.Writer, rel); err != nil {
		_ = c.Error(err)
	}
}

type DashboardHandler struct{ svc service.ConsolidacaoService }

func NewDashboardHandler(svc service.ConsolidacaoService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Resumo(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
