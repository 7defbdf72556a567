package handler

import (
	"net/http"
	"strings"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"
	"github.com/oliveirafjdo-web/MetriFy/internal/infra"
	"github.com/oliveirafjdo-web/MetriFy/internal/service"

	"github.com/gin-gonic/gin"
)

type ImportacaoHandler struct{ svc service.ImportacaoService }

func NewImportacaoHandler(svc service.ImportacaoService) *ImportacaoHandler {
	return &ImportacaoHandler{svc: svc}
}

// Importar receives the sales spreadsheet as multipart field "arquivo".
func (h *ImportacaoHandler) Importar(c *gin.Context) {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Nenhum arquivo enviado"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, apierror.New("Apenas arquivos .xlsx são aceitos"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Não foi possível abrir o arquivo"))
		return
	}
	defer file.Close()

	resultado, err := h.svc.ImportarPlanilha(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Template downloads the empty import template so the exported headers and
// the import contract never drift apart.
func (h *ImportacaoHandler) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="template_consolidacao.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := infra.EscreverTemplate(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
