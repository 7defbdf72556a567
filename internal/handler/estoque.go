package handler

import (
	"net/http"
	"strconv"

	"github.com/oliveirafjdo-web/MetriFy/internal/dto"
	"github.com/oliveirafjdo-web/MetriFy/internal/service"

	"github.com/gin-gonic/gin"
)

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

// RegistrarMovimento posts one entrada/saida/ajuste against a SKU.
func (h *EstoqueHandler) RegistrarMovimento(c *gin.Context) {
	var req dto.RegistrarMovimentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMovimento(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMovimentos returns recent ledger entries, optionally filtered by SKU.
func (h *EstoqueHandler) ListarMovimentos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	movs, err := h.svc.ListarMovimentos(c.Request.Context(), c.Query("sku"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MovimentoListResponse{Data: movs})
}
