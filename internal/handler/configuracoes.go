package handler

import (
	"net/http"

	"github.com/oliveirafjdo-web/MetriFy/internal/dto"
	"github.com/oliveirafjdo-web/MetriFy/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracoesHandler struct{ svc service.ConfiguracoesService }

func NewConfiguracoesHandler(svc service.ConfiguracoesService) *ConfiguracoesHandler {
	return &ConfiguracoesHandler{svc: svc}
}

func (h *ConfiguracoesHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Obter(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConfiguracoesHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarConfiguracoesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
