package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Healthz godoc
// @Summary      Health check
// @Tags         Health
// @Router       /healthz [get]
func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}
