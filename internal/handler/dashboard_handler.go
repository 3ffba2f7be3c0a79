package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

// DashboardHandler handler del panel de estadísticas
type DashboardHandler struct {
	svc *service.DashboardService
}

// NewDashboardHandler crea el handler del panel
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetStats estadísticas agregadas del supervisor autenticado
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context(), GetUserID(c))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, stats)
}
