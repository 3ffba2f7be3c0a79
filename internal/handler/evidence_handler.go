package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/report"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

// EvidenceHandler handler de evidencias de proyecto
type EvidenceHandler struct {
	svc     *service.EvidenceService
	reports *service.ReportService
}

// NewEvidenceHandler crea el handler de evidencias
func NewEvidenceHandler(svc *service.EvidenceService, reports *service.ReportService) *EvidenceHandler {
	return &EvidenceHandler{svc: svc, reports: reports}
}

// ListEvidence lista las evidencias del supervisor con filtros declarativos
func (h *EvidenceHandler) ListEvidence(c *gin.Context) {
	var filter report.EvidenceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "Invalid filter: "+err.Error())
		return
	}

	result, err := h.reports.FilteredEvidence(c.Request.Context(), GetUserID(c), filter)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, result)
}

// GetEvidence detalle de una evidencia
func (h *EvidenceHandler) GetEvidence(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Evidence ID is required")
		return
	}

	evidence, err := h.svc.GetEvidence(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "Evidence not found")
		return
	}

	Success(c, evidence)
}

// CreateEvidence registra una evidencia
func (h *EvidenceHandler) CreateEvidence(c *gin.Context) {
	var req service.CreateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	evidence, err := h.svc.CreateEvidence(c.Request.Context(), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Created(c, evidence)
}

// UpdateEvidence actualiza una evidencia
func (h *EvidenceHandler) UpdateEvidence(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Evidence ID is required")
		return
	}

	var req service.UpdateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	evidence, err := h.svc.UpdateEvidence(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Evidence not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Success(c, evidence)
}

// DeleteEvidence elimina una evidencia
func (h *EvidenceHandler) DeleteEvidence(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Evidence ID is required")
		return
	}

	if err := h.svc.DeleteEvidence(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Evidence not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"id": id})
}
