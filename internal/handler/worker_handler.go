package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

// WorkerHandler handler de trabajadores
type WorkerHandler struct {
	svc *service.WorkerService
}

// NewWorkerHandler crea el handler de trabajadores
func NewWorkerHandler(svc *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{svc: svc}
}

// ListWorkers lista los trabajadores; ?active=true limita a los activos
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	workers, err := h.svc.ListWorkers(c.Request.Context(), activeOnly)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, workers)
}

// GetWorker detalle de un trabajador
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Worker ID is required")
		return
	}

	worker, err := h.svc.GetWorker(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "Worker not found")
		return
	}

	Success(c, worker)
}

// CreateWorker registra un trabajador
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req service.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	worker, err := h.svc.CreateWorker(c.Request.Context(), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Created(c, worker)
}

// UpdateWorker actualiza un trabajador
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Worker ID is required")
		return
	}

	var req service.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	worker, err := h.svc.UpdateWorker(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Worker not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Success(c, worker)
}

// DeleteWorker elimina un trabajador sin pagos asociados
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Worker ID is required")
		return
	}

	if err := h.svc.DeleteWorker(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Worker not found")
			return
		}
		if errors.Is(err, service.ErrWorkerHasPayments) {
			Unprocessable(c, "Worker has registered payments; deactivate instead")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"id": id})
}

// DeactivateWorker marca un trabajador como inactivo conservando su historial
func (h *WorkerHandler) DeactivateWorker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Worker ID is required")
		return
	}

	if err := h.svc.DeactivateWorker(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Worker not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"id": id, "active": false})
}
