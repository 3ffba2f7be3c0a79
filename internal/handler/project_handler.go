package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

// ProjectHandler handler de proyectos
type ProjectHandler struct {
	svc *service.ProjectService
}

// NewProjectHandler crea el handler de proyectos
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects lista los proyectos del supervisor autenticado
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filters := map[string]interface{}{
		"keyword": c.Query("keyword"),
		"status":  c.Query("status"),
	}

	projects, err := h.svc.ListProjects(c.Request.Context(), GetUserID(c), filters)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"items": projects, "total": len(projects)})
}

// GetProject detalle de un proyecto
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Project ID is required")
		return
	}

	project, err := h.svc.GetProject(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "Project not found")
		return
	}

	Success(c, project)
}

// CreateProject crea un proyecto
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.CreateProject(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Created(c, project)
}

// UpdateProject actualiza un proyecto
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Project ID is required")
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.UpdateProject(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Success(c, project)
}

// DeleteProject elimina un proyecto
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Project ID is required")
		return
	}

	if err := h.svc.DeleteProject(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		if errors.Is(err, service.ErrProjectHasRecords) {
			Unprocessable(c, "Project has registered expenses, payments or evidence; remove them first")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"id": id})
}

// RecalculateBudget fuerza el recálculo del presupuesto ejecutado
func (h *ProjectHandler) RecalculateBudget(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Project ID is required")
		return
	}

	total, err := h.svc.RecalculateExecutedBudget(c.Request.Context(), id)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"id": id, "executed_budget": total})
}
