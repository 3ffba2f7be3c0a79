package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
)

var validProjectStatuses = map[string]bool{
	entity.ProjectStatusPlanning:  true,
	entity.ProjectStatusActive:    true,
	entity.ProjectStatusFinished:  true,
	entity.ProjectStatusCancelled: true,
}

// ErrProjectHasRecords se devuelve al intentar eliminar un proyecto que
// todavía tiene gastos, pagos o evidencias asociadas.
var ErrProjectHasRecords = errors.New("el proyecto tiene registros asociados; elimínelos o cancele el proyecto")

// ProjectService servicio de proyectos
type ProjectService struct {
	projects *repository.ProjectRepository
	expenses *repository.ExpenseRepository
	payments *repository.PaymentRepository
	evidence *repository.EvidenceRepository
	bus      *events.Bus
}

// NewProjectService crea el servicio de proyectos
func NewProjectService(projects *repository.ProjectRepository, expenses *repository.ExpenseRepository, payments *repository.PaymentRepository, evidence *repository.EvidenceRepository, bus *events.Bus) *ProjectService {
	return &ProjectService{projects: projects, expenses: expenses, payments: payments, evidence: evidence, bus: bus}
}

// CreateProjectRequest datos para crear un proyecto
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	TotalBudget float64 `json:"total_budget"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      string  `json:"status"`
}

// UpdateProjectRequest datos para actualizar un proyecto
type UpdateProjectRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	TotalBudget *float64 `json:"total_budget"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Status      *string  `json:"status"`
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q", *s)
	}
	return &t, nil
}

func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// ListProjects lista los proyectos del supervisor
func (s *ProjectService) ListProjects(ctx context.Context, supervisorID string, filters map[string]interface{}) ([]entity.Project, error) {
	return s.projects.ListBySupervisor(ctx, supervisorID, filters)
}

// GetProject obtiene un proyecto por ID
func (s *ProjectService) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	return s.projects.FindByID(ctx, id)
}

// CreateProject crea un proyecto
func (s *ProjectService) CreateProject(ctx context.Context, supervisorID string, req *CreateProjectRequest) (*entity.Project, error) {
	status := req.Status
	if status == "" {
		status = entity.ProjectStatusPlanning
	}
	if !validProjectStatuses[status] {
		return nil, fmt.Errorf("estado de proyecto inválido: %s", status)
	}
	if req.TotalBudget < 0 {
		return nil, errors.New("el presupuesto total no puede ser negativo")
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, err
	}

	project := &entity.Project{
		ID:           newID(),
		Name:         req.Name,
		Description:  req.Description,
		TotalBudget:  req.TotalBudget,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
		SupervisorID: supervisorID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityProject, ID: project.ID, Action: events.ActionCreated})
	return project, nil
}

// UpdateProject actualiza un proyecto
func (s *ProjectService) UpdateProject(ctx context.Context, id string, req *UpdateProjectRequest) (*entity.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.TotalBudget != nil {
		if *req.TotalBudget < 0 {
			return nil, errors.New("el presupuesto total no puede ser negativo")
		}
		project.TotalBudget = *req.TotalBudget
	}
	if req.StartDate != nil {
		startDate, err := parseDatePtr(req.StartDate)
		if err != nil {
			return nil, err
		}
		project.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDatePtr(req.EndDate)
		if err != nil {
			return nil, err
		}
		project.EndDate = endDate
	}
	if req.Status != nil {
		if !validProjectStatuses[*req.Status] {
			return nil, fmt.Errorf("estado de proyecto inválido: %s", *req.Status)
		}
		project.Status = *req.Status
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityProject, ID: project.ID, Action: events.ActionUpdated})
	return project, nil
}

// DeleteProject elimina un proyecto solo si no tiene gastos, pagos ni
// evidencias asociadas.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return err
	}
	expenseCount, err := s.expenses.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	paymentCount, err := s.payments.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	evidenceCount, err := s.evidence.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	if expenseCount+paymentCount+evidenceCount > 0 {
		return ErrProjectHasRecords
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Change{Entity: events.EntityProject, ID: id, Action: events.ActionDeleted})
	return nil
}

// RecalculateExecutedBudget recalcula y persiste el presupuesto
// ejecutado del proyecto como la suma de sus gastos. Es la única
// derivación canónica del campo.
func (s *ProjectService) RecalculateExecutedBudget(ctx context.Context, projectID string) (float64, error) {
	total, err := s.expenses.SumByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	if err := s.projects.UpdateExecutedBudget(ctx, projectID, total); err != nil {
		return 0, err
	}
	s.bus.Publish(events.Change{Entity: events.EntityProject, ID: projectID, Action: events.ActionUpdated})
	return total, nil
}
