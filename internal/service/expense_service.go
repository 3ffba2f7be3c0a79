package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
)

var validExpenseCategories = map[string]bool{
	entity.ExpenseCategoryFees:         true,
	entity.ExpenseCategoryRefreshments: true,
	entity.ExpenseCategoryTransport:    true,
	entity.ExpenseCategoryMaterials:    true,
	entity.ExpenseCategoryServices:     true,
	entity.ExpenseCategoryOther:        true,
}

// ExpenseService servicio de gastos. Cada mutación recalcula el
// presupuesto ejecutado del proyecto padre.
type ExpenseService struct {
	expenses *repository.ExpenseRepository
	projects *repository.ProjectRepository
	bus      *events.Bus
}

// NewExpenseService crea el servicio de gastos
func NewExpenseService(expenses *repository.ExpenseRepository, projects *repository.ProjectRepository, bus *events.Bus) *ExpenseService {
	return &ExpenseService{expenses: expenses, projects: projects, bus: bus}
}

// CreateExpenseRequest datos para registrar un gasto
type CreateExpenseRequest struct {
	ProjectID   string  `json:"project_id" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Responsible string  `json:"responsible"`
	Approved    bool    `json:"approved"`
	Notes       string  `json:"notes"`
}

// UpdateExpenseRequest datos para actualizar un gasto
type UpdateExpenseRequest struct {
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Responsible *string  `json:"responsible"`
	Approved    *bool    `json:"approved"`
	Notes       *string  `json:"notes"`
}

// ListExpenses lista los gastos de los proyectos del supervisor
func (s *ExpenseService) ListExpenses(ctx context.Context, supervisorID string) ([]entity.Expense, error) {
	return s.expenses.ListBySupervisor(ctx, supervisorID)
}

// GetExpense obtiene un gasto por ID
func (s *ExpenseService) GetExpense(ctx context.Context, id string) (*entity.Expense, error) {
	return s.expenses.FindByID(ctx, id)
}

// CreateExpense registra un gasto y recalcula el presupuesto ejecutado
func (s *ExpenseService) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*entity.Expense, error) {
	if !validExpenseCategories[req.Category] {
		return nil, fmt.Errorf("categoría de gasto inválida: %s", req.Category)
	}
	if req.Amount <= 0 {
		return nil, errors.New("el monto debe ser positivo")
	}
	if _, err := s.projects.FindByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("proyecto no encontrado: %w", err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q", req.Date)
	}

	expense := &entity.Expense{
		ID:          newID(),
		ProjectID:   req.ProjectID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Responsible: req.Responsible,
		Approved:    req.Approved,
		Notes:       req.Notes,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.recalculate(ctx, expense.ProjectID); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityExpense, ID: expense.ID, Action: events.ActionCreated})
	return expense, nil
}

// UpdateExpense actualiza un gasto y recalcula el presupuesto ejecutado
func (s *ExpenseService) UpdateExpense(ctx context.Context, id string, req *UpdateExpenseRequest) (*entity.Expense, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if !validExpenseCategories[*req.Category] {
			return nil, fmt.Errorf("categoría de gasto inválida: %s", *req.Category)
		}
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, errors.New("el monto debe ser positivo")
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida %q", *req.Date)
		}
		expense.Date = date
	}
	if req.Responsible != nil {
		expense.Responsible = *req.Responsible
	}
	if req.Approved != nil {
		expense.Approved = *req.Approved
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}

	expense.Project = nil // evitar que gorm re-grabe la asociación
	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.recalculate(ctx, expense.ProjectID); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityExpense, ID: expense.ID, Action: events.ActionUpdated})
	return expense, nil
}

// DeleteExpense elimina un gasto y recalcula el presupuesto ejecutado
// del proyecto padre
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.expenses.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.recalculate(ctx, expense.ProjectID); err != nil {
		return err
	}

	s.bus.Publish(events.Change{Entity: events.EntityExpense, ID: id, Action: events.ActionDeleted})
	return nil
}

func (s *ExpenseService) recalculate(ctx context.Context, projectID string) error {
	total, err := s.expenses.SumByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("recalcular presupuesto ejecutado: %w", err)
	}
	return s.projects.UpdateExecutedBudget(ctx, projectID, total)
}
