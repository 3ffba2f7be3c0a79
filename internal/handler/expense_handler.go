package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/report"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

// ExpenseHandler handler de gastos
type ExpenseHandler struct {
	svc     *service.ExpenseService
	reports *service.ReportService
}

// NewExpenseHandler crea el handler de gastos
func NewExpenseHandler(svc *service.ExpenseService, reports *service.ReportService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc, reports: reports}
}

// ListExpenses lista los gastos del supervisor con filtros declarativos
// aplicados sobre la colección unida en memoria
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var filter report.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "Invalid filter: "+err.Error())
		return
	}

	result, err := h.reports.FilteredExpenses(c.Request.Context(), GetUserID(c), filter)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, result)
}

// GetExpense detalle de un gasto
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Expense ID is required")
		return
	}

	expense, err := h.svc.GetExpense(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "Expense not found")
		return
	}

	Success(c, expense)
}

// CreateExpense registra un gasto
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req service.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	expense, err := h.svc.CreateExpense(c.Request.Context(), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Created(c, expense)
}

// UpdateExpense actualiza un gasto
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Expense ID is required")
		return
	}

	var req service.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	expense, err := h.svc.UpdateExpense(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Expense not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Success(c, expense)
}

// DeleteExpense elimina un gasto
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Expense ID is required")
		return
	}

	if err := h.svc.DeleteExpense(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Expense not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"id": id})
}
