package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/report"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

// PaymentHandler handler de pagos a personal
type PaymentHandler struct {
	svc     *service.PaymentService
	reports *service.ReportService
}

// NewPaymentHandler crea el handler de pagos
func NewPaymentHandler(svc *service.PaymentService, reports *service.ReportService) *PaymentHandler {
	return &PaymentHandler{svc: svc, reports: reports}
}

// ListPayments lista los pagos del supervisor con filtros declarativos
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var filter report.PaymentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "Invalid filter: "+err.Error())
		return
	}

	result, err := h.reports.FilteredPayments(c.Request.Context(), GetUserID(c), filter)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, result)
}

// GetPayment detalle de un pago
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Payment ID is required")
		return
	}

	payment, err := h.svc.GetPayment(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "Payment not found")
		return
	}

	Success(c, payment)
}

// CreatePayment registra un pago
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	payment, err := h.svc.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Created(c, payment)
}

// UpdatePayment actualiza un pago
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Payment ID is required")
		return
	}

	var req service.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	payment, err := h.svc.UpdatePayment(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Payment not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Success(c, payment)
}

// UpdatePaymentStatus cambia el estado del pago
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Payment ID is required")
		return
	}

	var req struct {
		Status      string  `json:"status" binding:"required"`
		PaymentDate *string `json:"payment_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	payment, err := h.svc.UpdatePaymentStatus(c.Request.Context(), id, req.Status, req.PaymentDate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Payment not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Success(c, payment)
}

// DeletePayment elimina un pago
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Payment ID is required")
		return
	}

	if err := h.svc.DeletePayment(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Payment not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"id": id})
}
