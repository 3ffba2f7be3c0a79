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

var validLaborTypes = map[string]bool{
	entity.LaborTypeWorkshop:     true,
	entity.LaborTypePresentation: true,
	entity.LaborTypeLogistics:    true,
	entity.LaborTypeProduction:   true,
	entity.LaborTypeInstruction:  true,
	entity.LaborTypeOther:        true,
}

var validPaymentStatuses = map[string]bool{
	entity.PaymentStatusPending:   true,
	entity.PaymentStatusPaid:      true,
	entity.PaymentStatusCancelled: true,
}

// PaymentService servicio de pagos a personal
type PaymentService struct {
	payments *repository.PaymentRepository
	projects *repository.ProjectRepository
	workers  *repository.WorkerRepository
	bus      *events.Bus
}

// NewPaymentService crea el servicio de pagos
func NewPaymentService(payments *repository.PaymentRepository, projects *repository.ProjectRepository, workers *repository.WorkerRepository, bus *events.Bus) *PaymentService {
	return &PaymentService{payments: payments, projects: projects, workers: workers, bus: bus}
}

// CreatePaymentRequest datos para registrar un pago
type CreatePaymentRequest struct {
	ProjectID string   `json:"project_id" binding:"required"`
	WorkerID  string   `json:"worker_id" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	LaborType string   `json:"labor_type" binding:"required"`
	Hours     *float64 `json:"hours"`
	Amount    float64  `json:"amount" binding:"required"`
	Notes     string   `json:"notes"`
}

// UpdatePaymentRequest datos para actualizar un pago
type UpdatePaymentRequest struct {
	Date      *string  `json:"date"`
	LaborType *string  `json:"labor_type"`
	Hours     *float64 `json:"hours"`
	Amount    *float64 `json:"amount"`
	Notes     *string  `json:"notes"`
}

// ListPayments lista los pagos de los proyectos del supervisor
func (s *PaymentService) ListPayments(ctx context.Context, supervisorID string) ([]entity.Payment, error) {
	return s.payments.ListBySupervisor(ctx, supervisorID)
}

// GetPayment obtiene un pago por ID
func (s *PaymentService) GetPayment(ctx context.Context, id string) (*entity.Payment, error) {
	return s.payments.FindByID(ctx, id)
}

// CreatePayment registra un pago en estado pendiente
func (s *PaymentService) CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*entity.Payment, error) {
	if !validLaborTypes[req.LaborType] {
		return nil, fmt.Errorf("tipo de labor inválido: %s", req.LaborType)
	}
	if req.Amount <= 0 {
		return nil, errors.New("el valor acordado debe ser positivo")
	}
	if req.Hours != nil && *req.Hours <= 0 {
		return nil, errors.New("las horas trabajadas deben ser positivas")
	}
	if _, err := s.projects.FindByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("proyecto no encontrado: %w", err)
	}
	worker, err := s.workers.FindByID(ctx, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("trabajador no encontrado: %w", err)
	}
	if !worker.Active {
		return nil, errors.New("el trabajador está inactivo")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q", req.Date)
	}

	payment := &entity.Payment{
		ID:        newID(),
		ProjectID: req.ProjectID,
		WorkerID:  req.WorkerID,
		Date:      date,
		LaborType: req.LaborType,
		Hours:     req.Hours,
		Amount:    req.Amount,
		Status:    entity.PaymentStatusPending,
		Notes:     req.Notes,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityPayment, ID: payment.ID, Action: events.ActionCreated})
	return payment, nil
}

// UpdatePayment actualiza los datos de un pago
func (s *PaymentService) UpdatePayment(ctx context.Context, id string, req *UpdatePaymentRequest) (*entity.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida %q", *req.Date)
		}
		payment.Date = date
	}
	if req.LaborType != nil {
		if !validLaborTypes[*req.LaborType] {
			return nil, fmt.Errorf("tipo de labor inválido: %s", *req.LaborType)
		}
		payment.LaborType = *req.LaborType
	}
	if req.Hours != nil {
		if *req.Hours <= 0 {
			return nil, errors.New("las horas trabajadas deben ser positivas")
		}
		payment.Hours = req.Hours
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, errors.New("el valor acordado debe ser positivo")
		}
		payment.Amount = *req.Amount
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}

	payment.Project = nil
	payment.Worker = nil
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityPayment, ID: payment.ID, Action: events.ActionUpdated})
	return payment, nil
}

// UpdatePaymentStatus cambia el estado del pago. Pasar a pagado fija la
// fecha de pago si no venía una.
func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, id, status string, paymentDate *string) (*entity.Payment, error) {
	if !validPaymentStatuses[status] {
		return nil, fmt.Errorf("estado de pago inválido: %s", status)
	}
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payment.Status = status
	switch status {
	case entity.PaymentStatusPaid:
		if paymentDate != nil && *paymentDate != "" {
			date, err := time.Parse("2006-01-02", *paymentDate)
			if err != nil {
				return nil, fmt.Errorf("fecha de pago inválida %q", *paymentDate)
			}
			payment.PaymentDate = &date
		} else if payment.PaymentDate == nil {
			now := time.Now()
			payment.PaymentDate = &now
		}
	default:
		payment.PaymentDate = nil
	}

	payment.Project = nil
	payment.Worker = nil
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityPayment, ID: payment.ID, Action: events.ActionUpdated})
	return payment, nil
}

// DeletePayment elimina un pago
func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	if _, err := s.payments.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.payments.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Change{Entity: events.EntityPayment, ID: id, Action: events.ActionDeleted})
	return nil
}
