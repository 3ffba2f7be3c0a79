package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
)

// ErrWorkerHasPayments se devuelve al intentar eliminar un trabajador
// con pagos asociados; la alternativa es desactivarlo.
var ErrWorkerHasPayments = errors.New("el trabajador tiene pagos asociados; desactívelo en su lugar")

// WorkerService servicio de trabajadores
type WorkerService struct {
	workers  *repository.WorkerRepository
	payments *repository.PaymentRepository
	bus      *events.Bus
}

// NewWorkerService crea el servicio de trabajadores
func NewWorkerService(workers *repository.WorkerRepository, payments *repository.PaymentRepository, bus *events.Bus) *WorkerService {
	return &WorkerService{workers: workers, payments: payments, bus: bus}
}

// CreateWorkerRequest datos para registrar un trabajador
type CreateWorkerRequest struct {
	Name       string   `json:"name" binding:"required"`
	NationalID string   `json:"national_id" binding:"required"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Specialty  string   `json:"specialty"`
	HourlyRate *float64 `json:"hourly_rate"`
}

// UpdateWorkerRequest datos para actualizar un trabajador
type UpdateWorkerRequest struct {
	Name       *string  `json:"name"`
	NationalID *string  `json:"national_id"`
	Phone      *string  `json:"phone"`
	Email      *string  `json:"email"`
	Specialty  *string  `json:"specialty"`
	HourlyRate *float64 `json:"hourly_rate"`
	Active     *bool    `json:"active"`
}

// ListWorkers lista trabajadores
func (s *WorkerService) ListWorkers(ctx context.Context, activeOnly bool) ([]entity.Worker, error) {
	return s.workers.List(ctx, activeOnly)
}

// GetWorker obtiene un trabajador por ID
func (s *WorkerService) GetWorker(ctx context.Context, id string) (*entity.Worker, error) {
	return s.workers.FindByID(ctx, id)
}

// CreateWorker registra un trabajador. La cédula debe ser única entre
// los trabajadores activos.
func (s *WorkerService) CreateWorker(ctx context.Context, req *CreateWorkerRequest) (*entity.Worker, error) {
	exists, err := s.workers.ExistsActiveNationalID(ctx, req.NationalID, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("ya existe un trabajador activo con cédula %s", req.NationalID)
	}
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return nil, errors.New("la tarifa por hora no puede ser negativa")
	}

	worker := &entity.Worker{
		ID:         newID(),
		Name:       req.Name,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Email:      req.Email,
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
		Active:     true,
	}
	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityWorker, ID: worker.ID, Action: events.ActionCreated})
	return worker, nil
}

// UpdateWorker actualiza un trabajador
func (s *WorkerService) UpdateWorker(ctx context.Context, id string, req *UpdateWorkerRequest) (*entity.Worker, error) {
	worker, err := s.workers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NationalID != nil && *req.NationalID != worker.NationalID {
		exists, err := s.workers.ExistsActiveNationalID(ctx, *req.NationalID, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("ya existe un trabajador activo con cédula %s", *req.NationalID)
		}
		worker.NationalID = *req.NationalID
	}
	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.Phone != nil {
		worker.Phone = *req.Phone
	}
	if req.Email != nil {
		worker.Email = *req.Email
	}
	if req.Specialty != nil {
		worker.Specialty = *req.Specialty
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			return nil, errors.New("la tarifa por hora no puede ser negativa")
		}
		worker.HourlyRate = req.HourlyRate
	}
	if req.Active != nil {
		worker.Active = *req.Active
	}

	if err := s.workers.Update(ctx, worker); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityWorker, ID: worker.ID, Action: events.ActionUpdated})
	return worker, nil
}

// DeleteWorker elimina un trabajador solo si no tiene pagos asociados.
func (s *WorkerService) DeleteWorker(ctx context.Context, id string) error {
	if _, err := s.workers.FindByID(ctx, id); err != nil {
		return err
	}
	count, err := s.payments.CountByWorker(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrWorkerHasPayments
	}
	if err := s.workers.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(events.Change{Entity: events.EntityWorker, ID: id, Action: events.ActionDeleted})
	return nil
}

// DeactivateWorker marca un trabajador como inactivo, dejando su
// historial de pagos intacto.
func (s *WorkerService) DeactivateWorker(ctx context.Context, id string) error {
	if _, err := s.workers.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.workers.Deactivate(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(events.Change{Entity: events.EntityWorker, ID: id, Action: events.ActionUpdated})
	return nil
}
