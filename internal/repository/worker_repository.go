package repository

import (
	"context"
	"errors"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"gorm.io/gorm"
)

// WorkerRepository repositorio de trabajadores
type WorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository crea el repositorio de trabajadores
func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// FindByID busca un trabajador por ID
func (r *WorkerRepository) FindByID(ctx context.Context, id string) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// List lista trabajadores, opcionalmente solo los activos
func (r *WorkerRepository) List(ctx context.Context, activeOnly bool) ([]entity.Worker, error) {
	var workers []entity.Worker
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("activo = ?", true)
	}
	err := query.Order("nombre, id").Find(&workers).Error
	return workers, err
}

// ExistsActiveNationalID indica si otra persona activa ya usa la cédula
func (r *WorkerRepository) ExistsActiveNationalID(ctx context.Context, nationalID, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entity.Worker{}).
		Where("cedula = ? AND activo = ?", nationalID, true)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Create crea un trabajador
func (r *WorkerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

// Update actualiza un trabajador completo
func (r *WorkerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

// Delete elimina un trabajador. El guardián de pagos asociados vive en el
// servicio; aquí solo se ejecuta el borrado.
func (r *WorkerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Worker{}).Error
}

// Deactivate marca un trabajador como inactivo
func (r *WorkerRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Worker{}).
		Where("id = ?", id).
		Update("activo", false).Error
}
