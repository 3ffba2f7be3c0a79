package repository

import (
	"context"
	"errors"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"gorm.io/gorm"
)

// PaymentRepository repositorio de pagos a personal
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository crea el repositorio de pagos
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// FindByID busca un pago por ID
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Worker").
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// ListBySupervisor lista los pagos de todos los proyectos del supervisor,
// con proyecto y trabajador precargados
func (r *PaymentRepository) ListBySupervisor(ctx context.Context, supervisorID string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Worker").
		Joins("JOIN proyectos ON proyectos.id = pagos_personal.proyecto_id").
		Where("proyectos.supervisor_id = ?", supervisorID).
		Order("pagos_personal.fecha_actividad DESC, pagos_personal.id").
		Find(&payments).Error
	return payments, err
}

// ListByProject lista los pagos de un proyecto
func (r *PaymentRepository) ListByProject(ctx context.Context, projectID string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("proyecto_id = ?", projectID).
		Order("fecha_actividad DESC, id").
		Find(&payments).Error
	return payments, err
}

// Create crea un pago
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Update actualiza un pago completo
func (r *PaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete elimina un pago
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Payment{}).Error
}

// CountByWorker cuenta los pagos asociados a un trabajador
func (r *PaymentRepository) CountByWorker(ctx context.Context, workerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Payment{}).
		Where("trabajador_id = ?", workerID).
		Count(&count).Error
	return count, err
}

// CountByProject cuenta los pagos asociados a un proyecto
func (r *PaymentRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Payment{}).
		Where("proyecto_id = ?", projectID).
		Count(&count).Error
	return count, err
}

// TotalsBySupervisor totales de pagos del supervisor, divididos por
// estado. El pendiente se suma aparte: los cancelados no son deuda.
func (r *PaymentRepository) TotalsBySupervisor(ctx context.Context, supervisorID string) (total, paid, pending float64, count int64, err error) {
	row := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(pp.valor_acordado), 0) as total,
			COALESCE(SUM(CASE WHEN pp.estado_pago = 'pagado' THEN pp.valor_acordado ELSE 0 END), 0) as paid,
			COALESCE(SUM(CASE WHEN pp.estado_pago = 'pendiente' THEN pp.valor_acordado ELSE 0 END), 0) as pending,
			COUNT(*) as count
		FROM pagos_personal pp
		JOIN proyectos p ON p.id = pp.proyecto_id
		WHERE p.supervisor_id = ?
	`, supervisorID).Row()
	err = row.Scan(&total, &paid, &pending, &count)
	return total, paid, pending, count, err
}
