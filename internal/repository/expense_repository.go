package repository

import (
	"context"
	"errors"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"gorm.io/gorm"
)

// ExpenseRepository repositorio de gastos
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository crea el repositorio de gastos
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// FindByID busca un gasto por ID
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("id = ?", id).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// ListBySupervisor lista los gastos de todos los proyectos del supervisor,
// con el proyecto precargado. Orden estable para que los filtros en
// memoria preserven un orden determinista.
func (r *ExpenseRepository) ListBySupervisor(ctx context.Context, supervisorID string) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).
		Preload("Project").
		Joins("JOIN proyectos ON proyectos.id = gastos_proyecto.proyecto_id").
		Where("proyectos.supervisor_id = ?", supervisorID).
		Order("gastos_proyecto.fecha_gasto DESC, gastos_proyecto.id").
		Find(&expenses).Error
	return expenses, err
}

// ListByProject lista los gastos de un proyecto
func (r *ExpenseRepository) ListByProject(ctx context.Context, projectID string) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).
		Where("proyecto_id = ?", projectID).
		Order("fecha_gasto DESC, id").
		Find(&expenses).Error
	return expenses, err
}

// Create crea un gasto
func (r *ExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// Update actualiza un gasto completo
func (r *ExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete elimina un gasto
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Expense{}).Error
}

// CountByProject cuenta los gastos asociados a un proyecto
func (r *ExpenseRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Expense{}).
		Where("proyecto_id = ?", projectID).
		Count(&count).Error
	return count, err
}

// SumByProject suma los montos de los gastos de un proyecto
func (r *ExpenseRepository) SumByProject(ctx context.Context, projectID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entity.Expense{}).
		Where("proyecto_id = ?", projectID).
		Select("COALESCE(SUM(monto), 0)").
		Scan(&total).Error
	return total, err
}

// TotalsBySupervisor totales de gastos del supervisor, divididos por
// estado de aprobación
func (r *ExpenseRepository) TotalsBySupervisor(ctx context.Context, supervisorID string) (total, approved float64, count int64, err error) {
	row := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(g.monto), 0) as total,
			COALESCE(SUM(CASE WHEN g.aprobado THEN g.monto ELSE 0 END), 0) as approved,
			COUNT(*) as count
		FROM gastos_proyecto g
		JOIN proyectos p ON p.id = g.proyecto_id
		WHERE p.supervisor_id = ?
	`, supervisorID).Row()
	err = row.Scan(&total, &approved, &count)
	return total, approved, count, err
}
