package repository

import (
	"context"
	"errors"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"gorm.io/gorm"
)

// EvidenceRepository repositorio de evidencias
type EvidenceRepository struct {
	db *gorm.DB
}

// NewEvidenceRepository crea el repositorio de evidencias
func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository {
	return &EvidenceRepository{db: db}
}

// FindByID busca una evidencia por ID
func (r *EvidenceRepository) FindByID(ctx context.Context, id string) (*entity.Evidence, error) {
	var evidence entity.Evidence
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("id = ?", id).
		First(&evidence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &evidence, nil
}

// ListBySupervisor lista las evidencias de los proyectos del supervisor
func (r *EvidenceRepository) ListBySupervisor(ctx context.Context, supervisorID string) ([]entity.Evidence, error) {
	var evidence []entity.Evidence
	err := r.db.WithContext(ctx).
		Preload("Project").
		Joins("JOIN proyectos ON proyectos.id = evidencias_proyecto.proyecto_id").
		Where("proyectos.supervisor_id = ?", supervisorID).
		Order("evidencias_proyecto.fecha_actividad DESC, evidencias_proyecto.id").
		Find(&evidence).Error
	return evidence, err
}

// ListByProject lista las evidencias de un proyecto
func (r *EvidenceRepository) ListByProject(ctx context.Context, projectID string) ([]entity.Evidence, error) {
	var evidence []entity.Evidence
	err := r.db.WithContext(ctx).
		Where("proyecto_id = ?", projectID).
		Order("fecha_actividad DESC, id").
		Find(&evidence).Error
	return evidence, err
}

// CountByProject cuenta las evidencias asociadas a un proyecto
func (r *EvidenceRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Evidence{}).
		Where("proyecto_id = ?", projectID).
		Count(&count).Error
	return count, err
}

// Create crea una evidencia
func (r *EvidenceRepository) Create(ctx context.Context, evidence *entity.Evidence) error {
	return r.db.WithContext(ctx).Create(evidence).Error
}

// Update actualiza una evidencia completa
func (r *EvidenceRepository) Update(ctx context.Context, evidence *entity.Evidence) error {
	return r.db.WithContext(ctx).Save(evidence).Error
}

// Delete elimina una evidencia
func (r *EvidenceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Evidence{}).Error
}
