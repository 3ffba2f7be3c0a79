package repository

import (
	"context"
	"errors"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"gorm.io/gorm"
)

// ProjectRepository repositorio de proyectos
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository crea el repositorio de proyectos
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID busca un proyecto por ID
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// ListBySupervisor lista los proyectos del supervisor, con filtros opcionales
func (r *ProjectRepository) ListBySupervisor(ctx context.Context, supervisorID string, filters map[string]interface{}) ([]entity.Project, error) {
	var projects []entity.Project

	query := r.db.WithContext(ctx).
		Where("supervisor_id = ?", supervisorID)

	if status, ok := filters["status"].(string); ok && status != "" && status != "all" {
		query = query.Where("estado = ?", status)
	}
	if keyword, ok := filters["keyword"].(string); ok && keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("nombre ILIKE ? OR descripcion ILIKE ?", like, like)
	}

	err := query.
		Order("fecha_inicio DESC NULLS LAST, id").
		Find(&projects).Error

	return projects, err
}

// Create crea un proyecto
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update actualiza un proyecto completo
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete elimina un proyecto
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Project{}).Error
}

// UpdateExecutedBudget fija el presupuesto ejecutado persistido
func (r *ProjectRepository) UpdateExecutedBudget(ctx context.Context, id string, executed float64) error {
	return r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Where("id = ?", id).
		Update("presupuesto_ejecutado", executed).Error
}

// IDsBySupervisor devuelve los IDs de proyectos del supervisor, para
// filtrar colecciones hijas sin traer los proyectos completos
func (r *ProjectRepository) IDsBySupervisor(ctx context.Context, supervisorID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Where("supervisor_id = ?", supervisorID).
		Pluck("id", &ids).Error
	return ids, err
}

// CountByStatus cuenta proyectos del supervisor por estado
func (r *ProjectRepository) CountByStatus(ctx context.Context, supervisorID string) (map[string]int64, error) {
	type row struct {
		Estado string
		Total  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Select("estado, COUNT(*) as total").
		Where("supervisor_id = ?", supervisorID).
		Group("estado").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Estado] = r.Total
	}
	return counts, nil
}
