package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
)

var validEvidenceTypes = map[string]bool{
	entity.EvidenceTypePhoto:    true,
	entity.EvidenceTypeVideo:    true,
	entity.EvidenceTypeAudio:    true,
	entity.EvidenceTypeDocument: true,
	entity.EvidenceTypeOther:    true,
}

// EvidenceService servicio de evidencias. El archivo en sí vive en el
// almacenamiento externo; el servicio gestiona los metadatos y la URL.
type EvidenceService struct {
	evidence *repository.EvidenceRepository
	projects *repository.ProjectRepository
	bus      *events.Bus
}

// NewEvidenceService crea el servicio de evidencias
func NewEvidenceService(evidence *repository.EvidenceRepository, projects *repository.ProjectRepository, bus *events.Bus) *EvidenceService {
	return &EvidenceService{evidence: evidence, projects: projects, bus: bus}
}

// CreateEvidenceRequest datos para registrar una evidencia
type CreateEvidenceRequest struct {
	ProjectID   string `json:"project_id" binding:"required"`
	Type        string `json:"type" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	FileURL     string `json:"file_url" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
	FileSize    int64  `json:"file_size"`
}

// UpdateEvidenceRequest datos para actualizar una evidencia
type UpdateEvidenceRequest struct {
	Type        *string `json:"type"`
	FileName    *string `json:"file_name"`
	FileURL     *string `json:"file_url"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	FileSize    *int64  `json:"file_size"`
}

// ListEvidence lista las evidencias de los proyectos del supervisor
func (s *EvidenceService) ListEvidence(ctx context.Context, supervisorID string) ([]entity.Evidence, error) {
	return s.evidence.ListBySupervisor(ctx, supervisorID)
}

// GetEvidence obtiene una evidencia por ID
func (s *EvidenceService) GetEvidence(ctx context.Context, id string) (*entity.Evidence, error) {
	return s.evidence.FindByID(ctx, id)
}

// CreateEvidence registra una evidencia
func (s *EvidenceService) CreateEvidence(ctx context.Context, req *CreateEvidenceRequest) (*entity.Evidence, error) {
	if !validEvidenceTypes[req.Type] {
		return nil, fmt.Errorf("tipo de evidencia inválido: %s", req.Type)
	}
	if _, err := s.projects.FindByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("proyecto no encontrado: %w", err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q", req.Date)
	}

	evidence := &entity.Evidence{
		ID:          newID(),
		ProjectID:   req.ProjectID,
		Type:        req.Type,
		FileName:    req.FileName,
		FileURL:     req.FileURL,
		Date:        date,
		Description: req.Description,
		FileSize:    req.FileSize,
	}
	if err := s.evidence.Create(ctx, evidence); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityEvidence, ID: evidence.ID, Action: events.ActionCreated})
	return evidence, nil
}

// UpdateEvidence actualiza una evidencia
func (s *EvidenceService) UpdateEvidence(ctx context.Context, id string, req *UpdateEvidenceRequest) (*entity.Evidence, error) {
	evidence, err := s.evidence.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if !validEvidenceTypes[*req.Type] {
			return nil, fmt.Errorf("tipo de evidencia inválido: %s", *req.Type)
		}
		evidence.Type = *req.Type
	}
	if req.FileName != nil {
		evidence.FileName = *req.FileName
	}
	if req.FileURL != nil {
		evidence.FileURL = *req.FileURL
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida %q", *req.Date)
		}
		evidence.Date = date
	}
	if req.Description != nil {
		evidence.Description = *req.Description
	}
	if req.FileSize != nil {
		evidence.FileSize = *req.FileSize
	}

	evidence.Project = nil
	if err := s.evidence.Update(ctx, evidence); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{Entity: events.EntityEvidence, ID: evidence.ID, Action: events.ActionUpdated})
	return evidence, nil
}

// DeleteEvidence elimina una evidencia
func (s *EvidenceService) DeleteEvidence(ctx context.Context, id string) error {
	if _, err := s.evidence.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.evidence.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Change{Entity: events.EntityEvidence, ID: id, Action: events.ActionDeleted})
	return nil
}
