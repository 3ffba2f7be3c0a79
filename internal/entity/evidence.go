package entity

import (
	"time"
)

// Tipos de evidencia.
const (
	EvidenceTypePhoto    = "foto"
	EvidenceTypeVideo    = "video"
	EvidenceTypeAudio    = "audio"
	EvidenceTypeDocument = "documento"
	EvidenceTypeOther    = "otro"
)

// Evidence evidencia digital de una actividad. El archivo vive en el
// almacenamiento externo; aquí solo se guarda la URL y los metadatos.
type Evidence struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	ProjectID   string    `json:"project_id" gorm:"column:proyecto_id;size:32;not null;index"`
	Type        string    `json:"type" gorm:"column:tipo_evidencia;size:16;not null"`
	FileName    string    `json:"file_name" gorm:"column:nombre_archivo;size:300;not null"`
	FileURL     string    `json:"file_url" gorm:"column:url_archivo;size:500;not null"`
	Date        time.Time `json:"date" gorm:"column:fecha_actividad;type:date;not null;index"`
	Description string    `json:"description" gorm:"column:descripcion;type:text"`
	FileSize    int64     `json:"file_size" gorm:"column:tamano_archivo;not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Asociaciones
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Evidence) TableName() string {
	return "evidencias_proyecto"
}
