package entity

import (
	"time"
)

// Worker integrante del equipo de trabajo. No se elimina físicamente si
// tiene pagos asociados; se desactiva.
type Worker struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	Name       string    `json:"name" gorm:"column:nombre;size:200;not null"`
	NationalID string    `json:"national_id" gorm:"column:cedula;size:20;not null;index"`
	Phone      string    `json:"phone" gorm:"column:telefono;size:20"`
	Email      string    `json:"email" gorm:"column:correo;size:200"`
	Specialty  string    `json:"specialty" gorm:"column:especialidad;size:100"`
	HourlyRate *float64  `json:"hourly_rate" gorm:"column:tarifa_hora;type:decimal(12,2)"`
	Active     bool      `json:"active" gorm:"column:activo;not null;default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Asociaciones
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:WorkerID"`
}

func (Worker) TableName() string {
	return "trabajadores"
}
