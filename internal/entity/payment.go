package entity

import (
	"time"
)

// Estados de pago.
const (
	PaymentStatusPending   = "pendiente"
	PaymentStatusPaid      = "pagado"
	PaymentStatusCancelled = "cancelado"
)

// Tipos de labor.
const (
	LaborTypeWorkshop     = "taller"
	LaborTypePresentation = "presentacion"
	LaborTypeLogistics    = "logistica"
	LaborTypeProduction   = "produccion"
	LaborTypeInstruction  = "instruccion"
	LaborTypeOther        = "otra"
)

// Payment pago a personal por una actividad de proyecto.
type Payment struct {
	ID          string     `json:"id" gorm:"primaryKey;size:32"`
	ProjectID   string     `json:"project_id" gorm:"column:proyecto_id;size:32;not null;index"`
	WorkerID    string     `json:"worker_id" gorm:"column:trabajador_id;size:32;not null;index"`
	Date        time.Time  `json:"date" gorm:"column:fecha_actividad;type:date;not null;index"`
	LaborType   string     `json:"labor_type" gorm:"column:tipo_labor;size:32;not null"`
	Hours       *float64   `json:"hours" gorm:"column:horas_trabajadas;type:decimal(6,2)"`
	Amount      float64    `json:"amount" gorm:"column:valor_acordado;type:decimal(15,2);not null"`
	Status      string     `json:"status" gorm:"column:estado_pago;size:16;not null;default:pendiente"`
	PaymentDate *time.Time `json:"payment_date" gorm:"column:fecha_pago;type:date"`
	Notes       string     `json:"notes" gorm:"column:notas;type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Asociaciones
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Worker  *Worker  `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

func (Payment) TableName() string {
	return "pagos_personal"
}
