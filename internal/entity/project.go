package entity

import (
	"time"
)

// Estados de proyecto.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusFinished  = "finished"
	ProjectStatusCancelled = "cancelled"
)

// Project proyecto cultural. El presupuesto ejecutado es una columna
// persistida que se recalcula como SUM(gastos.monto) después de cada
// mutación de gastos; las lecturas nunca lo re-derivan.
type Project struct {
	ID             string     `json:"id" gorm:"primaryKey;size:32"`
	Name           string     `json:"name" gorm:"column:nombre;size:200;not null"`
	Description    string     `json:"description" gorm:"column:descripcion;type:text"`
	TotalBudget    float64    `json:"total_budget" gorm:"column:presupuesto_total;type:decimal(15,2);not null;default:0"`
	ExecutedBudget float64    `json:"executed_budget" gorm:"column:presupuesto_ejecutado;type:decimal(15,2);not null;default:0"`
	StartDate      *time.Time `json:"start_date" gorm:"column:fecha_inicio;type:date"`
	EndDate        *time.Time `json:"end_date" gorm:"column:fecha_fin;type:date"`
	Status         string     `json:"status" gorm:"column:estado;size:16;not null;default:planning"`
	SupervisorID   string     `json:"supervisor_id" gorm:"column:supervisor_id;size:32;not null;index"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Asociaciones
	Expenses []Expense  `json:"expenses,omitempty" gorm:"foreignKey:ProjectID"`
	Payments []Payment  `json:"payments,omitempty" gorm:"foreignKey:ProjectID"`
	Evidence []Evidence `json:"evidence,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string {
	return "proyectos"
}
