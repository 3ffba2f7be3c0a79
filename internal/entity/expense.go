package entity

import (
	"time"
)

// Categorías de gasto.
const (
	ExpenseCategoryFees         = "honorarios"
	ExpenseCategoryRefreshments = "refrigerios"
	ExpenseCategoryTransport    = "transporte"
	ExpenseCategoryMaterials    = "materiales"
	ExpenseCategoryServices     = "servicios"
	ExpenseCategoryOther        = "otros"
)

// Expense gasto imputado a un proyecto.
type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	ProjectID   string    `json:"project_id" gorm:"column:proyecto_id;size:32;not null;index"`
	Category    string    `json:"category" gorm:"column:categoria;size:32;not null"`
	Description string    `json:"description" gorm:"column:descripcion;size:500;not null"`
	Amount      float64   `json:"amount" gorm:"column:monto;type:decimal(15,2);not null"`
	Date        time.Time `json:"date" gorm:"column:fecha_gasto;type:date;not null;index"`
	Responsible string    `json:"responsible" gorm:"column:responsable;size:200"`
	Approved    bool      `json:"approved" gorm:"column:aprobado;not null;default:false"`
	Notes       string    `json:"notes" gorm:"column:notas;type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Asociaciones
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Expense) TableName() string {
	return "gastos_proyecto"
}
