// Package report contiene el motor de filtros y los exportadores
// (CSV, libro de Excel y PDF) que operan sobre las colecciones ya
// unidas de gastos, pagos y evidencias.
package report

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNoRecords se devuelve cuando se intenta exportar una colección
// vacía; se lanza antes de generar cualquier byte.
var ErrNoRecords = errors.New("no hay registros para exportar")

// ExpenseRecord gasto unido con los datos de su proyecto.
type ExpenseRecord struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Responsible string    `json:"responsible"`
	Approved    bool      `json:"approved"`
	Notes       string    `json:"notes"`
}

// PaymentRecord pago unido con proyecto y trabajador.
type PaymentRecord struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	ProjectName string     `json:"project_name"`
	WorkerID    string     `json:"worker_id"`
	WorkerName  string     `json:"worker_name"`
	LaborType   string     `json:"labor_type"`
	Date        time.Time  `json:"date"`
	Hours       *float64   `json:"hours"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"payment_date"`
	Notes       string     `json:"notes"`
}

// EvidenceRecord evidencia unida con su proyecto.
type EvidenceRecord struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Type        string    `json:"type"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	FileSize    int64     `json:"file_size"`
}

// ProjectSummary resumen de proyecto para el reporte consolidado.
type ProjectSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	TotalBudget    float64 `json:"total_budget"`
	ExecutedBudget float64 `json:"executed_budget"`
}

var spanishWeekdays = [...]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// WeekdayName nombre del día de la semana en español.
func WeekdayName(t time.Time) string {
	return spanishWeekdays[int(t.Weekday())]
}

// MonthName nombre del mes en español.
func MonthName(t time.Time) string {
	return spanishMonths[int(t.Month())-1]
}

// Quarter trimestre calendario, "T1".."T4".
func Quarter(t time.Time) string {
	return fmt.Sprintf("T%d", (int(t.Month())-1)/3+1)
}

// placeholder reemplaza los campos vacíos en los exportes: nunca una
// celda vacía, para que las hojas de cálculo no desalineen columnas.
func placeholder(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// percentage porcentaje a un decimal, con guardia de denominador cero.
func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(part/total*1000) / 10
}
