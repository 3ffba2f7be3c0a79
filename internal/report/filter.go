package report

import (
	"strconv"
	"strings"
	"time"
)

// FilterAll es el valor centinela de una dimensión inactiva. Una cadena
// vacía también se trata como inactiva.
const FilterAll = "all"

// FilterResult resultado de aplicar un filtro: los registros que pasan
// (en su orden original), cuántas dimensiones estaban activas y cuántos
// registros quedaron, para mostrar en el encabezado de la vista.
type FilterResult[T any] struct {
	Records     []T `json:"records"`
	ActiveCount int `json:"active_count"`
	ResultCount int `json:"result_count"`
}

func active(value string) bool {
	return value != "" && value != FilterAll
}

// containsFold contención de subcadena sin distinguir mayúsculas.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// sameOrAfter / sameOrBefore comparan solo la fecha calendario,
// ignorando la hora. Los límites son inclusivos.
func sameOrAfter(t, bound time.Time) bool {
	ty, tm, td := t.Date()
	by, bm, bd := bound.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return !a.Before(b)
}

func sameOrBefore(t, bound time.Time) bool {
	ty, tm, td := t.Date()
	by, bm, bd := bound.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return !a.After(b)
}

// parseDate acepta fechas "2006-01-02". Una cadena vacía o mal formada
// no impone restricción.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseAmount acepta montos en texto libre. Lo mal formado se ignora en
// lugar de fallar: viene de campos de texto del dashboard.
func parseAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExpenseFilter estado de filtros de la vista de gastos. El cero es un
// filtro sin dimensiones activas: Apply devuelve la colección completa.
type ExpenseFilter struct {
	Search      string `json:"search" form:"search"`
	Category    string `json:"category" form:"category"`
	ProjectID   string `json:"project_id" form:"project_id"`
	Responsible string `json:"responsible" form:"responsible"`
	// Status: "approved" o "pending".
	Status    string `json:"status" form:"status"`
	DateFrom  string `json:"date_from" form:"date_from"`
	DateTo    string `json:"date_to" form:"date_to"`
	AmountMin string `json:"amount_min" form:"amount_min"`
	AmountMax string `json:"amount_max" form:"amount_max"`
}

// ActiveCount cuántas dimensiones están activas. Un rango cuenta como
// una dimensión por extremo válido.
func (f ExpenseFilter) ActiveCount() int {
	n := 0
	if active(f.Search) {
		n++
	}
	if active(f.Category) {
		n++
	}
	if active(f.ProjectID) {
		n++
	}
	if active(f.Responsible) {
		n++
	}
	if active(f.Status) {
		n++
	}
	if _, ok := parseDate(f.DateFrom); ok {
		n++
	}
	if _, ok := parseDate(f.DateTo); ok {
		n++
	}
	if _, ok := parseAmount(f.AmountMin); ok {
		n++
	}
	if _, ok := parseAmount(f.AmountMax); ok {
		n++
	}
	return n
}

// Matches indica si el registro pasa todas las dimensiones activas.
func (f ExpenseFilter) Matches(r ExpenseRecord) bool {
	if active(f.Search) {
		if !containsFold(r.Description, f.Search) &&
			!containsFold(r.ProjectName, f.Search) &&
			!containsFold(r.Responsible, f.Search) {
			return false
		}
	}
	if active(f.Category) && r.Category != f.Category {
		return false
	}
	if active(f.ProjectID) && r.ProjectID != f.ProjectID {
		return false
	}
	if active(f.Responsible) && !containsFold(r.Responsible, f.Responsible) {
		return false
	}
	if active(f.Status) {
		switch f.Status {
		case "approved":
			if !r.Approved {
				return false
			}
		case "pending":
			if r.Approved {
				return false
			}
		}
	}
	if from, ok := parseDate(f.DateFrom); ok && !sameOrAfter(r.Date, from) {
		return false
	}
	if to, ok := parseDate(f.DateTo); ok && !sameOrBefore(r.Date, to) {
		return false
	}
	if min, ok := parseAmount(f.AmountMin); ok && r.Amount < min {
		return false
	}
	if max, ok := parseAmount(f.AmountMax); ok && r.Amount > max {
		return false
	}
	return true
}

// Apply filtra la colección. Puro y sin efectos: mismo insumo, mismo
// resultado, preservando el orden relativo original.
func (f ExpenseFilter) Apply(records []ExpenseRecord) FilterResult[ExpenseRecord] {
	out := make([]ExpenseRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return FilterResult[ExpenseRecord]{
		Records:     out,
		ActiveCount: f.ActiveCount(),
		ResultCount: len(out),
	}
}

// PaymentFilter estado de filtros de la vista de pagos.
type PaymentFilter struct {
	Search    string `json:"search" form:"search"`
	LaborType string `json:"labor_type" form:"labor_type"`
	ProjectID string `json:"project_id" form:"project_id"`
	WorkerID  string `json:"worker_id" form:"worker_id"`
	// Status: pendiente/pagado/cancelado.
	Status    string `json:"status" form:"status"`
	DateFrom  string `json:"date_from" form:"date_from"`
	DateTo    string `json:"date_to" form:"date_to"`
	AmountMin string `json:"amount_min" form:"amount_min"`
	AmountMax string `json:"amount_max" form:"amount_max"`
}

// ActiveCount cuántas dimensiones están activas.
func (f PaymentFilter) ActiveCount() int {
	n := 0
	if active(f.Search) {
		n++
	}
	if active(f.LaborType) {
		n++
	}
	if active(f.ProjectID) {
		n++
	}
	if active(f.WorkerID) {
		n++
	}
	if active(f.Status) {
		n++
	}
	if _, ok := parseDate(f.DateFrom); ok {
		n++
	}
	if _, ok := parseDate(f.DateTo); ok {
		n++
	}
	if _, ok := parseAmount(f.AmountMin); ok {
		n++
	}
	if _, ok := parseAmount(f.AmountMax); ok {
		n++
	}
	return n
}

// Matches indica si el pago pasa todas las dimensiones activas.
func (f PaymentFilter) Matches(r PaymentRecord) bool {
	if active(f.Search) {
		if !containsFold(r.Notes, f.Search) &&
			!containsFold(r.ProjectName, f.Search) &&
			!containsFold(r.WorkerName, f.Search) {
			return false
		}
	}
	if active(f.LaborType) && r.LaborType != f.LaborType {
		return false
	}
	if active(f.ProjectID) && r.ProjectID != f.ProjectID {
		return false
	}
	if active(f.WorkerID) && r.WorkerID != f.WorkerID {
		return false
	}
	if active(f.Status) && r.Status != f.Status {
		return false
	}
	if from, ok := parseDate(f.DateFrom); ok && !sameOrAfter(r.Date, from) {
		return false
	}
	if to, ok := parseDate(f.DateTo); ok && !sameOrBefore(r.Date, to) {
		return false
	}
	if min, ok := parseAmount(f.AmountMin); ok && r.Amount < min {
		return false
	}
	if max, ok := parseAmount(f.AmountMax); ok && r.Amount > max {
		return false
	}
	return true
}

// Apply filtra la colección de pagos preservando el orden.
func (f PaymentFilter) Apply(records []PaymentRecord) FilterResult[PaymentRecord] {
	out := make([]PaymentRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return FilterResult[PaymentRecord]{
		Records:     out,
		ActiveCount: f.ActiveCount(),
		ResultCount: len(out),
	}
}

// EvidenceFilter estado de filtros de la vista de evidencias.
type EvidenceFilter struct {
	Search    string `json:"search" form:"search"`
	Type      string `json:"type" form:"type"`
	ProjectID string `json:"project_id" form:"project_id"`
	DateFrom  string `json:"date_from" form:"date_from"`
	DateTo    string `json:"date_to" form:"date_to"`
}

// ActiveCount cuántas dimensiones están activas.
func (f EvidenceFilter) ActiveCount() int {
	n := 0
	if active(f.Search) {
		n++
	}
	if active(f.Type) {
		n++
	}
	if active(f.ProjectID) {
		n++
	}
	if _, ok := parseDate(f.DateFrom); ok {
		n++
	}
	if _, ok := parseDate(f.DateTo); ok {
		n++
	}
	return n
}

// Matches indica si la evidencia pasa todas las dimensiones activas.
func (f EvidenceFilter) Matches(r EvidenceRecord) bool {
	if active(f.Search) {
		if !containsFold(r.Description, f.Search) &&
			!containsFold(r.ProjectName, f.Search) &&
			!containsFold(r.FileName, f.Search) {
			return false
		}
	}
	if active(f.Type) && r.Type != f.Type {
		return false
	}
	if active(f.ProjectID) && r.ProjectID != f.ProjectID {
		return false
	}
	if from, ok := parseDate(f.DateFrom); ok && !sameOrAfter(r.Date, from) {
		return false
	}
	if to, ok := parseDate(f.DateTo); ok && !sameOrBefore(r.Date, to) {
		return false
	}
	return true
}

// Apply filtra la colección de evidencias preservando el orden.
func (f EvidenceFilter) Apply(records []EvidenceRecord) FilterResult[EvidenceRecord] {
	out := make([]EvidenceRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return FilterResult[EvidenceRecord]{
		Records:     out,
		ActiveCount: f.ActiveCount(),
		ResultCount: len(out),
	}
}
