package entity

import "strings"

// Tablas de etiquetas centralizadas. Las usan tanto los listados del
// dashboard como los exportadores, para que la taxonomía mostrada y la
// reportada no se separen nunca. Un código sin etiqueta se muestra en
// mayúsculas tal cual.

var expenseCategoryLabels = map[string]string{
	ExpenseCategoryFees:         "HONORARIOS",
	ExpenseCategoryRefreshments: "REFRIGERIOS",
	ExpenseCategoryTransport:    "TRANSPORTE",
	ExpenseCategoryMaterials:    "MATERIALES",
	ExpenseCategoryServices:     "SERVICIOS",
	ExpenseCategoryOther:        "OTROS GASTOS",
}

var laborTypeLabels = map[string]string{
	LaborTypeWorkshop:     "TALLER",
	LaborTypePresentation: "PRESENTACIÓN",
	LaborTypeLogistics:    "LOGÍSTICA",
	LaborTypeProduction:   "PRODUCCIÓN",
	LaborTypeInstruction:  "INSTRUCCIÓN",
	LaborTypeOther:        "OTRA LABOR",
}

var paymentStatusLabels = map[string]string{
	PaymentStatusPending:   "PENDIENTE",
	PaymentStatusPaid:      "PAGADO",
	PaymentStatusCancelled: "CANCELADO",
}

var projectStatusLabels = map[string]string{
	ProjectStatusPlanning:  "EN PLANEACIÓN",
	ProjectStatusActive:    "EN EJECUCIÓN",
	ProjectStatusFinished:  "FINALIZADO",
	ProjectStatusCancelled: "CANCELADO",
}

var evidenceTypeLabels = map[string]string{
	EvidenceTypePhoto:    "FOTOGRAFÍA",
	EvidenceTypeVideo:    "VIDEO",
	EvidenceTypeAudio:    "AUDIO",
	EvidenceTypeDocument: "DOCUMENTO",
	EvidenceTypeOther:    "OTRO",
}

func labelOrUpper(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return strings.ToUpper(code)
}

// ExpenseCategoryLabel etiqueta de la categoría de gasto.
func ExpenseCategoryLabel(code string) string {
	return labelOrUpper(expenseCategoryLabels, code)
}

// LaborTypeLabel etiqueta del tipo de labor.
func LaborTypeLabel(code string) string {
	return labelOrUpper(laborTypeLabels, code)
}

// PaymentStatusLabel etiqueta del estado de pago.
func PaymentStatusLabel(code string) string {
	return labelOrUpper(paymentStatusLabels, code)
}

// ProjectStatusLabel etiqueta del estado de proyecto.
func ProjectStatusLabel(code string) string {
	return labelOrUpper(projectStatusLabels, code)
}

// EvidenceTypeLabel etiqueta del tipo de evidencia.
func EvidenceTypeLabel(code string) string {
	return labelOrUpper(evidenceTypeLabels, code)
}

// ApprovalLabel etiqueta del indicador de aprobación de un gasto.
func ApprovalLabel(approved bool) string {
	if approved {
		return "APROBADO"
	}
	return "PENDIENTE"
}
