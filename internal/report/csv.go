package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
)

// utf8BOM al inicio del archivo para que Excel en locales latinos
// muestre bien los acentos.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var expenseCSVHeaders = []string{
	"ID", "Proyecto", "Categoría", "Descripción", "Responsable",
	"Fecha", "Día", "Mes", "Año", "Trimestre",
	"Monto", "Monto Formateado", "Estado", "Notas",
}

// ExpensesCSV serializa los gastos a CSV. Devuelve el contenido y el
// nombre de archivo con la fecha del día.
func ExpensesCSV(records []ExpenseRecord) ([]byte, string, error) {
	if len(records) == 0 {
		return nil, "", ErrNoRecords
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	if err := w.Write(expenseCSVHeaders); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID,
			placeholder(r.ProjectName, "N/A"),
			entity.ExpenseCategoryLabel(r.Category),
			r.Description,
			placeholder(r.Responsible, "SIN ESPECIFICAR"),
			r.Date.Format("2006-01-02"),
			WeekdayName(r.Date),
			MonthName(r.Date),
			strconv.Itoa(r.Date.Year()),
			Quarter(r.Date),
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
			FormatCOP(r.Amount),
			entity.ApprovalLabel(r.Approved),
			placeholder(r.Notes, "N/A"),
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("gastos-%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

var paymentCSVHeaders = []string{
	"ID", "Proyecto", "Trabajador", "Tipo de Labor",
	"Fecha Actividad", "Día", "Mes", "Año", "Trimestre",
	"Horas", "Valor", "Valor Formateado", "Estado", "Fecha de Pago", "Notas",
}

// PaymentsCSV serializa los pagos a CSV.
func PaymentsCSV(records []PaymentRecord) ([]byte, string, error) {
	if len(records) == 0 {
		return nil, "", ErrNoRecords
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	if err := w.Write(paymentCSVHeaders); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		hours := "N/A"
		if r.Hours != nil {
			hours = strconv.FormatFloat(*r.Hours, 'f', -1, 64)
		}
		paymentDate := "SIN PAGAR"
		if r.PaymentDate != nil {
			paymentDate = r.PaymentDate.Format("2006-01-02")
		}
		row := []string{
			r.ID,
			placeholder(r.ProjectName, "N/A"),
			placeholder(r.WorkerName, "N/A"),
			entity.LaborTypeLabel(r.LaborType),
			r.Date.Format("2006-01-02"),
			WeekdayName(r.Date),
			MonthName(r.Date),
			strconv.Itoa(r.Date.Year()),
			Quarter(r.Date),
			hours,
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
			FormatCOP(r.Amount),
			entity.PaymentStatusLabel(r.Status),
			paymentDate,
			placeholder(r.Notes, "N/A"),
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("pagos-%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

var evidenceCSVHeaders = []string{
	"ID", "Proyecto", "Tipo", "Archivo", "URL",
	"Fecha", "Día", "Mes", "Año",
	"Descripción", "Tamaño (bytes)",
}

// EvidenceCSV serializa las evidencias a CSV.
func EvidenceCSV(records []EvidenceRecord) ([]byte, string, error) {
	if len(records) == 0 {
		return nil, "", ErrNoRecords
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	if err := w.Write(evidenceCSVHeaders); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID,
			placeholder(r.ProjectName, "N/A"),
			entity.EvidenceTypeLabel(r.Type),
			r.FileName,
			placeholder(r.FileURL, "N/A"),
			r.Date.Format("2006-01-02"),
			WeekdayName(r.Date),
			MonthName(r.Date),
			strconv.Itoa(r.Date.Year()),
			placeholder(r.Description, "N/A"),
			strconv.FormatInt(r.FileSize, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("evidencias-%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
