package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
)

func TestExpensesCSVEmptyCollection(t *testing.T) {
	_, _, err := ExpensesCSV(nil)
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestExpensesCSVStartsWithBOM(t *testing.T) {
	content, _, err := ExpensesCSV(sampleExpenses())
	if err != nil {
		t.Fatalf("ExpensesCSV failed: %v", err)
	}
	if !bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("CSV must start with the UTF-8 BOM")
	}
}

func TestExpensesCSVFilename(t *testing.T) {
	_, filename, err := ExpensesCSV(sampleExpenses())
	if err != nil {
		t.Fatalf("ExpensesCSV failed: %v", err)
	}
	want := fmt.Sprintf("gastos-%s.csv", time.Now().Format("2006-01-02"))
	if filename != want {
		t.Fatalf("expected filename %q, got %q", want, filename)
	}
}

func TestExpensesCSVRoundTripWithSpecialCharacters(t *testing.T) {
	records := []ExpenseRecord{
		{
			ID:          "g1",
			ProjectName: `Festival "Centro", etapa 1`,
			Category:    entity.ExpenseCategoryOther,
			Description: "Compra de:\nvestuario, utilería",
			Amount:      75000,
			Date:        day(2025, 7, 4),
			Responsible: "María José",
			Approved:    true,
			Notes:       "factura #442",
		},
	}

	content, _, err := ExpensesCSV(records)
	if err != nil {
		t.Fatalf("ExpensesCSV failed: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("generated CSV does not parse back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 row, got %d rows", len(rows))
	}
	if got := rows[1][1]; got != `Festival "Centro", etapa 1` {
		t.Fatalf("quoting broke the project name: %q", got)
	}
	if got := rows[1][3]; got != "Compra de:\nvestuario, utilería" {
		t.Fatalf("quoting broke the description: %q", got)
	}
}

func TestExpensesCSVDerivedColumnsAndPlaceholders(t *testing.T) {
	records := []ExpenseRecord{
		{
			ID:       "g1",
			Category: entity.ExpenseCategoryTransport,
			Amount:   50000,
			// Miércoles de T1.
			Date:     day(2025, 3, 12),
			Approved: false,
		},
	}

	content, _, err := ExpensesCSV(records)
	if err != nil {
		t.Fatalf("ExpensesCSV failed: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	row := rows[1]

	checks := map[int]string{
		1:  "N/A",              // proyecto vacío
		2:  "TRANSPORTE",       // etiqueta de categoría
		4:  "SIN ESPECIFICAR",  // responsable vacío
		6:  "Miércoles",        // día derivado
		7:  "Marzo",            // mes derivado
		8:  "2025",             // año derivado
		9:  "T1",               // trimestre derivado
		11: FormatCOP(50000),   // monto formateado
		12: "PENDIENTE",        // estado de aprobación
		13: "N/A",              // notas vacías
	}
	for col, want := range checks {
		if row[col] != want {
			t.Fatalf("column %d (%s): expected %q, got %q", col, expenseCSVHeaders[col], want, row[col])
		}
	}
}

func TestPaymentsCSVAmountsAndUnpaidPlaceholder(t *testing.T) {
	hours := 12.5
	paidOn := day(2025, 5, 25)
	records := []PaymentRecord{
		{ID: "pg1", ProjectName: "Festival", WorkerName: "Ana Torres",
			LaborType: entity.LaborTypeWorkshop, Date: day(2025, 5, 10),
			Hours: &hours, Amount: 120000, Status: entity.PaymentStatusPaid, PaymentDate: &paidOn},
		{ID: "pg2", ProjectName: "Festival", WorkerName: "Pedro Mejía",
			LaborType: entity.LaborTypeLogistics, Date: day(2025, 5, 11),
			Amount: 80000, Status: entity.PaymentStatusPending},
	}

	content, _, err := PaymentsCSV(records)
	if err != nil {
		t.Fatalf("PaymentsCSV failed: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	var total float64
	for _, row := range rows[1:] {
		var amount float64
		fmt.Sscanf(row[10], "%f", &amount)
		total += amount
	}
	if total != 200000 {
		t.Fatalf("expected amounts summing 200000, got %v", total)
	}

	if rows[1][13] != "2025-05-25" {
		t.Fatalf("expected payment date, got %q", rows[1][13])
	}
	if rows[2][13] != "SIN PAGAR" {
		t.Fatalf("unpaid record should show SIN PAGAR, got %q", rows[2][13])
	}
	if rows[2][9] != "N/A" {
		t.Fatalf("missing hours should show N/A, got %q", rows[2][9])
	}
}

func TestEvidenceCSVHeadersAndLabels(t *testing.T) {
	records := []EvidenceRecord{
		{ID: "e1", ProjectName: "Taller de Danza", Type: entity.EvidenceTypePhoto,
			FileName: "clase.jpg", Date: day(2025, 6, 20), FileSize: 2048},
	}

	content, filename, err := EvidenceCSV(records)
	if err != nil {
		t.Fatalf("EvidenceCSV failed: %v", err)
	}
	if !strings.HasPrefix(filename, "evidencias-") {
		t.Fatalf("unexpected filename %q", filename)
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rows[1][2] != "FOTOGRAFÍA" {
		t.Fatalf("expected type label FOTOGRAFÍA, got %q", rows[1][2])
	}
	if rows[1][10] != "2048" {
		t.Fatalf("expected file size 2048, got %q", rows[1][10])
	}
}
