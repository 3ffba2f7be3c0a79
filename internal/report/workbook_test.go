package report

import (
	"errors"
	"testing"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
)

func TestExpensesWorkbookEmptyCollection(t *testing.T) {
	_, _, err := ExpensesWorkbook(nil)
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestExpensesWorkbookSheets(t *testing.T) {
	f, filename, err := ExpensesWorkbook(sampleExpenses())
	if err != nil {
		t.Fatalf("ExpensesWorkbook failed: %v", err)
	}
	defer f.Close()

	if filename == "" {
		t.Fatalf("expected a dated filename")
	}

	want := []string{"📋 Detalle", "📊 Por Proyecto", "🏷️ Por Categoría", "📈 Estadísticas"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}
	for i, name := range want {
		if got[i] != name {
			t.Fatalf("sheet %d: expected %q, got %q", i, name, got[i])
		}
	}
}

func TestExpensesWorkbookCategorySummary(t *testing.T) {
	// 3 gastos: transporte 50.000 pendiente, materiales 120.000 aprobado,
	// transporte 30.000 aprobado. Total general 200.000.
	f, _, err := ExpensesWorkbook(sampleExpenses())
	if err != nil {
		t.Fatalf("ExpensesWorkbook failed: %v", err)
	}
	defer f.Close()

	const sheet = "🏷️ Por Categoría"

	// Primera fila de datos: transporte (primera aparición en el detalle).
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return v
	}

	if got := cell("A2"); got != "TRANSPORTE" {
		t.Fatalf("expected first group TRANSPORTE, got %q", got)
	}
	if got := cell("B2"); got != "80000" {
		t.Fatalf("expected transport total 80000, got %q", got)
	}
	if got := cell("C2"); got != "2" {
		t.Fatalf("expected 2 transport records, got %q", got)
	}
	if got := cell("D2"); got != "1" {
		t.Fatalf("expected 1 approved, got %q", got)
	}
	if got := cell("E2"); got != "1" {
		t.Fatalf("expected 1 pending, got %q", got)
	}
	if got := cell("F2"); got != "40000" {
		t.Fatalf("expected average 40000, got %q", got)
	}
	// 80.000 sobre 200.000, a un decimal.
	if got := cell("G2"); got != "40" {
		t.Fatalf("expected 40%% of total, got %q", got)
	}
}

func TestExpensesWorkbookProjectSummaryOrder(t *testing.T) {
	f, _, err := ExpensesWorkbook(sampleExpenses())
	if err != nil {
		t.Fatalf("ExpensesWorkbook failed: %v", err)
	}
	defer f.Close()

	const sheet = "📊 Por Proyecto"

	// Los grupos conservan el orden de primera aparición.
	a2, _ := f.GetCellValue(sheet, "A2")
	a3, _ := f.GetCellValue(sheet, "A3")
	if a2 != "Festival de Teatro" || a3 != "Taller de Danza" {
		t.Fatalf("unexpected group order: %q, %q", a2, a3)
	}

	b2, _ := f.GetCellValue(sheet, "B2")
	if b2 != "170000" {
		t.Fatalf("expected Festival total 170000, got %q", b2)
	}
}

func TestPaymentsWorkbookLaborSheetAndStats(t *testing.T) {
	paid := day(2025, 5, 20)
	records := []PaymentRecord{
		{ID: "pg1", ProjectID: "p1", ProjectName: "Festival", WorkerID: "w1", WorkerName: "Ana",
			LaborType: entity.LaborTypeWorkshop, Date: day(2025, 5, 10),
			Amount: 200000, Status: entity.PaymentStatusPaid, PaymentDate: &paid},
		{ID: "pg2", ProjectID: "p1", ProjectName: "Festival", WorkerID: "w2", WorkerName: "Pedro",
			LaborType: entity.LaborTypeWorkshop, Date: day(2025, 5, 11),
			Amount: 100000, Status: entity.PaymentStatusPending},
	}

	f, _, err := PaymentsWorkbook(records)
	if err != nil {
		t.Fatalf("PaymentsWorkbook failed: %v", err)
	}
	defer f.Close()

	want := []string{"📋 Detalle", "📊 Por Proyecto", "🏷️ Por Tipo de Labor", "📈 Estadísticas"}
	got := f.GetSheetList()
	for i, name := range want {
		if got[i] != name {
			t.Fatalf("sheet %d: expected %q, got %q", i, name, got[i])
		}
	}

	const labor = "🏷️ Por Tipo de Labor"
	a2, _ := f.GetCellValue(labor, "A2")
	b2, _ := f.GetCellValue(labor, "B2")
	d2, _ := f.GetCellValue(labor, "D2")
	if a2 != "TALLER" || b2 != "300000" || d2 != "1" {
		t.Fatalf("unexpected labor summary: %q %q %q", a2, b2, d2)
	}

	// % pagado en estadísticas: 200.000 sobre 300.000 = 66.7%.
	const stats = "📈 Estadísticas"
	pct, _ := f.GetCellValue(stats, "B7")
	if pct != "66.7%" {
		t.Fatalf("expected 66.7%% paid, got %q", pct)
	}
}

func TestPaymentsWorkbookCancelledExcludedFromPending(t *testing.T) {
	paidDate := day(2025, 5, 20)
	records := []PaymentRecord{
		{ID: "pg1", ProjectID: "p1", ProjectName: "Festival", WorkerID: "w1", WorkerName: "Ana",
			LaborType: entity.LaborTypeWorkshop, Date: day(2025, 5, 10),
			Amount: 200000, Status: entity.PaymentStatusPaid, PaymentDate: &paidDate},
		{ID: "pg2", ProjectID: "p1", ProjectName: "Festival", WorkerID: "w2", WorkerName: "Pedro",
			LaborType: entity.LaborTypeWorkshop, Date: day(2025, 5, 11),
			Amount: 100000, Status: entity.PaymentStatusPending},
		{ID: "pg3", ProjectID: "p1", ProjectName: "Festival", WorkerID: "w3", WorkerName: "Lucía",
			LaborType: entity.LaborTypeLogistics, Date: day(2025, 5, 12),
			Amount: 50000, Status: entity.PaymentStatusCancelled},
	}

	f, _, err := PaymentsWorkbook(records)
	if err != nil {
		t.Fatalf("PaymentsWorkbook failed: %v", err)
	}
	defer f.Close()

	// Resumen por proyecto: el cancelado no engrosa los pendientes.
	const projects = "📊 Por Proyecto"
	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s, %s): %v", sheet, ref, err)
		}
		return v
	}
	if got := cell(projects, "F2"); got != "1" {
		t.Fatalf("expected 1 pending payment, got %q", got)
	}
	if got := cell(projects, "G2"); got != "100000" {
		t.Fatalf("expected pending amount 100000, got %q", got)
	}
	if got := cell(projects, "H2"); got != "1" {
		t.Fatalf("expected 1 cancelled payment, got %q", got)
	}

	// Estadísticas: pendiente y cancelado son renglones separados.
	const stats = "📈 Estadísticas"
	if got := cell(stats, "B5"); got != FormatCOP(100000) {
		t.Fatalf("expected pending total %q, got %q", FormatCOP(100000), got)
	}
	if got := cell(stats, "B6"); got != FormatCOP(50000) {
		t.Fatalf("expected cancelled total %q, got %q", FormatCOP(50000), got)
	}
}

func TestPercentageZeroDenominator(t *testing.T) {
	if got := percentage(100, 0); got != 0 {
		t.Fatalf("zero denominator must yield 0, got %v", got)
	}
	if got := percentage(1, 3); got != 33.3 {
		t.Fatalf("expected 33.3, got %v", got)
	}
	if got := percentage(2, 3); got != 66.7 {
		t.Fatalf("expected 66.7, got %v", got)
	}
}
