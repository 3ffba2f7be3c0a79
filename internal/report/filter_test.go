package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleExpenses() []ExpenseRecord {
	return []ExpenseRecord{
		{
			ID:          "g1",
			ProjectID:   "p1",
			ProjectName: "Festival de Teatro",
			Category:    entity.ExpenseCategoryTransport,
			Description: "Transporte de escenografía",
			Amount:      50000,
			Date:        day(2025, 3, 10),
			Responsible: "Laura Gómez",
			Approved:    false,
		},
		{
			ID:          "g2",
			ProjectID:   "p1",
			ProjectName: "Festival de Teatro",
			Category:    entity.ExpenseCategoryMaterials,
			Description: "Pintura para telones",
			Amount:      120000,
			Date:        day(2025, 3, 12),
			Responsible: "Carlos Ruiz",
			Approved:    true,
		},
		{
			ID:          "g3",
			ProjectID:   "p2",
			ProjectName: "Taller de Danza",
			Category:    entity.ExpenseCategoryTransport,
			Description: "Buses para presentación",
			Amount:      30000,
			Date:        day(2025, 4, 2),
			Responsible: "Laura Gómez",
			Approved:    true,
		},
	}
}

func TestExpenseFilterZeroValueReturnsAll(t *testing.T) {
	records := sampleExpenses()

	result := ExpenseFilter{}.Apply(records)

	if result.ActiveCount != 0 {
		t.Fatalf("expected 0 active dimensions, got %d", result.ActiveCount)
	}
	if result.ResultCount != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), result.ResultCount)
	}
}

func TestExpenseFilterSentinelsAreInactive(t *testing.T) {
	records := sampleExpenses()

	filter := ExpenseFilter{Category: FilterAll, ProjectID: "", Status: "all"}
	result := filter.Apply(records)

	if result.ActiveCount != 0 {
		t.Fatalf("sentinel values should not count as active, got %d", result.ActiveCount)
	}
	if result.ResultCount != 3 {
		t.Fatalf("expected all records, got %d", result.ResultCount)
	}
}

func TestExpenseFilterCategoryThenApproved(t *testing.T) {
	records := sampleExpenses()

	// Solo categoría transporte: dos registros, 80.000 en total.
	byCategory := ExpenseFilter{Category: entity.ExpenseCategoryTransport}.Apply(records)
	if byCategory.ResultCount != 2 {
		t.Fatalf("expected 2 transport expenses, got %d", byCategory.ResultCount)
	}
	var total float64
	for _, r := range byCategory.Records {
		total += r.Amount
	}
	if total != 80000 {
		t.Fatalf("expected transport total 80000, got %v", total)
	}

	// Categoría + aprobados: composición AND, queda solo g3.
	both := ExpenseFilter{Category: entity.ExpenseCategoryTransport, Status: "approved"}.Apply(records)
	if both.ActiveCount != 2 {
		t.Fatalf("expected 2 active dimensions, got %d", both.ActiveCount)
	}
	if both.ResultCount != 1 || both.Records[0].ID != "g3" {
		t.Fatalf("expected only g3, got %+v", both.Records)
	}
	if both.Records[0].Amount != 30000 {
		t.Fatalf("expected amount 30000, got %v", both.Records[0].Amount)
	}
}

func TestExpenseFilterSearchIsCaseInsensitive(t *testing.T) {
	records := sampleExpenses()

	result := ExpenseFilter{Search: "ESCENOGRAFÍA"}.Apply(records)
	if result.ResultCount != 1 || result.Records[0].ID != "g1" {
		t.Fatalf("expected g1 by description, got %+v", result.Records)
	}

	// La búsqueda también cubre nombre de proyecto y responsable.
	byProject := ExpenseFilter{Search: "festival"}.Apply(records)
	if byProject.ResultCount != 2 {
		t.Fatalf("expected 2 matches by project name, got %d", byProject.ResultCount)
	}
	byResponsible := ExpenseFilter{Search: "laura"}.Apply(records)
	if byResponsible.ResultCount != 2 {
		t.Fatalf("expected 2 matches by responsible, got %d", byResponsible.ResultCount)
	}
}

func TestExpenseFilterDateRangeIsInclusive(t *testing.T) {
	records := sampleExpenses()

	result := ExpenseFilter{DateFrom: "2025-03-10", DateTo: "2025-03-12"}.Apply(records)
	if result.ResultCount != 2 {
		t.Fatalf("expected both boundary records, got %d", result.ResultCount)
	}
	if result.ActiveCount != 2 {
		t.Fatalf("each valid range end counts as a dimension, got %d", result.ActiveCount)
	}
}

func TestExpenseFilterMalformedInputsAreIgnored(t *testing.T) {
	records := sampleExpenses()

	filter := ExpenseFilter{
		DateFrom:  "10/03/2025",
		AmountMin: "abc",
		AmountMax: "",
	}
	result := filter.Apply(records)

	if result.ActiveCount != 0 {
		t.Fatalf("malformed inputs must not activate dimensions, got %d", result.ActiveCount)
	}
	if result.ResultCount != 3 {
		t.Fatalf("expected all records, got %d", result.ResultCount)
	}
}

func TestExpenseFilterAmountRange(t *testing.T) {
	records := sampleExpenses()

	result := ExpenseFilter{AmountMin: "40000", AmountMax: "120000"}.Apply(records)
	if result.ResultCount != 2 {
		t.Fatalf("expected 2 records in range, got %d", result.ResultCount)
	}
	for _, r := range result.Records {
		if r.Amount < 40000 || r.Amount > 120000 {
			t.Fatalf("record %s out of range: %v", r.ID, r.Amount)
		}
	}
}

func TestExpenseFilterIsPureAndOrderPreserving(t *testing.T) {
	records := sampleExpenses()
	snapshot := make([]ExpenseRecord, len(records))
	copy(snapshot, records)

	filter := ExpenseFilter{Category: entity.ExpenseCategoryTransport}
	first := filter.Apply(records)
	second := filter.Apply(records)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same filter on same input must yield the same result")
	}
	if !reflect.DeepEqual(records, snapshot) {
		t.Fatalf("Apply must not mutate the input collection")
	}
	// g1 aparece antes que g3, como en la colección original.
	if first.Records[0].ID != "g1" || first.Records[1].ID != "g3" {
		t.Fatalf("relative order not preserved: %+v", first.Records)
	}
}

func TestPaymentFilterStatusAndWorker(t *testing.T) {
	paid := day(2025, 5, 20)
	records := []PaymentRecord{
		{ID: "pg1", WorkerID: "w1", WorkerName: "Ana Torres", LaborType: entity.LaborTypeWorkshop,
			Date: day(2025, 5, 10), Amount: 200000, Status: entity.PaymentStatusPaid, PaymentDate: &paid},
		{ID: "pg2", WorkerID: "w2", WorkerName: "Pedro Mejía", LaborType: entity.LaborTypeLogistics,
			Date: day(2025, 5, 11), Amount: 150000, Status: entity.PaymentStatusPending},
		{ID: "pg3", WorkerID: "w1", WorkerName: "Ana Torres", LaborType: entity.LaborTypePresentation,
			Date: day(2025, 5, 15), Amount: 300000, Status: entity.PaymentStatusPending},
	}

	result := PaymentFilter{WorkerID: "w1", Status: entity.PaymentStatusPending}.Apply(records)
	if result.ResultCount != 1 || result.Records[0].ID != "pg3" {
		t.Fatalf("expected only pg3, got %+v", result.Records)
	}

	byLabor := PaymentFilter{LaborType: entity.LaborTypeWorkshop}.Apply(records)
	if byLabor.ResultCount != 1 || byLabor.Records[0].ID != "pg1" {
		t.Fatalf("expected only pg1, got %+v", byLabor.Records)
	}
}

func TestEvidenceFilterTypeAndSearch(t *testing.T) {
	records := []EvidenceRecord{
		{ID: "e1", Type: entity.EvidenceTypePhoto, FileName: "ensayo-general.jpg",
			ProjectName: "Festival de Teatro", Date: day(2025, 6, 1)},
		{ID: "e2", Type: entity.EvidenceTypeVideo, FileName: "funcion-final.mp4",
			ProjectName: "Festival de Teatro", Date: day(2025, 6, 15)},
		{ID: "e3", Type: entity.EvidenceTypePhoto, FileName: "clase-danza.jpg",
			ProjectName: "Taller de Danza", Date: day(2025, 6, 20)},
	}

	photos := EvidenceFilter{Type: entity.EvidenceTypePhoto}.Apply(records)
	if photos.ResultCount != 2 {
		t.Fatalf("expected 2 photos, got %d", photos.ResultCount)
	}

	combined := EvidenceFilter{Type: entity.EvidenceTypePhoto, Search: "danza"}.Apply(records)
	if combined.ResultCount != 1 || combined.Records[0].ID != "e3" {
		t.Fatalf("expected only e3, got %+v", combined.Records)
	}
}
