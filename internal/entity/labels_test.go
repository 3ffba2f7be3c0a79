package entity

import "testing"

func TestExpenseCategoryLabels(t *testing.T) {
	cases := map[string]string{
		ExpenseCategoryFees:         "HONORARIOS",
		ExpenseCategoryRefreshments: "REFRIGERIOS",
		ExpenseCategoryTransport:    "TRANSPORTE",
		ExpenseCategoryMaterials:    "MATERIALES",
		ExpenseCategoryServices:     "SERVICIOS",
		ExpenseCategoryOther:        "OTROS GASTOS",
	}
	for code, want := range cases {
		if got := ExpenseCategoryLabel(code); got != want {
			t.Errorf("ExpenseCategoryLabel(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestUnknownCodeFallsBackToUppercase(t *testing.T) {
	if got := ExpenseCategoryLabel("imprevistos"); got != "IMPREVISTOS" {
		t.Errorf("unknown category should uppercase the code, got %q", got)
	}
	if got := LaborTypeLabel("montaje"); got != "MONTAJE" {
		t.Errorf("unknown labor type should uppercase the code, got %q", got)
	}
	if got := EvidenceTypeLabel(""); got != "" {
		t.Errorf("empty code should stay empty, got %q", got)
	}
}

func TestStatusLabels(t *testing.T) {
	if got := PaymentStatusLabel(PaymentStatusPaid); got != "PAGADO" {
		t.Errorf("unexpected paid label %q", got)
	}
	if got := ProjectStatusLabel(ProjectStatusActive); got != "EN EJECUCIÓN" {
		t.Errorf("unexpected active label %q", got)
	}
}

func TestApprovalLabel(t *testing.T) {
	if got := ApprovalLabel(true); got != "APROBADO" {
		t.Errorf("expected APROBADO, got %q", got)
	}
	if got := ApprovalLabel(false); got != "PENDIENTE" {
		t.Errorf("expected PENDIENTE, got %q", got)
	}
}
