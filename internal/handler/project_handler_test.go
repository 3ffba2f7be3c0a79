package handler

import (
	"net/http"
	"testing"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/testutil"
)

func TestDeleteProjectWithExpensesIsRefused(t *testing.T) {
	r, db := setupTestApp(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestProject(t, db, "p1", "Festival de Teatro", "test-supervisor-001")

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"project_id":  "p1",
		"category":    entity.ExpenseCategoryTransport,
		"description": "Transporte",
		"amount":      50000,
		"date":        "2025-03-10",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed expense failed: %d %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodDelete, "/api/v1/projects/p1", nil, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 deleting project with expenses, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if code := resp["code"].(float64); code != 42200 {
		t.Fatalf("expected business code 42200, got %v", code)
	}

	var project entity.Project
	if err := db.First(&project, "id = ?", "p1").Error; err != nil {
		t.Fatalf("project should survive the refused delete: %v", err)
	}
}

func TestDeleteProjectWithPaymentsIsRefused(t *testing.T) {
	r, db := setupTestApp(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestProject(t, db, "p1", "Festival de Teatro", "test-supervisor-001")
	testutil.SeedTestWorker(t, db, "w1", "Ana María Castro", "1098765432")

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"project_id": "p1",
		"worker_id":  "w1",
		"date":       "2025-05-20",
		"labor_type": entity.LaborTypeWorkshop,
		"amount":     150000,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed payment failed: %d %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodDelete, "/api/v1/projects/p1", nil, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 deleting project with payments, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteProjectWithoutRecords(t *testing.T) {
	r, db := setupTestApp(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestProject(t, db, "p1", "Festival de Teatro", "test-supervisor-001")

	w := testutil.DoRequest(r, http.MethodDelete, "/api/v1/projects/p1", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&entity.Project{}).Where("id = ?", "p1").Count(&count)
	if count != 0 {
		t.Fatalf("project should be gone, found %d rows", count)
	}
}
