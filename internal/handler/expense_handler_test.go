package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/config"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/testutil"
)

func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := &config.Config{}
	cfg.Report.OrganizationName = "Corporación Cultural"
	cfg.JWT.Secret = testutil.JWTSecret

	bus := events.NewBus()
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, bus, cfg, zap.NewNop())
	handlers := NewHandlers(services, bus)

	r := testutil.SetupRouter()
	api := testutil.AuthGroup(r, "/api/v1")

	projects := api.Group("/projects")
	projects.POST("", handlers.Project.CreateProject)
	projects.DELETE("/:id", handlers.Project.DeleteProject)

	expenses := api.Group("/expenses")
	expenses.GET("", handlers.Expense.ListExpenses)
	expenses.POST("", handlers.Expense.CreateExpense)
	expenses.GET("/:id", handlers.Expense.GetExpense)
	expenses.PUT("/:id", handlers.Expense.UpdateExpense)
	expenses.DELETE("/:id", handlers.Expense.DeleteExpense)

	workers := api.Group("/workers")
	workers.GET("", handlers.Worker.ListWorkers)
	workers.POST("", handlers.Worker.CreateWorker)
	workers.DELETE("/:id", handlers.Worker.DeleteWorker)
	workers.POST("/:id/deactivate", handlers.Worker.DeactivateWorker)

	payments := api.Group("/payments")
	payments.POST("", handlers.Payment.CreatePayment)
	payments.PUT("/:id/status", handlers.Payment.UpdatePaymentStatus)

	exports := api.Group("/exports")
	exports.GET("/expenses/csv", handlers.Export.ExpensesCSV)

	return r, db
}

func TestCreateExpenseRecalculatesExecutedBudget(t *testing.T) {
	r, db := setupTestApp(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestProject(t, db, "p1", "Festival de Teatro", "test-supervisor-001")

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"project_id":  "p1",
		"category":    entity.ExpenseCategoryTransport,
		"description": "Transporte de escenografía",
		"amount":      50000,
		"date":        "2025-03-10",
		"responsible": "Laura Gómez",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"project_id":  "p1",
		"category":    entity.ExpenseCategoryMaterials,
		"description": "Pintura para telones",
		"amount":      120000,
		"date":        "2025-03-12",
		"approved":    true,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var project entity.Project
	if err := db.First(&project, "id = ?", "p1").Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if project.ExecutedBudget != 170000 {
		t.Fatalf("expected executed budget 170000, got %v", project.ExecutedBudget)
	}
}

func TestDeleteExpenseRecalculatesExecutedBudget(t *testing.T) {
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
		t.Fatalf("create failed: %d %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	expenseID := resp["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(r, http.MethodDelete, "/api/v1/expenses/"+expenseID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}

	var project entity.Project
	if err := db.First(&project, "id = ?", "p1").Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if project.ExecutedBudget != 0 {
		t.Fatalf("expected executed budget back to 0, got %v", project.ExecutedBudget)
	}
}

func TestCreateExpenseRejectsInvalidCategory(t *testing.T) {
	r, db := setupTestApp(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestProject(t, db, "p1", "Festival", "test-supervisor-001")

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"project_id":  "p1",
		"category":    "imprevistos",
		"description": "Gasto raro",
		"amount":      10000,
		"date":        "2025-03-10",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid category, got %d", w.Code)
	}
}

func TestListExpensesAppliesFilters(t *testing.T) {
	r, db := setupTestApp(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestProject(t, db, "p1", "Festival de Teatro", "test-supervisor-001")

	seed := []map[string]interface{}{
		{"project_id": "p1", "category": entity.ExpenseCategoryTransport, "description": "Transporte A", "amount": 50000, "date": "2025-03-10"},
		{"project_id": "p1", "category": entity.ExpenseCategoryMaterials, "description": "Pintura", "amount": 120000, "date": "2025-03-12", "approved": true},
		{"project_id": "p1", "category": entity.ExpenseCategoryTransport, "description": "Transporte B", "amount": 30000, "date": "2025-04-02", "approved": true},
	}
	for _, body := range seed {
		if w := testutil.DoRequest(r, http.MethodPost, "/api/v1/expenses", body, token); w.Code != http.StatusCreated {
			t.Fatalf("seed expense failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(r, http.MethodGet,
		fmt.Sprintf("/api/v1/expenses?category=%s&status=approved", entity.ExpenseCategoryTransport), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if got := data["result_count"].(float64); got != 1 {
		t.Fatalf("expected 1 filtered record, got %v", got)
	}
	if got := data["active_count"].(float64); got != 2 {
		t.Fatalf("expected 2 active dimensions, got %v", got)
	}
	records := data["records"].([]interface{})
	first := records[0].(map[string]interface{})
	if first["description"] != "Transporte B" {
		t.Fatalf("expected Transporte B, got %v", first["description"])
	}
}

func TestExpensesCSVExportEmptyReturns422(t *testing.T) {
	r, _ := setupTestApp(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/exports/expenses/csv", nil, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty export, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExpensesCSVExportStreamsAttachment(t *testing.T) {
	r, db := setupTestApp(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestProject(t, db, "p1", "Festival", "test-supervisor-001")
	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"project_id":  "p1",
		"category":    entity.ExpenseCategoryServices,
		"description": "Sonido",
		"amount":      90000,
		"date":        "2025-03-15",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed failed: %d", w.Code)
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/exports/expenses/csv", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed: %d %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "gastos-") {
		t.Fatalf("unexpected Content-Disposition: %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "\xEF\xBB\xBF") {
		t.Fatalf("export should start with the UTF-8 BOM")
	}
}

func TestExpenseRequiresAuthentication(t *testing.T) {
	r, _ := setupTestApp(t)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/expenses", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
