package service

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/config"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
)

// Services colección de servicios
type Services struct {
	Project   *ProjectService
	Expense   *ExpenseService
	Payment   *PaymentService
	Worker    *WorkerService
	Evidence  *EvidenceService
	Dashboard *DashboardService
	Report    *ReportService
}

// NewServices crea la colección de servicios
func NewServices(repos *repository.Repositories, rdb *redis.Client, bus *events.Bus, cfg *config.Config, logger *zap.Logger) *Services {
	return &Services{
		Project:   NewProjectService(repos.Project, repos.Expense, repos.Payment, repos.Evidence, bus),
		Expense:   NewExpenseService(repos.Expense, repos.Project, bus),
		Payment:   NewPaymentService(repos.Payment, repos.Project, repos.Worker, bus),
		Worker:    NewWorkerService(repos.Worker, repos.Payment, bus),
		Evidence:  NewEvidenceService(repos.Evidence, repos.Project, bus),
		Dashboard: NewDashboardService(repos, rdb, bus, cfg.Report.StatsCacheTTL, logger),
		Report:    NewReportService(repos, cfg.Report.OrganizationName),
	}
}
