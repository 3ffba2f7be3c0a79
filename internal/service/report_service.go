package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/report"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
)

// ReportService arma las colecciones unidas que consumen el motor de
// filtros y los exportadores. Las vistas no saben si la unión se hizo
// en memoria o en la base de datos.
type ReportService struct {
	repos   *repository.Repositories
	orgName string
}

// NewReportService crea el servicio de reportes
func NewReportService(repos *repository.Repositories, orgName string) *ReportService {
	return &ReportService{repos: repos, orgName: orgName}
}

// ExpenseRecords gastos del supervisor con datos de proyecto unidos
func (s *ReportService) ExpenseRecords(ctx context.Context, supervisorID string) ([]report.ExpenseRecord, error) {
	expenses, err := s.repos.Expense.ListBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	records := make([]report.ExpenseRecord, 0, len(expenses))
	for _, e := range expenses {
		rec := report.ExpenseRecord{
			ID:          e.ID,
			ProjectID:   e.ProjectID,
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.Date,
			Responsible: e.Responsible,
			Approved:    e.Approved,
			Notes:       e.Notes,
		}
		if e.Project != nil {
			rec.ProjectName = e.Project.Name
		}
		records = append(records, rec)
	}
	return records, nil
}

// PaymentRecords pagos del supervisor con proyecto y trabajador unidos
func (s *ReportService) PaymentRecords(ctx context.Context, supervisorID string) ([]report.PaymentRecord, error) {
	payments, err := s.repos.Payment.ListBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	records := make([]report.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		rec := report.PaymentRecord{
			ID:          p.ID,
			ProjectID:   p.ProjectID,
			WorkerID:    p.WorkerID,
			LaborType:   p.LaborType,
			Date:        p.Date,
			Hours:       p.Hours,
			Amount:      p.Amount,
			Status:      p.Status,
			PaymentDate: p.PaymentDate,
			Notes:       p.Notes,
		}
		if p.Project != nil {
			rec.ProjectName = p.Project.Name
		}
		if p.Worker != nil {
			rec.WorkerName = p.Worker.Name
		}
		records = append(records, rec)
	}
	return records, nil
}

// EvidenceRecords evidencias del supervisor con datos de proyecto unidos
func (s *ReportService) EvidenceRecords(ctx context.Context, supervisorID string) ([]report.EvidenceRecord, error) {
	evidence, err := s.repos.Evidence.ListBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	records := make([]report.EvidenceRecord, 0, len(evidence))
	for _, ev := range evidence {
		rec := report.EvidenceRecord{
			ID:          ev.ID,
			ProjectID:   ev.ProjectID,
			Type:        ev.Type,
			FileName:    ev.FileName,
			FileURL:     ev.FileURL,
			Date:        ev.Date,
			Description: ev.Description,
			FileSize:    ev.FileSize,
		}
		if ev.Project != nil {
			rec.ProjectName = ev.Project.Name
		}
		records = append(records, rec)
	}
	return records, nil
}

// FilteredExpenses aplica el filtro sobre la colección unida
func (s *ReportService) FilteredExpenses(ctx context.Context, supervisorID string, filter report.ExpenseFilter) (report.FilterResult[report.ExpenseRecord], error) {
	records, err := s.ExpenseRecords(ctx, supervisorID)
	if err != nil {
		return report.FilterResult[report.ExpenseRecord]{}, err
	}
	return filter.Apply(records), nil
}

// FilteredPayments aplica el filtro sobre la colección unida
func (s *ReportService) FilteredPayments(ctx context.Context, supervisorID string, filter report.PaymentFilter) (report.FilterResult[report.PaymentRecord], error) {
	records, err := s.PaymentRecords(ctx, supervisorID)
	if err != nil {
		return report.FilterResult[report.PaymentRecord]{}, err
	}
	return filter.Apply(records), nil
}

// FilteredEvidence aplica el filtro sobre la colección unida
func (s *ReportService) FilteredEvidence(ctx context.Context, supervisorID string, filter report.EvidenceFilter) (report.FilterResult[report.EvidenceRecord], error) {
	records, err := s.EvidenceRecords(ctx, supervisorID)
	if err != nil {
		return report.FilterResult[report.EvidenceRecord]{}, err
	}
	return filter.Apply(records), nil
}

// ExpensesCSV exporta los gastos filtrados a CSV
func (s *ReportService) ExpensesCSV(ctx context.Context, supervisorID string, filter report.ExpenseFilter) ([]byte, string, error) {
	result, err := s.FilteredExpenses(ctx, supervisorID, filter)
	if err != nil {
		return nil, "", err
	}
	return report.ExpensesCSV(result.Records)
}

// PaymentsCSV exporta los pagos filtrados a CSV
func (s *ReportService) PaymentsCSV(ctx context.Context, supervisorID string, filter report.PaymentFilter) ([]byte, string, error) {
	result, err := s.FilteredPayments(ctx, supervisorID, filter)
	if err != nil {
		return nil, "", err
	}
	return report.PaymentsCSV(result.Records)
}

// EvidenceCSV exporta las evidencias filtradas a CSV
func (s *ReportService) EvidenceCSV(ctx context.Context, supervisorID string, filter report.EvidenceFilter) ([]byte, string, error) {
	result, err := s.FilteredEvidence(ctx, supervisorID, filter)
	if err != nil {
		return nil, "", err
	}
	return report.EvidenceCSV(result.Records)
}

// ExpensesWorkbook exporta los gastos filtrados al libro de Excel
func (s *ReportService) ExpensesWorkbook(ctx context.Context, supervisorID string, filter report.ExpenseFilter) (*excelize.File, string, error) {
	result, err := s.FilteredExpenses(ctx, supervisorID, filter)
	if err != nil {
		return nil, "", err
	}
	return report.ExpensesWorkbook(result.Records)
}

// PaymentsWorkbook exporta los pagos filtrados al libro de Excel
func (s *ReportService) PaymentsWorkbook(ctx context.Context, supervisorID string, filter report.PaymentFilter) (*excelize.File, string, error) {
	result, err := s.FilteredPayments(ctx, supervisorID, filter)
	if err != nil {
		return nil, "", err
	}
	return report.PaymentsWorkbook(result.Records)
}

// ConsolidatedPDF arma el reporte ejecutivo PDF con los datos del
// supervisor
func (s *ReportService) ConsolidatedPDF(ctx context.Context, supervisorID string, opts report.PDFOptions) ([]byte, string, error) {
	projects, err := s.repos.Project.ListBySupervisor(ctx, supervisorID, nil)
	if err != nil {
		return nil, "", err
	}
	summaries := make([]report.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, report.ProjectSummary{
			ID:             p.ID,
			Name:           p.Name,
			Status:         p.Status,
			TotalBudget:    p.TotalBudget,
			ExecutedBudget: p.ExecutedBudget,
		})
	}

	expenseFilter := report.ExpenseFilter{DateFrom: opts.PeriodStart, DateTo: opts.PeriodEnd}
	expenses, err := s.FilteredExpenses(ctx, supervisorID, expenseFilter)
	if err != nil {
		return nil, "", err
	}
	paymentFilter := report.PaymentFilter{DateFrom: opts.PeriodStart, DateTo: opts.PeriodEnd}
	payments, err := s.FilteredPayments(ctx, supervisorID, paymentFilter)
	if err != nil {
		return nil, "", err
	}

	data := report.ConsolidatedData{
		Projects: summaries,
		Expenses: expenses.Records,
		Payments: payments.Records,
	}
	return report.ConsolidatedPDF(s.orgName, data, opts)
}
