package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
)

// Geometría del reporte en mm (A4 vertical).
const (
	pdfPageWidth   = 210.0
	pdfMarginLeft  = 15.0
	pdfMarginTop   = 15.0
	pdfMarginRight = 15.0
	pdfBottomLimit = 272.0 // fin del área útil, antes del pie de página
	pdfLineHeight  = 6.0
	pdfTableRowH   = 7.0
	maxDetailRows  = 10
	pdfAttribution = "Generado por SiGeCul - Sistema de Gestión Cultural"
)

// PDFOptions qué secciones incluye el reporte consolidado.
type PDFOptions struct {
	Title           string `json:"title"`
	PeriodStart     string `json:"period_start"`
	PeriodEnd       string `json:"period_end"`
	IncludeSummary  bool   `json:"include_summary"`
	IncludeProjects bool   `json:"include_projects"`
	IncludeExpenses bool   `json:"include_expenses"`
	IncludePayments bool   `json:"include_payments"`
}

// ConsolidatedData insumos del reporte consolidado.
type ConsolidatedData struct {
	Projects []ProjectSummary
	Expenses []ExpenseRecord
	Payments []PaymentRecord
}

func (d ConsolidatedData) empty() bool {
	return len(d.Projects) == 0 && len(d.Expenses) == 0 && len(d.Payments) == 0
}

// pdfReport acumula el estado de paginación del documento.
type pdfReport struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	org string
}

// ensureSpace salta de página si el contenido de altura h no cabe en lo
// que queda de la página actual. Se aplica antes de emitir cada línea.
func (p *pdfReport) ensureSpace(h float64) {
	if p.pdf.GetY()+h > pdfBottomLimit {
		p.pdf.AddPage()
	}
}

func (p *pdfReport) sectionTitle(title string) {
	p.ensureSpace(pdfLineHeight * 2)
	p.pdf.Ln(3)
	p.pdf.SetFont("Arial", "B", 12)
	p.pdf.SetTextColor(128, 0, 64)
	p.pdf.CellFormat(0, pdfLineHeight, p.tr(title), "", 1, "L", false, 0, "")
	p.pdf.SetTextColor(0, 0, 0)
	p.pdf.Ln(1)
}

func (p *pdfReport) summaryLine(label, value string) {
	p.ensureSpace(pdfLineHeight)
	p.pdf.SetFont("Arial", "", 10)
	p.pdf.CellFormat(70, pdfLineHeight, p.tr(label), "", 0, "L", false, 0, "")
	p.pdf.SetFont("Arial", "B", 10)
	p.pdf.CellFormat(0, pdfLineHeight, p.tr(value), "", 1, "L", false, 0, "")
}

func (p *pdfReport) tableHeader(headers []string, widths []float64) {
	p.ensureSpace(pdfTableRowH)
	p.pdf.SetFont("Arial", "B", 9)
	p.pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		p.pdf.CellFormat(widths[i], pdfTableRowH, p.tr(h), "1", 0, "C", true, 0, "")
	}
	p.pdf.Ln(-1)
}

func (p *pdfReport) tableRow(cells []string, widths []float64) {
	p.ensureSpace(pdfTableRowH)
	p.pdf.SetFont("Arial", "", 9)
	for i, c := range cells {
		align := "L"
		if i == len(cells)-1 {
			align = "R" // última columna: montos
		}
		p.pdf.CellFormat(widths[i], pdfTableRowH, p.tr(c), "1", 0, align, false, 0, "")
	}
	p.pdf.Ln(-1)
}

// truncate recorta el texto para que quepa en una celda de tabla.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// ConsolidatedPDF genera el reporte ejecutivo en PDF: banda de
// encabezado, resumen ejecutivo opcional y tablas de detalle opcionales
// con los N mayores montos.
func ConsolidatedPDF(orgName string, data ConsolidatedData, opts PDFOptions) ([]byte, string, error) {
	if data.empty() {
		return nil, "", ErrNoRecords
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Pie de página: número de página sobre el total y atribución. El
	// alias {nb} se resuelve al cerrar el documento, cuando ya se sabe
	// cuántas páginas hay.
	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, tr(pdfAttribution), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf(tr("Página %d de {nb}"), pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	p := &pdfReport{pdf: pdf, tr: tr, org: orgName}
	pdf.AddPage()

	// Banda de encabezado
	title := opts.Title
	if title == "" {
		title = "Reporte Consolidado"
	}
	pdf.SetFillColor(128, 0, 64)
	pdf.Rect(0, 0, pdfPageWidth, 26, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(pdfMarginLeft, 6)
	pdf.CellFormat(0, 8, tr(orgName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.SetX(pdfMarginLeft)
	pdf.CellFormat(0, 7, tr(title), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(30)

	// Fecha de generación y periodo
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Generado: %s", time.Now().Format("2006-01-02 15:04"))), "", 1, "L", false, 0, "")
	if opts.PeriodStart != "" || opts.PeriodEnd != "" {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Periodo: %s a %s",
			placeholder(opts.PeriodStart, "inicio"),
			placeholder(opts.PeriodEnd, "hoy"))), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	if opts.IncludeSummary {
		writeExecutiveSummary(p, data)
	}
	if opts.IncludeProjects && len(data.Projects) > 0 {
		writeProjectSection(p, data.Projects)
	}
	if opts.IncludeExpenses && len(data.Expenses) > 0 {
		writeTopExpenses(p, data.Expenses)
	}
	if opts.IncludePayments && len(data.Payments) > 0 {
		writeTopPayments(p, data.Payments)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}

	filename := fmt.Sprintf("reporte-consolidado-%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func writeExecutiveSummary(p *pdfReport, data ConsolidatedData) {
	p.sectionTitle("Resumen Ejecutivo")

	var expenseTotal, paymentTotal, budgetTotal, executedTotal float64
	for _, e := range data.Expenses {
		expenseTotal += e.Amount
	}
	for _, pay := range data.Payments {
		paymentTotal += pay.Amount
	}
	for _, pr := range data.Projects {
		budgetTotal += pr.TotalBudget
		executedTotal += pr.ExecutedBudget
	}

	p.summaryLine("Proyectos incluidos:", fmt.Sprintf("%d", len(data.Projects)))
	p.summaryLine("Presupuesto total:", FormatCOP(budgetTotal))
	p.summaryLine("Presupuesto ejecutado:", FormatCOP(executedTotal))
	p.summaryLine("Gastos registrados:", fmt.Sprintf("%d", len(data.Expenses)))
	p.summaryLine("Total en gastos:", FormatCOP(expenseTotal))
	p.summaryLine("Pagos registrados:", fmt.Sprintf("%d", len(data.Payments)))
	p.summaryLine("Total en pagos:", FormatCOP(paymentTotal))
}

func writeProjectSection(p *pdfReport, projects []ProjectSummary) {
	p.sectionTitle("Proyectos")

	sorted := make([]ProjectSummary, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExecutedBudget > sorted[j].ExecutedBudget
	})
	if len(sorted) > maxDetailRows {
		sorted = sorted[:maxDetailRows]
	}

	widths := []float64{70, 35, 35, 40}
	p.tableHeader([]string{"Proyecto", "Estado", "Presupuesto", "Ejecutado"}, widths)
	for _, pr := range sorted {
		p.tableRow([]string{
			truncate(pr.Name, 40),
			entity.ProjectStatusLabel(pr.Status),
			FormatCOP(pr.TotalBudget),
			FormatCOP(pr.ExecutedBudget),
		}, widths)
	}
}

func writeTopExpenses(p *pdfReport, expenses []ExpenseRecord) {
	p.sectionTitle("Mayores Gastos")

	sorted := make([]ExpenseRecord, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	if len(sorted) > maxDetailRows {
		sorted = sorted[:maxDetailRows]
	}

	widths := []float64{55, 30, 45, 20, 30}
	p.tableHeader([]string{"Descripción", "Categoría", "Proyecto", "Fecha", "Monto"}, widths)
	for _, e := range sorted {
		p.tableRow([]string{
			truncate(e.Description, 30),
			entity.ExpenseCategoryLabel(e.Category),
			truncate(placeholder(e.ProjectName, "N/A"), 25),
			e.Date.Format("2006-01-02"),
			FormatCOP(e.Amount),
		}, widths)
	}
}

func writeTopPayments(p *pdfReport, payments []PaymentRecord) {
	p.sectionTitle("Mayores Pagos")

	sorted := make([]PaymentRecord, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	if len(sorted) > maxDetailRows {
		sorted = sorted[:maxDetailRows]
	}

	widths := []float64{50, 35, 45, 20, 30}
	p.tableHeader([]string{"Trabajador", "Labor", "Proyecto", "Fecha", "Valor"}, widths)
	for _, pay := range sorted {
		p.tableRow([]string{
			truncate(placeholder(pay.WorkerName, "N/A"), 28),
			entity.LaborTypeLabel(pay.LaborType),
			truncate(placeholder(pay.ProjectName, "N/A"), 25),
			pay.Date.Format("2006-01-02"),
			FormatCOP(pay.Amount),
		}, widths)
	}
}
