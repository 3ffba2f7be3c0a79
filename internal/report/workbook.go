package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
)

// Nombres de hoja, en orden fijo. El prefijo emoji permite ubicar cada
// pestaña de un vistazo.
const (
	sheetDetail   = "📋 Detalle"
	sheetProjects = "📊 Por Proyecto"
	sheetCategory = "🏷️ Por Categoría"
	sheetStats    = "📈 Estadísticas"
	sheetLabor    = "🏷️ Por Tipo de Labor"
)

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	return style
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func setColumnWidths(f *excelize.File, sheet string, widths []float64) {
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
}

// statusSplit acumulador por grupo para las hojas de resumen.
type statusSplit struct {
	key             string
	total           float64
	count           int
	doneCount       int
	doneAmount      float64
	pendingCount    int
	pendingAmount   float64
	cancelledCount  int
	cancelledAmount float64
}

// groupBy agrupa preservando el orden de primera aparición. cancelled
// puede ser nil cuando el estado solo tiene dos valores (gastos).
func groupBy(keys []string, amounts []float64, done, cancelled []bool) []*statusSplit {
	index := make(map[string]*statusSplit)
	var order []*statusSplit
	for i, key := range keys {
		g, ok := index[key]
		if !ok {
			g = &statusSplit{key: key}
			index[key] = g
			order = append(order, g)
		}
		g.total += amounts[i]
		g.count++
		switch {
		case cancelled != nil && cancelled[i]:
			g.cancelledCount++
			g.cancelledAmount += amounts[i]
		case done[i]:
			g.doneCount++
			g.doneAmount += amounts[i]
		default:
			g.pendingCount++
			g.pendingAmount += amounts[i]
		}
	}
	return order
}

// ExpensesWorkbook arma el libro de gastos: detalle, resumen por
// proyecto, resumen por categoría y estadísticas generales.
func ExpensesWorkbook(records []ExpenseRecord) (*excelize.File, string, error) {
	if len(records) == 0 {
		return nil, "", ErrNoRecords
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetDetail)
	bold := headerStyle(f)

	// Hoja 1: detalle
	writeHeaderRow(f, sheetDetail, expenseCSVHeaders, bold)
	var grandTotal float64
	for idx, r := range records {
		row := idx + 2
		f.SetCellValue(sheetDetail, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheetDetail, fmt.Sprintf("B%d", row), placeholder(r.ProjectName, "N/A"))
		f.SetCellValue(sheetDetail, fmt.Sprintf("C%d", row), entity.ExpenseCategoryLabel(r.Category))
		f.SetCellValue(sheetDetail, fmt.Sprintf("D%d", row), r.Description)
		f.SetCellValue(sheetDetail, fmt.Sprintf("E%d", row), placeholder(r.Responsible, "SIN ESPECIFICAR"))
		f.SetCellValue(sheetDetail, fmt.Sprintf("F%d", row), r.Date.Format("2006-01-02"))
		f.SetCellValue(sheetDetail, fmt.Sprintf("G%d", row), WeekdayName(r.Date))
		f.SetCellValue(sheetDetail, fmt.Sprintf("H%d", row), MonthName(r.Date))
		f.SetCellValue(sheetDetail, fmt.Sprintf("I%d", row), r.Date.Year())
		f.SetCellValue(sheetDetail, fmt.Sprintf("J%d", row), Quarter(r.Date))
		f.SetCellValue(sheetDetail, fmt.Sprintf("K%d", row), r.Amount)
		f.SetCellValue(sheetDetail, fmt.Sprintf("L%d", row), FormatCOP(r.Amount))
		f.SetCellValue(sheetDetail, fmt.Sprintf("M%d", row), entity.ApprovalLabel(r.Approved))
		f.SetCellValue(sheetDetail, fmt.Sprintf("N%d", row), placeholder(r.Notes, "N/A"))
		grandTotal += r.Amount
	}
	setColumnWidths(f, sheetDetail, []float64{10, 28, 16, 40, 22, 12, 12, 12, 8, 10, 14, 16, 12, 30})

	// Hoja 2: resumen por proyecto
	f.NewSheet(sheetProjects)
	writeHeaderRow(f, sheetProjects, []string{
		"Proyecto", "Total", "Registros", "Aprobados", "Monto Aprobado",
		"Pendientes", "Monto Pendiente", "% Aprobado",
	}, bold)
	projectKeys := make([]string, len(records))
	amounts := make([]float64, len(records))
	approved := make([]bool, len(records))
	for i, r := range records {
		projectKeys[i] = placeholder(r.ProjectName, "N/A")
		amounts[i] = r.Amount
		approved[i] = r.Approved
	}
	for idx, g := range groupBy(projectKeys, amounts, approved, nil) {
		row := idx + 2
		f.SetCellValue(sheetProjects, fmt.Sprintf("A%d", row), g.key)
		f.SetCellValue(sheetProjects, fmt.Sprintf("B%d", row), g.total)
		f.SetCellValue(sheetProjects, fmt.Sprintf("C%d", row), g.count)
		f.SetCellValue(sheetProjects, fmt.Sprintf("D%d", row), g.doneCount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("E%d", row), g.doneAmount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("F%d", row), g.pendingCount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("G%d", row), g.pendingAmount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("H%d", row), percentage(g.doneAmount, g.total))
	}
	setColumnWidths(f, sheetProjects, []float64{30, 16, 12, 12, 16, 12, 16, 12})

	// Hoja 3: resumen por categoría
	f.NewSheet(sheetCategory)
	writeHeaderRow(f, sheetCategory, []string{
		"Categoría", "Total", "Registros", "Aprobados", "Pendientes",
		"Promedio", "% del Total",
	}, bold)
	categoryKeys := make([]string, len(records))
	for i, r := range records {
		categoryKeys[i] = entity.ExpenseCategoryLabel(r.Category)
	}
	for idx, g := range groupBy(categoryKeys, amounts, approved, nil) {
		row := idx + 2
		f.SetCellValue(sheetCategory, fmt.Sprintf("A%d", row), g.key)
		f.SetCellValue(sheetCategory, fmt.Sprintf("B%d", row), g.total)
		f.SetCellValue(sheetCategory, fmt.Sprintf("C%d", row), g.count)
		f.SetCellValue(sheetCategory, fmt.Sprintf("D%d", row), g.doneCount)
		f.SetCellValue(sheetCategory, fmt.Sprintf("E%d", row), g.pendingCount)
		f.SetCellValue(sheetCategory, fmt.Sprintf("F%d", row), g.total/float64(g.count))
		f.SetCellValue(sheetCategory, fmt.Sprintf("G%d", row), percentage(g.total, grandTotal))
	}
	setColumnWidths(f, sheetCategory, []float64{22, 16, 12, 12, 12, 16, 12})

	// Hoja 4: estadísticas generales
	var approvedTotal float64
	var approvedCount int
	projectSet := make(map[string]struct{})
	for _, r := range records {
		if r.Approved {
			approvedTotal += r.Amount
			approvedCount++
		}
		projectSet[r.ProjectID] = struct{}{}
	}
	writeStatsSheet(f, bold, []statRow{
		{"Total de registros", strconv.Itoa(len(records)), "Gastos incluidos en el reporte"},
		{"Monto total", FormatCOP(grandTotal), "Suma de todos los gastos"},
		{"Monto aprobado", FormatCOP(approvedTotal), "Suma de gastos aprobados"},
		{"Monto pendiente", FormatCOP(grandTotal - approvedTotal), "Suma de gastos pendientes"},
		{"% aprobado", fmt.Sprintf("%.1f%%", percentage(approvedTotal, grandTotal)), "Monto aprobado sobre el total"},
		{"Promedio por gasto", FormatCOP(grandTotal / float64(len(records))), "Monto total entre registros"},
		{"Proyectos distintos", strconv.Itoa(len(projectSet)), "Proyectos con gastos en el reporte"},
		{"Generado", time.Now().Format("2006-01-02 15:04"), "Fecha y hora de generación"},
	})

	filename := fmt.Sprintf("reporte-gastos-%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}

// PaymentsWorkbook arma el libro de pagos: detalle, resumen por
// proyecto, resumen por tipo de labor y estadísticas generales.
func PaymentsWorkbook(records []PaymentRecord) (*excelize.File, string, error) {
	if len(records) == 0 {
		return nil, "", ErrNoRecords
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetDetail)
	bold := headerStyle(f)

	// Hoja 1: detalle
	writeHeaderRow(f, sheetDetail, paymentCSVHeaders, bold)
	var grandTotal float64
	for idx, r := range records {
		row := idx + 2
		f.SetCellValue(sheetDetail, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheetDetail, fmt.Sprintf("B%d", row), placeholder(r.ProjectName, "N/A"))
		f.SetCellValue(sheetDetail, fmt.Sprintf("C%d", row), placeholder(r.WorkerName, "N/A"))
		f.SetCellValue(sheetDetail, fmt.Sprintf("D%d", row), entity.LaborTypeLabel(r.LaborType))
		f.SetCellValue(sheetDetail, fmt.Sprintf("E%d", row), r.Date.Format("2006-01-02"))
		f.SetCellValue(sheetDetail, fmt.Sprintf("F%d", row), WeekdayName(r.Date))
		f.SetCellValue(sheetDetail, fmt.Sprintf("G%d", row), MonthName(r.Date))
		f.SetCellValue(sheetDetail, fmt.Sprintf("H%d", row), r.Date.Year())
		f.SetCellValue(sheetDetail, fmt.Sprintf("I%d", row), Quarter(r.Date))
		if r.Hours != nil {
			f.SetCellValue(sheetDetail, fmt.Sprintf("J%d", row), *r.Hours)
		} else {
			f.SetCellValue(sheetDetail, fmt.Sprintf("J%d", row), "N/A")
		}
		f.SetCellValue(sheetDetail, fmt.Sprintf("K%d", row), r.Amount)
		f.SetCellValue(sheetDetail, fmt.Sprintf("L%d", row), FormatCOP(r.Amount))
		f.SetCellValue(sheetDetail, fmt.Sprintf("M%d", row), entity.PaymentStatusLabel(r.Status))
		if r.PaymentDate != nil {
			f.SetCellValue(sheetDetail, fmt.Sprintf("N%d", row), r.PaymentDate.Format("2006-01-02"))
		} else {
			f.SetCellValue(sheetDetail, fmt.Sprintf("N%d", row), "SIN PAGAR")
		}
		f.SetCellValue(sheetDetail, fmt.Sprintf("O%d", row), placeholder(r.Notes, "N/A"))
		grandTotal += r.Amount
	}
	setColumnWidths(f, sheetDetail, []float64{10, 28, 24, 16, 12, 12, 12, 8, 10, 8, 14, 16, 12, 12, 30})

	paid := make([]bool, len(records))
	cancelled := make([]bool, len(records))
	amounts := make([]float64, len(records))
	for i, r := range records {
		paid[i] = r.Status == entity.PaymentStatusPaid
		cancelled[i] = r.Status == entity.PaymentStatusCancelled
		amounts[i] = r.Amount
	}

	// Hoja 2: resumen por proyecto
	f.NewSheet(sheetProjects)
	writeHeaderRow(f, sheetProjects, []string{
		"Proyecto", "Total", "Registros", "Pagados", "Monto Pagado",
		"Pendientes", "Monto Pendiente", "Cancelados", "% Pagado",
	}, bold)
	projectKeys := make([]string, len(records))
	for i, r := range records {
		projectKeys[i] = placeholder(r.ProjectName, "N/A")
	}
	for idx, g := range groupBy(projectKeys, amounts, paid, cancelled) {
		row := idx + 2
		f.SetCellValue(sheetProjects, fmt.Sprintf("A%d", row), g.key)
		f.SetCellValue(sheetProjects, fmt.Sprintf("B%d", row), g.total)
		f.SetCellValue(sheetProjects, fmt.Sprintf("C%d", row), g.count)
		f.SetCellValue(sheetProjects, fmt.Sprintf("D%d", row), g.doneCount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("E%d", row), g.doneAmount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("F%d", row), g.pendingCount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("G%d", row), g.pendingAmount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("H%d", row), g.cancelledCount)
		f.SetCellValue(sheetProjects, fmt.Sprintf("I%d", row), percentage(g.doneAmount, g.total))
	}
	setColumnWidths(f, sheetProjects, []float64{30, 16, 12, 12, 16, 12, 16, 12, 12})

	// Hoja 3: resumen por tipo de labor
	f.NewSheet(sheetLabor)
	writeHeaderRow(f, sheetLabor, []string{
		"Tipo de Labor", "Total", "Registros", "Pagados", "Pendientes",
		"Cancelados", "Promedio", "% del Total",
	}, bold)
	laborKeys := make([]string, len(records))
	for i, r := range records {
		laborKeys[i] = entity.LaborTypeLabel(r.LaborType)
	}
	for idx, g := range groupBy(laborKeys, amounts, paid, cancelled) {
		row := idx + 2
		f.SetCellValue(sheetLabor, fmt.Sprintf("A%d", row), g.key)
		f.SetCellValue(sheetLabor, fmt.Sprintf("B%d", row), g.total)
		f.SetCellValue(sheetLabor, fmt.Sprintf("C%d", row), g.count)
		f.SetCellValue(sheetLabor, fmt.Sprintf("D%d", row), g.doneCount)
		f.SetCellValue(sheetLabor, fmt.Sprintf("E%d", row), g.pendingCount)
		f.SetCellValue(sheetLabor, fmt.Sprintf("F%d", row), g.cancelledCount)
		f.SetCellValue(sheetLabor, fmt.Sprintf("G%d", row), g.total/float64(g.count))
		f.SetCellValue(sheetLabor, fmt.Sprintf("H%d", row), percentage(g.total, grandTotal))
	}
	setColumnWidths(f, sheetLabor, []float64{22, 16, 12, 12, 12, 12, 16, 12})

	// Hoja 4: estadísticas generales. El monto pendiente se acumula por
	// estado explícito: los cancelados no cuentan como deuda.
	var paidTotal, pendingTotal, cancelledTotal float64
	projectSet := make(map[string]struct{})
	workerSet := make(map[string]struct{})
	for _, r := range records {
		switch r.Status {
		case entity.PaymentStatusPaid:
			paidTotal += r.Amount
		case entity.PaymentStatusCancelled:
			cancelledTotal += r.Amount
		default:
			pendingTotal += r.Amount
		}
		projectSet[r.ProjectID] = struct{}{}
		workerSet[r.WorkerID] = struct{}{}
	}
	writeStatsSheet(f, bold, []statRow{
		{"Total de registros", strconv.Itoa(len(records)), "Pagos incluidos en el reporte"},
		{"Monto total", FormatCOP(grandTotal), "Suma de todos los pagos acordados"},
		{"Monto pagado", FormatCOP(paidTotal), "Suma de pagos realizados"},
		{"Monto pendiente", FormatCOP(pendingTotal), "Suma de pagos sin realizar"},
		{"Monto cancelado", FormatCOP(cancelledTotal), "Suma de pagos cancelados"},
		{"% pagado", fmt.Sprintf("%.1f%%", percentage(paidTotal, grandTotal)), "Monto pagado sobre el total"},
		{"Promedio por pago", FormatCOP(grandTotal / float64(len(records))), "Monto total entre registros"},
		{"Proyectos distintos", strconv.Itoa(len(projectSet)), "Proyectos con pagos en el reporte"},
		{"Trabajadores distintos", strconv.Itoa(len(workerSet)), "Personas con pagos en el reporte"},
		{"Generado", time.Now().Format("2006-01-02 15:04"), "Fecha y hora de generación"},
	})

	filename := fmt.Sprintf("reporte-pagos-%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}

type statRow struct {
	label       string
	value       string
	description string
}

func writeStatsSheet(f *excelize.File, bold int, rows []statRow) {
	f.NewSheet(sheetStats)
	writeHeaderRow(f, sheetStats, []string{"Métrica", "Valor", "Descripción"}, bold)
	for idx, s := range rows {
		row := idx + 2
		f.SetCellValue(sheetStats, fmt.Sprintf("A%d", row), s.label)
		f.SetCellValue(sheetStats, fmt.Sprintf("B%d", row), s.value)
		f.SetCellValue(sheetStats, fmt.Sprintf("C%d", row), s.description)
	}
	setColumnWidths(f, sheetStats, []float64{26, 22, 44})
}
