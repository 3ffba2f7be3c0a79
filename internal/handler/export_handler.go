package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/report"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportHandler handler de exportaciones (CSV, Excel, PDF)
type ExportHandler struct {
	reports *service.ReportService
}

// NewExportHandler crea el handler de exportaciones
func NewExportHandler(reports *service.ReportService) *ExportHandler {
	return &ExportHandler{reports: reports}
}

func exportError(c *gin.Context, err error) {
	if errors.Is(err, report.ErrNoRecords) {
		Unprocessable(c, "No records to export")
		return
	}
	InternalError(c, err.Error())
}

func attach(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// ExpensesCSV exporta gastos filtrados como CSV
func (h *ExportHandler) ExpensesCSV(c *gin.Context) {
	var filter report.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "Invalid filter: "+err.Error())
		return
	}

	body, filename, err := h.reports.ExpensesCSV(c.Request.Context(), GetUserID(c), filter)
	if err != nil {
		exportError(c, err)
		return
	}

	attach(c, contentTypeCSV, filename, body)
}

// PaymentsCSV exporta pagos filtrados como CSV
func (h *ExportHandler) PaymentsCSV(c *gin.Context) {
	var filter report.PaymentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "Invalid filter: "+err.Error())
		return
	}

	body, filename, err := h.reports.PaymentsCSV(c.Request.Context(), GetUserID(c), filter)
	if err != nil {
		exportError(c, err)
		return
	}

	attach(c, contentTypeCSV, filename, body)
}

// EvidenceCSV exporta evidencias filtradas como CSV
func (h *ExportHandler) EvidenceCSV(c *gin.Context) {
	var filter report.EvidenceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "Invalid filter: "+err.Error())
		return
	}

	body, filename, err := h.reports.EvidenceCSV(c.Request.Context(), GetUserID(c), filter)
	if err != nil {
		exportError(c, err)
		return
	}

	attach(c, contentTypeCSV, filename, body)
}

// ExpensesExcel exporta el libro de gastos con hojas de resumen
func (h *ExportHandler) ExpensesExcel(c *gin.Context) {
	var filter report.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "Invalid filter: "+err.Error())
		return
	}

	book, filename, err := h.reports.ExpensesWorkbook(c.Request.Context(), GetUserID(c), filter)
	if err != nil {
		exportError(c, err)
		return
	}
	defer book.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", contentTypeXLSX)
	c.Status(http.StatusOK)
	if _, err := book.WriteTo(c.Writer); err != nil {
		c.Error(err) //nolint:errcheck
	}
}

// PaymentsExcel exporta el libro de pagos con hojas de resumen
func (h *ExportHandler) PaymentsExcel(c *gin.Context) {
	var filter report.PaymentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "Invalid filter: "+err.Error())
		return
	}

	book, filename, err := h.reports.PaymentsWorkbook(c.Request.Context(), GetUserID(c), filter)
	if err != nil {
		exportError(c, err)
		return
	}
	defer book.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", contentTypeXLSX)
	c.Status(http.StatusOK)
	if _, err := book.WriteTo(c.Writer); err != nil {
		c.Error(err) //nolint:errcheck
	}
}

// ConsolidatedPDF genera el reporte PDF consolidado
func (h *ExportHandler) ConsolidatedPDF(c *gin.Context) {
	var opts report.PDFOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	body, filename, err := h.reports.ConsolidatedPDF(c.Request.Context(), GetUserID(c), opts)
	if err != nil {
		exportError(c, err)
		return
	}

	attach(c, contentTypePDF, filename, body)
}
