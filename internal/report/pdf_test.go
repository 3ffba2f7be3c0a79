package report

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
)

// pdfText descomprime los streams de contenido del documento para poder
// inspeccionar el texto emitido. Los streams que no son zlib se ignoran.
func pdfText(t *testing.T, doc []byte) string {
	t.Helper()
	var out bytes.Buffer
	rest := doc
	for {
		i := bytes.Index(rest, []byte("stream\n"))
		if i < 0 {
			break
		}
		rest = rest[i+len("stream\n"):]
		j := bytes.Index(rest, []byte("endstream"))
		if j < 0 {
			break
		}
		raw := bytes.TrimSuffix(rest[:j], []byte("\n"))
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			// falso positivo (p. ej. la cola de "endstream"): se sigue
			// buscando desde aquí sin consumir hasta el cierre
			continue
		}
		io.Copy(&out, zr) //nolint:errcheck
		zr.Close()
		rest = rest[j:]
	}
	return out.String()
}

func TestConsolidatedPDFEmptyData(t *testing.T) {
	_, _, err := ConsolidatedPDF("Corporación Cultural", ConsolidatedData{}, PDFOptions{})
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestConsolidatedPDFProducesDocument(t *testing.T) {
	data := ConsolidatedData{
		Projects: []ProjectSummary{
			{ID: "p1", Name: "Festival de Teatro", Status: entity.ProjectStatusActive,
				TotalBudget: 10000000, ExecutedBudget: 4500000},
		},
		Expenses: sampleExpenses(),
	}
	opts := PDFOptions{
		Title:           "Informe de Gestión",
		IncludeSummary:  true,
		IncludeProjects: true,
		IncludeExpenses: true,
	}

	content, filename, err := ConsolidatedPDF("Corporación Cultural", data, opts)
	if err != nil {
		t.Fatalf("ConsolidatedPDF failed: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if len(content) < 1000 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(content))
	}
	if filename == "" {
		t.Fatalf("expected a dated filename")
	}
}

func TestConsolidatedPDFHandlesLargeCollections(t *testing.T) {
	// Las tablas de detalle recortan a los N mayores montos; colecciones
	// grandes no deben romper la generación.
	var data ConsolidatedData
	for i := 0; i < 60; i++ {
		data.Projects = append(data.Projects, ProjectSummary{
			ID:             fmt.Sprintf("p%d", i),
			Name:           fmt.Sprintf("Proyecto %d", i),
			Status:         entity.ProjectStatusActive,
			TotalBudget:    1000000,
			ExecutedBudget: float64(i) * 10000,
		})
		data.Expenses = append(data.Expenses, ExpenseRecord{
			ID:          fmt.Sprintf("g%d", i),
			Description: fmt.Sprintf("Gasto %d", i),
			Category:    entity.ExpenseCategoryMaterials,
			Amount:      float64(i) * 1000,
			Date:        day(2025, 3, 1),
		})
	}

	content, _, err := ConsolidatedPDF("Corporación Cultural", data, PDFOptions{
		IncludeSummary:  true,
		IncludeProjects: true,
		IncludeExpenses: true,
	})
	if err != nil {
		t.Fatalf("ConsolidatedPDF failed: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
}

func TestConsolidatedPDFFooterUsesCP1252(t *testing.T) {
	// Las fuentes base de gofpdf esperan cp1252: la "á" del pie de página
	// debe emitirse como 0xE1, nunca como la secuencia UTF-8 cruda.
	data := ConsolidatedData{Expenses: sampleExpenses()}
	content, _, err := ConsolidatedPDF("Corporación Cultural", data, PDFOptions{
		IncludeSummary:  true,
		IncludeExpenses: true,
	})
	if err != nil {
		t.Fatalf("ConsolidatedPDF failed: %v", err)
	}

	text := pdfText(t, content)
	if text == "" {
		t.Fatalf("no content streams decoded")
	}
	if !strings.Contains(text, "P\xe1gina 1 de") {
		t.Fatalf("footer page number missing or badly encoded")
	}
	if strings.Contains(text, "P\xc3\xa1gina") {
		t.Fatalf("footer contains raw UTF-8 bytes")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("corto", 10); got != "corto" {
		t.Fatalf("short strings must pass through, got %q", got)
	}
	got := truncate("una descripción bastante larga", 10)
	if len([]rune(got)) != 10 {
		t.Fatalf("expected 10 runes, got %d (%q)", len([]rune(got)), got)
	}
}
