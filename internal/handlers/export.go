// internal/handlers/export.go
package handlers

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/vaxtrack/internal/core/domain"
	"github.com/ammerola/vaxtrack/internal/core/ports"
)

// Sheet names of the exported workbook
const (
	SheetBatches      = "Batches"
	SheetInoculations = "Inoculations"
)

var (
	batchHeaders       = []string{"Name", "Batch", "Expiry", "Doses"}
	inoculationHeaders = []string{"ID", "User", "Batch", "Date"}
)

// WorkbookExporter writes batches and inoculations as an Excel workbook
type WorkbookExporter struct {
	logger *slog.Logger
}

// Statically assert that *WorkbookExporter implements the ReportExporter interface.
var _ ports.ReportExporter = (*WorkbookExporter)(nil)

// NewWorkbookExporter creates a new workbook exporter
func NewWorkbookExporter(logger *slog.Logger) *WorkbookExporter {
	return &WorkbookExporter{
		logger: logger.With(slog.String("handler", "export")),
	}
}

// Export writes the workbook to w
func (e *WorkbookExporter) Export(ctx context.Context, w io.Writer, batches []domain.VaccineBatch, inoculations iter.Seq[domain.Inoculation]) error {
	file := xlsx.NewFile()

	batchSheet, err := addSheet(file, SheetBatches, batchHeaders)
	if err != nil {
		return err
	}
	for _, b := range batches {
		row := batchSheet.AddRow()
		row.AddCell().SetString(b.Name)
		row.AddCell().SetString(b.BatchID)
		row.AddCell().SetString(b.Expiry.String())
		row.AddCell().SetInt(b.Doses)
	}

	inoculationSheet, err := addSheet(file, SheetInoculations, inoculationHeaders)
	if err != nil {
		return err
	}
	count := 0
	for i := range inoculations {
		row := inoculationSheet.AddRow()
		row.AddCell().SetString(i.ID.String())
		row.AddCell().SetString(i.User)
		row.AddCell().SetString(i.BatchID)
		row.AddCell().SetString(i.Date.String())
		count++
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.InfoContext(ctx, "exported workbook",
		slog.Int("batches", len(batches)),
		slog.Int("inoculations", count))

	return nil
}

func addSheet(file *xlsx.File, name string, headers []string) (*xlsx.Sheet, error) {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet %s: %w", name, err)
	}

	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for i := range headers {
		sheet.SetColWidth(i+1, i+1, 15)
	}

	return sheet, nil
}
