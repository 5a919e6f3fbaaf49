// internal/core/ports/report_exporter.go
package ports

import (
	"context"
	"io"
	"iter"

	"github.com/ammerola/vaxtrack/internal/core/domain"
)

// ReportExporter renders a point-in-time report of batches and inoculations.
type ReportExporter interface {
	Export(ctx context.Context, w io.Writer, batches []domain.VaccineBatch, inoculations iter.Seq[domain.Inoculation]) error
}
