// internal/core/ports/inoculation_ledger.go
package ports

import (
	"context"
	"iter"

	"github.com/ammerola/vaxtrack/internal/core/domain"
)

// InoculationLedger defines the port for the inoculation history.
type InoculationLedger interface {
	AddInoculation(ctx context.Context, user, batchID string, date domain.Date) (domain.Inoculation, error)
	// ListInoculations yields the history most-recent-first.
	ListInoculations(ctx context.Context) iter.Seq[domain.Inoculation]
	Len() int
}
