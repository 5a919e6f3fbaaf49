// internal/core/ports/batch_registry.go
package ports

import (
	"context"

	"github.com/ammerola/vaxtrack/internal/core/domain"
)

// BatchRegistry defines the port for the set of registered vaccine batches.
// It is the sole owner of batches and of their remaining doses.
type BatchRegistry interface {
	AddBatch(ctx context.Context, batchID string, expiry domain.Date, doses int, name string) (domain.VaccineBatch, error)
	FindByBatchID(ctx context.Context, batchID string) (domain.VaccineBatch, error)
	DecrementDoses(ctx context.Context, batchID string) error
	ListBatches(ctx context.Context) []domain.VaccineBatch
	Count() int
}
