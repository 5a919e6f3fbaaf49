// internal/core/services/batch_registry.go
package services

import (
	"context"
	"log/slog"

	"github.com/ammerola/vaxtrack/internal/core/domain"
	"github.com/ammerola/vaxtrack/internal/core/ports"
)

// DefaultMaxBatches bounds the registry when no limit is configured.
const DefaultMaxBatches = 1000

// BatchRegistry holds vaccine batches in insertion order
type BatchRegistry struct {
	batches    []domain.VaccineBatch
	index      map[string]int
	maxBatches int
	logger     *slog.Logger
}

// Statically assert that *BatchRegistry implements the BatchRegistry interface.
var _ ports.BatchRegistry = (*BatchRegistry)(nil)

// NewBatchRegistry creates an empty registry. A maxBatches of 0 or less
// leaves the registry unbounded.
func NewBatchRegistry(maxBatches int, logger *slog.Logger) *BatchRegistry {
	return &BatchRegistry{
		index:      make(map[string]int),
		maxBatches: maxBatches,
		logger:     logger.With(slog.String("component", "batch_registry")),
	}
}

// AddBatch validates and registers a new batch
func (r *BatchRegistry) AddBatch(ctx context.Context, batchID string, expiry domain.Date, doses int, name string) (domain.VaccineBatch, error) {
	if r.maxBatches > 0 && len(r.batches) >= r.maxBatches {
		return r.reject(ctx, batchID, domain.ErrCapacityExceeded)
	}

	batch := domain.VaccineBatch{
		Name:    name,
		BatchID: batchID,
		Expiry:  expiry,
		Doses:   doses,
	}
	if err := batch.Validate(); err != nil {
		return r.reject(ctx, batchID, err)
	}

	// duplicates are only looked for once the batch is well formed
	if _, ok := r.index[batchID]; ok {
		return r.reject(ctx, batchID, domain.ErrDuplicateBatchID)
	}

	r.index[batchID] = len(r.batches)
	r.batches = append(r.batches, batch)

	r.logger.InfoContext(ctx, "registered vaccine batch",
		slog.String("batch_id", batch.BatchID),
		slog.String("name", batch.Name),
		slog.String("expiry", batch.Expiry.String()),
		slog.Int("doses", batch.Doses))

	return batch, nil
}

// FindByBatchID returns a copy of the batch with the exact given id
func (r *BatchRegistry) FindByBatchID(_ context.Context, batchID string) (domain.VaccineBatch, error) {
	i, ok := r.index[batchID]
	if !ok {
		return domain.VaccineBatch{}, domain.ErrBatchNotFound
	}
	return r.batches[i], nil
}

// DecrementDoses consumes one dose of the batch
func (r *BatchRegistry) DecrementDoses(ctx context.Context, batchID string) error {
	i, ok := r.index[batchID]
	if !ok {
		return domain.ErrBatchNotFound
	}
	if r.batches[i].Doses <= 0 {
		return domain.ErrNoDosesAvailable
	}

	r.batches[i].Doses--

	r.logger.DebugContext(ctx, "consumed dose",
		slog.String("batch_id", batchID),
		slog.Int("remaining", r.batches[i].Doses))

	return nil
}

// ListBatches returns a snapshot of all batches in insertion order
func (r *BatchRegistry) ListBatches(_ context.Context) []domain.VaccineBatch {
	out := make([]domain.VaccineBatch, len(r.batches))
	copy(out, r.batches)
	return out
}

// Count returns the number of registered batches
func (r *BatchRegistry) Count() int {
	return len(r.batches)
}

func (r *BatchRegistry) reject(ctx context.Context, batchID string, err error) (domain.VaccineBatch, error) {
	r.logger.DebugContext(ctx, "rejected vaccine batch",
		slog.String("batch_id", batchID),
		slog.String("kind", string(domain.KindOf(err))))
	return domain.VaccineBatch{}, err
}
