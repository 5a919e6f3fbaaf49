// internal/core/services/inoculation_ledger.go
package services

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/ammerola/vaxtrack/internal/core/domain"
	"github.com/ammerola/vaxtrack/internal/core/ports"
)

// InoculationLedger records inoculations and consumes doses through the registry
type InoculationLedger struct {
	registry ports.BatchRegistry
	history  []domain.Inoculation // oldest first
	logger   *slog.Logger
}

// Statically assert that *InoculationLedger implements the InoculationLedger interface.
var _ ports.InoculationLedger = (*InoculationLedger)(nil)

// NewInoculationLedger creates an empty ledger backed by registry
func NewInoculationLedger(registry ports.BatchRegistry, logger *slog.Logger) *InoculationLedger {
	return &InoculationLedger{
		registry: registry,
		logger:   logger.With(slog.String("component", "inoculation_ledger")),
	}
}

// AddInoculation validates the event against the referenced batch, consumes
// one dose and records it. A rejected call changes neither the batch nor the
// history.
func (l *InoculationLedger) AddInoculation(ctx context.Context, user, batchID string, date domain.Date) (domain.Inoculation, error) {
	if err := date.Validate(); err != nil {
		return l.reject(ctx, batchID, err)
	}
	if err := domain.ValidateUser(user); err != nil {
		return l.reject(ctx, batchID, err)
	}

	batch, err := l.registry.FindByBatchID(ctx, batchID)
	if err != nil {
		return l.reject(ctx, batchID, err)
	}
	if batch.Expired(date) {
		return l.reject(ctx, batchID, domain.ErrExpiredBatch)
	}
	if batch.Doses < 1 {
		return l.reject(ctx, batchID, domain.ErrNoDosesAvailable)
	}

	if err := l.registry.DecrementDoses(ctx, batchID); err != nil {
		l.logger.ErrorContext(ctx, "dose decrement failed after checks passed",
			slog.String("batch_id", batchID),
			slog.String("error", err.Error()))
		return domain.Inoculation{}, fmt.Errorf("%w: %v", domain.ErrInconsistentState, err)
	}

	inoculation := domain.Inoculation{
		User:    user,
		BatchID: batchID,
		Date:    date,
	}
	inoculation.PrepareForStorage()
	l.history = append(l.history, inoculation)

	l.logger.InfoContext(ctx, "recorded inoculation",
		slog.String("inoculation_id", inoculation.ID.String()),
		slog.String("batch_id", batchID),
		slog.String("date", date.String()))

	return inoculation, nil
}

// ListInoculations yields inoculations most-recent-first. The sequence
// covers the history as of the call and can be ranged over repeatedly.
func (l *InoculationLedger) ListInoculations(_ context.Context) iter.Seq[domain.Inoculation] {
	snapshot := l.history[:len(l.history):len(l.history)]
	return func(yield func(domain.Inoculation) bool) {
		for i := len(snapshot) - 1; i >= 0; i-- {
			if !yield(snapshot[i]) {
				return
			}
		}
	}
}

// Len returns the number of recorded inoculations
func (l *InoculationLedger) Len() int {
	return len(l.history)
}

func (l *InoculationLedger) reject(ctx context.Context, batchID string, err error) (domain.Inoculation, error) {
	l.logger.DebugContext(ctx, "rejected inoculation",
		slog.String("batch_id", batchID),
		slog.String("kind", string(domain.KindOf(err))))
	return domain.Inoculation{}, err
}
