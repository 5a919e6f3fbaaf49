// test/helpers/helpers.go
package helpers

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ammerola/vaxtrack/internal/core/domain"
	"github.com/ammerola/vaxtrack/internal/core/ports"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// CreateTestBatch creates a valid batch, optionally modified by overrides
func CreateTestBatch(overrides ...func(*domain.VaccineBatch)) domain.VaccineBatch {
	batch := domain.VaccineBatch{
		Name:    "Pfizer",
		BatchID: "AB12",
		Expiry:  domain.NewDate(10, 5, 2025),
		Doses:   10,
	}

	for _, override := range overrides {
		override(&batch)
	}

	return batch
}

// MustAddBatch registers batch and fails the test on rejection
func MustAddBatch(t testing.TB, registry ports.BatchRegistry, batch domain.VaccineBatch) {
	t.Helper()

	_, err := registry.AddBatch(context.Background(), batch.BatchID, batch.Expiry, batch.Doses, batch.Name)
	require.NoError(t, err, "registering batch %s", batch.BatchID)
}

// Users collects the recipients of ledger's history in listing order
func Users(ledger ports.InoculationLedger) []string {
	var users []string
	for inoculation := range ledger.ListInoculations(context.Background()) {
		users = append(users, inoculation.User)
	}
	return users
}

// Collect materializes an inoculation listing
func Collect(ledger ports.InoculationLedger) []domain.Inoculation {
	return slices.Collect(ledger.ListInoculations(context.Background()))
}
