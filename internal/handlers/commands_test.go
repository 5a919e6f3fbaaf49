// internal/handlers/commands_test.go
package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/vaxtrack/internal/core/domain"
	"github.com/ammerola/vaxtrack/internal/core/services"
	"github.com/ammerola/vaxtrack/internal/handlers"
	"github.com/ammerola/vaxtrack/test/helpers"
	"github.com/ammerola/vaxtrack/test/mocks"
)

func newProcessor(maxBatches int) (*handlers.CommandProcessor, *bytes.Buffer) {
	logger := helpers.TestLogger()
	registry := services.NewBatchRegistry(maxBatches, logger)
	ledger := services.NewInoculationLedger(registry, logger)

	var out bytes.Buffer
	return handlers.NewCommandProcessor(registry, ledger, &out, logger), &out
}

func run(t *testing.T, p *handlers.CommandProcessor, lines ...string) {
	t.Helper()
	require.NoError(t, p.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n"))))
}

func TestCommandProcessor_Scenario(t *testing.T) {
	p, out := newProcessor(services.DefaultMaxBatches)

	run(t, p,
		"c AB12 10-05-2025 2 Pfizer",
		"c 00FF 01-01-2030 5 Moderna",
		`i "Ana Silva" AB12 10-05-2025`,
		"i Bruno AB12 01-05-2025",
		"i Carla AB12 01-05-2025",
		"i Dora AB12 11-05-2025",
		"l",
		"h",
	)

	want := []string{
		"AB12",
		"00FF",
		"no doses available",
		"batch expired",
		"Vaccine: Pfizer, Batch: AB12, Expiration Date: 10-05-2025, Doses: 0",
		"Vaccine: Moderna, Batch: 00FF, Expiration Date: 01-01-2030, Doses: 5",
		`user: "Bruno", batch: AB12, Data: 01-05-2025`,
		`user: "Ana Silva", batch: AB12, Data: 10-05-2025`,
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestCommandProcessor_BatchRejections(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "name_with_whitespace", line: `c AB12 10-05-2025 2 "Pfi zer"`, want: "invalid name"},
		{name: "lowercase_batch", line: "c ab12 10-05-2025 2 Pfizer", want: "invalid batch"},
		{name: "out_of_range_date", line: "c AB12 32-05-2025 2 Pfizer", want: "invalid date"},
		{name: "zero_doses", line: "c AB12 10-05-2025 0 Pfizer", want: "invalid quantity"},
		{name: "duplicate_batch", line: "c 0001 10-05-2025 9 Other", want: "duplicate batch number"},
		{name: "unparsable_date", line: "c AB12 10/05/2025 2 Pfizer", want: handlers.MsgInvalidArguments},
		{name: "unparsable_doses", line: "c AB12 10-05-2025 two Pfizer", want: handlers.MsgInvalidArguments},
		{name: "missing_name", line: "c AB12 10-05-2025 2", want: handlers.MsgInvalidArguments},
		{name: "unterminated_quote", line: `c AB12 10-05-2025 2 "Pfizer`, want: handlers.MsgInvalidArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newProcessor(services.DefaultMaxBatches)
			run(t, p, "c 0001 01-01-2030 1 Seed")
			out.Reset()

			run(t, p, tt.line, "l")

			assert.Equal(t, tt.want+"\nVaccine: Seed, Batch: 0001, Expiration Date: 01-01-2030, Doses: 1\n", out.String())
		})
	}
}

func TestCommandProcessor_Capacity(t *testing.T) {
	p, out := newProcessor(1)

	run(t, p, "c 01 01-01-2030 1 A", "c 02 01-01-2030 1 B")

	assert.Equal(t, "01\ntoo many vaccines\n", out.String())
}

func TestCommandProcessor_InoculationRejections(t *testing.T) {
	p, out := newProcessor(0)

	run(t, p,
		"c AB12 10-05-2025 1 Pfizer",
		"i A FFFF 01-05-2025",
		"i A AB12 01-13-2025",
		`i "" AB12 01-05-2025`,
		"i A AB12",
		"h",
	)

	assert.Equal(t, "AB12\nno such batch\ninvalid date\ninvalid user\ninvalid arguments\n", out.String())
}

func TestCommandProcessor_OtherCommands(t *testing.T) {
	p, out := newProcessor(0)

	run(t, p, "", "   ", "a", "r AB12", "d", "u x", "t 01-01-2025", "z", "l extra", "h extra")

	want := strings.Repeat(handlers.MsgNotImplemented+"\n", 5) +
		handlers.MsgUnknownCommand + "\n" +
		handlers.MsgInvalidArguments + "\n" +
		handlers.MsgInvalidArguments + "\n"
	assert.Equal(t, want, out.String())
}

func TestCommandProcessor_QuitStopsProcessing(t *testing.T) {
	p, out := newProcessor(0)

	run(t, p, "c AB12 10-05-2025 1 Pfizer", "q", "c FF 10-05-2025 1 Never")

	assert.Equal(t, "AB12\n", out.String())
}

func TestCommandProcessor_Execute(t *testing.T) {
	p, _ := newProcessor(0)

	assert.ErrorIs(t, p.Execute(context.Background(), "q"), handlers.ErrQuit)
	assert.NoError(t, p.Execute(context.Background(), "l"))
}

func TestCommandProcessor_WithMocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockBatchRegistry(ctrl)
	ledger := mocks.NewMockInoculationLedger(ctrl)

	var out bytes.Buffer
	p := handlers.NewCommandProcessor(registry, ledger, &out, helpers.TestLogger())

	registry.EXPECT().
		AddBatch(gomock.Any(), "AB12", domain.NewDate(10, 5, 2025), 3, "Pfizer").
		Return(domain.VaccineBatch{BatchID: "AB12"}, nil)
	ledger.EXPECT().
		AddInoculation(gomock.Any(), "Ana Silva", "AB12", domain.NewDate(1, 5, 2025)).
		Return(domain.Inoculation{}, fmt.Errorf("%w: %v", domain.ErrInconsistentState, errors.New("lost batch")))

	run(t, p, "c AB12 10-05-2025 3 Pfizer", `i 'Ana Silva' AB12 01-05-2025`)

	assert.Equal(t, "AB12\ninconsistent state: lost batch\n", out.String())
}

func TestCommandProcessor_HashIsLiteral(t *testing.T) {
	p, out := newProcessor(0)

	run(t, p,
		"c AB12 10-05-2025 2 #Pfizer",
		"c CD34 10-05-2025 2 'Mod#erna'",
		`c EF56 10-05-2025 2 "#1"`,
		"i #7 AB12 01-05-2025",
		"l",
		"h",
	)

	want := []string{
		"AB12",
		"CD34",
		"EF56",
		"Vaccine: #Pfizer, Batch: AB12, Expiration Date: 10-05-2025, Doses: 1",
		"Vaccine: Mod#erna, Batch: CD34, Expiration Date: 10-05-2025, Doses: 2",
		"Vaccine: #1, Batch: EF56, Expiration Date: 10-05-2025, Doses: 2",
		`user: "#7", batch: AB12, Data: 01-05-2025`,
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestCommandProcessor_WhitespaceUserAccepted(t *testing.T) {
	p, out := newProcessor(0)

	run(t, p, "c AB12 10-05-2025 1 Pfizer", `i " " AB12 01-05-2025`, "h")

	assert.Equal(t, "AB12\n"+`user: " ", batch: AB12, Data: 01-05-2025`+"\n", out.String())
}

func TestCommandProcessor_RunStopsOnCancel(t *testing.T) {
	p, _ := newProcessor(0)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx, pr) }()

	_, err := io.WriteString(pw, "c AB12 10-05-2025 1 Pfizer\n")
	require.NoError(t, err)

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}
