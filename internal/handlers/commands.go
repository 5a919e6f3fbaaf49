// internal/handlers/commands.go
package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"

	"github.com/ammerola/vaxtrack/internal/core/domain"
	"github.com/ammerola/vaxtrack/internal/core/ports"
	"github.com/ammerola/vaxtrack/internal/pkg/logger"
)

// Operator-facing messages for failures detected before the core is reached.
const (
	MsgInvalidArguments = "invalid arguments"
	MsgNotImplemented   = "command not implemented"
	MsgUnknownCommand   = "unknown command"
)

// ErrQuit is returned by Execute when the quit command is read
var ErrQuit = errors.New("quit")

// CommandProcessor reads one single-letter command per line and applies it
// to the registry and ledger. It is the only writer of command output.
type CommandProcessor struct {
	registry ports.BatchRegistry
	ledger   ports.InoculationLedger
	out      io.Writer
	logger   *slog.Logger
}

// NewCommandProcessor creates a new command processor writing results to out
func NewCommandProcessor(registry ports.BatchRegistry, ledger ports.InoculationLedger, out io.Writer, logger *slog.Logger) *CommandProcessor {
	return &CommandProcessor{
		registry: registry,
		ledger:   ledger,
		out:      out,
		logger:   logger.With(slog.String("handler", "commands")),
	}
}

// Run processes commands from in until the quit command, end of input or
// cancellation of ctx. Cancellation returns ctx.Err() even while a read is
// pending.
func (p *CommandProcessor) Run(ctx context.Context, in io.Reader) error {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-readCtx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	lineNo := 0
	for {
		select {
		case <-ctx.Done():
			p.logger.InfoContext(ctx, "command processing interrupted", slog.Int("lines", lineNo))
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read commands: %w", err)
					}
				default:
					return ctx.Err()
				}
				p.logger.InfoContext(ctx, "end of input", slog.Int("lines", lineNo))
				return nil
			}

			lineNo++
			lineCtx := logger.WithValue(ctx, logger.ContextKeyLine, lineNo)

			if err := p.Execute(lineCtx, line); err != nil {
				if errors.Is(err, ErrQuit) {
					p.logger.InfoContext(lineCtx, "quit command received")
					return nil
				}
				return err
			}
		}
	}
}

// Execute runs a single command line. Rejections are written to the output
// and are not returned; only ErrQuit and output failures are.
func (p *CommandProcessor) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	args, err := shlex.Split(literalHashes(line))
	if err != nil || len(args) == 0 {
		return p.println(MsgInvalidArguments)
	}

	cmd, args := args[0], args[1:]
	ctx = logger.WithValue(ctx, logger.ContextKeyCommand, cmd)
	start := time.Now()
	defer func() {
		p.logger.DebugContext(ctx, "processed command",
			slog.Duration("duration_ms", time.Since(start)))
	}()

	switch cmd {
	case "q":
		return ErrQuit
	case "c":
		return p.addBatch(ctx, args)
	case "l":
		return p.listBatches(ctx, args)
	case "i":
		return p.addInoculation(ctx, args)
	case "h":
		return p.listInoculations(ctx, args)
	case "a", "r", "d", "u", "t":
		return p.println(MsgNotImplemented)
	default:
		return p.println(MsgUnknownCommand)
	}
}

// c <batch> <DD-MM-YYYY> <doses> <name>
func (p *CommandProcessor) addBatch(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return p.println(MsgInvalidArguments)
	}

	expiry, err := domain.ParseDate(args[1])
	if err != nil {
		return p.println(MsgInvalidArguments)
	}
	doses, err := strconv.Atoi(args[2])
	if err != nil {
		return p.println(MsgInvalidArguments)
	}

	batch, err := p.registry.AddBatch(logger.WithValue(ctx, logger.ContextKeyBatchID, args[0]), args[0], expiry, doses, args[3])
	if err != nil {
		return p.reject(ctx, err)
	}

	return p.println(batch.BatchID)
}

// l
func (p *CommandProcessor) listBatches(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return p.println(MsgInvalidArguments)
	}

	for _, b := range p.registry.ListBatches(ctx) {
		if _, err := fmt.Fprintf(p.out, "Vaccine: %s, Batch: %s, Expiration Date: %s, Doses: %d\n", b.Name, b.BatchID, b.Expiry, b.Doses); err != nil {
			return err
		}
	}
	return nil
}

// i <user> <batch> <DD-MM-YYYY>
func (p *CommandProcessor) addInoculation(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return p.println(MsgInvalidArguments)
	}

	date, err := domain.ParseDate(args[2])
	if err != nil {
		return p.println(MsgInvalidArguments)
	}

	if _, err := p.ledger.AddInoculation(logger.WithValue(ctx, logger.ContextKeyBatchID, args[1]), args[0], args[1], date); err != nil {
		return p.reject(ctx, err)
	}
	return nil
}

// h
func (p *CommandProcessor) listInoculations(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return p.println(MsgInvalidArguments)
	}

	for i := range p.ledger.ListInoculations(ctx) {
		if _, err := fmt.Fprintf(p.out, "user: \"%s\", batch: %s, Data: %s\n", i.User, i.BatchID, i.Date); err != nil {
			return err
		}
	}
	return nil
}

func (p *CommandProcessor) reject(ctx context.Context, err error) error {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		p.logger.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
	}
	return p.println(err.Error())
}

// literalHashes escapes every '#' outside single quotes so shlex reads it as
// text instead of opening a comment. A backslash before '#' is dropped by
// shlex both in bare words and inside double quotes.
func literalHashes(line string) string {
	if !strings.ContainsRune(line, '#') {
		return line
	}

	var b strings.Builder
	var quote rune
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			}
		case r == '\\':
			escaped = true
		case r == '#':
			b.WriteRune('\\')
		case r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (p *CommandProcessor) println(msg string) error {
	_, err := fmt.Fprintln(p.out, msg)
	return err
}
