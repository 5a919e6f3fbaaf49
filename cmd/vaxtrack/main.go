// cmd/vaxtrack/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ammerola/vaxtrack/internal/core/ports"
	"github.com/ammerola/vaxtrack/internal/core/services"
	"github.com/ammerola/vaxtrack/internal/handlers"
	"github.com/ammerola/vaxtrack/internal/pkg/config"
	"github.com/ammerola/vaxtrack/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "vaxtrack",
		Short:        "Track vaccine batches and the inoculations administered from them",
		Long:         "Reads one command per line from stdin:\n  c <batch> <DD-MM-YYYY> <doses> <name>\n  l\n  i <user> <batch> <DD-MM-YYYY>\n  h\n  q",
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), v, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (json, text)")
	flags.Int("max-batches", 0, "maximum number of batches, 0 for unbounded")
	flags.String("export", "", "write an .xlsx report of batches and inoculations to this path on exit")

	for key, flag := range map[string]string{
		config.KeyLogLevel:           "log-level",
		config.KeyLogFormat:          "log-format",
		config.KeyRegistryMaxBatches: "max-batches",
		config.KeyExportPath:         "export",
	} {
		// only flags that were set on the command line override the environment
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

func run(ctx context.Context, v *viper.Viper, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	slogger := logger.SetupLogger("info", "text")

	cfg, err := config.Load(slogger.Logger, v)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		return err
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Debug("starting vaccine tracker",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("environment", cfg.App.Environment),
		slog.Int("max_batches", cfg.Registry.MaxBatches))

	deps := initializeDependencies(cfg, slogger.Logger, out)

	ctx = logger.NewSessionContext(ctx)
	if err := deps.processor.Run(ctx, in); err != nil {
		if !errors.Is(err, context.Canceled) {
			slogger.ErrorContext(ctx, "command processing failed", slog.String("error", err.Error()))
			return err
		}
		// interrupted sessions still export what was recorded
		slogger.InfoContext(ctx, "interrupted, shutting down")
	}

	if cfg.ExportEnabled() {
		if err := exportReport(ctx, cfg.Export.Path, deps); err != nil {
			slogger.ErrorContext(ctx, "export failed", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}

// dependencies holds all application dependencies
type dependencies struct {
	registry  ports.BatchRegistry
	ledger    ports.InoculationLedger
	exporter  ports.ReportExporter
	processor *handlers.CommandProcessor
}

func initializeDependencies(cfg *config.Config, slogger *slog.Logger, out io.Writer) *dependencies {
	registry := services.NewBatchRegistry(cfg.Registry.MaxBatches, slogger)
	ledger := services.NewInoculationLedger(registry, slogger)

	return &dependencies{
		registry:  registry,
		ledger:    ledger,
		exporter:  handlers.NewWorkbookExporter(slogger),
		processor: handlers.NewCommandProcessor(registry, ledger, out, slogger),
	}
}

func exportReport(ctx context.Context, path string, deps *dependencies) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", cerr)
		}
	}()

	return deps.exporter.Export(ctx, f, deps.registry.ListBatches(ctx), deps.ledger.ListInoculations(ctx))
}
