// Package cli implements the docgen command line.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-docgen/internal/config"
	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/pkg/export"
	"github.com/goliatone/go-docgen/pkg/intake"
	"github.com/goliatone/go-docgen/pkg/orchestrator"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/pdf"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// App carries the process dependencies the commands need. Zero fields fall
// back to the process defaults.
type App struct {
	Out    io.Writer
	Err    io.Writer
	Driver intake.PromptDriver
	Now    func() time.Time
	NewID  func() string

	configPath string
	logLevel   string
}

func (a *App) stdout() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Err != nil {
		return a.Err
	}
	return os.Stderr
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd(&App{}).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "docgen",
		Short:         "Generate structured business documents",
		Long:          `docgen turns intake answers into contracts, invoices and certificates, exported as PDF, HTML, text or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.stdout())
	root.SetErr(app.stderr())
	root.PersistentFlags().StringVar(&app.configPath, "config", "", "Path to a YAML or TOML config file")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "Override the configured log level")

	root.AddCommand(
		newTemplatesCmd(app),
		newQuestionsCmd(app),
		newGenerateCmd(app),
		newServeCmd(app),
		newVersionCmd(),
	)
	return root
}

// environment bundles the per-invocation services built from config.
type environment struct {
	cfg          config.Config
	logger       *slog.Logger
	orchestrator *orchestrator.Orchestrator
	exporter     *export.Exporter
}

func (a *App) environment() (*environment, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	logger := logging.NewWithWriter(a.stderr(), cfg.Logging.Level, cfg.Logging.Format)

	geometry, err := cfg.Geometry()
	if err != nil {
		return nil, err
	}

	orchestratorOptions := []orchestrator.Option{
		orchestrator.WithPacing(cfg.PacingPolicy()),
		orchestrator.WithLogger(logger),
	}
	exportOptions := []export.Option{
		export.WithRegistry(export.DefaultRegistry(
			pdf.WithGeometry(geometry),
			pdf.WithCompression(cfg.Layout.Compression),
			pdf.WithLogger(logger),
		)),
		export.WithRenderOptions(render.RenderOptions{
			Theme:    cfg.Theme.RendererConfig(),
			ExactTOC: cfg.Layout.ExactTOC,
		}),
		export.WithLogger(logger),
	}
	if a.Now != nil {
		orchestratorOptions = append(orchestratorOptions, orchestrator.WithClock(a.Now))
		exportOptions = append(exportOptions, export.WithClock(a.Now))
	}
	if a.NewID != nil {
		orchestratorOptions = append(orchestratorOptions, orchestrator.WithIDGenerator(a.NewID))
	}

	return &environment{
		cfg:          cfg,
		logger:       logger,
		orchestrator: orchestrator.New(orchestratorOptions...),
		exporter:     export.New(exportOptions...),
	}, nil
}
