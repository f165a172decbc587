package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-docgen/internal/answers"
	"github.com/goliatone/go-docgen/pkg/intake"
	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/orchestrator"
)

const answersTimeout = 30 * time.Second

type generateFlags struct {
	answers     string
	interactive bool
	format      string
	output      string
	progress    bool
	stdout      bool
}

func newGenerateCmd(app *App) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate [template-id]",
		Short: "Generate a document from answers",
		Long: `Generate runs the pipeline for a template and exports the result.

Answers come from a YAML or JSON file (or URL) given with --answers, from
interactive prompts with --interactive, or both: prompts then only ask what
the file left unanswered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, flags, args[0])
		},
	}
	cmd.Flags().StringVarP(&flags.answers, "answers", "a", "", "Answers file path or URL (YAML or JSON)")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Prompt for unanswered questions")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: pdf, html, text or json (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVarP(&flags.progress, "progress", "p", false, "Print pipeline progress")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "Write the artifact to stdout instead of a file")
	return cmd
}

func runGenerate(cmd *cobra.Command, app *App, flags *generateFlags, templateID string) error {
	ctx := cmd.Context()
	env, err := app.environment()
	if err != nil {
		return err
	}

	questions, err := env.orchestrator.Registry().Questions(templateID)
	if err != nil {
		return err
	}

	collected := model.Answers{}
	if flags.answers != "" {
		loader := answers.NewLoader(answers.WithHTTP(), answers.WithTimeout(answersTimeout))
		collected, err = loader.Load(ctx, answers.ParseSource(flags.answers))
		if err != nil {
			return err
		}
	}
	if flags.interactive {
		collector := intake.New(intake.WithDriver(app.Driver))
		collected, err = collector.Collect(ctx, questions, collected)
		if err != nil {
			return err
		}
	}

	var onProgress func(model.Progress)
	if flags.progress {
		printer := newProgressPrinter(app.stderr())
		onProgress = printer.print
	}
	doc, err := orchestrator.RunWithProgress(ctx, env.orchestrator, orchestrator.Request{
		TemplateID: templateID,
		Answers:    collected,
	}, onProgress)
	if err != nil {
		return err
	}

	format := flags.format
	if format == "" {
		format = env.cfg.Output.Format
	}
	if flags.stdout {
		return env.exporter.Write(ctx, *doc, format, cmd.OutOrStdout())
	}

	dir := flags.output
	if dir == "" {
		dir = env.cfg.Output.Dir
	}
	path, err := env.exporter.WriteFile(ctx, *doc, format, dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := newReportPrinter(out)
	report.summary(*doc)
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
