package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available document templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.environment()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSECTIONS\tQUESTIONS")
			for _, def := range env.orchestrator.Registry().List() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", def.ID, def.Name, def.Category, len(def.Sections), len(def.Questions))
			}
			return tw.Flush()
		},
	}
}

func newQuestionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "questions [template-id]",
		Short: "List the intake questions of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.environment()
			if err != nil {
				return err
			}
			questions, err := env.orchestrator.Registry().Questions(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTYPE\tREQUIRED\tPROMPT")
			for _, q := range questions {
				required := "no"
				if q.Required {
					required = "yes"
				}
				prompt := q.Prompt
				if len(q.Options) > 0 {
					prompt += " (" + strings.Join(q.Options, " / ") + ")"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", q.ID, q.Type, required, prompt)
			}
			return tw.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("docgen version %s\n", Version)
		},
	}
}
