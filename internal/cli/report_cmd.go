package cli

import (
	"fmt"

	"github.com/alexanderramin/logbook/internal/cli/formatter"
	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/alexanderramin/logbook/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize time per category",
		Long: `Summarize the log per category, rounded with the configured unit.

Formats: table (terminal, default), html, markdown (md), text, page (a
standalone HTML document with all three renderings).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if f == domain.FormatTable {
				summary, unit, err := app.Reports.Summary(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(report.Build(summary, unit), app.labels()))
				return nil
			}

			out, err := app.Reports.Render(ctx, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, html, markdown, text, page")
	return cmd
}

func parseFormat(s string) (domain.ReportFormat, error) {
	f, ok := domain.ParseReportFormat(s)
	if !ok {
		return "", fmt.Errorf("unknown format %q (want table, html, markdown, text or page)", s)
	}
	return f, nil
}
