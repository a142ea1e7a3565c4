package cli

import (
	"cmp"
	"fmt"

	"github.com/alexanderramin/logbook/internal/cli/formatter"
	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, dir string
	var copyOut bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the formatted log to a file or the clipboard",
		Long: `Write the formatted log to <dir>/<app>_<YYYY-MM-DD>.<ext>, or with --copy
put it on the system clipboard instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			if f == domain.FormatTable {
				return fmt.Errorf("the table format is terminal-only; choose html, markdown, text or page")
			}
			ctx := cmd.Context()

			if copyOut {
				if err := app.Exports.Copy(ctx, f); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(app.t("copied"), f)))
				return nil
			}

			path, err := app.Exports.Export(ctx, f, cmp.Or(dir, app.ExportDir, "."))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(app.t("wrote"), path)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "html", "export format: html, markdown, text, page")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default export.dir)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy to the clipboard instead of writing a file")
	return cmd
}

func newExportsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "exports",
		Short: "List previously written exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Exports.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExports(records, app.now(), app.t("no_exports")))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of exports to list (0 for all)")
	return cmd
}
