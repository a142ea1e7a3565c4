package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/logbook/internal/cli/formatter"
	"github.com/alexanderramin/logbook/internal/importer"
	"github.com/alexanderramin/logbook/internal/service"
	"github.com/spf13/cobra"
)

func newStampCmd(app *App) *cobra.Command {
	var shortcut int

	cmd := &cobra.Command{
		Use:   "stamp [TAG...]",
		Short: "Append a timestamped entry to the log",
		Long: `Append "YYYY-MM-DD HH:MM" followed by TAG as the last log line.

A TAG of "category;detail" groups the detail under the category. Categories
beginning with "^" are breaks and are left out of the actual-work total.`,
		Example: `  logbook stamp "Project A;Meeting"
  logbook stamp ^Lunch
  logbook stamp --shortcut 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var tag string
			switch {
			case shortcut != 0 && len(args) > 0:
				return fmt.Errorf("give either a tag or --shortcut, not both")
			case shortcut != 0:
				var err error
				tag, err = app.Settings.Shortcut(ctx, shortcut)
				if err != nil {
					return err
				}
			default:
				tag = strings.Join(args, " ")
			}

			text, err := app.Logs.Append(ctx, tag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(lastLine(text)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&shortcut, "shortcut", "s", 0, "stamp shortcut slot 1-9 instead of a tag")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the raw log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.Logs.Load(cmd.Context())
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim(app.t("log_placeholder")))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newSaveCmd(app *App) *cobra.Command {
	var file string
	var strict bool

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Replace the log with the contents of a file or stdin",
		Long: `Replace the whole log, for example after editing it by hand:

  logbook show > log.txt && $EDITOR log.txt && logbook save --file log.txt

Blank lines are collapsed before saving. Suspicious records are reported
as warnings; with --strict they abort the save.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file, err)
				}
				defer f.Close()
				r = f
			}
			data, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("reading log: %w", err)
			}

			if issues := importer.ValidateLog(service.TrimNewlines(string(data))); len(issues) > 0 {
				printIssues(cmd.ErrOrStderr(), issues)
				if strict {
					return fmt.Errorf("%w: %d problem(s), nothing saved", errLogHasIssues, len(issues))
				}
			}

			saved, err := app.Logs.Save(cmd.Context(), string(data))
			if err != nil {
				return err
			}
			lines := 0
			if saved != "" {
				lines = strings.Count(saved, "\n") + 1
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(app.t("saved_lines"), lines)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", `file to read, "-" for stdin`)
	cmd.Flags().BoolVar(&strict, "strict", false, "refuse to save a log with suspicious records")
	return cmd
}

var errLogHasIssues = errors.New("log has suspicious records")

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report malformed or out-of-order records in the log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.Logs.Load(cmd.Context())
			if err != nil {
				return err
			}
			issues := importer.ValidateLog(text)
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(app.t("no_problems")))
				return nil
			}
			printIssues(cmd.OutOrStdout(), issues)
			return fmt.Errorf("%w: %d problem(s)", errLogHasIssues, len(issues))
		},
	}
}

func printIssues(w io.Writer, issues []error) {
	for _, issue := range issues {
		fmt.Fprintln(w, formatter.StyleYellow.Render("! "+issue.Error()))
	}
}

func lastLine(text string) string {
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		return text[i+1:]
	}
	return text
}
