package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/logbook/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := app.confirm(app.t("delete_log_confirm"))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(app.t("cancel")))
					return nil
				}
			}
			if err := app.Logs.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(app.t("delete_log")))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

var errNeedsConfirmation = errors.New("refusing to continue without confirmation; pass --yes")

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	if !a.interactive() {
		return false, errNeedsConfirmation
	}
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(a.t("delete")).
				Negative(a.t("cancel")).
				Value(&ok),
		),
	).WithTheme(logbookHuhTheme()).WithShowHelp(false)
	err := form.Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
