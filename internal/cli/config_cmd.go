package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/logbook/internal/cli/formatter"
	"github.com/alexanderramin/logbook/internal/logparse"
	"github.com/alexanderramin/logbook/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

const (
	settingRoundingUnit = "rounding-unit"
	settingShortcut     = "shortcut"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the rounding unit and shortcuts",
	}

	cmd.AddCommand(
		newConfigGetCmd(app),
		newConfigSetCmd(app),
		newConfigEditCmd(app),
	)

	return cmd
}

func newConfigGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get [rounding-unit | shortcut N]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				unit, err := app.Settings.RoundingUnit(ctx)
				if err != nil {
					return err
				}
				shortcuts, err := app.Settings.Shortcuts(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatSettings(app.t("rounding_unit"), unit, app.t("shortcut_items_title"), shortcuts))
				return nil
			}

			switch args[0] {
			case settingRoundingUnit:
				unit, err := app.Settings.RoundingUnit(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, unit)
			case settingShortcut:
				n, err := shortcutArg(args)
				if err != nil {
					return err
				}
				tag, err := app.Settings.Shortcut(ctx, n)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, tag)
			default:
				return unknownSetting(args[0])
			}
			return nil
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set rounding-unit MINUTES | set shortcut N [TAG...]",
		Short: "Change one setting",
		Example: `  logbook config set rounding-unit 15
  logbook config set shortcut 1 "Project A;Meeting"
  logbook config set shortcut 9`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch args[0] {
			case settingRoundingUnit:
				if len(args) != 2 {
					return fmt.Errorf("usage: config set rounding-unit MINUTES")
				}
				unit, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("%w: got %q", service.ErrInvalidRoundingUnit, args[1])
				}
				if err := app.Settings.SetRoundingUnit(ctx, unit); err != nil {
					return err
				}
			case settingShortcut:
				n, err := shortcutArg(args)
				if err != nil {
					return err
				}
				if err := app.Settings.SetShortcut(ctx, n, strings.Join(args[2:], " ")); err != nil {
					return err
				}
			default:
				return unknownSetting(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(app.t("saved")))
			return nil
		},
	}
}

func newConfigEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit all settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			values, err := loadSettingsValues(ctx, app.Settings)
			if err != nil {
				return err
			}
			if err := settingsForm(app, values).Run(); err != nil {
				return err
			}
			if err := app.Settings.Update(ctx, values.settings()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(app.t("saved")))
			return nil
		},
	}
}

// settingsValues backs the edit form fields.
type settingsValues struct {
	unit      int
	shortcuts [service.ShortcutCount]string
}

func loadSettingsValues(ctx context.Context, settings service.SettingsService) (*settingsValues, error) {
	unit, err := settings.RoundingUnit(ctx)
	if err != nil {
		return nil, err
	}
	shortcuts, err := settings.Shortcuts(ctx)
	if err != nil {
		return nil, err
	}
	v := &settingsValues{unit: unit}
	copy(v.shortcuts[:], shortcuts)
	return v, nil
}

func (v *settingsValues) settings() service.Settings {
	return service.Settings{RoundingUnit: v.unit, Shortcuts: v.shortcuts}
}

func settingsForm(app *App, v *settingsValues) *huh.Form {
	options := make([]huh.Option[int], 0, len(logparse.RoundingUnits))
	for _, u := range logparse.RoundingUnits {
		options = append(options, huh.NewOption(fmt.Sprintf(app.t("minutes_option"), u), u))
	}

	fields := make([]huh.Field, 0, service.ShortcutCount)
	for i := range v.shortcuts {
		fields = append(fields, huh.NewInput().
			Title(strconv.Itoa(i+1)).
			Placeholder(app.t(fmt.Sprintf("shortcut_%d", i+1))).
			Value(&v.shortcuts[i]))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(app.t("rounding_unit")).
				Options(options...).
				Value(&v.unit),
		),
		huh.NewGroup(fields...).
			Title(app.t("shortcut_items_title")).
			Description(app.t("shortcut_help")),
	).WithTheme(logbookHuhTheme()).WithShowHelp(false)
}

func shortcutArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%w: missing slot number", service.ErrInvalidShortcut)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", service.ErrInvalidShortcut, args[1])
	}
	return n, nil
}

func unknownSetting(name string) error {
	return fmt.Errorf("unknown setting %q (want %s or %s)", name, settingRoundingUnit, settingShortcut)
}
