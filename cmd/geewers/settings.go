// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/geewers/geewers/internal/overlay"
)

type settingsFlagValues struct {
	drives      []string
	clearDrives bool
	resetTheme  bool
	theme       overlay.Theme
}

func newSettingsCommand(app *App, flags *rootFlagValues) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the stored settings",
		Long: `Show or change the settings stored next to your favorites: the drive
filter and the theme palette.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.session(cmd.Context(), flags)
			if err != nil {
				return err
			}
			printSettings(app.stdout, sess.store.Settings(), sess.store.Path())
			return nil
		},
	})

	settingsCmd.AddCommand(newSettingsSetCommand(app, flags))

	return settingsCmd
}

func newSettingsSetCommand(app *App, flags *rootFlagValues) *cobra.Command {
	sf := &settingsFlagValues{}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change the drive filter or theme",
		Long: `Change the drive filter or theme. Only the flags you pass are changed.

Drives are path prefixes such as "D:\" or "/mnt/games"; when any are set,
discovered games installed elsewhere are hidden. Custom games are always
shown.`,
		Example: `  geewers settings set --drive 'D:\' --drive 'E:\'
  geewers settings set --clear-drives
  geewers settings set --accent '#ff5500'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.session(cmd.Context(), flags)
			if err != nil {
				return err
			}

			cur := sess.store.Settings()
			theme, drives := applySettingsFlags(cmd, sf, cur)
			sess.store.UpdateSettings(theme, drives)

			fmt.Fprintf(app.stdout, "%s Settings saved\n", SuccessStyle.Render("✓"))
			printSettings(app.stdout, sess.store.Settings(), sess.store.Path())
			return nil
		},
	}

	f := setCmd.Flags()
	f.StringArrayVar(&sf.drives, "drive", nil, "restrict the catalog to this drive or path prefix (repeatable, replaces the list)")
	f.BoolVar(&sf.clearDrives, "clear-drives", false, "remove the drive filter")
	f.BoolVar(&sf.resetTheme, "reset-theme", false, "restore the default theme before applying color flags")
	f.StringVar(&sf.theme.Accent, "accent", "", "accent color")
	f.StringVar(&sf.theme.BgFrom, "bg-from", "", "background gradient start color")
	f.StringVar(&sf.theme.BgTo, "bg-to", "", "background gradient end color")
	f.StringVar(&sf.theme.CardBg, "card-bg", "", "card background color")
	f.StringVar(&sf.theme.TextPrimary, "text-primary", "", "primary text color")
	setCmd.MarkFlagsMutuallyExclusive("drive", "clear-drives")

	return setCmd
}

// applySettingsFlags overlays the changed flags on the current settings.
func applySettingsFlags(cmd *cobra.Command, sf *settingsFlagValues, cur overlay.Settings) (overlay.Theme, []string) {
	theme := cur.Theme
	if sf.resetTheme {
		theme = overlay.DefaultTheme()
	}

	f := cmd.Flags()
	for name, dst := range map[string]*string{
		"accent":       &theme.Accent,
		"bg-from":      &theme.BgFrom,
		"bg-to":        &theme.BgTo,
		"card-bg":      &theme.CardBg,
		"text-primary": &theme.TextPrimary,
	} {
		if f.Changed(name) {
			v, _ := f.GetString(name)
			*dst = v
		}
	}

	drives := cur.SelectedDrives
	switch {
	case sf.clearDrives:
		drives = nil
	case f.Changed("drive"):
		drives = sf.drives
	}
	return theme, drives
}

func printSettings(w io.Writer, s overlay.Settings, dataFile string) {
	keyStyle := CmdStyle

	fmt.Fprintln(w, TitleStyle.Render("Settings"))
	fmt.Fprintf(w, "%s: %s\n\n", keyStyle.Render("Data file"), dataFile)

	fmt.Fprintf(w, "%s:\n", keyStyle.Render("selected_drives"))
	if len(s.SelectedDrives) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(all drives)"))
	}
	for _, d := range s.SelectedDrives {
		fmt.Fprintf(w, "  - %s\n", SuccessStyle.Render(d))
	}

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("theme"))
	for _, kv := range [][2]string{
		{"accent", s.Theme.Accent},
		{"bg_from", s.Theme.BgFrom},
		{"bg_to", s.Theme.BgTo},
		{"card_bg", s.Theme.CardBg},
		{"text_primary", s.Theme.TextPrimary},
	} {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(kv[1])).Render("■")
		fmt.Fprintf(w, "  %-12s %s %s\n", kv[0]+":", swatch, kv[1])
	}
}
