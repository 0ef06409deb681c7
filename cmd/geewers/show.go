// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/geewers/geewers/internal/launch"
	"github.com/geewers/geewers/pkg/game"
)

const unknownValue = "_unknown_"

func newShowCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "show <platform> <id> | show <Platform-ID>",
		Short: "Show one game",
		Args:  gameKeyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseGameKey(args)
			if err != nil {
				return err
			}
			sess, rec, err := findGame(cmd, app, flags, k)
			if err != nil {
				return err
			}

			out, err := glamour.Render(gameCard(rec), markdownStyle(sess.cfg.UI.ColorScheme, app.stdout))
			if err != nil {
				return fmt.Errorf("failed to render game card: %w", err)
			}
			fmt.Fprint(app.stdout, out)
			return nil
		},
	}
}

// gameCard renders a record as a markdown document.
func gameCard(rec game.Record) string {
	var sb strings.Builder

	title := rec.Title
	if rec.IsFavorite {
		title += " " + favoriteMarker
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	sb.WriteString("| Field | Value |\n|-------|-------|\n")
	fmt.Fprintf(&sb, "| Key | `%s` |\n", rec.Key())
	fmt.Fprintf(&sb, "| Platform | %s |\n", rec.Platform)
	fmt.Fprintf(&sb, "| Location | %s |\n", orUnknown(rec.InstallDir))
	fmt.Fprintf(&sb, "| Executable | %s |\n", orUnknown(rec.ExePath))
	fmt.Fprintf(&sb, "| Cover | %s |\n", orUnknown(rec.ImagePath))

	if t := launch.Resolve(rec.Platform, rec.ID, rec.ExePath); !t.IsZero() {
		fmt.Fprintf(&sb, "\n## Launch\n\n`%s` (%s)\n", t.Value, t.Kind)
	}
	if t := launch.ResolveLauncherPage(rec.Platform, rec.ID); !t.IsZero() && !rec.IsCustom() {
		fmt.Fprintf(&sb, "\n## Launcher page\n\n`%s`\n", t.Value)
	}
	return sb.String()
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return "`" + s + "`"
}
