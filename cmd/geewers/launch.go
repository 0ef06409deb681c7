// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geewers/geewers/internal/issue"
	"github.com/geewers/geewers/internal/launch"
	"github.com/geewers/geewers/pkg/game"
)

func newLaunchCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <platform> <id> | launch <Platform-ID>",
		Short: "Launch a game",
		Long: `Launch a game through its launcher, or by opening its executable for
EA and custom games. geewers does not wait for the game to exit.`,
		Args: gameKeyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseGameKey(args)
			if err != nil {
				return err
			}
			sess, rec, err := findGame(cmd, app, flags, k)
			if err != nil {
				return err
			}

			t := sess.dispatcher.Launch(cmd.Context(), rec.Platform, rec.ID, rec.ExePath)
			if t.IsZero() {
				return nothingToOpen(k)
			}
			fmt.Fprintf(app.stdout, "%s Launching %s via %s\n", VerboseHighlightStyle.Render("→"), rec.Title, CmdStyle.Render(t.Value))
			return nil
		},
	}
}

func newOpenCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "open <platform> <id> | open <Platform-ID>",
		Short: "Show a game in its launcher",
		Args:  gameKeyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseGameKey(args)
			if err != nil {
				return err
			}
			sess, err := app.session(cmd.Context(), flags)
			if err != nil {
				return err
			}

			t := sess.dispatcher.OpenLauncherPage(cmd.Context(), k.Platform, k.ID)
			if t.IsZero() {
				return nothingToOpen(k)
			}
			fmt.Fprintf(app.stdout, "%s Opening %s\n", VerboseHighlightStyle.Render("→"), CmdStyle.Render(t.Value))
			return nil
		},
	}
}

func nothingToOpen(k game.Key) error {
	return newServiceError(
		issue.NewErrorContext().
			WithOperation("open game").
			WithResource(k.String()).
			Wrap(launch.ErrNothingToOpen).
			BuildError(),
		issue.NothingToLaunchId, "")
}
