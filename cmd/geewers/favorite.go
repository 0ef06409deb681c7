// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoriteCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <platform> <id> | favorite <Platform-ID>",
		Short: "Toggle a game's favorite flag",
		Long: `Toggle a game's favorite flag.

Favorites are stored by key, so a favorite survives the game being
uninstalled or filtered out by drive and comes back when the game does.`,
		Args: gameKeyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseGameKey(args)
			if err != nil {
				return err
			}
			sess, err := app.session(cmd.Context(), flags)
			if err != nil {
				return err
			}

			if sess.store.ToggleFavorite(k.Platform, k.ID) {
				fmt.Fprintf(app.stdout, "%s %s added to favorites\n", FavoriteStyle.Render(favoriteMarker), CmdStyle.Render(k.String()))
			} else {
				fmt.Fprintf(app.stdout, "%s removed from favorites\n", CmdStyle.Render(k.String()))
			}
			return nil
		},
	}
}
