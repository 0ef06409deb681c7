// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/geewers/geewers/internal/issue"
	"github.com/geewers/geewers/pkg/game"
)

var errGameNotFound = errors.New("game not in catalog")

// gameKeyArgs accepts either "<platform> <id>" or a single "Platform-ID" key.
var gameKeyArgs = cobra.RangeArgs(1, 2)

// parseGameKey turns command arguments into a game key.
func parseGameKey(args []string) (game.Key, error) {
	if len(args) == 1 {
		k, err := game.ParseKey(args[0])
		if err != nil {
			return game.Key{}, newServiceError(err, issue.InvalidGameKeyId, "")
		}
		return k, nil
	}

	p, err := game.ParsePlatform(args[0])
	if err != nil {
		return game.Key{}, newServiceError(err, issue.InvalidPlatformId, "")
	}
	k := game.NewKey(p, args[1])
	if k.ID == "" {
		return game.Key{}, newServiceError(&game.InvalidKeyError{Value: k.String()}, issue.InvalidGameKeyId, "")
	}
	return k, nil
}

// findGame builds the catalog and looks up k in it.
func findGame(cmd *cobra.Command, app *App, flags *rootFlagValues, k game.Key) (*session, game.Record, error) {
	sess, err := app.session(cmd.Context(), flags)
	if err != nil {
		return nil, game.Record{}, err
	}

	res := sess.catalog.Catalog(cmd.Context())
	if sess.verbose {
		renderDiagnostics(app.stderr, res.Diagnostics)
	}

	rec, ok := res.Find(k)
	if !ok {
		return sess, game.Record{}, newServiceError(
			issue.NewErrorContext().
				WithOperation("find game").
				WithResource(k.String()).
				WithSuggestion("Run 'geewers list' to see the ids geewers knows").
				Wrap(errGameNotFound).
				BuildError(),
			issue.GameNotFoundId, "")
	}
	return sess, rec, nil
}
