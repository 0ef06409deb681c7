// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/geewers/geewers/internal/issue"
	"github.com/geewers/geewers/pkg/game"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatTOML  = "toml"

	favoriteMarker = "★"
)

type (
	listFlagValues struct {
		format    string
		favorites bool
		platform  string
	}

	// tomlCatalog is the document root for `list --format toml`.
	tomlCatalog struct {
		Games []game.Record `toml:"games"`
	}
)

func newListCommand(app *App, flags *rootFlagValues) *cobra.Command {
	lf := &listFlagValues{}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List installed games",
		Long: `List every game in the catalog, sorted by title.

The catalog merges what each enabled scanner found with your custom games,
drops games outside the selected drives and marks favorites.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, app, flags, lf)
		},
	}

	listCmd.Flags().StringVarP(&lf.format, "format", "f", formatTable, "output format (table, json, toml)")
	listCmd.Flags().BoolVar(&lf.favorites, "favorites", false, "list favorites only")
	listCmd.Flags().StringVarP(&lf.platform, "platform", "p", "", "list games of one platform only")

	return listCmd
}

func runList(cmd *cobra.Command, app *App, flags *rootFlagValues, lf *listFlagValues) error {
	if !slices.Contains([]string{formatTable, formatJSON, formatTOML}, lf.format) {
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", lf.format, formatTable, formatJSON, formatTOML)
	}

	var only game.Platform
	if lf.platform != "" {
		p, err := game.ParsePlatform(lf.platform)
		if err != nil {
			return newServiceError(err, issue.InvalidPlatformId, "")
		}
		only = p
	}

	sess, err := app.session(cmd.Context(), flags)
	if err != nil {
		return err
	}

	res := sess.catalog.Catalog(cmd.Context())
	if sess.verbose {
		renderDiagnostics(app.stderr, res.Diagnostics)
	}

	records := res.Records
	if lf.favorites {
		records = res.Favorites()
	}
	if only != "" {
		records = slices.DeleteFunc(slices.Clone(records), func(r game.Record) bool { return r.Platform != only })
	}

	switch lf.format {
	case formatJSON:
		return writeJSON(app.stdout, records)
	case formatTOML:
		return writeTOML(app.stdout, records)
	default:
		writeTable(app.stdout, records)
		return nil
	}
}

func writeJSON(w io.Writer, records []game.Record) error {
	if records == nil {
		records = []game.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

func writeTOML(w io.Writer, records []game.Record) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(tomlCatalog{Games: records}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, records []game.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No games found."))
		return
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		fav := ""
		if r.IsFavorite {
			fav = favoriteMarker
		}
		rows = append(rows, []string{fav, r.Title, r.Platform.String(), r.ID, r.InstallDir})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("", "TITLE", "PLATFORM", "ID", "LOCATION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return tableCellStyle.Foreground(ColorFavorite)
			case col == 3:
				return tableCellStyle.Foreground(ColorHighlight)
			}
			return tableCellStyle
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, SubtitleStyle.Render(fmt.Sprintf("%d game(s)", len(records))))
}
