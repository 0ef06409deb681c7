// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/geewers/geewers/internal/config"
	"github.com/geewers/geewers/internal/overlay"
)

// Color palette shared by all CLI output. The primary color follows the
// default overlay accent so terminal output and the stored theme agree.
const (
	// ColorPrimary is the overlay accent - used for titles and headers.
	ColorPrimary = lipgloss.Color(overlay.DefaultAccent)

	// ColorMuted is gray - used for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for confirmations.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for ids, keys and launch targets.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorVerbose is light gray - used for diagnostics.
	ColorVerbose = lipgloss.Color("#9CA3AF")

	// ColorFavorite is gold - used for the favorite marker.
	ColorFavorite = lipgloss.Color("#FACC15")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for ids, config keys and launch targets.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// VerboseStyle is for diagnostics and supplementary information.
	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)

	// VerboseHighlightStyle is for emphasized items within verbose output.
	VerboseHighlightStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight)

	// FavoriteStyle marks favorited games.
	FavoriteStyle = lipgloss.NewStyle().
			Foreground(ColorFavorite)

	// tableHeaderStyle is for catalog table headers.
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Padding(0, 1)

	// tableCellStyle pads catalog table cells.
	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// tableBorderStyle colors the catalog table border.
	tableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// markdownStyle picks the glamour style for w. Output that is not a terminal
// gets plain text.
func markdownStyle(scheme config.ColorScheme, w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return "notty"
	}
	switch scheme {
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeDark:
		return "dark"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
