// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geewers/geewers/internal/issue"
)

type addFlagValues struct {
	exePath   string
	imagePath string
}

func newAddCommand(app *App, flags *rootFlagValues) *cobra.Command {
	af := &addFlagValues{}

	addCmd := &cobra.Command{
		Use:   "add <title> --exe <path>",
		Short: "Add a custom game",
		Long: `Add a game that no scanner finds.

Custom games are always listed, whatever drives are selected, and are
launched by opening the executable path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, app, flags, af, args[0])
		},
	}

	addCmd.Flags().StringVar(&af.exePath, "exe", "", "path to the game executable (required)")
	addCmd.Flags().StringVar(&af.imagePath, "image", "", "path to a cover image")
	_ = addCmd.MarkFlagRequired("exe")

	return addCmd
}

func runAdd(cmd *cobra.Command, app *App, flags *rootFlagValues, af *addFlagValues, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}

	exe, err := filepath.Abs(af.exePath)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", af.exePath, err)
	}
	if _, err := os.Stat(exe); err != nil {
		return newServiceError(
			issue.NewErrorContext().
				WithOperation("add custom game").
				WithResource(exe).
				Wrap(err).
				BuildError(),
			issue.ExecutableNotFoundId, "")
	}

	image := af.imagePath
	if image != "" {
		if image, err = filepath.Abs(image); err != nil {
			return fmt.Errorf("failed to resolve %q: %w", af.imagePath, err)
		}
	}

	sess, err := app.session(cmd.Context(), flags)
	if err != nil {
		return err
	}

	rec := sess.store.AddCustomGame(title, exe, image)
	fmt.Fprintf(app.stdout, "%s Added %s as %s\n", SuccessStyle.Render("✓"), rec.Title, CmdStyle.Render(rec.Key().String()))
	return nil
}
