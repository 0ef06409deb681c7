// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/geewers/geewers/pkg/game"
)

// FileName is the data file name inside the data directory.
const FileName = "geewers_data.json"

// fileState is the on-disk layout. Every field is optional on read.
type fileState struct {
	Favorites      []string      `json:"favorites"`
	CustomGames    []game.Record `json:"customGames"`
	SelectedDrives []string      `json:"selectedDrives"`
	Theme          Theme         `json:"theme"`
}

// DataFile returns the overlay file path inside dataDir.
func DataFile(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

func encodeState(s State) ([]byte, error) {
	fs := fileState{
		Favorites:      make([]string, 0, len(s.Favorites)),
		CustomGames:    make([]game.Record, 0, len(s.CustomGames)),
		SelectedDrives: s.SelectedDrives,
		Theme:          s.Theme,
	}
	if fs.SelectedDrives == nil {
		fs.SelectedDrives = []string{}
	}
	for _, k := range s.FavoriteKeys() {
		fs.Favorites = append(fs.Favorites, k.String())
	}
	for _, r := range s.CustomGames {
		r.IsFavorite = false
		fs.CustomGames = append(fs.CustomGames, r)
	}
	return json.MarshalIndent(fs, "", "  ")
}

// decodeState parses data, filling omitted fields with defaults. Entries
// that cannot be represented are dropped and logged.
func decodeState(data []byte, logger *log.Logger) (State, error) {
	var fs fileState
	if err := json.Unmarshal(data, &fs); err != nil {
		return NewState(), err
	}

	st := NewState()
	st.Theme = fs.Theme.WithDefaults()
	st.SelectedDrives = NormalizeDrives(fs.SelectedDrives)

	for _, raw := range fs.Favorites {
		k, err := game.ParseKey(raw)
		if err != nil {
			logger.Warn("dropping unreadable favorite", "value", raw, "error", err)
			continue
		}
		st.Favorites[k] = struct{}{}
	}

	seen := make(map[string]struct{}, len(fs.CustomGames))
	for _, r := range fs.CustomGames {
		if r.ID == "" {
			logger.Warn("dropping custom game without id", "title", r.Title)
			continue
		}
		if _, dup := seen[r.ID]; dup {
			logger.Warn("dropping duplicate custom game", "id", r.ID)
			continue
		}
		seen[r.ID] = struct{}{}
		r.Platform = game.PlatformCustom
		r.IsFavorite = false
		st.CustomGames = append(st.CustomGames, r)
	}

	return st, nil
}

// writeFile replaces path with data through a sibling temp file.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp data file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
