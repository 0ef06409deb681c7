// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"testing"

	"github.com/geewers/geewers/pkg/game"
)

func TestFilterByDrives(t *testing.T) {
	t.Parallel()

	onD := game.Record{ID: "1", Title: "X", Platform: game.PlatformSteam, InstallDir: `D:\Games\X`}
	noDir := game.Record{ID: "2", Title: "Y", Platform: game.PlatformEpic}
	custom := game.Record{ID: "Custom-1", Title: "Z", Platform: game.PlatformCustom, InstallDir: `E:\z`}

	tests := []struct {
		name   string
		drives []string
		want   int
	}{
		{"no selection keeps all", nil, 3},
		{"matching drive", []string{`D:\`}, 3},
		{"other drive", []string{`C:\`}, 2},
		{"mixed separators and case", []string{"d:/games"}, 3},
		{"blank entries ignored", []string{"  "}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterByDrives([]game.Record{onD, noDir, custom}, tt.drives)
			if len(got) != tt.want {
				t.Errorf("FilterByDrives() kept %d, want %d: %+v", len(got), tt.want, got)
			}
		})
	}
}

func TestFilterByDrives_KeepsEmptyInstallDir(t *testing.T) {
	t.Parallel()

	got := FilterByDrives([]game.Record{{ID: "1", Platform: game.PlatformUbisoft}}, []string{`Q:\`})
	if len(got) != 1 {
		t.Errorf("record with empty InstallDir was filtered out")
	}
}
