// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/geewers/geewers/internal/registry"
	"github.com/geewers/geewers/internal/testutil"
	"github.com/geewers/geewers/pkg/game"
)

func writeManifest(t *testing.T, lib, id, body string) {
	t.Helper()
	testutil.MustWriteFile(t, filepath.Join(lib, "steamapps", "appmanifest_"+id+".acf"), body)
}

func TestSteam_Scan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	extra := t.TempDir()
	writeLibraryFolders(t, root, root, extra)

	writeManifest(t, root, "620", "\"AppState\"\n{\n\t\"appid\"\t\t\"620\"\n\t\"name\"\t\t\"Portal 2\"\n}\n")
	writeManifest(t, extra, "70", "\"AppState\"\n{\n\t\"name\"\t\t\"Half-Life\"\n}\n")
	writeManifest(t, extra, "99", "\"AppState\"\n{\n\t\"appid\"\t\t\"99\"\n}\n")
	writeManifest(t, extra, "98", "\"AppState\"\n{\n\t\"name\"\n}\n")
	testutil.MustWriteFile(t, filepath.Join(root, "steamapps", "notes.acf"), "ignored")
	cover := filepath.Join(root, "appcache", "librarycache", "620_library_600x900.jpg")
	testutil.MustWriteFile(t, cover, "jpg")

	res := NewSteam(registry.NewMemory(), root).Scan(t.Context())

	if res.Platform != game.PlatformSteam {
		t.Errorf("Platform = %q, want Steam", res.Platform)
	}
	byID := make(map[string]game.Record)
	for _, r := range res.Records {
		byID[r.ID] = r
	}
	if len(byID) != 3 {
		t.Fatalf("got %d records, want 3: %+v", len(byID), res.Records)
	}

	portal := byID["620"]
	if portal.Title != "Portal 2" || portal.ImagePath != cover || portal.InstallDir != root || portal.ExePath != "" {
		t.Errorf("Portal 2 record = %+v", portal)
	}
	if hl := byID["70"]; hl.Title != "Half-Life" || hl.ImagePath != "" || hl.InstallDir != extra {
		t.Errorf("Half-Life record = %+v", hl)
	}
	if ph := byID["98"]; ph.Title != steamPlaceholderTitle {
		t.Errorf("placeholder title = %q, want %q", ph.Title, steamPlaceholderTitle)
	}

	if !hasDiagnostic(res, CodeManifestInvalid) {
		t.Errorf("expected %s diagnostic for manifest without name, got %+v", CodeManifestInvalid, res.Diagnostics)
	}
}

func TestSteam_RootFromRegistry(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, "10", "\t\"name\"\t\t\"Counter-Strike\"\n")
	reg := registry.NewMemory().Set(registry.CurrentUser, steamRegistryKey, steamRegistryValue, root)

	res := NewSteam(reg, "").Scan(t.Context())
	if len(res.Records) != 1 || res.Records[0].ID != "10" {
		t.Fatalf("records = %+v, want one record with id 10", res.Records)
	}
}

func TestSteam_NotInstalled(t *testing.T) {
	t.Parallel()

	res := NewSteam(registry.NewMemory(), "").Scan(t.Context())
	if len(res.Records) != 0 {
		t.Errorf("records = %+v, want none", res.Records)
	}
	if !hasDiagnostic(res, CodeSourceUnavailable) {
		t.Errorf("expected %s diagnostic, got %+v", CodeSourceUnavailable, res.Diagnostics)
	}
}

func TestSteam_Canceled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, "10", "\t\"name\"\t\t\"Counter-Strike\"\n")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	res := NewSteam(registry.NewMemory(), root).Scan(ctx)
	if len(res.Records) != 0 {
		t.Errorf("records = %+v, want none after cancel", res.Records)
	}
	if !hasDiagnostic(res, CodeScanCanceled) {
		t.Errorf("expected %s diagnostic, got %+v", CodeScanCanceled, res.Diagnostics)
	}
}

func TestSteamManifestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		want   string
		wantOK bool
	}{
		{"quoted value", "\"name\"\t\t\"Portal 2\"", "Portal 2", true},
		{"first name line wins", "\"name\"\t\"A\"\n\"name\"\t\"B\"", "A", true},
		{"truncated line", "\"name\"", steamPlaceholderTitle, true},
		{"no name", "\"appid\"\t\"1\"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := steamManifestTitle([]byte(tt.data))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("steamManifestTitle() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func hasDiagnostic(res Result, code string) bool {
	for _, d := range res.Diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}
