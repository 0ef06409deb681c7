// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/geewers/geewers/internal/testutil"
)

func writeLibraryFolders(t *testing.T, root string, paths ...string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("\"libraryfolders\"\n{\n")
	for i, p := range paths {
		fmt.Fprintf(&b, "\t\"%d\"\n\t{\n\t\t\"path\"\t\t\"%s\"\n\t\t\"label\"\t\t\"\"\n\t}\n", i, strings.ReplaceAll(p, `\`, `\\`))
	}
	b.WriteString("}\n")
	testutil.MustWriteFile(t, filepath.Join(root, "steamapps", libraryFoldersFile), b.String())
}

func TestSteamLibraryFolders(t *testing.T) {
	t.Parallel()

	t.Run("missing descriptor yields primary only", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		got := SteamLibraryFolders(root)
		if !slices.Equal(got, []string{root}) {
			t.Errorf("SteamLibraryFolders() = %v, want [%s]", got, root)
		}
	})

	t.Run("primary first and duplicates removed", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		extra := t.TempDir()
		missing := filepath.Join(t.TempDir(), "gone")
		writeLibraryFolders(t, root, root, extra, missing, extra)

		got := SteamLibraryFolders(root)
		want := []string{root, extra}
		if !slices.Equal(got, want) {
			t.Errorf("SteamLibraryFolders() = %v, want %v", got, want)
		}
	})

	t.Run("duplicates compared case-insensitively", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeLibraryFolders(t, root, strings.ToUpper(root))

		got := SteamLibraryFolders(root)
		if len(got) != 1 {
			t.Errorf("SteamLibraryFolders() = %v, want only the primary root", got)
		}
	})

	t.Run("duplicates compared across separator styles", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeLibraryFolders(t, root, root+string(filepath.Separator), strings.ReplaceAll(root, "/", `\`))

		got := SteamLibraryFolders(root)
		if !slices.Equal(got, []string{root}) {
			t.Errorf("SteamLibraryFolders() = %v, want [%s]", got, root)
		}
	})

	t.Run("unrelated garbage ignored", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		extra := t.TempDir()
		content := "{{{ not vdf\n\"path\" unquoted\n\t\t\"path\"\t\t\"" + extra + "\"\n"
		testutil.MustWriteFile(t, filepath.Join(root, "steamapps", libraryFoldersFile), content)

		got := SteamLibraryFolders(root)
		want := []string{root, extra}
		if !slices.Equal(got, want) {
			t.Errorf("SteamLibraryFolders() = %v, want %v", got, want)
		}
	})
}

func TestLibraryKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
	}{
		{`C:\Program Files (x86)\Steam`, "c:/program files (x86)/steam"},
		{`D:\SteamLibrary\`, "d:/SteamLibrary"},
		{"/home/user/.local/share/Steam/", "/HOME/user/.local/share/Steam"},
	}

	for _, tt := range tests {
		if libraryKey(tt.a) != libraryKey(tt.b) {
			t.Errorf("libraryKey(%q) = %q, libraryKey(%q) = %q, want equal", tt.a, libraryKey(tt.a), tt.b, libraryKey(tt.b))
		}
	}

	if got := libraryKey("/"); got != "/" {
		t.Errorf("libraryKey(\"/\") = %q, want \"/\"", got)
	}
}
