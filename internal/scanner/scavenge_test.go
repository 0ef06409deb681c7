// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"path/filepath"
	"testing"

	"github.com/geewers/geewers/internal/testutil"
)

func TestScavengeImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files []string
		dirs  []string
		want  string
	}{
		{name: "empty directory", want: ""},
		{name: "keyword and extension", files: []string{"readme.txt", "cover.jpg"}, want: "cover.jpg"},
		{name: "case-insensitive", files: []string{"Game_BANNER.PNG"}, want: "Game_BANNER.PNG"},
		{name: "keyword in stem only", files: []string{"game.jpg", "poster.txt"}, want: ""},
		{name: "webp and jpeg accepted", files: []string{"boxart.webp"}, want: "boxart.webp"},
		{name: "directories skipped", dirs: []string{"logo.png"}, files: []string{"splash.jpeg"}, want: "splash.jpeg"},
		{name: "no recursion", dirs: []string{"art"}, files: []string{filepath.Join("art", "cover.jpg")}, want: ""},
		{name: "first match in listing order", files: []string{"logo.png", "background.jpg"}, want: "background.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			for _, d := range tt.dirs {
				testutil.MustMkdirAll(t, filepath.Join(dir, d))
			}
			for _, f := range tt.files {
				testutil.MustWriteFile(t, filepath.Join(dir, f), "img")
			}

			want := ""
			if tt.want != "" {
				want = filepath.Join(dir, tt.want)
			}
			if got := ScavengeImage(dir); got != want {
				t.Errorf("ScavengeImage() = %q, want %q", got, want)
			}
		})
	}
}

func TestScavengeImage_MissingDir(t *testing.T) {
	t.Parallel()

	if got := ScavengeImage(""); got != "" {
		t.Errorf("ScavengeImage(\"\") = %q, want empty", got)
	}
	if got := ScavengeImage(filepath.Join(t.TempDir(), "nope")); got != "" {
		t.Errorf("ScavengeImage(missing) = %q, want empty", got)
	}
}

func TestLastSegment(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		`C:\Games\Far Cry 5`:  "Far Cry 5",
		`C:/Games/Far Cry 5/`: "Far Cry 5",
		`D:\Ubi\AC\\`:         "AC",
		"plain":               "plain",
	}
	for in, want := range tests {
		if got := lastSegment(in); got != want {
			t.Errorf("lastSegment(%q) = %q, want %q", in, got, want)
		}
	}
}
