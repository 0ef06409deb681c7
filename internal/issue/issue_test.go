// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

// catalogHints lists every catalog id with a command or field its guidance
// must mention.
var catalogHints = []struct {
	id   Id
	hint string
}{
	{GameNotFoundId, "geewers list"},
	{InvalidPlatformId, "Ubisoft"},
	{InvalidGameKeyId, "Platform-ID"},
	{ConfigLoadFailedId, "geewers config path"},
	{NothingToLaunchId, "geewers open"},
	{ExecutableNotFoundId, "--exe"},
	{NothingToWatchId, "scanners.steam.root"},
}

func TestGet(t *testing.T) {
	if len(catalogHints) != len(issues) {
		t.Fatalf("catalog has %d entries, test covers %d", len(issues), len(catalogHints))
	}

	for _, tt := range catalogHints {
		entry := Get(tt.id)
		if entry == nil {
			t.Errorf("Get(%d) returned nil", tt.id)
			continue
		}
		if entry.Id() != tt.id {
			t.Errorf("Get(%d).Id() = %d", tt.id, entry.Id())
		}
		if !strings.Contains(entry.markdown, tt.hint) {
			t.Errorf("Get(%d) guidance should mention %q", tt.id, tt.hint)
		}
	}

	if Get(0) != nil {
		t.Error("Get(0) should return nil: zero means no catalog entry")
	}
	if Get(Id(9999)) != nil {
		t.Error("Get(9999) should return nil")
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var gotStyle string
	render = func(in, style string) (string, error) {
		gotStyle = style
		return in, nil
	}

	out, err := Get(NothingToWatchId).Render("light")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(out, "# Nothing to watch!") {
		t.Errorf("Render() output should contain the markdown body, got:\n%s", out)
	}
	if gotStyle != "light" {
		t.Errorf("style passed to renderer = %q, want light", gotStyle)
	}

	render = func(string, string) (string, error) {
		return "", errors.New("bad style")
	}
	if _, err := Get(GameNotFoundId).Render("nope.json"); err == nil {
		t.Error("Render() should surface renderer errors")
	}
}

func TestCatalogRendersWithoutTerminal(t *testing.T) {
	for _, tt := range catalogHints {
		out, err := Get(tt.id).Render("notty")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", tt.id, err)
			continue
		}
		if !strings.Contains(out, tt.hint) {
			t.Errorf("issue %d rendered without %q:\n%s", tt.id, tt.hint, out)
		}
	}
}
