// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
)

// Ids of the catalog entries below. Zero means "no catalog entry".
const (
	GameNotFoundId Id = iota + 1
	InvalidPlatformId
	InvalidGameKeyId
	ConfigLoadFailedId
	NothingToLaunchId
	ExecutableNotFoundId
	NothingToWatchId
)

type (
	// Id selects a catalog entry. ServiceErrors carry one so the CLI can print
	// remediation text after the error line.
	Id int

	// Issue is a catalog entry: Markdown guidance for one failure class.
	Issue struct {
		id       Id
		markdown string
	}
)

func (i *Issue) Id() Id {
	return i.id
}

// Render returns the entry as terminal-styled markdown. stylePath is a
// glamour style name ("dark", "light", "notty") or a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.markdown, stylePath)
}

var (
	render = glamour.Render

	gameNotFoundIssue = &Issue{
		id: GameNotFoundId,
		markdown: `
# Game not found!

No game with that platform and id is in the current catalog.

## Things you can try:
- List what geewers can see, with ids:
~~~
$ geewers list
~~~
- Check that the platform's scanner is enabled in your config:
~~~
$ geewers config show
~~~
- If you restricted the catalog to some drives, the game may live elsewhere:
~~~
$ geewers settings show
~~~`,
	}

	invalidPlatformIssue = &Issue{
		id: InvalidPlatformId,
		markdown: `
# Unknown platform!

Platforms are matched case-insensitively against this list:

| Platform | Source |
|----------|--------|
| Steam    | Steam library manifests |
| Epic     | Epic Games Launcher manifests |
| GOG      | GOG Galaxy registry entries |
| EA       | Uninstall registry, EA publisher |
| Ubisoft  | Ubisoft Connect registry |
| Custom   | Games added with ` + "`geewers add`" + ` |`,
	}

	invalidGameKeyIssue = &Issue{
		id: InvalidGameKeyId,
		markdown: `
# Malformed game key!

Game keys are written as ` + "`Platform-ID`" + `, for example ` + "`Steam-620`" + ` or
` + "`Epic-Fortnite`" + `. The id may itself contain dashes; the platform never does.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		markdown: `
# Failed to load configuration!

Your configuration file could not be read or does not match the schema.

## Things you can try:
- Show where geewers looks for the file:
~~~
$ geewers config path
~~~
- Compare it with a complete default configuration:
~~~
$ geewers config dump
~~~
- Remove the file to fall back to defaults.`,
	}

	nothingToLaunchIssue = &Issue{
		id: NothingToLaunchId,
		markdown: `
# Nothing to launch!

This game has no launch target: its launcher is unknown or it has no
executable path recorded.

## Things you can try:
- Open the game in its launcher instead:
~~~
$ geewers open <platform> <id>
~~~
- Re-add a custom game with the right executable:
~~~
$ geewers add "My Game" --exe /path/to/game
~~~`,
	}

	executableNotFoundIssue = &Issue{
		id: ExecutableNotFoundId,
		markdown: `
# Executable not found!

The path given with ` + "`--exe`" + ` does not exist. Custom games are launched by
opening that path, so it must point at a real file.

## Things you can try:
- Use an absolute path
- Quote paths that contain spaces`,
	}

	nothingToWatchIssue = &Issue{
		id: NothingToWatchId,
		markdown: `
# Nothing to watch!

None of the enabled scanners has a library directory on this machine, so
there is nothing for ` + "`geewers watch`" + ` to follow.

## Things you can try:
- Set ` + "`scanners.steam.root`" + ` or ` + "`scanners.epic.manifest_dir`" + ` in your config
- Check that the launchers are installed`,
	}

	issues = map[Id]*Issue{
		gameNotFoundIssue.Id():       gameNotFoundIssue,
		invalidPlatformIssue.Id():    invalidPlatformIssue,
		invalidGameKeyIssue.Id():     invalidGameKeyIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		nothingToLaunchIssue.Id():    nothingToLaunchIssue,
		executableNotFoundIssue.Id(): executableNotFoundIssue,
		nothingToWatchIssue.Id():     nothingToWatchIssue,
	}
)

// Get returns the catalog entry for id, or nil when there is none.
func Get(id Id) *Issue {
	return issues[id]
}
