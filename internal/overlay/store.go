// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/geewers/geewers/pkg/game"
)

// customIDPrefix prefixes generated custom game ids.
const customIDPrefix = "Custom-"

type (
	// Clock supplies the time used to mint custom game ids.
	Clock interface {
		Now() time.Time
	}

	// Option configures a Store.
	Option func(*Store)

	// Store owns the in-memory overlay and its data file. It is safe for
	// concurrent use; every mutation persists before the lock is released.
	Store struct {
		mu     sync.Mutex
		path   string
		state  State
		clock  Clock
		logger *log.Logger
	}

	systemClock struct{}
)

func (systemClock) Now() time.Time { return time.Now() }

// WithClock sets the clock used for custom game ids.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger for persistence notices.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store backed by the file at path. The state starts empty
// until Load is called.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:  path,
		state: NewState(),
		clock: systemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Path returns the data file path.
func (s *Store) Path() string { return s.path }

// Load reads the data file into memory and returns a snapshot. A missing,
// unreadable or malformed file yields the default state.
func (s *Store) Load() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.read()
	return s.state.Clone()
}

func (s *Store) read() State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if isNotExist(err) {
			s.logger.Debug("no data file, starting empty", "path", s.path)
		} else {
			s.logger.Warn("cannot read data file, using defaults", "path", s.path, "error", err)
		}
		return NewState()
	}

	st, err := decodeState(data, s.logger)
	if err != nil {
		s.logger.Warn("data file is malformed, using defaults", "path", s.path, "error", err)
		return NewState()
	}
	return st
}

// Save writes st to the data file. Failures are logged and swallowed.
func (s *Store) Save(st State) {
	data, err := encodeState(st)
	if err != nil {
		s.logger.Warn("cannot encode overlay", "error", err)
		return
	}
	if err := writeFile(s.path, data); err != nil {
		s.logger.Warn("cannot persist overlay", "path", s.path, "error", err)
	}
}

// ToggleFavorite flips the favorite flag of (platform, id) and returns the
// new value.
func (s *Store) ToggleFavorite(platform game.Platform, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := game.NewKey(platform, id)
	_, fav := s.state.Favorites[k]
	if fav {
		delete(s.state.Favorites, k)
	} else {
		s.state.Favorites[k] = struct{}{}
	}
	s.Save(s.state)
	return !fav
}

// AddCustomGame appends a user-defined game and returns its record.
func (s *Store) AddCustomGame(title, exePath, imagePath string) game.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := game.Record{
		ID:        s.nextCustomID(),
		Title:     title,
		Platform:  game.PlatformCustom,
		ImagePath: imagePath,
		ExePath:   exePath,
	}
	s.state.CustomGames = append(s.state.CustomGames, r)
	s.Save(s.state)
	s.logger.Debug("custom game added", "id", r.ID, "title", title)
	return r
}

// nextCustomID must be called with mu held.
func (s *Store) nextCustomID() string {
	taken := make(map[string]struct{}, len(s.state.CustomGames))
	for _, r := range s.state.CustomGames {
		taken[r.ID] = struct{}{}
	}
	n := s.clock.Now().UnixNano()
	for {
		id := customIDPrefix + strconv.FormatInt(n, 10)
		if _, dup := taken[id]; !dup {
			return id
		}
		n++
	}
}

// UpdateSettings replaces the theme and drive selection.
func (s *Store) UpdateSettings(theme Theme, selectedDrives []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Theme = theme.WithDefaults()
	s.state.SelectedDrives = NormalizeDrives(selectedDrives)
	s.Save(s.state)
}

// Settings returns the current theme and drive selection.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Settings()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}
