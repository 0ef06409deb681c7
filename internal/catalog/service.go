// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"context"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/geewers/geewers/internal/overlay"
	"github.com/geewers/geewers/internal/scanner"
	"github.com/geewers/geewers/pkg/game"
)

type (
	// Snapshotter provides the overlay state a catalog is built against.
	Snapshotter interface {
		Snapshot() overlay.State
	}

	// Result is one catalog build.
	Result struct {
		// Records is the ordered, de-duplicated catalog.
		Records []game.Record
		// Diagnostics collects every scanner notice, in scanner order.
		Diagnostics []scanner.Diagnostic
	}

	// Service builds catalogs on demand.
	Service struct {
		overlay  Snapshotter
		scanners []scanner.Scanner
		logger   *log.Logger
	}
)

// NewService creates a catalog service running scanners in the given order.
// A nil logger discards output.
func NewService(ov Snapshotter, scanners []scanner.Scanner, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{overlay: ov, scanners: scanners, logger: logger}
}

// Catalog runs every scanner concurrently, then filters, merges and sorts
// the results against a fresh overlay snapshot.
func (s *Service) Catalog(ctx context.Context) Result {
	results := make([]scanner.Result, len(s.scanners))

	var g errgroup.Group
	for i, sc := range s.scanners {
		g.Go(func() error {
			results[i] = sc.Scan(ctx)
			return nil
		})
	}
	_ = g.Wait()

	var (
		discovered []game.Record
		diags      []scanner.Diagnostic
	)
	for _, r := range results {
		s.logger.Debug("scanner finished", "platform", r.Platform, "games", len(r.Records))
		for _, d := range r.Diagnostics {
			s.logger.Debug(d.Message, "platform", d.Platform, "code", d.Code, "path", d.Path, "error", d.Cause)
		}
		discovered = append(discovered, r.Records...)
		diags = append(diags, r.Diagnostics...)
	}

	snap := s.overlay.Snapshot()
	records := Merge(FilterByDrives(discovered, snap.SelectedDrives), snap.CustomGames, snap.Favorites)

	s.logger.Info("catalog built", "games", len(records))
	return Result{Records: records, Diagnostics: diags}
}

// Find returns the record with key k.
func (r Result) Find(k game.Key) (game.Record, bool) {
	i := slices.IndexFunc(r.Records, func(rec game.Record) bool { return rec.Key() == k })
	if i < 0 {
		return game.Record{}, false
	}
	return r.Records[i], true
}

// Favorites returns only the favorited records, in catalog order.
func (r Result) Favorites() []game.Record {
	var out []game.Record
	for _, rec := range r.Records {
		if rec.IsFavorite {
			out = append(out, rec)
		}
	}
	return out
}
