// Package site turns archive data into pages: an Archive indexes the
// extensions and assembles page trees, a Builder renders every page into a
// store.
package site

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/extstats/internal/extstats"
	"github.com/vango-dev/extstats/pkg/markup"
)

// Archive is a sorted, paginated view of the extension data. It is
// read-only after NewArchive and safe for concurrent use; every call
// returns a fresh tree.
type Archive struct {
	pages *extstats.Pages
	exts  []extstats.Extension
	list  [][]extstats.Extension
	byID  map[string]*extstats.Extension
	stats extstats.Stats
}

// NewArchive sorts a copy of exts by user count and splits it into list
// pages of perPage extensions. Extensions without an ID are dropped;
// for duplicate IDs the most used one wins the detail page.
func NewArchive(pages *extstats.Pages, exts []extstats.Extension, perPage int, logger *slog.Logger) *Archive {
	if logger == nil {
		logger = slog.Default()
	}

	sorted := make([]extstats.Extension, 0, len(exts))
	for _, ext := range exts {
		if ext.ID == "" {
			logger.Warn("skipping extension without id", "name", ext.Name)
			continue
		}
		sorted = append(sorted, ext)
	}
	extstats.SortByUsers(sorted)

	a := &Archive{
		pages: pages,
		exts:  sorted,
		list:  extstats.Paginate(sorted, perPage),
		byID:  make(map[string]*extstats.Extension, len(sorted)),
		stats: extstats.ComputeStats(sorted),
	}
	for i := range sorted {
		id := sorted[i].ID
		if _, ok := a.byID[id]; ok {
			logger.Warn("duplicate extension id", "id", id)
			continue
		}
		a.byID[id] = &sorted[i]
	}
	return a
}

// PageCount returns the number of list pages.
func (a *Archive) PageCount() int {
	return len(a.list)
}

// Stats returns the archive totals.
func (a *Archive) Stats() extstats.Stats {
	return a.stats
}

// IDs returns the extension IDs with a detail page, most used first.
func (a *Archive) IDs() []string {
	ids := make([]string, 0, len(a.byID))
	for i := range a.exts {
		if a.byID[a.exts[i].ID] == &a.exts[i] {
			ids = append(ids, a.exts[i].ID)
		}
	}
	return ids
}

// ListPage assembles list page p (1-based).
func (a *Archive) ListPage(p int) (*markup.Node, bool) {
	if p < 1 || p > len(a.list) {
		return nil, false
	}
	return a.pages.ListPage(extstats.ListData{
		Exts:  a.list[p-1],
		Page:  p,
		Pages: len(a.list),
		Stats: a.stats,
	}), true
}

// ExtPage assembles the detail page of extension id.
func (a *Archive) ExtPage(id string) (*markup.Node, bool, error) {
	ext, ok := a.byID[id]
	if !ok {
		return nil, false, nil
	}
	node, err := a.pages.ExtPage(ext)
	if err != nil {
		return nil, true, fmt.Errorf("extension %s: %w", id, err)
	}
	return node, true, nil
}
