// Package recipient holds the catalog of addressable recipients offered
// for selection in the format wizard.
package recipient

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Catalog is a read-only set of recipient identifiers.
type Catalog struct {
	ids []string
}

// NewCatalog builds a catalog, dropping empty and duplicate entries while
// preserving first-seen order.
func NewCatalog(ids []string) *Catalog {
	seen := map[string]struct{}{}
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return &Catalog{ids: out}
}

// DefaultCatalog returns the built-in sample recipient set.
func DefaultCatalog() *Catalog {
	return NewCatalog([]string{
		"dev-team",
		"design-team",
		"product-leads",
		"engineering-managers",
		"qa-guild",
		"alice@company.com",
		"bob@company.com",
		"charlie@company.com",
		"dana@company.com",
		"exec-updates",
		"all-hands",
	})
}

// List returns all recipient identifiers in catalog order.
func (c *Catalog) List() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id string) bool {
	for _, v := range c.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Search returns catalog entries matching query, substring matches first,
// then near matches by edit distance. An empty query returns everything.
func (c *Catalog) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.List()
	}

	type scored struct {
		id   string
		rank int
		dist int
	}
	var matches []scored
	for _, id := range c.ids {
		lower := strings.ToLower(id)
		switch {
		case strings.Contains(lower, query):
			matches = append(matches, scored{id: id, rank: 0, dist: 0})
		default:
			dist := levenshtein.ComputeDistance(lower, query)
			// tolerate roughly a third of the identifier being off
			if float64(dist)/float64(len(lower)) < 0.34 {
				matches = append(matches, scored{id: id, rank: 1, dist: dist})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].dist < matches[j].dist
	})
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.id)
	}
	return out
}
