// Package catalog provides CatalogRepository implementations backed by
// an in-memory map and by SQLite. Both resolve references the same way:
// exact identifier first, then fuzzy matching on the record name.
package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// maxNameDistance is the largest Levenshtein distance still accepted as
// a name match. Two edits covers the typical typo or plural.
const maxNameDistance = 2

// foldCaser is a package-level Unicode case folder for name matching.
var foldCaser = cases.Fold()

// candidate pairs a record's name with its position in the backing list.
type candidate struct {
	name  string
	index int
}

// bestNameMatch fuzzy-matches ref against candidate names and returns
// the index of the best match. Matching proceeds in tiers: exact folded
// name, substring containment in either direction, then smallest
// Levenshtein distance within maxNameDistance. Within a tier the first
// candidate in list order wins, keeping resolution deterministic.
func bestNameMatch(ref string, candidates []candidate) (int, bool) {
	folded := foldCaser.String(strings.TrimSpace(ref))
	if folded == "" {
		return 0, false
	}

	for _, c := range candidates {
		if foldCaser.String(c.name) == folded {
			return c.index, true
		}
	}

	for _, c := range candidates {
		name := foldCaser.String(c.name)
		if strings.Contains(name, folded) || strings.Contains(folded, name) {
			return c.index, true
		}
	}

	best, bestDist := 0, maxNameDistance+1
	for _, c := range candidates {
		if dist := levenshtein.ComputeDistance(foldCaser.String(c.name), folded); dist < bestDist {
			best, bestDist = c.index, dist
		}
	}
	if bestDist <= maxNameDistance {
		return best, true
	}

	return 0, false
}
