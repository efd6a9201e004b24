package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/restaurant"
)

// fallbackLimit caps the "default top picks" list returned when no
// restaurant matches any selected keyword.
const fallbackLimit = 10

// Scored is a restaurant plus the derived match data for one scoring pass.
type Scored struct {
	restaurant.Restaurant
	Score   int
	Matched []string
}

// Index resolves selected option ids to keywords. Option ids must be unique
// across every category; NewIndex rejects catalogs that break this so two
// categories can never silently merge their keywords under one id.
type Index struct {
	catalog Catalog
}

func NewIndex(catalog Catalog) (*Index, error) {
	seen := make(map[string]string)
	for _, category := range catalog {
		for _, option := range category.Options {
			if other, ok := seen[option.ID]; ok {
				return nil, fmt.Errorf("recommend: option id %q defined in both %q and %q", option.ID, other, category.ID)
			}
			seen[option.ID] = category.ID
		}
	}
	return &Index{catalog: catalog}, nil
}

// Keywords flattens the keywords of every selected option, lower-cased, in
// catalog order. Unknown ids contribute nothing.
func (ix *Index) Keywords(selectedIDs []string) []string {
	selected := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}

	var keywords []string
	for _, category := range ix.catalog {
		for _, option := range category.Options {
			if _, ok := selected[option.ID]; !ok {
				continue
			}
			for _, keyword := range option.Keywords {
				keywords = append(keywords, strings.ToLower(keyword))
			}
		}
	}
	return keywords
}

// Recommend ranks restaurants against the selected preference options.
// Pure function of its inputs and the catalog: no calls, no mutation.
//
// Each keyword that appears as a substring of the restaurant's combined
// name/description/address counts once, in keyword order, without
// deduplication — two selected options sharing a keyword score it twice.
// Ordering is score descending, then average rating descending, and the
// sort is stable so input order settles the rest. When at least one
// restaurant matched, only matching restaurants are returned; otherwise the
// first ten of the rating-ordered list serve as default picks.
func (ix *Index) Recommend(restaurants []restaurant.Restaurant, selectedIDs []string) []Scored {
	keywords := ix.Keywords(selectedIDs)

	scored := make([]Scored, 0, len(restaurants))
	for _, r := range restaurants {
		score, matched := scoreOne(r, keywords)
		scored = append(scored, Scored{Restaurant: r, Score: score, Matched: matched})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].AverageRating > scored[j].AverageRating
	})

	withMatch := make([]Scored, 0, len(scored))
	for _, s := range scored {
		if s.Score > 0 {
			withMatch = append(withMatch, s)
		}
	}
	if len(withMatch) > 0 {
		return withMatch
	}

	if len(scored) > fallbackLimit {
		return scored[:fallbackLimit]
	}
	return scored
}

func scoreOne(r restaurant.Restaurant, keywords []string) (int, []string) {
	if len(keywords) == 0 {
		return 0, nil
	}

	haystack := strings.ToLower(r.Name + " " + r.Description + " " + r.Address)

	var matched []string
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			matched = append(matched, keyword)
		}
	}
	return len(matched), matched
}
