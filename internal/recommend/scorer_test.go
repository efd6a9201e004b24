package recommend

import (
	"strings"
	"testing"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/restaurant"
)

func mustIndex(t *testing.T) *Index {
	t.Helper()

	index, err := NewIndex(DefaultCatalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return index
}

func TestNewIndexRejectsDuplicateOptionIDs(t *testing.T) {
	catalog := Catalog{
		{ID: "cuisine", Options: []Option{{ID: "seafood", Keywords: []string{"seafood"}}}},
		{ID: "vibe", Options: []Option{{ID: "seafood", Keywords: []string{"fresh"}}}},
	}

	if _, err := NewIndex(catalog); err == nil {
		t.Fatal("expected duplicate option id to be rejected")
	}
}

func TestKeywordsAreLowercasedAndFlat(t *testing.T) {
	index := mustIndex(t)

	keywords := index.Keywords([]string{"hcm"})
	if len(keywords) == 0 {
		t.Fatal("expected keywords for hcm")
	}
	for _, kw := range keywords {
		if kw != strings.ToLower(kw) {
			t.Fatalf("keyword %q is not lower-cased", kw)
		}
	}
}

func TestUnknownSelectionContributesNothing(t *testing.T) {
	index := mustIndex(t)

	if got := index.Keywords([]string{"no-such-option"}); len(got) != 0 {
		t.Fatalf("expected no keywords, got %v", got)
	}
}

// Empty selection: every restaurant scores 0 and the rating-ordered fallback
// is returned whole when there are ten or fewer inputs.
func TestEmptySelectionReturnsAllByRating(t *testing.T) {
	index := mustIndex(t)

	input := []restaurant.Restaurant{
		{ID: 1, Name: "A", AverageRating: 3.5},
		{ID: 2, Name: "B", AverageRating: 4.8},
		{ID: 3, Name: "C", AverageRating: 4.1},
	}

	results := index.Recommend(input, nil)
	if len(results) != len(input) {
		t.Fatalf("expected %d results, got %d", len(input), len(results))
	}

	wantOrder := []int64{2, 3, 1}
	for i, want := range wantOrder {
		if results[i].ID != want {
			t.Fatalf("position %d: got id %d, want %d", i, results[i].ID, want)
		}
		if results[i].Score != 0 {
			t.Fatalf("expected score 0, got %d", results[i].Score)
		}
	}
}

// Adding an option whose keyword a restaurant contains never lowers its score.
func TestAddingMatchingOptionNeverDecreasesScore(t *testing.T) {
	index := mustIndex(t)

	r := restaurant.Restaurant{ID: 1, Name: "BigBoy Riverside", Description: "hải sản tươi view sông"}

	base := index.Recommend([]restaurant.Restaurant{r}, []string{"seafood"})
	wider := index.Recommend([]restaurant.Restaurant{r}, []string{"seafood", "view"})

	if wider[0].Score < base[0].Score {
		t.Fatalf("score decreased from %d to %d after adding a matching option", base[0].Score, wider[0].Score)
	}
}

// No match with a non-empty selection: top ten by rating, descending.
func TestFallbackTopTenByRating(t *testing.T) {
	index := mustIndex(t)

	var input []restaurant.Restaurant
	for i := 1; i <= 12; i++ {
		input = append(input, restaurant.Restaurant{
			ID:            int64(i),
			Name:          "Quán số",
			AverageRating: float64(i) / 2,
		})
	}

	results := index.Recommend(input, []string{"seafood"})
	if len(results) != 10 {
		t.Fatalf("expected 10 fallback results, got %d", len(results))
	}

	for i := range results {
		if results[i].Score != 0 {
			t.Fatalf("fallback result %d has score %d", i, results[i].Score)
		}
		if i > 0 && results[i].AverageRating > results[i-1].AverageRating {
			t.Fatal("fallback list is not sorted by rating descending")
		}
	}

	if results[0].ID != 12 {
		t.Fatalf("expected highest-rated first, got id %d", results[0].ID)
	}
}

func TestSeafoodSelectionFiltersToMatches(t *testing.T) {
	index := mustIndex(t)

	input := []restaurant.Restaurant{
		{ID: 1, Name: "BigBoy Riverside", Description: "fresh seafood"},
		{ID: 2, Name: "BigBoy Central"},
	}

	results := index.Recommend(input, []string{"seafood"})
	if len(results) != 1 {
		t.Fatalf("expected only the matching restaurant, got %d results", len(results))
	}
	if results[0].ID != 1 {
		t.Fatalf("expected Riverside, got id %d", results[0].ID)
	}
	if results[0].Score < 1 {
		t.Fatalf("expected score >= 1, got %d", results[0].Score)
	}
}

// Two selected options sharing a keyword count it twice; matches keep
// keyword encounter order.
func TestSharedKeywordsCountTwice(t *testing.T) {
	catalog := Catalog{
		{ID: "vibe", Options: []Option{
			{ID: "date", Keywords: []string{"lãng mạn"}},
			{ID: "view", Keywords: []string{"view", "lãng mạn"}},
		}},
	}
	index, err := NewIndex(catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := restaurant.Restaurant{ID: 1, Name: "Nhà hàng view sông lãng mạn"}
	results := index.Recommend([]restaurant.Restaurant{r}, []string{"date", "view"})

	if results[0].Score != 3 {
		t.Fatalf("expected score 3 (lãng mạn twice + view once), got %d", results[0].Score)
	}

	want := []string{"lãng mạn", "view", "lãng mạn"}
	if len(results[0].Matched) != len(want) {
		t.Fatalf("matched %v, want %v", results[0].Matched, want)
	}
	for i := range want {
		if results[0].Matched[i] != want[i] {
			t.Fatalf("matched %v, want %v", results[0].Matched, want)
		}
	}
}

func TestTiesBrokenByRatingThenInputOrder(t *testing.T) {
	index := mustIndex(t)

	input := []restaurant.Restaurant{
		{ID: 1, Name: "Quán hải sản An", AverageRating: 4.0},
		{ID: 2, Name: "Quán hải sản Bình", AverageRating: 4.5},
		{ID: 3, Name: "Quán hải sản Chi", AverageRating: 4.0},
	}

	results := index.Recommend(input, []string{"seafood"})

	wantOrder := []int64{2, 1, 3}
	for i, want := range wantOrder {
		if results[i].ID != want {
			t.Fatalf("position %d: got id %d, want %d", i, results[i].ID, want)
		}
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	if _, err := NewIndex(DefaultCatalog); err != nil {
		t.Fatalf("default catalog must have unique option ids: %v", err)
	}
}
