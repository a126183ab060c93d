package similar

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/contentforge/blockinfer/models"
)

// fakeCorpus is an in-memory Corpus for matcher tests.
type fakeCorpus struct {
	entries  map[string]*models.BlockSchema
	loadErrs map[string]error
	namesErr error
}

func (f *fakeCorpus) Names() ([]string, error) {
	if f.namesErr != nil {
		return nil, f.namesErr
	}
	var names []string
	for name := range f.entries {
		names = append(names, name)
	}
	for name := range f.loadErrs {
		names = append(names, name)
	}
	// Mirror the on-disk store: enumeration order is sorted.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if names[j] < names[i] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	return names, nil
}

func (f *fakeCorpus) Load(name string) (*models.BlockSchema, bool, error) {
	if err, ok := f.loadErrs[name]; ok {
		return nil, false, err
	}
	schema, ok := f.entries[name]
	if !ok {
		return nil, false, nil
	}
	return schema, true, nil
}

func TestFindSimilar_RanksStructuralOverlapAboveNameOnly(t *testing.T) {
	store := &fakeCorpus{entries: map[string]*models.BlockSchema{
		"product-carousel": {
			BlockName:       "product-carousel",
			BlockType:       models.BlockTypeMulti,
			JSPattern:       models.JSPatternCarousel,
			Characteristics: []string{"carousel", "repeating items"},
			ItemFields:      []models.Field{{Name: "heading"}, {Name: "image"}},
		},
		"plain-list": {
			BlockName:       "plain-list",
			BlockType:       models.BlockTypeMulti,
			Characteristics: []string{"vertical", "static"},
		},
	}}

	matches, warnings := FindSimilar("product-slider",
		[]string{"carousel", "multi-item"}, store, models.DefaultThresholds())

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1 (plain-list must fall below the cutoff): %+v", len(matches), matches)
	}
	top := matches[0]
	if top.BlockName != "product-carousel" {
		t.Errorf("top match = %q, want product-carousel", top.BlockName)
	}
	if top.Similarity <= 40 || top.Similarity > 100 {
		t.Errorf("Similarity = %d, want in (40, 100]", top.Similarity)
	}
	wantShared := []string{"carousel", "multi-item"}
	if diff := cmp.Diff(wantShared, top.SharedCharacteristics); diff != "" {
		t.Errorf("SharedCharacteristics mismatch (-want +got):\n%s", diff)
	}
	if len(top.SuggestedFields) != 2 {
		t.Errorf("SuggestedFields = %+v, want the entry's item fields", top.SuggestedFields)
	}
}

func TestFindSimilar_StoredTypeTagsAreNotStructuralOverlap(t *testing.T) {
	// The entry's stored block type and pattern tag would both hit the
	// query's signal terms, but its name and declared characteristics share
	// nothing with the query. It must stay below the cutoff.
	store := &fakeCorpus{entries: map[string]*models.BlockSchema{
		"plain-list": {
			BlockName:       "plain-list",
			BlockType:       models.BlockTypeMulti,
			JSPattern:       models.JSPatternCarousel,
			Characteristics: []string{"vertical", "static"},
		},
	}}

	matches, _ := FindSimilar("product-slider",
		[]string{"carousel", "multi-item"}, store, models.DefaultThresholds())

	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0: %+v", len(matches), matches)
	}
}

func TestFindSimilar_ExactNameMatchCapsAtHundred(t *testing.T) {
	store := &fakeCorpus{entries: map[string]*models.BlockSchema{
		"feature-cards": {
			BlockName:       "feature-cards",
			Characteristics: []string{"card grid", "repeating items", "carousel controls"},
		},
	}}

	matches, _ := FindSimilar("feature-cards",
		[]string{"cards", "multi-item", "carousel"}, store, models.DefaultThresholds())

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Similarity != 100 {
		t.Errorf("Similarity = %d, want capped at 100", matches[0].Similarity)
	}
}

func TestFindSimilar_PrefersSuggestedItemFields(t *testing.T) {
	containerOnly := &models.BlockSchema{
		BlockName:       "hero-banner",
		Characteristics: []string{"cards"},
		ContainerFields: []models.Field{{Name: "heading"}},
	}
	store := &fakeCorpus{entries: map[string]*models.BlockSchema{"hero-banner": containerOnly}}

	matches, _ := FindSimilar("hero-banner", []string{"cards"}, store, models.DefaultThresholds())

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if len(matches[0].SuggestedFields) != 1 || matches[0].SuggestedFields[0].Name != "heading" {
		t.Errorf("SuggestedFields = %+v, want container fields when no item fields exist", matches[0].SuggestedFields)
	}
}

func TestFindSimilar_BrokenEntryIsWarnedAndSkipped(t *testing.T) {
	store := &fakeCorpus{
		entries: map[string]*models.BlockSchema{
			"card-grid": {BlockName: "card-grid", Characteristics: []string{"card", "repeating"}},
		},
		loadErrs: map[string]error{"broken": errors.New("malformed corpus entry")},
	}

	matches, warnings := FindSimilar("card-grid", []string{"cards", "multi-item"}, store, models.DefaultThresholds())

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want the healthy entry only", len(matches))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "broken") {
		t.Errorf("warnings = %v, want one naming the skipped entry", warnings)
	}
}

func TestFindSimilar_CorpusEnumerationFailureIsSoft(t *testing.T) {
	store := &fakeCorpus{namesErr: errors.New("permission denied")}

	matches, warnings := FindSimilar("anything", nil, store, models.DefaultThresholds())

	if matches != nil {
		t.Errorf("matches = %+v, want nil on corpus failure", matches)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one corpus warning", warnings)
	}
}

func TestFindSimilar_RespectsMaxSimilar(t *testing.T) {
	entries := map[string]*models.BlockSchema{}
	for _, name := range []string{"cards-a", "cards-b", "cards-c", "cards-d", "cards-e", "cards-f", "cards-g"} {
		entries[name] = &models.BlockSchema{
			BlockName:       name,
			Characteristics: []string{"card", "repeating"},
		}
	}
	store := &fakeCorpus{entries: entries}

	th := models.DefaultThresholds()
	matches, _ := FindSimilar("cards-x", []string{"cards", "multi-item"}, store, th)

	if len(matches) != th.MaxSimilar {
		t.Errorf("got %d matches, want capped at %d", len(matches), th.MaxSimilar)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("matches not sorted descending at %d: %d after %d", i, matches[i].Similarity, matches[i-1].Similarity)
		}
	}
}

func TestFindSimilar_Deterministic(t *testing.T) {
	store := &fakeCorpus{entries: map[string]*models.BlockSchema{
		"tile-grid":  {BlockName: "tile-grid", Characteristics: []string{"grid", "repeating"}},
		"card-strip": {BlockName: "card-strip", Characteristics: []string{"card", "repeating"}},
	}}

	first, _ := FindSimilar("card-row", []string{"cards", "multi-item"}, store, models.DefaultThresholds())
	second, _ := FindSimilar("card-row", []string{"cards", "multi-item"}, store, models.DefaultThresholds())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("matcher not deterministic (-first +second):\n%s", diff)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"card", "", 4},
		{"card", "card", 0},
		{"card", "cart", 1},
		{"carousel", "carousal", 1},
		{"hero", "carousel", 6},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
