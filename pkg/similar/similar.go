// Package similar ranks previously generated schemas against a fresh
// inference so their fields can be borrowed when confidence is low.
package similar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/contentforge/blockinfer/models"
)

// Corpus is the read surface the matcher needs. Implemented by corpus.Store.
type Corpus interface {
	Names() ([]string, error)
	Load(name string) (*models.BlockSchema, bool, error)
}

const (
	maxNameScore   = 30
	perSignalScore = 35
	maxSimilarity  = 100
)

// structuralSignals are the pattern families checked for overlap between the
// query characteristics and a corpus entry. Each match is worth
// perSignalScore points.
var structuralSignals = []struct {
	label string
	terms []string
}{
	{"carousel", []string{"carousel", "slider"}},
	{"cards", []string{"card", "grid"}},
	{"multi-item", []string{"multi-item", "repeating"}},
}

// FindSimilar scores every corpus entry against the block name and
// characteristics and returns the survivors in descending similarity order.
// Corpus failures are returned as warnings, never as a hard error: a broken
// corpus means zero matches.
func FindSimilar(blockName string, characteristics []string, store Corpus, th models.Thresholds) ([]models.SimilarBlockPattern, []string) {
	var warnings []string

	names, err := store.Names()
	if err != nil {
		return nil, []string{fmt.Sprintf("corpus unavailable: %v", err)}
	}

	query := strings.ToLower(strings.Join(characteristics, " "))

	var matches []models.SimilarBlockPattern
	for _, name := range names {
		schema, ok, err := store.Load(name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped corpus entry %q: %v", name, err))
			continue
		}
		if !ok {
			continue
		}

		pattern := scoreEntry(blockName, query, name, schema, th)
		if pattern != nil {
			matches = append(matches, *pattern)
		}
	}

	// Descending by similarity; the stable sort preserves corpus iteration
	// order (sorted entry names) for ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if th.MaxSimilar > 0 && len(matches) > th.MaxSimilar {
		matches = matches[:th.MaxSimilar]
	}

	return matches, warnings
}

// scoreEntry computes one entry's similarity, returning nil when it falls at
// or below the cutoff.
func scoreEntry(blockName, query, entryName string, schema *models.BlockSchema, th models.Thresholds) *models.SimilarBlockPattern {
	// Structural overlap is judged on the entry's name and declared
	// characteristics only. The stored block type and pattern tag are not
	// evidence of overlap: every multi-item entry would otherwise match the
	// repeating-items signal regardless of what it actually contains.
	haystackParts := []string{
		strings.ToLower(entryName),
		strings.ToLower(schema.BlockName),
	}
	haystackParts = append(haystackParts, lowerAll(schema.Characteristics)...)
	haystack := strings.Join(haystackParts, " ")

	similarity := nameSimilarity(blockName, schema.BlockName)

	var shared []string
	for _, sig := range structuralSignals {
		if containsAny(query, sig.terms) && containsAny(haystack, sig.terms) {
			similarity += perSignalScore
			shared = append(shared, sig.label)
		}
	}
	if similarity > maxSimilarity {
		similarity = maxSimilarity
	}
	if similarity <= th.SimilarityCutoff {
		return nil
	}

	return &models.SimilarBlockPattern{
		BlockName:             schema.BlockName,
		Similarity:            similarity,
		SharedCharacteristics: shared,
		SuggestedFields:       suggestedFields(schema),
	}
}

// nameSimilarity maps normalized edit distance to [0,maxNameScore].
func nameSimilarity(a, b string) int {
	longer := len([]rune(a))
	if n := len([]rune(b)); n > longer {
		longer = n
	}
	if longer == 0 {
		return 0
	}
	dist := levenshtein(a, b)
	return (maxNameScore*(longer-dist) + longer/2) / longer
}

// levenshtein is the standard dynamic-programming edit distance over code
// points.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// suggestedFields picks the borrowable field list from a corpus entry,
// preferring item-scope fields.
func suggestedFields(schema *models.BlockSchema) []models.Field {
	src := schema.ItemFields
	if len(src) == 0 {
		src = schema.ContainerFields
	}
	out := make([]models.Field, len(src))
	copy(out, src)
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
