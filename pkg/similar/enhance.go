package similar

import (
	"fmt"

	"github.com/contentforge/blockinfer/models"
)

// Enhance borrows item fields from the best similar match when field
// extraction came up short. It never mutates its inputs; the returned
// analysis and score are independent copies.
func Enhance(analysis models.BlockAnalysis, score models.ConfidenceScore, matches []models.SimilarBlockPattern, th models.Thresholds) (models.BlockAnalysis, models.ConfidenceScore) {
	out := cloneAnalysis(analysis)
	outScore := cloneScore(score)

	if len(matches) == 0 {
		return out, outScore
	}
	if score.FieldExtraction >= th.LowFieldExtraction {
		return out, outScore
	}
	if analysis.BlockType != models.BlockTypeMulti || len(analysis.ContentStructure.ItemFields) > 0 {
		return out, outScore
	}

	top := matches[0]
	borrowed := borrowableFields(top.SuggestedFields, analysis.ContentStructure.ContainerFields)
	if len(borrowed) == 0 {
		return out, outScore
	}

	out.ContentStructure.ItemFields = borrowed
	outScore.Suggestions = append(outScore.Suggestions,
		fmt.Sprintf("item fields borrowed from similar block %q (similarity %d); verify against the design", top.BlockName, top.Similarity))

	return out, outScore
}

// borrowableFields filters out suggested fields that would shadow an already
// derived container field of the same name.
func borrowableFields(suggested, containerFields []models.Field) []models.Field {
	taken := make(map[string]bool, len(containerFields))
	for _, f := range containerFields {
		taken[f.Name] = true
	}

	var out []models.Field
	for _, f := range suggested {
		if taken[f.Name] {
			continue
		}
		out = append(out, f)
	}
	return out
}

func cloneAnalysis(a models.BlockAnalysis) models.BlockAnalysis {
	out := a
	out.ContentStructure.ContainerFields = cloneFields(a.ContentStructure.ContainerFields)
	out.ContentStructure.ItemFields = cloneFields(a.ContentStructure.ItemFields)
	out.ContentStructure.ConfigurationOptions = cloneStrings(a.ContentStructure.ConfigurationOptions)
	return out
}

func cloneScore(s models.ConfidenceScore) models.ConfidenceScore {
	out := s
	out.Reasons = cloneStrings(s.Reasons)
	out.Suggestions = cloneStrings(s.Suggestions)
	return out
}

func cloneFields(in []models.Field) []models.Field {
	if in == nil {
		return nil
	}
	out := make([]models.Field, len(in))
	copy(out, in)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
