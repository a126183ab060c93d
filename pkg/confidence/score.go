// Package confidence grades an analysis numerically and keeps a
// human-readable audit trail of every adjustment.
package confidence

import (
	"fmt"

	"github.com/contentforge/blockinfer/models"
)

const baseline = 50

// Score computes the confidence for a finished analysis. bag may be nil
// when no signal extraction happened (insufficient input); that gap is
// reflected in the score and suggestions rather than an error.
func Score(analysis *models.BlockAnalysis, bag *models.SignalBag) models.ConfidenceScore {
	score := models.ConfidenceScore{
		BlockType:       baseline,
		FieldExtraction: baseline,
	}

	scoreBlockType(&score, analysis, bag)
	scoreFieldExtraction(&score, analysis, bag)

	score.BlockType = clamp(score.BlockType)
	score.FieldExtraction = clamp(score.FieldExtraction)
	score.Overall = (score.BlockType + score.FieldExtraction + 1) / 2

	return score
}

func scoreBlockType(score *models.ConfidenceScore, analysis *models.BlockAnalysis, bag *models.SignalBag) {
	if bag == nil {
		score.BlockType -= 20
		score.Reasons = append(score.Reasons, "no signal bag available; input below the minimum analyzable length")
		score.Suggestions = append(score.Suggestions, "provide the full exported component markup, not a truncated snippet")
		return
	}

	if analysis.BlockType == models.BlockTypeMulti && bag.MultiItemLikely {
		score.BlockType += 30
		score.Reasons = append(score.Reasons, "multi-item classification backed by structural repetition signals")
	}

	if bag.MaxRepeatedCount() >= 2 {
		score.BlockType += 20
		score.Reasons = append(score.Reasons, fmt.Sprintf("repeated container names found (max count %d)", bag.MaxRepeatedCount()))
	}
}

func scoreFieldExtraction(score *models.ConfidenceScore, analysis *models.BlockAnalysis, bag *models.SignalBag) {
	cs := analysis.ContentStructure

	if len(cs.ContainerFields) > 0 {
		score.FieldExtraction += 20
		score.Reasons = append(score.Reasons, fmt.Sprintf("%d container fields derived", len(cs.ContainerFields)))
	} else if analysis.BlockType == models.BlockTypeMulti {
		score.FieldExtraction -= 30
		score.Suggestions = append(score.Suggestions, "multi-item block has no container fields; check whether the block heading sits inside the items")
	}

	if analysis.BlockType == models.BlockTypeMulti {
		if len(cs.ItemFields) > 0 {
			score.FieldExtraction += 30
			score.Reasons = append(score.Reasons, fmt.Sprintf("%d item fields derived", len(cs.ItemFields)))
		} else {
			score.FieldExtraction -= 40
			score.Suggestions = append(score.Suggestions, "no item fields derived for a multi-item block; similar prior schemas may fill the gap")
		}
	}

	if bag != nil && len(bag.SemanticCTAs) >= 1 {
		score.FieldExtraction += 10
		score.Reasons = append(score.Reasons, fmt.Sprintf("%d call-to-action element(s) detected", len(bag.SemanticCTAs)))
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
