// Package classifier decides whether a block is a one-off or a repeating
// list, as a pure function of the extracted signal bag.
package classifier

import "github.com/contentforge/blockinfer/models"

// Classify maps a signal bag to a block type. The thresholds feeding
// MultiItemLikely are deliberately low: missing a real repeating block is
// costlier than a false positive, which confidence scoring exposes later.
func Classify(bag models.SignalBag) models.BlockType {
	if bag.MultiItemLikely {
		return models.BlockTypeMulti
	}
	return models.BlockTypeSingle
}
