// Package extractor filters analysis-history rows by a compact strategy
// expression, e.g. "conf:>=70,type:multi-item" or "type:single|multi-item".
package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/contentforge/blockinfer/pkg/db"
)

type Strategy struct {
	MinConfidence int
	BlockTypes    map[string]struct{}
	JSPatterns    map[string]struct{}
}

// ParseStrategy parses a comma-separated strategy expression. An empty
// expression is the no-op strategy.
func ParseStrategy(strategyStr string) (*Strategy, error) {
	if strategyStr == "" {
		return &Strategy{}, nil
	}

	strategy := &Strategy{
		BlockTypes: make(map[string]struct{}),
		JSPatterns: make(map[string]struct{}),
	}

	for _, part := range strings.Split(strategyStr, ",") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid strategy part: %s", part)
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		switch key {
		case "conf":
			if !strings.HasPrefix(value, ">=") {
				return nil, fmt.Errorf("unsupported confidence operator in: %s", value)
			}
			n, err := strconv.Atoi(strings.TrimSpace(value[2:]))
			if err != nil {
				return nil, fmt.Errorf("invalid confidence value: %s", value)
			}
			strategy.MinConfidence = n
		case "type":
			for _, t := range strings.Split(value, "|") {
				strategy.BlockTypes[strings.TrimSpace(t)] = struct{}{}
			}
		case "pattern":
			for _, p := range strings.Split(value, "|") {
				strategy.JSPatterns[strings.TrimSpace(p)] = struct{}{}
			}
		default:
			return nil, fmt.Errorf("unknown strategy key: %s", key)
		}
	}

	return strategy, nil
}

// FilterRecords keeps the history rows matching the strategy, preserving
// order. A nil strategy keeps everything.
func FilterRecords(records []db.AnalysisRecord, strategy *Strategy) []db.AnalysisRecord {
	if strategy == nil {
		return records
	}

	var out []db.AnalysisRecord
	for _, r := range records {
		if r.Overall < strategy.MinConfidence {
			continue
		}
		if len(strategy.BlockTypes) > 0 {
			if _, ok := strategy.BlockTypes[r.BlockType]; !ok {
				continue
			}
		}
		if len(strategy.JSPatterns) > 0 {
			if _, ok := strategy.JSPatterns[r.JSPattern]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
