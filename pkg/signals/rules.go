package signals

import "regexp"

// ContainerRule maps a repeating-container name pattern to the vocabulary
// entry it feeds. Rules are evaluated in order; the first match wins, so the
// table doubles as the priority order.
type ContainerRule struct {
	Name    string // canonical vocabulary name, e.g. "card"
	Pattern string // regexp over the normalized (lowercase alphanumeric) name
	Weight  int    // relative repetition weight, reported in provenance
}

// containerRules is the fixed vocabulary of repeating-container names seen in
// design-tool exports. Case and punctuation tolerance comes from matching
// against common.NormalizeName output.
var containerRules = []ContainerRule{
	{Name: "card", Pattern: `card`, Weight: 3},
	{Name: "item", Pattern: `item`, Weight: 3},
	{Name: "slide", Pattern: `slide`, Weight: 3},
	{Name: "tile", Pattern: `tile`, Weight: 2},
	{Name: "feature", Pattern: `feature`, Weight: 2},
	{Name: "testimonial", Pattern: `testimonial`, Weight: 2},
	{Name: "teaser", Pattern: `teaser`, Weight: 2},
	{Name: "entry", Pattern: `entry`, Weight: 1},
	{Name: "column", Pattern: `col(umn)?\d*$`, Weight: 1},
}

type compiledRule struct {
	ContainerRule
	re *regexp.Regexp
}

// compileRules compiles the rule table once; evaluation never touches
// regexp.MustCompile.
func compileRules(rules []ContainerRule) []compiledRule {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, compiledRule{ContainerRule: r, re: regexp.MustCompile(r.Pattern)})
	}
	return out
}

var compiledContainerRules = compileRules(containerRules)

// matchContainerName returns the vocabulary entry a normalized container
// name belongs to, if any.
func matchContainerName(normalized string) (ContainerRule, bool) {
	if normalized == "" {
		return ContainerRule{}, false
	}
	for _, r := range compiledContainerRules {
		if r.re.MatchString(normalized) {
			return r.ContainerRule, true
		}
	}
	return ContainerRule{}, false
}
