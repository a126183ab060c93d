// Package textstats provides keyword statistics over the visible text of a
// component snapshot. The analyzer uses it for debug keywords and for
// suggesting a block name when the caller supplies none.
package textstats

import (
	"sort"
	"strings"

	"github.com/contentforge/blockinfer/internal/common"
)

// stopwordList covers common English function words plus noise terms that
// show up in design-tool exports and never describe the block's content.
const stopwordList = `
a about above across after afterwards again against all almost alone along
already also although always am among amongst amount an and another any
anyhow anyone anything anyway anywhere are aren't around as at
back be became because become becomes becoming been before beforehand behind
being below beside besides between beyond both but by
can can't cannot could couldn't
did didn't do does doesn't doing don't done down during
each either else elsewhere enough entirely especially etc even ever every
everyone everything everywhere
few for former formerly from further
had hadn't has hasn't have haven't having he he'd he'll he's hence her here
hereafter hereby herein here's hereupon hers herself him himself his how
however
i i'd i'll i'm i've if in indeed into is isn't it it's its itself
just keep
last latter latterly least less let let's like likely
made make many may maybe me meanwhile might mine more moreover most mostly
much must mustn't my myself
neither never nevertheless next no nobody none noone nor not nothing now
nowhere
of off often on once one only onto or other others otherwise our ours
ourselves out over own
part per perhaps please put
rather re same see seem seemed seeming seems several she she'd she'll she's
should shouldn't since so some somehow someone something sometime sometimes
somewhere still such
take than that that's the their theirs them themselves then thence there
thereafter thereby therefore therein there's thereupon these they they'd
they'll they're they've this those through throughout thru thus to together
too toward towards
under until up upon us use
very via
was wasn't we we'd we'll we're we've well were weren't what whatever what's
when whence whenever where whereafter whereas whereby wherein where's
whereupon wherever whether which while whither who who'd whoever who'll who's
whose why with within without won't would wouldn't
yet you you'd you'll you're you've your yours yourself yourselves
ain't it'll shan't that'll when's
frame group rectangle ellipse vector instance component variant container
wrapper layout spacer placeholder lorem ipsum dolor
click clickable button link menu page website item text label
`

var stopwords = buildStopwords()

func buildStopwords() map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(stopwordList) {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether a word carries no content meaning.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// WordFrequency counts content words in the text, lowercased and stripped of
// surrounding punctuation.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if word == "" {
			continue
		}
		if _, ok := stopwords[word]; ok {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

// TopNWords returns the n most frequent content words, most frequent first.
// Ties break alphabetically so the output is deterministic.
func TopNWords(text string, n int) []string {
	frequencies := WordFrequency(text)

	type wordCount struct {
		word  string
		count int
	}
	counts := make([]wordCount, 0, len(frequencies))
	for w, c := range frequencies {
		counts = append(counts, wordCount{w, c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	if n > len(counts) {
		n = len(counts)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = counts[i].word
	}
	return top
}

// SuggestBlockName derives a slug-style block name from the dominant content
// words, for callers that did not name the block. Empty when the text has no
// content words.
func SuggestBlockName(text string) string {
	top := TopNWords(text, 2)
	if len(top) == 0 {
		return ""
	}
	return common.Slugify(strings.Join(top, " "))
}
