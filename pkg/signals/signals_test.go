package signals

import (
	"strings"
	"testing"

	"github.com/contentforge/blockinfer/models"
)

var th = models.DefaultThresholds()

func TestExtract_RepeatedContainers(t *testing.T) {
	markup := `<div data-name="Cards">` +
		`<div data-name="Card"><h3>One</h3></div>` +
		`<div data-name="Card"><h3>Two</h3></div>` +
		`<div data-name="Card"><h3>Three</h3></div>` +
		`</div>`

	bag := Extract(markup, th)

	if got := bag.RepeatedContainerNames["card"]; got != 3 {
		t.Errorf("card count = %d, want 3 (map: %v)", got, bag.RepeatedContainerNames)
	}
	if got := bag.RepeatedContainerNames["cards"]; got != 1 {
		t.Errorf("cards count = %d, want 1", got)
	}
	if !bag.MultiItemLikely {
		t.Error("MultiItemLikely = false, want true for three repeated cards")
	}
}

func TestExtract_NamePunctuationTolerance(t *testing.T) {
	tests := []struct {
		name   string
		attr   string
		wantKey string
	}{
		{"hyphenated", "Card-Item", "carditem"},
		{"spaced", "card item", "carditem"},
		{"underscored", "CARD_ITEM", "carditem"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := `<div data-name="` + tt.attr + `"><p>padding padding padding</p></div>`
			bag := Extract(markup, th)
			if got := bag.RepeatedContainerNames[tt.wantKey]; got != 1 {
				t.Errorf("count for %q = %d, want 1 (map: %v)", tt.wantKey, got, bag.RepeatedContainerNames)
			}
		})
	}
}

func TestExtract_Headings(t *testing.T) {
	long := strings.Repeat("x", 80)
	markup := `<div data-name="Block">` +
		`<h2>Main Title</h2>` +
		`<h2>Main Title</h2>` + // exact duplicate, dropped
		`<strong>Bold lead</strong>` +
		`<h3>` + long + `</h3>` +
		`</div>`

	bag := Extract(markup, th)

	if len(bag.DistinctHeadings) != 3 {
		t.Fatalf("distinct headings = %d, want 3 (%v)", len(bag.DistinctHeadings), bag.DistinctHeadings)
	}
	if bag.DistinctHeadings[0] != "Main Title" || bag.DistinctHeadings[1] != "Bold lead" {
		t.Errorf("heading order wrong: %v", bag.DistinctHeadings)
	}
	if got := len(bag.DistinctHeadings[2]); got != th.HeadingMaxLen {
		t.Errorf("long heading length = %d, want capped at %d", got, th.HeadingMaxLen)
	}
}

func TestExtract_CTAFiltering(t *testing.T) {
	markup := `<div data-name="Hero">` +
		`<button>Sign Up</button>` +
		`<button>sign up</button>` + // case-insensitive duplicate
		`<a href="/pricing">See pricing</a>` +
		`<a href="#">Placeholder</a>` +
		`<a href="">Empty</a>` +
		`<a href="javascript:void(0)">Scripted</a>` +
		`<a href="/long">` + strings.Repeat("w ", 80) + `</a>` +
		`<span role="button">Open dialog</span>` +
		`</div>`

	bag := Extract(markup, th)

	want := []models.SemanticCTA{
		{Text: "Sign Up", Type: models.CTATypeButton},
		{Text: "See pricing", Href: "/pricing", Type: models.CTATypeLink},
		{Text: "Open dialog", Type: models.CTATypeButton},
	}
	if len(bag.SemanticCTAs) != len(want) {
		t.Fatalf("CTA count = %d, want %d (%v)", len(bag.SemanticCTAs), len(want), bag.SemanticCTAs)
	}
	for i, w := range want {
		if bag.SemanticCTAs[i] != w {
			t.Errorf("CTA[%d] = %+v, want %+v", i, bag.SemanticCTAs[i], w)
		}
	}
	if bag.ActionButtonCount != 3 {
		t.Errorf("ActionButtonCount = %d, want 3", bag.ActionButtonCount)
	}
}

func TestExtract_GenericContainerHeuristic(t *testing.T) {
	// No named containers, no repeated headings above the small-heading
	// level, but two generic containers with four bullets: multi-item.
	markup := `<div><div>` +
		`<div><ul><li>a</li><li>b</li></ul><p>x</p></div>` +
		`<div><ul><li>c</li><li>d</li></ul><p>y</p></div>` +
		`</div></div>`

	bag := Extract(markup, th)

	if bag.GenericContainerCount < th.GenericContainerMin {
		t.Errorf("GenericContainerCount = %d, want >= %d", bag.GenericContainerCount, th.GenericContainerMin)
	}
	if bag.BulletCount != 4 {
		t.Errorf("BulletCount = %d, want 4", bag.BulletCount)
	}
	if !bag.MultiItemLikely {
		t.Error("MultiItemLikely = false, want true via generic-container heuristic")
	}
}

func TestExtract_BelowMinimumLengthReturnsZeroBag(t *testing.T) {
	bag := Extract("<div></div>", th) // 11 chars, below the 20-char floor

	if bag.MultiItemLikely {
		t.Error("MultiItemLikely = true, want false for tiny input")
	}
	if bag.RepeatedContainerNames != nil || bag.DistinctHeadings != nil ||
		bag.SemanticCTAs != nil || bag.ActionButtonCount != 0 {
		t.Errorf("expected zero-valued bag, got %+v", bag)
	}
}

func TestExtract_MinimumLengthCountsCharacters(t *testing.T) {
	// 19 characters but 31 bytes: the floor is measured in characters, so
	// this still falls below it.
	markup := "<p>" + strings.Repeat("ā", 12) + "</p>"

	bag := Extract(markup, th)

	if bag.MultiItemLikely || bag.RepeatedContainerNames != nil {
		t.Errorf("expected zero-valued bag for 19-character input, got %+v", bag)
	}
}

func TestExtract_SingleBlockNotMultiItem(t *testing.T) {
	markup := `<div data-name="Intro"><h1>Welcome</h1><p>` +
		strings.Repeat("body copy ", 30) + `</p></div>`

	bag := Extract(markup, th)

	if bag.MultiItemLikely {
		t.Errorf("MultiItemLikely = true, want false (bag: %+v)", bag)
	}
}

func TestMatchContainerName_RuleOrder(t *testing.T) {
	// "carditem" matches both the card and item patterns; the table order
	// makes card win.
	rule, ok := matchContainerName("carditem")
	if !ok || rule.Name != "card" {
		t.Errorf("matchContainerName(carditem) = %v/%v, want card rule", rule.Name, ok)
	}
	if _, ok := matchContainerName("hero"); ok {
		t.Error("hero should not match the repeating-container vocabulary")
	}
}
