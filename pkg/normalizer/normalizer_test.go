package normalizer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("failed to parse markup: %v", err)
	}
	return doc
}

func TestNormalize_StripsPresentationNoise(t *testing.T) {
	in := `<div class="flex flex-col gap-4 p-6" style="background:#fff" data-name="Hero">` +
		`<style>.x{color:red}</style>` +
		`<h2 class="text-4xl font-bold">Welcome</h2>` +
		`<p class="text-base" style="color:#333">Some body copy.</p>` +
		`</div>`

	out := Normalize(in)

	if strings.Contains(out, "class=") {
		t.Errorf("class attributes not stripped: %s", out)
	}
	if strings.Contains(out, "style=") || strings.Contains(out, "<style>") {
		t.Errorf("style declarations not stripped: %s", out)
	}
	doc := parse(t, out)
	if doc.Find("h2").Text() != "Welcome" {
		t.Errorf("heading text lost during normalization: %s", out)
	}
	if got, _ := doc.Find("div").First().Attr("data-name"); got != "Hero" {
		t.Errorf("data-name attribute lost, got %q", got)
	}
}

func TestNormalize_CollapsesUnnamedWrappers(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantDivs int // total div elements left after collapsing
	}{
		{
			name:     "single layout wrapper",
			in:       `<div><div data-name="Card"><h3>Hi</h3></div></div>`,
			wantDivs: 1,
		},
		{
			name:     "three nested layout wrappers",
			in:       `<div><div><div><div data-name="Card"><h3>Hi</h3></div></div></div></div>`,
			wantDivs: 1,
		},
		{
			name:     "wrapper with own text is kept",
			in:       `<div>intro text<div data-name="Card"><h3>Hi</h3></div></div>`,
			wantDivs: 2,
		},
		{
			name:     "wrapper with two children is kept",
			in:       `<div><div data-name="Card"><h3>A</h3></div><div data-name="Card"><h3>B</h3></div></div>`,
			wantDivs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(tt.in)
			doc := parse(t, out)
			if got := doc.Find("div").Length(); got != tt.wantDivs {
				t.Errorf("div count = %d, want %d (output: %s)", got, tt.wantDivs, out)
			}
		})
	}
}

func TestNormalize_FlattensIconSubtrees(t *testing.T) {
	in := `<div data-name="Icon Wrapper"><div><span><img src="star.png" alt="star"/></span></div></div>`

	out := Normalize(in)
	doc := parse(t, out)

	wrapper := doc.Find(`[data-name="Icon Wrapper"]`)
	if wrapper.Length() != 1 {
		t.Fatalf("icon wrapper missing from output: %s", out)
	}
	if wrapper.Children().Length() != 1 {
		t.Errorf("icon wrapper children = %d, want 1 (output: %s)", wrapper.Children().Length(), out)
	}
	if wrapper.Children().First().Is("img") != true {
		t.Errorf("icon wrapper child is not the image leaf: %s", out)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`<div class="p-4"><div><div data-name="Card"><h3 class="text-lg">Hi</h3></div></div></div>`,
		`<div data-name="Icon"><div><img src="a.png" alt=""/></div></div>`,
		`<div data-name="Hero"><h1>Big</h1><p>Copy</p></div>`,
		`plain text, no markup at all`,
		``,
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q:\n first: %q\nsecond: %q", in, once, twice)
		}
	}
}

func TestNormalize_NoMatchReturnsInputUnchanged(t *testing.T) {
	inputs := []string{
		`plain text`,
		`<div data-name="Card"><h3>Hi</h3></div>`,
	}
	for _, in := range inputs {
		if out := Normalize(in); out != in {
			t.Errorf("Normalize(%q) = %q, want input unchanged", in, out)
		}
	}
}
