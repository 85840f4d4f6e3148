// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"testing"

	"github.com/pdiddy/citation-engine/pkg/types"
)

func TestCleanCitation(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantText   string
		wantMarker string
	}{
		{
			name:     "curly quotes normalized",
			raw:      "“Hello” and ‘world’",
			wantText: `"Hello" and 'world'`,
		},
		{
			name:     "whitespace collapsed",
			raw:      "  a \t b \n c  ",
			wantText: "a b c",
		},
		{
			name:       "bracketed index stripped and kept",
			raw:        "[1] J. Smith",
			wantText:   "J. Smith",
			wantMarker: "[1]",
		},
		{
			name:       "parenthesized digit",
			raw:        "(3) Entry",
			wantText:   "Entry",
			wantMarker: "(3)",
		},
		{
			name:       "dotted ordinal",
			raw:        "2. Entry",
			wantText:   "Entry",
			wantMarker: "2.",
		},
		{
			name:       "fullwidth brackets",
			raw:        "（1）Entry",
			wantText:   "Entry",
			wantMarker: "（1）",
		},
		{
			name:       "circled digit",
			raw:        "① Entry",
			wantText:   "Entry",
			wantMarker: "①",
		},
		{
			name:       "cjk ordinal word",
			raw:        "一、Entry",
			wantText:   "Entry",
			wantMarker: "一、",
		},
		{
			name:     "empty",
			raw:      "   ",
			wantText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cleanCitation(tt.raw)
			if c.text != tt.wantText || c.marker != tt.wantMarker {
				t.Errorf("cleanCitation(%q) = {%q, %q}, want {%q, %q}",
					tt.raw, c.text, c.marker, tt.wantText, tt.wantMarker)
			}
		})
	}
}

func TestDetectStyleEmpty(t *testing.T) {
	det := DetectStyle("")
	if det.Style != types.StyleUnknown || det.Confidence != 0 {
		t.Errorf("DetectStyle(\"\") = %+v, want unknown/0", det)
	}
}

func TestDetectStyleGBTMarkerDominates(t *testing.T) {
	for _, text := range []string{
		"Zhang S. A Study[EB/OL]. Site, 2020. https://example.com.",
		"Anything at all [EB/OL] even nonsense",
	} {
		det := DetectStyle(text)
		if det.Style != types.StyleGBT7714 {
			t.Errorf("DetectStyle(%q) = %+v, want gbt7714", text, det)
		}
	}
}

func TestDetectStyleTable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want types.CitationStyle
	}{
		{
			name: "ieee numbered journal entry",
			raw:  `[1] J. Smith, "A Study," IEEE Trans., vol. 5, no. 2, pp. 1-9, 2020.`,
			want: types.StyleIEEE,
		},
		{
			name: "ieee online marker",
			raw:  `[2] A. Jones, "Page," Site. [Online]. Available: https://example.com`,
			want: types.StyleIEEE,
		},
		{
			name: "apa year parenthesis",
			raw:  "Smith, J. (2020). A study of things. Journal of Studies, 12(3), 45-67.",
			want: types.StyleAPA7,
		},
		{
			name: "apa retrieved from",
			raw:  "Smith, J. (2020). Page title. Site. Retrieved from https://example.com",
			want: types.StyleAPA7,
		},
		{
			name: "mla day-first abbreviated date",
			raw:  `Smith, Jane. "Page Title." Site, 5 Mar. 2020, example.com. Accessed 1 Apr. 2020.`,
			want: types.StyleMLA9,
		},
		{
			name: "chicago month-first full date",
			raw:  `Smith, Jane. "Page Title." Site. Accessed March 5, 2020. https://example.com.`,
			want: types.StyleChicago,
		},
		{
			name: "gbt journal marker",
			raw:  "Zhang S, Li W. A method[J]. Journal of Computing, 2020, 12(3): 45-67.",
			want: types.StyleGBT7714,
		},
		{
			name: "plain prose is unknown",
			raw:  "This is just a sentence about nothing in particular",
			want: types.StyleUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := DetectStyle(tt.raw)
			if det.Style != tt.want {
				t.Errorf("DetectStyle(%q) = %+v, want %s", tt.raw, det, tt.want)
			}
			if det.Confidence < 0 || det.Confidence > 1 {
				t.Errorf("confidence %v out of [0,1]", det.Confidence)
			}
		})
	}
}

func TestDetectStyleConfidenceSeparation(t *testing.T) {
	// GB/T marker alone: gbt scores 0.9, runner-up 0, confidence 1.
	det := DetectStyle("Title only[J]. Venue, 2020.")
	if det.Style != types.StyleGBT7714 {
		t.Fatalf("style = %s", det.Style)
	}
	if det.Confidence != 1 {
		t.Errorf("confidence = %v, want 1 (no runner-up evidence)", det.Confidence)
	}

	// "Accessed" alone scores MLA and Chicago 0.15 each: below the
	// unknown threshold, so the result is unknown with that score.
	det = DetectStyle("Some page. Accessed recently.")
	if det.Style != types.StyleUnknown {
		t.Errorf("style = %s, want unknown", det.Style)
	}
	if det.Confidence != 0.15 {
		t.Errorf("confidence = %v, want 0.15 (clamped top score)", det.Confidence)
	}
}

func TestDetectStyleOwnOutput(t *testing.T) {
	// Detection should recognize the engine's own output for styles whose
	// key features survive formatting.
	cases := []struct {
		style types.CitationStyle
		st    types.CitationSourceType
	}{
		{types.StyleAPA7, types.SourceJournal},
		{types.StyleIEEE, types.SourceJournal},
		{types.StyleGBT7714, types.SourceJournal},
		{types.StyleGBT7714, types.SourceBook},
		{types.StyleGBT7714, types.SourceWebsite},
		{types.StyleMLA9, types.SourceWebsite},
		{types.StyleChicago, types.SourceWebsite},
	}
	for _, tc := range cases {
		res := FormatCitation(fullInput(tc.style, tc.st), testOptions())
		det := DetectStyle(res.Citation)
		if det.Style != tc.style {
			t.Errorf("%s/%s: detected %s (%.2f) from %q",
				tc.style, tc.st, det.Style, det.Confidence, res.Citation)
		}
	}
}

func TestDetectStyleUpperDOIBonus(t *testing.T) {
	// Lowercase "doi:" must not feed the GB/T uppercase-DOI feature.
	if gbtUpperDOIRe.MatchString("doi: 10.1/x") {
		t.Error("lowercase doi matched the uppercase DOI pattern")
	}
	if !gbtUpperDOIRe.MatchString("DOI: 10.1/x") {
		t.Error("uppercase DOI should match")
	}
}
