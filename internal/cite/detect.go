// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// unknownThreshold is the score floor below which detection reports
// "unknown". The weights and this threshold are fixed contract values
// pinned by tests; they are not tuned.
const unknownThreshold = 0.35

// cleanedCitation is citation text after normalization, with any leading
// enumeration marker split off. IEEE scoring needs the marker: "[1] " is
// evidence, not noise.
type cleanedCitation struct {
	text   string
	marker string
}

var (
	quoteReplacer = strings.NewReplacer(
		"“", `"`, "”", `"`, // curly double quotes
		"‘", "'", "’", "'", // curly single quotes / apostrophes
	)

	// enumMarkerRe matches a single leading list/enumeration marker:
	// [1], (1), full-width brackets, "1." / "1)" / "1、", circled digits,
	// and CJK ordinal words followed by an ideographic comma.
	enumMarkerRe = regexp.MustCompile(`^(\[\d+\]|\(\d+\)|（\d+）|【\d+】|\d+[.)、]|[①②③④⑤⑥⑦⑧⑨]|[一二三四五六七八九十]+、)\s*`)
)

// cleanCitation normalizes freeform citation text: curly quotes become
// straight, whitespace runs collapse to single spaces, and one leading
// enumeration marker is stripped (but kept for scoring).
func cleanCitation(raw string) cleanedCitation {
	s := quoteReplacer.Replace(raw)
	s = strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))

	c := cleanedCitation{text: s}
	if m := enumMarkerRe.FindStringSubmatch(s); m != nil {
		c.marker = m[1]
		c.text = strings.TrimSpace(s[len(m[0]):])
	}
	return c
}

// Detector feature patterns. Each is an independent predicate contributing
// a fixed weight to one style's score.
var (
	gbtTypeMarkerRe = regexp.MustCompile(`\[(?:J|M|EB/OL)\]`)
	gbtUpperDOIRe   = regexp.MustCompile(`DOI:`)

	ieeeIndexRe  = regexp.MustCompile(`^\[\d+\]$`)
	ieeeOnlineRe = regexp.MustCompile(`(?i)\[online\]`)
	volTokenRe   = regexp.MustCompile(`\bvol\.`)
	noTokenRe    = regexp.MustCompile(`\bno\.`)
	ppTokenRe    = regexp.MustCompile(`\bpp\.`)
	doiAnyRe     = regexp.MustCompile(`(?i)\bdoi:\s*10\.|doi\.org/10\.`)

	apaYearParenRe  = regexp.MustCompile(`\(\d{4}[a-z]?\)`)
	apaInvertedRe   = regexp.MustCompile(`[A-Z][A-Za-z'-]+,\s*[A-Z]\.`)
	retrievedFromRe = regexp.MustCompile(`(?i)retrieved from`)
	doiOrgURLRe     = regexp.MustCompile(`doi\.org/10\.`)

	accessedWordRe = regexp.MustCompile(`(?i)\baccessed\b`)
	dayMonthYearRe = regexp.MustCompile(`\b\d{1,2}\s+[A-Z][a-z]{2,8}\.?\s+\d{4}\b`)
	monthDayYearRe = regexp.MustCompile(`\b[A-Z][a-z]{2,8}\.?\s+\d{1,2},\s+\d{4}\b`)
)

// styleFeature is one weighted predicate in the scoring table.
type styleFeature struct {
	style  types.CitationStyle
	weight float64
	match  func(c cleanedCitation) bool
}

// reFeature builds a predicate matching a pattern against the cleaned text.
func reFeature(re *regexp.Regexp) func(cleanedCitation) bool {
	return func(c cleanedCitation) bool { return re.MatchString(c.text) }
}

// detectorFeatures is the flat scoring table: independent evidence summed
// per style, not a decision tree.
var detectorFeatures = []styleFeature{
	{types.StyleGBT7714, 0.9, reFeature(gbtTypeMarkerRe)},
	{types.StyleGBT7714, 0.15, reFeature(gbtUpperDOIRe)},

	{types.StyleIEEE, 0.6, func(c cleanedCitation) bool { return ieeeIndexRe.MatchString(c.marker) }},
	{types.StyleIEEE, 0.2, reFeature(ieeeOnlineRe)},
	{types.StyleIEEE, 0.15, reFeature(volTokenRe)},
	{types.StyleIEEE, 0.1, reFeature(noTokenRe)},
	{types.StyleIEEE, 0.1, reFeature(ppTokenRe)},
	{types.StyleIEEE, 0.15, reFeature(doiAnyRe)},

	{types.StyleAPA7, 0.55, reFeature(apaYearParenRe)},
	{types.StyleAPA7, 0.15, func(c cleanedCitation) bool {
		return strings.Contains(c.text, "&") && apaInvertedRe.MatchString(c.text)
	}},
	{types.StyleAPA7, 0.15, reFeature(retrievedFromRe)},
	{types.StyleAPA7, 0.1, reFeature(doiOrgURLRe)},

	{types.StyleMLA9, 0.15, reFeature(accessedWordRe)},
	{types.StyleMLA9, 0.45, reFeature(dayMonthYearRe)},

	{types.StyleChicago, 0.15, reFeature(accessedWordRe)},
	{types.StyleChicago, 0.45, reFeature(monthDayYearRe)},
}

// DetectStyle guesses which citation style produced the given freeform
// text. Confidence reflects how far the winner's evidence exceeds the
// runner-up's; a top score at or below the unknown threshold yields
// {unknown, top score}.
func DetectStyle(raw string) types.CitationStyleDetection {
	c := cleanCitation(raw)
	if c.text == "" {
		return types.CitationStyleDetection{Style: types.StyleUnknown, Confidence: 0}
	}

	scores := make(map[types.CitationStyle]float64, len(types.Styles))
	for _, f := range detectorFeatures {
		if f.match(c) {
			scores[f.style] += f.weight
		}
	}

	// Rank in canonical style order so ties resolve deterministically.
	var top, second float64
	best := types.StyleUnknown
	for _, style := range types.Styles {
		s := scores[style]
		if s > top {
			second = top
			top = s
			best = style
		} else if s > second {
			second = s
		}
	}

	if top <= unknownThreshold {
		return types.CitationStyleDetection{Style: types.StyleUnknown, Confidence: clamp01(top)}
	}

	denom := top
	if denom < unknownThreshold {
		denom = unknownThreshold
	}
	return types.CitationStyleDetection{Style: best, Confidence: clamp01((top - second) / denom)}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
