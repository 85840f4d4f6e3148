// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite renders structured bibliographic records into citation
// strings across five styles (APA 7, MLA 9, Chicago, IEEE, GB/T 7714) and
// reverses the operation: detecting the style of freeform citation text and
// extracting structured fields back out.
//
// Every function in this package is pure and total: no I/O, no shared
// state, no panics for any input. Malformed input degrades to absent
// fields or warnings, never errors.
package cite

import (
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// authorSeparators split a raw author block into per-person chunks.
// Newlines, ASCII semicolons, and full-width semicolons all count.
var authorSeparators = strings.NewReplacer(";", "\n", "；", "\n")

// ParseAuthors splits a freeform author string into structured names.
// Chunks are separated by newlines or semicolons. A chunk containing a
// comma is read as "Family, Given"; otherwise the last whitespace-separated
// token is the family name and the rest is the given name. Order is
// preserved and duplicates are kept.
func ParseAuthors(raw string) []types.CitationName {
	var names []types.CitationName
	for _, chunk := range strings.Split(authorSeparators.Replace(raw), "\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		var name types.CitationName
		if idx := strings.Index(chunk, ","); idx >= 0 {
			name.Family = strings.TrimSpace(chunk[:idx])
			name.Given = strings.TrimSpace(chunk[idx+1:])
		} else {
			fields := strings.Fields(chunk)
			if len(fields) > 0 {
				name.Family = fields[len(fields)-1]
				name.Given = strings.Join(fields[:len(fields)-1], " ")
			}
		}

		if name.Family == "" && name.Given == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// initials reduces a given name to period-terminated initials: "Ada Maria"
// becomes "A. M.". Segments split on spaces and hyphens. Used by the APA
// and IEEE grammars; MLA and Chicago print given names in full.
func initials(given string) string {
	segs := splitNameSegments(given)
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		parts = append(parts, strings.ToUpper(string([]rune(seg)[0]))+".")
	}
	return strings.Join(parts, " ")
}

// bareInitials reduces a given name to concatenated initials with no
// punctuation: "Ada Maria" becomes "AM". Used by the GB/T 7714 grammar.
func bareInitials(given string) string {
	var b strings.Builder
	for _, seg := range splitNameSegments(given) {
		b.WriteString(strings.ToUpper(string([]rune(seg)[0])))
	}
	return b.String()
}

// splitNameSegments splits a given name on spaces and hyphens, dropping
// empty segments.
func splitNameSegments(given string) []string {
	var segs []string
	for _, seg := range strings.FieldsFunc(given, func(r rune) bool {
		return r == ' ' || r == '-' || r == '\t'
	}) {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}
