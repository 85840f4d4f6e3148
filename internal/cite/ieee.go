// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strconv"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// ieeeName renders one author as "I. Family".
func ieeeName(n types.CitationName) string {
	inits := initials(n.Given)
	switch {
	case inits == "":
		return n.Family
	case n.Family == "":
		return inits
	default:
		return inits + " " + n.Family
	}
}

// ieeeAuthorList joins authors IEEE style: comma-separated with ", and"
// before the last.
func ieeeAuthorList(names []types.CitationName) string {
	rendered := make([]string, len(names))
	for i, n := range names {
		rendered[i] = ieeeName(n)
	}
	if len(rendered) <= 1 {
		return strings.Join(rendered, "")
	}
	return strings.Join(rendered[:len(rendered)-1], ", ") + ", and " + rendered[len(rendered)-1]
}

// formatIEEE renders the IEEE grammar. The reference is one comma-chained
// clause: authors, quoted title with the comma inside the quotes, then the
// container metadata, e.g.
//
//	A. Lovelace, "On Machines," Annals of Computing, vol. 1, no. 2, pp. 10-20, 1843, doi: 10.1/ex.
func formatIEEE(in types.CitationInput, opts types.CitationFormatOptions, warns warningSet) string {
	d, hasDate := requireAuthorsTitleDate(in, warns)
	months := abbrevMonths(opts)
	year := ""
	if hasDate {
		year = strconv.Itoa(d.year)
	}

	switch in.SourceType {
	case types.SourceJournal:
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		link := ""
		if in.DOI != "" {
			link = "doi: " + in.DOI
		} else if in.URL != "" {
			link = in.URL
		} else {
			warns.add(types.WarnMissingURL)
		}
		tail := joinComma(in.ContainerTitle,
			numberGroup("vol. ", in.Volume),
			numberGroup("no. ", in.Issue),
			numberGroup("pp. ", in.Pages),
			year, link)
		return joinSegments([]string{ieeeClause(in.Authors, in.Title, true, tail)})
	case types.SourceBook:
		if in.Publisher == "" {
			warns.add(types.WarnMissingPublisher)
		}
		segs := []string{
			ieeeClause(in.Authors, in.Title, false, ""),
			joinComma(in.Publisher, year),
		}
		if link := pickLink(in); link != "" {
			segs = append(segs, opts.LabelAvailable+": "+link)
		}
		return joinSegments(segs)
	case types.SourceWebsite:
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		date := ""
		if hasDate {
			date = formatDayMonthYear(d, months)
		}
		segs := []string{
			ieeeClause(in.Authors, in.Title, true, joinComma(in.ContainerTitle, date)),
			"[" + opts.LabelOnline + "]",
		}
		if link := pickLink(in); link != "" {
			segs = append(segs, opts.LabelAvailable+": "+link)
		} else {
			warns.add(types.WarnMissingURL)
		}
		if ad, ok := parseDateParts(in.AccessDate); ok {
			segs = append(segs, "["+opts.LabelAccessed+" "+formatDayMonthYear(ad, months)+"]")
		}
		return joinSegments(segs)
	}
	return ""
}

// ieeeClause chains authors, a title, and trailing metadata into one
// comma-separated clause. A quoted title carries its comma inside the
// closing quote; an unquoted (book) title joins like any other piece.
func ieeeClause(names []types.CitationName, title string, quoteTitle bool, tail string) string {
	authors := ieeeAuthorList(names)

	if title == "" || !quoteTitle {
		return joinComma(authors, title, tail)
	}

	head := authors
	t := `"` + title + `,"`
	if head != "" {
		head += ", " + t
	} else {
		head = t
	}
	if tail != "" {
		return head + " " + tail
	}
	// Nothing after the title: close the quote with a period instead.
	return strings.TrimSuffix(head, `,"`) + `."`
}
