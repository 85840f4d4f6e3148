// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// dateParts is a partially specified date. Month and day are 0 when absent.
type dateParts struct {
	year  int
	month int
	day   int
}

// isoDateRe matches the three accepted shapes: YYYY, YYYY-MM, YYYY-MM-DD.
var isoDateRe = regexp.MustCompile(`^\s*(\d{4})(?:-(\d{1,2})(?:-(\d{1,2}))?)?\s*$`)

// parseDateParts parses an ISO-ish date string. Months outside 1-12 or days
// outside 1-31 reject the whole string. Calendar validity is not checked
// (Feb 30 passes): the engine formats dates, it does not validate them.
// The second return value is false when the string carries no usable date.
func parseDateParts(raw string) (dateParts, bool) {
	m := isoDateRe.FindStringSubmatch(raw)
	if m == nil {
		return dateParts{}, false
	}

	d := dateParts{}
	d.year, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		d.month, _ = strconv.Atoi(m[2])
		if d.month < 1 || d.month > 12 {
			return dateParts{}, false
		}
	}
	if m[3] != "" {
		d.day, _ = strconv.Atoi(m[3])
		if d.day < 1 || d.day > 31 {
			return dateParts{}, false
		}
	}
	return d, true
}

// monthName looks up a month name table (index 0 = January). A short or
// missing table degrades to the zero-padded numeric month.
func monthName(months []string, month int) string {
	if month >= 1 && month <= len(months) && months[month-1] != "" {
		return months[month-1]
	}
	return fmt.Sprintf("%02d", month)
}

// formatDayMonthYear renders "5 March 2020", degrading to "March 2020" or
// "2020" when parts are absent. MLA's renderer.
func formatDayMonthYear(d dateParts, months []string) string {
	switch {
	case d.month == 0:
		return strconv.Itoa(d.year)
	case d.day == 0:
		return fmt.Sprintf("%s %d", monthName(months, d.month), d.year)
	default:
		return fmt.Sprintf("%d %s %d", d.day, monthName(months, d.month), d.year)
	}
}

// formatMonthDayYear renders "March 5, 2020", degrading to "March 2020" or
// "2020". Chicago's renderer, also used for APA long dates.
func formatMonthDayYear(d dateParts, months []string) string {
	switch {
	case d.month == 0:
		return strconv.Itoa(d.year)
	case d.day == 0:
		return fmt.Sprintf("%s %d", monthName(months, d.month), d.year)
	default:
		return fmt.Sprintf("%s %d, %d", monthName(months, d.month), d.day, d.year)
	}
}

// formatNumericDate renders "2020-03-05", degrading to "2020-03" or "2020".
// GB/T 7714's renderer.
func formatNumericDate(d dateParts) string {
	switch {
	case d.month == 0:
		return strconv.Itoa(d.year)
	case d.day == 0:
		return fmt.Sprintf("%d-%02d", d.year, d.month)
	default:
		return fmt.Sprintf("%d-%02d-%02d", d.year, d.month, d.day)
	}
}

// abbrevMonths builds a short-month table with MLA-style trailing periods.
// A period is added only when the short name actually abbreviates the long
// one ("Mar." but "May"). Falls back to the long table when no short table
// is supplied.
func abbrevMonths(opts types.CitationFormatOptions) []string {
	if len(opts.MonthsShort) == 0 {
		return opts.MonthsLong
	}
	out := make([]string, len(opts.MonthsShort))
	for i, short := range opts.MonthsShort {
		long := ""
		if i < len(opts.MonthsLong) {
			long = opts.MonthsLong[i]
		}
		if short != "" && short != long {
			out[i] = short + "."
		} else {
			out[i] = short
		}
	}
	return out
}
