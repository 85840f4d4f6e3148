// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types shared across the citation engine,
// the library store, and the CLI. All types here are plain values: they are
// constructed per call, never mutated in place, and safe to copy.
package types

// CitationStyle identifies one of the supported citation styles.
type CitationStyle string

const (
	StyleAPA7    CitationStyle = "apa7"
	StyleMLA9    CitationStyle = "mla9"
	StyleChicago CitationStyle = "chicago"
	StyleIEEE    CitationStyle = "ieee"
	StyleGBT7714 CitationStyle = "gbt7714"

	// StyleUnknown is returned by detection when no style accumulates
	// enough evidence. It is never a valid formatting input.
	StyleUnknown CitationStyle = "unknown"
)

// Styles lists the formattable styles in canonical order. Detection ranks
// candidates in this order, so ties resolve deterministically.
var Styles = []CitationStyle{StyleAPA7, StyleMLA9, StyleChicago, StyleIEEE, StyleGBT7714}

// CitationSourceType identifies the category of the cited work, which
// selects the grammar branch inside each style.
type CitationSourceType string

const (
	SourceWebsite CitationSourceType = "website"
	SourceJournal CitationSourceType = "journal"
	SourceBook    CitationSourceType = "book"
)

// CitationName is one author or creator. Either part may be empty.
type CitationName struct {
	Given  string `json:"given,omitempty" yaml:"given,omitempty"`
	Family string `json:"family,omitempty" yaml:"family,omitempty"`
}

// CitationInput is the complete structured record handed to the formatter.
// Scalar fields are raw, un-trimmed strings; the engine owns all
// normalization. Author order is citation order and is preserved.
type CitationInput struct {
	Style      CitationStyle      `json:"style" yaml:"style"`
	SourceType CitationSourceType `json:"source_type" yaml:"source_type"`

	Authors []CitationName `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Title is the title of the cited work itself.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// ContainerTitle is the journal name or website name.
	ContainerTitle string `json:"container_title,omitempty" yaml:"container_title,omitempty"`

	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// PublishedDate and AccessDate are ISO-ish strings: YYYY, YYYY-MM, or
	// YYYY-MM-DD. Any other shape is treated as no date.
	PublishedDate string `json:"published_date,omitempty" yaml:"published_date,omitempty"`
	AccessDate    string `json:"access_date,omitempty" yaml:"access_date,omitempty"`

	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue  string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages  string `json:"pages,omitempty" yaml:"pages,omitempty"`

	URL string `json:"url,omitempty" yaml:"url,omitempty"`
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// CitationFormatOptions carries the locale-dependent constants used while
// rendering. The engine never embeds locale text; callers supply it (see
// internal/locale for the built-in English set).
type CitationFormatOptions struct {
	// MonthsLong and MonthsShort are month-name tables, index 0 = January.
	// A table with fewer than 12 entries degrades to numeric months.
	MonthsLong  []string `json:"months_long" yaml:"months_long"`
	MonthsShort []string `json:"months_short" yaml:"months_short"`

	// LabelAccessed introduces an access-date clause (e.g. "Accessed").
	LabelAccessed string `json:"label_accessed" yaml:"label_accessed"`

	// LabelRetrievedFrom introduces a retrieval URL (e.g. "Retrieved from").
	LabelRetrievedFrom string `json:"label_retrieved_from" yaml:"label_retrieved_from"`

	// LabelOnline marks an online source (e.g. "Online").
	LabelOnline string `json:"label_online" yaml:"label_online"`

	// LabelAvailable introduces an availability URL (e.g. "Available").
	LabelAvailable string `json:"label_available" yaml:"label_available"`
}

// CitationWarningCode flags a recommended field that was missing during
// formatting. Warnings are advisory: the citation is still produced.
type CitationWarningCode string

const (
	WarnMissingTitle     CitationWarningCode = "missing_title"
	WarnMissingAuthors   CitationWarningCode = "missing_authors"
	WarnMissingContainer CitationWarningCode = "missing_container"
	WarnMissingPublisher CitationWarningCode = "missing_publisher"
	WarnMissingURL       CitationWarningCode = "missing_url"
	WarnMissingDate      CitationWarningCode = "missing_date"
)

// CitationFormatResult is the output of formatting: the rendered citation
// plus the set of warnings triggered. Warnings carry no duplicates and no
// meaningful order.
type CitationFormatResult struct {
	Citation string                `json:"citation" yaml:"citation"`
	Warnings []CitationWarningCode `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// CitationStyleDetection is the result of style detection. Confidence
// measures how far the top style's evidence exceeds the runner-up's, not
// absolute certainty; it is always in [0, 1].
type CitationStyleDetection struct {
	Style      CitationStyle `json:"style" yaml:"style"`
	Confidence float64       `json:"confidence" yaml:"confidence"`
}

// ParsedCitationFields is the output of reverse-parsing freeform citation
// text. Every field is best-effort: an empty string means the pattern for
// that field did not match, never that parsing failed.
type ParsedCitationFields struct {
	Style      CitationStyle `json:"style" yaml:"style"`
	Confidence float64       `json:"confidence" yaml:"confidence"`

	// SourceType is set only when a type marker or journal token was found.
	SourceType CitationSourceType `json:"source_type,omitempty" yaml:"source_type,omitempty"`

	Authors        []CitationName `json:"authors,omitempty" yaml:"authors,omitempty"`
	Title          string         `json:"title,omitempty" yaml:"title,omitempty"`
	ContainerTitle string         `json:"container_title,omitempty" yaml:"container_title,omitempty"`
	Publisher      string         `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	PublishedDate  string         `json:"published_date,omitempty" yaml:"published_date,omitempty"`
	AccessDate     string         `json:"access_date,omitempty" yaml:"access_date,omitempty"`
	Volume         string         `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue          string         `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages          string         `json:"pages,omitempty" yaml:"pages,omitempty"`
	URL            string         `json:"url,omitempty" yaml:"url,omitempty"`
	DOI            string         `json:"doi,omitempty" yaml:"doi,omitempty"`
}
