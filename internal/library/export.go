// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"io"
	"regexp"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that exports are consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	Accessed       *CSLDate  `yaml:"accessed,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// ExportCSL writes the records as a CSL-YAML list to w.
func ExportCSL(w io.Writer, records []Record) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// cslTypes maps source types onto CSL item types.
var cslTypes = map[types.CitationSourceType]string{
	types.SourceJournal: "article-journal",
	types.SourceBook:    "book",
	types.SourceWebsite: "webpage",
}

func toCSLItem(r Record) CSLItem {
	in := r.Input
	itemType := cslTypes[in.SourceType]
	if itemType == "" {
		itemType = "document"
	}

	item := CSLItem{
		ID:             r.ID,
		Type:           itemType,
		Title:          in.Title,
		ContainerTitle: in.ContainerTitle,
		Publisher:      in.Publisher,
		Volume:         in.Volume,
		Issue:          in.Issue,
		Page:           in.Pages,
		Issued:         toCSLDate(in.PublishedDate),
		Accessed:       toCSLDate(in.AccessDate),
		URL:            in.URL,
		DOI:            in.DOI,
	}
	for _, a := range in.Authors {
		item.Author = append(item.Author, CSLName{Family: a.Family, Given: a.Given})
	}
	return item
}

var cslDateRe = regexp.MustCompile(`^\s*(\d{4})(?:-(\d{1,2})(?:-(\d{1,2}))?)?\s*$`)

// toCSLDate converts a YYYY[-MM[-DD]] string to CSL date-parts. Dates that
// do not match the shape are omitted from the export.
func toCSLDate(date string) *CSLDate {
	m := cslDateRe.FindStringSubmatch(date)
	if m == nil {
		return nil
	}
	parts := []int{}
	for _, g := range m[1:] {
		if g == "" {
			break
		}
		n, _ := strconv.Atoi(g)
		parts = append(parts, n)
	}
	return &CSLDate{DateParts: [][]int{parts}}
}
