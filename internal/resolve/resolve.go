// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve fetches bibliographic metadata for a DOI from the doi.org
// content negotiation service and converts it to a citation input.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/citation-engine/internal/cite"
	"github.com/pdiddy/citation-engine/internal/httputil"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// doiAPIBase is the DOI resolver endpoint. Declared as a var so tests can
// substitute an httptest server.
var doiAPIBase = "https://doi.org/"

const cslJSONMediaType = "application/vnd.citationstyles.csl+json"

// cslResponse captures the fields we need from a CSL-JSON record.
type cslResponse struct {
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	ContainerTitle string    `json:"container-title"`
	Publisher      string    `json:"publisher"`
	Volume         string    `json:"volume"`
	Issue          string    `json:"issue"`
	Page           string    `json:"page"`
	URL            string    `json:"URL"`
	DOI            string    `json:"DOI"`
	Author         []cslName `json:"author"`
	Issued         cslDate   `json:"issued"`
}

type cslName struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type cslDate struct {
	DateParts [][]int `json:"date-parts"`
}

// sourceTypes maps CSL item types onto the engine's source types. Types not
// listed here resolve to website.
var sourceTypes = map[string]types.CitationSourceType{
	"article-journal": types.SourceJournal,
	"journal-article": types.SourceJournal,
	"book":            types.SourceBook,
	"monograph":       types.SourceBook,
}

// Resolve fetches CSL-JSON metadata for a DOI and returns it as a citation
// input. The DOI may carry a "doi:" prefix or a doi.org URL.
func Resolve(ctx context.Context, cfg types.ResolveConfig, doi string) (types.CitationInput, error) {
	doi = cite.NormalizeDOI(doi)
	if doi == "" {
		return types.CitationInput{}, fmt.Errorf("empty DOI")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, doiAPIBase+doi, nil)
	if err != nil {
		return types.CitationInput{}, fmt.Errorf("creating DOI request: %w", err)
	}
	req.Header.Set("Accept", cslJSONMediaType)
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return types.CitationInput{}, fmt.Errorf("DOI request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return types.CitationInput{}, fmt.Errorf("DOI %q not found", doi)
	case resp.StatusCode != http.StatusOK:
		return types.CitationInput{}, fmt.Errorf("DOI resolver returned HTTP %d", resp.StatusCode)
	}

	var rec cslResponse
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return types.CitationInput{}, fmt.Errorf("parsing CSL-JSON response: %w", err)
	}
	return toInput(doi, rec), nil
}

func toInput(doi string, rec cslResponse) types.CitationInput {
	sourceType := sourceTypes[rec.Type]
	if sourceType == "" {
		sourceType = types.SourceWebsite
	}

	in := types.CitationInput{
		SourceType:     sourceType,
		Title:          rec.Title,
		ContainerTitle: rec.ContainerTitle,
		Publisher:      rec.Publisher,
		Volume:         rec.Volume,
		Issue:          rec.Issue,
		Pages:          rec.Page,
		URL:            rec.URL,
		DOI:            doi,
		PublishedDate:  dateString(rec.Issued),
	}
	if rec.DOI != "" {
		in.DOI = cite.NormalizeDOI(rec.DOI)
	}
	for _, a := range rec.Author {
		if a.Given == "" && a.Family == "" {
			continue
		}
		in.Authors = append(in.Authors, types.CitationName{Given: a.Given, Family: a.Family})
	}
	return in
}

// dateString renders CSL date-parts as YYYY[-MM[-DD]].
func dateString(d cslDate) string {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return ""
	}
	parts := d.DateParts[0]
	s := fmt.Sprintf("%04d", parts[0])
	if len(parts) > 1 {
		s += fmt.Sprintf("-%02d", parts[1])
	}
	if len(parts) > 2 {
		s += fmt.Sprintf("-%02d", parts[2])
	}
	return s
}
