// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locale supplies CitationFormatOptions to the CLI layer. The
// citation engine itself never embeds locale text: month names and label
// strings come from here (built-in English) or from a YAML locale file.
package locale

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// English returns the built-in English formatting options.
func English() types.CitationFormatOptions {
	return types.CitationFormatOptions{
		MonthsLong: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsShort: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		LabelAccessed:      "Accessed",
		LabelRetrievedFrom: "Retrieved from",
		LabelOnline:        "Online",
		LabelAvailable:     "Available",
	}
}

// Load reads formatting options from a YAML locale file. Missing label
// fields fall back to the English labels; month tables must carry exactly
// twelve entries.
func Load(path string) (types.CitationFormatOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CitationFormatOptions{}, fmt.Errorf("reading locale file: %w", err)
	}

	opts := English()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return types.CitationFormatOptions{}, fmt.Errorf("parsing locale file %s: %w", path, err)
	}

	if len(opts.MonthsLong) != 12 {
		return types.CitationFormatOptions{}, fmt.Errorf("locale file %s: months_long has %d entries, want 12", path, len(opts.MonthsLong))
	}
	if len(opts.MonthsShort) != 12 {
		return types.CitationFormatOptions{}, fmt.Errorf("locale file %s: months_short has %d entries, want 12", path, len(opts.MonthsShort))
	}
	return opts, nil
}
