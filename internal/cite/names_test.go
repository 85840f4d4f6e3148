// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"testing"

	"github.com/pdiddy/citation-engine/pkg/types"
)

func TestParseAuthors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []types.CitationName
	}{
		{
			name: "comma inverted",
			raw:  "Lovelace, Ada",
			want: []types.CitationName{{Given: "Ada", Family: "Lovelace"}},
		},
		{
			name: "natural order",
			raw:  "Ada Lovelace",
			want: []types.CitationName{{Given: "Ada", Family: "Lovelace"}},
		},
		{
			name: "multiple given names",
			raw:  "Charles Babbage Senior",
			want: []types.CitationName{{Given: "Charles Babbage", Family: "Senior"}},
		},
		{
			name: "semicolon separated",
			raw:  "Lovelace, Ada; Babbage, Charles",
			want: []types.CitationName{
				{Given: "Ada", Family: "Lovelace"},
				{Given: "Charles", Family: "Babbage"},
			},
		},
		{
			name: "fullwidth semicolon",
			raw:  "Lovelace, Ada；Babbage, Charles",
			want: []types.CitationName{
				{Given: "Ada", Family: "Lovelace"},
				{Given: "Charles", Family: "Babbage"},
			},
		},
		{
			name: "newline separated preserves order",
			raw:  "Babbage, Charles\nLovelace, Ada",
			want: []types.CitationName{
				{Given: "Charles", Family: "Babbage"},
				{Given: "Ada", Family: "Lovelace"},
			},
		},
		{
			name: "single token is family only",
			raw:  "Aristotle",
			want: []types.CitationName{{Family: "Aristotle"}},
		},
		{
			name: "empty chunks dropped",
			raw:  " ; \n ;Lovelace, Ada",
			want: []types.CitationName{{Given: "Ada", Family: "Lovelace"}},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "duplicates kept",
			raw:  "Lovelace, Ada; Lovelace, Ada",
			want: []types.CitationName{
				{Given: "Ada", Family: "Lovelace"},
				{Given: "Ada", Family: "Lovelace"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAuthors(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseAuthors(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("author %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		given string
		want  string
	}{
		{"Ada", "A."},
		{"Ada Maria", "A. M."},
		{"Jean-Paul", "J. P."},
		{"ada", "A."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := initials(tt.given); got != tt.want {
			t.Errorf("initials(%q) = %q, want %q", tt.given, got, tt.want)
		}
	}
}

func TestBareInitials(t *testing.T) {
	tests := []struct {
		given string
		want  string
	}{
		{"Ada Maria", "AM"},
		{"Jean-Paul", "JP"},
		{"Ada", "A"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := bareInitials(tt.given); got != tt.want {
			t.Errorf("bareInitials(%q) = %q, want %q", tt.given, got, tt.want)
		}
	}
}
