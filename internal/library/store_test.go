// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"testing"

	"github.com/pdiddy/citation-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.LibraryConfig{LibraryDir: t.TempDir(), MaxResults: 10})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleInput() types.CitationInput {
	return types.CitationInput{
		Style:          types.StyleAPA7,
		SourceType:     types.SourceJournal,
		Authors:        []types.CitationName{{Given: "Ada", Family: "Lovelace"}},
		Title:          "On Machines",
		ContainerTitle: "Annals of Computing",
		PublishedDate:  "1843-03-05",
		Volume:         "1",
		Issue:          "2",
		Pages:          "10-20",
		DOI:            "https://doi.org/10.1/ex",
	}
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, sampleInput())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id != "lovelace-1843-on-machines" {
		t.Errorf("id = %q, want lovelace-1843-on-machines", id)
	}

	rec, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Input.Title != "On Machines" {
		t.Errorf("title = %q", rec.Input.Title)
	}
	if len(rec.Input.Authors) != 1 || rec.Input.Authors[0].Family != "Lovelace" {
		t.Errorf("authors = %+v", rec.Input.Authors)
	}
	if rec.Input.DOI != "10.1/ex" {
		t.Errorf("DOI = %q, want normalized 10.1/ex", rec.Input.DOI)
	}
	if rec.AddedAt.IsZero() {
		t.Error("AddedAt not set")
	}
}

func TestSaveUpsertsByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := sampleInput()
	if _, err := s.Save(ctx, in); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	in.Pages = "10-25"
	id, err := s.Save(ctx, in)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	records, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].ID != id || records[0].Input.Pages != "10-25" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := sampleInput()
	second := types.CitationInput{
		Style:      types.StyleMLA9,
		SourceType: types.SourceBook,
		Authors:    []types.CitationName{{Given: "Charles", Family: "Babbage"}},
		Title:      "Passages",
		Publisher:  "Longman",
	}
	for _, in := range []types.CitationInput{first, second} {
		if _, err := s.Save(ctx, in); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 2},
		{"by style", Filter{Style: types.StyleAPA7}, 1},
		{"by source type", Filter{SourceType: types.SourceBook}, 1},
		{"by author", Filter{Author: "Babbage"}, 1},
		{"no match", Filter{Author: "Turing"}, 0},
		{"combined", Filter{Style: types.StyleMLA9, SourceType: types.SourceBook}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := s.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(records) != tt.want {
				t.Errorf("got %d records, want %d", len(records), tt.want)
			}
		})
	}
}

func TestListHonorsMaxResults(t *testing.T) {
	s, err := NewStore(types.LibraryConfig{LibraryDir: t.TempDir(), MaxResults: 2})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		in := sampleInput()
		in.Title = title
		if _, err := s.Save(ctx, in); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	records, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, sampleInput())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, id); err == nil {
		t.Error("Get after Delete succeeded, want error")
	}
	if err := s.Delete(ctx, id); err == nil {
		t.Error("second Delete succeeded, want error")
	}
}

func TestSlugFor(t *testing.T) {
	tests := []struct {
		name string
		in   types.CitationInput
		want string
	}{
		{
			"full",
			sampleInput(),
			"lovelace-1843-on-machines",
		},
		{
			"no author",
			types.CitationInput{Title: "Untitled Draft Notes Extended", PublishedDate: "2020"},
			"2020-untitled-draft-notes",
		},
		{
			"punctuation stripped",
			types.CitationInput{
				Authors: []types.CitationName{{Family: "O'Brien"}},
				Title:   "C++: A Survey",
			},
			"o-brien-c-a-survey",
		},
		{
			"empty input",
			types.CitationInput{},
			"citation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugFor(tt.in); got != tt.want {
				t.Errorf("slugFor() = %q, want %q", got, tt.want)
			}
		})
	}
}
