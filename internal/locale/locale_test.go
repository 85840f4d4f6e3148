// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locale

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnglish(t *testing.T) {
	opts := English()
	if len(opts.MonthsLong) != 12 || len(opts.MonthsShort) != 12 {
		t.Fatalf("month tables: %d long, %d short", len(opts.MonthsLong), len(opts.MonthsShort))
	}
	if opts.MonthsLong[0] != "January" || opts.MonthsLong[11] != "December" {
		t.Errorf("months_long = %v", opts.MonthsLong)
	}
	if opts.LabelAccessed == "" || opts.LabelRetrievedFrom == "" || opts.LabelOnline == "" || opts.LabelAvailable == "" {
		t.Error("labels must be non-empty")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de.yaml")
	content := `months_long: [Januar, Februar, März, April, Mai, Juni, Juli, August, September, Oktober, November, Dezember]
months_short: [Jan, Feb, Mär, Apr, Mai, Jun, Jul, Aug, Sep, Okt, Nov, Dez]
label_accessed: Abgerufen am
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.MonthsLong[2] != "März" {
		t.Errorf("months_long[2] = %q", opts.MonthsLong[2])
	}
	if opts.LabelAccessed != "Abgerufen am" {
		t.Errorf("label_accessed = %q", opts.LabelAccessed)
	}
	// Unspecified labels keep the English fallback.
	if opts.LabelRetrievedFrom != "Retrieved from" {
		t.Errorf("label_retrieved_from = %q", opts.LabelRetrievedFrom)
	}
}

func TestLoadRejectsShortMonthTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("months_long: [Jan, Feb]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "months_long") {
		t.Errorf("want months_long error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}
