// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists citation records in a local SQLite database so
// formatted and resolved citations can be kept, listed, and exported.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/citation-engine/internal/cite"
	"github.com/pdiddy/citation-engine/pkg/types"
)

const dbFile = "library.db"

// defaultMaxResults caps List when the config does not set a limit.
const defaultMaxResults = 50

// Store manages the citation library SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Record is one saved citation with its library identity.
type Record struct {
	ID      string              `json:"id" yaml:"id"`
	AddedAt time.Time           `json:"added_at" yaml:"added_at"`
	Input   types.CitationInput `json:"citation" yaml:"citation"`
}

// NewStore opens or creates the library database at
// cfg.LibraryDir/library.db and creates the schema if needed.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.LibraryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(cfg.LibraryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS citations (
			id TEXT PRIMARY KEY,
			style TEXT,
			source_type TEXT,
			authors TEXT,
			title TEXT,
			container_title TEXT,
			publisher TEXT,
			published_date TEXT,
			access_date TEXT,
			volume TEXT,
			issue TEXT,
			pages TEXT,
			url TEXT,
			doi TEXT,
			added_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_style ON citations(style)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_source_type ON citations(source_type)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save upserts a citation record and returns its library ID. The ID is a
// slug derived from the first author's family name, the publication year,
// and the leading title words, so re-saving the same work overwrites it.
func (s *Store) Save(ctx context.Context, in types.CitationInput) (string, error) {
	id := slugFor(in)
	authorsJSON, _ := json.Marshal(in.Authors)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO citations (id, style, source_type, authors, title, container_title,
			publisher, published_date, access_date, volume, issue, pages, url, doi, added_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			style=excluded.style, source_type=excluded.source_type,
			authors=excluded.authors, title=excluded.title,
			container_title=excluded.container_title, publisher=excluded.publisher,
			published_date=excluded.published_date, access_date=excluded.access_date,
			volume=excluded.volume, issue=excluded.issue, pages=excluded.pages,
			url=excluded.url, doi=excluded.doi, added_at=excluded.added_at`,
		id, string(in.Style), string(in.SourceType), string(authorsJSON),
		in.Title, in.ContainerTitle, in.Publisher, in.PublishedDate, in.AccessDate,
		in.Volume, in.Issue, in.Pages, in.URL, cite.NormalizeDOI(in.DOI),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("saving citation: %w", err)
	}
	return id, nil
}

// Get returns one saved record by ID.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` FROM citations WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return Record{}, fmt.Errorf("citation %q not found", id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("loading citation %s: %w", id, err)
	}
	return rec, nil
}

// Delete removes a saved record by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM citations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting citation %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("citation %q not found", id)
	}
	return nil
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Style      types.CitationStyle
	SourceType types.CitationSourceType

	// Author matches a substring of any author's family or given name.
	Author string
}

// List returns saved records newest-first, capped at the configured
// maximum.
func (s *Store) List(ctx context.Context, f Filter) ([]Record, error) {
	query := selectColumns + ` FROM citations`
	var conds []string
	var args []any
	if f.Style != "" {
		conds = append(conds, "style = ?")
		args = append(args, string(f.Style))
	}
	if f.SourceType != "" {
		conds = append(conds, "source_type = ?")
		args = append(args, string(f.SourceType))
	}
	if f.Author != "" {
		conds = append(conds, "authors LIKE ?")
		args = append(args, "%"+f.Author+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY added_at DESC, id LIMIT ?"
	args = append(args, s.maxResults)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing citations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning citation: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

const selectColumns = `SELECT id, style, source_type, authors, title, container_title,
	publisher, published_date, access_date, volume, issue, pages, url, doi, added_at`

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var style, sourceType, authorsJSON, addedAt string
	err := row.Scan(&rec.ID, &style, &sourceType, &authorsJSON,
		&rec.Input.Title, &rec.Input.ContainerTitle, &rec.Input.Publisher,
		&rec.Input.PublishedDate, &rec.Input.AccessDate,
		&rec.Input.Volume, &rec.Input.Issue, &rec.Input.Pages,
		&rec.Input.URL, &rec.Input.DOI, &addedAt)
	if err != nil {
		return Record{}, err
	}
	rec.Input.Style = types.CitationStyle(style)
	rec.Input.SourceType = types.CitationSourceType(sourceType)
	if authorsJSON != "" {
		// A corrupt author blob degrades to no authors.
		_ = json.Unmarshal([]byte(authorsJSON), &rec.Input.Authors)
	}
	rec.AddedAt, _ = time.Parse(time.RFC3339, addedAt)
	return rec, nil
}

var slugUnsafeRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugTitleWords bounds how many leading title words feed the slug.
const slugTitleWords = 3

// slugFor derives a stable library ID like "lovelace-1843-on-machines".
// Records with no usable parts fall back to "citation".
func slugFor(in types.CitationInput) string {
	var parts []string
	if len(in.Authors) > 0 && in.Authors[0].Family != "" {
		parts = append(parts, in.Authors[0].Family)
	}
	if d := yearOf(in.PublishedDate); d != "" {
		parts = append(parts, d)
	}
	words := strings.Fields(in.Title)
	if len(words) > slugTitleWords {
		words = words[:slugTitleWords]
	}
	parts = append(parts, words...)

	slug := strings.Trim(slugUnsafeRe.ReplaceAllString(strings.ToLower(strings.Join(parts, " ")), "-"), "-")
	if slug == "" {
		return "citation"
	}
	return slug
}

var leadingYearRe = regexp.MustCompile(`^\s*(\d{4})`)

func yearOf(date string) string {
	if m := leadingYearRe.FindStringSubmatch(date); m != nil {
		return m[1]
	}
	return ""
}
