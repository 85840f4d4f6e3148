package types

import "time"

// HTTPConfig holds shared HTTP settings used by commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citation-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResolveConfig holds settings for DOI metadata resolution.
type ResolveConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on retryable HTTP
	// responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// LibraryConfig holds settings for the saved-citation store.
type LibraryConfig struct {
	// LibraryDir is the directory containing library.db.
	LibraryDir string `json:"library_dir" yaml:"library_dir"`

	// MaxResults is the default maximum number of list results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// EngineConfig holds CLI-level defaults for the citation engine.
type EngineConfig struct {
	// DefaultStyle is used when a command does not pass --style.
	DefaultStyle CitationStyle `json:"default_style" yaml:"default_style"`

	// LocaleFile points to a YAML locale file; empty means built-in English.
	LocaleFile string `json:"locale_file,omitempty" yaml:"locale_file,omitempty"`
}
