// Package search provides a unified search abstraction for filtering catalog items.
// It supports multiple search strategies (substring, regex, token-based) through
// a common Provider interface shared by the CLI, the TUI and the local API.
package search

import "strings"

// Document is anything a provider can match: it exposes the text values of a
// named field. Unknown fields return nil.
type Document interface {
	FieldValues(field string) []string
}

// Provider defines the interface for search providers.
// Implementations can use different strategies (substring, regex, token-based, etc.)
// to match documents against search queries.
type Provider interface {
	// Match returns true if the document matches the search query.
	Match(doc Document, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Field names understood by catalog items.
const (
	FieldName = "name"
	FieldType = "type"
)

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in (default: name only)
}

// DefaultOptions returns the default search options: case-insensitive, name only.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldName},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the provider registered under mode. Unknown modes get substring.
func New(mode string, opts ...Option) Provider {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "token":
		return NewTokenProvider(opts...)
	case "regex":
		return NewRegexProvider(opts...)
	default:
		return NewSubstringProvider(opts...)
	}
}

// fieldValues collects the non-empty values of every configured field,
// lowered when the search is case-insensitive.
func fieldValues(doc Document, opts Options) []string {
	var values []string
	for _, field := range opts.Fields {
		for _, v := range doc.FieldValues(field) {
			if v == "" {
				continue
			}
			if opts.CaseInsensitive {
				v = strings.ToLower(v)
			}
			values = append(values, v)
		}
	}
	return values
}
