package search

import (
	"regexp"
	"sync"
)

// RegexProvider provides regex-based search.
// Matches if any configured field matches the regex pattern.
type RegexProvider struct {
	opts    Options
	cache   map[string]*regexp.Regexp
	cacheMu sync.RWMutex
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Match returns true if any configured field matches the regex pattern.
// If the query is not a valid regex, it returns false for all documents.
func (p *RegexProvider) Match(doc Document, query string) bool {
	if query == "" {
		return true
	}

	re, err := p.getRegex(query)
	if err != nil {
		return false
	}

	for _, value := range fieldValues(doc, p.opts) {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *RegexProvider) Name() string {
	return "regex"
}

// getRegex returns a compiled regex from cache or compiles and caches it.
func (p *RegexProvider) getRegex(pattern string) (*regexp.Regexp, error) {
	if p.opts.CaseInsensitive {
		pattern = "(?i)" + pattern
	}

	p.cacheMu.RLock()
	re, ok := p.cache[pattern]
	p.cacheMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[pattern] = re
	p.cacheMu.Unlock()
	return re, nil
}
