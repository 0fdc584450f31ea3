package core

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/leapcss/pkg/catalog"
)

// Language describes a stylesheet language sharing the CSS grammar.
type Language struct {
	Name string
	// RepositoryKey prefixes rule identifiers in configuration messages.
	RepositoryKey string
	// Suffixes are the default file suffixes, without the dot.
	Suffixes []string
	// ExcludeMinified skips *.min.<suffix> and *-min.<suffix> files.
	ExcludeMinified bool
	// Less enables line comments, variables and Less built-in functions.
	Less bool
}

// Catalog returns the vocabulary used to classify names.
func (l *Language) Catalog() *catalog.Catalog {
	if l.Less {
		return catalog.Less()
	}
	return catalog.Default()
}

// Matches reports whether path has one of suffixes and is not a minified
// file excluded by the language.
func (l *Language) Matches(path string, suffixes []string) bool {
	if len(suffixes) == 0 {
		suffixes = l.Suffixes
	}
	base := strings.ToLower(filepath.Base(path))
	for _, s := range suffixes {
		s = "." + strings.TrimPrefix(strings.ToLower(s), ".")
		if !strings.HasSuffix(base, s) {
			continue
		}
		stem := strings.TrimSuffix(base, s)
		if l.ExcludeMinified && (strings.HasSuffix(stem, ".min") || strings.HasSuffix(stem, "-min")) {
			return false
		}
		return true
	}
	return false
}

// Built-in languages.
var (
	CSS = &Language{
		Name:            "css",
		RepositoryKey:   "css",
		Suffixes:        []string{"css"},
		ExcludeMinified: true,
	}
	Less = &Language{
		Name:          "less",
		RepositoryKey: "less",
		Suffixes:      []string{"less"},
		Less:          true,
	}
)

// Language registry
var (
	languagesMu sync.RWMutex
	languages   = map[string]*Language{}
)

// ErrUnknownLanguage is returned when a language name is not registered.
var ErrUnknownLanguage = errors.New("unknown language")

func init() {
	RegisterLanguage(CSS)
	RegisterLanguage(Less)
}

// RegisterLanguage registers a language in the global registry.
func RegisterLanguage(l *Language) {
	languagesMu.Lock()
	defer languagesMu.Unlock()
	languages[strings.ToLower(l.Name)] = l
}

// GetLanguage returns a language by name.
func GetLanguage(name string) (*Language, bool) {
	languagesMu.RLock()
	defer languagesMu.RUnlock()
	l, ok := languages[strings.ToLower(name)]
	return l, ok
}

// ListLanguages returns all registered language names (sorted).
func ListLanguages() []string {
	languagesMu.RLock()
	defer languagesMu.RUnlock()
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LanguageFor returns the first registered language, in name order, whose
// default suffixes match path.
func LanguageFor(path string) (*Language, bool) {
	for _, name := range ListLanguages() {
		l, _ := GetLanguage(name)
		if l.Matches(path, nil) {
			return l, true
		}
	}
	return nil, false
}
