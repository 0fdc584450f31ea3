package runner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/core"
)

// Target is one file to analyze and the language it is analyzed as.
type Target struct {
	Path     string
	Language *core.Language
}

// DiscoverOptions controls which files Discover returns.
type DiscoverOptions struct {
	// Languages to look for. Nil means every registered language.
	Languages []*core.Language
	// Suffixes overrides the default suffixes of a language, by name.
	Suffixes map[string][]string
	// Force analyzes every discovered file as this language. Files named
	// explicitly are taken whatever their suffix.
	Force *core.Language
}

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// Discover expands paths into analysis targets. Directories are walked
// recursively, skipping hidden and dependency directories. Files named
// explicitly must match a language. The result is sorted by path and has
// no duplicates.
func Discover(paths []string, opts DiscoverOptions) ([]Target, error) {
	langs := opts.languages()
	match := func(path string) *core.Language {
		return matchLanguage(path, langs, opts.Suffixes)
	}

	seen := make(map[string]bool)
	var targets []Target
	add := func(path string, l *core.Language) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			targets = append(targets, Target{Path: path, Language: l})
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", root, err)
		}

		if !info.IsDir() {
			if opts.Force != nil {
				add(root, opts.Force)
				continue
			}
			l := match(root)
			if l == nil {
				if isMinified(root) {
					continue
				}
				return nil, fmt.Errorf("%s: no language handles this file", root)
			}
			add(root, l)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if l := match(path); l != nil {
				add(path, l)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Path < targets[j].Path })
	return targets, nil
}

func isMinified(path string) bool {
	stem := strings.TrimSuffix(strings.ToLower(filepath.Base(path)), filepath.Ext(path))
	return strings.HasSuffix(stem, ".min") || strings.HasSuffix(stem, "-min")
}

func (o DiscoverOptions) languages() []*core.Language {
	if o.Force != nil {
		return []*core.Language{o.Force}
	}
	if len(o.Languages) > 0 {
		return o.Languages
	}
	var langs []*core.Language
	for _, name := range core.ListLanguages() {
		l, _ := core.GetLanguage(name)
		langs = append(langs, l)
	}
	return langs
}

func matchLanguage(path string, langs []*core.Language, suffixes map[string][]string) *core.Language {
	for _, l := range langs {
		if l.Matches(path, suffixes[l.Name]) {
			return l
		}
	}
	return nil
}
