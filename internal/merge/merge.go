// Package merge runs the dictionary build: a sequential fold over an
// ordered list of word-list sources, each filtered by its acceptance
// policy, accumulating into one deduplicated set.
package merge

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ewestra/tiledict/internal/dictionary"
	"github.com/ewestra/tiledict/internal/manifest"
	"github.com/ewestra/tiledict/internal/policy"
	"github.com/ewestra/tiledict/internal/wordlist"
)

// Reporter receives a progress line after each source is folded in.
// It may be nil.
type Reporter func(format string, args ...any)

// SourceResult records what one source contributed to the merged set.
type SourceResult struct {
	Path       string `json:"path"`
	Policy     string `json:"policy"`
	LinesRead  int    `json:"lines_read"`
	Accepted   int    `json:"accepted"`
	Added      int    `json:"added"`
	Cumulative int    `json:"cumulative"`
}

// Result is the outcome of a whole build.
type Result struct {
	Sources []SourceResult `json:"sources"`
	Total   int            `json:"total"`

	// Set is the merged dictionary; not serialized with the report.
	Set *dictionary.Set `json:"-"`
}

// Run folds every source in m, in order, into a fresh set. Any failure to
// load a source aborts the build with no output written; there is no
// partial recovery. The first source is reported as the seed, each later
// source with its cumulative set size.
func Run(m *manifest.Manifest, report Reporter) (*Result, error) {
	res := &Result{Set: dictionary.NewSet()}
	for i, src := range m.Sources {
		sr, err := fold(res.Set, src)
		if err != nil {
			return nil, err
		}
		res.Sources = append(res.Sources, sr)
		if report != nil {
			name := sourceName(src.Path)
			if i == 0 {
				report("Seeded from %s: %d", name, sr.Cumulative)
			} else {
				report("After %s: %d", name, sr.Cumulative)
			}
		}
	}
	res.Total = res.Set.Len()
	return res, nil
}

// sourceName is the short name used in progress lines: the base filename
// without its extension.
func sourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fold loads one source, normalizes and filters its lines, and adds the
// accepted words to the set.
func fold(set *dictionary.Set, src manifest.Source) (SourceResult, error) {
	pol, err := policy.Get(src.Policy)
	if err != nil {
		return SourceResult{}, fmt.Errorf("source %q: %w", src.Path, err)
	}
	list, err := wordlist.Load(src.Path)
	if err != nil {
		return SourceResult{}, err
	}

	sr := SourceResult{Path: src.Path, Policy: pol.Tag, LinesRead: len(list.Lines)}
	for _, line := range list.Lines {
		word := wordlist.Normalize(line)
		if !pol.Accept(word) {
			continue
		}
		sr.Accepted++
		if set.Add(word) {
			sr.Added++
		}
	}
	sr.Cumulative = set.Len()
	return sr, nil
}
