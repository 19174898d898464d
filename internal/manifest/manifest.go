// Package manifest defines the ordered table of word-list sources feeding a
// dictionary build, either the built-in default or one loaded from YAML.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ewestra/tiledict/internal/policy"
)

// DefaultOutput is the dictionary file a build writes when the manifest
// does not name one.
const DefaultOutput = "new_short_dictionary.txt"

// Source is one (path, policy) record in the build order.
type Source struct {
	Path   string `yaml:"path"`
	Policy string `yaml:"policy"`
}

// Manifest is the ordered source table for one build.
type Manifest struct {
	Output  string   `yaml:"output"`
	Sources []Source `yaml:"sources"`
}

// Default returns the built-in source table: the trusted base dictionary
// first, then the nine supplementary lists under the strict policy, in the
// order their contributions are reported.
func Default() *Manifest {
	supplementary := []string{
		"5000-more-common.txt",
		"globish.txt",
		"simplified_english.txt",
		"special_english.txt",
		"basic_english_850.txt",
		"basic_english_2000.txt",
		"doublet_words.txt",
		"unique_grams.txt",
		"200-less-common.txt",
	}
	m := &Manifest{
		Output:  DefaultOutput,
		Sources: []Source{{Path: "short_dictionary.txt", Policy: "all"}},
	}
	for _, p := range supplementary {
		m.Sources = append(m.Sources, Source{Path: p, Policy: "strict"})
	}
	return m
}

// Load reads a manifest from a YAML file and validates it.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading manifest %q: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", path, err)
	}
	if m.Output == "" {
		m.Output = DefaultOutput
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	return &m, nil
}

// Validate checks that the manifest names at least one source and that
// every policy tag resolves to a built-in policy.
func (m *Manifest) Validate() error {
	if len(m.Sources) == 0 {
		return fmt.Errorf("no sources listed")
	}
	for i, src := range m.Sources {
		if src.Path == "" {
			return fmt.Errorf("source %d: missing path", i+1)
		}
		if _, err := policy.Get(src.Policy); err != nil {
			return fmt.Errorf("source %q: %w", src.Path, err)
		}
	}
	return nil
}

// Resolve returns a copy of the manifest with every source path joined
// onto dir. Absolute source paths are left alone. The output path is
// resolved the same way.
func (m *Manifest) Resolve(dir string) *Manifest {
	out := &Manifest{Output: joinUnlessAbs(dir, m.Output)}
	out.Sources = make([]Source, len(m.Sources))
	for i, src := range m.Sources {
		out.Sources[i] = Source{Path: joinUnlessAbs(dir, src.Path), Policy: src.Policy}
	}
	return out
}

func joinUnlessAbs(dir, path string) string {
	if dir == "" || dir == "." || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
