// Package sectors holds the product-category dictionaries the filter engine
// matches against: per-sector keyword sets, exclusion lists, and the synonym
// dictionary used by the recovery layer.
package sectors

import (
	"fmt"
	"os"
	"sort"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Sector is one product category with its matching dictionaries.
type Sector struct {
	ID         string   `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Keywords   []string `yaml:"keywords" json:"keywords"`
	Exclusions []string `yaml:"exclusions" json:"exclusions,omitempty"`
	// Synonyms maps a canonical keyword to the alternative spellings the
	// recovery layer probes when the keyword layer came up empty.
	Synonyms map[string][]string `yaml:"synonyms" json:"synonyms,omitempty"`
}

// Registry is the loaded sector set, keyed by id.
type Registry struct {
	byID map[string]*Sector
}

// Get returns the sector for an id.
func (r *Registry) Get(id string) (*Sector, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// IDs returns the known sector ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of loaded sectors.
func (r *Registry) Len() int { return len(r.byID) }

type sectorsFile struct {
	Sectors []Sector `yaml:"sectors"`
}

// Load builds the registry from the builtin dictionaries, optionally merged
// with a sectors.yaml overlay. A file sector with a builtin id overrides the
// builtin's populated fields and inherits the rest; unknown ids are added
// as-is. An empty path loads the builtins only.
func Load(path string) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Sector)}
	for _, s := range Builtin() {
		s := s
		r.byID[s.ID] = &s
	}

	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sectors file: %w", err)
	}
	data = ExpandEnv(data)

	var file sectorsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sectors file %s: %w", path, err)
	}

	for _, s := range file.Sectors {
		s := s
		if s.ID == "" {
			return nil, fmt.Errorf("sectors file %s: sector without id", path)
		}
		if base, ok := r.byID[s.ID]; ok {
			// File fields win; empty file fields fall back to the builtin.
			if err := mergo.Merge(&s, *base); err != nil {
				return nil, fmt.Errorf("merge sector %s: %w", s.ID, err)
			}
		}
		if s.Name == "" || len(s.Keywords) == 0 {
			return nil, fmt.Errorf("sector %s: name and keywords are required", s.ID)
		}
		r.byID[s.ID] = &s
	}

	return r, nil
}
