package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"capsdiag/internal/model"
)

//go:embed categories.yaml
var defaultCategories []byte

// Catalog holds the descriptive profile of every category
type Catalog struct {
	Profiles []model.Profile `yaml:"profiles"`
}

// DefaultCatalog parses the embedded category descriptions
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCategories)
}

// ParseCatalog parses catalog YAML and checks every category is described once
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse category catalog: %w", err)
	}

	seen := make(map[model.Category]bool)
	for _, p := range catalog.Profiles {
		if !p.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q in catalog", p.Category)
		}
		if seen[p.Category] {
			return nil, fmt.Errorf("category %q described twice", p.Category)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("category %q must have a name", p.Category)
		}
		seen[p.Category] = true
	}
	for _, c := range model.Categories {
		if !seen[c] {
			return nil, fmt.Errorf("category %q missing from catalog", c)
		}
	}
	return &catalog, nil
}

// Profile returns the description for one category
func (c *Catalog) Profile(category model.Category) (model.Profile, bool) {
	for _, p := range c.Profiles {
		if p.Category == category {
			return p, true
		}
	}
	return model.Profile{}, false
}

// ProfilesFor returns the profiles of the given categories, in the same order
func (c *Catalog) ProfilesFor(categories []model.Category) []model.Profile {
	profiles := make([]model.Profile, 0, len(categories))
	for _, cat := range categories {
		if p, ok := c.Profile(cat); ok {
			profiles = append(profiles, p)
		}
	}
	return profiles
}
