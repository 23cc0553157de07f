// Package catalog provides the read-only list of curated resources.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var defaultResources []byte

var validate = validator.New()

// Catalog is an immutable list of resources in catalog order.
type Catalog struct {
	resources []models.Resource
}

// Load returns the built-in catalog.
func Load() (*Catalog, error) {
	return Parse(defaultResources)
}

// Parse decodes and validates a YAML resource list. Ids must be unique.
func Parse(data []byte) (*Catalog, error) {
	var resources []models.Resource
	if err := yaml.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode resource catalog: %w", err)
	}

	seen := make(map[int64]bool, len(resources))
	for i, r := range resources {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("invalid resource at index %d: %w", i, err)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate resource id %d", r.ID)
		}
		seen[r.ID] = true
	}
	return &Catalog{resources: resources}, nil
}

// All returns a copy of every resource.
func (c *Catalog) All() []models.Resource {
	out := make([]models.Resource, len(c.resources))
	copy(out, c.resources)
	return out
}

// ByCategory returns the resources of one category; an empty category matches all.
func (c *Catalog) ByCategory(category string) []models.Resource {
	if category == "" {
		return c.All()
	}
	var out []models.Resource
	for _, r := range c.resources {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) Lookup(id int64) (models.Resource, bool) {
	for _, r := range c.resources {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resource{}, false
}
