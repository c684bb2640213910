package expand

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrEmptyCategoryID is returned when a category has no name.
	ErrEmptyCategoryID = errors.New("category id must not be empty")
	// ErrDuplicateCategory is returned when two categories share a name.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrUnknownFallback is returned when the fallback names no declared category.
	ErrUnknownFallback = errors.New("fallback category is not declared")
)

// Displacement is one catalog entry: a label suffix and the offset (mm)
// added to the source point.
type Displacement struct {
	Suffix string
	Offset r3.Vec
}

// Catalog maps each category to its ordered displacement list.
type Catalog map[CategoryID][]Displacement

// Lookup returns a copy of the displacements for id in catalog order, or
// nil if the category is unknown.
func (c Catalog) Lookup(id CategoryID) []Displacement {
	d, ok := c[id]
	if !ok {
		return nil
	}
	out := make([]Displacement, len(d))
	copy(out, d)
	return out
}

// Category is the construction input for one classification bucket.
type Category struct {
	ID            CategoryID
	Ranges        []Range
	Displacements []Displacement
}

// Config is the immutable rule set handed to Expand and Run. Build it with
// NewConfig; the zero value is not usable.
type Config struct {
	rules    []Rule
	catalog  Catalog
	fallback CategoryID
}

// NewConfig builds a Config from categories in priority order. The fallback
// category is required and must be one of the declared categories. Input
// slices are copied, so later edits by the caller do not leak in.
func NewConfig(categories []Category, fallback CategoryID) (*Config, error) {
	cfg := &Config{
		rules:    make([]Rule, 0, len(categories)),
		catalog:  make(Catalog, len(categories)),
		fallback: fallback,
	}
	for i, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("category %d: %w", i, ErrEmptyCategoryID)
		}
		if _, dup := cfg.catalog[c.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.ID)
		}
		ranges := make([]Range, len(c.Ranges))
		copy(ranges, c.Ranges)
		disp := make([]Displacement, len(c.Displacements))
		copy(disp, c.Displacements)

		cfg.rules = append(cfg.rules, Rule{Category: c.ID, Ranges: ranges})
		cfg.catalog[c.ID] = disp
	}
	if _, ok := cfg.catalog[fallback]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFallback, fallback)
	}
	return cfg, nil
}

// Fallback returns the category used when no range matches.
func (c *Config) Fallback() CategoryID { return c.fallback }

// Categories returns the declared category ids in priority order.
func (c *Config) Categories() []CategoryID {
	ids := make([]CategoryID, len(c.rules))
	for i, r := range c.rules {
		ids[i] = r.Category
	}
	return ids
}

// Rules returns a copy of the classifier rules in priority order.
func (c *Config) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = Rule{Category: r.Category, Ranges: append([]Range(nil), r.Ranges...)}
	}
	return out
}

// Lookup returns the displacement catalog for id.
func (c *Config) Lookup(id CategoryID) []Displacement {
	return c.catalog.Lookup(id)
}

// Classify maps a label number to a category using this config's rules.
func (c *Config) Classify(n int) CategoryID {
	return Classify(n, c.rules, c.fallback)
}
