package catalog

import (
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/text/cases"

	"github.com/osse101/stackgrid/internal/domain"
)

// Item is a catalog entry as exposed to clients
type Item struct {
	ID          string              `json:"id"`
	Name        string              `json:"name,omitempty"`
	Description string              `json:"description,omitempty"`
	Metadata    domain.ItemMetadata `json:"metadata"`
}

// Catalog is an immutable, case-insensitive item registry. It is safe for
// concurrent reads.
type Catalog struct {
	items map[string]Item
}

// NormalizeID folds an item id so lookups ignore case.
func NormalizeID(id string) string {
	// Casers carry state, so one is built per call.
	return cases.Fold().String(id)
}

// New builds a catalog from already validated definitions.
func New(defs []Def) (*Catalog, error) {
	items := make(map[string]Item, len(defs))
	for _, d := range defs {
		meta, err := d.Metadata()
		if err != nil {
			return nil, fmt.Errorf(ErrFmtItemBadCategory, ErrInvalidConfig, d.ID, err)
		}
		key := NormalizeID(d.ID)
		if _, ok := items[key]; ok {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateItemID, d.ID)
		}
		items[key] = Item{ID: d.ID, Name: d.Name, Description: d.Description, Metadata: meta}
	}
	return &Catalog{items: items}, nil
}

// Empty returns a catalog with no items; every lookup misses.
func Empty() *Catalog {
	return &Catalog{items: map[string]Item{}}
}

// LoadFile loads, validates and builds a catalog from a JSON or YAML file.
func LoadFile(path string) (*Catalog, error) {
	loader, err := NewLoader()
	if err != nil {
		return nil, err
	}
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	c, err := New(config.Items)
	if err != nil {
		return nil, err
	}
	slog.Info(LogMsgCatalogLoaded, "path", path, "version", config.Version, "items", c.Len())
	return c, nil
}

// Lookup implements inventory.Catalog.
func (c *Catalog) Lookup(itemID string) (domain.ItemMetadata, bool) {
	item, ok := c.items[NormalizeID(itemID)]
	return item.Metadata, ok
}

// Resolve returns the declared spelling of itemID, so differently cased
// requests land on the same stacks.
func (c *Catalog) Resolve(itemID string) (string, bool) {
	item, ok := c.items[NormalizeID(itemID)]
	return item.ID, ok
}

// Get returns the full entry for itemID.
func (c *Catalog) Get(itemID string) (Item, error) {
	item, ok := c.items[NormalizeID(itemID)]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, itemID)
	}
	return item, nil
}

// Items returns every entry sorted by id.
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Len() int { return len(c.items) }
