package handler

import (
	"github.com/osse101/stackgrid/internal/catalog"
	"github.com/osse101/stackgrid/internal/domain"
	"github.com/osse101/stackgrid/internal/inventory"
	"github.com/osse101/stackgrid/internal/store"
)

// Registry holds the live inventories. Handlers only touch an inventory
// inside the callback, while the registry holds its lock.
type Registry interface {
	Create(rows, cols int) (*store.Entry, error)
	Delete(id string) bool
	WithInventory(id string, fn func(inv *inventory.Inventory) error) error
	WithPair(idA, idB string, fn func(a, b *inventory.Inventory) error) error
}

// ItemCatalog is the read side of the item catalog
type ItemCatalog interface {
	Lookup(itemID string) (domain.ItemMetadata, bool)
	Resolve(itemID string) (string, bool)
	Items() []catalog.Item
}

// Handlers serves the inventory API
type Handlers struct {
	registry    Registry
	engine      *inventory.Engine
	items       ItemCatalog
	defaultRows int
	defaultCols int
}

// NewHandlers creates the inventory API handlers. defaultRows and defaultCols
// size inventories created without explicit dimensions.
func NewHandlers(registry Registry, engine *inventory.Engine, items ItemCatalog, defaultRows, defaultCols int) *Handlers {
	return &Handlers{
		registry:    registry,
		engine:      engine,
		items:       items,
		defaultRows: defaultRows,
		defaultCols: defaultCols,
	}
}

// resolveItem maps a requested id onto the catalog spelling. Unknown ids pass
// through untouched and get default metadata from the engine.
func (h *Handlers) resolveItem(itemID string) string {
	if h.items == nil {
		return itemID
	}
	if resolved, ok := h.items.Resolve(itemID); ok {
		return resolved
	}
	return itemID
}

// metadataFor returns catalog metadata, or the defaults for unknown items
func (h *Handlers) metadataFor(itemID string) domain.ItemMetadata {
	if h.items != nil {
		if meta, ok := h.items.Lookup(itemID); ok {
			return meta
		}
	}
	return domain.DefaultItemMetadata()
}
