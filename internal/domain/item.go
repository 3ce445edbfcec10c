package domain

// EmptyItemID marks a slot that holds nothing. It is never a valid catalog id.
const EmptyItemID = "NO_ITEM"

// DefaultMaxStack is the stack size used when the catalog has no entry for an item.
const DefaultMaxStack = 64

// ItemMetadata is the catalog record the inventory needs for stack arithmetic
// and slot compatibility. Slots cache a copy when they are populated.
type ItemMetadata struct {
	MaxStack int          `json:"max_stack" yaml:"max_stack"`
	Category ItemCategory `json:"category" yaml:"category"`
}

// DefaultItemMetadata returns the record substituted for unknown items.
func DefaultItemMetadata() ItemMetadata {
	return ItemMetadata{
		MaxStack: DefaultMaxStack,
		Category: CategoryNone,
	}
}
