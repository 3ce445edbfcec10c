package inventory

import (
	"fmt"

	"github.com/osse101/stackgrid/internal/domain"
)

// Inventory is a fixed rows x cols grid of slots addressed by row-major index.
// It is not safe for concurrent use; the owner serialises access.
type Inventory struct {
	slots []Slot
	rows  int
	cols  int
}

// New creates an inventory with every slot empty and unrestricted.
func New(rows, cols int) (*Inventory, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", domain.ErrInvalidDimensions, rows, cols)
	}

	slots := make([]Slot, rows*cols)
	for i := range slots {
		slots[i] = NewEmptySlot()
	}
	return &Inventory{slots: slots, rows: rows, cols: cols}, nil
}

func (inv *Inventory) Rows() int { return inv.rows }
func (inv *Inventory) Cols() int { return inv.cols }
func (inv *Inventory) Len() int { return len(inv.slots) }

// Slot returns a copy of the slot at index.
func (inv *Inventory) Slot(index int) (Slot, error) {
	if err := inv.validateIndex(index); err != nil {
		return Slot{}, err
	}
	return inv.slots[index], nil
}

// Slots returns a copy of all slots in index order.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Index converts a grid position into a linear slot index.
func (inv *Inventory) Index(row, col int) (int, error) {
	if row < 0 || row >= inv.rows || col < 0 || col >= inv.cols {
		return 0, fmt.Errorf("%w: row=%d col=%d grid=%dx%d", domain.ErrIndexOutOfRange, row, col, inv.rows, inv.cols)
	}
	return row*inv.cols + col, nil
}

// Position converts a linear slot index into its grid position.
func (inv *Inventory) Position(index int) (row, col int, err error) {
	if err := inv.validateIndex(index); err != nil {
		return 0, 0, err
	}
	return index / inv.cols, index % inv.cols, nil
}

// SetRestriction limits which item category the slot at index accepts.
// Existing contents are left alone.
func (inv *Inventory) SetRestriction(index int, category domain.ItemCategory) error {
	if err := inv.validateIndex(index); err != nil {
		return err
	}
	if !category.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidCategory, uint8(category))
	}
	inv.slots[index].Restriction = category
	return nil
}

// CountItem sums the amount of itemID across all slots.
func (inv *Inventory) CountItem(itemID string) int {
	total := 0
	for i := range inv.slots {
		if inv.slots[i].ItemID == itemID {
			total += inv.slots[i].Amount
		}
	}
	return total
}

// Total sums the amount held in every slot.
func (inv *Inventory) Total() int {
	total := 0
	for i := range inv.slots {
		total += inv.slots[i].Amount
	}
	return total
}

// EmptySlots counts slots that hold nothing.
func (inv *Inventory) EmptySlots() int {
	n := 0
	for i := range inv.slots {
		if inv.slots[i].IsEmpty() {
			n++
		}
	}
	return n
}

func (inv *Inventory) validateIndex(index int) error {
	if index < 0 || index >= len(inv.slots) {
		return fmt.Errorf("%w: index %d in inventory of size %d", domain.ErrIndexOutOfRange, index, len(inv.slots))
	}
	return nil
}

func (inv *Inventory) slot(index int) *Slot {
	return &inv.slots[index]
}
