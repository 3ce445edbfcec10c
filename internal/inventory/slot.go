package inventory

import "github.com/osse101/stackgrid/internal/domain"

// Slot is a single storage cell. Restriction belongs to the slot position and
// is never moved by transfers; everything else describes the current stack.
type Slot struct {
	ItemID      string              `json:"item_id"`
	Amount      int                 `json:"amount"`
	Metadata    domain.ItemMetadata `json:"metadata"`
	Restriction domain.ItemCategory `json:"restriction"`
}

// NewEmptySlot returns an unrestricted empty slot.
func NewEmptySlot() Slot {
	return Slot{
		ItemID:   domain.EmptyItemID,
		Metadata: domain.DefaultItemMetadata(),
	}
}

// IsEmpty reports whether the slot holds no item.
func (s Slot) IsEmpty() bool {
	return s.ItemID == domain.EmptyItemID
}

// FreeSpace is how many more units fit before the stack is full.
func (s Slot) FreeSpace() int {
	if free := s.Metadata.MaxStack - s.Amount; free > 0 {
		return free
	}
	return 0
}

// AddToStack changes the stack by amount and returns what did not fit.
// A negative amount withdraws. Withdrawing more than the slot holds is not
// checked here; callers must verify the amount first.
func (s *Slot) AddToStack(amount int) int {
	if amount > 0 && s.Amount == s.Metadata.MaxStack {
		return amount
	}

	newAmount := s.Amount + amount
	leftover := newAmount - s.Metadata.MaxStack
	if leftover > 0 {
		s.Amount = s.Metadata.MaxStack
	} else {
		leftover = 0
		s.Amount = newAmount
	}

	if s.Amount == 0 {
		s.clear()
	}
	return leftover
}

// MatchesRestriction reports whether an item of the given category may occupy
// this slot. CategoryNone on either side always matches.
func (s Slot) MatchesRestriction(category domain.ItemCategory) bool {
	return s.Restriction == category ||
		s.Restriction == domain.CategoryNone ||
		category == domain.CategoryNone
}

// contents returns the slot with its restriction stripped, for moving the
// stack somewhere else.
func (s Slot) contents() Slot {
	s.Restriction = domain.CategoryNone
	return s
}

// setContents overwrites the stack while keeping this position's restriction.
func (s *Slot) setContents(c Slot) {
	restriction := s.Restriction
	*s = c
	s.Restriction = restriction
}

func (s *Slot) populate(itemID string, meta domain.ItemMetadata) {
	s.ItemID = itemID
	s.Metadata = meta
}

func (s *Slot) clear() {
	s.ItemID = domain.EmptyItemID
	s.Amount = 0
	s.Metadata = domain.DefaultItemMetadata()
}
