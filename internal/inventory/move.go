package inventory

import "fmt"

// MoveAction names what MoveSlot decided to do.
type MoveAction string

const (
	MoveNone     MoveAction = "none"
	MoveTransfer MoveAction = "transfer"
	MoveCombine  MoveAction = "combine"
	MoveSwap     MoveAction = "swap"
)

// MoveResult reports the outcome of MoveSlot.
type MoveResult struct {
	Action   MoveAction `json:"action"`
	Accepted bool       `json:"accepted"`
	Moved    int        `json:"moved"`
	Leftover int        `json:"leftover"`
}

// MoveSlot drops the stack at src[srcIndex] onto dest[destIndex], the way a
// drag in an inventory screen resolves: an empty destination takes the whole
// stack, a stack of the same item is topped up, anything else is swapped.
func (e *Engine) MoveSlot(dest *Inventory, destIndex int, src *Inventory, srcIndex int) (MoveResult, error) {
	if err := dest.validateIndex(destIndex); err != nil {
		return MoveResult{}, err
	}
	if err := src.validateIndex(srcIndex); err != nil {
		return MoveResult{}, err
	}

	srcSlot, destSlot := src.slots[srcIndex], dest.slots[destIndex]
	if srcSlot.IsEmpty() || (dest == src && destIndex == srcIndex) {
		return MoveResult{Action: MoveNone}, nil
	}

	switch {
	case destSlot.IsEmpty():
		leftover, err := e.TransferToEmptySlot(dest, destIndex, src, srcIndex, srcSlot.contents())
		if err != nil {
			return MoveResult{}, fmt.Errorf("move by transfer: %w", err)
		}
		if leftover == srcSlot.Amount {
			return MoveResult{Action: MoveTransfer, Leftover: leftover}, nil
		}
		return MoveResult{Action: MoveTransfer, Accepted: true, Moved: srcSlot.Amount - leftover}, nil

	case destSlot.ItemID == srcSlot.ItemID:
		res, err := e.CombineStacks(dest, destIndex, src, srcIndex, srcSlot.Amount)
		if err != nil {
			return MoveResult{}, fmt.Errorf("move by combine: %w", err)
		}
		return MoveResult{Action: MoveCombine, Accepted: res.Moved > 0, Moved: res.Moved, Leftover: res.Leftover}, nil

	default:
		ok, err := e.Swap(dest, destIndex, src, srcIndex)
		if err != nil {
			return MoveResult{}, fmt.Errorf("move by swap: %w", err)
		}
		if !ok {
			return MoveResult{Action: MoveSwap, Leftover: srcSlot.Amount}, nil
		}
		return MoveResult{Action: MoveSwap, Accepted: true, Moved: srcSlot.Amount}, nil
	}
}
