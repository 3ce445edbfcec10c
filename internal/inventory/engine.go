package inventory

import (
	"fmt"
	"log/slog"

	"github.com/osse101/stackgrid/internal/domain"
)

// Catalog resolves item ids to the metadata the engine needs.
type Catalog interface {
	Lookup(itemID string) (domain.ItemMetadata, bool)
}

// Recorder observes engine outcomes. The metrics package provides the
// Prometheus implementation.
type Recorder interface {
	RecordDeposit(itemID string, deposited, leftover int)
	RecordUnknownItem(itemID string)
	RecordSwap(accepted bool)
	RecordCombine(moved int)
	RecordTransfer(accepted bool)
}

type nopRecorder struct{}

func (nopRecorder) RecordDeposit(string, int, int) {}
func (nopRecorder) RecordUnknownItem(string) {}
func (nopRecorder) RecordSwap(bool) {}
func (nopRecorder) RecordCombine(int) {}
func (nopRecorder) RecordTransfer(bool) {}

// DepositResult reports the outcome of DepositByName. Success is false only
// when nothing could be deposited.
type DepositResult struct {
	AmountLeft    int  `json:"amount_left"`
	UsedEmptySlot bool `json:"used_empty_slot"`
	Success       bool `json:"success"`
}

// CombineResult reports how much of a combine request moved.
// Moved + Leftover always equals the requested amount.
type CombineResult struct {
	Moved    int `json:"moved"`
	Leftover int `json:"leftover"`
}

// Engine runs stack transfers against one or two inventories. It keeps no
// state between calls; the caller must hold exclusive access to every
// inventory passed in for the duration of a call.
type Engine struct {
	catalog  Catalog
	log      *slog.Logger
	recorder Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRecorder attaches an outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// NewEngine creates an Engine. A nil catalog is allowed; every item then gets
// default metadata.
func NewEngine(catalog Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:  catalog,
		log:      slog.Default(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// DepositByName adds amount of itemID to inv. Existing stacks of the item are
// topped up first, in index order; the rest goes into empty slots whose
// restriction accepts the item. Whatever does not fit is returned in
// AmountLeft.
func (e *Engine) DepositByName(inv *Inventory, itemID string, amount int) (DepositResult, error) {
	if itemID == "" || itemID == domain.EmptyItemID {
		return DepositResult{AmountLeft: amount}, fmt.Errorf("%w: %q", domain.ErrInvalidItem, itemID)
	}
	if amount <= 0 {
		return DepositResult{AmountLeft: amount}, fmt.Errorf("%w: deposit of %d", domain.ErrInvalidAmount, amount)
	}

	remaining := amount
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		if inv.slots[i].ItemID == itemID {
			remaining = inv.slots[i].AddToStack(remaining)
		}
	}

	usedEmpty := false
	if remaining > 0 {
		var meta domain.ItemMetadata
		resolved := false
		for i := range inv.slots {
			if remaining == 0 {
				break
			}
			s := &inv.slots[i]
			if !s.IsEmpty() {
				continue
			}
			// Metadata is resolved once per call, on the first empty slot.
			if !resolved {
				meta = e.lookup(itemID)
				resolved = true
			}
			if !s.MatchesRestriction(meta.Category) {
				continue
			}
			s.populate(itemID, meta)
			remaining = s.AddToStack(remaining)
			usedEmpty = true
		}
	}

	if remaining > 0 {
		e.log.Debug(LogMsgDepositIncomplete, "item_id", itemID, "requested", amount, "left", remaining)
	}
	e.recorder.RecordDeposit(itemID, amount-remaining, remaining)

	return DepositResult{
		AmountLeft:    remaining,
		UsedEmptySlot: usedEmpty,
		Success:       remaining < amount,
	}, nil
}

// DepositByIndex adds amount straight to the stack at index, ignoring slot
// restrictions. A negative amount withdraws. It returns what did not fit.
func (e *Engine) DepositByIndex(inv *Inventory, index, amount int) (int, error) {
	if err := inv.validateIndex(index); err != nil {
		return 0, err
	}
	s := inv.slot(index)
	if amount > 0 && s.IsEmpty() {
		return amount, fmt.Errorf("%w: slot %d is empty, insert an item first", domain.ErrInvalidItem, index)
	}
	if amount < 0 && -amount > s.Amount {
		return 0, fmt.Errorf("%w: withdraw %d from slot %d holding %d", domain.ErrInsufficientQuantity, -amount, index, s.Amount)
	}
	return s.AddToStack(amount), nil
}

// InsertAt places contents into the empty slot at index when the slot's
// restriction accepts it. The slot keeps its own restriction.
func (e *Engine) InsertAt(inv *Inventory, index int, contents Slot) (bool, error) {
	if err := inv.validateIndex(index); err != nil {
		return false, err
	}
	if err := validateContents(contents); err != nil {
		return false, err
	}
	return e.insert(inv, index, contents), nil
}

func (e *Engine) insert(inv *Inventory, index int, contents Slot) bool {
	s := inv.slot(index)
	if !s.IsEmpty() || !s.MatchesRestriction(contents.Metadata.Category) {
		return false
	}
	s.setContents(contents.contents())
	return true
}

// Swap exchanges the stacks at a[indexA] and b[indexB]. It only happens when
// each item is accepted by the other position's restriction; restrictions
// stay where they are. a and b may be the same inventory.
func (e *Engine) Swap(a *Inventory, indexA int, b *Inventory, indexB int) (bool, error) {
	if err := a.validateIndex(indexA); err != nil {
		return false, err
	}
	if err := b.validateIndex(indexB); err != nil {
		return false, err
	}
	if a == b && indexA == indexB {
		return true, nil
	}

	slotA, slotB := a.slots[indexA], b.slots[indexB]
	if !slotB.MatchesRestriction(slotA.Metadata.Category) || !slotA.MatchesRestriction(slotB.Metadata.Category) {
		e.log.Warn(LogMsgSwapRejected,
			"index_a", indexA, "item_a", slotA.ItemID, "restriction_a", slotA.Restriction,
			"index_b", indexB, "item_b", slotB.ItemID, "restriction_b", slotB.Restriction)
		e.recorder.RecordSwap(false)
		return false, nil
	}

	a.slot(indexA).setContents(slotB.contents())
	b.slot(indexB).setContents(slotA.contents())
	e.recorder.RecordSwap(true)
	return true, nil
}

// CombineStacks moves up to requested units from src[srcIndex] onto the stack
// of the same item at dest[destIndex]. The source is debited only by what the
// destination absorbed.
func (e *Engine) CombineStacks(dest *Inventory, destIndex int, src *Inventory, srcIndex int, requested int) (CombineResult, error) {
	if err := dest.validateIndex(destIndex); err != nil {
		return CombineResult{}, err
	}
	if err := src.validateIndex(srcIndex); err != nil {
		return CombineResult{}, err
	}

	destSlot, srcSlot := dest.slots[destIndex], src.slots[srcIndex]
	if destSlot.ItemID != srcSlot.ItemID {
		e.log.Warn(LogMsgCombineMismatch, "dest_item", destSlot.ItemID, "src_item", srcSlot.ItemID)
		return CombineResult{}, fmt.Errorf("%w: %q and %q", domain.ErrTypeMismatch, destSlot.ItemID, srcSlot.ItemID)
	}
	if requested <= 0 {
		return CombineResult{}, fmt.Errorf("%w: combine of %d", domain.ErrInvalidAmount, requested)
	}
	if dest == src && destIndex == srcIndex {
		return CombineResult{Leftover: requested}, nil
	}
	if srcSlot.IsEmpty() || requested > srcSlot.Amount {
		return CombineResult{}, fmt.Errorf("%w: combine %d from slot %d holding %d", domain.ErrInsufficientQuantity, requested, srcIndex, srcSlot.Amount)
	}
	if !destSlot.MatchesRestriction(srcSlot.Metadata.Category) {
		e.log.Warn(LogMsgCombineRejected, "dest_index", destIndex, "item_id", srcSlot.ItemID, "restriction", destSlot.Restriction)
		e.recorder.RecordCombine(0)
		return CombineResult{Leftover: requested}, nil
	}

	destLeftover := dest.slot(destIndex).AddToStack(requested)
	absorbed := requested - destLeftover
	if absorbed > 0 {
		src.slot(srcIndex).AddToStack(-absorbed)
	}

	e.recorder.RecordCombine(absorbed)
	return CombineResult{Moved: absorbed, Leftover: destLeftover}, nil
}

// TransferToEmptySlot moves snapshot into the empty slot dest[destIndex] and
// debits src[srcIndex] by snapshot.Amount. When the destination restriction
// rejects the item nothing changes and the full amount is returned as leftover.
func (e *Engine) TransferToEmptySlot(dest *Inventory, destIndex int, src *Inventory, srcIndex int, snapshot Slot) (int, error) {
	if err := dest.validateIndex(destIndex); err != nil {
		return 0, err
	}
	if err := src.validateIndex(srcIndex); err != nil {
		return 0, err
	}
	if err := validateContents(snapshot); err != nil {
		return 0, err
	}

	destSlot := dest.slots[destIndex]
	if !destSlot.IsEmpty() {
		e.log.Warn(LogMsgTransferNotEmpty, "dest_index", destIndex, "dest_item", destSlot.ItemID)
		return 0, fmt.Errorf("%w: slot %d holds %q", domain.ErrDestinationNotEmpty, destIndex, destSlot.ItemID)
	}
	if !destSlot.MatchesRestriction(snapshot.Metadata.Category) {
		e.log.Warn(LogMsgTransferRejected, "dest_index", destIndex, "item_id", snapshot.ItemID,
			"category", snapshot.Metadata.Category, "restriction", destSlot.Restriction)
		e.recorder.RecordTransfer(false)
		return snapshot.Amount, nil
	}

	srcSlot := src.slots[srcIndex]
	if srcSlot.ItemID != snapshot.ItemID || srcSlot.Amount < snapshot.Amount {
		return 0, fmt.Errorf("%w: slot %d holds %d of %q, transfer wants %d of %q",
			domain.ErrInsufficientQuantity, srcIndex, srcSlot.Amount, srcSlot.ItemID, snapshot.Amount, snapshot.ItemID)
	}

	e.insert(dest, destIndex, snapshot)
	leftover := src.slot(srcIndex).AddToStack(-snapshot.Amount)
	e.recorder.RecordTransfer(true)
	return leftover, nil
}

// SplitStack moves amount units from inv[srcIndex] into the empty slot
// inv[destIndex]. It reports false when the destination restriction refuses
// the item.
func (e *Engine) SplitStack(inv *Inventory, srcIndex, destIndex, amount int) (bool, error) {
	if err := inv.validateIndex(srcIndex); err != nil {
		return false, err
	}
	if amount <= 0 {
		return false, fmt.Errorf("%w: split of %d", domain.ErrInvalidAmount, amount)
	}
	src := inv.slots[srcIndex]
	if src.IsEmpty() || amount > src.Amount {
		return false, fmt.Errorf("%w: split %d from slot %d holding %d", domain.ErrInsufficientQuantity, amount, srcIndex, src.Amount)
	}

	part := src.contents()
	part.Amount = amount
	leftover, err := e.TransferToEmptySlot(inv, destIndex, inv, srcIndex, part)
	if err != nil {
		return false, err
	}
	return leftover == 0, nil
}

func (e *Engine) lookup(itemID string) domain.ItemMetadata {
	if e.catalog == nil {
		e.log.Warn(LogMsgNoCatalog, "item_id", itemID)
		e.recorder.RecordUnknownItem(itemID)
		return domain.DefaultItemMetadata()
	}

	meta, ok := e.catalog.Lookup(itemID)
	if !ok {
		e.log.Warn(LogMsgUnknownItem, "item_id", itemID)
		e.recorder.RecordUnknownItem(itemID)
		return domain.DefaultItemMetadata()
	}
	if meta.MaxStack <= 0 {
		e.log.Warn(LogMsgInvalidMaxStack, "item_id", itemID, "max_stack", meta.MaxStack)
		meta.MaxStack = domain.DefaultMaxStack
	}
	return meta
}

func validateContents(c Slot) error {
	if c.IsEmpty() || c.ItemID == "" {
		return fmt.Errorf("%w: %q", domain.ErrInvalidItem, c.ItemID)
	}
	if c.Amount <= 0 || c.Amount > c.Metadata.MaxStack {
		return fmt.Errorf("%w: %d of %q with max stack %d", domain.ErrInvalidAmount, c.Amount, c.ItemID, c.Metadata.MaxStack)
	}
	return nil
}
