package inventory

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/stackgrid/internal/domain"
)

type staticCatalog map[string]domain.ItemMetadata

func (c staticCatalog) Lookup(itemID string) (domain.ItemMetadata, bool) {
	meta, ok := c[itemID]
	return meta, ok
}

func testCatalog() staticCatalog {
	return staticCatalog{
		"wood":   {MaxStack: 64, Category: domain.CategoryResource},
		"stone":  {MaxStack: 16, Category: domain.CategoryResource},
		"helmet": {MaxStack: 1, Category: domain.CategoryHeadgear},
		"boots":  {MaxStack: 1, Category: domain.CategoryFootgear},
		"torch":  {MaxStack: 8, Category: domain.CategoryNone},
	}
}

// MockCatalog is a mock implementation of the Catalog interface
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Lookup(itemID string) (domain.ItemMetadata, bool) {
	args := m.Called(itemID)
	return args.Get(0).(domain.ItemMetadata), args.Bool(1)
}

// spyRecorder counts engine outcomes
type spyRecorder struct {
	deposited   int
	leftover    int
	unknown     []string
	swapsOK     int
	swapsDenied int
	combined    int
	transfers   map[bool]int
}

func newSpyRecorder() *spyRecorder {
	return &spyRecorder{transfers: make(map[bool]int)}
}

func (r *spyRecorder) RecordDeposit(_ string, deposited, leftover int) {
	r.deposited += deposited
	r.leftover += leftover
}

func (r *spyRecorder) RecordUnknownItem(itemID string) { r.unknown = append(r.unknown, itemID) }

func (r *spyRecorder) RecordSwap(accepted bool) {
	if accepted {
		r.swapsOK++
	} else {
		r.swapsDenied++
	}
}

func (r *spyRecorder) RecordCombine(moved int) { r.combined += moved }

func (r *spyRecorder) RecordTransfer(accepted bool) { r.transfers[accepted]++ }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return NewEngine(testCatalog(), opts...)
}

func newTestInventory(t *testing.T, rows, cols int) *Inventory {
	t.Helper()
	inv, err := New(rows, cols)
	require.NoError(t, err)
	return inv
}

// put writes a stack straight into a slot, keeping the slot's restriction.
func put(t *testing.T, inv *Inventory, index int, itemID string, amount int) {
	t.Helper()
	meta, ok := testCatalog().Lookup(itemID)
	require.True(t, ok, "unknown test item %s", itemID)
	inv.slot(index).setContents(Slot{ItemID: itemID, Amount: amount, Metadata: meta})
}

func restrict(t *testing.T, inv *Inventory, index int, category domain.ItemCategory) {
	t.Helper()
	require.NoError(t, inv.SetRestriction(index, category))
}

func slotAt(t *testing.T, inv *Inventory, index int) Slot {
	t.Helper()
	s, err := inv.Slot(index)
	require.NoError(t, err)
	return s
}
