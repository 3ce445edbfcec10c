package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/stackgrid/internal/domain"
	"github.com/osse101/stackgrid/internal/inventory"
)

func TestStore_CreateGetDelete(t *testing.T) {
	s := New(10, time.Minute)

	e, err := s.Create(2, 3)
	require.NoError(t, err)
	_, err = uuid.Parse(e.ID)
	assert.NoError(t, err)
	assert.Equal(t, 6, e.Inventory.Len())
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(e.ID)
	require.NoError(t, err)
	assert.Same(t, e, got)

	assert.True(t, s.Delete(e.ID))
	assert.False(t, s.Delete(e.ID))

	_, err = s.Get(e.ID)
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestStore_CreateRejectsBadDimensions(t *testing.T) {
	s := New(10, time.Minute)

	_, err := s.Create(0, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
	assert.Equal(t, 0, s.Len())
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s := New(2, time.Minute)

	first, err := s.Create(1, 1)
	require.NoError(t, err)
	second, err := s.Create(1, 1)
	require.NoError(t, err)

	// touching first makes second the eviction candidate
	_, err = s.Get(first.ID)
	require.NoError(t, err)

	_, err = s.Create(1, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	_, err = s.Get(first.ID)
	assert.NoError(t, err)
	_, err = s.Get(second.ID)
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestStore_ExpiresIdleInventories(t *testing.T) {
	s := New(10, 50*time.Millisecond)

	e, err := s.Create(1, 1)
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	_, err = s.Get(e.ID)
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestStore_WithInventory(t *testing.T) {
	s := New(10, time.Minute)
	e, err := s.Create(1, 2)
	require.NoError(t, err)

	engine := inventory.NewEngine(nil)
	err = s.WithInventory(e.ID, func(inv *inventory.Inventory) error {
		_, err := engine.DepositByName(inv, "wood", 10)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 10, e.Inventory.CountItem("wood"))

	sentinel := errors.New("boom")
	assert.ErrorIs(t, s.WithInventory(e.ID, func(*inventory.Inventory) error { return sentinel }), sentinel)

	err = s.WithInventory("missing", func(*inventory.Inventory) error {
		t.Fatal("callback must not run for a missing inventory")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestStore_WithPair(t *testing.T) {
	s := New(10, time.Minute)
	a, err := s.Create(1, 1)
	require.NoError(t, err)
	b, err := s.Create(1, 1)
	require.NoError(t, err)

	t.Run("distinct inventories", func(t *testing.T) {
		err := s.WithPair(a.ID, b.ID, func(x, y *inventory.Inventory) error {
			assert.Same(t, a.Inventory, x)
			assert.Same(t, b.Inventory, y)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("same inventory", func(t *testing.T) {
		err := s.WithPair(a.ID, a.ID, func(x, y *inventory.Inventory) error {
			assert.Same(t, x, y)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("missing side", func(t *testing.T) {
		err := s.WithPair(a.ID, "missing", func(x, y *inventory.Inventory) error { return nil })
		assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
	})
}

func TestStore_ConcurrentCrossTransfers(t *testing.T) {
	s := New(10, time.Minute)
	a, err := s.Create(1, 4)
	require.NoError(t, err)
	b, err := s.Create(1, 4)
	require.NoError(t, err)
	engine := inventory.NewEngine(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.WithPair(a.ID, b.ID, func(x, y *inventory.Inventory) error {
				_, err := engine.Swap(x, 0, y, 0)
				return err
			})
		}()
		go func() {
			defer wg.Done()
			_ = s.WithInventory(b.ID, func(inv *inventory.Inventory) error {
				_, err := engine.DepositByName(inv, "stone", 1)
				return err
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, a.Inventory.CountItem("stone")+b.Inventory.CountItem("stone"))
}
