package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/stackgrid/internal/concurrency"
	"github.com/osse101/stackgrid/internal/domain"
	"github.com/osse101/stackgrid/internal/inventory"
)

// Entry is a registered inventory
type Entry struct {
	ID        string
	Inventory *inventory.Inventory
	CreatedAt time.Time
}

// Store keeps live inventories in a bounded LRU. Inventories idle for longer
// than the TTL, or pushed out by newer ones, are dropped.
//
// Inventories themselves are not safe for concurrent use; callers go through
// WithInventory or WithPair, which hold the per-id locks for them.
type Store struct {
	lru   *expirable.LRU[string, *Entry]
	locks *concurrency.LockManager
}

// New creates a store holding at most size inventories
func New(size int, ttl time.Duration) *Store {
	s := &Store{locks: concurrency.NewLockManager()}
	s.lru = expirable.NewLRU[string, *Entry](size, s.onEvict, ttl)
	return s
}

func (s *Store) onEvict(id string, _ *Entry) {
	slog.Debug(LogMsgInventoryEvicted, "inventory_id", id)
	s.locks.Forget(id)
}

// Create registers a new empty inventory
func (s *Store) Create(rows, cols int) (*Entry, error) {
	inv, err := inventory.New(rows, cols)
	if err != nil {
		return nil, err
	}

	e := &Entry{ID: uuid.NewString(), Inventory: inv, CreatedAt: time.Now()}
	s.lru.Add(e.ID, e)
	return e, nil
}

// Get returns the entry for id and resets its idle timer
func (s *Store) Get(id string) (*Entry, error) {
	e, ok := s.lru.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInventoryNotFound, id)
	}
	// Re-adding refreshes the expiry; Get alone does not.
	s.lru.Add(id, e)
	return e, nil
}

// Delete removes an inventory. It reports whether one was present.
func (s *Store) Delete(id string) bool {
	return s.lru.Remove(id)
}

// Len is the number of live inventories
func (s *Store) Len() int {
	return s.lru.Len()
}

// WithInventory runs fn while holding the lock for id
func (s *Store) WithInventory(id string, fn func(inv *inventory.Inventory) error) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	e, err := s.Get(id)
	if err != nil {
		return err
	}
	return fn(e.Inventory)
}

// WithPair runs fn while holding the locks for both ids. When the ids are
// equal fn receives the same inventory twice.
func (s *Store) WithPair(idA, idB string, fn func(a, b *inventory.Inventory) error) error {
	unlock := s.locks.LockPair(idA, idB)
	defer unlock()

	a, err := s.Get(idA)
	if err != nil {
		return err
	}
	b, err := s.Get(idB)
	if err != nil {
		return err
	}
	return fn(a.Inventory, b.Inventory)
}
