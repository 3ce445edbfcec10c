package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/stackgrid/internal/testing/leaktest"
)

func TestEngine_RepeatedCyclesDoNotGrowHeap(t *testing.T) {
	e := newTestEngine()
	a := newTestInventory(t, 5, 5)
	b := newTestInventory(t, 5, 5)

	leaktest.CheckNoMemoryLeak(t, 1.0, func() {
		for i := 0; i < 10000; i++ {
			_, err := e.DepositByName(a, "wood", 100)
			require.NoError(t, err)
			_, err = e.MoveSlot(b, i%25, a, 0)
			require.NoError(t, err)
			_, err = e.Swap(a, 1, b, i%25)
			require.NoError(t, err)
			for j := 0; j < a.Len(); j++ {
				if s := a.slots[j]; !s.IsEmpty() {
					_, err = e.DepositByIndex(a, j, -s.Amount)
					require.NoError(t, err)
				}
				if s := b.slots[j]; !s.IsEmpty() {
					_, err = e.DepositByIndex(b, j, -s.Amount)
					require.NoError(t, err)
				}
			}
		}
	})

	require.Equal(t, 0, a.Total()+b.Total())
}
