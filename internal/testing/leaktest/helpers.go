// Package leaktest holds test helpers that catch goroutines and memory left
// behind by the code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	waitTimeout  = 500 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines are still running
// above the baseline once a short grace period has passed.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := waitForCount(g.before+tolerance, waitTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// MemoryChecker compares heap allocation against a baseline
type MemoryChecker struct {
	before uint64
	t      testing.TB
}

// NewMemoryChecker records the live heap after a GC as the baseline
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{before: liveHeap(), t: t}
}

// Check fails the test when the live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	after := liveHeap()
	growthMB := (float64(after) - float64(m.before)) / 1024 / 1024
	if growthMB > maxGrowthMB {
		m.t.Errorf("memory growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			float64(m.before)/1024/1024, float64(after)/1024/1024, growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails if the live heap grows past maxGrowthMB
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}

// waitForCount polls until at most target goroutines run or timeout passes,
// and returns the last count seen.
func waitForCount(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
