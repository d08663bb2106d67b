package locate

import (
	"testing"

	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"
)

func TestCacheNeverSuppressesFirstAttempt(t *testing.T) {
	c := NewRejectionCache()
	if _, skip := c.ShouldSkip("hut", grid.Cell{X: 4, Z: 4}, 1000); skip {
		t.Fatal("cell with no recorded failure must not be skipped")
	}
}

func TestCacheShortRetryWindow(t *testing.T) {
	c := NewRejectionCache()
	cell := grid.Cell{X: 4, Z: 4}
	c.RecordFailure("hut", cell, 0, "occupied")

	if reason, skip := c.ShouldSkip("hut", cell, planning.RejectionShortRetryTicks-1); !skip || reason != "occupied" {
		t.Fatalf("fresh failure should skip inside the short-retry window, got skip=%v reason=%q", skip, reason)
	}
	if _, skip := c.ShouldSkip("hut", cell, planning.RejectionShortRetryTicks); skip {
		t.Fatal("single failure should allow a retry once the short window passes")
	}
}

func TestCacheLocksOutAfterRepeatedFailures(t *testing.T) {
	c := NewRejectionCache()
	cell := grid.Cell{X: 4, Z: 4}
	// three failures, each spaced past the short-retry window
	ticks := []int64{0, 200, 400}
	for _, tick := range ticks {
		if _, skip := c.ShouldSkip("hut", cell, tick); skip {
			t.Fatalf("tick %d attempt should not have been suppressed", tick)
		}
		c.RecordFailure("hut", cell, tick, "unreachable")
	}

	if _, skip := c.ShouldSkip("hut", cell, 600); !skip {
		t.Fatal("cell at the attempt threshold must be skipped for the rest of the cooldown")
	}
	if _, skip := c.ShouldSkip("hut", cell, 400+planning.RejectionCooldownTicks); skip {
		t.Fatal("lockout must age out after the full cooldown")
	}
}

func TestCacheIsKeyedByBuildingType(t *testing.T) {
	c := NewRejectionCache()
	cell := grid.Cell{X: 4, Z: 4}
	for _, tick := range []int64{0, 200, 400} {
		c.RecordFailure("turret", cell, tick, "no power")
	}
	if _, skip := c.ShouldSkip("turret", cell, 500); !skip {
		t.Fatal("turret should be locked out at this cell")
	}
	if _, skip := c.ShouldSkip("farm_plot", cell, 500); skip {
		t.Fatal("a different building type is a different cache entry")
	}
}

func TestCacheAgedFailureResetsCount(t *testing.T) {
	c := NewRejectionCache()
	cell := grid.Cell{X: 4, Z: 4}
	c.RecordFailure("hut", cell, 0, "occupied")
	c.RecordFailure("hut", cell, 200, "occupied")
	// past the cooldown: counts as a fresh first failure
	c.RecordFailure("hut", cell, 200+planning.RejectionCooldownTicks, "occupied")
	c.RecordFailure("hut", cell, 400+planning.RejectionCooldownTicks, "occupied")

	if _, skip := c.ShouldSkip("hut", cell, 600+planning.RejectionCooldownTicks); skip {
		t.Fatal("count should have reset after the cooldown, two failures is below the threshold")
	}
}

func TestCachePrune(t *testing.T) {
	c := NewRejectionCache()
	c.RecordFailure("hut", grid.Cell{X: 1, Z: 1}, 0, "occupied")
	c.RecordFailure("hut", grid.Cell{X: 2, Z: 2}, 1000, "occupied")
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	c.Prune(planning.RejectionCooldownTicks)
	if c.Len() != 1 {
		t.Fatalf("expected the tick-0 entry pruned, got %d entries", c.Len())
	}
}
