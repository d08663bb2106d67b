package locate

import (
	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"
)

type rejectionEntry struct {
	lastTick int64
	count    int
	reason   string
}

// RejectionCache memoizes failed placement attempts per (building type,
// cell) so the finder does not re-validate hopeless spots every tick. It
// never suppresses a first attempt.
type RejectionCache struct {
	entries map[string]map[grid.Cell]*rejectionEntry
}

func NewRejectionCache() *RejectionCache {
	return &RejectionCache{entries: map[string]map[grid.Cell]*rejectionEntry{}}
}

// ShouldSkip reports whether a cell is still under cooldown. An entry that
// reached the attempt threshold is rejected for the remainder of the
// cooldown window; any entry short-circuits re-attempts made immediately
// after the last failure.
func (c *RejectionCache) ShouldSkip(buildingType string, cell grid.Cell, nowTick int64) (string, bool) {
	e := c.lookup(buildingType, cell)
	if e == nil {
		return "", false
	}
	age := nowTick - e.lastTick
	if age >= planning.RejectionCooldownTicks {
		// aged out, treated as absent
		return "", false
	}
	if e.count >= planning.RejectionMaxAttempts {
		return e.reason, true
	}
	if age < planning.RejectionShortRetryTicks {
		return e.reason, true
	}
	return "", false
}

func (c *RejectionCache) RecordFailure(buildingType string, cell grid.Cell, nowTick int64, reason string) {
	byCell, ok := c.entries[buildingType]
	if !ok {
		byCell = map[grid.Cell]*rejectionEntry{}
		c.entries[buildingType] = byCell
	}
	e, ok := byCell[cell]
	if !ok || nowTick-e.lastTick >= planning.RejectionCooldownTicks {
		byCell[cell] = &rejectionEntry{lastTick: nowTick, count: 1, reason: reason}
		return
	}
	e.lastTick = nowTick
	e.count++
	e.reason = reason
}

// Prune drops entries whose cooldown window has fully elapsed.
func (c *RejectionCache) Prune(nowTick int64) {
	for buildingType, byCell := range c.entries {
		for cell, e := range byCell {
			if nowTick-e.lastTick >= planning.RejectionCooldownTicks {
				delete(byCell, cell)
			}
		}
		if len(byCell) == 0 {
			delete(c.entries, buildingType)
		}
	}
}

func (c *RejectionCache) Len() int {
	n := 0
	for _, byCell := range c.entries {
		n += len(byCell)
	}
	return n
}

func (c *RejectionCache) lookup(buildingType string, cell grid.Cell) *rejectionEntry {
	byCell, ok := c.entries[buildingType]
	if !ok {
		return nil
	}
	return byCell[cell]
}
