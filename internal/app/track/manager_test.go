package track

import (
	"context"
	"testing"

	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"
)

// scriptedCounter returns a fixed WallStateCount per call, advancing
// through the script and holding the last entry.
type scriptedCounter struct {
	script []planning.WallStateCount
	calls  int
}

func (c *scriptedCounter) CountStates([]grid.Cell, grid.StructureCategory) planning.WallStateCount {
	i := c.calls
	if i >= len(c.script) {
		i = len(c.script) - 1
	}
	c.calls++
	return c.script[i]
}

func testPlan() planning.ConstructionPlan {
	return planning.NewRoomPlan(grid.Cell{X: 0, Z: 0}, 4, 4, "bedroom")
}

func TestStageSequenceIsMonotonicAndNonSkipping(t *testing.T) {
	counter := &scriptedCounter{script: []planning.WallStateCount{
		{Empty: 10},
		{Planned: 10},
		{Built: 9, Empty: 1},
		{Built: 10},
		{Built: 10},
	}}
	m := NewManager(counter)
	ctx := context.Background()
	state := m.Track(ctx, testPlan(), 0)

	order := []planning.Stage{planning.StagePlanned}
	tick := int64(0)
	for i := 0; i < 10; i++ {
		tick += planning.MonitorIntervalTicks
		for _, tr := range m.Update(ctx, tick) {
			if tr.From != order[len(order)-1] {
				t.Fatalf("transition from %s but last observed stage was %s", tr.From, order[len(order)-1])
			}
			if tr.To != tr.From.Next() {
				t.Fatalf("skipped a stage: %s -> %s", tr.From, tr.To)
			}
			order = append(order, tr.To)
		}
		if i == 5 {
			if err := m.MarkSecondaryFurniture(state.ID); err != nil {
				t.Fatalf("mark secondary: %v", err)
			}
		}
	}
	want := []planning.Stage{
		planning.StagePlanned,
		planning.StageWallsBuilding,
		planning.StageWallsComplete,
		planning.StageFurnishing,
		planning.StageComplete,
	}
	if len(order) != len(want) {
		t.Fatalf("observed stages %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("observed stages %v, want %v", order, want)
		}
	}
}

func TestWallsCompleteAtEightyPercent(t *testing.T) {
	// 9 built of 10 wall cells: 0.9 crosses the 0.8 threshold.
	counter := &scriptedCounter{script: []planning.WallStateCount{
		{InProgress: 10},
		{Built: 9, Empty: 1},
	}}
	m := NewManager(counter)
	ctx := context.Background()
	m.Track(ctx, testPlan(), 0)

	trs := m.Update(ctx, planning.MonitorIntervalTicks)
	if len(trs) != 1 || trs[0].To != planning.StageWallsBuilding {
		t.Fatalf("expected Planned->WallsBuilding, got %v", trs)
	}
	trs = m.Update(ctx, 2*planning.MonitorIntervalTicks)
	if len(trs) != 1 || trs[0].To != planning.StageWallsComplete {
		t.Fatalf("expected WallsBuilding->WallsComplete at 0.9, got %v", trs)
	}
	if trs[0].Completion != 0.9 {
		t.Fatalf("expected completion 0.9, got %v", trs[0].Completion)
	}
}

func TestUpdateThrottledByTick(t *testing.T) {
	counter := &scriptedCounter{script: []planning.WallStateCount{{Planned: 10}}}
	m := NewManager(counter)
	ctx := context.Background()
	m.Track(ctx, testPlan(), 0)

	m.Update(ctx, 100)
	calls := counter.calls
	m.Update(ctx, 100+planning.MonitorIntervalTicks-1)
	if counter.calls != calls {
		t.Fatal("update within the monitor interval should be a no-op")
	}
	m.Update(ctx, 100+planning.MonitorIntervalTicks)
	if counter.calls == calls {
		t.Fatal("update after the monitor interval should run")
	}
}

func TestCompletedRoomPrunedAfterGrace(t *testing.T) {
	counter := &scriptedCounter{script: []planning.WallStateCount{{Built: 10}}}
	m := NewManager(counter)
	ctx := context.Background()
	state := m.Track(ctx, testPlan(), 0)
	if err := m.MarkSecondaryFurniture(state.ID); err != nil {
		t.Fatalf("mark secondary: %v", err)
	}

	tick := int64(0)
	for i := 0; i < 8; i++ {
		tick += planning.MonitorIntervalTicks
		m.Update(ctx, tick)
	}
	got, ok := m.Get(state.ID)
	if !ok || got.Stage != planning.StageComplete {
		t.Fatalf("room should be complete and retained, got %v ok=%v", got.Stage, ok)
	}

	m.Update(ctx, tick+planning.CompletedGraceTicks)
	if _, ok := m.Get(state.ID); ok {
		t.Fatal("room should be pruned after the grace period")
	}
}

func TestFurnitureReadiness(t *testing.T) {
	counter := &scriptedCounter{script: []planning.WallStateCount{{InProgress: 5, Planned: 5}}}
	m := NewManager(counter)
	ctx := context.Background()
	state := m.Track(ctx, testPlan(), 0)

	if state.ReadyForCriticalFurniture() {
		t.Fatal("planned room is not ready for critical furniture")
	}
	m.Update(ctx, planning.MonitorIntervalTicks)
	got, _ := m.Get(state.ID)
	if !got.ReadyForCriticalFurniture() {
		t.Fatal("walls-building room should accept critical furniture")
	}
	if got.ReadyForSecondaryFurniture() {
		t.Fatal("secondary furniture needs complete walls")
	}
}
