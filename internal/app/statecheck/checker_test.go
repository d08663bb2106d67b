package statecheck

import (
	"testing"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/grid"
)

type stubRegistry struct {
	built      map[grid.Cell]ports.Structure
	planned    map[grid.Cell]grid.StructureCategory
	inProgress map[grid.Cell]grid.StructureCategory
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{
		built:      map[grid.Cell]ports.Structure{},
		planned:    map[grid.Cell]grid.StructureCategory{},
		inProgress: map[grid.Cell]grid.StructureCategory{},
	}
}

func (r *stubRegistry) Structures() []ports.Structure {
	out := make([]ports.Structure, 0, len(r.built))
	for _, s := range r.built {
		out = append(out, s)
	}
	return out
}

func (r *stubRegistry) BuiltAt(c grid.Cell) (ports.Structure, bool) {
	s, ok := r.built[c]
	return s, ok
}

func (r *stubRegistry) PlannedAt(c grid.Cell) (grid.StructureCategory, bool) {
	cat, ok := r.planned[c]
	return cat, ok
}

func (r *stubRegistry) InProgressAt(c grid.Cell) (grid.StructureCategory, bool) {
	cat, ok := r.inProgress[c]
	return cat, ok
}

func TestOccupancyClassificationOrder(t *testing.T) {
	reg := newStubRegistry()
	cell := grid.Cell{X: 1, Z: 1}
	// All three markers on one cell: Built wins, then InProgress, then Planned.
	reg.built[cell] = ports.Structure{ID: "w1", Category: grid.CategoryWall}
	reg.inProgress[cell] = grid.CategoryWall
	reg.planned[cell] = grid.CategoryWall

	chk := Checker{Structures: reg}
	if occ := chk.OccupancyAt(cell); occ.State != grid.OccupancyBuilt {
		t.Fatalf("built should win, got %s", occ.State)
	}
	delete(reg.built, cell)
	if occ := chk.OccupancyAt(cell); occ.State != grid.OccupancyInProgress {
		t.Fatalf("in-progress should win over planned, got %s", occ.State)
	}
	delete(reg.inProgress, cell)
	if occ := chk.OccupancyAt(cell); occ.State != grid.OccupancyPlanned {
		t.Fatalf("planned should win over empty, got %s", occ.State)
	}
	delete(reg.planned, cell)
	if occ := chk.OccupancyAt(cell); occ.State != grid.OccupancyEmpty || occ.Occupied() {
		t.Fatalf("expected empty, got %s", occ.State)
	}
}

func TestCountStatesTallies(t *testing.T) {
	reg := newStubRegistry()
	cells := make([]grid.Cell, 0, 10)
	for i := 0; i < 10; i++ {
		cells = append(cells, grid.Cell{X: i, Z: 0})
	}
	for i := 0; i < 9; i++ {
		reg.built[cells[i]] = ports.Structure{Category: grid.CategoryWall}
	}

	chk := Checker{Structures: reg}
	count := chk.CountStates(cells, grid.CategoryWall)
	if count.Built != 9 || count.Empty != 1 {
		t.Fatalf("expected 9 built / 1 empty, got %+v", count)
	}
	if got := count.CompletionPercent(); got != 0.9 {
		t.Fatalf("expected completion 0.9, got %v", got)
	}
}

func TestCountStatesIgnoresOtherCategories(t *testing.T) {
	reg := newStubRegistry()
	cell := grid.Cell{X: 0, Z: 0}
	reg.built[cell] = ports.Structure{Category: grid.CategoryDoor}

	chk := Checker{Structures: reg}
	count := chk.CountStates([]grid.Cell{cell}, grid.CategoryWall)
	if count.Built != 0 || count.Empty != 1 {
		t.Fatalf("door cell should not count as built wall: %+v", count)
	}
}
