package memworld

import (
	"context"
	"testing"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
)

func TestCanReachAroundObstacles(t *testing.T) {
	w := New(10, 10)
	from := grid.Cell{X: 0, Z: 5}
	to := grid.Cell{X: 9, Z: 5}
	if !w.CanReach(from, to) {
		t.Fatal("open map should be fully reachable")
	}

	// a rock wall across the map, except one gap
	for z := 0; z < 10; z++ {
		if z == 8 {
			continue
		}
		w.PatchTile(grid.Cell{X: 5, Z: z}, func(tile *grid.TileInfo) {
			tile.Kind = grid.TerrainRock
			tile.Standable = false
		})
	}
	if !w.CanReach(from, to) {
		t.Fatal("path through the gap should be found")
	}

	w.PatchTile(grid.Cell{X: 5, Z: 8}, func(tile *grid.TileInfo) {
		tile.Kind = grid.TerrainRock
		tile.Standable = false
	})
	if w.CanReach(from, to) {
		t.Fatal("sealed wall should split the map")
	}
}

func TestBuiltStructuresBlockExceptDoors(t *testing.T) {
	w := New(10, 10)
	from := grid.Cell{X: 0, Z: 5}
	to := grid.Cell{X: 9, Z: 5}

	for z := 0; z < 10; z++ {
		w.MarkPlanned(grid.Cell{X: 5, Z: z}, grid.CategoryWall)
		w.StartBuild(grid.Cell{X: 5, Z: z})
		w.FinishCell(grid.Cell{X: 5, Z: z})
	}
	if w.CanReach(from, to) {
		t.Fatal("built wall should block")
	}

	// swap one wall segment for a door
	delete(w.builtIndex, grid.Cell{X: 5, Z: 5})
	if _, err := w.PlaceBuilt("door", grid.Cell{X: 5, Z: 5}, grid.OrientNorth); err != nil {
		t.Fatalf("place door: %v", err)
	}
	if !w.CanReach(from, to) {
		t.Fatal("doors are passable")
	}
}

func TestPlacePlanMarksFootprint(t *testing.T) {
	w := New(10, 10)
	err := w.PlacePlan(context.Background(), ports.PlacementRequest{
		BuildingType: "storehouse",
		Cell:         grid.Cell{X: 2, Z: 2},
		Orientation:  grid.OrientEast,
	})
	if err != nil {
		t.Fatalf("place plan: %v", err)
	}
	// 4x3 rotated east: 3 wide, 4 deep
	marked := 0
	for x := 0; x < 10; x++ {
		for z := 0; z < 10; z++ {
			if _, ok := w.PlannedAt(grid.Cell{X: x, Z: z}); ok {
				marked++
			}
		}
	}
	if marked != 12 {
		t.Fatalf("expected 12 planned cells, got %d", marked)
	}
	if _, ok := w.PlannedAt(grid.Cell{X: 4, Z: 5}); !ok {
		t.Fatal("rotated footprint corner missing")
	}
}

func TestSelectMaterialPrefersAbundantNonPrecious(t *testing.T) {
	w := New(4, 4)
	w.SetResource("gold", 500)
	w.SetResource("wood", 80)
	w.SetResource("stone", 120)

	d, _ := catalog.Descriptor("wall")
	material, err := w.SelectMaterial(d)
	if err != nil {
		t.Fatalf("select material: %v", err)
	}
	if material != "stone" {
		t.Fatalf("expected stone, got %q", material)
	}

	w.SetResource("stone", 0)
	w.SetResource("wood", 0)
	if _, err := w.SelectMaterial(d); err != ErrNoMaterial {
		t.Fatalf("expected ErrNoMaterial with only precious stock, got %v", err)
	}

	farm, _ := catalog.Descriptor("farm_plot")
	material, err = w.SelectMaterial(farm)
	if err != nil || material != "" {
		t.Fatalf("material-free building should select nothing, got %q err=%v", material, err)
	}
}

func TestNewDemoIsDeterministic(t *testing.T) {
	a := NewDemo(7, 48, 48)
	b := NewDemo(7, 48, 48)
	for x := 0; x < 48; x++ {
		for z := 0; z < 48; z++ {
			c := grid.Cell{X: x, Z: z}
			ta, _ := a.TileAt(c)
			tb, _ := b.TileAt(c)
			if ta != tb {
				t.Fatalf("tile %v differs between equal seeds", c)
			}
		}
	}
	if a.FriendlyCount() != 3 {
		t.Fatalf("expected 3 colonists, got %d", a.FriendlyCount())
	}
	if !a.IsUnlocked("smithing") || a.IsUnlocked("electricity") {
		t.Fatal("unexpected demo tech unlocks")
	}
}
