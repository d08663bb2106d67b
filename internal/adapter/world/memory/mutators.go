package memworld

import (
	"fmt"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
)

// Mutators used by tests and the demo generator; the planner itself only
// mutates the world through PlacePlan.

func (w *World) SetTile(c grid.Cell, tile grid.TileInfo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tiles[c] = tile
}

func (w *World) PatchTile(c grid.Cell, patch func(*grid.TileInfo)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	tile := w.tiles[c]
	patch(&tile)
	w.tiles[c] = tile
}

func (w *World) AddHomeZone(min, max grid.Cell) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.homeZones = append(w.homeZones, homeZone{min: min, max: max})
}

func (w *World) AddHazard(c grid.Cell) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hazards = append(w.hazards, c)
}

func (w *World) AddAgent(a ports.Agent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.agents = append(w.agents, a)
}

func (w *World) SetResource(material string, count int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resources[material] = count
}

func (w *World) Unlock(tech string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.unlocked[tech] = true
}

// PlaceBuilt registers a finished structure of the given type and marks its
// footprint as built.
func (w *World) PlaceBuilt(buildingType string, origin grid.Cell, o grid.Orientation) (ports.Structure, error) {
	d, ok := catalog.Descriptor(buildingType)
	if !ok {
		return ports.Structure{}, fmt.Errorf("unknown building type %q", buildingType)
	}
	fw, fd := grid.RotatedSize(d.Width, d.Depth, o)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	s := ports.Structure{
		ID:       fmt.Sprintf("s%d", w.nextID),
		Type:     d.Type,
		Category: d.Category,
		Role:     d.Role,
		Origin:   origin,
		Width:    fw,
		Depth:    fd,
		Owned:    true,
	}
	w.structures[s.ID] = s
	for _, cell := range grid.FootprintCells(origin, d.Width, d.Depth, o) {
		w.builtIndex[cell] = s.ID
		delete(w.planned, cell)
		delete(w.inProgress, cell)
	}
	return s, nil
}

func (w *World) MarkPlanned(c grid.Cell, cat grid.StructureCategory) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.planned[c] = cat
}

// StartBuild promotes a planned marker to in-progress.
func (w *World) StartBuild(c grid.Cell) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if cat, ok := w.planned[c]; ok {
		delete(w.planned, c)
		w.inProgress[c] = cat
	}
}

// FinishCell turns a pending marker at the cell into a 1x1 built structure.
func (w *World) FinishCell(c grid.Cell) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cat, ok := w.inProgress[c]
	if !ok {
		if cat, ok = w.planned[c]; !ok {
			return
		}
		delete(w.planned, c)
	} else {
		delete(w.inProgress, c)
	}
	w.nextID++
	s := ports.Structure{
		ID:       fmt.Sprintf("s%d", w.nextID),
		Type:     string(cat),
		Category: cat,
		Role:     catalog.RoleGeneral,
		Origin:   c,
		Width:    1,
		Depth:    1,
		Owned:    true,
	}
	w.structures[s.ID] = s
	w.builtIndex[c] = s.ID
}
