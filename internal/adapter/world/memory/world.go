package memworld

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
)

var ErrNoMaterial = errors.New("no construction material available")

// preciousMaterials are never chosen as construction stuff.
var preciousMaterials = map[string]bool{
	"gold":   true,
	"jade":   true,
	"silver": true,
}

// World is an in-memory simulation backend implementing every world-facing
// port: tile grid, structure registry, agent roster, reachability,
// placement execution, resource counters, material policy, and tech gates.
// It stands in for the real game during tests and demo runs.
type World struct {
	mu sync.RWMutex

	bounds     grid.Bounds
	tiles      map[grid.Cell]grid.TileInfo
	homeZones  []homeZone
	hazards    []grid.Cell
	structures map[string]ports.Structure
	builtIndex map[grid.Cell]string
	planned    map[grid.Cell]grid.StructureCategory
	inProgress map[grid.Cell]grid.StructureCategory
	agents     []ports.Agent
	resources  map[string]int
	unlocked   map[string]bool
	nextID     int
}

type homeZone struct {
	min, max grid.Cell
}

func New(width, depth int) *World {
	w := &World{
		bounds:     grid.Bounds{Width: width, Depth: depth},
		tiles:      make(map[grid.Cell]grid.TileInfo, width*depth),
		structures: map[string]ports.Structure{},
		builtIndex: map[grid.Cell]string{},
		planned:    map[grid.Cell]grid.StructureCategory{},
		inProgress: map[grid.Cell]grid.StructureCategory{},
		resources:  map[string]int{},
		unlocked:   map[string]bool{},
	}
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			w.tiles[grid.Cell{X: x, Z: z}] = grid.TileInfo{
				Kind:          grid.TerrainSoil,
				Standable:     true,
				SupportsHeavy: true,
				Fertility:     50,
				Explored:      true,
			}
		}
	}
	return w
}

// --- WorldProvider ---

func (w *World) Bounds() grid.Bounds {
	return w.bounds
}

func (w *World) TileAt(c grid.Cell) (grid.TileInfo, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	t, ok := w.tiles[c]
	return t, ok
}

func (w *World) InHomeZone(c grid.Cell) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, z := range w.homeZones {
		if c.X >= z.min.X && c.X <= z.max.X && c.Z >= z.min.Z && c.Z <= z.max.Z {
			return true
		}
	}
	return false
}

func (w *World) Hazards() []grid.Cell {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]grid.Cell, len(w.hazards))
	copy(out, w.hazards)
	return out
}

// --- StructureRegistry ---

func (w *World) Structures() []ports.Structure {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]ports.Structure, 0, len(w.structures))
	for _, s := range w.structures {
		out = append(out, s)
	}
	return out
}

func (w *World) BuiltAt(c grid.Cell) (ports.Structure, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	id, ok := w.builtIndex[c]
	if !ok {
		return ports.Structure{}, false
	}
	return w.structures[id], true
}

func (w *World) PlannedAt(c grid.Cell) (grid.StructureCategory, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	cat, ok := w.planned[c]
	return cat, ok
}

func (w *World) InProgressAt(c grid.Cell) (grid.StructureCategory, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	cat, ok := w.inProgress[c]
	return cat, ok
}

// --- AgentRoster ---

func (w *World) Agents() []ports.Agent {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]ports.Agent, len(w.agents))
	copy(out, w.agents)
	return out
}

func (w *World) FriendlyCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n := 0
	for _, a := range w.agents {
		if !a.Hostile {
			n++
		}
	}
	return n
}

// --- ReachabilityOracle ---

// CanReach walks a breadth-first search over standable, unbuilt cells.
func (w *World) CanReach(from, to grid.Cell) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if from == to {
		return true
	}
	if !w.bounds.Contains(from) || !w.bounds.Contains(to) {
		return false
	}
	visited := map[grid.Cell]bool{from: true}
	queue := []grid.Cell{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range []grid.Cell{cur.Add(1, 0), cur.Add(-1, 0), cur.Add(0, 1), cur.Add(0, -1)} {
			if visited[next] || !w.bounds.Contains(next) {
				continue
			}
			if next == to {
				return true
			}
			if !w.walkableLocked(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

func (w *World) walkableLocked(c grid.Cell) bool {
	tile, ok := w.tiles[c]
	if !ok || !tile.Standable {
		return false
	}
	if id, built := w.builtIndex[c]; built {
		// doors are passable, everything else built blocks
		return w.structures[id].Category == grid.CategoryDoor
	}
	return true
}

// --- PlacementExecutor ---

func (w *World) PlacePlan(_ context.Context, req ports.PlacementRequest) error {
	d, ok := catalog.Descriptor(req.BuildingType)
	if !ok {
		return fmt.Errorf("unknown building type %q", req.BuildingType)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, cell := range grid.FootprintCells(req.Cell, d.Width, d.Depth, req.Orientation) {
		if !w.bounds.Contains(cell) {
			return fmt.Errorf("footprint cell %v out of bounds", cell)
		}
		w.planned[cell] = d.Category
	}
	return nil
}

// --- ResourceCounter / MaterialSelector / TechGate ---

func (w *World) CountOf(material string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.resources[material]
}

func (w *World) SelectMaterial(d catalog.BuildingDescriptor) (string, error) {
	if !d.NeedsMaterial {
		return "", nil
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	best, bestCount := "", 0
	for material, count := range w.resources {
		if preciousMaterials[material] || count <= 0 {
			continue
		}
		if count > bestCount || (count == bestCount && material < best) {
			best, bestCount = material, count
		}
	}
	if best == "" {
		return "", ErrNoMaterial
	}
	return best, nil
}

func (w *World) IsUnlocked(tech string) bool {
	if tech == "" {
		return true
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.unlocked[tech]
}
