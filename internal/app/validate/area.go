package validate

import (
	"fmt"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/app/statecheck"
	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"
)

// AreaValidator checks a building's full footprint plus the 1-cell buffer
// ring. Footprint failures are fatal and stop validation; buffer findings
// are warnings only.
type AreaValidator struct {
	World      ports.WorldProvider
	Structures ports.StructureRegistry
	Agents     ports.AgentRoster
	Reach      ports.ReachabilityOracle
	Check      statecheck.Checker
}

// BasicCheck is the cheap pre-screen: bounds and hard occupancy only.
func (v AreaValidator) BasicCheck(d catalog.BuildingDescriptor, origin grid.Cell, o grid.Orientation) bool {
	bounds := v.World.Bounds()
	for _, cell := range grid.FootprintCells(origin, d.Width, d.Depth, o) {
		if !bounds.Contains(cell) {
			return false
		}
		if v.Check.OccupancyAt(cell).Occupied() {
			return false
		}
	}
	return true
}

func (v AreaValidator) Validate(d catalog.BuildingDescriptor, origin grid.Cell, o grid.Orientation) planning.ValidationResult {
	res := planning.ValidResult()
	bounds := v.World.Bounds()

	for _, cell := range grid.FootprintCells(origin, d.Width, d.Depth, o) {
		if !bounds.Contains(cell) {
			res.Fail(planning.ReasonOutOfBounds, fmt.Sprintf("cell %v out of bounds", cell))
			return res
		}

		occ := v.Check.OccupancyAt(cell)
		switch occ.State {
		case grid.OccupancyBuilt:
			res.Fail(planning.ReasonOccupied, fmt.Sprintf("built %s at %v", occ.Category, cell))
			return res
		case grid.OccupancyPlanned, grid.OccupancyInProgress:
			res.Fail(planning.ReasonOccupied, fmt.Sprintf("pending %s at %v", occ.Category, cell))
			return res
		}

		tile, ok := v.World.TileAt(cell)
		if !ok {
			res.Fail(planning.ReasonTerrainInvalid, fmt.Sprintf("no terrain at %v", cell))
			return res
		}
		if tile.Liquid() {
			res.Fail(planning.ReasonTerrainInvalid, fmt.Sprintf("%s at %v", tile.Kind, cell))
			return res
		}
		if !tile.Standable {
			// Wall-like buildings tolerate wild growth on the footprint:
			// it is cleared before construction starts. Rock and any
			// other blocker stay fatal for every category.
			tolerated := d.ImpassableSolid && tile.Growth == grid.GrowthWild && !tile.Impassable()
			if !tolerated {
				res.Fail(planning.ReasonTerrainInvalid, fmt.Sprintf("not standable at %v", cell))
				return res
			}
			res.Info(fmt.Sprintf("wild growth at %v will be cleared", cell))
		}
		if d.NeedsSupport && !d.ImpassableSolid && !tile.SupportsHeavy {
			res.Fail(planning.ReasonTerrainInvalid, fmt.Sprintf("no ground support at %v", cell))
			return res
		}
		if tile.Growth == grid.GrowthCrop {
			res.Fail(planning.ReasonOccupied, fmt.Sprintf("cultivated crops at %v", cell))
			return res
		}
		if tile.Growth == grid.GrowthWild && tile.Standable {
			res.Info(fmt.Sprintf("wild growth at %v", cell))
		}
		if tile.LooseItems {
			res.Warn(fmt.Sprintf("loose items at %v need hauling", cell))
		}
	}

	v.checkBuffer(d, origin, o, &res)

	if !v.reachable(origin) {
		res.Fail(planning.ReasonUnreachable, fmt.Sprintf("cell %v unreachable", origin))
		return res
	}
	return res
}

func (v AreaValidator) checkBuffer(d catalog.BuildingDescriptor, origin grid.Cell, o grid.Orientation, res *planning.ValidationResult) {
	bounds := v.World.Bounds()
	adjacent, pending := 0, 0
	for _, cell := range grid.BufferCells(origin, d.Width, d.Depth, o) {
		if !bounds.Contains(cell) {
			continue
		}
		switch v.Check.OccupancyAt(cell).State {
		case grid.OccupancyBuilt:
			adjacent++
		case grid.OccupancyPlanned, grid.OccupancyInProgress:
			pending++
		}
	}
	if adjacent > 4 {
		res.Warn(fmt.Sprintf("dense surroundings: %d adjacent structures", adjacent))
	}
	if pending > 2 {
		res.Warn(fmt.Sprintf("construction congestion: %d pending builds nearby", pending))
	}
}

// reachable requires a path from the nearest player structure, or from any
// agent when nothing has been built yet.
func (v AreaValidator) reachable(target grid.Cell) bool {
	var nearest *ports.Structure
	best := 0.0
	for _, s := range v.Structures.Structures() {
		if !s.Owned {
			continue
		}
		s := s
		dist := s.Center().DistanceTo(target)
		if nearest == nil || dist < best {
			nearest = &s
			best = dist
		}
	}
	if nearest != nil {
		return v.Reach.CanReach(nearest.Center(), target)
	}
	for _, a := range v.Agents.Agents() {
		if a.Hostile {
			continue
		}
		if v.Reach.CanReach(a.Pos, target) {
			return true
		}
	}
	return false
}
