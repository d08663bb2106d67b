package statecheck

import (
	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"
)

// Checker classifies grid cells against the structure registry. It is the
// single place occupancy classification happens; validators and the
// construction tracker consume its output. Read-only, no side effects.
type Checker struct {
	Structures ports.StructureRegistry
}

// OccupancyAt resolves what sits on a cell. Classification order is
// Built > InProgress > Planned > Empty; the first match wins.
func (c Checker) OccupancyAt(cell grid.Cell) grid.CellOccupancy {
	if s, ok := c.Structures.BuiltAt(cell); ok {
		return grid.CellOccupancy{State: grid.OccupancyBuilt, Category: s.Category}
	}
	if cat, ok := c.Structures.InProgressAt(cell); ok {
		return grid.CellOccupancy{State: grid.OccupancyInProgress, Category: cat}
	}
	if cat, ok := c.Structures.PlannedAt(cell); ok {
		return grid.CellOccupancy{State: grid.OccupancyPlanned, Category: cat}
	}
	return grid.CellOccupancy{State: grid.OccupancyEmpty}
}

// CountStates tallies the cells whose occupancy matches the given category.
// A cell occupied by a different category still counts as Empty for this
// category's tally.
func (c Checker) CountStates(cells []grid.Cell, category grid.StructureCategory) planning.WallStateCount {
	var count planning.WallStateCount
	for _, cell := range cells {
		occ := c.OccupancyAt(cell)
		if occ.Occupied() && occ.Category != category {
			count.Empty++
			continue
		}
		switch occ.State {
		case grid.OccupancyBuilt:
			count.Built++
		case grid.OccupancyInProgress:
			count.InProgress++
		case grid.OccupancyPlanned:
			count.Planned++
		default:
			count.Empty++
		}
	}
	return count
}
