package validate

import (
	"fmt"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/app/statecheck"
	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"
)

// PlacementValidator runs the three independent scoring passes: safety,
// terrain suitability, and utility access. Each pass seeds a score at the
// base 50 points and can reject outright.
type PlacementValidator struct {
	World      ports.WorldProvider
	Structures ports.StructureRegistry
	Agents     ports.AgentRoster
	Check      statecheck.Checker
}

func (v PlacementValidator) SafetyScore(cell grid.Cell) *planning.PlacementScore {
	score := planning.NewScore()
	score.AddFactor("base", planning.BaseScore)

	if !v.World.Bounds().Contains(cell) {
		score.Reject("out of bounds")
		return score
	}
	tile, ok := v.World.TileAt(cell)
	if !ok || !tile.Explored {
		score.Reject("unexplored cell")
		return score
	}

	if v.World.InHomeZone(cell) {
		score.AddFactor("home_zone", planning.HomeZoneBonus)
	} else if dist, ok := v.nearestOwnedDistance(cell); ok {
		switch {
		case dist <= planning.AdjacencyRadius:
			score.AddFactor("near_structures", planning.NearStructuresBonus)
		case dist <= planning.FarStructuresCutoff:
			score.AddFactor("mid_structures", planning.MidStructuresBonus)
		default:
			score.AddFactor("far_from_colony", planning.FarStructuresPenalty)
		}
	}

	if dist, ok := v.nearestHostileDistance(cell); ok {
		if dist < planning.HostileRejectRadius {
			score.Reject(fmt.Sprintf("hostile within %d cells", int(dist)))
			return score
		}
		if dist < planning.HostilePenaltyRadius {
			score.AddFactor("hostiles_near", planning.HostilePenalty)
		}
	}

	for _, hazard := range v.World.Hazards() {
		if hazard.DistanceTo(cell) <= planning.HazardPenaltyRadius {
			score.AddFactor("hazard_near", planning.HazardPenalty)
			break
		}
	}
	return score
}

// TerrainScore re-checks full-footprint occupancy on top of terrain
// suitability: this pass can run standalone during early screening, before
// the area validator has seen the candidate.
func (v PlacementValidator) TerrainScore(d catalog.BuildingDescriptor, cell grid.Cell, o grid.Orientation) *planning.PlacementScore {
	score := planning.NewScore()
	score.AddFactor("base", planning.BaseScore)

	tile, ok := v.World.TileAt(cell)
	if !ok {
		score.Reject("no terrain")
		return score
	}
	if tile.Liquid() || tile.Impassable() || tile.HasOre {
		score.Reject(fmt.Sprintf("terrain %s unsuitable", tile.Kind))
		return score
	}

	if tile.HasFloor {
		score.AddFactor("constructed_floor", planning.FloorBonus)
	}
	profile := catalog.ProfileFor(d.Role)
	if profile.PrefersIndoor && tile.Indoors {
		score.AddFactor("indoor_match", planning.IndoorMatchBonus)
	}
	if profile.RequiresOutdoor && !tile.Indoors {
		score.AddFactor("outdoor_match", planning.OutdoorMatchBonus)
	}
	if d.FueledIndoorsOnly && !tile.Indoors {
		// penalty only; fueled buildings still place outdoors
		score.AddFactor("fueled_outdoors", planning.FueledOutdoorsPenalty)
	}

	for _, fc := range grid.FootprintCells(cell, d.Width, d.Depth, o) {
		if v.Check.OccupancyAt(fc).Occupied() {
			score.Reject(fmt.Sprintf("footprint occupied at %v", fc))
			return score
		}
	}
	return score
}

func (v PlacementValidator) UtilityScore(d catalog.BuildingDescriptor, cell grid.Cell) *planning.PlacementScore {
	score := planning.NewScore()
	score.AddFactor("base", planning.BaseScore)

	if !d.NeedsPower {
		score.AddFactor("utility_ok", planning.UtilityNoneBonus)
		return score
	}

	sourceExists, nearDistribution := false, false
	for _, s := range v.Structures.Structures() {
		if s.Category != grid.CategoryPower && s.Category != grid.CategoryConduit {
			continue
		}
		if s.Category == grid.CategoryPower {
			sourceExists = true
		}
		if s.Center().DistanceTo(cell) <= planning.UtilitySearchRadius {
			nearDistribution = true
		}
	}
	if !sourceExists {
		score.Reject("no power source on map")
		return score
	}
	if nearDistribution {
		score.AddFactor("power_nearby", planning.UtilityNearBonus)
	} else {
		score.AddFactor("power_distant", planning.UtilityFarBonus)
	}
	return score
}

// CombinedScore runs the three passes in sequence, short-circuiting on the
// first rejection, and merges their factors down-weighted into one score.
func (v PlacementValidator) CombinedScore(d catalog.BuildingDescriptor, cell grid.Cell, o grid.Orientation) *planning.PlacementScore {
	passes := []*planning.PlacementScore{
		v.SafetyScore(cell),
	}
	if !passes[0].IsValid() {
		return passes[0]
	}
	terrain := v.TerrainScore(d, cell, o)
	if !terrain.IsValid() {
		return terrain
	}
	utility := v.UtilityScore(d, cell)
	if !utility.IsValid() {
		return utility
	}
	passes = append(passes, terrain, utility)

	combined := planning.NewScore()
	combined.AddFactor("base", planning.BaseScore)
	for i, pass := range passes {
		prefix := [...]string{"safety", "terrain", "utility"}[i]
		for _, f := range pass.Factors() {
			if f.Name == "base" {
				continue
			}
			combined.AddFactor(prefix+":"+f.Name, f.Value/planning.CombinedFactorWeight)
		}
	}
	return combined
}

func (v PlacementValidator) nearestOwnedDistance(cell grid.Cell) (float64, bool) {
	best, found := 0.0, false
	for _, s := range v.Structures.Structures() {
		if !s.Owned {
			continue
		}
		dist := s.Center().DistanceTo(cell)
		if !found || dist < best {
			best, found = dist, true
		}
	}
	return best, found
}

func (v PlacementValidator) nearestHostileDistance(cell grid.Cell) (float64, bool) {
	best, found := 0.0, false
	for _, a := range v.Agents.Agents() {
		if !a.Hostile {
			continue
		}
		dist := a.Pos.DistanceTo(cell)
		if !found || dist < best {
			best, found = dist, true
		}
	}
	return best, found
}
