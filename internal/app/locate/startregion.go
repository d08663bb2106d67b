package locate

import (
	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"
)

// bestStartRegion scores coarse samples across the map when no player
// structure exists yet: local fertility, water access, mineable resources,
// flatness, penalized near the map edges.
func (f *Finder) bestStartRegion() grid.Cell {
	bounds := f.World.Bounds()
	margin := planning.StartRegionEdgeMargin
	if m := minInt(bounds.Width, bounds.Depth) / 4; m < margin {
		margin = m
	}

	best := grid.Cell{X: bounds.Width / 2, Z: bounds.Depth / 2}
	bestScore := -1 << 30
	step := planning.StartRegionCoarseStep
	for x := margin; x < bounds.Width-margin; x += step {
		for z := margin; z < bounds.Depth-margin; z += step {
			c := grid.Cell{X: x, Z: z}
			if score := f.regionScore(c, bounds, margin); score > bestScore {
				best, bestScore = c, score
			}
		}
	}
	return best
}

func (f *Finder) regionScore(center grid.Cell, bounds grid.Bounds, margin int) int {
	fertility, standable, sampled := 0, 0, 0
	waterNear, oreNear := false, false
	for dx := -3; dx <= 3; dx++ {
		for dz := -3; dz <= 3; dz++ {
			c := center.Add(dx, dz)
			if !bounds.Contains(c) {
				continue
			}
			tile, ok := f.World.TileAt(c)
			if !ok {
				continue
			}
			sampled++
			fertility += tile.Fertility
			if tile.Standable {
				standable++
			}
			if tile.Kind == grid.TerrainWater {
				waterNear = true
			}
			if tile.HasOre {
				oreNear = true
			}
		}
	}
	if sampled == 0 {
		return -1 << 30
	}

	score := fertility / sampled
	// flatness: fraction of standable ground in the window
	score += standable * 40 / sampled
	if waterNear {
		score += 15
	}
	if oreNear {
		score += 10
	}
	edgeDist := minInt(minInt(center.X, center.Z), minInt(bounds.Width-1-center.X, bounds.Depth-1-center.Z))
	if edgeDist < margin*2 {
		score -= (margin*2 - edgeDist) * 2
	}
	return score
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
