package memworld

import (
	"fmt"
	"math/rand"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/grid"
)

func agentAt(i int, pos grid.Cell) ports.Agent {
	return ports.Agent{ID: fmt.Sprintf("colonist-%d", i), Pos: pos}
}

// NewDemo builds a deterministic demo world from a seed: a river along the
// east edge, rock outcrops, a fertile band, scattered wild growth, and a
// couple of colonist agents near the middle. Used by cmd/server when no
// external simulation is attached.
func NewDemo(seed int64, width, depth int) *World {
	w := New(width, depth)
	rng := rand.New(rand.NewSource(seed))

	riverX := width - width/8
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			c := grid.Cell{X: x, Z: z}
			tile := grid.TileInfo{
				Kind:          grid.TerrainSoil,
				Standable:     true,
				SupportsHeavy: true,
				Fertility:     40 + rng.Intn(30),
				Explored:      true,
			}
			switch {
			case x >= riverX:
				tile.Kind = grid.TerrainWater
				tile.Standable = false
				tile.SupportsHeavy = false
				tile.Fertility = 0
			case rng.Intn(40) == 0:
				tile.Kind = grid.TerrainRock
				tile.Standable = false
				tile.SupportsHeavy = false
				tile.Fertility = 0
				if rng.Intn(3) == 0 {
					tile.HasOre = true
				}
			case z > depth/2 && z < depth/2+depth/6:
				// fertile band
				tile.Fertility = 65 + rng.Intn(25)
				if rng.Intn(6) == 0 {
					tile.Growth = grid.GrowthWild
				}
			case rng.Intn(12) == 0:
				tile.Growth = grid.GrowthWild
			}
			w.SetTile(c, tile)
		}
	}

	center := grid.Cell{X: width / 3, Z: depth / 2}
	for i := 0; i < 3; i++ {
		w.AddAgent(agentAt(i, center.Add(rng.Intn(5)-2, rng.Intn(5)-2)))
	}
	w.SetResource("wood", 200)
	w.SetResource("stone", 120)
	w.SetResource("gold", 40)
	w.Unlock("smithing")
	return w
}
