package grid

type TerrainKind string

const (
	TerrainSoil   TerrainKind = "soil"
	TerrainSand   TerrainKind = "sand"
	TerrainRock   TerrainKind = "rock"
	TerrainWater  TerrainKind = "water"
	TerrainLava   TerrainKind = "lava"
	TerrainMarsh  TerrainKind = "marsh"
	TerrainGravel TerrainKind = "gravel"
)

type GrowthKind string

const (
	GrowthNone GrowthKind = ""
	GrowthWild GrowthKind = "wild"
	GrowthCrop GrowthKind = "crop"
)

// TileInfo is the per-cell view the external simulation exposes to the
// planner. The planner never mutates tiles.
type TileInfo struct {
	Kind          TerrainKind `json:"kind"`
	Standable     bool        `json:"standable"`
	SupportsHeavy bool        `json:"supports_heavy"`
	Fertility     int         `json:"fertility"`
	HasOre        bool        `json:"has_ore"`
	Explored      bool        `json:"explored"`
	Indoors       bool        `json:"indoors"`
	Enclosed      bool        `json:"enclosed"`
	HasFloor      bool        `json:"has_floor"`
	Growth        GrowthKind  `json:"growth,omitempty"`
	LooseItems    bool        `json:"loose_items,omitempty"`
}

func (t TileInfo) Impassable() bool {
	return t.Kind == TerrainRock || t.Kind == TerrainLava
}

func (t TileInfo) Liquid() bool {
	return t.Kind == TerrainWater || t.Kind == TerrainLava
}
