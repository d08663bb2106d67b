package grid

import "math"

type Cell struct {
	X int `json:"x"`
	Z int `json:"z"`
}

func (c Cell) Add(dx, dz int) Cell {
	return Cell{X: c.X + dx, Z: c.Z + dz}
}

func (c Cell) DistanceTo(o Cell) float64 {
	dx := float64(c.X - o.X)
	dz := float64(c.Z - o.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// ChebyshevTo is the board distance: the number of king moves between cells.
func (c Cell) ChebyshevTo(o Cell) int {
	dx := absInt(c.X - o.X)
	dz := absInt(c.Z - o.Z)
	if dx > dz {
		return dx
	}
	return dz
}

type Bounds struct {
	Width int `json:"width"`
	Depth int `json:"depth"`
}

func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.Z >= 0 && c.X < b.Width && c.Z < b.Depth
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
