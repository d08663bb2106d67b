package grid

type Orientation string

const (
	OrientNorth Orientation = "north"
	OrientEast  Orientation = "east"
	OrientSouth Orientation = "south"
	OrientWest  Orientation = "west"
)

func Orientations() [4]Orientation {
	return [4]Orientation{OrientNorth, OrientEast, OrientSouth, OrientWest}
}

// RotatedSize returns the footprint dimensions after rotation; east/west
// swap width and depth.
func RotatedSize(width, depth int, o Orientation) (int, int) {
	if o == OrientEast || o == OrientWest {
		return depth, width
	}
	return width, depth
}

// FootprintCells enumerates every cell occupied by a building of the given
// base size placed at origin with the given orientation.
func FootprintCells(origin Cell, width, depth int, o Orientation) []Cell {
	w, d := RotatedSize(width, depth, o)
	cells := make([]Cell, 0, w*d)
	for dx := 0; dx < w; dx++ {
		for dz := 0; dz < d; dz++ {
			cells = append(cells, origin.Add(dx, dz))
		}
	}
	return cells
}

// BufferCells enumerates the 1-cell ring surrounding the footprint.
func BufferCells(origin Cell, width, depth int, o Orientation) []Cell {
	w, d := RotatedSize(width, depth, o)
	cells := make([]Cell, 0, 2*(w+d)+4)
	for dx := -1; dx <= w; dx++ {
		for dz := -1; dz <= d; dz++ {
			inside := dx >= 0 && dx < w && dz >= 0 && dz < d
			if inside {
				continue
			}
			cells = append(cells, origin.Add(dx, dz))
		}
	}
	return cells
}
