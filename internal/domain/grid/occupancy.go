package grid

type StructureCategory string

const (
	CategoryWall     StructureCategory = "wall"
	CategoryDoor     StructureCategory = "door"
	CategoryFloor    StructureCategory = "floor"
	CategoryBuilding StructureCategory = "building"
	CategoryFixture  StructureCategory = "fixture"
	CategoryConduit  StructureCategory = "conduit"
	CategoryPower    StructureCategory = "power"
)

type OccupancyState string

const (
	OccupancyEmpty      OccupancyState = "empty"
	OccupancyPlanned    OccupancyState = "planned"
	OccupancyInProgress OccupancyState = "in_progress"
	OccupancyBuilt      OccupancyState = "built"
)

// CellOccupancy is the single classification of what sits on a cell,
// computed once by the construction state checker and consumed by the
// validators. Category is empty when State is OccupancyEmpty.
type CellOccupancy struct {
	State    OccupancyState    `json:"state"`
	Category StructureCategory `json:"category,omitempty"`
}

func (o CellOccupancy) Occupied() bool {
	return o.State != OccupancyEmpty && o.State != ""
}
