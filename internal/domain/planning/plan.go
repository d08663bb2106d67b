package planning

import (
	"fmt"

	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
)

type Stage string

const (
	StagePlanned       Stage = "planned"
	StageWallsBuilding Stage = "walls_building"
	StageWallsComplete Stage = "walls_complete"
	StageFurnishing    Stage = "furnishing"
	StageComplete      Stage = "complete"
)

var stageOrder = map[Stage]int{
	StagePlanned:       0,
	StageWallsBuilding: 1,
	StageWallsComplete: 2,
	StageFurnishing:    3,
	StageComplete:      4,
}

func (s Stage) Rank() int {
	return stageOrder[s]
}

// Next returns the following stage; Complete is terminal.
func (s Stage) Next() Stage {
	switch s {
	case StagePlanned:
		return StageWallsBuilding
	case StageWallsBuilding:
		return StageWallsComplete
	case StageWallsComplete:
		return StageFurnishing
	case StageFurnishing:
		return StageComplete
	default:
		return StageComplete
	}
}

func (s Stage) AtLeast(other Stage) bool {
	return s.Rank() >= other.Rank()
}

// ConstructionPlan is the room-level layout a placement decision expands
// into: the wall ring, door cells, and interior floor cells.
type ConstructionPlan struct {
	Origin       grid.Cell            `json:"origin"`
	Width        int                  `json:"width"`
	Depth        int                  `json:"depth"`
	WallCells    []grid.Cell          `json:"wall_cells"`
	DoorCells    []grid.Cell          `json:"door_cells"`
	FloorCells   []grid.Cell          `json:"floor_cells"`
	Role         catalog.BuildingRole `json:"role"`
	RejectReason string               `json:"reject_reason,omitempty"`
}

// NewRoomPlan lays out a rectangular room: perimeter walls, one door in the
// middle of the south wall, interior floor.
func NewRoomPlan(origin grid.Cell, width, depth int, role catalog.BuildingRole) ConstructionPlan {
	p := ConstructionPlan{Origin: origin, Width: width, Depth: depth, Role: role}
	door := origin.Add(width/2, depth-1)
	for dx := 0; dx < width; dx++ {
		for dz := 0; dz < depth; dz++ {
			c := origin.Add(dx, dz)
			onEdge := dx == 0 || dz == 0 || dx == width-1 || dz == depth-1
			switch {
			case c == door:
				p.DoorCells = append(p.DoorCells, c)
			case onEdge:
				p.WallCells = append(p.WallCells, c)
			default:
				p.FloorCells = append(p.FloorCells, c)
			}
		}
	}
	return p
}

// ConstructionState tracks one room from plan to completion.
type ConstructionState struct {
	ID   string           `json:"id"`
	Plan ConstructionPlan `json:"plan"`

	Stage      Stage `json:"stage"`
	WallsBuilt int   `json:"walls_built"`
	WallsTotal int   `json:"walls_total"`

	CriticalFurniturePlaced  bool `json:"critical_furniture_placed"`
	SecondaryFurniturePlaced bool `json:"secondary_furniture_placed"`

	CreatedAtTick   int64 `json:"created_at_tick"`
	UpdatedAtTick   int64 `json:"updated_at_tick"`
	CompletedAtTick int64 `json:"completed_at_tick,omitempty"`
}

func NewConstructionState(id string, plan ConstructionPlan, nowTick int64) ConstructionState {
	return ConstructionState{
		ID:            id,
		Plan:          plan,
		Stage:         StagePlanned,
		WallsTotal:    len(plan.WallCells),
		CreatedAtTick: nowTick,
		UpdatedAtTick: nowTick,
	}
}

// ReadyForCriticalFurniture gates beds and stoves: walls have started and
// the critical set has not been placed yet.
func (s ConstructionState) ReadyForCriticalFurniture() bool {
	return s.Stage.AtLeast(StageWallsBuilding) && !s.CriticalFurniturePlaced
}

func (s ConstructionState) ReadyForSecondaryFurniture() bool {
	return s.Stage.AtLeast(StageWallsComplete) && !s.SecondaryFurniturePlaced
}

func (s ConstructionState) String() string {
	return fmt.Sprintf("%s %s %d/%d walls", s.ID, s.Stage, s.WallsBuilt, s.WallsTotal)
}

// CandidateLocation is one (cell, orientation) pair under evaluation.
type CandidateLocation struct {
	Cell        grid.Cell        `json:"cell"`
	Orientation grid.Orientation `json:"orientation"`
	Score       *PlacementScore  `json:"-"`
}
