package model

// ConstructionState is the persistence row for one tracked room. The room
// plan (wall/door/floor cells) is stored as a JSON blob; the columns the
// planner queries on are flattened.
type ConstructionState struct {
	RoomID string `gorm:"primaryKey;column:room_id"`
	Stage  string
	Plan   []byte

	WallsBuilt int32
	WallsTotal int32

	CriticalFurniturePlaced  bool
	SecondaryFurniturePlaced bool

	CreatedAtTick   int64
	UpdatedAtTick   int64
	CompletedAtTick int64
}

func (ConstructionState) TableName() string {
	return "construction_states"
}
